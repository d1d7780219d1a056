package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"cvinsight/cv-parser/internal/models"
)

type fakeProvider struct {
	name  string
	model string
	reply string
	err   error

	mu       sync.Mutex
	calls    int
	system   string
	messages []string
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.model }

func (f *fakeProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = systemPrompt
	f.messages = append(f.messages, userMessage)
	if err := ctx.Err(); err != nil {
		return "", backendError(f.name, err)
	}
	return f.reply, f.err
}

func (f *fakeProvider) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePDFParser struct {
	texts map[string]string
	err   error
}

func (f *fakePDFParser) ExtractText(filePath string) (*PDFContent, error) {
	if f.err != nil {
		return nil, f.err
	}
	text, ok := f.texts[filePath]
	if !ok {
		return nil, newError(KindStorage, nil, "failed to read uploaded file")
	}
	return &PDFContent{Text: text, PageCount: 1, FilePath: filePath}, nil
}

// analysisFixture returns an analysis object carrying every field of
// AnalysisReport, with lists left null.
func analysisFixture(t *testing.T) map[string]any {
	t.Helper()

	raw, err := json.Marshal(models.AnalysisReport{})
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return data
}

func analysisFixtureJSON(t *testing.T, mutate func(map[string]any)) string {
	t.Helper()

	data := analysisFixture(t)
	if mutate != nil {
		mutate(data)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(raw)
}
