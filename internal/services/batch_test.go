package services

import (
	"context"
	"fmt"
	"testing"
)

func TestBatchExtractorKeepsOrder(t *testing.T) {
	texts := make(map[string]string)
	var paths []string
	for i := 0; i < 7; i++ {
		path := fmt.Sprintf("cv_%d.pdf", i)
		texts[path] = fmt.Sprintf("Candidate %d", i)
		paths = append(paths, path)
	}
	paths = append(paths, "missing.pdf")

	provider := &fakeProvider{name: "gemini", reply: `{"name":"Jane Doe"}`}
	processor := newTestProcessor(provider, &fakePDFParser{texts: texts}, nil)

	results := NewBatchExtractor(processor, 3, nil).Extract(context.Background(), paths, "gemini")
	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}

	for i, r := range results[:7] {
		if r.FilePath != paths[i] {
			t.Fatalf("result %d is for %s", i, r.FilePath)
		}
		if r.Err != nil || r.Profile == nil || r.Profile.Name != "Jane Doe" {
			t.Fatalf("result %d = %+v", i, r)
		}
	}

	last := results[7]
	if last.Profile != nil || KindOf(last.Err) != KindStorage {
		t.Fatalf("missing file result = %+v", last)
	}
	if provider.callCount() != 7 {
		t.Fatalf("provider called %d times, want 7", provider.callCount())
	}
}

func TestBatchExtractorCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := &fakeProvider{name: "gemini", reply: `{"name":"A"}`}
	processor := newTestProcessor(provider, &fakePDFParser{texts: map[string]string{"a.pdf": "A", "b.pdf": "B"}}, nil)

	results := NewBatchExtractor(processor, 1, nil).Extract(ctx, []string{"a.pdf", "b.pdf"}, "gemini")
	for _, r := range results {
		if r.Err == nil {
			t.Fatalf("expected error for %s", r.FilePath)
		}
	}
}

func TestBatchExtractorEmpty(t *testing.T) {
	processor := newTestProcessor(&fakeProvider{name: "gemini"}, &fakePDFParser{}, nil)
	if results := NewBatchExtractor(processor, 0, nil).Extract(context.Background(), nil, "gemini"); len(results) != 0 {
		t.Fatalf("got %d results", len(results))
	}
}
