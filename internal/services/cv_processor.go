package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/logger"
	"cvinsight/cv-parser/internal/models"
)

// AnalysisInput is the job description a CV is analyzed against.
type AnalysisInput struct {
	JobTitle     string
	CompanyName  string
	Requirements string
	ModelType    string
}

type CVProcessor interface {
	ParseCVFile(ctx context.Context, filePath, modelType string) (*models.CVProfile, error)
	ParseCV(ctx context.Context, cvText, modelType string) (*models.CVProfile, error)
	AnalyzeCV(ctx context.Context, cv *models.CVProfile, input AnalysisInput) (*models.AnalysisReport, error)
}

type cvProcessor struct {
	dispatcher    *Dispatcher
	pdfParser     PDFParserService
	promptBuilder *PromptBuilder
	timeout       time.Duration
	logger        *zap.Logger
	now           func() time.Time
}

func NewCVProcessor(
	dispatcher *Dispatcher,
	pdfParser PDFParserService,
	timeout time.Duration,
	log *zap.Logger,
) CVProcessor {
	if log == nil {
		log = zap.NewNop()
	}

	return &cvProcessor{
		dispatcher:    dispatcher,
		pdfParser:     pdfParser,
		promptBuilder: NewPromptBuilder(),
		timeout:       timeout,
		logger:        log,
		now:           time.Now,
	}
}

// ParseCVFile extracts the text of a PDF and parses it into a CVProfile.
func (p *cvProcessor) ParseCVFile(ctx context.Context, filePath, modelType string) (*models.CVProfile, error) {
	// Resolve the provider first so an unknown model never costs a PDF parse.
	if _, err := p.dispatcher.Provider(modelType); err != nil {
		return nil, err
	}

	content, err := p.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("extracted PDF text",
		zap.String("file", filePath),
		zap.Int("pages", content.PageCount),
		zap.Int("chars", len(content.Text)),
	)

	return p.ParseCV(ctx, content.Text, modelType)
}

// ParseCV sends CV text to the selected backend and maps the reply.
func (p *cvProcessor) ParseCV(ctx context.Context, cvText, modelType string) (*models.CVProfile, error) {
	data, err := p.complete(ctx, modelType, CapabilityExtract, p.promptBuilder.BuildExtractionMessage(cvText))
	if err != nil {
		return nil, err
	}

	return ToCVProfile(data)
}

// AnalyzeCV runs the second, job-specific analysis of an already parsed CV.
func (p *cvProcessor) AnalyzeCV(ctx context.Context, cv *models.CVProfile, input AnalysisInput) (*models.AnalysisReport, error) {
	message, err := p.promptBuilder.BuildAnalysisMessage(cv, input.JobTitle, input.CompanyName, input.Requirements)
	if err != nil {
		return nil, newError(KindInputRejected, err, "invalid CV data")
	}

	data, err := p.complete(ctx, input.ModelType, CapabilityAnalyze, message)
	if err != nil {
		return nil, err
	}

	return ToAnalysisReport(data, input.JobTitle, input.CompanyName, p.now().UTC())
}

func (p *cvProcessor) complete(ctx context.Context, modelType string, capability Capability, message string) (map[string]any, error) {
	provider, err := p.dispatcher.Provider(modelType)
	if err != nil {
		return nil, err
	}

	log := logger.WithProvider(p.logger, provider.Name(), provider.Model()).
		With(zap.String("capability", string(capability)))

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := provider.Complete(ctx, p.promptBuilder.SystemPrompt(capability), message)
	if err != nil {
		log.Error("LLM call failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, err
	}

	log.Info("LLM response received",
		zap.Int("prompt_chars", len(message)),
		zap.Int("response_chars", len(raw)),
		zap.Duration("elapsed", time.Since(start)),
	)
	log.Debug("LLM raw response", zap.String("response", logger.Truncate(raw, 2000)))

	data, err := ParseJSONResponse(raw)
	if err != nil {
		log.Warn("LLM response is not JSON", zap.String("response", logger.Truncate(raw, 500)))
		return nil, err
	}

	return data, nil
}
