package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"cvinsight/cv-parser/internal/models"
)

// BatchResult is the outcome of parsing one file of a batch.
type BatchResult struct {
	FilePath string            `json:"file"`
	Profile  *models.CVProfile `json:"profile,omitempty"`
	Err      error             `json:"-"`
}

// BatchExtractor parses several CV files with a fixed pool of workers.
type BatchExtractor struct {
	processor   CVProcessor
	concurrency int
	logger      *zap.Logger
}

func NewBatchExtractor(processor CVProcessor, concurrency int, log *zap.Logger) *BatchExtractor {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &BatchExtractor{
		processor:   processor,
		concurrency: concurrency,
		logger:      log,
	}
}

// Extract parses every file with the same model type. Results keep the input
// order and a failing file does not stop the others. Files not yet started
// when ctx is done get ctx's error.
func (b *BatchExtractor) Extract(ctx context.Context, filePaths []string, modelType string) []BatchResult {
	results := make([]BatchResult, len(filePaths))
	jobQueue := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < min(b.concurrency, len(filePaths)); i++ {
		wg.Add(1)
		go b.processJobs(ctx, i+1, jobQueue, filePaths, modelType, results, &wg)
	}

	next := 0
enqueue:
	for ; next < len(filePaths); next++ {
		select {
		case jobQueue <- next:
		case <-ctx.Done():
			break enqueue
		}
	}
	close(jobQueue)

	for ; next < len(filePaths); next++ {
		results[next] = BatchResult{FilePath: filePaths[next], Err: ctx.Err()}
	}

	wg.Wait()
	return results
}

func (b *BatchExtractor) processJobs(
	ctx context.Context,
	workerID int,
	jobQueue <-chan int,
	filePaths []string,
	modelType string,
	results []BatchResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for idx := range jobQueue {
		path := filePaths[idx]
		log := b.logger.With(zap.Int("worker", workerID), zap.String("file", path))

		profile, err := b.processor.ParseCVFile(ctx, path, modelType)
		if err != nil {
			log.Error("failed to parse CV", zap.Error(err))
		} else {
			log.Info("parsed CV")
		}

		results[idx] = BatchResult{FilePath: path, Profile: profile, Err: err}
	}
}
