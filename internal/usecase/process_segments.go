package usecase

import (
	"context"
	"fmt"

	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/pkg/logger"
)

// ProcessSegmentsStep publishes the segment lists derived during config
// processing.
type ProcessSegmentsStep struct {
	storage repository.StorageRepository
	esb     repository.ESBRepository
	logger  logger.Logger
}

// NewProcessSegmentsStep creates the segment publication step
func NewProcessSegmentsStep(
	storage repository.StorageRepository,
	esb repository.ESBRepository,
	logger logger.Logger,
) pipeline.Step {
	step := &ProcessSegmentsStep{storage: storage, esb: esb, logger: logger}
	return pipeline.NewStep("process_segments", false, step.Execute)
}

// Execute uploads and registers the segment collection
func (s *ProcessSegmentsStep) Execute(ctx context.Context, run *pipeline.Context) error {
	if run.Segments == nil {
		return fmt.Errorf("process segments: hotel config not available")
	}

	result, err := s.storage.UploadProcessed(ctx, run.HotelCode, "segments", run.Segments)
	if err != nil {
		return fmt.Errorf("upload segments artifact: %w", err)
	}
	run.AddUpload("segments", result)

	count := run.Segments.TotalCount()
	if err := s.esb.RegisterFile(ctx, run.HotelCode, "segments", result.URL, result.Key, count); err != nil {
		return fmt.Errorf("register segments artifact: %w", err)
	}
	run.AddNotification("segments", result.Key)

	run.Stats["segments"] = map[string]interface{}{
		"totalSegments": count,
	}

	return nil
}
