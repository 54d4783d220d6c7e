package usecase

import (
	"context"
	"fmt"

	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/internal/transform"
	"hostpms-connector/pkg/logger"
)

// ProcessConfigStep fetches the hotel configuration, archives the raw
// payload and publishes the transformed room configuration. The raw
// response also stays on the run context: charge classification and the
// hotel's local clock come from it.
type ProcessConfigStep struct {
	hostpms repository.HostPMSRepository
	storage repository.StorageRepository
	esb     repository.ESBRepository
	logger  logger.Logger
}

// NewProcessConfigStep creates the hotel configuration step
func NewProcessConfigStep(
	hostpms repository.HostPMSRepository,
	storage repository.StorageRepository,
	esb repository.ESBRepository,
	logger logger.Logger,
) pipeline.Step {
	step := &ProcessConfigStep{hostpms: hostpms, storage: storage, esb: esb, logger: logger}
	return pipeline.NewStep("process_config", false, step.Execute)
}

// Execute fetches, transforms and publishes the hotel configuration
func (s *ProcessConfigStep) Execute(ctx context.Context, run *pipeline.Context) error {
	response, err := s.hostpms.GetHotelConfig(ctx, run.HotelCode)
	if err != nil {
		return fmt.Errorf("process config: %w", err)
	}
	run.ConfigResponse = response

	if _, err := s.storage.UploadRaw(ctx, run.HotelCode, "config", response); err != nil {
		s.logger.Warn("Raw config archival failed",
			"hotelCode", run.HotelCode,
			"error", err)
	}

	data, segments := transform.TransformConfig(response, s.logger)
	run.ConfigData = data
	run.Segments = segments

	result, err := s.storage.UploadProcessed(ctx, run.HotelCode, "config", data)
	if err != nil {
		return fmt.Errorf("upload config artifact: %w", err)
	}
	run.AddUpload("config", result)

	if err := s.esb.RegisterFile(ctx, run.HotelCode, "config", result.URL, result.Key, len(data.Rooms)); err != nil {
		return fmt.Errorf("register config artifact: %w", err)
	}
	run.AddNotification("config", result.Key)

	run.Stats["config"] = map[string]interface{}{
		"roomTypes": len(data.Rooms),
		"roomCount": data.RoomCount,
	}

	return nil
}
