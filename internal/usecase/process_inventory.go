package usecase

import (
	"context"
	"fmt"
	"time"

	"hostpms-connector/internal/domain/repository"
	"hostpms-connector/internal/pipeline"
	"hostpms-connector/internal/transform"
	"hostpms-connector/pkg/logger"
)

// ProcessInventoryStep derives and publishes per-room-type inventory from
// the hotel configuration.
type ProcessInventoryStep struct {
	storage repository.StorageRepository
	esb     repository.ESBRepository
	logger  logger.Logger
}

// NewProcessInventoryStep creates the room inventory step
func NewProcessInventoryStep(
	storage repository.StorageRepository,
	esb repository.ESBRepository,
	logger logger.Logger,
) pipeline.Step {
	step := &ProcessInventoryStep{storage: storage, esb: esb, logger: logger}
	return pipeline.NewStep("process_inventory", false, step.Execute)
}

// Execute builds, uploads and registers the inventory artifact
func (s *ProcessInventoryStep) Execute(ctx context.Context, run *pipeline.Context) error {
	if run.ConfigResponse == nil {
		return fmt.Errorf("process inventory: hotel config not available")
	}

	inventory := transform.BuildRoomInventory(run.ConfigResponse, time.Now().UTC())
	run.RoomInventory = inventory

	result, err := s.storage.UploadProcessed(ctx, run.HotelCode, "inventory", inventory)
	if err != nil {
		return fmt.Errorf("upload inventory artifact: %w", err)
	}
	run.AddUpload("inventory", result)

	count := len(inventory.RoomInventory)
	if err := s.esb.RegisterFile(ctx, run.HotelCode, "inventory", result.URL, result.Key, count); err != nil {
		return fmt.Errorf("register inventory artifact: %w", err)
	}
	run.AddNotification("inventory", result.Key)

	run.Stats["inventory"] = map[string]interface{}{
		"roomTypes": count,
	}

	return nil
}
