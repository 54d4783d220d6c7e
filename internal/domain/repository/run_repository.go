package repository

import (
	"context"

	"hostpms-connector/internal/domain/entity"
)

// RunRepository defines the interface for persisted pipeline run results
type RunRepository interface {
	Save(ctx context.Context, result *entity.RunResult) error
	FindLatestByHotel(ctx context.Context, hotelCode string) (*entity.RunResult, error)
}
