package repository

import (
	"context"

	"hostpms-connector/internal/domain/entity"
)

// HotelRepository defines the interface for the hotel registry
type HotelRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Hotel, error)
	ListActive(ctx context.Context) ([]entity.Hotel, error)
}
