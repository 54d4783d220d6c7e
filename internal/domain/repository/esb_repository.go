package repository

import (
	"context"
	"time"
)

// HotelParameters holds the per-hotel import settings kept by the ESB.
type HotelParameters struct {
	LastImportDate string `json:"lastImportDate"`
}

// ESBRepository defines the interface for the revenue platform's ESB API
type ESBRepository interface {
	GetHotelParameters(ctx context.Context, hotelCode string) (*HotelParameters, error)
	RegisterFile(ctx context.Context, hotelCode, fileType, fileURL, fileKey string, recordCount int) error
	UpdateImportDate(ctx context.Context, hotelCode string, importDate time.Time) error
}
