package repository

import (
	"context"

	"hostpms-connector/internal/domain/entity"
)

// StorageRepository defines the interface for the object store that holds
// raw API payloads and processed artifacts.
type StorageRepository interface {
	UploadRaw(ctx context.Context, hotelCode, dataType string, data interface{}) (entity.UploadResult, error)
	UploadProcessed(ctx context.Context, hotelCode, dataType string, data interface{}) (entity.UploadResult, error)
}
