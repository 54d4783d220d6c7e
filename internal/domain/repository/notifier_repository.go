package repository

import (
	"context"

	"hostpms-connector/internal/domain/entity"
)

// NotifierRepository defines the interface for the downstream processor
// queue. Delivery is at-least-once and FIFO per hotel; implementations
// derive a deterministic deduplication id from (hotel code, file key).
type NotifierRepository interface {
	Send(ctx context.Context, notification entity.Notification) (string, error)
}
