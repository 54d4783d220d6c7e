package repository

import (
	"context"
	"time"

	"hostpms-connector/internal/domain/entity"
)

// HostPMSRepository defines the interface for the Host PMS extraction API
type HostPMSRepository interface {
	GetHotelConfig(ctx context.Context, hotelCode string) (*entity.HotelConfigResponse, error)
	GetStatDaily(ctx context.Context, hotelCode string, hotelDate time.Time) ([]entity.StatDailyRecord, error)
}
