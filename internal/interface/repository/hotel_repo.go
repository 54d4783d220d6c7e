package repository

import (
	"context"
	"time"

	"hostpms-connector/internal/domain/entity"
	"hostpms-connector/internal/domain/repository"

	"gorm.io/gorm"
)

// GormHotelRepository implements the HotelRepository interface
type GormHotelRepository struct {
	db *gorm.DB
}

// NewGormHotelRepository creates a new GORM hotel repository
func NewGormHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &GormHotelRepository{
		db: db,
	}
}

// Hotels GORM model for database mapping
type Hotels struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name"`
	Timezone  string         `gorm:"column:timezone"`
	Active    bool           `gorm:"column:active"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Hotels) TableName() string {
	return "m_hotels"
}

// GetByCode finds a hotel by code
func (r *GormHotelRepository) GetByCode(ctx context.Context, code string) (*entity.Hotel, error) {
	var hotel Hotels
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&hotel)

	if result.Error != nil {
		return nil, result.Error
	}

	return toHotelEntity(hotel), nil
}

// ListActive returns every hotel enabled for processing
func (r *GormHotelRepository) ListActive(ctx context.Context) ([]entity.Hotel, error) {
	var hotels []Hotels
	result := r.db.WithContext(ctx).Where("active = ?", true).Order("code").Find(&hotels)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		entities = append(entities, *toHotelEntity(hotel))
	}
	return entities, nil
}

func toHotelEntity(hotel Hotels) *entity.Hotel {
	return &entity.Hotel{
		ID:        hotel.ID,
		Code:      hotel.Code,
		Name:      hotel.Name,
		Timezone:  hotel.Timezone,
		Active:    hotel.Active,
		CreatedAt: hotel.CreatedAt,
		UpdatedAt: hotel.UpdatedAt,
	}
}
