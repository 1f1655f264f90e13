package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/TurneroApp/cancha-scheduler/internal/domain/pricing"
	"github.com/TurneroApp/cancha-scheduler/internal/models"
)

type RateGormRepository struct {
	db *gorm.DB
}

func NewRateGormRepository(db *gorm.DB) *RateGormRepository {
	return &RateGormRepository{db: db}
}

func (r *RateGormRepository) ListRatesBySport(
	ctx context.Context,
	sportID uint,
) ([]models.Rate, error) {

	var rates []models.Rate
	if err := r.db.WithContext(ctx).
		Where("sport_id = ? AND active = ?", sportID, true).
		Order("id ASC").
		Find(&rates).Error; err != nil {
		return nil, err
	}

	return rates, nil
}

// Compile-time check
var _ pricing.RateSource = (*RateGormRepository)(nil)
