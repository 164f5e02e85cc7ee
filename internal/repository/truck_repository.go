package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TruckRepository struct {
	db *gorm.DB
}

func NewTruckRepository(db *gorm.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) Create(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Create(truck).Error
}

func (r *TruckRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Truck, error) {
	var truck model.Truck
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&truck).Error
	if err != nil {
		return nil, err
	}
	return &truck, nil
}

func (r *TruckRepository) List(ctx context.Context) ([]model.Truck, error) {
	var trucks []model.Truck
	err := r.db.WithContext(ctx).Order("plate_number ASC").Find(&trucks).Error
	return trucks, err
}

func (r *TruckRepository) Save(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Save(truck).Error
}

func (r *TruckRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Truck{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TruckRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.VehicleStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Truck{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AccrueTripTotals adds a completed trip's distance and fuel to the truck's
// cumulative counters and releases it in a single UPDATE. Concurrent
// completions against the same truck cannot lose increments.
func (r *TruckRepository) AccrueTripTotals(ctx context.Context, id uuid.UUID, distance, fuel float64) error {
	res := r.db.WithContext(ctx).Model(&model.Truck{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"mileage":          gorm.Expr("mileage + ?", distance),
			"fuel_consumption": gorm.Expr("fuel_consumption + ?", fuel),
			"status":           model.VehicleStatusAvailable,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
