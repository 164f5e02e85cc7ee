package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TireRepository struct {
	db *gorm.DB
}

func NewTireRepository(db *gorm.DB) *TireRepository {
	return &TireRepository{db: db}
}

func (r *TireRepository) Create(ctx context.Context, tire *model.Tire) error {
	return r.db.WithContext(ctx).Create(tire).Error
}

func (r *TireRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tire, error) {
	var tire model.Tire
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tire).Error
	if err != nil {
		return nil, err
	}
	return &tire, nil
}

func (r *TireRepository) ListDetailed(ctx context.Context) ([]model.Tire, error) {
	var tires []model.Tire
	err := r.db.WithContext(ctx).
		Preload("Truck").
		Order("installation_date DESC").
		Find(&tires).Error
	return tires, err
}

func (r *TireRepository) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]model.Tire, error) {
	var tires []model.Tire
	err := r.db.WithContext(ctx).
		Where("truck_id = ?", truckID).
		Order("position ASC").
		Find(&tires).Error
	return tires, err
}

func (r *TireRepository) Save(ctx context.Context, tire *model.Tire) error {
	return r.db.WithContext(ctx).Save(tire).Error
}

func (r *TireRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tire{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
