package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TrailerRepository struct {
	db *gorm.DB
}

func NewTrailerRepository(db *gorm.DB) *TrailerRepository {
	return &TrailerRepository{db: db}
}

func (r *TrailerRepository) Create(ctx context.Context, trailer *model.Trailer) error {
	return r.db.WithContext(ctx).Create(trailer).Error
}

func (r *TrailerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trailer, error) {
	var trailer model.Trailer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trailer).Error
	if err != nil {
		return nil, err
	}
	return &trailer, nil
}

func (r *TrailerRepository) List(ctx context.Context) ([]model.Trailer, error) {
	var trailers []model.Trailer
	err := r.db.WithContext(ctx).Order("plate_number ASC").Find(&trailers).Error
	return trailers, err
}

func (r *TrailerRepository) Save(ctx context.Context, trailer *model.Trailer) error {
	return r.db.WithContext(ctx).Save(trailer).Error
}

func (r *TrailerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Trailer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TrailerRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.VehicleStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Trailer{}).
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
