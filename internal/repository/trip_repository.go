package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *TripRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&trip).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

// GetDetailed loads a trip with its driver, truck and trailer expanded for
// display and PDF export.
func (r *TripRepository) GetDetailed(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Truck").
		Preload("Trailer").
		Where("id = ?", id).
		First(&trip).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepository) ListDetailed(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Truck").
		Preload("Trailer").
		Order("departure_date DESC").
		Find(&trips).Error
	return trips, err
}

func (r *TripRepository) ListByDriver(ctx context.Context, driverID uuid.UUID) ([]model.Trip, error) {
	var trips []model.Trip
	err := r.db.WithContext(ctx).
		Preload("Truck").
		Preload("Trailer").
		Where("driver_id = ?", driverID).
		Order("departure_date DESC").
		Find(&trips).Error
	return trips, err
}

func (r *TripRepository) Save(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *TripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Trip{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountActiveByTruck counts trips on a truck that have not yet completed.
// Truck deletion is refused while this is non-zero.
func (r *TripRepository) CountActiveByTruck(ctx context.Context, truckID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Trip{}).
		Where("truck_id = ? AND status <> ?", truckID, model.TripStatusCompleted).
		Count(&count).Error
	return count, err
}
