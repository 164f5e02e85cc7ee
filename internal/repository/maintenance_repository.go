package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, record *model.Maintenance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *MaintenanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Maintenance, error) {
	var record model.Maintenance
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *MaintenanceRepository) ListDetailed(ctx context.Context) ([]model.Maintenance, error) {
	var records []model.Maintenance
	err := r.db.WithContext(ctx).
		Preload("Truck").
		Order("date DESC").
		Find(&records).Error
	return records, err
}

func (r *MaintenanceRepository) ListByTruck(ctx context.Context, truckID uuid.UUID) ([]model.Maintenance, error) {
	var records []model.Maintenance
	err := r.db.WithContext(ctx).
		Where("truck_id = ?", truckID).
		Order("date DESC").
		Find(&records).Error
	return records, err
}

// ListUpcoming returns records whose service threshold the truck has reached
// or is within soonKm of reaching.
func (r *MaintenanceRepository) ListUpcoming(ctx context.Context, soonKm float64) ([]model.Maintenance, error) {
	var records []model.Maintenance
	err := r.db.WithContext(ctx).
		Joins("JOIN trucks ON trucks.id = maintenances.truck_id").
		Where("maintenances.next_maintenance_at IS NOT NULL").
		Where("trucks.mileage >= maintenances.next_maintenance_at - ?", soonKm).
		Preload("Truck").
		Order("maintenances.next_maintenance_at ASC").
		Find(&records).Error
	return records, err
}

func (r *MaintenanceRepository) Save(ctx context.Context, record *model.Maintenance) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Maintenance{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
