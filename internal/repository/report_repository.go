package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleet-service/internal/model"
)

// ReportRepository serves the read-only scans behind the aggregate reports.
// Each report is computed from one pass over these results; no cross-query
// isolation is guaranteed.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// CompletedTrips returns completed trips, optionally bounded by departure
// date (inclusive), with truck and driver expanded.
func (r *ReportRepository) CompletedTrips(ctx context.Context, from, to *time.Time) ([]model.Trip, error) {
	query := r.db.WithContext(ctx).
		Preload("Truck").
		Preload("Driver").
		Where("status = ?", model.TripStatusCompleted)
	if from != nil && to != nil {
		query = query.Where("departure_date BETWEEN ? AND ?", *from, *to)
	}
	var trips []model.Trip
	err := query.Order("departure_date ASC").Find(&trips).Error
	return trips, err
}

func (r *ReportRepository) MaintenancesBetween(ctx context.Context, from, to *time.Time) ([]model.Maintenance, error) {
	query := r.db.WithContext(ctx).Preload("Truck")
	if from != nil && to != nil {
		query = query.Where("date BETWEEN ? AND ?", *from, *to)
	}
	var records []model.Maintenance
	err := query.Order("date ASC").Find(&records).Error
	return records, err
}

type statusCount struct {
	Status string
	Count  int64
}

func (r *ReportRepository) CountTrucksByStatus(ctx context.Context) (map[model.VehicleStatus]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&model.Truck{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.VehicleStatus]int64, len(rows))
	for _, row := range rows {
		counts[model.VehicleStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *ReportRepository) CountTripsByStatus(ctx context.Context) (map[model.TripStatus]int64, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&model.Trip{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.TripStatus]int64, len(rows))
	for _, row := range rows {
		counts[model.TripStatus(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *ReportRepository) MaintenanceTotals(ctx context.Context) (int64, float64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Maintenance{}).Count(&count).Error; err != nil {
		return 0, 0, err
	}
	var totalCost float64
	err := r.db.WithContext(ctx).Model(&model.Maintenance{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&totalCost).Error
	if err != nil {
		return 0, 0, err
	}
	return count, totalCost, nil
}

func (r *ReportRepository) TotalCompletedTripFuel(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Trip{}).
		Select("COALESCE(SUM(fuel_used), 0)").
		Where("status = ?", model.TripStatusCompleted).
		Scan(&total).Error
	return total, err
}

func (r *ReportRepository) CountUsersByRole(ctx context.Context, role model.UserRole) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", role).
		Count(&count).Error
	return count, err
}
