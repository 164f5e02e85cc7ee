package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

// Store interfaces consumed by the services. The repository package provides
// the gorm-backed implementations; tests substitute in-memory stubs.

type TruckStore interface {
	Create(ctx context.Context, truck *model.Truck) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Truck, error)
	List(ctx context.Context) ([]model.Truck, error)
	Save(ctx context.Context, truck *model.Truck) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.VehicleStatus) error
	AccrueTripTotals(ctx context.Context, id uuid.UUID, distance, fuel float64) error
}

type TrailerStore interface {
	Create(ctx context.Context, trailer *model.Trailer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trailer, error)
	List(ctx context.Context) ([]model.Trailer, error)
	Save(ctx context.Context, trailer *model.Trailer) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.VehicleStatus) error
}

type TripStore interface {
	Create(ctx context.Context, trip *model.Trip) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	GetDetailed(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	ListDetailed(ctx context.Context) ([]model.Trip, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID) ([]model.Trip, error)
	Save(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountActiveByTruck(ctx context.Context, truckID uuid.UUID) (int64, error)
}

type MaintenanceStore interface {
	Create(ctx context.Context, record *model.Maintenance) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Maintenance, error)
	ListDetailed(ctx context.Context) ([]model.Maintenance, error)
	ListByTruck(ctx context.Context, truckID uuid.UUID) ([]model.Maintenance, error)
	ListUpcoming(ctx context.Context, soonKm float64) ([]model.Maintenance, error)
	Save(ctx context.Context, record *model.Maintenance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TireStore interface {
	Create(ctx context.Context, tire *model.Tire) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tire, error)
	ListDetailed(ctx context.Context) ([]model.Tire, error)
	ListByTruck(ctx context.Context, truckID uuid.UUID) ([]model.Tire, error)
	Save(ctx context.Context, tire *model.Tire) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type ReportStore interface {
	CompletedTrips(ctx context.Context, from, to *time.Time) ([]model.Trip, error)
	MaintenancesBetween(ctx context.Context, from, to *time.Time) ([]model.Maintenance, error)
	CountTrucksByStatus(ctx context.Context) (map[model.VehicleStatus]int64, error)
	CountTripsByStatus(ctx context.Context) (map[model.TripStatus]int64, error)
	MaintenanceTotals(ctx context.Context) (int64, float64, error)
	TotalCompletedTripFuel(ctx context.Context) (float64, error)
	CountUsersByRole(ctx context.Context, role model.UserRole) (int64, error)
}
