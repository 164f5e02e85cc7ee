package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/model"
)

func TestMaintenanceServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates record and forces truck into maintenance", func(t *testing.T) {
		truck := &model.Truck{ID: uuid.New(), Status: model.VehicleStatusAvailable}
		records := newStubMaintenanceStore()
		svc := NewMaintenanceService(records, newStubTruckStore(truck))

		record, err := svc.Create(ctx, CreateMaintenanceInput{
			TruckID:     truck.ID.String(),
			Type:        string(model.MaintenanceTypeOilChange),
			Description: "scheduled oil change",
			Date:        "2026-04-10",
			Cost:        180,
			Mileage:     84000,
		})
		require.NoError(t, err)

		assert.Equal(t, model.MaintenanceTypeOilChange, record.Type)
		assert.Equal(t, model.VehicleStatusMaintenance, truck.Status)
		assert.Len(t, records.records, 1)
	})

	t.Run("overrides in-use status as well", func(t *testing.T) {
		truck := &model.Truck{ID: uuid.New(), Status: model.VehicleStatusInUse}
		svc := NewMaintenanceService(newStubMaintenanceStore(), newStubTruckStore(truck))

		_, err := svc.Create(ctx, CreateMaintenanceInput{
			TruckID:     truck.ID.String(),
			Type:        string(model.MaintenanceTypeRepair),
			Description: "brake failure",
			Date:        "2026-04-10",
		})
		require.NoError(t, err)

		assert.Equal(t, model.VehicleStatusMaintenance, truck.Status)
	})

	t.Run("rejects unknown maintenance type", func(t *testing.T) {
		truck := &model.Truck{ID: uuid.New()}
		svc := NewMaintenanceService(newStubMaintenanceStore(), newStubTruckStore(truck))

		_, err := svc.Create(ctx, CreateMaintenanceInput{
			TruckID:     truck.ID.String(),
			Type:        "wash",
			Description: "weekly wash",
			Date:        "2026-04-10",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects negative cost", func(t *testing.T) {
		truck := &model.Truck{ID: uuid.New()}
		svc := NewMaintenanceService(newStubMaintenanceStore(), newStubTruckStore(truck))

		_, err := svc.Create(ctx, CreateMaintenanceInput{
			TruckID:     truck.ID.String(),
			Type:        string(model.MaintenanceTypeRevision),
			Description: "annual revision",
			Date:        "2026-04-10",
			Cost:        -1,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("rejects unknown truck before writing anything", func(t *testing.T) {
		records := newStubMaintenanceStore()
		svc := NewMaintenanceService(records, newStubTruckStore())

		_, err := svc.Create(ctx, CreateMaintenanceInput{
			TruckID:     uuid.New().String(),
			Type:        string(model.MaintenanceTypeRevision),
			Description: "annual revision",
			Date:        "2026-04-10",
		})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, records.records)
	})

	t.Run("removes record when truck status write fails", func(t *testing.T) {
		truck := &model.Truck{ID: uuid.New()}
		trucks := newStubTruckStore(truck)
		trucks.failSetStatus = true
		records := newStubMaintenanceStore()
		svc := NewMaintenanceService(records, trucks)

		_, err := svc.Create(ctx, CreateMaintenanceInput{
			TruckID:     truck.ID.String(),
			Type:        string(model.MaintenanceTypeTireChange),
			Description: "front axle tires",
			Date:        "2026-04-10",
		})
		require.Error(t, err)
		assert.Empty(t, records.records)
		assert.Len(t, records.deleted, 1)
	})
}

func TestMaintenanceServiceUpdate(t *testing.T) {
	ctx := context.Background()

	record := &model.Maintenance{
		ID:      uuid.New(),
		TruckID: uuid.New(),
		Type:    model.MaintenanceTypeRevision,
		Cost:    200,
	}
	svc := NewMaintenanceService(newStubMaintenanceStore(record), newStubTruckStore())

	t.Run("applies partial update", func(t *testing.T) {
		cost := 250.0
		updated, err := svc.Update(ctx, record.ID.String(), UpdateMaintenanceInput{Cost: &cost})
		require.NoError(t, err)
		assert.Equal(t, 250.0, updated.Cost)
		assert.Equal(t, model.MaintenanceTypeRevision, updated.Type)
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		badType := "wash"
		_, err := svc.Update(ctx, record.ID.String(), UpdateMaintenanceInput{Type: &badType})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown record is not found", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New().String(), UpdateMaintenanceInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
