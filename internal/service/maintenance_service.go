package service

import (
	"context"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

// upcomingWindowKm is how close (in odometer km) a truck must be to a
// record's next_maintenance_at threshold to show up in the upcoming list.
const upcomingWindowKm = 1000

type MaintenanceService struct {
	records MaintenanceStore
	trucks  TruckStore
}

func NewMaintenanceService(records MaintenanceStore, trucks TruckStore) *MaintenanceService {
	return &MaintenanceService{records: records, trucks: trucks}
}

type CreateMaintenanceInput struct {
	TruckID           string
	Type              string
	Description       string
	Date              string
	Cost              float64
	Mileage           float64
	NextMaintenanceAt *float64
}

// Create registers a service record and forces the referenced truck into
// maintenance status, whatever its prior status was. The truck stays there
// until an admin updates it; maintenance completion is not a tracked state.
func (s *MaintenanceService) Create(ctx context.Context, input CreateMaintenanceInput) (*model.Maintenance, error) {
	var fieldErrs FieldErrors
	fieldErrs = requireField(fieldErrs, "truck", input.TruckID)
	fieldErrs = requireField(fieldErrs, "type", input.Type)
	fieldErrs = requireField(fieldErrs, "description", input.Description)
	fieldErrs = requireField(fieldErrs, "date", input.Date)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	truckID, err := uuid.Parse(input.TruckID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	mType := model.MaintenanceType(input.Type)
	if !mType.Valid() {
		return nil, ErrInvalidInput
	}

	if input.Cost < 0 || input.Mileage < 0 {
		return nil, ErrInvalidInput
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if _, err := s.trucks.GetByID(ctx, truckID); err != nil {
		return nil, storeErr(err)
	}

	record := &model.Maintenance{
		TruckID:           truckID,
		Type:              mType,
		Description:       input.Description,
		Date:              date,
		Cost:              input.Cost,
		Mileage:           input.Mileage,
		NextMaintenanceAt: input.NextMaintenanceAt,
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, storeErr(err)
	}

	if err := s.trucks.SetStatus(ctx, truckID, model.VehicleStatusMaintenance); err != nil {
		_ = s.records.Delete(ctx, record.ID)
		return nil, storeErr(err)
	}

	return record, nil
}

func (s *MaintenanceService) List(ctx context.Context) ([]model.Maintenance, error) {
	return s.records.ListDetailed(ctx)
}

func (s *MaintenanceService) ListByTruck(ctx context.Context, truckID string) ([]model.Maintenance, error) {
	id, err := uuid.Parse(truckID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.records.ListByTruck(ctx, id)
}

func (s *MaintenanceService) ListUpcoming(ctx context.Context) ([]model.Maintenance, error) {
	return s.records.ListUpcoming(ctx, upcomingWindowKm)
}

type UpdateMaintenanceInput struct {
	Type              *string
	Description       *string
	Date              *string
	Cost              *float64
	Mileage           *float64
	NextMaintenanceAt *float64
}

func (s *MaintenanceService) Update(ctx context.Context, id string, input UpdateMaintenanceInput) (*model.Maintenance, error) {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		return nil, storeErr(err)
	}

	if input.Type != nil {
		mType := model.MaintenanceType(*input.Type)
		if !mType.Valid() {
			return nil, ErrInvalidInput
		}
		record.Type = mType
	}
	if input.Description != nil {
		record.Description = *input.Description
	}
	if input.Date != nil {
		parsed, err := parseDate(*input.Date)
		if err != nil {
			return nil, ErrInvalidInput
		}
		record.Date = parsed
	}
	if input.Cost != nil {
		if *input.Cost < 0 {
			return nil, ErrInvalidInput
		}
		record.Cost = *input.Cost
	}
	if input.Mileage != nil {
		record.Mileage = *input.Mileage
	}
	if input.NextMaintenanceAt != nil {
		record.NextMaintenanceAt = input.NextMaintenanceAt
	}

	if err := s.records.Save(ctx, record); err != nil {
		return nil, storeErr(err)
	}

	return record, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	recordID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}
	if err := s.records.Delete(ctx, recordID); err != nil {
		return storeErr(err)
	}
	return nil
}
