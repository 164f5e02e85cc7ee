package service

import (
	"context"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/utils"
)

type TruckService struct {
	trucks TruckStore
	trips  TripStore
}

func NewTruckService(trucks TruckStore, trips TripStore) *TruckService {
	return &TruckService{trucks: trucks, trips: trips}
}

type CreateTruckInput struct {
	PlateNumber string
	Brand       string
	Model       string
	Year        int
	Mileage     float64
}

func (s *TruckService) Create(ctx context.Context, input CreateTruckInput) (*model.Truck, error) {
	var fieldErrs FieldErrors
	fieldErrs = requireField(fieldErrs, "plate_number", input.PlateNumber)
	fieldErrs = requireField(fieldErrs, "brand", input.Brand)
	fieldErrs = requireField(fieldErrs, "model", input.Model)
	if input.Year == 0 {
		fieldErrs = append(fieldErrs, FieldError{Field: "year", Message: "year field is required"})
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if input.Mileage < 0 {
		return nil, ErrInvalidInput
	}

	truck := &model.Truck{
		PlateNumber: utils.NormalizePlate(input.PlateNumber),
		Brand:       input.Brand,
		Model:       input.Model,
		Year:        input.Year,
		Mileage:     input.Mileage,
		Status:      model.VehicleStatusAvailable,
	}

	// Plate uniqueness is a storage constraint, not a read-then-write check.
	if err := s.trucks.Create(ctx, truck); err != nil {
		return nil, storeErr(err)
	}

	return truck, nil
}

func (s *TruckService) List(ctx context.Context) ([]model.Truck, error) {
	return s.trucks.List(ctx)
}

func (s *TruckService) Get(ctx context.Context, id string) (*model.Truck, error) {
	truckID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}
	truck, err := s.trucks.GetByID(ctx, truckID)
	if err != nil {
		return nil, storeErr(err)
	}
	return truck, nil
}

type UpdateTruckInput struct {
	PlateNumber *string
	Brand       *string
	Model       *string
	Year        *int
	Mileage     *float64
	Status      *string
}

// Update edits a truck through an explicit field allow-list. Setting status
// back to available is how an admin returns a truck from maintenance.
func (s *TruckService) Update(ctx context.Context, id string, input UpdateTruckInput) (*model.Truck, error) {
	truckID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	truck, err := s.trucks.GetByID(ctx, truckID)
	if err != nil {
		return nil, storeErr(err)
	}

	if input.PlateNumber != nil {
		truck.PlateNumber = utils.NormalizePlate(*input.PlateNumber)
	}
	if input.Brand != nil {
		truck.Brand = *input.Brand
	}
	if input.Model != nil {
		truck.Model = *input.Model
	}
	if input.Year != nil {
		truck.Year = *input.Year
	}
	if input.Mileage != nil {
		if *input.Mileage < 0 {
			return nil, ErrInvalidInput
		}
		truck.Mileage = *input.Mileage
	}
	if input.Status != nil {
		status := model.VehicleStatus(*input.Status)
		switch status {
		case model.VehicleStatusAvailable, model.VehicleStatusInUse, model.VehicleStatusMaintenance:
			truck.Status = status
		default:
			return nil, ErrInvalidInput
		}
	}

	if err := s.trucks.Save(ctx, truck); err != nil {
		return nil, storeErr(err)
	}

	return truck, nil
}

// Delete refuses to remove a truck that still has open trips referencing it.
func (s *TruckService) Delete(ctx context.Context, id string) error {
	truckID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	active, err := s.trips.CountActiveByTruck(ctx, truckID)
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrConflict
	}

	if err := s.trucks.Delete(ctx, truckID); err != nil {
		return storeErr(err)
	}
	return nil
}
