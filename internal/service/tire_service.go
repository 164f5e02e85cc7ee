package service

import (
	"context"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

type TireService struct {
	tires  TireStore
	trucks TruckStore
}

func NewTireService(tires TireStore, trucks TruckStore) *TireService {
	return &TireService{tires: tires, trucks: trucks}
}

type CreateTireInput struct {
	TruckID               string
	Position              string
	Brand                 string
	InstallationDate      string
	MileageAtInstallation float64
}

func (s *TireService) Create(ctx context.Context, input CreateTireInput) (*model.Tire, error) {
	var fieldErrs FieldErrors
	fieldErrs = requireField(fieldErrs, "truck", input.TruckID)
	fieldErrs = requireField(fieldErrs, "position", input.Position)
	fieldErrs = requireField(fieldErrs, "brand", input.Brand)
	fieldErrs = requireField(fieldErrs, "installation_date", input.InstallationDate)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	truckID, err := uuid.Parse(input.TruckID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	installedAt, err := parseDate(input.InstallationDate)
	if err != nil {
		return nil, ErrInvalidInput
	}

	if _, err := s.trucks.GetByID(ctx, truckID); err != nil {
		return nil, storeErr(err)
	}

	tire := &model.Tire{
		TruckID:               truckID,
		Position:              input.Position,
		Brand:                 input.Brand,
		InstallationDate:      installedAt,
		MileageAtInstallation: input.MileageAtInstallation,
		Status:                model.TireStatusGood,
	}

	if err := s.tires.Create(ctx, tire); err != nil {
		return nil, storeErr(err)
	}

	return tire, nil
}

func (s *TireService) List(ctx context.Context) ([]model.Tire, error) {
	return s.tires.ListDetailed(ctx)
}

func (s *TireService) ListByTruck(ctx context.Context, truckID string) ([]model.Tire, error) {
	id, err := uuid.Parse(truckID)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.tires.ListByTruck(ctx, id)
}

type UpdateTireInput struct {
	Position *string
	Brand    *string
	Status   *string
}

func (s *TireService) Update(ctx context.Context, id string, input UpdateTireInput) (*model.Tire, error) {
	tireID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	tire, err := s.tires.GetByID(ctx, tireID)
	if err != nil {
		return nil, storeErr(err)
	}

	if input.Position != nil {
		tire.Position = *input.Position
	}
	if input.Brand != nil {
		tire.Brand = *input.Brand
	}
	if input.Status != nil {
		status := model.TireStatus(*input.Status)
		if !status.Valid() {
			return nil, ErrInvalidInput
		}
		tire.Status = status
	}

	if err := s.tires.Save(ctx, tire); err != nil {
		return nil, storeErr(err)
	}

	return tire, nil
}

func (s *TireService) Delete(ctx context.Context, id string) error {
	tireID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}
	if err := s.tires.Delete(ctx, tireID); err != nil {
		return storeErr(err)
	}
	return nil
}
