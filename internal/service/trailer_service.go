package service

import (
	"context"

	"github.com/google/uuid"

	"fleet-service/internal/model"
	"fleet-service/internal/utils"
)

type TrailerService struct {
	trailers TrailerStore
}

func NewTrailerService(trailers TrailerStore) *TrailerService {
	return &TrailerService{trailers: trailers}
}

type CreateTrailerInput struct {
	PlateNumber string
	Type        string
	Capacity    float64
}

func (s *TrailerService) Create(ctx context.Context, input CreateTrailerInput) (*model.Trailer, error) {
	var fieldErrs FieldErrors
	fieldErrs = requireField(fieldErrs, "plate_number", input.PlateNumber)
	fieldErrs = requireField(fieldErrs, "type", input.Type)
	if input.Capacity == 0 {
		fieldErrs = append(fieldErrs, FieldError{Field: "capacity", Message: "capacity field is required"})
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if input.Capacity < 0 {
		return nil, ErrInvalidInput
	}

	trailer := &model.Trailer{
		PlateNumber: utils.NormalizePlate(input.PlateNumber),
		Type:        input.Type,
		Capacity:    input.Capacity,
		Status:      model.VehicleStatusAvailable,
	}

	if err := s.trailers.Create(ctx, trailer); err != nil {
		return nil, storeErr(err)
	}

	return trailer, nil
}

func (s *TrailerService) List(ctx context.Context) ([]model.Trailer, error) {
	return s.trailers.List(ctx)
}

func (s *TrailerService) Get(ctx context.Context, id string) (*model.Trailer, error) {
	trailerID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}
	trailer, err := s.trailers.GetByID(ctx, trailerID)
	if err != nil {
		return nil, storeErr(err)
	}
	return trailer, nil
}

type UpdateTrailerInput struct {
	PlateNumber *string
	Type        *string
	Capacity    *float64
	Status      *string
}

func (s *TrailerService) Update(ctx context.Context, id string, input UpdateTrailerInput) (*model.Trailer, error) {
	trailerID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	trailer, err := s.trailers.GetByID(ctx, trailerID)
	if err != nil {
		return nil, storeErr(err)
	}

	if input.PlateNumber != nil {
		trailer.PlateNumber = utils.NormalizePlate(*input.PlateNumber)
	}
	if input.Type != nil {
		trailer.Type = *input.Type
	}
	if input.Capacity != nil {
		if *input.Capacity < 0 {
			return nil, ErrInvalidInput
		}
		trailer.Capacity = *input.Capacity
	}
	if input.Status != nil {
		status := model.VehicleStatus(*input.Status)
		switch status {
		case model.VehicleStatusAvailable, model.VehicleStatusInUse, model.VehicleStatusMaintenance:
			trailer.Status = status
		default:
			return nil, ErrInvalidInput
		}
	}

	if err := s.trailers.Save(ctx, trailer); err != nil {
		return nil, storeErr(err)
	}

	return trailer, nil
}

func (s *TrailerService) Delete(ctx context.Context, id string) error {
	trailerID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}
	if err := s.trailers.Delete(ctx, trailerID); err != nil {
		return storeErr(err)
	}
	return nil
}
