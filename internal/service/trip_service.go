package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fleet-service/internal/model"
)

// TripService drives trips through todo -> in-progress -> completed and
// keeps truck and trailer status in step with the lifecycle.
type TripService struct {
	trips    TripStore
	trucks   TruckStore
	trailers TrailerStore
	users    UserStore
}

func NewTripService(trips TripStore, trucks TruckStore, trailers TrailerStore, users UserStore) *TripService {
	return &TripService{
		trips:    trips,
		trucks:   trucks,
		trailers: trailers,
		users:    users,
	}
}

type CreateTripInput struct {
	DriverID      string
	TruckID       string
	TrailerID     *string
	Departure     string
	Destination   string
	DepartureDate string
	Notes         string
}

func (s *TripService) Create(ctx context.Context, input CreateTripInput) (*model.Trip, error) {
	var fieldErrs FieldErrors
	fieldErrs = requireField(fieldErrs, "driver", input.DriverID)
	fieldErrs = requireField(fieldErrs, "truck", input.TruckID)
	fieldErrs = requireField(fieldErrs, "departure", input.Departure)
	fieldErrs = requireField(fieldErrs, "destination", input.Destination)
	fieldErrs = requireField(fieldErrs, "departure_date", input.DepartureDate)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	driverID, err := uuid.Parse(input.DriverID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	truckID, err := uuid.Parse(input.TruckID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	var trailerID *uuid.UUID
	if input.TrailerID != nil && *input.TrailerID != "" {
		parsed, err := uuid.Parse(*input.TrailerID)
		if err != nil {
			return nil, ErrInvalidInput
		}
		trailerID = &parsed
	}

	departureDate, err := parseDate(input.DepartureDate)
	if err != nil {
		return nil, ErrInvalidInput
	}

	// Dangling references fail loudly before anything is written.
	driver, err := s.users.GetByID(ctx, driverID)
	if err != nil {
		return nil, storeErr(err)
	}
	if driver.Role != model.RoleDriver {
		return nil, ErrInvalidInput
	}
	truck, err := s.trucks.GetByID(ctx, truckID)
	if err != nil {
		return nil, storeErr(err)
	}
	priorTruckStatus := truck.Status
	if trailerID != nil {
		if _, err := s.trailers.GetByID(ctx, *trailerID); err != nil {
			return nil, storeErr(err)
		}
	}

	trip := &model.Trip{
		DriverID:      driverID,
		TruckID:       truckID,
		TrailerID:     trailerID,
		Departure:     input.Departure,
		Destination:   input.Destination,
		DepartureDate: departureDate,
		Status:        model.TripStatusTodo,
		Notes:         input.Notes,
	}

	if err := s.trips.Create(ctx, trip); err != nil {
		return nil, storeErr(err)
	}

	// Mark truck and trailer in-use; remove the trip again if a status
	// write fails so no half-created dispatch remains.
	if err := s.trucks.SetStatus(ctx, truckID, model.VehicleStatusInUse); err != nil {
		_ = s.trips.Delete(ctx, trip.ID)
		return nil, storeErr(err)
	}
	if trailerID != nil {
		if err := s.trailers.SetStatus(ctx, *trailerID, model.VehicleStatusInUse); err != nil {
			// Put the truck back to whatever it was before this create.
			_ = s.trucks.SetStatus(ctx, truckID, priorTruckStatus)
			_ = s.trips.Delete(ctx, trip.ID)
			return nil, storeErr(err)
		}
	}

	return trip, nil
}

func (s *TripService) List(ctx context.Context) ([]model.Trip, error) {
	return s.trips.ListDetailed(ctx)
}

// ListMine returns the authenticated driver's trips with truck and trailer
// expanded for display.
func (s *TripService) ListMine(ctx context.Context, principal model.Principal) ([]model.Trip, error) {
	return s.trips.ListByDriver(ctx, principal.UserID)
}

func (s *TripService) Get(ctx context.Context, principal model.Principal, id string) (*model.Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	trip, err := s.trips.GetDetailed(ctx, tripID)
	if err != nil {
		return nil, storeErr(err)
	}

	if principal.IsDriver() && trip.DriverID != principal.UserID {
		return nil, ErrPermissionDenied
	}

	return trip, nil
}

type UpdateTripInput struct {
	Departure     *string
	Destination   *string
	DepartureDate *string
	Notes         *string
}

// Update applies a partial edit of the trip's route fields. Status changes
// go through UpdateStatus only.
func (s *TripService) Update(ctx context.Context, id string, input UpdateTripInput) (*model.Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, storeErr(err)
	}

	if input.Departure != nil {
		trip.Departure = *input.Departure
	}
	if input.Destination != nil {
		trip.Destination = *input.Destination
	}
	if input.DepartureDate != nil {
		parsed, err := parseDate(*input.DepartureDate)
		if err != nil {
			return nil, ErrInvalidInput
		}
		trip.DepartureDate = parsed
	}
	if input.Notes != nil {
		trip.Notes = *input.Notes
	}

	if err := s.trips.Save(ctx, trip); err != nil {
		return nil, storeErr(err)
	}

	return trip, nil
}

type UpdateTripStatusInput struct {
	Status       string
	StartMileage *float64
	EndMileage   *float64
	FuelUsed     *float64
	Notes        *string
}

// UpdateStatus applies a lifecycle transition. On completion the truck (and
// trailer, when attached) is always released back to available; distance and
// fuel accrue into the truck only when both odometer readings are present,
// and exactly once, because completed is terminal.
func (s *TripService) UpdateStatus(ctx context.Context, principal model.Principal, id string, input UpdateTripStatusInput) (*model.Trip, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidInput
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, storeErr(err)
	}

	if principal.IsDriver() && trip.DriverID != principal.UserID {
		return nil, ErrPermissionDenied
	}

	next := model.TripStatus(input.Status)
	if !next.Valid() {
		return nil, ErrInvalidInput
	}
	if !model.CanTransition(trip.Status, next) {
		return nil, ErrConflict
	}

	if input.StartMileage != nil {
		trip.StartMileage = input.StartMileage
	}
	if input.EndMileage != nil {
		trip.EndMileage = input.EndMileage
	}
	if input.FuelUsed != nil {
		trip.FuelUsed = *input.FuelUsed
	}
	if input.Notes != nil {
		trip.Notes = *input.Notes
	}

	completing := next == model.TripStatusCompleted
	hasReadings := trip.StartMileage != nil && trip.EndMileage != nil

	if completing && hasReadings && *trip.EndMileage < *trip.StartMileage {
		return nil, ErrInvalidInput
	}

	trip.Status = next
	if completing && trip.ArrivalDate == nil {
		now := time.Now()
		trip.ArrivalDate = &now
	}

	// The trip reaches its terminal state before the truck is touched, so a
	// retried completion is rejected rather than accrued twice.
	if err := s.trips.Save(ctx, trip); err != nil {
		return nil, storeErr(err)
	}

	if completing {
		if hasReadings {
			distance := *trip.EndMileage - *trip.StartMileage
			if err := s.trucks.AccrueTripTotals(ctx, trip.TruckID, distance, trip.FuelUsed); err != nil {
				return nil, storeErr(err)
			}
		} else {
			if err := s.trucks.SetStatus(ctx, trip.TruckID, model.VehicleStatusAvailable); err != nil {
				return nil, storeErr(err)
			}
		}
		if trip.TrailerID != nil {
			if err := s.trailers.SetStatus(ctx, *trip.TrailerID, model.VehicleStatusAvailable); err != nil {
				return nil, storeErr(err)
			}
		}
	}

	return trip, nil
}

// Delete removes a trip. A truck or trailer still tied up by a non-completed
// trip is released so its status does not point at a dispatch that no longer
// exists.
func (s *TripService) Delete(ctx context.Context, id string) error {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidInput
	}

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return storeErr(err)
	}

	if err := s.trips.Delete(ctx, tripID); err != nil {
		return storeErr(err)
	}

	if trip.Status != model.TripStatusCompleted {
		if err := s.trucks.SetStatus(ctx, trip.TruckID, model.VehicleStatusAvailable); err != nil {
			if err = storeErr(err); !errors.Is(err, ErrNotFound) {
				return err
			}
		}
		if trip.TrailerID != nil {
			if err := s.trailers.SetStatus(ctx, *trip.TrailerID, model.VehicleStatusAvailable); err != nil {
				if err = storeErr(err); !errors.Is(err, ErrNotFound) {
					return err
				}
			}
		}
	}

	return nil
}

func parseDate(raw string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidInput
}
