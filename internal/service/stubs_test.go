package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-service/internal/model"
)

// In-memory stand-ins for the repository package. They return
// gorm.ErrRecordNotFound for missing rows so the services exercise the same
// translation path as against the real stores.

type accrual struct {
	distance float64
	fuel     float64
}

type stubTruckStore struct {
	trucks        map[uuid.UUID]*model.Truck
	statusCalls   []model.VehicleStatus
	accrueCalls   []accrual
	failSetStatus bool
}

func newStubTruckStore(trucks ...*model.Truck) *stubTruckStore {
	s := &stubTruckStore{trucks: make(map[uuid.UUID]*model.Truck)}
	for _, truck := range trucks {
		s.trucks[truck.ID] = truck
	}
	return s
}

func (s *stubTruckStore) Create(_ context.Context, truck *model.Truck) error {
	for _, existing := range s.trucks {
		if existing.PlateNumber == truck.PlateNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	if truck.ID == uuid.Nil {
		truck.ID = uuid.New()
	}
	s.trucks[truck.ID] = truck
	return nil
}

func (s *stubTruckStore) GetByID(_ context.Context, id uuid.UUID) (*model.Truck, error) {
	truck, ok := s.trucks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return truck, nil
}

func (s *stubTruckStore) List(_ context.Context) ([]model.Truck, error) {
	out := make([]model.Truck, 0, len(s.trucks))
	for _, truck := range s.trucks {
		out = append(out, *truck)
	}
	return out, nil
}

func (s *stubTruckStore) Save(_ context.Context, truck *model.Truck) error {
	if _, ok := s.trucks[truck.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.trucks[truck.ID] = truck
	return nil
}

func (s *stubTruckStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.trucks[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.trucks, id)
	return nil
}

func (s *stubTruckStore) SetStatus(_ context.Context, id uuid.UUID, status model.VehicleStatus) error {
	if s.failSetStatus {
		return gorm.ErrInvalidDB
	}
	truck, ok := s.trucks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	truck.Status = status
	s.statusCalls = append(s.statusCalls, status)
	return nil
}

func (s *stubTruckStore) AccrueTripTotals(_ context.Context, id uuid.UUID, distance, fuel float64) error {
	truck, ok := s.trucks[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	truck.Mileage += distance
	truck.FuelConsumption += fuel
	truck.Status = model.VehicleStatusAvailable
	s.accrueCalls = append(s.accrueCalls, accrual{distance: distance, fuel: fuel})
	return nil
}

type stubTrailerStore struct {
	trailers      map[uuid.UUID]*model.Trailer
	statusCalls   []model.VehicleStatus
	failSetStatus bool
}

func newStubTrailerStore(trailers ...*model.Trailer) *stubTrailerStore {
	s := &stubTrailerStore{trailers: make(map[uuid.UUID]*model.Trailer)}
	for _, trailer := range trailers {
		s.trailers[trailer.ID] = trailer
	}
	return s
}

func (s *stubTrailerStore) Create(_ context.Context, trailer *model.Trailer) error {
	if trailer.ID == uuid.Nil {
		trailer.ID = uuid.New()
	}
	s.trailers[trailer.ID] = trailer
	return nil
}

func (s *stubTrailerStore) GetByID(_ context.Context, id uuid.UUID) (*model.Trailer, error) {
	trailer, ok := s.trailers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return trailer, nil
}

func (s *stubTrailerStore) List(_ context.Context) ([]model.Trailer, error) {
	out := make([]model.Trailer, 0, len(s.trailers))
	for _, trailer := range s.trailers {
		out = append(out, *trailer)
	}
	return out, nil
}

func (s *stubTrailerStore) Save(_ context.Context, trailer *model.Trailer) error {
	if _, ok := s.trailers[trailer.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.trailers[trailer.ID] = trailer
	return nil
}

func (s *stubTrailerStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.trailers[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.trailers, id)
	return nil
}

func (s *stubTrailerStore) SetStatus(_ context.Context, id uuid.UUID, status model.VehicleStatus) error {
	if s.failSetStatus {
		return gorm.ErrInvalidDB
	}
	trailer, ok := s.trailers[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	trailer.Status = status
	s.statusCalls = append(s.statusCalls, status)
	return nil
}

type stubTripStore struct {
	trips       map[uuid.UUID]*model.Trip
	deleted     []uuid.UUID
	activeCount int64
}

func newStubTripStore(trips ...*model.Trip) *stubTripStore {
	s := &stubTripStore{trips: make(map[uuid.UUID]*model.Trip)}
	for _, trip := range trips {
		s.trips[trip.ID] = trip
	}
	return s
}

func (s *stubTripStore) Create(_ context.Context, trip *model.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	s.trips[trip.ID] = trip
	return nil
}

func (s *stubTripStore) GetByID(_ context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, ok := s.trips[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return trip, nil
}

func (s *stubTripStore) GetDetailed(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	return s.GetByID(ctx, id)
}

func (s *stubTripStore) ListDetailed(_ context.Context) ([]model.Trip, error) {
	out := make([]model.Trip, 0, len(s.trips))
	for _, trip := range s.trips {
		out = append(out, *trip)
	}
	return out, nil
}

func (s *stubTripStore) ListByDriver(_ context.Context, driverID uuid.UUID) ([]model.Trip, error) {
	var out []model.Trip
	for _, trip := range s.trips {
		if trip.DriverID == driverID {
			out = append(out, *trip)
		}
	}
	return out, nil
}

func (s *stubTripStore) Save(_ context.Context, trip *model.Trip) error {
	if _, ok := s.trips[trip.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.trips[trip.ID] = trip
	return nil
}

func (s *stubTripStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.trips[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.trips, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubTripStore) CountActiveByTruck(_ context.Context, _ uuid.UUID) (int64, error) {
	return s.activeCount, nil
}

type stubUserStore struct {
	users map[uuid.UUID]*model.User
}

func newStubUserStore(users ...*model.User) *stubUserStore {
	s := &stubUserStore{users: make(map[uuid.UUID]*model.User)}
	for _, user := range users {
		s.users[user.ID] = user
	}
	return s
}

func (s *stubUserStore) Create(_ context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserStore) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (s *stubUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, *user)
	}
	return out, nil
}

type stubMaintenanceStore struct {
	records map[uuid.UUID]*model.Maintenance
	deleted []uuid.UUID
}

func newStubMaintenanceStore(records ...*model.Maintenance) *stubMaintenanceStore {
	s := &stubMaintenanceStore{records: make(map[uuid.UUID]*model.Maintenance)}
	for _, record := range records {
		s.records[record.ID] = record
	}
	return s
}

func (s *stubMaintenanceStore) Create(_ context.Context, record *model.Maintenance) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	s.records[record.ID] = record
	return nil
}

func (s *stubMaintenanceStore) GetByID(_ context.Context, id uuid.UUID) (*model.Maintenance, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return record, nil
}

func (s *stubMaintenanceStore) ListDetailed(_ context.Context) ([]model.Maintenance, error) {
	out := make([]model.Maintenance, 0, len(s.records))
	for _, record := range s.records {
		out = append(out, *record)
	}
	return out, nil
}

func (s *stubMaintenanceStore) ListByTruck(_ context.Context, truckID uuid.UUID) ([]model.Maintenance, error) {
	var out []model.Maintenance
	for _, record := range s.records {
		if record.TruckID == truckID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (s *stubMaintenanceStore) ListUpcoming(ctx context.Context, _ float64) ([]model.Maintenance, error) {
	return s.ListDetailed(ctx)
}

func (s *stubMaintenanceStore) Save(_ context.Context, record *model.Maintenance) error {
	if _, ok := s.records[record.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	s.records[record.ID] = record
	return nil
}

func (s *stubMaintenanceStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.records, id)
	s.deleted = append(s.deleted, id)
	return nil
}
