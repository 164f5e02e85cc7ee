package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripStatus string

const (
	TripStatusTodo       TripStatus = "todo"
	TripStatusInProgress TripStatus = "in-progress"
	TripStatusCompleted  TripStatus = "completed"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusTodo, TripStatusInProgress, TripStatusCompleted:
		return true
	}
	return false
}

// allowedTransitions is the forward-only trip lifecycle. Completed is a
// terminal state: once a trip has accrued into its truck it never moves
// again, so distance and fuel can never be counted twice.
var allowedTransitions = map[TripStatus][]TripStatus{
	TripStatusTodo:       {TripStatusInProgress, TripStatusCompleted},
	TripStatusInProgress: {TripStatusCompleted},
	TripStatusCompleted:  {},
}

// CanTransition reports whether from -> to is an allowed status change.
// Re-applying a non-terminal status is allowed so drivers can amend
// odometer readings mid-trip.
func CanTransition(from, to TripStatus) bool {
	if from == TripStatusCompleted {
		return false
	}
	if from == to {
		return true
	}
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Trip struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	DriverID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"driver_id"`
	TruckID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"truck_id"`
	TrailerID     *uuid.UUID `gorm:"type:uuid;index" json:"trailer_id,omitempty"`
	Departure     string     `gorm:"type:varchar(128);not null" json:"departure"`
	Destination   string     `gorm:"type:varchar(128);not null" json:"destination"`
	DepartureDate time.Time  `gorm:"not null" json:"departure_date"`
	ArrivalDate   *time.Time `json:"arrival_date,omitempty"`
	StartMileage  *float64   `json:"start_mileage,omitempty"`
	EndMileage    *float64   `json:"end_mileage,omitempty"`
	FuelUsed      float64    `gorm:"not null;default:0" json:"fuel_used"`
	Status        TripStatus `gorm:"type:trip_status;not null;default:todo" json:"status"`
	Notes         string     `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Driver  *User    `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
	Truck   *Truck   `gorm:"foreignKey:TruckID" json:"truck,omitempty"`
	Trailer *Trailer `gorm:"foreignKey:TrailerID" json:"trailer,omitempty"`
}

func (Trip) TableName() string {
	return "trips"
}

func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Distance is the odometer delta of the trip, or 0 when either reading is
// missing. Incomplete trips contribute zero distance, not an error.
func (t *Trip) Distance() float64 {
	if t.StartMileage == nil || t.EndMileage == nil {
		return 0
	}
	return *t.EndMileage - *t.StartMileage
}
