package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusInUse       VehicleStatus = "in-use"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

type Truck struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PlateNumber     string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"plate_number"`
	Brand           string        `gorm:"type:varchar(64);not null" json:"brand"`
	Model           string        `gorm:"type:varchar(64);not null" json:"model"`
	Year            int           `gorm:"not null" json:"year"`
	Mileage         float64       `gorm:"not null;default:0" json:"mileage"`
	Status          VehicleStatus `gorm:"type:vehicle_status;not null;default:available" json:"status"`
	FuelConsumption float64       `gorm:"not null;default:0" json:"fuel_consumption"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Truck) TableName() string {
	return "trucks"
}

func (t *Truck) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
