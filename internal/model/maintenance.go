package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceType string

const (
	MaintenanceTypeTireChange MaintenanceType = "tire-change"
	MaintenanceTypeOilChange  MaintenanceType = "oil-change"
	MaintenanceTypeRevision   MaintenanceType = "revision"
	MaintenanceTypeRepair     MaintenanceType = "repair"
)

func (t MaintenanceType) Valid() bool {
	switch t {
	case MaintenanceTypeTireChange, MaintenanceTypeOilChange, MaintenanceTypeRevision, MaintenanceTypeRepair:
		return true
	}
	return false
}

type Maintenance struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TruckID           uuid.UUID       `gorm:"type:uuid;not null;index" json:"truck_id"`
	Type              MaintenanceType `gorm:"type:maintenance_type;not null" json:"type"`
	Description       string          `gorm:"type:text;not null" json:"description"`
	Date              time.Time       `gorm:"not null" json:"date"`
	Cost              float64         `gorm:"not null;default:0" json:"cost"`
	Mileage           float64         `gorm:"not null" json:"mileage"`
	NextMaintenanceAt *float64        `json:"next_maintenance_at,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Truck *Truck `gorm:"foreignKey:TruckID" json:"truck,omitempty"`
}

func (Maintenance) TableName() string {
	return "maintenances"
}

func (m *Maintenance) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
