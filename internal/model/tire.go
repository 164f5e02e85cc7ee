package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TireStatus string

const (
	TireStatusGood     TireStatus = "good"
	TireStatusWorn     TireStatus = "worn"
	TireStatusReplaced TireStatus = "replaced"
)

func (s TireStatus) Valid() bool {
	switch s {
	case TireStatusGood, TireStatusWorn, TireStatusReplaced:
		return true
	}
	return false
}

type Tire struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	TruckID               uuid.UUID  `gorm:"type:uuid;not null;index" json:"truck_id"`
	Position              string     `gorm:"type:varchar(32);not null" json:"position"`
	Brand                 string     `gorm:"type:varchar(64);not null" json:"brand"`
	InstallationDate      time.Time  `gorm:"not null" json:"installation_date"`
	MileageAtInstallation float64    `gorm:"not null" json:"mileage_at_installation"`
	Status                TireStatus `gorm:"type:tire_status;not null;default:good" json:"status"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Truck *Truck `gorm:"foreignKey:TruckID" json:"truck,omitempty"`
}

func (Tire) TableName() string {
	return "tires"
}

func (t *Tire) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
