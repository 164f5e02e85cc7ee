package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trailer struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	PlateNumber string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"plate_number"`
	Type        string        `gorm:"type:varchar(64);not null" json:"type"`
	Capacity    float64       `gorm:"not null" json:"capacity"`
	Status      VehicleStatus `gorm:"type:vehicle_status;not null;default:available" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Trailer) TableName() string {
	return "trailers"
}

func (t *Trailer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
