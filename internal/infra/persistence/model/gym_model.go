package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GymModel mirrors the 'gyms' table. Coordinates use numeric columns so the
// registered location round-trips without floating-point drift.
type GymModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Description *string         `gorm:"type:text"`
	Phone       *string         `gorm:"type:varchar(20)"`
	Latitude    decimal.Decimal `gorm:"type:numeric(10,7);not null"`
	Longitude   decimal.Decimal `gorm:"type:numeric(10,7);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GymModel) TableName() string {
	return "gyms"
}
