package model

import (
	"time"

	"github.com/google/uuid"
)

// CheckInModel mirrors the 'check_ins' table. CreatedAt carries no
// autoCreateTime tag: the usecase's clock is the single time source, and the
// column stores whatever it produced. The schema migration adds the
// uq_check_ins_user_day unique index on (user_id, UTC day of created_at) as
// a safety net under concurrent check-ins.
type CheckInModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	GymID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	ValidatedAt *time.Time `gorm:"index"`

	User UserModel `gorm:"foreignKey:UserID"`
	Gym  GymModel  `gorm:"foreignKey:GymID"`
}

// TableName explicitly sets the table name for GORM.
func (CheckInModel) TableName() string {
	return "check_ins"
}
