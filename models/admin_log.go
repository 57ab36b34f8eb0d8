package models

import (
	"time"

	"gorm.io/gorm"
)

// AdminLog records catalog management actions for auditing.
type AdminLog struct {
	gorm.Model
	AdminID     uint      `gorm:"index;not null" json:"admin_id"`
	ActionType  string    `gorm:"type:varchar(20);not null" json:"action_type"` // CREATE | UPDATE | DELETE
	TargetTable string    `gorm:"type:varchar(50);not null" json:"target_table"`
	TargetID    uint      `json:"target_id"`
	Details     string    `json:"details"`
	PerformedAt time.Time `json:"performed_at"`
}
