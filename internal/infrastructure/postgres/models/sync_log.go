package models

import (
	"time"

	"gorm.io/datatypes"
)

type SyncLogModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	RestaurantID *string `gorm:"type:uuid;index:idx_sync_logs_restaurant"`
	SyncType     string  `gorm:"not null"`
	Status       string  `gorm:"not null;default:'pending'"`
	SyncedCounts datatypes.JSON
	ErrorMessage string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"index:idx_sync_logs_restaurant,sort:desc"`
	CompletedAt  *time.Time
}

func (SyncLogModel) TableName() string {
	return "sync_logs"
}
