package domain

import (
	"context"
	"time"
)

type SyncType string

const (
	SyncMenu      SyncType = "menu"
	SyncOrders    SyncType = "orders"
	SyncTaxes     SyncType = "taxes"
	SyncDiscounts SyncType = "discounts"
	SyncAll       SyncType = "all"
)

type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSuccess SyncStatus = "success"
	SyncFailed  SyncStatus = "failed"
)

// SyncCounts is the per-entity summary stored on a finished log row.
type SyncCounts map[string]int

type SyncLog struct {
	ID           string
	RestaurantID *string
	SyncType     SyncType
	Status       SyncStatus
	Counts       SyncCounts
	ErrorMessage string
	CreatedAt    time.Time
	CompletedAt  *time.Time
}

// SyncLogRepository owns the audit rows. A row is created pending and is
// moved to a terminal status exactly once by Finish.
type SyncLogRepository interface {
	CreateSyncLog(ctx context.Context, log *SyncLog) error
	FinishSyncLog(ctx context.Context, log *SyncLog) error
	ListSyncLogs(ctx context.Context, restaurantID string, limit int) ([]*SyncLog, error)
}

// SyncEvent announces a sync log row reaching its terminal status.
type SyncEvent struct {
	SyncLogID    string     `json:"sync_log_id"`
	RestaurantID string     `json:"restaurant_id"`
	SyncType     SyncType   `json:"sync_type"`
	Status       SyncStatus `json:"status"`
	Counts       SyncCounts `json:"counts,omitempty"`
	Error        string     `json:"error,omitempty"`
	FinishedAt   time.Time  `json:"finished_at"`
}
