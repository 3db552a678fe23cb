package response

import (
	"time"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MenuSyncErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type MenuSyncResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	SyncLogID string            `json:"sync_log_id"`
	Processed syncdto.Processed `json:"processed"`
}

type SyncResponse struct {
	Success    bool              `json:"success"`
	SyncLogID  string            `json:"sync_log_id"`
	SyncLogIDs []string          `json:"sync_log_ids,omitempty"`
	SyncType   domain.SyncType   `json:"sync_type"`
	Counts     domain.SyncCounts `json:"counts"`
}

// ItemStockResponse follows the vendor callback acknowledgement format.
type ItemStockResponse struct {
	Code    string `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SyncLog struct {
	ID           string            `json:"id"`
	RestaurantID *string           `json:"restaurant_id"`
	SyncType     domain.SyncType   `json:"sync_type"`
	Status       domain.SyncStatus `json:"status"`
	Counts       domain.SyncCounts `json:"synced_counts"`
	ErrorMessage string            `json:"error_message,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	CompletedAt  *time.Time        `json:"completed_at"`
}

type SyncLogsResponse struct {
	Logs []SyncLog `json:"logs"`
}

func FromSyncLogs(logs []*domain.SyncLog) SyncLogsResponse {
	out := SyncLogsResponse{Logs: make([]SyncLog, 0, len(logs))}
	for _, l := range logs {
		out.Logs = append(out.Logs, SyncLog{
			ID:           l.ID,
			RestaurantID: l.RestaurantID,
			SyncType:     l.SyncType,
			Status:       l.Status,
			Counts:       l.Counts,
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt,
			CompletedAt:  l.CompletedAt,
		})
	}
	return out
}
