package petpoojasync

import (
	"context"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
)

const (
	DefaultLogLimit = 20
	MaxLogLimit     = 100
)

func (uc *DefaultSyncUsecase) ListSyncLogs(ctx context.Context, input *syncdto.ListSyncLogsInput) ([]*domain.SyncLog, error) {
	limit := input.Limit
	switch {
	case limit <= 0:
		limit = DefaultLogLimit
	case limit > MaxLogLimit:
		limit = MaxLogLimit
	}
	return uc.SyncLogs.ListSyncLogs(ctx, input.RestaurantID, limit)
}
