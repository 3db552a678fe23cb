package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/usecase/petpoojasync"
)

type BackgroundTasks struct {
	SyncUsecase       petpoojasync.SyncUsecase
	RestaurantRepo    domain.RestaurantRepository
	OrderPushInterval time.Duration
}

func NewBackgroundTasks(syncUC petpoojasync.SyncUsecase, restaurantRepo domain.RestaurantRepository, orderPushInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		SyncUsecase:       syncUC,
		RestaurantRepo:    restaurantRepo,
		OrderPushInterval: orderPushInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	if bt.OrderPushInterval > 0 {
		go bt.startOrderPush(ctx)
	}
}

func (bt *BackgroundTasks) startOrderPush(ctx context.Context) {
	ticker := time.NewTicker(bt.OrderPushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.PushPendingOrders(ctx)
		}
	}
}

// PushPendingOrders runs one order push per restaurant with credentials,
// one restaurant at a time.
func (bt *BackgroundTasks) PushPendingOrders(ctx context.Context) {
	restaurants, err := bt.RestaurantRepo.ListRestaurantsWithCredentials(ctx)
	if err != nil {
		slog.Error("failed to list restaurants for order push", "error", err.Error())
		return
	}
	for _, restaurant := range restaurants {
		if ctx.Err() != nil {
			return
		}
		if !restaurant.Credentials.Complete() {
			continue
		}
		out, err := bt.SyncUsecase.PushOrders(ctx, restaurant)
		if err != nil {
			slog.Error("scheduled order push failed", "restaurant_id", restaurant.ID, "error", err.Error())
			continue
		}
		if out.Pushed > 0 || out.Failed > 0 {
			slog.Info("scheduled order push", "restaurant_id", restaurant.ID, "pushed", out.Pushed, "failed", out.Failed)
		}
	}
}
