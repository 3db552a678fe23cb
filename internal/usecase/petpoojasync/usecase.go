package petpoojasync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/metrics"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

type SyncUsecase interface {
	// ImportMenu upserts a menu payload the caller already fetched.
	ImportMenu(ctx context.Context, payload *petpooja.MenuPayload) (*syncdto.MenuSyncOutput, error)
	// Sync pulls the menu from the vendor, pushes pending orders, or both.
	Sync(ctx context.Context, input *syncdto.SyncInput) (*syncdto.SyncOutput, error)
	PushOrders(ctx context.Context, restaurant *domain.Restaurant) (*syncdto.OrderPushOutput, error)
	UpdateItemStock(ctx context.Context, input *syncdto.ItemStockInput) (*syncdto.ItemStockOutput, error)
	ListSyncLogs(ctx context.Context, input *syncdto.ListSyncLogsInput) ([]*domain.SyncLog, error)
}

type DefaultSyncUsecase struct {
	Catalog     domain.CatalogRepository
	Restaurants domain.RestaurantRepository
	Orders      domain.OrderRepository
	SyncLogs    domain.SyncLogRepository
	Vendor      domain.PetpoojaClient
	Events      domain.SyncEventPublisher
	Metrics     *metrics.SyncMetrics
	CallbackURL string

	validate *validator.Validate
	newRunID func() string
	now      func() time.Time
}

func NewDefaultSyncUsecase(
	catalog domain.CatalogRepository,
	restaurants domain.RestaurantRepository,
	orders domain.OrderRepository,
	syncLogs domain.SyncLogRepository,
	vendor domain.PetpoojaClient,
	events domain.SyncEventPublisher,
	syncMetrics *metrics.SyncMetrics,
	callbackURL string) (*DefaultSyncUsecase, error) {

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return &DefaultSyncUsecase{
		Catalog:     catalog,
		Restaurants: restaurants,
		Orders:      orders,
		SyncLogs:    syncLogs,
		Vendor:      vendor,
		Events:      events,
		Metrics:     syncMetrics,
		CallbackURL: callbackURL,
		validate:    validator.New(),
		newRunID:    idGenerator,
		now:         time.Now,
	}, nil
}

// startLog writes the pending audit row of a sync attempt.
func (uc *DefaultSyncUsecase) startLog(ctx context.Context, restaurantID *string, syncType domain.SyncType) (*domain.SyncLog, error) {
	log := &domain.SyncLog{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		SyncType:     syncType,
		Status:       domain.SyncPending,
		CreatedAt:    uc.now(),
	}
	if err := uc.SyncLogs.CreateSyncLog(ctx, log); err != nil {
		return nil, fmt.Errorf("create sync log: %w", err)
	}
	return log, nil
}

// finishLog moves the audit row to its terminal status, reports it and
// returns runErr joined with any bookkeeping failure.
func (uc *DefaultSyncUsecase) finishLog(ctx context.Context, log *domain.SyncLog, counts domain.SyncCounts, runErr error, started time.Time, logger *slog.Logger) error {
	completed := uc.now()
	log.CompletedAt = &completed
	log.Counts = counts
	if runErr != nil {
		log.Status = domain.SyncFailed
		log.ErrorMessage = runErr.Error()
		logger.Error("sync failed", "sync_log_id", log.ID, "error", runErr.Error())
	} else {
		log.Status = domain.SyncSuccess
		logger.Info("sync finished", "sync_log_id", log.ID, "counts", counts)
	}

	finishErr := uc.SyncLogs.FinishSyncLog(ctx, log)
	if finishErr != nil {
		logger.Error("failed to finish sync log", "sync_log_id", log.ID, "error", finishErr.Error())
		finishErr = fmt.Errorf("finish sync log: %w", finishErr)
	}

	if uc.Metrics != nil {
		uc.Metrics.ObserveSync(string(log.SyncType), string(log.Status), started)
	}

	if uc.Events != nil {
		event := domain.SyncEvent{
			SyncLogID:  log.ID,
			SyncType:   log.SyncType,
			Status:     log.Status,
			Counts:     counts,
			Error:      log.ErrorMessage,
			FinishedAt: completed,
		}
		if log.RestaurantID != nil {
			event.RestaurantID = *log.RestaurantID
		}
		if err := uc.Events.PublishSyncEvent(ctx, event); err != nil {
			logger.Warn("failed to publish sync event", "sync_log_id", log.ID, "error", err.Error())
		}
	}

	return errors.Join(runErr, finishErr)
}

func (uc *DefaultSyncUsecase) runLogger(syncType domain.SyncType) *slog.Logger {
	return slog.Default().With("sync_run", uc.newRunID(), "sync_type", string(syncType))
}
