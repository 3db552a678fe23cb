package repository

import (
	"context"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSyncLogRepository struct {
	DB *gorm.DB
}

func NewDefaultSyncLogRepository(db *gorm.DB) *DefaultSyncLogRepository {
	return &DefaultSyncLogRepository{DB: db}
}

func (r *DefaultSyncLogRepository) CreateSyncLog(ctx context.Context, log *domain.SyncLog) error {
	model, err := mappers.ToGORMSyncLog(log)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Create(model).Error
}

func (r *DefaultSyncLogRepository) FinishSyncLog(ctx context.Context, log *domain.SyncLog) error {
	model, err := mappers.ToGORMSyncLog(log)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).
		Model(&models.SyncLogModel{}).
		Where("id = ? AND status = ?", log.ID, string(domain.SyncPending)).
		Updates(map[string]interface{}{
			"restaurant_id": model.RestaurantID,
			"status":        model.Status,
			"synced_counts": model.SyncedCounts,
			"error_message": model.ErrorMessage,
			"completed_at":  model.CompletedAt,
		}).Error
}

func (r *DefaultSyncLogRepository) ListSyncLogs(ctx context.Context, restaurantID string, limit int) ([]*domain.SyncLog, error) {
	var logModels []*models.SyncLogModel
	query := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit)
	if restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}
	logs := make([]*domain.SyncLog, len(logModels))
	for i, m := range logModels {
		logs[i] = mappers.ToDomainSyncLog(m)
	}
	return logs, nil
}
