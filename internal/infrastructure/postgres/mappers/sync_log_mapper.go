package mappers

import (
	"encoding/json"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToDomainSyncLog(model *models.SyncLogModel) *domain.SyncLog {
	var counts domain.SyncCounts
	if len(model.SyncedCounts) > 0 {
		// a malformed blob only loses the summary, not the row
		_ = json.Unmarshal(model.SyncedCounts, &counts)
	}
	return &domain.SyncLog{
		ID:           model.ID,
		RestaurantID: model.RestaurantID,
		SyncType:     domain.SyncType(model.SyncType),
		Status:       domain.SyncStatus(model.Status),
		Counts:       counts,
		ErrorMessage: model.ErrorMessage,
		CreatedAt:    model.CreatedAt,
		CompletedAt:  model.CompletedAt,
	}
}

func ToGORMSyncLog(log *domain.SyncLog) (*models.SyncLogModel, error) {
	counts := []byte("{}")
	if log.Counts != nil {
		var err error
		if counts, err = json.Marshal(log.Counts); err != nil {
			return nil, err
		}
	}
	return &models.SyncLogModel{
		ID:           log.ID,
		RestaurantID: log.RestaurantID,
		SyncType:     string(log.SyncType),
		Status:       string(log.Status),
		SyncedCounts: datatypes.JSON(counts),
		ErrorMessage: log.ErrorMessage,
		CreatedAt:    log.CreatedAt,
		CompletedAt:  log.CompletedAt,
	}, nil
}
