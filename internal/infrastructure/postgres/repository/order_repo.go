package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) ListOrdersPendingPush(ctx context.Context, restaurantID string) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Preload("Items.MenuItem").
		Preload("Items.Variation").
		Preload("Items.Addons.AddonItem.Group").
		Where("restaurant_id = ? AND status = ? AND petpooja_order_id IS NULL", restaurantID, string(domain.OrderConfirmed)).
		Order("created_at").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

// MarkOrderPushed only touches orders that are still unpushed, so a row that
// already carries a vendor id keeps it.
func (r *DefaultOrderRepository) MarkOrderPushed(ctx context.Context, orderID, petpoojaOrderID string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ? AND petpooja_order_id IS NULL", orderID).
		Updates(map[string]interface{}{
			"petpooja_order_id": petpoojaOrderID,
			"status":            string(domain.OrderPreparing),
			"updated_at":        time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s already pushed or missing", orderID)
	}
	return nil
}
