package petpoojasync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
)

// UpdateItemStock applies a vendor stock callback to items or addon items of
// the restaurant.
func (uc *DefaultSyncUsecase) UpdateItemStock(ctx context.Context, input *syncdto.ItemStockInput) (*syncdto.ItemStockOutput, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	restaurant, err := uc.Restaurants.FindRestaurantByVendorID(ctx, input.RestaurantVendorID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrRestaurantNotFound
	}

	var updated int64
	if input.Type == syncdto.StockTypeAddon {
		updated, err = uc.Catalog.SetAddonItemsActive(ctx, restaurant.ID, input.ItemIDs, input.InStock)
	} else {
		availability := domain.ItemOutOfStock
		if input.InStock {
			availability = domain.ItemAvailable
		}
		updated, err = uc.Catalog.SetItemsAvailability(ctx, restaurant.ID, input.ItemIDs, availability)
	}
	if err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}

	slog.Info("stock updated",
		"restaurant_id", restaurant.ID,
		"type", input.Type,
		"in_stock", input.InStock,
		"updated", updated,
	)
	return &syncdto.ItemStockOutput{Updated: updated}, nil
}
