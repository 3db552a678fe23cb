package syncdto

import "github.com/LavaJover/petpooja-sync-service/internal/domain"

type SyncInput struct {
	RestaurantID string          `json:"restaurant_id" validate:"required"`
	SyncType     domain.SyncType `json:"sync_type" validate:"required,oneof=menu orders all"`
}

const (
	StockTypeItem  = "item"
	StockTypeAddon = "addon"
)

// ItemStockInput is the vendor stock callback.
type ItemStockInput struct {
	RestaurantVendorID string `validate:"required"`
	Type               string `validate:"omitempty,oneof=item addon"`
	InStock            bool
	ItemIDs            []string `validate:"required,min=1,dive,required"`
}

type ListSyncLogsInput struct {
	RestaurantID string
	Limit        int
}
