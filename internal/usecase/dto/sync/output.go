package syncdto

import "github.com/LavaJover/petpooja-sync-service/internal/domain"

// Processed mirrors the counters reported by the menu import trigger.
type Processed struct {
	Restaurants int `json:"restaurants"`
	Categories  int `json:"categories"`
	Items       int `json:"items"`
	Variations  int `json:"variations"`
	AddonGroups int `json:"addonGroups"`
	Taxes       int `json:"taxes"`
	Discounts   int `json:"discounts"`
}

type MenuSyncOutput struct {
	SyncLogID    string
	RestaurantID string
	Counts       domain.SyncCounts
	Processed    Processed
}

type OrderPushOutput struct {
	SyncLogID string
	Pushed    int
	Failed    int
	Counts    domain.SyncCounts
}

type SyncOutput struct {
	SyncType domain.SyncType
	Menu     *MenuSyncOutput
	Orders   *OrderPushOutput
}

type ItemStockOutput struct {
	Updated int64
}
