package request

import "github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"

// MenuSyncRequest carries a menu payload fetched by the caller.
type MenuSyncRequest struct {
	PetpoojaData *petpooja.MenuPayload `json:"petpoojaData"`
}

type SyncRequest struct {
	RestaurantID string `json:"restaurant_id"`
	SyncType     string `json:"sync_type"`
}

// ItemStockRequest is the vendor stock callback body.
type ItemStockRequest struct {
	RestID  petpooja.ID   `json:"restID"`
	Type    petpooja.Text `json:"type"`
	InStock petpooja.Flag `json:"inStock"`
	ItemIDs petpooja.List `json:"itemID"`
}
