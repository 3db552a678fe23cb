package domain

import (
	"context"

	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
)

// PetpoojaClient is the outbound side of the integration.
type PetpoojaClient interface {
	FetchMenu(ctx context.Context, creds petpooja.Credentials) (*petpooja.MenuPayload, error)
	FetchCategories(ctx context.Context, creds petpooja.Credentials) (*petpooja.CategoryListPayload, error)
	SaveOrder(ctx context.Context, req *petpooja.SaveOrderRequest) (*petpooja.SaveOrderResponse, error)
}
