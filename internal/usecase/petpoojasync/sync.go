package petpoojasync

import (
	"context"
	"fmt"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
)

func (uc *DefaultSyncUsecase) Sync(ctx context.Context, input *syncdto.SyncInput) (*syncdto.SyncOutput, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	restaurant, err := uc.Restaurants.GetRestaurantByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !restaurant.Credentials.Complete() {
		return nil, domain.ErrMissingCredentials
	}

	out := &syncdto.SyncOutput{SyncType: input.SyncType}
	if input.SyncType == domain.SyncMenu || input.SyncType == domain.SyncAll {
		if out.Menu, err = uc.pullMenu(ctx, restaurant); err != nil {
			return nil, err
		}
	}
	if input.SyncType == domain.SyncOrders || input.SyncType == domain.SyncAll {
		if out.Orders, err = uc.PushOrders(ctx, restaurant); err != nil {
			return nil, err
		}
	}
	return out, nil
}
