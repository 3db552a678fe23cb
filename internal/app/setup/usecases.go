package setup

import (
	"fmt"

	"github.com/LavaJover/petpooja-sync-service/internal/client"
	"github.com/LavaJover/petpooja-sync-service/internal/usecase/petpoojasync"
)

type UseCases struct {
	SyncUsecase petpoojasync.SyncUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	vendor := client.NewPetpoojaClient(deps.Config.Petpooja, deps.Metrics)

	syncUsecase, err := petpoojasync.NewDefaultSyncUsecase(
		deps.Repositories.CatalogRepo,
		deps.Repositories.RestaurantRepo,
		deps.Repositories.OrderRepo,
		deps.Repositories.SyncLogRepo,
		vendor,
		deps.Events,
		deps.Metrics,
		deps.Config.Petpooja.CallbackURL,
	)
	if err != nil {
		return nil, fmt.Errorf("sync usecase: %w", err)
	}

	return &UseCases{
		SyncUsecase: syncUsecase,
	}, nil
}
