package petpoojasync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
)

// ValidateMenuPayload rejects a payload before anything is written.
func ValidateMenuPayload(payload *petpooja.MenuPayload) error {
	if payload == nil {
		return fmt.Errorf("%w: empty payload", domain.ErrInvalidPayload)
	}
	if !payload.Success {
		msg := payload.Message.String()
		if msg == "" {
			msg = "success marker is not set"
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidPayload, msg)
	}
	if len(payload.Restaurants) == 0 {
		return fmt.Errorf("%w: no restaurant in payload", domain.ErrInvalidPayload)
	}
	if payload.Restaurants[0].RestaurantID.IsZero() {
		return fmt.Errorf("%w: restaurant id is missing", domain.ErrInvalidPayload)
	}
	return nil
}

func (uc *DefaultSyncUsecase) ImportMenu(ctx context.Context, payload *petpooja.MenuPayload) (*syncdto.MenuSyncOutput, error) {
	if err := ValidateMenuPayload(payload); err != nil {
		return nil, err
	}

	vendorID := payload.Restaurants[0].RestaurantID.String()
	existing, err := uc.Restaurants.FindRestaurantByVendorID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("lookup restaurant %s: %w", vendorID, err)
	}
	var restaurantID *string
	if existing != nil {
		restaurantID = &existing.ID
	}

	logger := uc.runLogger(domain.SyncMenu).With("petpooja_restaurant_id", vendorID)
	started := uc.now()
	log, err := uc.startLog(ctx, restaurantID, domain.SyncMenu)
	if err != nil {
		return nil, err
	}

	// the pass runs to completion even if the caller goes away
	ctx = context.WithoutCancel(ctx)
	return uc.runMenu(ctx, log, payload, started, logger)
}

// runMenu executes the stage pipeline for an already created log row and
// finishes that row.
func (uc *DefaultSyncUsecase) runMenu(ctx context.Context, log *domain.SyncLog, payload *petpooja.MenuPayload, started time.Time, logger *slog.Logger) (*syncdto.MenuSyncOutput, error) {
	logger.Info("menu sync started", "sync_log_id", log.ID)

	run := newMenuRun(uc.Catalog, payload, uc.Metrics, logger)
	runErr := run.run(ctx, MenuStages)
	if run.restaurantID != "" {
		log.RestaurantID = &run.restaurantID
	}
	if runErr == nil && uc.Metrics != nil {
		uc.Metrics.AddEntities(run.counts)
	}
	if err := uc.finishLog(ctx, log, run.counts, runErr, started, logger); err != nil {
		return nil, err
	}

	return &syncdto.MenuSyncOutput{
		SyncLogID:    log.ID,
		RestaurantID: run.restaurantID,
		Counts:       run.counts,
		Processed:    processedFromCounts(run.counts),
	}, nil
}

func processedFromCounts(counts domain.SyncCounts) syncdto.Processed {
	return syncdto.Processed{
		Restaurants: counts[CountRestaurants],
		Categories:  counts[CountCategories],
		Items:       counts[CountItems],
		Variations:  counts[CountVariations],
		AddonGroups: counts[CountAddonGroups],
		Taxes:       counts[CountTaxes],
		Discounts:   counts[CountDiscounts],
	}
}

// pullMenu fetches the menu of a restaurant from the vendor and runs it
// through the pipeline under one log row.
func (uc *DefaultSyncUsecase) pullMenu(ctx context.Context, restaurant *domain.Restaurant) (*syncdto.MenuSyncOutput, error) {
	logger := uc.runLogger(domain.SyncMenu).With("restaurant_id", restaurant.ID)
	started := uc.now()
	log, err := uc.startLog(ctx, &restaurant.ID, domain.SyncMenu)
	if err != nil {
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)

	payload, err := uc.fetchMenu(ctx, restaurant)
	if err == nil {
		err = ValidateMenuPayload(payload)
	}
	if err != nil {
		return nil, uc.finishLog(ctx, log, nil, err, started, logger)
	}
	return uc.runMenu(ctx, log, payload, started, logger)
}

func (uc *DefaultSyncUsecase) fetchMenu(ctx context.Context, restaurant *domain.Restaurant) (*petpooja.MenuPayload, error) {
	creds := vendorCredentials(restaurant)
	payload, err := uc.Vendor.FetchMenu(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("fetch menu: %w", err)
	}
	if payload.Success && len(payload.Categories) == 0 {
		categories, err := uc.Vendor.FetchCategories(ctx, creds)
		if err != nil {
			return nil, fmt.Errorf("fetch categories: %w", err)
		}
		if categories.Success {
			payload.Categories = categories.Categories
			if len(payload.ParentCategories) == 0 {
				payload.ParentCategories = categories.ParentCategories
			}
		}
	}
	return payload, nil
}

func vendorCredentials(restaurant *domain.Restaurant) petpooja.Credentials {
	return petpooja.Credentials{
		AppKey:       restaurant.Credentials.AppKey,
		AppSecret:    restaurant.Credentials.AppSecret,
		AccessToken:  restaurant.Credentials.AccessToken,
		RestaurantID: restaurant.Credentials.RestaurantID,
	}
}
