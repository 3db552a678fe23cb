package repository

import (
	"context"
	"errors"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRestaurantRepository struct {
	DB *gorm.DB
}

func NewDefaultRestaurantRepository(db *gorm.DB) *DefaultRestaurantRepository {
	return &DefaultRestaurantRepository{DB: db}
}

func (r *DefaultRestaurantRepository) GetRestaurantByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	var model models.RestaurantModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRestaurantNotFound
		}
		return nil, err
	}
	return mappers.ToDomainRestaurant(&model), nil
}

// FindRestaurantByVendorID returns nil without error when no row matches.
func (r *DefaultRestaurantRepository) FindRestaurantByVendorID(ctx context.Context, vendorID string) (*domain.Restaurant, error) {
	var model models.RestaurantModel
	if err := r.DB.WithContext(ctx).First(&model, "petpooja_restaurant_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainRestaurant(&model), nil
}

func (r *DefaultRestaurantRepository) ListRestaurantsWithCredentials(ctx context.Context) ([]*domain.Restaurant, error) {
	var restaurantModels []*models.RestaurantModel
	err := r.DB.WithContext(ctx).
		Where("petpooja_app_key <> '' AND petpooja_app_secret <> '' AND petpooja_access_token <> ''").
		Where("status <> ?", string(domain.RestaurantInactive)).
		Order("created_at").
		Find(&restaurantModels).Error
	if err != nil {
		return nil, err
	}
	restaurants := make([]*domain.Restaurant, len(restaurantModels))
	for i, m := range restaurantModels {
		restaurants[i] = mappers.ToDomainRestaurant(m)
	}
	return restaurants, nil
}
