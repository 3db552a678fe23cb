package mappers

import (
	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
)

func ToDomainRestaurant(model *models.RestaurantModel) *domain.Restaurant {
	return &domain.Restaurant{
		ID:                        model.ID,
		PetpoojaRestaurantID:      model.PetpoojaRestaurantID,
		Name:                      model.Name,
		Address:                   model.Address,
		City:                      model.City,
		State:                     model.State,
		Country:                   model.Country,
		Contact:                   model.Contact,
		Latitude:                  model.Latitude,
		Longitude:                 model.Longitude,
		CurrencySymbol:            model.CurrencySymbol,
		MinimumOrderAmount:        model.MinimumOrderAmount,
		MinimumPrepTime:           model.MinimumPrepTime,
		DeliveryCharge:            model.DeliveryCharge,
		ServiceChargeType:         model.ServiceChargeType,
		ServiceChargeValue:        model.ServiceChargeValue,
		ServiceChargeApplicableOn: model.ServiceChargeApplicableOn,
		PackagingCharge:           model.PackagingCharge,
		PackagingChargeType:       model.PackagingChargeType,
		PackagingApplicableOn:     model.PackagingApplicableOn,
		TaxOnDelivery:             model.TaxOnDelivery,
		TaxOnPacking:              model.TaxOnPacking,
		Status:                    domain.RestaurantStatus(model.Status),
		Credentials: domain.PetpoojaCredentials{
			AppKey:       model.PetpoojaAppKey,
			AppSecret:    model.PetpoojaAppSecret,
			AccessToken:  model.PetpoojaAccessToken,
			RestaurantID: model.PetpoojaRestaurantID,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// ToGORMRestaurant leaves the credential columns empty: they are only ever
// written by the admin UI.
func ToGORMRestaurant(r *domain.Restaurant) *models.RestaurantModel {
	return &models.RestaurantModel{
		ID:                        r.ID,
		PetpoojaRestaurantID:      r.PetpoojaRestaurantID,
		Name:                      r.Name,
		Address:                   r.Address,
		City:                      r.City,
		State:                     r.State,
		Country:                   r.Country,
		Contact:                   r.Contact,
		Latitude:                  r.Latitude,
		Longitude:                 r.Longitude,
		CurrencySymbol:            r.CurrencySymbol,
		MinimumOrderAmount:        r.MinimumOrderAmount,
		MinimumPrepTime:           r.MinimumPrepTime,
		DeliveryCharge:            r.DeliveryCharge,
		ServiceChargeType:         r.ServiceChargeType,
		ServiceChargeValue:        r.ServiceChargeValue,
		ServiceChargeApplicableOn: r.ServiceChargeApplicableOn,
		PackagingCharge:           r.PackagingCharge,
		PackagingChargeType:       r.PackagingChargeType,
		PackagingApplicableOn:     r.PackagingApplicableOn,
		TaxOnDelivery:             r.TaxOnDelivery,
		TaxOnPacking:              r.TaxOnPacking,
		Status:                    string(r.Status),
	}
}
