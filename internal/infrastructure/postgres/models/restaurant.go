package models

import "time"

type RestaurantModel struct {
	ID                        string `gorm:"primaryKey;type:uuid"`
	PetpoojaRestaurantID      string `gorm:"uniqueIndex:idx_restaurants_petpooja_id;not null"`
	Name                      string `gorm:"not null"`
	Address                   string
	City                      string
	State                     string
	Country                   string
	Contact                   string
	Latitude                  float64
	Longitude                 float64
	CurrencySymbol            string
	MinimumOrderAmount        float64 `gorm:"default:0"`
	MinimumPrepTime           int     `gorm:"default:0"`
	DeliveryCharge            float64 `gorm:"default:0"`
	ServiceChargeType         string
	ServiceChargeValue        float64 `gorm:"default:0"`
	ServiceChargeApplicableOn string
	PackagingCharge           float64 `gorm:"default:0"`
	PackagingChargeType       string
	PackagingApplicableOn     string
	TaxOnDelivery             bool
	TaxOnPacking              bool
	Status                    string `gorm:"default:'active'"`
	PetpoojaAppKey            string
	PetpoojaAppSecret         string
	PetpoojaAccessToken       string
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (RestaurantModel) TableName() string {
	return "restaurants"
}
