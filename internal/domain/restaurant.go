package domain

import (
	"context"
	"time"
)

type RestaurantStatus string

const (
	RestaurantActive      RestaurantStatus = "active"
	RestaurantInactive    RestaurantStatus = "inactive"
	RestaurantMaintenance RestaurantStatus = "maintenance"
)

// Restaurant is the owning scope of every synced row. The credential fields
// are edited locally and never written by a menu pull.
type Restaurant struct {
	ID                        string
	PetpoojaRestaurantID      string
	Name                      string
	Address                   string
	City                      string
	State                     string
	Country                   string
	Contact                   string
	Latitude                  float64
	Longitude                 float64
	CurrencySymbol            string
	MinimumOrderAmount        float64
	MinimumPrepTime           int
	DeliveryCharge            float64
	ServiceChargeType         string
	ServiceChargeValue        float64
	ServiceChargeApplicableOn string
	PackagingCharge           float64
	PackagingChargeType       string
	PackagingApplicableOn     string
	TaxOnDelivery             bool
	TaxOnPacking              bool
	Status                    RestaurantStatus
	Credentials               PetpoojaCredentials
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

type PetpoojaCredentials struct {
	AppKey       string
	AppSecret    string
	AccessToken  string
	RestaurantID string
}

func (c PetpoojaCredentials) Complete() bool {
	return c.AppKey != "" && c.AppSecret != "" && c.AccessToken != "" && c.RestaurantID != ""
}

type RestaurantRepository interface {
	GetRestaurantByID(ctx context.Context, id string) (*Restaurant, error)
	FindRestaurantByVendorID(ctx context.Context, vendorID string) (*Restaurant, error)
	ListRestaurantsWithCredentials(ctx context.Context) ([]*Restaurant, error)
}
