package domain

import (
	"context"
	"encoding/json"
)

type ItemAvailability string

const (
	ItemAvailable   ItemAvailability = "available"
	ItemUnavailable ItemAvailability = "unavailable"
	ItemOutOfStock  ItemAvailability = "out_of_stock"
)

type OrderType struct {
	RestaurantID string
	VendorID     string
	Name         string
}

type Attribute struct {
	RestaurantID string
	VendorID     string
	Name         string
	IsActive     bool
}

// VariationMaster is an entry of the restaurant-wide variation catalogue.
type VariationMaster struct {
	RestaurantID string
	VendorID     string
	Name         string
	GroupName    string
	IsActive     bool
}

type AddonGroup struct {
	RestaurantID string
	VendorID     string
	Name         string
	Rank         int
	IsActive     bool
}

type AddonItem struct {
	RestaurantID string
	VendorID     string
	GroupID      string
	Name         string
	Price        float64
	Rank         int
	IsActive     bool
}

type TaxType int

const (
	TaxPercentage TaxType = 1
	TaxFixed      TaxType = 2
)

type TaxBase int

const (
	TaxOnCore  TaxBase = 1
	TaxOnTotal TaxBase = 2
)

type Tax struct {
	RestaurantID string
	VendorID     string
	Name         string
	Rate         float64
	Type         TaxType
	CoreOrTotal  TaxBase
	OrderTypes   []string
	Rank         int
	IsActive     bool
}

type Discount struct {
	RestaurantID  string
	VendorID      string
	Name          string
	DiscountType  int
	Value         float64
	ApplicableOn  string
	OrderTypes    []string
	Days          string
	AvailableFrom string
	AvailableTill string
	StartsAt      string
	EndsAt        string
	MinAmount     float64
	MaxAmount     float64
	HasCoupon     bool
	OnBill        bool
	IsActive      bool
}

type Category struct {
	RestaurantID  string
	VendorID      string
	ParentID      *string
	Name          string
	Rank          int
	IsActive      bool
	Timings       string
	AvailableFrom string
	AvailableTo   string
	ImageURL      string
}

type MenuItem struct {
	RestaurantID    string
	VendorID        string
	CategoryID      *string
	Name            string
	Description     string
	Price           float64
	IsVegetarian    bool
	IsPopular       bool
	Availability    ItemAvailability
	PrepTime        int
	PackingCharge   float64
	AllowAddons     bool
	AllowVariations bool
	Tags            []string
	Nutrition       json.RawMessage
	Rank            int
	TaxVendorIDs    []string
	OrderTypeIDs    []string
	ImageURL        string
}

type Variation struct {
	RestaurantID   string
	VendorID       string
	MasterVendorID string
	ItemID         string
	Name           string
	GroupName      string
	Price          float64
	PackingCharge  float64
	Rank           int
	IsActive       bool
}

type ItemAddonGroup struct {
	RestaurantID string
	ItemID       string
	AddonGroupID string
	MinSelection int
	MaxSelection int
}

// CatalogRepository writes vendor entities one row at a time. Every Upsert
// matches on (vendor id, restaurant id), updates in place when the row exists
// and returns the internal id of the written row.
type CatalogRepository interface {
	UpsertRestaurant(ctx context.Context, restaurant *Restaurant) (string, error)
	UpsertOrderType(ctx context.Context, orderType *OrderType) (string, error)
	UpsertAttribute(ctx context.Context, attribute *Attribute) (string, error)
	UpsertVariationMaster(ctx context.Context, variation *VariationMaster) (string, error)
	UpsertAddonGroup(ctx context.Context, group *AddonGroup) (string, error)
	UpsertAddonItem(ctx context.Context, item *AddonItem) (string, error)
	UpsertTax(ctx context.Context, tax *Tax) (string, error)
	UpsertDiscount(ctx context.Context, discount *Discount) (string, error)
	UpsertCategory(ctx context.Context, category *Category) (string, error)
	UpsertMenuItem(ctx context.Context, item *MenuItem) (string, error)
	UpsertVariation(ctx context.Context, variation *Variation) (string, error)
	UpsertItemAddonGroup(ctx context.Context, link *ItemAddonGroup) (string, error)
	SetItemsAvailability(ctx context.Context, restaurantID string, vendorItemIDs []string, availability ItemAvailability) (int64, error)
	SetAddonItemsActive(ctx context.Context, restaurantID string, vendorAddonItemIDs []string, active bool) (int64, error)
}
