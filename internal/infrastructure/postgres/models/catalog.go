package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type OrderTypeModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	RestaurantID        string `gorm:"type:uuid;uniqueIndex:idx_order_types_vendor"`
	PetpoojaOrderTypeID string `gorm:"uniqueIndex:idx_order_types_vendor"`
	Name                string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (OrderTypeModel) TableName() string {
	return "order_types"
}

type AttributeModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	RestaurantID        string `gorm:"type:uuid;uniqueIndex:idx_attributes_vendor"`
	PetpoojaAttributeID string `gorm:"uniqueIndex:idx_attributes_vendor"`
	Name                string
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (AttributeModel) TableName() string {
	return "attributes"
}

type VariationMasterModel struct {
	ID                  string `gorm:"primaryKey;type:uuid"`
	RestaurantID        string `gorm:"type:uuid;uniqueIndex:idx_variation_masters_vendor"`
	PetpoojaVariationID string `gorm:"uniqueIndex:idx_variation_masters_vendor"`
	Name                string
	GroupName           string
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (VariationMasterModel) TableName() string {
	return "variation_masters"
}

type AddonGroupModel struct {
	ID                   string `gorm:"primaryKey;type:uuid"`
	RestaurantID         string `gorm:"type:uuid;uniqueIndex:idx_addon_groups_vendor"`
	PetpoojaAddonGroupID string `gorm:"uniqueIndex:idx_addon_groups_vendor"`
	Name                 string
	Rank                 int
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (AddonGroupModel) TableName() string {
	return "addon_groups"
}

type AddonItemModel struct {
	ID                  string          `gorm:"primaryKey;type:uuid"`
	RestaurantID        string          `gorm:"type:uuid;uniqueIndex:idx_addon_items_vendor"`
	PetpoojaAddonItemID string          `gorm:"uniqueIndex:idx_addon_items_vendor"`
	GroupID             string          `gorm:"type:uuid;index"`
	Group               AddonGroupModel `gorm:"foreignKey:GroupID;references:ID"`
	Name                string
	Price               float64
	Rank                int
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (AddonItemModel) TableName() string {
	return "addon_items"
}

type TaxModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	RestaurantID  string `gorm:"type:uuid;uniqueIndex:idx_taxes_vendor"`
	PetpoojaTaxID string `gorm:"uniqueIndex:idx_taxes_vendor"`
	Name          string
	Rate          float64
	TaxType       int16
	CoreOrTotal   int16
	OrderTypes    pq.StringArray `gorm:"type:text[]"`
	Rank          int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (TaxModel) TableName() string {
	return "taxes"
}

type DiscountModel struct {
	ID                 string `gorm:"primaryKey;type:uuid"`
	RestaurantID       string `gorm:"type:uuid;uniqueIndex:idx_discounts_vendor"`
	PetpoojaDiscountID string `gorm:"uniqueIndex:idx_discounts_vendor"`
	Name               string
	DiscountType       int
	Value              float64
	ApplicableOn       string
	OrderTypes         pq.StringArray `gorm:"type:text[]"`
	Days               string
	AvailableFrom      string
	AvailableTill      string
	StartsAt           string
	EndsAt             string
	MinAmount          float64
	MaxAmount          float64
	HasCoupon          bool
	OnBill             bool
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (DiscountModel) TableName() string {
	return "discounts"
}

type CategoryModel struct {
	ID                 string  `gorm:"primaryKey;type:uuid"`
	RestaurantID       string  `gorm:"type:uuid;uniqueIndex:idx_categories_vendor"`
	PetpoojaCategoryID string  `gorm:"uniqueIndex:idx_categories_vendor"`
	ParentID           *string `gorm:"type:uuid"`
	Name               string
	Rank               int
	IsActive           bool
	Timings            string
	AvailableFrom      string
	AvailableTo        string
	ImageURL           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CategoryModel) TableName() string {
	return "categories"
}

type MenuItemModel struct {
	ID              string  `gorm:"primaryKey;type:uuid"`
	RestaurantID    string  `gorm:"type:uuid;uniqueIndex:idx_menu_items_vendor"`
	PetpoojaItemID  string  `gorm:"uniqueIndex:idx_menu_items_vendor"`
	CategoryID      *string `gorm:"type:uuid;index"`
	Name            string  `gorm:"not null"`
	Description     string
	Price           float64
	IsVegetarian    bool
	IsPopular       bool
	Availability    string `gorm:"default:'available'"`
	PrepTime        int
	PackingCharge   float64
	AllowAddons     bool
	AllowVariations bool
	Tags            pq.StringArray `gorm:"type:text[]"`
	Nutrition       datatypes.JSON
	Rank            int
	TaxVendorIDs    pq.StringArray `gorm:"type:text[]"`
	OrderTypeIDs    pq.StringArray `gorm:"type:text[]"`
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (MenuItemModel) TableName() string {
	return "menu_items"
}

type VariationModel struct {
	ID                        string `gorm:"primaryKey;type:uuid"`
	RestaurantID              string `gorm:"type:uuid;uniqueIndex:idx_variations_vendor"`
	PetpoojaVariationID       string `gorm:"uniqueIndex:idx_variations_vendor"`
	PetpoojaMasterVariationID string
	ItemID                    string `gorm:"type:uuid;index"`
	Name                      string
	GroupName                 string
	Price                     float64
	PackingCharge             float64
	Rank                      int
	IsActive                  bool
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (VariationModel) TableName() string {
	return "variations"
}

type ItemAddonGroupModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	RestaurantID string `gorm:"type:uuid;index"`
	ItemID       string `gorm:"type:uuid;uniqueIndex:idx_item_addon_groups_pair"`
	AddonGroupID string `gorm:"type:uuid;uniqueIndex:idx_item_addon_groups_pair"`
	MinSelection int
	MaxSelection int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ItemAddonGroupModel) TableName() string {
	return "item_addon_groups"
}
