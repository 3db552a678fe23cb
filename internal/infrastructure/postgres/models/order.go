package models

import "time"

type OrderModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	RestaurantID    string `gorm:"type:uuid;index:idx_orders_push"`
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	Latitude        float64
	Longitude       float64
	OrderType       string
	PaymentType     string
	TableNo         string
	Notes           string
	Subtotal        float64
	TaxTotal        float64
	DiscountTotal   float64
	DeliveryCharge  float64
	PackingCharge   float64
	ServiceCharge   float64
	Total           float64
	Status          string           `gorm:"index:idx_orders_push"`
	PetpoojaOrderID *string          `gorm:"index"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt       time.Time        `gorm:"index:idx_orders_created_at"`
	UpdatedAt       time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID             string          `gorm:"primaryKey;type:uuid"`
	OrderID        string          `gorm:"type:uuid;index"`
	MenuItemID     string          `gorm:"type:uuid"`
	MenuItem       MenuItemModel   `gorm:"foreignKey:MenuItemID;references:ID"`
	VariationID    *string         `gorm:"type:uuid"`
	Variation      *VariationModel `gorm:"foreignKey:VariationID;references:ID"`
	Name           string
	VariationName  string
	Quantity       int
	UnitPrice      float64
	TotalPrice     float64
	TaxAmount      float64
	DiscountAmount float64
	Notes          string
	Addons         []OrderItemAddonModel `gorm:"foreignKey:OrderItemID;references:ID"`
	CreatedAt      time.Time
}

func (OrderItemModel) TableName() string {
	return "order_items"
}

type OrderItemAddonModel struct {
	ID          string         `gorm:"primaryKey;type:uuid"`
	OrderItemID string         `gorm:"type:uuid;index"`
	AddonItemID string         `gorm:"type:uuid"`
	AddonItem   AddonItemModel `gorm:"foreignKey:AddonItemID;references:ID"`
	Name        string
	Price       float64
	Quantity    int
	CreatedAt   time.Time
}

func (OrderItemAddonModel) TableName() string {
	return "order_item_addons"
}
