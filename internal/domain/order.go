package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type OrderKind string

const (
	OrderKindDelivery OrderKind = "delivery"
	OrderKindPickup   OrderKind = "pickup"
	OrderKindDineIn   OrderKind = "dine_in"
)

type Order struct {
	ID              string
	RestaurantID    string
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	Latitude        float64
	Longitude       float64
	Kind            OrderKind
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
	Status          OrderStatus
	PetpoojaOrderID *string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID                string
	MenuItemID        string
	VendorItemID      string
	Name              string
	Quantity          int
	UnitPrice         float64
	TotalPrice        float64
	TaxAmount         float64
	DiscountAmount    float64
	VariationID       *string
	VendorVariationID string
	VariationName     string
	Notes             string
	Addons            []OrderItemAddon
}

type OrderItemAddon struct {
	ID                 string
	AddonItemID        string
	VendorAddonItemID  string
	VendorAddonGroupID string
	GroupName          string
	Name               string
	Price              float64
	Quantity           int
}

type OrderRepository interface {
	// ListOrdersPendingPush returns confirmed orders of the restaurant that
	// carry no petpooja order id, with items and addons loaded.
	ListOrdersPendingPush(ctx context.Context, restaurantID string) ([]*Order, error)
	MarkOrderPushed(ctx context.Context, orderID, petpoojaOrderID string) error
}
