package mappers

import (
	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
)

// ToDomainOrder expects items, their menu item and variation, and addons with
// their addon item and group to be preloaded.
func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:              model.ID,
		RestaurantID:    model.RestaurantID,
		OrderNumber:     model.OrderNumber,
		CustomerName:    model.CustomerName,
		CustomerPhone:   model.CustomerPhone,
		CustomerEmail:   model.CustomerEmail,
		CustomerAddress: model.CustomerAddress,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Kind:            domain.OrderKind(model.OrderType),
		PaymentType:     model.PaymentType,
		TableNo:         model.TableNo,
		Notes:           model.Notes,
		Subtotal:        model.Subtotal,
		TaxTotal:        model.TaxTotal,
		DiscountTotal:   model.DiscountTotal,
		DeliveryCharge:  model.DeliveryCharge,
		PackingCharge:   model.PackingCharge,
		ServiceCharge:   model.ServiceCharge,
		Total:           model.Total,
		Status:          domain.OrderStatus(model.Status),
		PetpoojaOrderID: model.PetpoojaOrderID,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	order.Items = make([]domain.OrderItem, len(model.Items))
	for i := range model.Items {
		order.Items[i] = toDomainOrderItem(&model.Items[i])
	}
	return order
}

func toDomainOrderItem(model *models.OrderItemModel) domain.OrderItem {
	item := domain.OrderItem{
		ID:             model.ID,
		MenuItemID:     model.MenuItemID,
		VendorItemID:   model.MenuItem.PetpoojaItemID,
		Name:           model.Name,
		Quantity:       model.Quantity,
		UnitPrice:      model.UnitPrice,
		TotalPrice:     model.TotalPrice,
		TaxAmount:      model.TaxAmount,
		DiscountAmount: model.DiscountAmount,
		VariationID:    model.VariationID,
		VariationName:  model.VariationName,
		Notes:          model.Notes,
	}
	if item.Name == "" {
		item.Name = model.MenuItem.Name
	}
	if model.Variation != nil {
		item.VendorVariationID = model.Variation.PetpoojaVariationID
		if item.VariationName == "" {
			item.VariationName = model.Variation.Name
		}
	}
	item.Addons = make([]domain.OrderItemAddon, len(model.Addons))
	for i, a := range model.Addons {
		name := a.Name
		if name == "" {
			name = a.AddonItem.Name
		}
		item.Addons[i] = domain.OrderItemAddon{
			ID:                 a.ID,
			AddonItemID:        a.AddonItemID,
			VendorAddonItemID:  a.AddonItem.PetpoojaAddonItemID,
			VendorAddonGroupID: a.AddonItem.Group.PetpoojaAddonGroupID,
			GroupName:          a.AddonItem.Group.Name,
			Name:               name,
			Price:              a.Price,
			Quantity:           a.Quantity,
		}
	}
	return item
}
