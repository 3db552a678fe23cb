package petpoojasync

import (
	"strings"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
)

// Parent categories share the categories table with regular categories but
// come from a separate vendor id sequence.
const parentCategoryPrefix = "parent:"

func parentCategoryVendorID(id petpooja.ID) string {
	return parentCategoryPrefix + id.String()
}

func restaurantFromVendor(r *petpooja.Restaurant) *domain.Restaurant {
	d := r.Details
	status := domain.RestaurantInactive
	switch {
	case bool(d.UnderMaintenance):
		status = domain.RestaurantMaintenance
	case bool(r.Active):
		status = domain.RestaurantActive
	}
	return &domain.Restaurant{
		PetpoojaRestaurantID:      r.RestaurantID.String(),
		Name:                      d.Name.String(),
		Address:                   d.Address.String(),
		City:                      d.City.String(),
		State:                     d.State.String(),
		Country:                   d.Country.String(),
		Contact:                   d.Contact.String(),
		Latitude:                  float64(d.Latitude),
		Longitude:                 float64(d.Longitude),
		CurrencySymbol:            d.CurrencyHTML.String(),
		MinimumOrderAmount:        float64(d.MinimumOrderAmount),
		MinimumPrepTime:           int(d.MinimumPrepTime),
		DeliveryCharge:            float64(d.DeliveryCharge),
		ServiceChargeType:         d.ServiceChargeType.String(),
		ServiceChargeValue:        float64(d.ServiceChargeValue),
		ServiceChargeApplicableOn: d.ServiceChargeOn.String(),
		PackagingCharge:           float64(d.PackagingCharge),
		PackagingChargeType:       d.PackagingChargeType.String(),
		PackagingApplicableOn:     d.PackagingApplicableOn.String(),
		TaxOnDelivery:             bool(d.CalculateTaxOnDelivery),
		TaxOnPacking:              bool(d.CalculateTaxOnPacking),
		Status:                    status,
	}
}

func taxFromVendor(restaurantID string, t *petpooja.Tax) *domain.Tax {
	taxType := domain.TaxType(t.Type)
	if taxType != domain.TaxFixed {
		taxType = domain.TaxPercentage
	}
	base := domain.TaxBase(t.CoreOrTotal)
	if base != domain.TaxOnTotal {
		base = domain.TaxOnCore
	}
	return &domain.Tax{
		RestaurantID: restaurantID,
		VendorID:     t.ID.String(),
		Name:         t.Name.String(),
		Rate:         float64(t.Rate),
		Type:         taxType,
		CoreOrTotal:  base,
		OrderTypes:   []string(t.OrderTypes),
		Rank:         int(t.Rank),
		IsActive:     bool(t.Active),
	}
}

func discountFromVendor(restaurantID string, d *petpooja.Discount) *domain.Discount {
	applicableOn := strings.ToLower(d.ApplicableOn.String())
	if applicableOn != "item" {
		applicableOn = "total"
	}
	return &domain.Discount{
		RestaurantID:  restaurantID,
		VendorID:      d.ID.String(),
		Name:          d.Name.String(),
		DiscountType:  int(d.Type),
		Value:         float64(d.Value),
		ApplicableOn:  applicableOn,
		OrderTypes:    []string(d.OrderTypes),
		Days:          d.Days.String(),
		AvailableFrom: d.AvailableFrom.String(),
		AvailableTill: d.AvailableTill.String(),
		StartsAt:      d.Starts.String(),
		EndsAt:        d.Ends.String(),
		MinAmount:     float64(d.MinAmount),
		MaxAmount:     float64(d.MaxAmount),
		HasCoupon:     bool(d.HasCoupon),
		OnBill:        bool(d.OnBill),
		IsActive:      bool(d.Active),
	}
}

func categoryFromVendor(restaurantID string, c *petpooja.Category, parentID *string) *domain.Category {
	from, to := parseTimings(c.Timings.String())
	return &domain.Category{
		RestaurantID:  restaurantID,
		VendorID:      c.ID.String(),
		ParentID:      parentID,
		Name:          c.Name.String(),
		Rank:          int(c.Rank),
		IsActive:      bool(c.Active),
		Timings:       c.Timings.String(),
		AvailableFrom: from,
		AvailableTo:   to,
		ImageURL:      c.ImageURL.String(),
	}
}

func parentCategoryFromVendor(restaurantID string, p *petpooja.ParentCategory) *domain.Category {
	return &domain.Category{
		RestaurantID: restaurantID,
		VendorID:     parentCategoryVendorID(p.ID),
		Name:         p.Name.String(),
		Rank:         int(p.Rank),
		IsActive:     bool(p.Status),
		ImageURL:     p.ImageURL.String(),
	}
}

// parseTimings reads a "HH:MM-HH:MM" window. Anything else yields an empty
// window and the raw value is kept on the row.
func parseTimings(raw string) (from, to string) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return "", ""
	}
	from, to = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if !isClock(from) || !isClock(to) {
		return "", ""
	}
	return from, to
}

func isClock(s string) bool {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 {
		return false
	}
	hour, okH := twoDigits(h)
	minute, okM := twoDigits(m)
	return okH && okM && hour < 24 && minute < 60
}

func twoDigits(s string) (int, bool) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}

func itemAvailability(item *petpooja.Item) domain.ItemAvailability {
	if !item.Active {
		return domain.ItemUnavailable
	}
	switch strings.ToLower(item.InStock.String()) {
	case "0", "false":
		return domain.ItemOutOfStock
	}
	return domain.ItemAvailable
}

func isVegetarianAttribute(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "veg", "vegetarian":
		return true
	}
	return false
}

func menuItemFromVendor(restaurantID string, item *petpooja.Item, categoryID *string, vegetarian bool) *domain.MenuItem {
	return &domain.MenuItem{
		RestaurantID:    restaurantID,
		VendorID:        item.ID.String(),
		CategoryID:      categoryID,
		Name:            item.Name.String(),
		Description:     item.Description.String(),
		Price:           float64(item.Price),
		IsVegetarian:    vegetarian,
		IsPopular:       bool(item.Favorite),
		Availability:    itemAvailability(item),
		PrepTime:        int(item.PreparationTime),
		PackingCharge:   float64(item.PackingCharges),
		AllowAddons:     bool(item.AllowAddon),
		AllowVariations: bool(item.AllowVariation),
		Tags:            []string(item.Tags),
		Nutrition:       item.Nutrition,
		Rank:            int(item.Rank),
		TaxVendorIDs:    []string(item.Taxes),
		OrderTypeIDs:    []string(item.OrderTypes),
		ImageURL:        item.ImageURL.String(),
	}
}

func variationFromVendor(restaurantID, itemID string, v *petpooja.ItemVariation) *domain.Variation {
	return &domain.Variation{
		RestaurantID:   restaurantID,
		VendorID:       v.ID.String(),
		MasterVendorID: v.VariationID.String(),
		ItemID:         itemID,
		Name:           v.Name.String(),
		GroupName:      v.GroupName.String(),
		Price:          float64(v.Price),
		PackingCharge:  float64(v.PackingCharges),
		Rank:           int(v.Rank),
		IsActive:       bool(v.Active),
	}
}
