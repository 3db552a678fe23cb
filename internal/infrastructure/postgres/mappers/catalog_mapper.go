package mappers

import (
	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func ToGORMOrderType(o *domain.OrderType) *models.OrderTypeModel {
	return &models.OrderTypeModel{
		RestaurantID:        o.RestaurantID,
		PetpoojaOrderTypeID: o.VendorID,
		Name:                o.Name,
	}
}

func ToGORMAttribute(a *domain.Attribute) *models.AttributeModel {
	return &models.AttributeModel{
		RestaurantID:        a.RestaurantID,
		PetpoojaAttributeID: a.VendorID,
		Name:                a.Name,
		IsActive:            a.IsActive,
	}
}

func ToGORMVariationMaster(v *domain.VariationMaster) *models.VariationMasterModel {
	return &models.VariationMasterModel{
		RestaurantID:        v.RestaurantID,
		PetpoojaVariationID: v.VendorID,
		Name:                v.Name,
		GroupName:           v.GroupName,
		IsActive:            v.IsActive,
	}
}

func ToGORMAddonGroup(g *domain.AddonGroup) *models.AddonGroupModel {
	return &models.AddonGroupModel{
		RestaurantID:         g.RestaurantID,
		PetpoojaAddonGroupID: g.VendorID,
		Name:                 g.Name,
		Rank:                 g.Rank,
		IsActive:             g.IsActive,
	}
}

func ToGORMAddonItem(i *domain.AddonItem) *models.AddonItemModel {
	return &models.AddonItemModel{
		RestaurantID:        i.RestaurantID,
		PetpoojaAddonItemID: i.VendorID,
		GroupID:             i.GroupID,
		Name:                i.Name,
		Price:               i.Price,
		Rank:                i.Rank,
		IsActive:            i.IsActive,
	}
}

func ToGORMTax(t *domain.Tax) *models.TaxModel {
	return &models.TaxModel{
		RestaurantID:  t.RestaurantID,
		PetpoojaTaxID: t.VendorID,
		Name:          t.Name,
		Rate:          t.Rate,
		TaxType:       int16(t.Type),
		CoreOrTotal:   int16(t.CoreOrTotal),
		OrderTypes:    pq.StringArray(nonNil(t.OrderTypes)),
		Rank:          t.Rank,
		IsActive:      t.IsActive,
	}
}

func ToGORMDiscount(d *domain.Discount) *models.DiscountModel {
	return &models.DiscountModel{
		RestaurantID:       d.RestaurantID,
		PetpoojaDiscountID: d.VendorID,
		Name:               d.Name,
		DiscountType:       d.DiscountType,
		Value:              d.Value,
		ApplicableOn:       d.ApplicableOn,
		OrderTypes:         pq.StringArray(nonNil(d.OrderTypes)),
		Days:               d.Days,
		AvailableFrom:      d.AvailableFrom,
		AvailableTill:      d.AvailableTill,
		StartsAt:           d.StartsAt,
		EndsAt:             d.EndsAt,
		MinAmount:          d.MinAmount,
		MaxAmount:          d.MaxAmount,
		HasCoupon:          d.HasCoupon,
		OnBill:             d.OnBill,
		IsActive:           d.IsActive,
	}
}

func ToGORMCategory(c *domain.Category) *models.CategoryModel {
	return &models.CategoryModel{
		RestaurantID:       c.RestaurantID,
		PetpoojaCategoryID: c.VendorID,
		ParentID:           c.ParentID,
		Name:               c.Name,
		Rank:               c.Rank,
		IsActive:           c.IsActive,
		Timings:            c.Timings,
		AvailableFrom:      c.AvailableFrom,
		AvailableTo:        c.AvailableTo,
		ImageURL:           c.ImageURL,
	}
}

func ToGORMMenuItem(i *domain.MenuItem) *models.MenuItemModel {
	nutrition := datatypes.JSON(i.Nutrition)
	if len(nutrition) == 0 {
		nutrition = datatypes.JSON("{}")
	}
	return &models.MenuItemModel{
		RestaurantID:    i.RestaurantID,
		PetpoojaItemID:  i.VendorID,
		CategoryID:      i.CategoryID,
		Name:            i.Name,
		Description:     i.Description,
		Price:           i.Price,
		IsVegetarian:    i.IsVegetarian,
		IsPopular:       i.IsPopular,
		Availability:    string(i.Availability),
		PrepTime:        i.PrepTime,
		PackingCharge:   i.PackingCharge,
		AllowAddons:     i.AllowAddons,
		AllowVariations: i.AllowVariations,
		Tags:            pq.StringArray(nonNil(i.Tags)),
		Nutrition:       nutrition,
		Rank:            i.Rank,
		TaxVendorIDs:    pq.StringArray(nonNil(i.TaxVendorIDs)),
		OrderTypeIDs:    pq.StringArray(nonNil(i.OrderTypeIDs)),
		ImageURL:        i.ImageURL,
	}
}

func ToGORMVariation(v *domain.Variation) *models.VariationModel {
	return &models.VariationModel{
		RestaurantID:              v.RestaurantID,
		PetpoojaVariationID:       v.VendorID,
		PetpoojaMasterVariationID: v.MasterVendorID,
		ItemID:                    v.ItemID,
		Name:                      v.Name,
		GroupName:                 v.GroupName,
		Price:                     v.Price,
		PackingCharge:             v.PackingCharge,
		Rank:                      v.Rank,
		IsActive:                  v.IsActive,
	}
}

func ToGORMItemAddonGroup(l *domain.ItemAddonGroup) *models.ItemAddonGroupModel {
	return &models.ItemAddonGroupModel{
		RestaurantID: l.RestaurantID,
		ItemID:       l.ItemID,
		AddonGroupID: l.AddonGroupID,
		MinSelection: l.MinSelection,
		MaxSelection: l.MaxSelection,
	}
}

// nonNil keeps text[] columns as '{}' instead of NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
