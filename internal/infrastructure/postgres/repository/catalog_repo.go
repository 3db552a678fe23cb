package repository

import (
	"context"
	"time"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

// Columns rewritten when a vendor row already exists. Keys, ids, created_at
// and locally edited columns are never in these lists.
var (
	restaurantColumns = []string{
		"name", "address", "city", "state", "country", "contact", "latitude", "longitude",
		"currency_symbol", "minimum_order_amount", "minimum_prep_time", "delivery_charge",
		"service_charge_type", "service_charge_value", "service_charge_applicable_on",
		"packaging_charge", "packaging_charge_type", "packaging_applicable_on",
		"tax_on_delivery", "tax_on_packing", "status",
	}
	orderTypeColumns       = []string{"name"}
	attributeColumns       = []string{"name", "is_active"}
	variationMasterColumns = []string{"name", "group_name", "is_active"}
	addonGroupColumns      = []string{"name", "rank", "is_active"}
	addonItemColumns       = []string{"group_id", "name", "price", "rank", "is_active"}
	taxColumns             = []string{"name", "rate", "tax_type", "core_or_total", "order_types", "rank", "is_active"}
	discountColumns        = []string{
		"name", "discount_type", "value", "applicable_on", "order_types", "days",
		"available_from", "available_till", "starts_at", "ends_at",
		"min_amount", "max_amount", "has_coupon", "on_bill", "is_active",
	}
	categoryColumns = []string{
		"parent_id", "name", "rank", "is_active", "timings", "available_from", "available_to", "image_url",
	}
	menuItemColumns = []string{
		"category_id", "name", "description", "price", "is_vegetarian", "is_popular", "availability",
		"prep_time", "packing_charge", "allow_addons", "allow_variations", "tags", "nutrition",
		"rank", "tax_vendor_ids", "order_type_ids", "image_url",
	}
	variationColumns = []string{
		"petpooja_master_variation_id", "item_id", "name", "group_name", "price", "packing_charge", "rank", "is_active",
	}
	itemAddonGroupColumns = []string{"restaurant_id", "min_selection", "max_selection"}
)

type DefaultCatalogRepository struct {
	DB *gorm.DB
}

func NewDefaultCatalogRepository(db *gorm.DB) *DefaultCatalogRepository {
	return &DefaultCatalogRepository{DB: db}
}

func (r *DefaultCatalogRepository) UpsertRestaurant(ctx context.Context, restaurant *domain.Restaurant) (string, error) {
	model := mappers.ToGORMRestaurant(restaurant)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, conflictKey{
		table:   "restaurants",
		columns: []string{"petpooja_restaurant_id"},
		values:  []interface{}{model.PetpoojaRestaurantID},
	}, restaurantColumns)
}

func (r *DefaultCatalogRepository) UpsertOrderType(ctx context.Context, orderType *domain.OrderType) (string, error) {
	model := mappers.ToGORMOrderType(orderType)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("order_types", "petpooja_order_type_id", model.PetpoojaOrderTypeID, model.RestaurantID), orderTypeColumns)
}

func (r *DefaultCatalogRepository) UpsertAttribute(ctx context.Context, attribute *domain.Attribute) (string, error) {
	model := mappers.ToGORMAttribute(attribute)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("attributes", "petpooja_attribute_id", model.PetpoojaAttributeID, model.RestaurantID), attributeColumns)
}

func (r *DefaultCatalogRepository) UpsertVariationMaster(ctx context.Context, variation *domain.VariationMaster) (string, error) {
	model := mappers.ToGORMVariationMaster(variation)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("variation_masters", "petpooja_variation_id", model.PetpoojaVariationID, model.RestaurantID), variationMasterColumns)
}

func (r *DefaultCatalogRepository) UpsertAddonGroup(ctx context.Context, group *domain.AddonGroup) (string, error) {
	model := mappers.ToGORMAddonGroup(group)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("addon_groups", "petpooja_addon_group_id", model.PetpoojaAddonGroupID, model.RestaurantID), addonGroupColumns)
}

func (r *DefaultCatalogRepository) UpsertAddonItem(ctx context.Context, item *domain.AddonItem) (string, error) {
	model := mappers.ToGORMAddonItem(item)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("addon_items", "petpooja_addon_item_id", model.PetpoojaAddonItemID, model.RestaurantID), addonItemColumns)
}

func (r *DefaultCatalogRepository) UpsertTax(ctx context.Context, tax *domain.Tax) (string, error) {
	model := mappers.ToGORMTax(tax)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("taxes", "petpooja_tax_id", model.PetpoojaTaxID, model.RestaurantID), taxColumns)
}

func (r *DefaultCatalogRepository) UpsertDiscount(ctx context.Context, discount *domain.Discount) (string, error) {
	model := mappers.ToGORMDiscount(discount)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("discounts", "petpooja_discount_id", model.PetpoojaDiscountID, model.RestaurantID), discountColumns)
}

func (r *DefaultCatalogRepository) UpsertCategory(ctx context.Context, category *domain.Category) (string, error) {
	model := mappers.ToGORMCategory(category)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("categories", "petpooja_category_id", model.PetpoojaCategoryID, model.RestaurantID), categoryColumns)
}

func (r *DefaultCatalogRepository) UpsertMenuItem(ctx context.Context, item *domain.MenuItem) (string, error) {
	model := mappers.ToGORMMenuItem(item)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("menu_items", "petpooja_item_id", model.PetpoojaItemID, model.RestaurantID), menuItemColumns)
}

func (r *DefaultCatalogRepository) UpsertVariation(ctx context.Context, variation *domain.Variation) (string, error) {
	model := mappers.ToGORMVariation(variation)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, vendorKey("variations", "petpooja_variation_id", model.PetpoojaVariationID, model.RestaurantID), variationColumns)
}

func (r *DefaultCatalogRepository) UpsertItemAddonGroup(ctx context.Context, link *domain.ItemAddonGroup) (string, error) {
	model := mappers.ToGORMItemAddonGroup(link)
	model.ID = newID()
	return upsertRow(ctx, r.DB, model, conflictKey{
		table:   "item_addon_groups",
		columns: []string{"item_id", "addon_group_id"},
		values:  []interface{}{model.ItemID, model.AddonGroupID},
	}, itemAddonGroupColumns)
}

func (r *DefaultCatalogRepository) SetItemsAvailability(ctx context.Context, restaurantID string, vendorItemIDs []string, availability domain.ItemAvailability) (int64, error) {
	if len(vendorItemIDs) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).
		Model(&models.MenuItemModel{}).
		Where("restaurant_id = ? AND petpooja_item_id IN ?", restaurantID, vendorItemIDs).
		Updates(map[string]interface{}{
			"availability": string(availability),
			"updated_at":   time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *DefaultCatalogRepository) SetAddonItemsActive(ctx context.Context, restaurantID string, vendorAddonItemIDs []string, active bool) (int64, error) {
	if len(vendorAddonItemIDs) == 0 {
		return 0, nil
	}
	res := r.DB.WithContext(ctx).
		Model(&models.AddonItemModel{}).
		Where("restaurant_id = ? AND petpooja_addon_item_id IN ?", restaurantID, vendorAddonItemIDs).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func vendorKey(table, vendorColumn, vendorID, restaurantID string) conflictKey {
	return conflictKey{
		table:   table,
		columns: []string{vendorColumn, "restaurant_id"},
		values:  []interface{}{vendorID, restaurantID},
	}
}
