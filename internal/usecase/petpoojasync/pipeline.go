package petpoojasync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/metrics"
)

// Keys of the counts summary written to a finished menu sync log.
const (
	CountRestaurants      = "restaurants"
	CountOrderTypes       = "order_types"
	CountAttributes       = "attributes"
	CountVariationMasters = "variation_masters"
	CountAddonGroups      = "addon_groups"
	CountAddonItems       = "addon_items"
	CountTaxes            = "taxes"
	CountDiscounts        = "discounts"
	CountCategories       = "categories"
	CountParentCategories = "parent_categories"
	CountItems            = "items"
	CountVariations       = "variations"
	CountItemAddonGroups  = "item_addon_groups"
	CountUnresolvedRefs   = "unresolved_references"
)

// Stage is one step of a menu pull. Stages run strictly in the order of
// MenuStages; each may rely on ids recorded by the stages before it.
type Stage struct {
	Name string
	Run  func(*menuRun, context.Context) error
}

var MenuStages = []Stage{
	{Name: "restaurants", Run: (*menuRun).syncRestaurants},
	{Name: "order_types", Run: (*menuRun).syncOrderTypes},
	{Name: "attributes", Run: (*menuRun).syncAttributes},
	{Name: "variations", Run: (*menuRun).syncVariationMasters},
	{Name: "addon_groups", Run: (*menuRun).syncAddonGroups},
	{Name: "taxes", Run: (*menuRun).syncTaxes},
	{Name: "discounts", Run: (*menuRun).syncDiscounts},
	{Name: "categories", Run: (*menuRun).syncCategories},
	{Name: "items", Run: (*menuRun).syncItems},
}

// menuRun holds the state of one pass over a menu payload.
type menuRun struct {
	catalog      domain.CatalogRepository
	payload      *petpooja.MenuPayload
	restaurantID string
	resolver     *Resolver
	attributes   map[petpooja.ID]string
	counts       domain.SyncCounts
	metrics      *metrics.SyncMetrics
	logger       *slog.Logger
}

func newMenuRun(catalog domain.CatalogRepository, payload *petpooja.MenuPayload, m *metrics.SyncMetrics, logger *slog.Logger) *menuRun {
	return &menuRun{
		catalog:    catalog,
		payload:    payload,
		resolver:   NewResolver(),
		attributes: make(map[petpooja.ID]string),
		counts:     domain.SyncCounts{},
		metrics:    m,
		logger:     logger,
	}
}

func (r *menuRun) run(ctx context.Context, stages []Stage) error {
	defer r.collectMisses()
	for _, stage := range stages {
		if err := r.runStage(ctx, stage); err != nil {
			return err
		}
	}
	return nil
}

func (r *menuRun) runStage(ctx context.Context, stage Stage) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("stage %s: panic: %v", stage.Name, p)
		}
	}()
	if err := stage.Run(r, ctx); err != nil {
		return fmt.Errorf("stage %s: %w", stage.Name, err)
	}
	r.logger.Debug("menu sync stage done", "stage", stage.Name)
	return nil
}

// collectMisses copies the resolver's miss total into the summary.
func (r *menuRun) collectMisses() {
	if n := r.resolver.TotalMisses(); n > 0 {
		r.counts[CountUnresolvedRefs] = n
	}
}

// unresolved reports a reference the resolver could not map.
func (r *menuRun) unresolved(kind RefKind, owner, vendorRef string) {
	if r.metrics != nil {
		r.metrics.UnresolvedRefsTotal.WithLabelValues(string(kind)).Inc()
	}
	r.logger.Warn("unresolved vendor reference",
		"kind", kind,
		"owner", owner,
		"ref", vendorRef,
	)
}

// The first restaurant of the payload owns every child row.
func (r *menuRun) syncRestaurants(ctx context.Context) error {
	for i := range r.payload.Restaurants {
		id, err := r.catalog.UpsertRestaurant(ctx, restaurantFromVendor(&r.payload.Restaurants[i]))
		if err != nil {
			return fmt.Errorf("restaurant %s: %w", r.payload.Restaurants[i].RestaurantID, err)
		}
		if i == 0 {
			r.restaurantID = id
		}
		r.counts[CountRestaurants]++
	}
	if r.restaurantID == "" {
		return fmt.Errorf("%w: no restaurant in payload", domain.ErrInvalidPayload)
	}
	return nil
}

func (r *menuRun) syncOrderTypes(ctx context.Context) error {
	for _, ot := range r.payload.OrderTypes {
		_, err := r.catalog.UpsertOrderType(ctx, &domain.OrderType{
			RestaurantID: r.restaurantID,
			VendorID:     ot.ID.String(),
			Name:         ot.Name.String(),
		})
		if err != nil {
			return fmt.Errorf("order type %s: %w", ot.ID, err)
		}
		r.counts[CountOrderTypes]++
	}
	return nil
}

func (r *menuRun) syncAttributes(ctx context.Context) error {
	for _, a := range r.payload.Attributes {
		id, err := r.catalog.UpsertAttribute(ctx, &domain.Attribute{
			RestaurantID: r.restaurantID,
			VendorID:     a.ID.String(),
			Name:         a.Name.String(),
			IsActive:     bool(a.Active),
		})
		if err != nil {
			return fmt.Errorf("attribute %s: %w", a.ID, err)
		}
		r.resolver.Record(RefAttribute, a.ID, id)
		r.attributes[a.ID] = a.Name.String()
		r.counts[CountAttributes]++
	}
	return nil
}

func (r *menuRun) syncVariationMasters(ctx context.Context) error {
	for _, v := range r.payload.Variations {
		_, err := r.catalog.UpsertVariationMaster(ctx, &domain.VariationMaster{
			RestaurantID: r.restaurantID,
			VendorID:     v.ID.String(),
			Name:         v.Name.String(),
			GroupName:    v.GroupName.String(),
			IsActive:     bool(v.Status),
		})
		if err != nil {
			return fmt.Errorf("variation %s: %w", v.ID, err)
		}
		r.counts[CountVariationMasters]++
	}
	return nil
}

func (r *menuRun) syncAddonGroups(ctx context.Context) error {
	for _, g := range r.payload.AddonGroups {
		groupID, err := r.catalog.UpsertAddonGroup(ctx, &domain.AddonGroup{
			RestaurantID: r.restaurantID,
			VendorID:     g.ID.String(),
			Name:         g.Name.String(),
			Rank:         int(g.Rank),
			IsActive:     bool(g.Active),
		})
		if err != nil {
			return fmt.Errorf("addon group %s: %w", g.ID, err)
		}
		r.resolver.Record(RefAddonGroup, g.ID, groupID)
		r.counts[CountAddonGroups]++

		for _, ai := range g.Items {
			_, err := r.catalog.UpsertAddonItem(ctx, &domain.AddonItem{
				RestaurantID: r.restaurantID,
				VendorID:     ai.ID.String(),
				GroupID:      groupID,
				Name:         ai.Name.String(),
				Price:        float64(ai.Price),
				Rank:         int(ai.Rank),
				IsActive:     bool(ai.Active),
			})
			if err != nil {
				return fmt.Errorf("addon item %s: %w", ai.ID, err)
			}
			r.counts[CountAddonItems]++
		}
	}
	return nil
}

func (r *menuRun) syncTaxes(ctx context.Context) error {
	for i := range r.payload.Taxes {
		if _, err := r.catalog.UpsertTax(ctx, taxFromVendor(r.restaurantID, &r.payload.Taxes[i])); err != nil {
			return fmt.Errorf("tax %s: %w", r.payload.Taxes[i].ID, err)
		}
		r.counts[CountTaxes]++
	}
	return nil
}

func (r *menuRun) syncDiscounts(ctx context.Context) error {
	for i := range r.payload.Discounts {
		if _, err := r.catalog.UpsertDiscount(ctx, discountFromVendor(r.restaurantID, &r.payload.Discounts[i])); err != nil {
			return fmt.Errorf("discount %s: %w", r.payload.Discounts[i].ID, err)
		}
		r.counts[CountDiscounts]++
	}
	return nil
}

// syncCategories writes parent categories and top-level categories first,
// then the categories that point at a parent.
func (r *menuRun) syncCategories(ctx context.Context) error {
	parents := make(map[petpooja.ID]string, len(r.payload.ParentCategories))
	for i := range r.payload.ParentCategories {
		p := &r.payload.ParentCategories[i]
		id, err := r.catalog.UpsertCategory(ctx, parentCategoryFromVendor(r.restaurantID, p))
		if err != nil {
			return fmt.Errorf("parent category %s: %w", p.ID, err)
		}
		parents[p.ID] = id
		r.counts[CountParentCategories]++
	}

	var nested []*petpooja.Category
	for i := range r.payload.Categories {
		c := &r.payload.Categories[i]
		if !c.ParentCategoryID.IsZero() {
			nested = append(nested, c)
			continue
		}
		if err := r.upsertCategory(ctx, c, nil); err != nil {
			return err
		}
	}

	for _, c := range nested {
		parentID, ok := parents[c.ParentCategoryID]
		var parentRef *string
		if ok {
			parentRef = &parentID
		} else if parentRef, ok = r.resolver.Resolve(RefCategory, c.ParentCategoryID); !ok {
			r.unresolved(RefCategory, "category "+c.ID.String(), c.ParentCategoryID.String())
		}
		if err := r.upsertCategory(ctx, c, parentRef); err != nil {
			return err
		}
	}
	return nil
}

func (r *menuRun) upsertCategory(ctx context.Context, c *petpooja.Category, parentID *string) error {
	id, err := r.catalog.UpsertCategory(ctx, categoryFromVendor(r.restaurantID, c, parentID))
	if err != nil {
		return fmt.Errorf("category %s: %w", c.ID, err)
	}
	r.resolver.Record(RefCategory, c.ID, id)
	r.counts[CountCategories]++
	return nil
}

func (r *menuRun) syncItems(ctx context.Context) error {
	for i := range r.payload.Items {
		if err := r.syncItem(ctx, &r.payload.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *menuRun) syncItem(ctx context.Context, item *petpooja.Item) error {
	categoryID, ok := r.resolver.Resolve(RefCategory, item.CategoryID)
	if !ok {
		r.unresolved(RefCategory, "item "+item.ID.String(), item.CategoryID.String())
	}
	vegetarian := false
	if attributeID, ok := r.resolver.Resolve(RefAttribute, item.AttributeID); !ok {
		r.unresolved(RefAttribute, "item "+item.ID.String(), item.AttributeID.String())
	} else if attributeID != nil {
		vegetarian = isVegetarianAttribute(r.attributes[item.AttributeID])
	}

	itemID, err := r.catalog.UpsertMenuItem(ctx, menuItemFromVendor(r.restaurantID, item, categoryID, vegetarian))
	if err != nil {
		return fmt.Errorf("item %s: %w", item.ID, err)
	}
	r.counts[CountItems]++

	for i := range item.Variations {
		v := &item.Variations[i]
		variation := variationFromVendor(r.restaurantID, itemID, v)
		if variation.VendorID == "" {
			variation.VendorID = v.VariationID.String()
		}
		if _, err := r.catalog.UpsertVariation(ctx, variation); err != nil {
			return fmt.Errorf("item %s variation %s: %w", item.ID, variation.VendorID, err)
		}
		r.counts[CountVariations]++
	}

	for _, link := range item.Addons {
		groupID, ok := r.resolver.Resolve(RefAddonGroup, link.GroupID)
		if !ok {
			r.unresolved(RefAddonGroup, "item "+item.ID.String(), link.GroupID.String())
			continue
		}
		if groupID == nil {
			continue
		}
		_, err := r.catalog.UpsertItemAddonGroup(ctx, &domain.ItemAddonGroup{
			RestaurantID: r.restaurantID,
			ItemID:       itemID,
			AddonGroupID: *groupID,
			MinSelection: int(link.SelectionMin),
			MaxSelection: int(link.SelectionMax),
		})
		if err != nil {
			return fmt.Errorf("item %s addon group %s: %w", item.ID, link.GroupID, err)
		}
		r.counts[CountItemAddonGroups]++
	}
	return nil
}
