package petpoojasync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store unavailable")

// fakeStore keeps every table in memory and implements all repository
// ports used by the sync use case.
type fakeStore struct {
	seq    int
	ids    map[string]string
	writes int
	failOn map[string]error

	restaurants      map[string]*domain.Restaurant
	orderTypes       map[string]*domain.OrderType
	attributes       map[string]*domain.Attribute
	variationMasters map[string]*domain.VariationMaster
	addonGroups      map[string]*domain.AddonGroup
	addonItems       map[string]*domain.AddonItem
	taxes            map[string]*domain.Tax
	discounts        map[string]*domain.Discount
	categories       map[string]*domain.Category
	items            map[string]*domain.MenuItem
	variations       map[string]*domain.Variation
	itemAddonGroups  map[string]*domain.ItemAddonGroup

	orders   []*domain.Order
	logs     []*domain.SyncLog
	finishes map[string]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		ids:              make(map[string]string),
		failOn:           make(map[string]error),
		restaurants:      make(map[string]*domain.Restaurant),
		orderTypes:       make(map[string]*domain.OrderType),
		attributes:       make(map[string]*domain.Attribute),
		variationMasters: make(map[string]*domain.VariationMaster),
		addonGroups:      make(map[string]*domain.AddonGroup),
		addonItems:       make(map[string]*domain.AddonItem),
		taxes:            make(map[string]*domain.Tax),
		discounts:        make(map[string]*domain.Discount),
		categories:       make(map[string]*domain.Category),
		items:            make(map[string]*domain.MenuItem),
		variations:       make(map[string]*domain.Variation),
		itemAddonGroups:  make(map[string]*domain.ItemAddonGroup),
		finishes:         make(map[string]int),
	}
}

func (s *fakeStore) upsert(op, table string, key ...string) (string, error) {
	if err := s.failOn[op]; err != nil {
		return "", err
	}
	s.writes++
	k := table
	for _, part := range key {
		k += "|" + part
	}
	if id, ok := s.ids[k]; ok {
		return id, nil
	}
	s.seq++
	id := fmt.Sprintf("%s-%d", table, s.seq)
	s.ids[k] = id
	return id, nil
}

func (s *fakeStore) addRestaurant(r *domain.Restaurant) *domain.Restaurant {
	s.ids["restaurants|"+r.PetpoojaRestaurantID] = r.ID
	s.restaurants[r.ID] = r
	return r
}

func (s *fakeStore) UpsertRestaurant(_ context.Context, r *domain.Restaurant) (string, error) {
	id, err := s.upsert("UpsertRestaurant", "restaurants", r.PetpoojaRestaurantID)
	if err != nil {
		return "", err
	}
	row := *r
	row.ID = id
	if existing, ok := s.restaurants[id]; ok {
		row.Credentials = existing.Credentials
	}
	s.restaurants[id] = &row
	return id, nil
}

func (s *fakeStore) UpsertOrderType(_ context.Context, ot *domain.OrderType) (string, error) {
	id, err := s.upsert("UpsertOrderType", "order_types", ot.VendorID, ot.RestaurantID)
	if err == nil {
		s.orderTypes[id] = ot
	}
	return id, err
}

func (s *fakeStore) UpsertAttribute(_ context.Context, a *domain.Attribute) (string, error) {
	id, err := s.upsert("UpsertAttribute", "attributes", a.VendorID, a.RestaurantID)
	if err == nil {
		s.attributes[id] = a
	}
	return id, err
}

func (s *fakeStore) UpsertVariationMaster(_ context.Context, v *domain.VariationMaster) (string, error) {
	id, err := s.upsert("UpsertVariationMaster", "variation_masters", v.VendorID, v.RestaurantID)
	if err == nil {
		s.variationMasters[id] = v
	}
	return id, err
}

func (s *fakeStore) UpsertAddonGroup(_ context.Context, g *domain.AddonGroup) (string, error) {
	id, err := s.upsert("UpsertAddonGroup", "addon_groups", g.VendorID, g.RestaurantID)
	if err == nil {
		s.addonGroups[id] = g
	}
	return id, err
}

func (s *fakeStore) UpsertAddonItem(_ context.Context, ai *domain.AddonItem) (string, error) {
	id, err := s.upsert("UpsertAddonItem", "addon_items", ai.VendorID, ai.RestaurantID)
	if err == nil {
		s.addonItems[id] = ai
	}
	return id, err
}

func (s *fakeStore) UpsertTax(_ context.Context, t *domain.Tax) (string, error) {
	id, err := s.upsert("UpsertTax", "taxes", t.VendorID, t.RestaurantID)
	if err == nil {
		s.taxes[id] = t
	}
	return id, err
}

func (s *fakeStore) UpsertDiscount(_ context.Context, d *domain.Discount) (string, error) {
	id, err := s.upsert("UpsertDiscount", "discounts", d.VendorID, d.RestaurantID)
	if err == nil {
		s.discounts[id] = d
	}
	return id, err
}

func (s *fakeStore) UpsertCategory(_ context.Context, c *domain.Category) (string, error) {
	id, err := s.upsert("UpsertCategory", "categories", c.VendorID, c.RestaurantID)
	if err == nil {
		s.categories[id] = c
	}
	return id, err
}

func (s *fakeStore) UpsertMenuItem(_ context.Context, item *domain.MenuItem) (string, error) {
	id, err := s.upsert("UpsertMenuItem", "menu_items", item.VendorID, item.RestaurantID)
	if err == nil {
		s.items[id] = item
	}
	return id, err
}

func (s *fakeStore) UpsertVariation(_ context.Context, v *domain.Variation) (string, error) {
	id, err := s.upsert("UpsertVariation", "variations", v.VendorID, v.RestaurantID)
	if err == nil {
		s.variations[id] = v
	}
	return id, err
}

func (s *fakeStore) UpsertItemAddonGroup(_ context.Context, link *domain.ItemAddonGroup) (string, error) {
	id, err := s.upsert("UpsertItemAddonGroup", "item_addon_groups", link.ItemID, link.AddonGroupID)
	if err == nil {
		s.itemAddonGroups[id] = link
	}
	return id, err
}

func (s *fakeStore) SetItemsAvailability(_ context.Context, restaurantID string, vendorItemIDs []string, availability domain.ItemAvailability) (int64, error) {
	var n int64
	for _, item := range s.items {
		if item.RestaurantID != restaurantID {
			continue
		}
		for _, v := range vendorItemIDs {
			if item.VendorID == v {
				item.Availability = availability
				n++
			}
		}
	}
	return n, nil
}

func (s *fakeStore) SetAddonItemsActive(_ context.Context, restaurantID string, vendorAddonItemIDs []string, active bool) (int64, error) {
	var n int64
	for _, ai := range s.addonItems {
		if ai.RestaurantID != restaurantID {
			continue
		}
		for _, v := range vendorAddonItemIDs {
			if ai.VendorID == v {
				ai.IsActive = active
				n++
			}
		}
	}
	return n, nil
}

func (s *fakeStore) GetRestaurantByID(_ context.Context, id string) (*domain.Restaurant, error) {
	r, ok := s.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return r, nil
}

func (s *fakeStore) FindRestaurantByVendorID(_ context.Context, vendorID string) (*domain.Restaurant, error) {
	id, ok := s.ids["restaurants|"+vendorID]
	if !ok {
		return nil, nil
	}
	return s.restaurants[id], nil
}

func (s *fakeStore) ListRestaurantsWithCredentials(_ context.Context) ([]*domain.Restaurant, error) {
	var out []*domain.Restaurant
	for _, r := range s.restaurants {
		if r.Credentials.Complete() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListOrdersPendingPush filters on status only so the use case's own guard
// against re-submission is exercised.
func (s *fakeStore) ListOrdersPendingPush(_ context.Context, restaurantID string) ([]*domain.Order, error) {
	if err := s.failOn["ListOrdersPendingPush"]; err != nil {
		return nil, err
	}
	var out []*domain.Order
	for _, o := range s.orders {
		if o.RestaurantID == restaurantID && o.Status == domain.OrderConfirmed {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *fakeStore) MarkOrderPushed(_ context.Context, orderID, petpoojaOrderID string) error {
	for _, o := range s.orders {
		if o.ID == orderID && o.PetpoojaOrderID == nil {
			id := petpoojaOrderID
			o.PetpoojaOrderID = &id
			o.Status = domain.OrderPreparing
		}
	}
	return nil
}

func (s *fakeStore) CreateSyncLog(_ context.Context, log *domain.SyncLog) error {
	if err := s.failOn["CreateSyncLog"]; err != nil {
		return err
	}
	row := *log
	s.logs = append(s.logs, &row)
	return nil
}

func (s *fakeStore) FinishSyncLog(_ context.Context, log *domain.SyncLog) error {
	s.finishes[log.ID]++
	for _, row := range s.logs {
		if row.ID == log.ID && row.Status == domain.SyncPending {
			*row = *log
		}
	}
	return nil
}

func (s *fakeStore) ListSyncLogs(_ context.Context, restaurantID string, limit int) ([]*domain.SyncLog, error) {
	var out []*domain.SyncLog
	for i := len(s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		l := s.logs[i]
		if restaurantID == "" || (l.RestaurantID != nil && *l.RestaurantID == restaurantID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeStore) rowCount() int {
	return len(s.restaurants) + len(s.orderTypes) + len(s.attributes) + len(s.variationMasters) +
		len(s.addonGroups) + len(s.addonItems) + len(s.taxes) + len(s.discounts) +
		len(s.categories) + len(s.items) + len(s.variations) + len(s.itemAddonGroups)
}

type fakeVendor struct {
	menu        *petpooja.MenuPayload
	menuErr     error
	categories  *petpooja.CategoryListPayload
	saveOrder   func(req *petpooja.SaveOrderRequest) (*petpooja.SaveOrderResponse, error)
	calls       int
	savedOrders []*petpooja.SaveOrderRequest
}

func (v *fakeVendor) FetchMenu(_ context.Context, _ petpooja.Credentials) (*petpooja.MenuPayload, error) {
	v.calls++
	return v.menu, v.menuErr
}

func (v *fakeVendor) FetchCategories(_ context.Context, _ petpooja.Credentials) (*petpooja.CategoryListPayload, error) {
	v.calls++
	if v.categories == nil {
		return &petpooja.CategoryListPayload{}, nil
	}
	return v.categories, nil
}

func (v *fakeVendor) SaveOrder(_ context.Context, req *petpooja.SaveOrderRequest) (*petpooja.SaveOrderResponse, error) {
	v.calls++
	v.savedOrders = append(v.savedOrders, req)
	return v.saveOrder(req)
}

type fakeEvents struct {
	events []domain.SyncEvent
}

func (e *fakeEvents) PublishSyncEvent(_ context.Context, event domain.SyncEvent) error {
	e.events = append(e.events, event)
	return nil
}

type fixture struct {
	store  *fakeStore
	vendor *fakeVendor
	events *fakeEvents
	uc     *DefaultSyncUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	vendor := &fakeVendor{}
	events := &fakeEvents{}
	uc, err := NewDefaultSyncUsecase(store, store, store, store, vendor, events,
		metrics.NewSyncMetrics(prometheus.NewRegistry()), "https://example.test/callback")
	require.NoError(t, err)
	return &fixture{store: store, vendor: vendor, events: events, uc: uc}
}
