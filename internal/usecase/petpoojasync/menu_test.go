package petpoojasync

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleMenu = `{
	"success": "1",
	"restaurants": [{"restaurantid": "R1", "active": "1", "details": {"restaurantname": "Spice Route"}}],
	"categories": [{"categoryid": "C1", "active": "1", "categoryrank": "1", "parent_category_id": "0", "categoryname": "Starters"}],
	"items": [{"itemid": "I1", "item_categoryid": "C1", "itemname": "Paneer Tikka", "price": "199.50", "active": "1", "in_stock": "2"}]
}`

func decodeMenu(t *testing.T, raw string) *petpooja.MenuPayload {
	t.Helper()
	var payload petpooja.MenuPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	return &payload
}

func onlyItem(t *testing.T, s *fakeStore) *domain.MenuItem {
	t.Helper()
	require.Len(t, s.items, 1)
	for _, item := range s.items {
		return item
	}
	return nil
}

func TestImportMenuExamplePayload(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.ImportMenu(context.Background(), decodeMenu(t, exampleMenu))
	require.NoError(t, err)

	assert.Len(t, f.store.restaurants, 1)
	assert.Len(t, f.store.categories, 1)
	item := onlyItem(t, f.store)
	assert.Equal(t, 199.5, item.Price)
	require.NotNil(t, item.CategoryID)
	assert.Equal(t, f.store.ids["categories|C1|"+out.RestaurantID], *item.CategoryID)
	assert.Equal(t, domain.ItemAvailable, item.Availability)

	assert.Equal(t, 1, out.Processed.Restaurants)
	assert.Equal(t, 1, out.Processed.Categories)
	assert.Equal(t, 1, out.Processed.Items)

	require.Len(t, f.store.logs, 1)
	log := f.store.logs[0]
	assert.Equal(t, domain.SyncSuccess, log.Status)
	assert.Equal(t, domain.SyncMenu, log.SyncType)
	require.NotNil(t, log.RestaurantID)
	assert.Equal(t, out.RestaurantID, *log.RestaurantID)
	assert.Equal(t, 1, log.Counts[CountItems])
	assert.NotNil(t, log.CompletedAt)
	assert.Equal(t, 1, f.store.finishes[log.ID])
}

func TestImportMenuIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.uc.ImportMenu(ctx, decodeMenu(t, exampleMenu))
	require.NoError(t, err)
	rows := f.store.rowCount()
	itemID := f.store.ids["menu_items|I1|"+first.RestaurantID]

	second, err := f.uc.ImportMenu(ctx, decodeMenu(t, exampleMenu))
	require.NoError(t, err)

	assert.Equal(t, first.RestaurantID, second.RestaurantID)
	assert.Equal(t, rows, f.store.rowCount())
	assert.Equal(t, itemID, f.store.ids["menu_items|I1|"+second.RestaurantID])
	require.Len(t, f.store.logs, 2)
	require.NotNil(t, f.store.logs[1].RestaurantID)
	assert.Equal(t, first.RestaurantID, *f.store.logs[1].RestaurantID)
}

func TestImportMenuKeepsOrphanItems(t *testing.T) {
	f := newFixture(t)
	payload := decodeMenu(t, exampleMenu)
	payload.Items[0].CategoryID = "C404"

	out, err := f.uc.ImportMenu(context.Background(), payload)
	require.NoError(t, err)

	item := onlyItem(t, f.store)
	assert.Nil(t, item.CategoryID)
	assert.Equal(t, 1, out.Counts[CountUnresolvedRefs])
	assert.Equal(t, domain.SyncSuccess, f.store.logs[0].Status)
}

func TestImportMenuRejectsBadSuccessMarker(t *testing.T) {
	for _, marker := range []string{`"0"`, `0`, `""`, `null`, `"no"`, `"yes"`, `"true"`, `true`} {
		t.Run(marker, func(t *testing.T) {
			f := newFixture(t)
			raw := `{"success": ` + marker + `, "restaurants": [{"restaurantid": "R1"}]}`

			_, err := f.uc.ImportMenu(context.Background(), decodeMenu(t, raw))
			require.ErrorIs(t, err, domain.ErrInvalidPayload)
			assert.Zero(t, f.store.writes)
			assert.Empty(t, f.store.logs)
		})
	}
}

func TestImportMenuAcceptsNumericSuccessMarker(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ImportMenu(context.Background(), decodeMenu(t, `{"success": 1, "restaurants": [{"restaurantid": "R1"}]}`))
	require.NoError(t, err)
	require.Len(t, f.store.logs, 1)
	assert.Equal(t, domain.SyncSuccess, f.store.logs[0].Status)
}

func TestImportMenuRejectsPayloadWithoutRestaurant(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.ImportMenu(context.Background(), decodeMenu(t, `{"success": "1", "items": []}`))
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
	assert.Zero(t, f.store.writes)
	assert.Empty(t, f.store.logs)
}

func TestImportMenuFailureMarksLogFailed(t *testing.T) {
	f := newFixture(t)
	f.store.failOn["UpsertMenuItem"] = errStore

	_, err := f.uc.ImportMenu(context.Background(), decodeMenu(t, exampleMenu))
	require.ErrorIs(t, err, errStore)

	require.Len(t, f.store.logs, 1)
	log := f.store.logs[0]
	assert.Equal(t, domain.SyncFailed, log.Status)
	assert.Contains(t, log.ErrorMessage, "stage items")
	assert.Contains(t, log.ErrorMessage, errStore.Error())
	assert.Equal(t, 1, f.store.finishes[log.ID])

	// earlier stages stay written
	assert.Len(t, f.store.categories, 1)
	assert.Empty(t, f.store.items)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.SyncFailed, f.events.events[0].Status)
	assert.NotEmpty(t, f.events.events[0].Error)
}

func TestImportMenuCancelledCallerStillFinishesLog(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.ImportMenu(ctx, decodeMenu(t, exampleMenu))
	require.NoError(t, err)
	assert.Equal(t, domain.SyncSuccess, f.store.logs[0].Status)
}

func TestImportMenuPublishesSuccessEvent(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.ImportMenu(context.Background(), decodeMenu(t, exampleMenu))
	require.NoError(t, err)

	require.Len(t, f.events.events, 1)
	event := f.events.events[0]
	assert.Equal(t, out.SyncLogID, event.SyncLogID)
	assert.Equal(t, out.RestaurantID, event.RestaurantID)
	assert.Equal(t, domain.SyncSuccess, event.Status)
	assert.Equal(t, 1, event.Counts[CountCategories])
}

func TestImportMenuKeepsLocalCredentials(t *testing.T) {
	f := newFixture(t)
	f.store.addRestaurant(&domain.Restaurant{
		ID:                   "rest-1",
		PetpoojaRestaurantID: "R1",
		Credentials: domain.PetpoojaCredentials{
			AppKey: "key", AppSecret: "secret", AccessToken: "token", RestaurantID: "R1",
		},
	})

	out, err := f.uc.ImportMenu(context.Background(), decodeMenu(t, exampleMenu))
	require.NoError(t, err)

	assert.Equal(t, "rest-1", out.RestaurantID)
	assert.Equal(t, "Spice Route", f.store.restaurants["rest-1"].Name)
	assert.True(t, f.store.restaurants["rest-1"].Credentials.Complete())
	require.NotNil(t, f.store.logs[0].RestaurantID)
	assert.Equal(t, "rest-1", *f.store.logs[0].RestaurantID)
}
