package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	importMenu func(*petpooja.MenuPayload) (*syncdto.MenuSyncOutput, error)
	sync       func(*syncdto.SyncInput) (*syncdto.SyncOutput, error)
	stock      func(*syncdto.ItemStockInput) (*syncdto.ItemStockOutput, error)
	logs       func(*syncdto.ListSyncLogsInput) ([]*domain.SyncLog, error)
}

func (s *stubUsecase) ImportMenu(_ context.Context, p *petpooja.MenuPayload) (*syncdto.MenuSyncOutput, error) {
	return s.importMenu(p)
}

func (s *stubUsecase) Sync(_ context.Context, in *syncdto.SyncInput) (*syncdto.SyncOutput, error) {
	return s.sync(in)
}

func (s *stubUsecase) PushOrders(context.Context, *domain.Restaurant) (*syncdto.OrderPushOutput, error) {
	return nil, fmt.Errorf("not used")
}

func (s *stubUsecase) UpdateItemStock(_ context.Context, in *syncdto.ItemStockInput) (*syncdto.ItemStockOutput, error) {
	return s.stock(in)
}

func (s *stubUsecase) ListSyncLogs(_ context.Context, in *syncdto.ListSyncLogsInput) ([]*domain.SyncLog, error) {
	return s.logs(in)
}

func newTestRouter(uc *stubUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewSyncHandler(uc), prometheus.NewRegistry())
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func TestMenuSyncSuccess(t *testing.T) {
	var got *petpooja.MenuPayload
	r := newTestRouter(&stubUsecase{importMenu: func(p *petpooja.MenuPayload) (*syncdto.MenuSyncOutput, error) {
		got = p
		return &syncdto.MenuSyncOutput{
			SyncLogID: "log-1",
			Processed: syncdto.Processed{Restaurants: 1, Categories: 2, Items: 3, Variations: 4, AddonGroups: 5, Taxes: 6, Discounts: 7},
		}, nil
	}})

	rec, body := do(t, r, http.MethodPost, "/petpooja/menu-sync",
		`{"petpoojaData": {"success": "1", "restaurants": [{"restaurantid": "R1"}]}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.True(t, bool(got.Success))
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])
	processed := body["processed"].(map[string]any)
	assert.Equal(t, float64(1), processed["restaurants"])
	assert.Equal(t, float64(4), processed["variations"])
	assert.Equal(t, float64(5), processed["addonGroups"])
	assert.Equal(t, float64(7), processed["discounts"])
}

func TestMenuSyncFailureIs500(t *testing.T) {
	r := newTestRouter(&stubUsecase{importMenu: func(*petpooja.MenuPayload) (*syncdto.MenuSyncOutput, error) {
		return nil, fmt.Errorf("%w: success marker is not set", domain.ErrInvalidPayload)
	}})

	for _, body := range []string{`{"petpoojaData": {"success": "0"}}`, `{}`, `not json`} {
		rec, out := do(t, r, http.MethodPost, "/petpooja/menu-sync", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.Equal(t, false, out["success"], body)
		assert.NotEmpty(t, out["error"], body)
	}
}

func TestMenuSyncPreflight(t *testing.T) {
	r := newTestRouter(&stubUsecase{})
	req := httptest.NewRequest(http.MethodOptions, "/petpooja/menu-sync", nil)
	req.Header.Set("Origin", "https://admin.example.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestSyncErrorStatuses(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingCredentials, http.StatusBadRequest},
		{fmt.Errorf("%w: bad type", domain.ErrInvalidInput), http.StatusBadRequest},
		{domain.ErrRestaurantNotFound, http.StatusNotFound},
		{fmt.Errorf("stage items: boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		r := newTestRouter(&stubUsecase{sync: func(*syncdto.SyncInput) (*syncdto.SyncOutput, error) {
			return nil, c.err
		}})
		rec, body := do(t, r, http.MethodPost, "/petpooja/sync", `{"restaurant_id": "rest-1", "sync_type": "menu"}`)
		assert.Equal(t, c.code, rec.Code, c.err.Error())
		assert.Equal(t, c.err.Error(), body["error"])
	}
}

func TestSyncInvalidBody(t *testing.T) {
	r := newTestRouter(&stubUsecase{})
	rec, body := do(t, r, http.MethodPost, "/petpooja/sync", `{"restaurant_id": 12`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestSyncSuccess(t *testing.T) {
	var got *syncdto.SyncInput
	r := newTestRouter(&stubUsecase{sync: func(in *syncdto.SyncInput) (*syncdto.SyncOutput, error) {
		got = in
		return &syncdto.SyncOutput{
			SyncType: domain.SyncOrders,
			Orders:   &syncdto.OrderPushOutput{SyncLogID: "log-9", Pushed: 9, Failed: 1, Counts: domain.SyncCounts{"orders_pushed": 9, "orders_failed": 1}},
		}, nil
	}})

	rec, body := do(t, r, http.MethodPost, "/petpooja/sync", `{"restaurant_id": "rest-1", "sync_type": "orders"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rest-1", got.RestaurantID)
	assert.Equal(t, domain.SyncOrders, got.SyncType)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "log-9", body["sync_log_id"])
	assert.Equal(t, "orders", body["sync_type"])
	assert.Equal(t, float64(9), body["counts"].(map[string]any)["orders_pushed"])
	assert.NotContains(t, body, "sync_log_ids")
}

func TestItemStock(t *testing.T) {
	var got *syncdto.ItemStockInput
	r := newTestRouter(&stubUsecase{stock: func(in *syncdto.ItemStockInput) (*syncdto.ItemStockOutput, error) {
		got = in
		if in.RestaurantVendorID != "R1" {
			return nil, domain.ErrRestaurantNotFound
		}
		return &syncdto.ItemStockOutput{Updated: 2}, nil
	}})

	rec, body := do(t, r, http.MethodPost, "/petpooja/item-stock",
		`{"restID": "R1", "type": "item", "inStock": false, "itemID": ["I1", "I2"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "200", body["code"])
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, []string{"I1", "I2"}, got.ItemIDs)
	assert.False(t, got.InStock)
	assert.Equal(t, "item", got.Type)

	rec, body = do(t, r, http.MethodPost, "/petpooja/item-stock", `{"restID": "R9", "inStock": "1", "itemID": "I1"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "404", body["code"])
	assert.True(t, got.InStock)
}

func TestListSyncLogs(t *testing.T) {
	var got *syncdto.ListSyncLogsInput
	rid := "rest-1"
	r := newTestRouter(&stubUsecase{logs: func(in *syncdto.ListSyncLogsInput) ([]*domain.SyncLog, error) {
		got = in
		return []*domain.SyncLog{{ID: "log-1", RestaurantID: &rid, SyncType: domain.SyncMenu, Status: domain.SyncFailed, ErrorMessage: "boom"}}, nil
	}})

	rec, body := do(t, r, http.MethodGet, "/sync-logs?restaurant_id=rest-1&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rest-1", got.RestaurantID)
	assert.Equal(t, 5, got.Limit)
	logs := body["logs"].([]any)
	require.Len(t, logs, 1)
	assert.Equal(t, "boom", logs[0].(map[string]any)["error_message"])

	rec, _ = do(t, r, http.MethodGet, "/sync-logs?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(&stubUsecase{})

	rec, body := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	r.ServeHTTP(mrec, req)
	assert.Equal(t, http.StatusOK, mrec.Code)
}
