package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LavaJover/petpooja-sync-service/internal/config"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	"github.com/LavaJover/petpooja-sync-service/internal/infrastructure/metrics"
)

const (
	endpointMenu       = "menu"
	endpointCategories = "categories"
	endpointSaveOrder  = "save_order"

	maxErrorBody = 512
)

type PetpoojaClient struct {
	baseURL      string
	menuPath     string
	categoryPath string
	orderPath    string
	httpClient   *http.Client
	metrics      *metrics.SyncMetrics
}

func NewPetpoojaClient(cfg config.Petpooja, m *metrics.SyncMetrics) *PetpoojaClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PetpoojaClient{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		menuPath:     cfg.MenuPath,
		categoryPath: cfg.CategoryPath,
		orderPath:    cfg.OrderPath,
		httpClient:   &http.Client{Timeout: timeout},
		metrics:      m,
	}
}

func (c *PetpoojaClient) FetchMenu(ctx context.Context, creds petpooja.Credentials) (*petpooja.MenuPayload, error) {
	var payload petpooja.MenuPayload
	req := petpooja.MenuRequest{Credentials: creds, RestID: creds.RestaurantID}
	if err := c.post(ctx, endpointMenu, c.menuPath, req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *PetpoojaClient) FetchCategories(ctx context.Context, creds petpooja.Credentials) (*petpooja.CategoryListPayload, error) {
	var payload petpooja.CategoryListPayload
	req := petpooja.MenuRequest{Credentials: creds, RestID: creds.RestaurantID}
	if err := c.post(ctx, endpointCategories, c.categoryPath, req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// SaveOrder submits one order. A vendor-level rejection is reported through
// the response, not the error.
func (c *PetpoojaClient) SaveOrder(ctx context.Context, req *petpooja.SaveOrderRequest) (*petpooja.SaveOrderResponse, error) {
	var resp petpooja.SaveOrderResponse
	if err := c.post(ctx, endpointSaveOrder, c.orderPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *PetpoojaClient) post(ctx context.Context, endpoint, path string, body, out interface{}) (err error) {
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}
		if c.metrics != nil {
			c.metrics.VendorRequestsTotal.WithLabelValues(endpoint, result).Inc()
		}
	}()

	requestBodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(requestBodyBytes))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("petpooja %s: %w", endpoint, err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("petpooja %s: read body: %w", endpoint, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		snippet := responseBodyBytes
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return fmt.Errorf("petpooja %s: unexpected status %d: %s", endpoint, response.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.Unmarshal(responseBodyBytes, out); err != nil {
		return fmt.Errorf("petpooja %s: decode response: %w", endpoint, err)
	}
	return nil
}
