package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/LavaJover/petpooja-sync-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/petpooja-sync-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
	"github.com/LavaJover/petpooja-sync-service/internal/usecase/petpoojasync"
	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	uc petpoojasync.SyncUsecase
}

func NewSyncHandler(uc petpoojasync.SyncUsecase) *SyncHandler {
	return &SyncHandler{uc: uc}
}

func (h *SyncHandler) RegisterRoutes(r gin.IRouter) {
	petpoojaGroup := r.Group("/petpooja")
	{
		petpoojaGroup.POST("/menu-sync", h.MenuSync)
		petpoojaGroup.POST("/sync", h.Sync)
		petpoojaGroup.POST("/item-stock", h.ItemStock)
	}
	r.GET("/sync-logs", h.ListSyncLogs)
}

// MenuSync imports a menu payload the caller already fetched. Every failure
// answers 500.
func (h *SyncHandler) MenuSync(c *gin.Context) {
	var req request.MenuSyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, response.MenuSyncErrorResponse{Error: err.Error()})
		return
	}
	if req.PetpoojaData == nil {
		c.JSON(http.StatusInternalServerError, response.MenuSyncErrorResponse{Error: "petpoojaData is required"})
		return
	}

	out, err := h.uc.ImportMenu(c.Request.Context(), req.PetpoojaData)
	if err != nil {
		slog.Error("menu sync failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, response.MenuSyncErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.MenuSyncResponse{
		Success:   true,
		Message:   "Menu synced successfully",
		SyncLogID: out.SyncLogID,
		Processed: out.Processed,
	})
}

func (h *SyncHandler) Sync(c *gin.Context) {
	var req request.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	out, err := h.uc.Sync(c.Request.Context(), &syncdto.SyncInput{
		RestaurantID: req.RestaurantID,
		SyncType:     domain.SyncType(req.SyncType),
	})
	if err != nil {
		c.JSON(statusFromError(err), response.ErrorResponse{Error: err.Error()})
		return
	}

	resp := response.SyncResponse{
		Success:  true,
		SyncType: out.SyncType,
		Counts:   domain.SyncCounts{},
	}
	if out.Menu != nil {
		resp.SyncLogID = out.Menu.SyncLogID
		resp.SyncLogIDs = append(resp.SyncLogIDs, out.Menu.SyncLogID)
		for k, v := range out.Menu.Counts {
			resp.Counts[k] = v
		}
	}
	if out.Orders != nil {
		resp.SyncLogID = out.Orders.SyncLogID
		resp.SyncLogIDs = append(resp.SyncLogIDs, out.Orders.SyncLogID)
		for k, v := range out.Orders.Counts {
			resp.Counts[k] = v
		}
	}
	if len(resp.SyncLogIDs) < 2 {
		resp.SyncLogIDs = nil
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SyncHandler) ItemStock(c *gin.Context) {
	var req request.ItemStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ItemStockResponse{Code: "400", Status: "failed", Message: err.Error()})
		return
	}

	out, err := h.uc.UpdateItemStock(c.Request.Context(), &syncdto.ItemStockInput{
		RestaurantVendorID: req.RestID.String(),
		Type:               req.Type.String(),
		InStock:            bool(req.InStock),
		ItemIDs:            []string(req.ItemIDs),
	})
	if err != nil {
		status := statusFromError(err)
		c.JSON(status, response.ItemStockResponse{Code: strconv.Itoa(status), Status: "failed", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.ItemStockResponse{
		Code:    "200",
		Status:  "success",
		Message: "Stock status updated successfully for " + strconv.FormatInt(out.Updated, 10) + " items",
	})
}

func (h *SyncHandler) ListSyncLogs(c *gin.Context) {
	input := &syncdto.ListSyncLogsInput{RestaurantID: c.Query("restaurant_id")}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "limit must be a number"})
			return
		}
		input.Limit = limit
	}

	logs, err := h.uc.ListSyncLogs(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.FromSyncLogs(logs))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRestaurantNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
