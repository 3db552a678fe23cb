package petpoojasync

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	"github.com/LavaJover/petpooja-sync-service/internal/domain/petpooja"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
)

const (
	CountOrdersPushed = "orders_pushed"
	CountOrdersFailed = "orders_failed"
)

const (
	orderTimeLayout = "2006-01-02 15:04:05"
	orderDeviceType = "Web"
	defaultPayment  = "COD"
)

// PushOrders submits every confirmed order of the restaurant that has no
// vendor id yet. A rejected order is logged and counted; the batch goes on.
func (uc *DefaultSyncUsecase) PushOrders(ctx context.Context, restaurant *domain.Restaurant) (*syncdto.OrderPushOutput, error) {
	logger := uc.runLogger(domain.SyncOrders).With("restaurant_id", restaurant.ID)
	started := uc.now()
	log, err := uc.startLog(ctx, &restaurant.ID, domain.SyncOrders)
	if err != nil {
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)

	counts := domain.SyncCounts{CountOrdersPushed: 0, CountOrdersFailed: 0}
	runErr := uc.pushPending(ctx, restaurant, counts, logger)
	if err := uc.finishLog(ctx, log, counts, runErr, started, logger); err != nil {
		return nil, err
	}
	return &syncdto.OrderPushOutput{
		SyncLogID: log.ID,
		Pushed:    counts[CountOrdersPushed],
		Failed:    counts[CountOrdersFailed],
		Counts:    counts,
	}, nil
}

func (uc *DefaultSyncUsecase) pushPending(ctx context.Context, restaurant *domain.Restaurant, counts domain.SyncCounts, logger *slog.Logger) error {
	orders, err := uc.Orders.ListOrdersPendingPush(ctx, restaurant.ID)
	if err != nil {
		return fmt.Errorf("list orders pending push: %w", err)
	}
	logger.Info("pushing orders", "count", len(orders))

	for _, order := range orders {
		if order.PetpoojaOrderID != nil {
			continue
		}
		vendorOrderID, err := uc.pushOrder(ctx, restaurant, order)
		if err != nil {
			counts[CountOrdersFailed]++
			uc.observePush("failed")
			logger.Warn("order push failed", "order_id", order.ID, "error", err.Error())
			continue
		}
		if err := uc.Orders.MarkOrderPushed(ctx, order.ID, vendorOrderID); err != nil {
			return fmt.Errorf("mark order %s pushed: %w", order.ID, err)
		}
		counts[CountOrdersPushed]++
		uc.observePush("pushed")
		logger.Info("order pushed", "order_id", order.ID, "petpooja_order_id", vendorOrderID)
	}
	return nil
}

func (uc *DefaultSyncUsecase) pushOrder(ctx context.Context, restaurant *domain.Restaurant, order *domain.Order) (string, error) {
	req := BuildSaveOrderRequest(restaurant, order, uc.CallbackURL, uc.newRunID())
	resp, err := uc.Vendor.SaveOrder(ctx, req)
	if err != nil {
		return "", err
	}
	if !resp.Accepted() {
		msg := resp.Message.String()
		if msg == "" {
			msg = "no order id returned"
		}
		return "", fmt.Errorf("%w: %s", domain.ErrVendorRejected, msg)
	}
	return resp.OrderID.String(), nil
}

func (uc *DefaultSyncUsecase) observePush(outcome string) {
	if uc.Metrics != nil {
		uc.Metrics.OrdersPushedTotal.WithLabelValues(outcome).Inc()
	}
}

func vendorOrderType(kind domain.OrderKind) string {
	switch kind {
	case domain.OrderKindPickup:
		return petpooja.OrderTypePickup
	case domain.OrderKindDineIn:
		return petpooja.OrderTypeDineIn
	default:
		return petpooja.OrderTypeDelivery
	}
}

// BuildSaveOrderRequest translates a local order into the vendor order
// intake shape. udid identifies the submitting device.
func BuildSaveOrderRequest(restaurant *domain.Restaurant, order *domain.Order, callbackURL, udid string) *petpooja.SaveOrderRequest {
	restID := restaurant.Credentials.RestaurantID
	if restID == "" {
		restID = restaurant.PetpoojaRestaurantID
	}

	orderID := order.OrderNumber
	if orderID == "" {
		orderID = order.ID
	}
	payment := order.PaymentType
	if payment == "" {
		payment = defaultPayment
	}
	enableDelivery := 0
	if order.Kind == domain.OrderKindDelivery || order.Kind == "" {
		enableDelivery = 1
	}

	lines := make([]petpooja.OrderItemLine, 0, len(order.Items))
	for _, item := range order.Items {
		addons := make([]petpooja.AddonLine, 0, len(item.Addons))
		for _, addon := range item.Addons {
			quantity := addon.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			addons = append(addons, petpooja.AddonLine{
				ID:        addon.VendorAddonItemID,
				Name:      addon.Name,
				GroupName: addon.GroupName,
				Price:     petpooja.FormatAmount(addon.Price),
				GroupID:   addon.VendorAddonGroupID,
				Quantity:  strconv.Itoa(quantity),
			})
		}
		lines = append(lines, petpooja.OrderItemLine{
			ID:            item.VendorItemID,
			Name:          item.Name,
			GSTLiability:  "vendor",
			ItemTax:       []petpooja.ItemTaxLine{},
			ItemDiscount:  petpooja.FormatAmount(item.DiscountAmount),
			Price:         petpooja.FormatAmount(item.UnitPrice),
			FinalPrice:    petpooja.FormatAmount(item.TotalPrice),
			Quantity:      strconv.Itoa(item.Quantity),
			Description:   item.Notes,
			VariationName: item.VariationName,
			VariationID:   item.VendorVariationID,
			AddonItem:     petpooja.AddonBlock{Details: addons},
		})
	}

	return &petpooja.SaveOrderRequest{
		Credentials: vendorCredentials(restaurant),
		OrderInfo: petpooja.OrderInfoEnvelope{
			UDID:       udid,
			DeviceType: orderDeviceType,
			OrderInfo: petpooja.OrderInfo{
				Restaurant: petpooja.RestaurantBlock{Details: petpooja.RestaurantInfo{
					Name:               restaurant.Name,
					Address:            restaurant.Address,
					ContactInformation: restaurant.Contact,
					RestID:             restID,
				}},
				Customer: petpooja.CustomerBlock{Details: petpooja.CustomerInfo{
					Email:     order.CustomerEmail,
					Name:      order.CustomerName,
					Address:   order.CustomerAddress,
					Phone:     order.CustomerPhone,
					Latitude:  strconv.FormatFloat(order.Latitude, 'f', -1, 64),
					Longitude: strconv.FormatFloat(order.Longitude, 'f', -1, 64),
				}},
				Order: petpooja.OrderBlock{Details: petpooja.OrderDetails{
					OrderID:         orderID,
					ServiceCharge:   petpooja.FormatAmount(order.ServiceCharge),
					SCTaxAmount:     petpooja.FormatAmount(0),
					DeliveryCharges: petpooja.FormatAmount(order.DeliveryCharge),
					DCTaxAmount:     petpooja.FormatAmount(0),
					PackingCharges:  petpooja.FormatAmount(order.PackingCharge),
					PCTaxAmount:     petpooja.FormatAmount(0),
					OrderType:       vendorOrderType(order.Kind),
					AdvancedOrder:   "N",
					PaymentType:     payment,
					TableNo:         order.TableNo,
					NoOfPersons:     "0",
					DiscountTotal:   petpooja.FormatAmount(order.DiscountTotal),
					TaxTotal:        petpooja.FormatAmount(order.TaxTotal),
					DiscountType:    "F",
					Total:           petpooja.FormatAmount(order.Total),
					Description:     order.Notes,
					CreatedOn:       order.CreatedAt.Format(orderTimeLayout),
					EnableDelivery:  enableDelivery,
					MinPrepTime:     restaurant.MinimumPrepTime,
					CallbackURL:     callbackURL,
				}},
				OrderItem: petpooja.OrderItemBlock{Details: lines},
				Tax:       petpooja.TaxBlock{Details: []petpooja.TaxLine{}},
				Discount:  petpooja.DiscountBlock{Details: []petpooja.DiscountLine{}},
			},
		},
	}
}
