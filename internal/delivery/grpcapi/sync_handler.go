package grpcapi

import (
	"context"
	"errors"

	"github.com/LavaJover/petpooja-sync-service/internal/domain"
	syncdto "github.com/LavaJover/petpooja-sync-service/internal/usecase/dto/sync"
	"github.com/LavaJover/petpooja-sync-service/internal/usecase/petpoojasync"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type SyncHandler struct {
	syncUc petpoojasync.SyncUsecase
}

func NewSyncHandler(syncUc petpoojasync.SyncUsecase) *SyncHandler {
	return &SyncHandler{
		syncUc: syncUc,
	}
}

func (h *SyncHandler) TriggerSync(ctx context.Context, r *structpb.Struct) (*structpb.Struct, error) {
	fields := r.GetFields()
	input := syncdto.SyncInput{
		RestaurantID: fields["restaurant_id"].GetStringValue(),
		SyncType:     domain.SyncType(fields["sync_type"].GetStringValue()),
	}

	output, err := h.syncUc.Sync(ctx, &input)
	if err != nil {
		return nil, toStatus(err)
	}

	result := map[string]interface{}{
		"success":   true,
		"sync_type": string(output.SyncType),
	}
	if output.Menu != nil {
		result["menu"] = map[string]interface{}{
			"sync_log_id": output.Menu.SyncLogID,
			"counts":      countsValue(output.Menu.Counts),
		}
	}
	if output.Orders != nil {
		result["orders"] = map[string]interface{}{
			"sync_log_id": output.Orders.SyncLogID,
			"pushed":      output.Orders.Pushed,
			"failed":      output.Orders.Failed,
		}
	}

	resp, err := structpb.NewStruct(result)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return resp, nil
}

func countsValue(counts domain.SyncCounts) map[string]interface{} {
	out := make(map[string]interface{}, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	return out
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrRestaurantNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrMissingCredentials):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
