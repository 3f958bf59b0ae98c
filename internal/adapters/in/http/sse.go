package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func newOrderStatusEvent(e order.StatusChanged) OrderStatusEvent {
	event := OrderStatusEvent{
		OrderId:    e.OrderID.Bytes(),
		Reference:  e.Reference,
		Status:     e.Status.String(),
		Version:    e.Version,
		OccurredAt: e.OccurredAt,
	}
	if e.RiderID != nil {
		id := openapi_types.UUID(e.RiderID.Bytes())
		event.RiderId = &id
	}
	return event
}

func writeEvent(ctx echo.Context, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(ctx.Response(), "event: %s\ndata: %s\n\n", name, data); err != nil {
		return err
	}
	ctx.Response().Flush()
	return nil
}

// StreamOrderEvents handles GET /api/v1/orders/{orderId}/events. The stream
// opens with an "order" event carrying the current snapshot and then sends
// a "status" event per change until the client goes away.
func (s *Server) StreamOrderEvents(ctx echo.Context, orderId openapi_types.UUID) error {
	id := toKernelID(orderId)

	// Subscribe before reading the snapshot so no change falls in between.
	events, cancel := s.events.Subscribe(id)
	defer cancel()

	snapshot, err := s.loadOrder(ctx, id)
	if err != nil {
		return s.failed(ctx, err)
	}

	header := ctx.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	ctx.Response().WriteHeader(http.StatusOK)

	if err = writeEvent(ctx, "order", snapshot); err != nil {
		return nil
	}

	heartbeat := time.NewTicker(s.heartbeat)
	defer heartbeat.Stop()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if err = writeEvent(ctx, "status", newOrderStatusEvent(e)); err != nil {
				s.logger.Debug("event stream closed", "order", id.String(), "error", err)
				return nil
			}
		case <-heartbeat.C:
			if _, err = fmt.Fprint(ctx.Response(), ": ping\n\n"); err != nil {
				return nil
			}
			ctx.Response().Flush()
		}
	}
}
