package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ghuser/giftregistry/pkg/httpx"
	"github.com/ghuser/giftregistry/pkg/logger"
	"github.com/ghuser/giftregistry/services/registry/application/live"
	appsvcs "github.com/ghuser/giftregistry/services/registry/application/services"
)

// Subscriber is the part of *live.Hub the stream handler needs.
type Subscriber interface {
	Subscribe(inventoryID, userID uuid.UUID) (*live.Stream, error)
	Unsubscribe(s *live.Stream)
}

// EventStreamHandler serves GET /inventories/{inventoryID}/events.
type EventStreamHandler struct {
	base
	hub Subscriber
}

// NewEventStreamHandler returns an EventStreamHandler fed by hub.
func NewEventStreamHandler(svc *appsvcs.Services, hub Subscriber, log logger.Logger) *EventStreamHandler {
	return &EventStreamHandler{base: base{svc: svc, log: log}, hub: hub}
}

// Execute holds a server-sent event stream open until the client goes away
// or the hub drops the stream.
//
//	@Summary		Live inventory events
//	@Description	text/event-stream of connected, heartbeat and item/claim change events
//	@Tags			events
//	@Produce		text/event-stream
//	@Param			inventoryID	path	string	true	"Inventory ID"
//	@Success		200
//	@Failure		403	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/inventories/{inventoryID}/events [get]
func (h *EventStreamHandler) Execute(w http.ResponseWriter, r *http.Request) {
	t, err := parseTarget(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if _, err := h.svc.Inventories.Get(r.Context(), t.user, t.inventory); err != nil {
		h.fail(w, r, err)
		return
	}

	stream, err := h.hub.Subscribe(t.inventory, t.user)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	defer h.hub.Unsubscribe(stream)

	sse := httpx.StartEventStream(w)

	h.log.DebugContext(r.Context(), "live stream opened", "inventory_id", t.inventory, "user_id", t.user)
	defer h.log.DebugContext(r.Context(), "live stream closed", "inventory_id", t.inventory, "user_id", t.user)

	for {
		select {
		case <-r.Context().Done():
			return
		case <-stream.Done():
			return
		case m := <-stream.Messages():
			if err := sse.Send(m.Event, m.Data); err != nil {
				return
			}
		}
	}
}
