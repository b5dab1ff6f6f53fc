package rest

import (
	"log/slog"
	"net/http"

	"golang.org/x/net/websocket"

	"github.com/articlehub/backend/internal/events"
	"github.com/articlehub/backend/pkg/ctxutil"
)

// eventHub defines the subscription interface needed by EventsHandler.
type eventHub interface {
	Subscribe() (<-chan events.Envelope, func())
}

// EventsHandler streams change-notification events over a WebSocket.
type EventsHandler struct {
	hub eventHub
	log *slog.Logger
}

// NewEventsHandler creates an EventsHandler.
func NewEventsHandler(hub eventHub, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, log: logger.With("handler", "events")}
}

// ServeHTTP handles GET /events. A principal is required: the stream
// carries owner emails, so anonymous clients may not attach. Delivery is
// best effort; a client that cannot keep up misses events.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.PrincipalFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	websocket.Handler(h.stream).ServeHTTP(w, r)
}

func (h *EventsHandler) stream(conn *websocket.Conn) {
	defer conn.Close()

	ch, cancel := h.hub.Subscribe()
	defer cancel()

	ctx := conn.Request().Context()
	h.log.InfoContext(ctx, "event subscriber connected",
		slog.String("remote", conn.Request().RemoteAddr))

	for {
		select {
		case env, ok := <-ch:
			if !ok {
				return
			}
			if err := websocket.JSON.Send(conn, env); err != nil {
				h.log.InfoContext(ctx, "event subscriber disconnected",
					slog.String("remote", conn.Request().RemoteAddr),
					slog.String("error", err.Error()))
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
