package handler

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"wordboard/internal/logger"
	"wordboard/internal/model"
	"wordboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WatchHandler relays day-record changes over a websocket. A connection
// watches at most one (thread, date) at a time: a new subscribe cancels the
// previous subscription before the next one is established, so a client that
// switches dates never receives updates for a date it no longer displays.
type WatchHandler struct {
	game     *service.GameService
	hub      *service.WatchHub
	upgrader websocket.Upgrader
}

func NewWatchHandler(game *service.GameService, hub *service.WatchHub) *WatchHandler {
	return &WatchHandler{
		game: game,
		hub:  hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type watchRequest struct {
	Action    string `json:"action"`
	ThreadKey string `json:"thread_key"`
	Date      string `json:"date"`
}

func (h *WatchHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("watch.upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	var writeMu sync.Mutex
	send := func(v interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	var sub *service.Subscription
	defer func() {
		if sub != nil {
			sub.Cancel()
		}
	}()

	for {
		var req watchRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		switch req.Action {
		case "subscribe":
			if _, err := time.Parse("2006-01-02", req.Date); err != nil {
				send(gin.H{"error": model.ErrInvalidDate.Error()})
				continue
			}
			if sub != nil {
				sub.Cancel()
			}
			sub = h.hub.Subscribe(req.ThreadKey, req.Date)
			go func(s *service.Subscription) {
				for update := range s.C {
					if err := send(update); err != nil {
						return
					}
				}
			}(sub)
			h.sendSnapshot(c.Request.Context(), send, req.ThreadKey, req.Date)
		case "unsubscribe":
			if sub != nil {
				sub.Cancel()
				sub = nil
			}
		default:
			send(gin.H{"error": "unknown action"})
		}
	}
}

// sendSnapshot pushes the current record state right after a subscribe, so
// the client doesn't wait for the next change to render.
func (h *WatchHandler) sendSnapshot(ctx context.Context, send func(interface{}) error, threadKey, date string) {
	update := service.GameUpdate{ThreadKey: threadKey, Date: date}
	g, err := h.game.Fetch(ctx, threadKey, date)
	switch {
	case err == nil:
		update.Started = true
		update.Game = g
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrMalformedRecord):
		// absent for display
	default:
		send(gin.H{"error": err.Error()})
		return
	}
	send(update)
}
