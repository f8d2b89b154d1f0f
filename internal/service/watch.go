package service

import (
	"sync"

	"wordboard/internal/logger"
	"wordboard/internal/model"

	"github.com/google/uuid"
)

// GameUpdate is what watchers receive on every change to a watched day
// record. Started is false when the record was wiped or never existed.
type GameUpdate struct {
	ThreadKey string            `json:"thread_key"`
	Date      string            `json:"date"`
	Started   bool              `json:"started"`
	Game      *model.ThreadGame `json:"game,omitempty"`
}

// WatchHub fans day-record changes out to subscribers. Each (threadKey, date)
// pair has its own listener set; a listener that can't keep up misses updates
// instead of blocking the writer.
type WatchHub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan GameUpdate
}

func NewWatchHub() *WatchHub {
	return &WatchHub{subs: make(map[string]map[string]chan GameUpdate)}
}

type Subscription struct {
	C   <-chan GameUpdate
	hub *WatchHub
	key string
	id  string
}

func watchKey(threadKey, date string) string { return threadKey + "|" + date }

func (h *WatchHub) Subscribe(threadKey, date string) *Subscription {
	ch := make(chan GameUpdate, 8)
	id := uuid.New().String()
	key := watchKey(threadKey, date)

	h.mu.Lock()
	if h.subs[key] == nil {
		h.subs[key] = make(map[string]chan GameUpdate)
	}
	h.subs[key][id] = ch
	h.mu.Unlock()

	logger.Debug("watch.subscribe", "thread", threadKey, "date", date, "sub", id)
	return &Subscription{C: ch, hub: h, key: key, id: id}
}

// Cancel detaches the subscription and closes its channel. Safe to call more
// than once.
func (s *Subscription) Cancel() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()
	listeners, ok := s.hub.subs[s.key]
	if !ok {
		return
	}
	if ch, ok := listeners[s.id]; ok {
		delete(listeners, s.id)
		close(ch)
	}
	if len(listeners) == 0 {
		delete(s.hub.subs, s.key)
	}
}

func (h *WatchHub) Publish(threadKey, date string, game *model.ThreadGame) {
	update := GameUpdate{ThreadKey: threadKey, Date: date, Started: game != nil, Game: game}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs[watchKey(threadKey, date)] {
		select {
		case ch <- update:
		default:
		}
	}
}
