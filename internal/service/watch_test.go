package service

import (
	"testing"
	"time"

	"wordboard/internal/model"
)

func recvUpdate(t *testing.T, sub *Subscription) GameUpdate {
	t.Helper()
	select {
	case u, ok := <-sub.C:
		if !ok {
			t.Fatal("subscription channel closed unexpectedly")
		}
		return u
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
	}
	return GameUpdate{}
}

func TestWatchHub_DeliversToSubscribers(t *testing.T) {
	hub := NewWatchHub()
	sub := hub.Subscribe("k", "2026-08-26")
	defer sub.Cancel()

	hub.Publish("k", "2026-08-26", &model.ThreadGame{StartingWord: "CRANE"})

	u := recvUpdate(t, sub)
	if !u.Started || u.Game.StartingWord != "CRANE" {
		t.Errorf("unexpected update: %+v", u)
	}
}

func TestWatchHub_KeyedByThreadAndDate(t *testing.T) {
	hub := NewWatchHub()
	sub := hub.Subscribe("k", "2026-08-26")
	defer sub.Cancel()

	hub.Publish("k", "2026-08-25", &model.ThreadGame{StartingWord: "SLATE"})
	hub.Publish("other", "2026-08-26", &model.ThreadGame{StartingWord: "SLATE"})

	select {
	case u := <-sub.C:
		t.Errorf("received update for a different key: %+v", u)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchHub_CancelStopsDelivery(t *testing.T) {
	hub := NewWatchHub()
	sub := hub.Subscribe("k", "2026-08-26")
	sub.Cancel()

	// publishing after cancel must not panic or deliver
	hub.Publish("k", "2026-08-26", &model.ThreadGame{StartingWord: "CRANE"})

	if _, ok := <-sub.C; ok {
		t.Error("received update after cancel")
	}
	// second cancel is a no-op
	sub.Cancel()
}

func TestWatchHub_SwitchingDatesCancelsPrevious(t *testing.T) {
	hub := NewWatchHub()

	// the pattern the watch handler follows when a client changes dates
	prev := hub.Subscribe("k", "2026-08-25")
	prev.Cancel()
	next := hub.Subscribe("k", "2026-08-26")
	defer next.Cancel()

	hub.Publish("k", "2026-08-25", &model.ThreadGame{StartingWord: "SLATE"})
	hub.Publish("k", "2026-08-26", &model.ThreadGame{StartingWord: "CRANE"})

	u := recvUpdate(t, next)
	if u.Date != "2026-08-26" {
		t.Errorf("got update for %s, want 2026-08-26", u.Date)
	}
	if _, ok := <-prev.C; ok {
		t.Error("canceled subscription still received an update")
	}
}

func TestWatchHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewWatchHub()
	sub := hub.Subscribe("k", "2026-08-26")
	defer sub.Cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.Publish("k", "2026-08-26", &model.ThreadGame{StartingWord: "CRANE"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
