package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"wordboard/internal/logger"

	"github.com/google/uuid"
)

// Messenger drops the "game started" announcement into the host conversation
// via its message-insertion webhook. Delivery is fire-and-forget: the game
// flow never waits on, or fails because of, the messaging side.
type Messenger struct {
	webhookURL string
	client     *http.Client
}

func NewMessenger(webhookURL string) *Messenger {
	return &Messenger{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 5 * time.Second},
	}
}

type messagePayload struct {
	ID         string `json:"id"`
	Caption    string `json:"caption"`
	Subcaption string `json:"subcaption"`
}

func (m *Messenger) AnnounceGameStart(date, startingWord string) {
	if m == nil || m.webhookURL == "" {
		return
	}
	go func() {
		payload := messagePayload{
			ID:         uuid.New().String(),
			Caption:    "Daily word game " + date,
			Subcaption: "Starting word: " + startingWord,
		}
		body, _ := json.Marshal(payload)
		req, err := http.NewRequest(http.MethodPost, m.webhookURL, bytes.NewReader(body))
		if err != nil {
			logger.Warn("announce build failed", "err", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := m.client.Do(req)
		if err != nil {
			logger.Warn("announce failed", "date", date, "err", err)
			return
		}
		resp.Body.Close()
		logger.Debug("announce sent", "date", date, "status", resp.StatusCode)
	}()
}
