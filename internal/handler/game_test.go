package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wordboard/internal/model"
	"wordboard/internal/service"
	"wordboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := store.NewMemoryStore()
	hub := service.NewWatchHub()
	gameSvc := service.NewGameService(st, hub, service.NewMessenger(""))
	statsSvc := service.NewStatsService(st)

	gameH := NewGameHandler(gameSvc)
	statsH := NewStatsHandler(statsSvc)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/threads", gameH.ResolveThread)
	api.GET("/threads/:key/games", gameH.History)
	api.GET("/threads/:key/games/:date", gameH.GetGame)
	api.PUT("/threads/:key/games/:date", gameH.StartGame)
	api.POST("/threads/:key/games/:date/scores", gameH.SubmitScore)
	api.GET("/threads/:key/stats", statsH.ThreadStats)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResolveThread(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/threads", `{"participants":["b","a"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.ResolveThreadResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.DeriveThreadKey([]string{"a", "b"}), resp.ThreadKey)

	w = doJSON(r, "POST", "/api/threads", `{"participants":[]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetGame_AbsentRendersNotStarted(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, "GET", "/api/threads/k/games/2026-08-26", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.GameResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Started)
	assert.Nil(t, resp.Game)
}

func TestStartGame_Validation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "PUT", "/api/threads/k/games/08-26-2026", `{"starting_word":"CRANE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "non-ISO date must be rejected")

	w = doJSON(r, "PUT", "/api/threads/k/games/2026-08-26", `{"starting_word":"CRANES"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "6-letter word must be rejected")

	w = doJSON(r, "PUT", "/api/threads/k/games/2026-08-26", `{"starting_word":"CR4NE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "non-letters must be rejected")

	w = doJSON(r, "PUT", "/api/threads/k/games/2026-08-26", `{"starting_word":"crane"}`)
	assert.Equal(t, http.StatusOK, w.Code, "lowercase input is upper-cased, not rejected")

	var resp model.GameResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CRANE", resp.Game.StartingWord)
}

func TestSubmitScore_FullScenario(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "POST", "/api/threads/k/games/2026-08-26/scores",
		`{"id":"u1","name":"Ryan","score":"3"}`)
	assert.Equal(t, http.StatusNotFound, w.Code, "no score before the game starts")

	w = doJSON(r, "PUT", "/api/threads/k/games/2026-08-26", `{"starting_word":"CRANE"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "POST", "/api/threads/k/games/2026-08-26/scores",
		`{"id":"u1","name":"Ryan","score":"9"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "score outside 1-6/X must be rejected")

	w = doJSON(r, "POST", "/api/threads/k/games/2026-08-26/scores",
		`{"id":"u1","name":"Ryan","score":"3"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "POST", "/api/threads/k/games/2026-08-26/scores",
		`{"id":"u1","name":"Ryan","score":"4"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp model.GameResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Game.PlayerScores, 1, "resubmission must replace, not duplicate")
	assert.Equal(t, "4", resp.Game.PlayerScores[0].Score)
}

func TestThreadStats_Endpoint(t *testing.T) {
	r := newTestRouter()

	doJSON(r, "PUT", "/api/threads/k/games/2026-08-26", `{"starting_word":"CRANE"}`)
	doJSON(r, "POST", "/api/threads/k/games/2026-08-26/scores", `{"id":"u1","name":"Ryan","score":"3"}`)
	doJSON(r, "PUT", "/api/threads/k/games/2026-08-27", `{"starting_word":"SLATE"}`)
	doJSON(r, "POST", "/api/threads/k/games/2026-08-27/scores", `{"id":"u1","name":"Ryan","score":"X"}`)

	w := doJSON(r, "GET", "/api/threads/k/stats", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Players []*model.PlayerStats `json:"players"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Players, 1)
	assert.Equal(t, 2, resp.Players[0].TotalGames)
	assert.Equal(t, 1, resp.Players[0].Distribution["3"])
	assert.Equal(t, 1, resp.Players[0].Distribution["X"])
}
