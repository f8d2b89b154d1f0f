package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"wordboard/internal/model"
	"wordboard/internal/service"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	game *service.GameService
}

func NewGameHandler(game *service.GameService) *GameHandler {
	return &GameHandler{game: game}
}

var wordPattern = regexp.MustCompile(`^[A-Z]{5}$`)

func parseDateParam(c *gin.Context) (string, bool) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": model.ErrInvalidDate.Error()})
		return "", false
	}
	return date, true
}

func (h *GameHandler) ResolveThread(c *gin.Context) {
	var req model.ResolveThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Participants) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusOK, model.ResolveThreadResponse{
		ThreadKey: model.DeriveThreadKey(req.Participants),
	})
}

func (h *GameHandler) GetGame(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	g, err := h.game.Fetch(c.Request.Context(), c.Param("key"), date)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, model.GameResponse{Started: true, Game: g})
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrMalformedRecord):
		// malformed rows display exactly like "not started"; the service
		// already logged the difference
		c.JSON(http.StatusOK, model.GameResponse{Started: false})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *GameHandler) StartGame(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	var req model.StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	word := strings.ToUpper(strings.TrimSpace(req.StartingWord))
	if !wordPattern.MatchString(word) {
		c.JSON(http.StatusBadRequest, gin.H{"error": model.ErrInvalidWord.Error()})
		return
	}
	g, err := h.game.Start(c.Request.Context(), c.Param("key"), date, word)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, model.GameResponse{Started: true, Game: g})
}

func (h *GameHandler) SubmitScore(c *gin.Context) {
	date, ok := parseDateParam(c)
	if !ok {
		return
	}
	var req model.SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !model.ValidScore(req.Score) {
		c.JSON(http.StatusBadRequest, gin.H{"error": model.ErrInvalidScore.Error()})
		return
	}
	g, err := h.game.SubmitScore(c.Request.Context(), c.Param("key"), date, req.ID, req.Name, req.Score)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, model.GameResponse{Started: true, Game: g})
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrMalformedRecord):
		c.JSON(http.StatusNotFound, gin.H{"error": "game not started for this date"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *GameHandler) History(c *gin.Context) {
	games, err := h.game.History(c.Request.Context(), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if games == nil {
		games = []model.ThreadGame{}
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}
