package handler

import (
	"fmt"
	"net/http"
	"time"

	"wordboard/internal/logger"
	"wordboard/internal/model"
	"wordboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) ThreadStats(c *gin.Context) {
	players, err := h.stats.ThreadStats(c.Request.Context(), c.Param("key"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if players == nil {
		players = []*model.PlayerStats{}
	}
	c.JSON(http.StatusOK, gin.H{"players": players})
}

// ExportStats streams the thread's aggregated stats as an xlsx workbook, one
// row per player.
func (h *StatsHandler) ExportStats(c *gin.Context) {
	key := c.Param("key")
	players, err := h.stats.ThreadStats(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Scoreboard"
	f.SetSheetName("Sheet1", sheet)

	headers := append([]string{"Player", "Games"}, model.ScoreSymbols...)
	headers = append(headers, "Other")
	for col, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, hd)
	}
	for row, p := range players {
		values := []interface{}{p.Name, p.TotalGames}
		for _, sym := range model.ScoreSymbols {
			values = append(values, p.Distribution[sym])
		}
		values = append(values, p.Distribution[model.ScoreOther])
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	short := key
	if len(short) > 8 {
		short = short[:8]
	}
	filename := fmt.Sprintf("scoreboard_%s_%s.xlsx", short, time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Error("stats export failed", "thread", key, "err", err)
	}
}
