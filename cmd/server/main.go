package main

import (
	"flag"
	"log/slog"
	"net/http"
	"os"

	"wordboard/internal/config"
	"wordboard/internal/handler"
	"wordboard/internal/logger"
	"wordboard/internal/model"
	"wordboard/internal/service"
	"wordboard/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.ThreadGame{}, &model.Profile{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	hub := service.NewWatchHub()
	messenger := service.NewMessenger(cfg.Messaging.WebhookURL)
	games := store.NewGormStore(db)
	gameSvc := service.NewGameService(games, hub, messenger)
	statsSvc := service.NewStatsService(games)
	profileSvc := service.NewProfileService(db)

	gameH := handler.NewGameHandler(gameSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	profileH := handler.NewProfileHandler(profileSvc)
	watchH := handler.NewWatchHandler(gameSvc, hub)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	api.POST("/threads", gameH.ResolveThread)
	api.GET("/threads/:key/games", gameH.History)
	api.GET("/threads/:key/games/:date", gameH.GetGame)
	api.PUT("/threads/:key/games/:date", gameH.StartGame)
	api.POST("/threads/:key/games/:date/scores", gameH.SubmitScore)
	api.GET("/threads/:key/stats", statsH.ThreadStats)
	api.GET("/threads/:key/stats/export", statsH.ExportStats)
	api.GET("/watch", watchH.Serve)
	api.GET("/players/:id", profileH.Get)
	api.PUT("/players/:id", profileH.Put)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
