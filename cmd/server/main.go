package main

import (
	"log"
	"net/http"
	"time"

	"survey-bot/internal/config"
	"survey-bot/internal/handlers"
	"survey-bot/internal/survey"
	"survey-bot/internal/telegram"
	"survey-bot/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	store := survey.NewSessionStore()
	engine := survey.NewEngine(store)
	hub := ws.NewHub()

	pollTimeout := time.Duration(cfg.PollTimeoutSeconds()) * time.Second

	var bot *telegram.Bot
	if cfg.BotToken != "" {
		client := telegram.NewClient(cfg.BotToken, pollTimeout)
		handler := telegram.NewUpdateHandler(client, engine, hub)
		bot = telegram.NewBot(client, handler, cfg.BotToken, cfg.WebhookURL, cfg.WebhookSecret, pollTimeout)
		if err := bot.Start(); err != nil {
			log.Fatalf("failed to start bot: %v", err)
		}
		defer bot.Stop()
	} else {
		log.Println("BOT_TOKEN not set, telegram transport disabled")
	}

	healthHandler := handlers.NewHealthHandler(store, bot != nil)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	r.GET("/", healthHandler.Index)
	r.GET("/health", healthHandler.Health)
	r.GET("/ws/events", wsHandler.HandleWebSocket)

	if bot != nil {
		r.POST("/webhook/bot/:secret", bot.HandleWebhook)
	} else {
		r.POST("/webhook/bot/:secret", func(c *gin.Context) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "bot not initialized"})
		})
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
