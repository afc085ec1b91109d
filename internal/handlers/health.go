package handlers

import (
	"net/http"

	"survey-bot/internal/survey"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store          *survey.SessionStore
	botInitialized bool
}

func NewHealthHandler(store *survey.SessionStore, botInitialized bool) *HealthHandler {
	return &HealthHandler{store: store, botInitialized: botInitialized}
}

// Index is the bare liveness probe.
func (h *HealthHandler) Index(c *gin.Context) {
	c.String(http.StatusOK, "Survey bot is running!")
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"bot_initialized": h.botInitialized,
		"sessions":        h.store.Len(),
	})
}
