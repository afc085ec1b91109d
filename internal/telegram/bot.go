package telegram

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Bot owns the transport lifecycle: webhook registration when a public
// base URL is configured, a getUpdates polling loop otherwise.
type Bot struct {
	client         *Client
	handler        *UpdateHandler
	secret         string
	webhookBaseURL string
	webhookSecret  string
	pollTimeout    time.Duration

	stopCh chan struct{}
}

func NewBot(
	client *Client,
	handler *UpdateHandler,
	token, webhookBaseURL, webhookSecret string,
	pollTimeout time.Duration,
) *Bot {
	return &Bot{
		client:         client,
		handler:        handler,
		secret:         tokenSecret(token),
		webhookBaseURL: webhookBaseURL,
		webhookSecret:  webhookSecret,
		pollTimeout:    pollTimeout,
		stopCh:         make(chan struct{}),
	}
}

// tokenSecret derives the webhook path segment from the bot token so the
// URL is unguessable without exposing the token itself.
func tokenSecret(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h[:16])
}

func (b *Bot) Start() error {
	if b.webhookBaseURL != "" {
		webhookURL := fmt.Sprintf("%s/webhook/bot/%s", b.webhookBaseURL, b.secret)
		if err := b.client.SetWebhook(webhookURL, b.webhookSecret); err != nil {
			return fmt.Errorf("set webhook: %w", err)
		}
		log.Printf("[Bot] webhook registered: %s", webhookURL)
		return nil
	}

	// Polling mode: a lingering webhook would make getUpdates fail.
	if err := b.client.DeleteWebhook(); err != nil {
		log.Printf("[Bot] delete webhook: %v", err)
	}
	go b.pollLoop()
	log.Println("[Bot] polling for updates")
	return nil
}

func (b *Bot) Stop() {
	close(b.stopCh)
	if b.webhookBaseURL != "" {
		b.client.DeleteWebhook()
	}
	log.Println("[Bot] stopped")
}

func (b *Bot) pollLoop() {
	var offset int64
	for {
		select {
		case <-b.stopCh:
			return
		default:
		}

		updates, err := b.client.GetUpdates(offset, b.pollTimeout)
		if err != nil {
			log.Printf("[Bot] get updates: %v", err)
			select {
			case <-b.stopCh:
				return
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			go b.handler.Handle(upd)
		}
	}
}

func (b *Bot) HandleWebhook(c *gin.Context) {
	if c.Param("secret") != b.secret {
		c.Status(http.StatusNotFound)
		return
	}

	if b.webhookSecret != "" {
		headerSecret := c.GetHeader("X-Telegram-Bot-Api-Secret-Token")
		if headerSecret != b.webhookSecret {
			c.Status(http.StatusUnauthorized)
			return
		}
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var upd Update
	if err := json.Unmarshal(body, &upd); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	go b.handler.Handle(upd)

	c.Status(http.StatusOK)
}
