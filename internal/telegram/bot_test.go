package telegram

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"survey-bot/internal/survey"

	"github.com/gin-gonic/gin"
)

func newTestBot(webhookSecret string) *Bot {
	client := NewClient("test-token", time.Second)
	engine := survey.NewEngine(survey.NewSessionStore())
	handler := NewUpdateHandler(&stubSender{}, engine, nil)
	return NewBot(client, handler, "test-token", "https://example.com", webhookSecret, time.Second)
}

func webhookRouter(b *Bot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/bot/:secret", b.HandleWebhook)
	return r
}

func TestTokenSecretIsStable(t *testing.T) {
	a := tokenSecret("test-token")
	b := tokenSecret("test-token")
	if a != b {
		t.Errorf("secret not deterministic: %q vs %q", a, b)
	}
	if len(a) != 32 {
		t.Errorf("expected 32 hex chars, got %d", len(a))
	}
	if tokenSecret("other-token") == a {
		t.Error("different tokens must produce different secrets")
	}
	if strings.Contains(a, "test-token") {
		t.Error("secret must not leak the token")
	}
}

func TestWebhookRejectsUnknownSecret(t *testing.T) {
	bot := newTestBot("")
	r := webhookRouter(bot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/webhook/bot/wrong", strings.NewReader("{}"))
	r.ServeHTTP(w, req)

	if w.Code != 404 {
		t.Errorf("expected 404 for unknown secret, got %d", w.Code)
	}
}

func TestWebhookRejectsBadHeaderSecret(t *testing.T) {
	bot := newTestBot("hdr-secret")
	r := webhookRouter(bot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/webhook/bot/"+bot.secret, strings.NewReader("{}"))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "nope")
	r.ServeHTTP(w, req)

	if w.Code != 401 {
		t.Errorf("expected 401 for bad header secret, got %d", w.Code)
	}
}

func TestWebhookRejectsMalformedBody(t *testing.T) {
	bot := newTestBot("")
	r := webhookRouter(bot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/webhook/bot/"+bot.secret, strings.NewReader("not json"))
	r.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}
}

func TestWebhookAcceptsUpdate(t *testing.T) {
	bot := newTestBot("hdr-secret")
	r := webhookRouter(bot)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/webhook/bot/"+bot.secret, strings.NewReader(`{"update_id":1}`))
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", "hdr-secret")
	r.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
