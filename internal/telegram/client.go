package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a minimal Telegram Bot API client covering the handful of
// methods the bot needs: sending messages with reply keyboards, webhook
// management and long-poll update fetching.
type Client struct {
	token      string
	httpClient *http.Client
	pollClient *http.Client
	baseURL    string
}

// NewClient builds a client for token. pollTimeout is the getUpdates
// long-poll duration; the poll HTTP client gets extra headroom so the
// request isn't cut off before the API responds.
func NewClient(token string, pollTimeout time.Duration) *Client {
	return &Client{
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		pollClient: &http.Client{Timeout: pollTimeout + 10*time.Second},
		baseURL:    fmt.Sprintf("https://api.telegram.org/bot%s", token),
	}
}

func (c *Client) call(hc *http.Client, method string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	resp, err := hc.Post(c.baseURL+"/"+method, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	if !apiResp.OK {
		return nil, fmt.Errorf("telegram: %s", apiResp.Description)
	}

	return apiResp.Result, nil
}

func (c *Client) SendMessage(chatID int64, text, parseMode string, replyMarkup interface{}) (int64, error) {
	req := SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}

	if replyMarkup != nil {
		rm, err := json.Marshal(replyMarkup)
		if err != nil {
			return 0, err
		}
		req.ReplyMarkup = rm
	}

	result, err := c.call(c.httpClient, "sendMessage", req)
	if err != nil {
		return 0, err
	}

	var msg MessageResult
	json.Unmarshal(result, &msg)
	return msg.MessageID, nil
}

func (c *Client) SetWebhook(url, secretToken string) error {
	req := SetWebhookRequest{URL: url, SecretToken: secretToken}
	_, err := c.call(c.httpClient, "setWebhook", req)
	return err
}

func (c *Client) DeleteWebhook() error {
	_, err := c.call(c.httpClient, "deleteWebhook", struct{}{})
	return err
}

// GetUpdates long-polls for updates newer than offset.
func (c *Client) GetUpdates(offset int64, timeout time.Duration) ([]Update, error) {
	req := GetUpdatesRequest{Offset: offset, Timeout: int(timeout.Seconds())}

	result, err := c.call(c.pollClient, "getUpdates", req)
	if err != nil {
		return nil, err
	}

	var updates []Update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, fmt.Errorf("unmarshal updates: %w", err)
	}
	return updates, nil
}
