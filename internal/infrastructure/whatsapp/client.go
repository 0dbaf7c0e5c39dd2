package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/subtrack-notify/internal/config"
	"github.com/subtrack-notify/internal/pkg/phone"
)

// Sender sends WhatsApp text messages and returns the provider message id.
type Sender interface {
	SendText(ctx context.Context, to, body string) (string, error)
}

type client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	phoneNumberID string
}

// NewClient builds a WhatsApp Business Graph API client.
func NewClient(cfg *config.Config) Sender {
	return &client{
		httpClient:    &http.Client{Timeout: 15 * time.Second},
		baseURL:       cfg.WhatsAppAPIBaseURL,
		token:         cfg.WhatsAppToken,
		phoneNumberID: cfg.WhatsAppPhoneNumberID,
	}
}

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             sendText `json:"text"`
}

type sendText struct {
	Body string `json:"body"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendText posts a text message to the Graph API. The recipient number is
// stripped to bare digits before sending.
func (c *client) SendText(ctx context.Context, to, body string) (string, error) {
	payload, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		To:               phone.Digits(to),
		Type:             "text",
		Text:             sendText{Body: body},
	})
	if err != nil {
		return "", fmt.Errorf("marshal send request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("whatsapp send: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read whatsapp response: %w", err)
	}

	var parsed sendResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode whatsapp response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Error != nil {
			return "", fmt.Errorf("whatsapp API error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return "", fmt.Errorf("whatsapp API status %d: %s", resp.StatusCode, respBody)
	}
	if len(parsed.Messages) == 0 {
		return "", fmt.Errorf("whatsapp API returned no message id")
	}
	return parsed.Messages[0].ID, nil
}
