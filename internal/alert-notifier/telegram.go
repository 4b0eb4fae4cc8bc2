package alert_notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TelegramClient sends one message through the Telegram Bot API.
type TelegramClient interface {
	SendMessage(ctx context.Context, chatId string, text string) error
}

type telegramClient struct {
	client     *http.Client
	apiBaseURL string
	botToken   string
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (t *telegramClient) SendMessage(ctx context.Context, chatId string, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatId,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("TelegramClient.SendMessage: %w", err)
	}
	requestUrl := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBaseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestUrl, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("TelegramClient.SendMessage creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("TelegramClient.SendMessage: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("TelegramClient.SendMessage reading response: %w", err)
	}
	var res sendMessageResponse
	if err = json.Unmarshal(respBody, &res); err != nil {
		return fmt.Errorf("TelegramClient.SendMessage decoding response: %w", err)
	}
	if !res.OK {
		return fmt.Errorf("TelegramClient.SendMessage: telegram api error [%d] %s", resp.StatusCode, res.Description)
	}
	return nil
}

func NewTelegramClient(apiBaseURL string, botToken string, requestTimeout time.Duration) TelegramClient {
	return &telegramClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		apiBaseURL: apiBaseURL,
		botToken:   botToken,
	}
}
