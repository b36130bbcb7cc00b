// Package notify is the operational side-channel: free-text messages pushed
// to an admin chat via a Telegram bot. Delivery is strictly best-effort; a
// failed or slow send must never surface into the caller's control flow.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"
)

// Notifier sends a free-text operational message.
type Notifier interface {
	Notify(text string)
}

// TelegramNotifier posts messages to a Telegram chat via the bot API.
type TelegramNotifier struct {
	botToken   string
	chatID     string
	httpClient *http.Client
}

// NewTelegramNotifier creates a TelegramNotifier. If the token or chat id is
// empty a silent no-op notifier is returned instead.
func NewTelegramNotifier(botToken, chatID string) Notifier {
	if botToken == "" || chatID == "" {
		slog.Warn("Telegram notifier not configured, notifications disabled")
		return &NoopNotifier{}
	}
	return &TelegramNotifier{
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Notify sends the message asynchronously. Errors are logged and swallowed.
func (n *TelegramNotifier) Notify(text string) {
	go func() {
		url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", n.botToken)

		body, err := json.Marshal(map[string]string{
			"chat_id":    n.chatID,
			"text":       text,
			"parse_mode": "Markdown",
		})
		if err != nil {
			slog.Warn("Failed to marshal telegram message", "error", err)
			return
		}

		resp, err := n.httpClient.Post(url, "application/json", bytes.NewReader(body))
		if err != nil {
			slog.Warn("Failed to send telegram message", "error", err)
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			slog.Warn("Telegram API returned non-OK status", "status", resp.StatusCode)
		}
	}()
}

// NoopNotifier discards all messages.
type NoopNotifier struct{}

// Notify does nothing.
func (n *NoopNotifier) Notify(string) {}

// Recorder captures messages for tests.
type Recorder struct {
	Messages []string
}

// Notify appends the message to Messages.
func (r *Recorder) Notify(text string) {
	r.Messages = append(r.Messages, text)
}
