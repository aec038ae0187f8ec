package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/example/gigwork/internal/logger"
)

// Notifier announces onboarding events to the operations channel.
// Notifications are best-effort; failures are logged, never surfaced.
type Notifier interface {
	WorkerOnboarded(email, category string)
	DocumentSubmitted(email, documentType string)
}

// TelegramService sends admin notifications through the Telegram bot API.
type TelegramService struct {
	botToken    string
	adminChatID string
}

// NewTelegramService creates a new TelegramService. With an empty token it
// becomes a no-op.
func NewTelegramService(botToken, adminChatID string) *TelegramService {
	return &TelegramService{
		botToken:    botToken,
		adminChatID: adminChatID,
	}
}

type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// WorkerOnboarded announces a completed user-to-worker transition.
func (s *TelegramService) WorkerOnboarded(email, category string) {
	text := fmt.Sprintf("👷 New worker onboarded\n<b>%s</b>\nCategory: %s\nVerification pending.", email, category)
	s.sendToAdmin(text)
}

// DocumentSubmitted announces an identity document awaiting review.
func (s *TelegramService) DocumentSubmitted(email, documentType string) {
	text := fmt.Sprintf("📄 Identity document submitted\n<b>%s</b>\nType: %s\nAwaiting verification.", email, documentType)
	s.sendToAdmin(text)
}

func (s *TelegramService) sendToAdmin(text string) {
	if s.botToken == "" || s.adminChatID == "" {
		return
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)

	msg := telegramMessage{
		ChatID:    s.adminChatID,
		Text:      text,
		ParseMode: "HTML",
	}

	body, err := json.Marshal(msg)
	if err != nil {
		logger.Get().WithError(err).Warn("telegram: marshal message")
		return
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		logger.Get().WithError(err).Warn("telegram: send message")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Get().WithField("status", resp.StatusCode).Warn("telegram: unexpected status")
	}
}
