package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/wb-report-bot/internal/config"
)

// Messenger is the outbound side of the bot: plain or Markdown text and file
// attachments to the configured operator chat.
type Messenger interface {
	SendText(message string, markdown bool) error
	SendDocument(data []byte, filename, caption string) error
}

type TelegramService struct {
	cfg *config.Config
	api *tgbotapi.BotAPI
}

func New(cfg *config.Config, api *tgbotapi.BotAPI) Messenger {
	return &TelegramService{
		cfg: cfg,
		api: api,
	}
}

func (s *TelegramService) SendText(message string, markdown bool) error {
	msg := tgbotapi.NewMessage(s.cfg.Telegram.ChatID, message)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}

	if _, err := s.api.Send(msg); err != nil {
		return errors.Wrap(err, "sending telegram message")
	}

	return nil
}

func (s *TelegramService) SendDocument(data []byte, filename, caption string) error {
	doc := tgbotapi.NewDocument(s.cfg.Telegram.ChatID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	})
	doc.Caption = caption

	if _, err := s.api.Send(doc); err != nil {
		return errors.Wrap(err, "sending telegram document")
	}

	return nil
}
