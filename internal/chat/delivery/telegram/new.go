package telegram

import (
	"taskflow-pro/internal/chat"
	"taskflow-pro/pkg/log"
	pkgTelegram "taskflow-pro/pkg/telegram"
)

type handler struct {
	l      log.Logger
	uc     chat.UseCase
	bot    pkgTelegram.Messenger
	secret string
}

// New creates the Telegram webhook handler. When secret is set, updates
// without the matching secret header are rejected.
func New(l log.Logger, uc chat.UseCase, bot pkgTelegram.Messenger, secret string) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		secret: secret,
	}
}
