package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"taskflow-pro/internal/chat"
	"taskflow-pro/internal/model"
	"taskflow-pro/pkg/response"
	pkgTelegram "taskflow-pro/pkg/telegram"
)

// HandleWebhook acknowledges a Telegram update at once and answers it in
// the background, since Telegram retries slow webhooks.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secret != "" && subtle.ConstantTimeCompare([]byte(c.GetHeader(pkgTelegram.SecretHeader)), []byte(h.secret)) != 1 {
		h.l.Warnf(ctx, "telegram.HandleWebhook: bad secret token")
		response.Unauthorized(c)
		return
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Warnf(ctx, "telegram.HandleWebhook: parse update: %v", err)
		response.Error(c, err)
		return
	}

	msg := update.Message
	if msg == nil || msg.Chat == nil || msg.From == nil || strings.TrimSpace(msg.Text) == "" {
		response.OK(c, map[string]string{"status": ignoredStatus})
		return
	}

	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram.processMessage: %v", err)
		}
	}()

	response.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "/start" {
		return h.bot.SendMessage(ctx, msg.Chat.ID, startText, pkgTelegram.ParseModeMarkdown)
	}
	if text == "/help" {
		text = "help"
	}

	sc := model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}

	out, err := h.uc.Reply(ctx, sc, chat.ReplyInput{Text: text})
	if err != nil {
		h.l.Warnf(ctx, "telegram.processMessage uc.Reply: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err), "")
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, telegramMarkdown(out.Message.Text), pkgTelegram.ParseModeMarkdown)
}

// telegramMarkdown converts **bold** into the single-asterisk form of
// Telegram's legacy Markdown.
func telegramMarkdown(s string) string {
	return strings.ReplaceAll(s, "**", "*")
}
