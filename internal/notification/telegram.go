// Package notification tells organisers about new registrations.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"event-portal/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// sendTimeout bounds a single Bot API call.
const sendTimeout = 10 * time.Second

// TelegramNotifier posts registrations to a chat. Sends run in the background
// so a slow Bot API never holds up the request that triggered them.
type TelegramNotifier struct {
	bot     sender
	chatID  int64
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewTelegramNotifier(token string, chatID int64, logger *slog.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: sendTimeout})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger, timeout: sendTimeout}, nil
}

func (n *TelegramNotifier) NotifyRegistration(ctx context.Context, reg domain.Registration) {
	event := reg.EventName
	if event == "" {
		event = fmt.Sprintf("event #%d", reg.EventID)
	}

	text := fmt.Sprintf(
		"*New registration*\n\n"+"Student: %s\n"+"Event: %s\n"+"Tickets: %d\n"+"Email: %s",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, reg.StudentName),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, event),
		reg.Tickets,
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, reg.Email),
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", slog.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", slog.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			slog.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	timeout := n.timeout
	if timeout <= 0 {
		timeout = sendTimeout
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		// The request that triggered the send may already be finished.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		errCh := make(chan error, 1)
		go func() {
			_, err := n.bot.Send(msg)
			errCh <- err
		}()

		select {
		case err := <-errCh:
			if err != nil {
				n.logger.Error("failed to send telegram notification",
					slog.Int64("chat_id", n.chatID),
					slog.String("error", err.Error()),
				)
			}
		case <-ctx.Done():
			n.logger.Warn("telegram notification timed out",
				slog.Int64("chat_id", n.chatID),
				slog.Duration("timeout", timeout),
			)
		}
	}()
}

// Wait blocks until every started notification has been sent or timed out.
func (n *TelegramNotifier) Wait() {
	n.wg.Wait()
}
