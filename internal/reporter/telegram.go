package reporter

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf16"

	"go-posting-cleaner/internal/config"
	"go-posting-cleaner/internal/pipeline"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegram rejects messages longer than this many UTF-16 code units
const maxMessageLen = 4096

// maxFieldLen caps each header field so the body always keeps room
const maxFieldLen = 256

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	_, err := t.bot.Send(msg)
	return err
}

// SendPosting announces a cleaned posting in the configured chat
func (t *TelegramReporter) SendPosting(res pipeline.Result) error {
	return t.SendMessage(BuildPostingMessage(res))
}

func (t *TelegramReporter) SendError(errReq error) error {
	const title = "⚠️ <b>Posting Cleaner Error</b>:\n"
	text := title + fitEscaped(errReq.Error(), maxMessageLen-utf16Len(title))
	return t.SendMessage(text)
}

// BuildPostingMessage renders the HTML message for a cleaned posting.
// The posting body goes in a <pre> block so its layout survives, and is cut
// to fit telegram's message size limit.
func BuildPostingMessage(res pipeline.Result) string {
	header := fmt.Sprintf("🔥 <b>New posting: %s</b>\n📧 %s\n📅 %s\n",
		fitEscaped(res.Record.Company, maxFieldLen),
		fitEscaped(res.Record.Email, maxFieldLen),
		fitEscaped(res.Record.Deadline, maxFieldLen),
	)

	const open, closing = "<pre>", "</pre>"
	budget := maxMessageLen - utf16Len(header) - len(open) - len(closing)

	return header + open + fitEscaped(res.Formatted, budget) + closing
}

// fitEscaped HTML-escapes s and cuts it with a trailing "…" until it fits in limit UTF-16 units.
func fitEscaped(s string, limit int) string {
	out := html.EscapeString(s)
	if utf16Len(out) <= limit {
		return out
	}

	//escape rune by rune so the cut never lands inside an entity
	var b strings.Builder
	used := utf16.RuneLen('…')
	for _, r := range s {
		esc := html.EscapeString(string(r))
		n := utf16Len(esc)
		if used+n > limit {
			break
		}
		b.WriteString(esc)
		used += n
	}
	b.WriteString("…")
	return b.String()
}

// utf16Len counts s the way telegram measures message length
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
