// Package notify sends an optional Telegram summary after a pipeline run.
// A nil *Notifier is valid and does nothing, so callers never branch on
// whether the bot is configured.
package notify

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobinsights/internal/pipeline"
)

// Notifier posts run summaries to one Telegram chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New connects the bot. An empty token disables notification: the returned
// *Notifier is nil and safe to call.
func New(token string, chatID int64) (*Notifier, error) {
	if token == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

// RunSummary sends the post-run totals and any failed queries.
func (n *Notifier) RunSummary(res *pipeline.Result) error {
	if n == nil {
		return nil
	}
	return n.send(summaryText(res))
}

// Error reports a fatal pipeline problem.
func (n *Notifier) Error(err error) error {
	if n == nil {
		return nil
	}
	return n.send(fmt.Sprintf("⚠️ <b>Job pipeline error</b>:\n%v", err))
}

func (n *Notifier) send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// summaryText renders the run report as Telegram HTML.
func summaryText(res *pipeline.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💼 <b>Job scrape finished</b>\n")
	fmt.Fprintf(&b, "Queries: %d\n", len(res.Stats))
	fmt.Fprintf(&b, "Raw rows: %d\n", res.RawTotal)
	fmt.Fprintf(&b, "Unique jobs: %d\n", res.Unique)
	fmt.Fprintf(&b, "Duplicates removed: %d\n", res.Duplicates)

	failed := res.Failed()
	if len(failed) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\n⚠️ %d failed queries:\n", len(failed))
	for _, s := range failed {
		fmt.Fprintf(&b, "  %s %q: %v\n", s.Query.Source, s.Query.Keyword, s.Err)
	}
	return b.String()
}
