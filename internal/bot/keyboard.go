package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/HenTyna/foot-auto-poll-bot/internal/session"
)

// buildSelectionKeyboard lays out the menu: for each item a label row
// followed by two rows of quantity buttons (1–5 and 6–10), then the
// vote/reset and order/close control rows.
func buildSelectionKeyboard(sessionID string, items []string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for i, item := range items {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(item, string(actionNoop)),
		))
		rows = append(rows, quantityRow(sessionID, i, session.MinQuantity, 5))
		rows = append(rows, quantityRow(sessionID, i, 6, session.MaxQuantity))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(voteButtonText, sessionCallback(actionVote, sessionID)),
		tgbotapi.NewInlineKeyboardButtonData(resetButtonText, sessionCallback(actionReset, sessionID)),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(orderButtonText, sessionCallback(actionOrder, sessionID)),
		tgbotapi.NewInlineKeyboardButtonData(closeButtonText, sessionCallback(actionClose, sessionID)),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func quantityRow(sessionID string, itemIndex, from, to int) []tgbotapi.InlineKeyboardButton {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, to-from+1)
	for q := from; q <= to; q++ {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("×%d", q),
			quantityCallback(sessionID, itemIndex, q),
		))
	}
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}
