package bot

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/HenTyna/foot-auto-poll-bot/internal/menu"
	"github.com/HenTyna/foot-auto-poll-bot/internal/order"
	"github.com/HenTyna/foot-auto-poll-bot/internal/scheduler"
	"github.com/HenTyna/foot-auto-poll-bot/internal/session"
)

// How long the vote acknowledgment stays on screen before the tally
// returns.
const voteFlashDelay = 3 * time.Second

// Handler translates Telegram updates into engine calls and renders
// engine state back into the chat. It holds no aggregation state of its
// own.
type Handler struct {
	api       *tgbotapi.BotAPI
	sessions  *session.Service
	views     *order.Views
	chats     *scheduler.Registry
	orderName string

	daily *scheduler.Scheduler
}

func NewHandler(
	api *tgbotapi.BotAPI,
	sessions *session.Service,
	views *order.Views,
	chats *scheduler.Registry,
	orderName string,
) *Handler {
	return &Handler{
		api:       api,
		sessions:  sessions,
		views:     views,
		chats:     chats,
		orderName: orderName,
	}
}

// AttachScheduler lets /debug_send trigger the daily broadcast manually.
func (h *Handler) AttachScheduler(s *scheduler.Scheduler) {
	h.daily = s
}

// Run consumes the long-poll update stream until the channel closes.
func (h *Handler) Run() {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	log.Printf("[BOT] polling as @%s", h.api.Self.UserName)

	for update := range h.api.GetUpdatesChan(cfg) {
		h.handleUpdate(update)
	}
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(msg *tgbotapi.Message) {
	if msg.Text == "" {
		return
	}

	switch msg.Command() {
	case "start":
		h.chats.Add(msg.Chat.ID)
		h.reply(msg, welcomeMessage)
		return
	case "debug_send":
		if h.daily != nil {
			h.daily.Broadcast()
			h.reply(msg, "Debug message sent!")
		}
		return
	}

	text := strings.TrimSpace(msg.Text)
	if menu.IsMenuText(text) {
		h.createMenuSession(msg, text)
	}
}

// createMenuSession turns a menu text into a session and posts the
// selection keyboard.
func (h *Handler) createMenuSession(msg *tgbotapi.Message, text string) {
	items := menu.ExtractItems(text)

	sess, err := h.sessions.Create(msg.Chat.ID, items)
	if err != nil {
		log.Printf("[BOT] menu rejected (%d items): %v", len(items), err)
		return
	}

	keyboard := buildSelectionKeyboard(sess.ID, sess.Items)
	out := tgbotapi.NewMessage(msg.Chat.ID, menuQuestion)
	out.ReplyToMessageID = msg.MessageID
	out.ReplyMarkup = keyboard

	var sent tgbotapi.Message
	err = withRetry(func() error {
		var sendErr error
		sent, sendErr = h.api.Send(out)
		return sendErr
	})
	if err != nil {
		log.Printf("[BOT] failed to post menu keyboard: %v", err)
		return
	}

	sess.SetMessageIDs(msg.MessageID, sent.MessageID)
	log.Printf("[BOT] menu posted for session %s (%d items)", sess.ID, len(items))
}

// handleCallback dispatches a button tap and answers the query exactly
// once. Telegram accepts a single answer per callback query, so usage
// errors travel as the text of that one answer.
func (h *Handler) handleCallback(query *tgbotapi.CallbackQuery) {
	h.answer(query, h.dispatchCallback(query))
}

// dispatchCallback routes the tap to the engine and returns the toast
// text for the callback answer; empty means a plain acknowledgment.
func (h *Handler) dispatchCallback(query *tgbotapi.CallbackQuery) string {
	cb, err := parseCallback(query.Data)
	if err != nil {
		log.Printf("[BOT] %v: %q", err, query.Data)
		return ""
	}
	if cb.Action == actionNoop || query.Message == nil {
		return ""
	}

	participant := query.From.ID
	name := displayName(query.From)

	switch cb.Action {
	case actionQuantity:
		err := h.sessions.StageSelection(cb.SessionID, participant, cb.ItemIndex, cb.Quantity, name)
		if err != nil {
			return userMessage(err)
		}
		h.refreshTally(cb.SessionID)

	case actionVote:
		result, err := h.sessions.ConfirmVote(cb.SessionID, participant)
		if err != nil {
			return userMessage(err)
		}
		if result.AlreadyVoted {
			return errAlreadyVoted
		}
		h.flashVoteConfirmation(cb.SessionID)

	case actionReset:
		if err := h.sessions.ResetSelections(cb.SessionID, participant); err != nil {
			return userMessage(err)
		}
		h.refreshTally(cb.SessionID)

	case actionOrder:
		return h.sendOrderSummary(cb.SessionID)

	case actionClose:
		return h.closeOrder(cb.SessionID)
	}

	return ""
}

// refreshTally rewrites the keyboard message with the live combined view.
// Closed sessions keep the final render from closeOrder; re-attaching the
// keyboard there would invite taps the engine can only reject.
func (h *Handler) refreshTally(sessionID string) {
	snap, err := h.sessions.Snapshot(sessionID)
	if err != nil || snap.Status == session.StatusClosed {
		return
	}

	text := menuQuestion
	if tally := order.FormatCombined(order.BuildCombinedView(snap), snap.Items); tally != "" {
		text += "\n\n" + tally
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		snap.ChatID,
		snap.KeyboardMessageID,
		text,
		buildSelectionKeyboard(snap.ID, snap.Items),
	)
	if err := withRetry(func() error { _, e := h.api.Send(edit); return e }); err != nil {
		log.Printf("[BOT] failed to refresh tally for %s: %v", sessionID, err)
	}
}

// flashVoteConfirmation swaps the keyboard text for a short acknowledgment
// and schedules the tally restore. The restore runs from a timer so no
// session lock is held while waiting.
func (h *Handler) flashVoteConfirmation(sessionID string) {
	snap, err := h.sessions.Snapshot(sessionID)
	if err != nil {
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(
		snap.ChatID,
		snap.KeyboardMessageID,
		voteConfirmedFlash,
		buildSelectionKeyboard(snap.ID, snap.Items),
	)
	if err := withRetry(func() error { _, e := h.api.Send(edit); return e }); err != nil {
		log.Printf("[BOT] failed to flash vote confirmation: %v", err)
		return
	}

	time.AfterFunc(voteFlashDelay, func() { h.refreshTally(sessionID) })
}

// sendOrderSummary posts the consolidated order as a reply to the menu
// message, the way the original thread reads.
func (h *Handler) sendOrderSummary(sessionID string) string {
	snap, err := h.sessions.Snapshot(sessionID)
	if err != nil {
		return userMessage(err)
	}

	summary := order.BuildSummary(snap)
	text := order.FormatSummary(summary, h.orderName, snap.Items)
	if text == "" {
		text = errNoOrders
	}

	out := tgbotapi.NewMessage(snap.ChatID, text)
	if snap.MenuMessageID != 0 {
		out.ReplyToMessageID = snap.MenuMessageID
	}
	if err := withRetry(func() error { _, e := h.api.Send(out); return e }); err != nil {
		log.Printf("[BOT] failed to send order summary: %v", err)
		return ""
	}

	if len(summary.Items) > 0 {
		log.Printf("[BOT] order summary sent for session %s: %v", sessionID, summary.Items)
	}
	return ""
}

// closeOrder finalizes the session and strips the keyboard so no further
// taps arrive.
func (h *Handler) closeOrder(sessionID string) string {
	if err := h.sessions.Close(sessionID); err != nil {
		return userMessage(err)
	}

	snap, err := h.sessions.Snapshot(sessionID)
	if err != nil {
		return ""
	}

	text := menuQuestion
	if tally := order.FormatCombined(order.BuildCombinedView(snap), snap.Items); tally != "" {
		text += "\n\n" + tally
	}
	edit := tgbotapi.NewEditMessageText(snap.ChatID, snap.KeyboardMessageID, text)
	if err := withRetry(func() error { _, e := h.api.Send(edit); return e }); err != nil {
		log.Printf("[BOT] failed to hide keyboard for %s: %v", sessionID, err)
	}

	if err := h.SendText(snap.ChatID, orderClosedMessage); err != nil {
		log.Printf("[BOT] failed to announce close: %v", err)
	}
	return ""
}

func (h *Handler) answer(query *tgbotapi.CallbackQuery, text string) {
	cb := tgbotapi.NewCallback(query.ID, text)
	if _, err := h.api.Request(cb); err != nil {
		log.Printf("[BOT] failed to answer callback: %v", err)
	}
}

func (h *Handler) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	if err := withRetry(func() error { _, e := h.api.Send(out); return e }); err != nil {
		log.Printf("[BOT] failed to reply: %v", err)
	}
}

// SendText implements scheduler.Sender.
func (h *Handler) SendText(chatID int64, text string) error {
	return withRetry(func() error {
		_, err := h.api.Send(tgbotapi.NewMessage(chatID, text))
		return err
	})
}

// userMessage maps engine usage errors to the short messages shown in
// chat.
func userMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errMenuNotFound
	case errors.Is(err, session.ErrNothingToConfirm):
		return errNoSelection
	case errors.Is(err, session.ErrSessionClosed):
		return errOrderClosed
	case errors.Is(err, session.ErrInvalidIndex), errors.Is(err, session.ErrInvalidQuantity):
		return errInvalidSelection
	}
	return errInvalidSelection
}

func displayName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}

	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name != "" {
		return name
	}
	if user.UserName != "" {
		return user.UserName
	}
	return fmt.Sprintf("User%d", user.ID)
}
