package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"construction21/internal/game"
	"construction21/internal/player"
	"construction21/internal/table"

	"github.com/coder/quartz"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// saveNoticeInterval limits save failure notices to one per player per interval
const saveNoticeInterval = time.Minute

// requestTimeout bounds loading a player from the store
const requestTimeout = 10 * time.Second

// Sender is the part of the Telegram API the handler uses
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Handler maps chat commands and button presses to table calls
type Handler struct {
	sender Sender
	tables *table.Manager
	rules  game.Rules
	log    logrus.FieldLogger
	clock  quartz.Clock

	noticeMu   sync.Mutex
	lastNotice map[string]time.Time
}

// NewHandler returns a handler whose tables save to store
func NewHandler(sender Sender, store player.Store, opts table.Options, log logrus.FieldLogger) *Handler {
	if opts.Rules == (game.Rules{}) {
		opts.Rules = game.DefaultRules()
	}
	if opts.Logger == nil {
		opts.Logger = log
	}

	h := &Handler{
		sender:     sender,
		rules:      opts.Rules,
		log:        log,
		clock:      quartz.NewReal(),
		lastNotice: make(map[string]time.Time),
	}

	opts.OnSaveError = h.notifySaveError
	h.tables = table.NewManager(store, opts)
	return h
}

// Flush waits for pending chip saves
func (h *Handler) Flush() {
	h.tables.Flush()
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.log.WithError(err).WithField("chat", chatID).Warn("failed to send message")
	}
}

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.sender.Send(msg); err != nil {
		h.log.WithError(err).WithField("chat", chatID).Warn("failed to send message")
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.sender.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.log.WithError(err).Debug("failed to answer callback")
	}
}

func userID(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func (h *Handler) getTable(chatID int64) (*table.Table, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	tbl, err := h.tables.Get(ctx, userID(chatID))
	if err != nil {
		h.log.WithError(err).WithField("chat", chatID).Error("failed to load player")
	}
	return tbl, err
}

// notifySaveError tells the player their chips were not saved, at most once per interval
func (h *Handler) notifySaveError(uid string, _ error) {
	chatID, err := strconv.ParseInt(uid, 10, 64)
	if err != nil {
		return
	}

	h.noticeMu.Lock()
	now := h.clock.Now()
	if last, ok := h.lastNotice[uid]; ok && now.Sub(last) < saveNoticeInterval {
		h.noticeMu.Unlock()
		return
	}
	h.lastNotice[uid] = now
	h.noticeMu.Unlock()

	h.send(chatID, "⚠️ Your chips could not be saved. Your balance is kept for this session and will be saved again on your next bet.")
}

// errorText turns an engine error into a short message for the player
func (h *Handler) errorText(err error) string {
	switch {
	case errors.Is(err, game.ErrNotEnoughChips):
		return "Not enough chips!"
	case errors.Is(err, game.ErrCannotSplit):
		return "Cannot split!"
	case errors.Is(err, game.ErrTooManyHands):
		return "You cannot split any more."
	case errors.Is(err, game.ErrCannotDouble):
		return "Cannot double down!"
	case errors.Is(err, game.ErrTooFast):
		return "Slow down!"
	case errors.Is(err, game.ErrRoundInProgress):
		return "Finish the current round first."
	case errors.Is(err, game.ErrNoMainBet):
		return "Place a main bet first: /bet main 10"
	case errors.Is(err, game.ErrRoundNotInProgress):
		return "No round in progress. Place a bet and /deal."
	case errors.Is(err, game.ErrDealerPlaying):
		return "The dealer is playing."
	case errors.Is(err, game.ErrInvalidAmount):
		return "The amount must be a positive number."
	case errors.Is(err, game.ErrInvalidBetType):
		return "Unknown bet. Use main, pp or 21+3."
	case errors.Is(err, game.ErrBetTooSmall), errors.Is(err, game.ErrBetTooLarge):
		return fmt.Sprintf("Bets are %d to %d per spot.", h.rules.MinBet, h.rules.MaxBet)
	case errors.Is(err, game.ErrInsuranceNotOffered):
		return "Insurance is only offered against a dealer ace."
	case errors.Is(err, game.ErrInsuranceTaken):
		return "Insurance is already taken."
	case errors.Is(err, game.ErrInsuranceTooLarge):
		return "Insurance is at most half the main bet."
	}

	h.log.WithError(err).Error("unexpected table error")
	return "❌ Something went wrong. Try again later."
}

// show sends the table after a successful action
func (h *Handler) show(chatID int64, v table.View) {
	switch {
	case v.Result != nil && !v.InRound():
		h.sendWithKeyboard(chatID, formatResult(v), EndGameKeyboard(v.LastBet))
	case v.InRound():
		h.sendWithKeyboard(chatID, formatTable(v), GameKeyboard(v))
	default:
		h.sendWithKeyboard(chatID, fmt.Sprintf("💰 Bets: %s\n💵 Chips: %d", formatBets(v.Bets), v.Chips), BetKeyboard())
	}
}

// ============== COMMANDS ==============

func (h *Handler) HandleStart(chatID int64, from *tgbotapi.User) {
	tbl, err := h.getTable(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}

	if from != nil {
		name := from.UserName
		if name == "" {
			name = from.FirstName
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if err := h.tables.Store().SetDisplayName(ctx, tbl.UserID(), name); err != nil {
			h.log.WithError(err).WithField("chat", chatID).Warn("failed to set display name")
		}
	}

	h.send(chatID, fmt.Sprintf(
		"🎰 Welcome to Construction 21!\n\n"+
			"💵 Chips: %d\n\n"+
			"/bet main 10 — place a bet (also pp, 21+3)\n"+
			"/deal — deal the cards\n"+
			"/play 10 — bet and deal at once\n"+
			"/clear — take your bets back\n"+
			"/balance — stats\n"+
			"/help — rules",
		tbl.View().Chips))
}

func (h *Handler) HandleHelp(chatID int64) {
	soft17 := "stands"
	if h.rules.DealerHitsSoft17 {
		soft17 = "hits"
	}

	h.send(chatID, fmt.Sprintf(
		"📖 Construction 21 rules:\n\n"+
			"🎯 Beat the dealer without going over 21\n\n"+
			"📊 Points:\n"+
			"• 2-10 face value\n"+
			"• J, Q, K count 10\n"+
			"• A counts 11 or 1\n\n"+
			"🎮 Actions:\n"+
			"• Hit, Stand\n"+
			"• Double on your first two cards\n"+
			"• Split a pair, up to %d hands\n"+
			"• Insurance up to half your bet when the dealer shows an ace, pays 2:1\n\n"+
			"🃏 Dealer %s on soft 17\n"+
			"🎰 Blackjack pays 3:2\n\n"+
			"✨ Side bets:\n"+
			"• Perfect Pairs: perfect 25:1, colored 12:1, mixed 6:1\n"+
			"• 21+3: suited trips 100:1, straight flush 40:1, three of a kind 30:1, straight 10:1, flush 5:1\n\n"+
			"Bets are %d to %d per spot.",
		game.MaxHands, soft17, h.rules.MinBet, h.rules.MaxBet))
}

func (h *Handler) HandleBalance(chatID int64) {
	text, err := h.balanceText(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}
	h.send(chatID, text)
}

func (h *Handler) balanceText(chatID int64) (string, error) {
	tbl, err := h.getTable(chatID)
	if err != nil {
		return "", err
	}

	// stats are read back from the store
	tbl.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	v := tbl.View()
	p, err := h.tables.Store().GetOrCreate(ctx, tbl.UserID(), v.Chips)
	if err != nil {
		h.log.WithError(err).WithField("chat", chatID).Error("failed to load stats")
		return "", err
	}

	return formatBalance(v, p), nil
}

func (h *Handler) HandleBet(chatID int64, args []string) {
	if len(args) == 0 || len(args) > 2 {
		h.send(chatID, "Usage: /bet <main|pp|21+3> <amount>")
		return
	}

	bt := game.BetMain
	if len(args) == 2 {
		var err error
		if bt, err = game.ParseBetType(args[0]); err != nil {
			h.send(chatID, h.errorText(err))
			return
		}
	}

	amount, err := strconv.ParseInt(args[len(args)-1], 10, 64)
	if err != nil {
		h.send(chatID, h.errorText(game.ErrInvalidAmount))
		return
	}

	tbl, err := h.getTable(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}

	v, err := tbl.Bet(bt, amount)
	if err != nil {
		h.send(chatID, h.errorText(err))
		return
	}

	h.show(chatID, v)
}

func (h *Handler) HandleClear(chatID int64) {
	tbl, err := h.getTable(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}

	v, refund, err := tbl.Clear()
	if err != nil {
		h.send(chatID, h.errorText(err))
		return
	}

	h.send(chatID, fmt.Sprintf("↩️ Returned %d chips.\n💵 Chips: %d", refund, v.Chips))
}

func (h *Handler) HandleDeal(chatID int64) {
	tbl, err := h.getTable(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}

	v, err := tbl.Deal()
	if err != nil {
		h.send(chatID, h.errorText(err))
		return
	}

	h.show(chatID, v)
}

// HandlePlay bets the amount on main and deals, or repeats the last bet
func (h *Handler) HandlePlay(chatID int64, args []string) {
	tbl, err := h.getTable(chatID)
	if err != nil {
		h.send(chatID, "❌ Something went wrong. Try again later.")
		return
	}

	var v table.View
	if len(args) > 0 {
		amount, perr := strconv.ParseInt(args[0], 10, 64)
		if perr != nil {
			h.send(chatID, fmt.Sprintf("❌ Invalid bet. Example: /play %d", h.rules.MinBet))
			return
		}

		if v, err = tbl.Bet(game.BetMain, amount); err == nil {
			v, err = tbl.Deal()
		}
	} else {
		v, err = tbl.Rebet()
	}

	if err != nil {
		h.send(chatID, h.errorText(err))
		return
	}

	h.show(chatID, v)
}

// ============== CALLBACKS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}

	chatID := callback.Message.Chat.ID
	tbl, err := h.getTable(chatID)
	if err != nil {
		h.answerCallback(callback.ID, "Error")
		return
	}

	var v table.View
	switch callback.Data {
	case CallbackBalance:
		h.answerCallback(callback.ID, fmt.Sprintf("💵 %d", tbl.View().Chips))
		return
	case CallbackPlayAgain:
		v, err = tbl.Rebet()
	case CallbackDeal:
		v, err = tbl.Deal()
	default:
		action, ok := actionCallbacks[callback.Data]
		if !ok {
			h.answerCallback(callback.ID, "")
			return
		}
		v, err = tbl.Act(action)
	}

	if err != nil {
		h.answerCallback(callback.ID, h.errorText(err))
		return
	}

	h.answerCallback(callback.ID, "")
	h.show(chatID, v)
}

// ============== MESSAGES ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}

	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)
	if len(parts) == 0 {
		return
	}

	// commands in groups arrive as /cmd@botname
	cmd := strings.ToLower(parts[0])
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID, msg.From)
	case "/help":
		h.HandleHelp(chatID)
	case "/balance":
		h.HandleBalance(chatID)
	case "/bet":
		h.HandleBet(chatID, args)
	case "/clear":
		h.HandleClear(chatID)
	case "/deal":
		h.HandleDeal(chatID)
	case "/play":
		h.HandlePlay(chatID, args)
	}
}
