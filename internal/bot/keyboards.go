package bot

import (
	"fmt"

	"construction21/internal/game"
	"construction21/internal/table"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// callback data
const (
	CallbackHit       = "hit"
	CallbackStand     = "stand"
	CallbackDouble    = "double"
	CallbackSplit     = "split"
	CallbackInsurance = "insurance"
	CallbackDeal      = "deal"
	CallbackPlayAgain = "play_again"
	CallbackBalance   = "balance"
)

var actionCallbacks = map[string]game.Action{
	CallbackHit:       game.ActionHit,
	CallbackStand:     game.ActionStand,
	CallbackDouble:    game.ActionDouble,
	CallbackSplit:     game.ActionSplit,
	CallbackInsurance: game.ActionInsurance,
}

// GameKeyboard shows the actions the active hand allows
func GameKeyboard(v table.View) tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("👊 Hit", CallbackHit),
		tgbotapi.NewInlineKeyboardButtonData("✋ Stand", CallbackStand),
	}

	if v.Can(game.ActionDouble) {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("💰 Double", CallbackDouble))
	}
	if v.Can(game.ActionSplit) {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("✂️ Split", CallbackSplit))
	}

	rows := [][]tgbotapi.InlineKeyboardButton{row}
	if v.Can(game.ActionInsurance) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🛡 Insurance (%d)", v.Insurance), CallbackInsurance),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// BetKeyboard is shown while bets are down and the cards are not dealt
func BetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🃏 Deal", CallbackDeal),
			tgbotapi.NewInlineKeyboardButtonData("💵 Balance", CallbackBalance),
		),
	)
}

// EndGameKeyboard offers the same main bet again
func EndGameKeyboard(lastBet int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🔄 Again (%d)", lastBet),
				CallbackPlayAgain,
			),
			tgbotapi.NewInlineKeyboardButtonData("💵 Balance", CallbackBalance),
		),
	)
}
