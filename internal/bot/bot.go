package bot

import (
	"context"
	"sync"

	"construction21/internal/player"
	"construction21/internal/table"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Bot receives Telegram updates and hands them to the Handler
type Bot struct {
	api         *tgbotapi.BotAPI
	handler     *Handler
	pollTimeout int
	log         logrus.FieldLogger
	wg          sync.WaitGroup
}

// New connects to Telegram with token and seats players from store
func New(token string, pollTimeout int, store player.Store, opts table.Options, log logrus.FieldLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:         api,
		handler:     NewHandler(api, store, opts, log),
		pollTimeout: pollTimeout,
		log:         log,
	}, nil
}

// Run long-polls for updates until ctx is cancelled, then waits for the
// handlers still running and for pending chip saves
func (b *Bot) Run(ctx context.Context) error {
	b.log.WithField("username", b.api.Self.UserName).Info("bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout

	updates := b.api.GetUpdatesChan(u)
	defer b.shutdown()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.dispatch(update)
		}
	}
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.handler.HandleCallback(update.CallbackQuery)
		}()
		return
	}

	if update.Message != nil {
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			b.handler.HandleMessage(update.Message)
		}()
	}
}

func (b *Bot) shutdown() {
	b.wg.Wait()
	b.handler.Flush()
	b.log.Info("bot stopped")
}
