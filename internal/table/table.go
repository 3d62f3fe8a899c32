package table

import (
	"context"
	"sync"
	"time"

	"construction21/internal/game"
	"construction21/internal/player"

	"github.com/sirupsen/logrus"
)

// DefaultSaveTimeout bounds a single background save
const DefaultSaveTimeout = 5 * time.Second

// Options configures the tables a Manager loads
type Options struct {
	Rules         game.Rules
	Logger        logrus.FieldLogger
	EngineOptions []game.Option

	// OnSaveError is called from the save goroutine when the store fails.
	// The in-memory balance is kept and saved again at the next save point.
	OnSaveError func(userID string, err error)
	SaveTimeout time.Duration
}

// Table hosts one player's engine. It serialises access to the engine, runs
// the dealer play-out and writes chip changes to the store in the background.
type Table struct {
	mu      sync.Mutex
	userID  string
	engine  *game.Engine
	store   player.Store
	opts    Options
	log     logrus.FieldLogger
	lastBet int64
	result  *game.Settlement

	saves    sync.WaitGroup
	saveMu   sync.Mutex
	saveSeq  uint64
	savedSeq uint64
}

// Load reads the player's balance from the store and seats them at a new table
func Load(ctx context.Context, store player.Store, userID string, opts Options) (*Table, error) {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.SaveTimeout <= 0 {
		opts.SaveTimeout = DefaultSaveTimeout
	}

	log := opts.Logger.WithField("user", userID)
	rules := opts.Rules
	if rules == (game.Rules{}) {
		rules = game.DefaultRules()
	}

	p, err := store.GetOrCreate(ctx, userID, rules.StartingChips)
	if err != nil {
		return nil, err
	}

	engineOpts := append([]game.Option{game.WithLogger(log)}, opts.EngineOptions...)
	engine := game.New(rules, engineOpts...)
	engine.ResetGame(p.Chips)

	log.WithField("chips", engine.Chips()).Info("player seated")

	return &Table{
		userID: userID,
		engine: engine,
		store:  store,
		opts:   opts,
		log:    log,
	}, nil
}

// UserID returns the id the table saves under
func (t *Table) UserID() string {
	return t.userID
}

// View returns the current table state
func (t *Table) View() View {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.view()
}

// Bet places chips on a betting spot between rounds, or buys insurance mid-round
func (t *Table) Bet(bt game.BetType, amount int64) (View, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.engine.PlaceBet(bt, amount); err != nil {
		return t.view(), err
	}

	if t.engine.State() != game.StateInProgress {
		t.result = nil
	}

	t.save(nil)
	return t.view(), nil
}

// Clear refunds every bet placed for the next round
func (t *Table) Clear() (View, int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	refund, err := t.engine.ClearBets()
	if err != nil {
		return t.view(), 0, err
	}

	if refund > 0 {
		t.save(nil)
	}
	return t.view(), refund, nil
}

// Deal starts a round with the bets on the table. A natural is settled at once.
func (t *Table) Deal() (View, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.deal()
}

// Rebet places the last round's main bet again if no main bet is down, then deals
func (t *Table) Rebet() (View, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.engine.Bets().Main == 0 {
		if t.lastBet <= 0 {
			return t.view(), game.ErrNoMainBet
		}
		if err := t.engine.PlaceBet(game.BetMain, t.lastBet); err != nil {
			return t.view(), err
		}
	}

	return t.deal()
}

func (t *Table) deal() (View, error) {
	main := t.engine.Bets().Main
	if err := t.engine.StartGame(); err != nil {
		return t.view(), err
	}

	t.lastBet = main
	t.result = nil

	if t.engine.State() == game.StateDealerRevealing {
		t.finish()
	}
	return t.view(), nil
}

// Act performs a player action on the active hand. Insurance buys as much as
// the balance covers, up to half the main bet.
func (t *Table) Act(a game.Action) (View, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var err error
	switch a {
	case game.ActionHit:
		_, err = t.engine.Hit()
	case game.ActionStand:
		err = t.engine.Stand()
	case game.ActionDouble:
		_, err = t.engine.DoubleDown()
	case game.ActionSplit:
		err = t.engine.SplitHand()
	case game.ActionInsurance:
		if amount := t.insuranceAmount(); amount > 0 {
			err = t.engine.PlaceInsurance(amount)
		} else {
			err = game.ErrNotEnoughChips
		}
	default:
		err = t.engine.CanPerformAction(a)
	}

	if err != nil {
		return t.view(), err
	}

	switch a {
	case game.ActionDouble, game.ActionSplit, game.ActionInsurance:
		t.save(nil)
	}

	if t.engine.State() == game.StateDealerRevealing {
		t.finish()
	}
	return t.view(), nil
}

// insuranceAmount is what the insurance button buys
func (t *Table) insuranceAmount() int64 {
	return min(t.engine.MaxInsurance(), t.engine.Chips())
}

// finish plays out the dealer, settles the round and saves the result
func (t *Table) finish() {
	if !t.engine.AllHandsBust() {
		limit := t.engine.Rules().DealerDrawCap
		for draws := 0; t.engine.ShouldDealerHit(); draws++ {
			if draws >= limit {
				t.log.WithField("score", t.engine.DealerHand().Score()).Error("dealer draw cap reached")
				break
			}

			if _, err := t.engine.DealerHit(); err != nil {
				t.log.WithError(err).Error("dealer hit failed")
				break
			}
		}
	}

	s, err := t.engine.SettleHands()
	if err != nil {
		t.log.WithError(err).Error("failed to settle round")
		return
	}

	if err := t.engine.EndGame(); err != nil {
		t.log.WithError(err).Error("failed to end round")
	}

	t.result = s
	tally := tallyOf(s)
	t.save(&tally)
}

// Flush waits for background saves to finish. It holds mu so no save is
// started while it waits; the save goroutines never take mu.
func (t *Table) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.saves.Wait()
}

// save writes the current balance, and the round tally if given, without
// blocking the caller. A save older than one already written is skipped.
func (t *Table) save(tally *player.Tally) {
	t.saveSeq++
	seq := t.saveSeq
	chips := t.engine.Chips()

	t.saves.Add(1)
	go func() {
		defer t.saves.Done()

		t.saveMu.Lock()
		defer t.saveMu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), t.opts.SaveTimeout)
		defer cancel()

		if tally != nil {
			if err := t.store.RecordRound(ctx, t.userID, *tally); err != nil {
				t.saveFailed(err)
			}
		}

		if seq <= t.savedSeq {
			return
		}

		if err := t.store.SaveChips(ctx, t.userID, chips); err != nil {
			t.saveFailed(err)
			return
		}

		t.savedSeq = seq
		t.log.WithField("chips", chips).Debug("saved chips")
	}()
}

func (t *Table) saveFailed(err error) {
	t.log.WithError(err).Warn("failed to save player")
	if t.opts.OnSaveError != nil {
		t.opts.OnSaveError(t.userID, err)
	}
}

func tallyOf(s *game.Settlement) player.Tally {
	var tally player.Tally
	for _, h := range s.Hands {
		switch h.Outcome {
		case game.OutcomeBlackjack, game.OutcomeWin:
			tally.Wins++
		case game.OutcomePush:
			tally.Pushes++
		default:
			tally.Losses++
		}
	}

	return tally
}
