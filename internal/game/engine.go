package game

import (
	"time"

	"construction21/internal/rng"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// StateNotStarted means no round has been dealt since the engine was reset
	StateNotStarted RoundState = "not-started"

	// StateInProgress means the player is acting on their hands
	StateInProgress RoundState = "in-progress"

	// StateDealerRevealing means every player hand is resolved and the dealer plays out
	StateDealerRevealing RoundState = "dealer-revealing"

	// StateSettled means the round is over and betting is open again
	StateSettled RoundState = "settled"
)

// Engine owns the deck, hands, bets and chip balance for one player session.
// It is not safe for concurrent use.
type Engine struct {
	rules Rules
	rng   rng.Generator
	clock quartz.Clock

	// log carries the round id while a round is dealt
	baseLog logrus.FieldLogger
	log     logrus.FieldLogger

	deck         []Card
	dealer       *Hand
	hands        []*Hand
	activeIndex  int
	chips        int64
	bets         BetSet
	state        RoundState
	roundID      uuid.UUID
	initialCards []Card
	settled      bool
	lastAction   time.Time
}

// Option configures an Engine
type Option func(e *Engine)

// WithRNG sets the random source used to shuffle
func WithRNG(g rng.Generator) Option {
	return func(e *Engine) {
		e.rng = g
	}
}

// WithClock sets the clock used for the action cooldown
func WithClock(c quartz.Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithLogger sets the logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.baseLog = l
	}
}

// New returns an engine holding rules.StartingChips
func New(rules Rules, opts ...Option) *Engine {
	e := &Engine{
		rules:   rules.normalize(),
		rng:     rng.Crypto{},
		clock:   quartz.NewReal(),
		baseLog: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.log = e.baseLog
	e.ResetGame(e.rules.StartingChips)
	return e
}

// ResetGame clears all round state and sets the balance.
// A balance outside [0, MaxChips] is replaced with DefaultStartingChips.
func (e *Engine) ResetGame(startingChips int64) {
	if startingChips < 0 || startingChips > e.rules.MaxChips {
		e.log.WithField("startingChips", startingChips).Warn("invalid starting chips, using default")
		startingChips = DefaultStartingChips
	}

	e.log = e.baseLog
	e.deck = nil
	e.dealer = newHand(0)
	e.hands = nil
	e.activeIndex = 0
	e.chips = startingChips
	e.bets = BetSet{}
	e.state = StateNotStarted
	e.roundID = uuid.Nil
	e.initialCards = nil
	e.settled = false
	e.lastAction = time.Time{}
}

// StartGame shuffles a fresh deck and deals two cards each to the player and
// dealer, the dealer's second card face down. The main bet must be placed.
func (e *Engine) StartGame() error {
	if !e.canBet() {
		return ErrRoundInProgress
	}

	if e.bets.Main <= 0 {
		return ErrNoMainBet
	}

	e.CreateDeck()
	e.ShuffleDeck()

	e.roundID = uuid.New()
	e.log = e.baseLog.WithField("round", e.roundID.String())
	e.dealer = newHand(0)
	e.hands = []*Hand{newHand(e.bets.Main)}
	e.activeIndex = 0
	e.settled = false
	e.state = StateInProgress

	player := e.hands[0]
	for i := 0; i < 2; i++ {
		if _, err := e.DealCard(player, true); err != nil {
			panic(err) // a fresh deck always has four cards
		}
		if _, err := e.DealCard(e.dealer, i == 0); err != nil {
			panic(err)
		}
	}

	e.initialCards = append([]Card(nil), player.Cards...)

	e.log.WithFields(logrus.Fields{
		"main":  e.bets.Main,
		"chips": e.chips,
	}).Info("round started")

	if player.Score() == 21 {
		e.resolveActive()
	}

	e.checkInvariants()
	return nil
}

// EndGame closes a settled round and opens betting again
func (e *Engine) EndGame() error {
	if e.state == StateNotStarted || e.state == StateSettled {
		return nil
	}

	if !e.settled {
		return ErrRoundNotSettled
	}

	e.state = StateSettled
	e.checkInvariants()
	e.log.Info("round ended")
	return nil
}

// Chips returns the current balance
func (e *Engine) Chips() int64 {
	return e.chips
}

// Bets returns the current stakes
func (e *Engine) Bets() BetSet {
	return e.bets
}

// State returns the round state
func (e *Engine) State() RoundState {
	return e.state
}

// Rules returns the house rules the engine enforces
func (e *Engine) Rules() Rules {
	return e.rules
}

// RoundID identifies the current round in logs
func (e *Engine) RoundID() uuid.UUID {
	return e.roundID
}

// PlayerHands returns the player's hands in play order
func (e *Engine) PlayerHands() []*Hand {
	return e.hands
}

// DealerHand returns the dealer's hand
func (e *Engine) DealerHand() *Hand {
	return e.dealer
}

// ActiveHandIndex returns the index of the hand being played
func (e *Engine) ActiveHandIndex() int {
	return e.activeIndex
}

// ActiveHand returns the hand being played or nil if there is none
func (e *Engine) ActiveHand() *Hand {
	if e.activeIndex < 0 || e.activeIndex >= len(e.hands) {
		return nil
	}

	return e.hands[e.activeIndex]
}

// checkCooldown rejects inputs that arrive faster than Rules.Cooldown
func (e *Engine) checkCooldown() error {
	if e.rules.Cooldown <= 0 {
		return nil
	}

	now := e.clock.Now()
	if !e.lastAction.IsZero() && now.Sub(e.lastAction) < e.rules.Cooldown {
		e.log.Warn("action blocked: too fast")
		return ErrTooFast
	}

	e.lastAction = now
	return nil
}

// credit pays chips to the balance, capped at MaxChips
func (e *Engine) credit(amount int64) {
	e.chips += amount
	if e.chips > e.rules.MaxChips {
		e.log.WithFields(logrus.Fields{
			"chips": e.chips,
			"max":   e.rules.MaxChips,
		}).Warn("balance capped at table maximum")
		e.chips = e.rules.MaxChips
	}
}

// checkInvariants clamps any state that has drifted out of bounds
func (e *Engine) checkInvariants() {
	if e.chips < 0 {
		e.log.WithField("chips", e.chips).Error("negative balance")
		e.chips = 0
	}
	if e.chips > e.rules.MaxChips {
		e.log.WithField("chips", e.chips).Error("balance above maximum")
		e.chips = e.rules.MaxChips
	}

	for _, t := range BetTypes {
		spot := e.bets.spot(t)
		if *spot < 0 {
			e.log.WithField("type", t.String()).Error("negative bet")
			*spot = 0
		}
		if *spot > e.rules.MaxBet {
			e.log.WithField("type", t.String()).Error("bet above maximum")
			*spot = e.rules.MaxBet
		}
	}

	if len(e.hands) > MaxHands {
		e.log.WithField("hands", len(e.hands)).Error("too many hands")
		e.hands = e.hands[:MaxHands]
	}

	if e.activeIndex < 0 || e.activeIndex > len(e.hands) {
		e.log.WithField("activeIndex", e.activeIndex).Error("active hand out of range")
		e.activeIndex = len(e.hands)
	}
}
