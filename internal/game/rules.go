package game

import "time"

// table limits
const (
	// MaxHands is the initial hand plus three splits
	MaxHands = 4

	// MaxCardsPerHand is four aces and seven others, past which a hand is always over 21
	MaxCardsPerHand = 11

	// DeckSize is a single standard deck
	DeckSize = 52
)

// house rule defaults
const (
	DefaultStartingChips int64 = 100
	DefaultMaxChips      int64 = 1000000
	DefaultMinBet        int64 = 1
	DefaultMaxBet        int64 = 10000
	DefaultCooldown            = 100 * time.Millisecond

	// DefaultDealerHitsSoft17 selects S17: the dealer stands on every 17
	DefaultDealerHitsSoft17 = false

	// DefaultDealerDrawCap bounds the number of cards the dealer may draw during play-out
	DefaultDealerDrawCap = 10
)

// Rules are the configurable house rules and limits for a table
type Rules struct {
	StartingChips int64 `yaml:"startingChips" split_words:"true"`
	MaxChips      int64 `yaml:"maxChips" split_words:"true"`
	MinBet        int64 `yaml:"minBet" split_words:"true"`
	MaxBet        int64 `yaml:"maxBet" split_words:"true"`

	// Cooldown is the minimum time between player inputs. Zero disables it.
	Cooldown time.Duration `yaml:"cooldown"`

	DealerHitsSoft17 bool `yaml:"dealerHitsSoft17" split_words:"true"`
	DealerDrawCap    int  `yaml:"dealerDrawCap" split_words:"true"`
}

// DefaultRules returns the standard Construction 21 house rules
func DefaultRules() Rules {
	return Rules{
		StartingChips:    DefaultStartingChips,
		MaxChips:         DefaultMaxChips,
		MinBet:           DefaultMinBet,
		MaxBet:           DefaultMaxBet,
		Cooldown:         DefaultCooldown,
		DealerHitsSoft17: DefaultDealerHitsSoft17,
		DealerDrawCap:    DefaultDealerDrawCap,
	}
}

// normalize fills zero limits with defaults
func (r Rules) normalize() Rules {
	if r.StartingChips <= 0 {
		r.StartingChips = DefaultStartingChips
	}
	if r.MaxChips <= 0 {
		r.MaxChips = DefaultMaxChips
	}
	if r.MinBet <= 0 {
		r.MinBet = DefaultMinBet
	}
	if r.MaxBet <= 0 {
		r.MaxBet = DefaultMaxBet
	}
	if r.Cooldown < 0 {
		r.Cooldown = 0
	}
	if r.DealerDrawCap <= 0 {
		r.DealerDrawCap = DefaultDealerDrawCap
	}

	return r
}
