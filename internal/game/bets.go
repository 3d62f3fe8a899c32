package game

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// BetType is one of the four betting spots
type BetType int

// BetType constants
const (
	BetMain BetType = iota
	BetPerfectPairs
	BetTwentyOnePlusThree
	BetInsurance
)

// BetTypes lists every bet type in settlement order
var BetTypes = []BetType{BetMain, BetPerfectPairs, BetTwentyOnePlusThree, BetInsurance}

func (b BetType) String() string {
	switch b {
	case BetMain:
		return "main"
	case BetPerfectPairs:
		return "perfect-pairs"
	case BetTwentyOnePlusThree:
		return "21+3"
	case BetInsurance:
		return "insurance"
	}

	return fmt.Sprintf("BetType(%d)", int(b))
}

// ParseBetType accepts the names players type at the table
func ParseBetType(s string) (BetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "main":
		return BetMain, nil
	case "pp", "perfect-pairs", "perfectpairs":
		return BetPerfectPairs, nil
	case "21+3", "plus3", "21plus3":
		return BetTwentyOnePlusThree, nil
	case "insurance", "ins":
		return BetInsurance, nil
	}

	return 0, ErrInvalidBetType
}

// BetSet holds the chips staked on each betting spot
type BetSet struct {
	Main               int64 `json:"main"`
	PerfectPairs       int64 `json:"perfectPairs"`
	TwentyOnePlusThree int64 `json:"twentyOnePlusThree"`
	Insurance          int64 `json:"insurance"`
}

// Get returns the amount on a spot
func (b *BetSet) Get(t BetType) int64 {
	return *b.spot(t)
}

// Total is the sum of every spot
func (b *BetSet) Total() int64 {
	return b.Main + b.PerfectPairs + b.TwentyOnePlusThree + b.Insurance
}

func (b *BetSet) spot(t BetType) *int64 {
	switch t {
	case BetMain:
		return &b.Main
	case BetPerfectPairs:
		return &b.PerfectPairs
	case BetTwentyOnePlusThree:
		return &b.TwentyOnePlusThree
	case BetInsurance:
		return &b.Insurance
	}

	panic(fmt.Sprintf("unknown bet type: %d", int(t)))
}

func validBetType(t BetType) bool {
	return t >= BetMain && t <= BetInsurance
}

// canBet returns true between rounds
func (e *Engine) canBet() bool {
	return e.state == StateNotStarted || e.state == StateSettled
}

// validateAmount applies the table limits to adding amount onto current
func (e *Engine) validateAmount(amount, current int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount < e.rules.MinBet {
		return ErrBetTooSmall
	}
	if current+amount > e.rules.MaxBet {
		return ErrBetTooLarge
	}
	if amount > e.chips {
		return ErrNotEnoughChips
	}

	return nil
}

// PlaceBet moves amount from the balance onto a betting spot.
// Insurance can only be bought mid-round and is handled by PlaceInsurance.
func (e *Engine) PlaceBet(t BetType, amount int64) error {
	if err := e.checkCooldown(); err != nil {
		return err
	}

	if !validBetType(t) {
		return ErrInvalidBetType
	}

	if t == BetInsurance {
		return e.placeInsurance(amount)
	}

	if !e.canBet() {
		return ErrRoundInProgress
	}

	spot := e.bets.spot(t)
	if err := e.validateAmount(amount, *spot); err != nil {
		e.log.WithError(err).WithFields(logrus.Fields{
			"type":   t.String(),
			"amount": amount,
			"chips":  e.chips,
		}).Warn("bet rejected")
		return err
	}

	e.chips -= amount
	*spot += amount

	e.log.WithFields(logrus.Fields{
		"type":   t.String(),
		"amount": amount,
		"total":  *spot,
		"chips":  e.chips,
	}).Info("placed bet")

	e.checkInvariants()
	return nil
}

// ClearBets returns every staked chip to the balance
func (e *Engine) ClearBets() (int64, error) {
	if err := e.checkCooldown(); err != nil {
		return 0, err
	}

	if !e.canBet() {
		return 0, ErrRoundInProgress
	}

	refund := e.bets.Total()
	e.chips += refund
	e.bets = BetSet{}

	e.log.WithFields(logrus.Fields{
		"refund": refund,
		"chips":  e.chips,
	}).Info("cleared bets")

	e.checkInvariants()
	return refund, nil
}

// MaxInsurance is half the main bet, rounded up
func (e *Engine) MaxInsurance() int64 {
	return (e.bets.Main + 1) / 2
}

// InsuranceOffered returns true while insurance can still be bought
func (e *Engine) InsuranceOffered() bool {
	return e.CanPerformAction(ActionInsurance) == nil
}

// PlaceInsurance buys insurance against a dealer ace
func (e *Engine) PlaceInsurance(amount int64) error {
	if err := e.checkCooldown(); err != nil {
		return err
	}

	return e.placeInsurance(amount)
}

func (e *Engine) placeInsurance(amount int64) error {
	if err := e.CanPerformAction(ActionInsurance); err != nil {
		return err
	}

	if amount <= 0 {
		return ErrInvalidAmount
	}

	if amount > e.MaxInsurance() {
		return ErrInsuranceTooLarge
	}

	if err := e.validateAmount(amount, 0); err != nil {
		return err
	}

	e.chips -= amount
	e.bets.Insurance += amount

	e.log.WithFields(logrus.Fields{
		"amount": amount,
		"chips":  e.chips,
	}).Info("placed insurance")

	e.checkInvariants()
	return nil
}
