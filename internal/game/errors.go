package game

import "errors"

// ErrEndOfDeck is returned when a card is dealt from an empty deck
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrHandFull is returned when a hand already holds MaxCardsPerHand cards
var ErrHandFull = errors.New("hand already has the maximum number of cards")

// ErrNoHand is returned when there is no hand to act on
var ErrNoHand = errors.New("no active hand")

// ErrInvalidCard is returned when the deck yields a malformed card
var ErrInvalidCard = errors.New("invalid card")

// ErrTooFast is returned when an input arrives inside the cooldown window
var ErrTooFast = errors.New("action blocked: too fast")

// ErrInvalidBetType is returned for an unknown bet type
var ErrInvalidBetType = errors.New("invalid bet type")

// ErrInvalidAmount is returned for a non-positive amount
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrBetTooSmall is returned when an amount is below the table minimum
var ErrBetTooSmall = errors.New("bet is below the table minimum")

// ErrBetTooLarge is returned when a bet would exceed the table maximum
var ErrBetTooLarge = errors.New("bet exceeds the table maximum")

// ErrNotEnoughChips is returned when the balance can't cover the amount
var ErrNotEnoughChips = errors.New("not enough chips")

// ErrRoundInProgress is returned when betting or dealing is attempted mid-round
var ErrRoundInProgress = errors.New("round in progress")

// ErrNoMainBet is returned when a round is started without a main bet
var ErrNoMainBet = errors.New("no main bet placed")

// ErrRoundNotInProgress is returned when a player action is attempted outside a round
var ErrRoundNotInProgress = errors.New("round not in progress")

// ErrDealerPlaying is returned when a player action is attempted after all hands resolved
var ErrDealerPlaying = errors.New("dealer play-out has started")

// ErrCannotDouble is returned when the active hand can't be doubled
var ErrCannotDouble = errors.New("cannot double down")

// ErrCannotSplit is returned when the active hand can't be split
var ErrCannotSplit = errors.New("cannot split")

// ErrTooManyHands is returned when a split would exceed MaxHands
var ErrTooManyHands = errors.New("maximum number of hands reached")

// ErrInsuranceNotOffered is returned when the dealer isn't showing an ace
var ErrInsuranceNotOffered = errors.New("insurance is only offered against a dealer ace")

// ErrInsuranceTaken is returned when insurance was already placed this round
var ErrInsuranceTaken = errors.New("insurance already placed")

// ErrInsuranceTooLarge is returned when insurance exceeds half the main bet
var ErrInsuranceTooLarge = errors.New("insurance exceeds half the main bet")

// ErrDealerNotPlaying is returned when the dealer is asked to draw outside play-out
var ErrDealerNotPlaying = errors.New("dealer is not playing out")

// ErrHandsUnresolved is returned when settlement is attempted before every hand resolved
var ErrHandsUnresolved = errors.New("player hands are not resolved")

// ErrRoundSettled is returned when a round has already been paid out
var ErrRoundSettled = errors.New("round already settled")

// ErrRoundNotSettled is returned when a round is ended before it was paid out
var ErrRoundNotSettled = errors.New("round not settled")
