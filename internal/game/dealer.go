package game

// ShouldDealerHit is true below 17, and at soft 17 when the house hits soft 17
func (e *Engine) ShouldDealerHit() bool {
	score := e.dealer.Score()
	if score < 17 {
		return true
	}

	return score == 17 && e.rules.DealerHitsSoft17 && IsSoft17(e.dealer.Cards)
}

// RevealDealer turns every dealer card face up
func (e *Engine) RevealDealer() {
	for i := range e.dealer.Cards {
		e.dealer.Cards[i].FaceUp = true
	}
}

// DealerHit deals one face-up card to the dealer during play-out
func (e *Engine) DealerHit() (Card, error) {
	if e.state != StateDealerRevealing || e.settled {
		return Card{}, ErrDealerNotPlaying
	}

	e.RevealDealer()
	card, err := e.DealCard(e.dealer, true)
	if err != nil {
		return Card{}, err
	}

	e.log.WithField("card", card.String()).WithField("score", e.dealer.Score()).Debug("dealer hit")
	return card, nil
}

// AllHandsBust returns true when the dealer has nothing to play against
func (e *Engine) AllHandsBust() bool {
	if len(e.hands) == 0 {
		return false
	}

	for _, h := range e.hands {
		if !h.IsBust() {
			return false
		}
	}

	return true
}
