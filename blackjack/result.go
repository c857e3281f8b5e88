package blackjack

// Outcome identifies which side won a resolved hand
type Outcome string

const (
	OutcomeDealerWins Outcome = "dealer"
	OutcomePlayerWins Outcome = "player"
	OutcomePush       Outcome = "push"
)

// HandResult is the outcome of comparing a player hand against the
// dealer. Blackjack is true only when the win was decided by a natural
// two-card 21, never by an ordinary total comparison.
type HandResult struct {
	Outcome   Outcome
	Blackjack bool
}

// DealerWins creates a dealer-win result
func DealerWins(blackjack bool) HandResult {
	return HandResult{Outcome: OutcomeDealerWins, Blackjack: blackjack}
}

// PlayerWins creates a player-win result
func PlayerWins(blackjack bool) HandResult {
	return HandResult{Outcome: OutcomePlayerWins, Blackjack: blackjack}
}

// Push creates a tied result
func Push() HandResult {
	return HandResult{Outcome: OutcomePush}
}
