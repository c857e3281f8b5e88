package blackjack

import (
	"fmt"

	"github.com/lazharichir/blackjack/cards"
)

// HandValue folds the card values of a hand into a single total. An
// empty hand yields (0, 0).
func HandValue(hand cards.Stack) HandTotal {
	var total HandTotal
	for _, card := range hand {
		total = total.Add(CardValue(card))
	}
	return total
}

// CardValue returns the blackjack value of a single card. Aces count
// hard 11 / soft 1, tens and face cards count 10, the numeric ranks
// count face value. A joker means a non-standard deck reached the
// evaluator, which is a programming error, so it panics.
func CardValue(card cards.Card) HandTotal {
	switch card.Rank {
	case cards.Ace:
		return HandTotal{Hard: 11, Soft: 1}
	case cards.Ten, cards.Jack, cards.Queen, cards.King:
		return HandTotal{Hard: 10, Soft: 10}
	case cards.Joker:
		panic(fmt.Sprintf("joker reached the evaluator: %s", card))
	default:
		v := card.Rank.Ordinal() + 1
		return HandTotal{Hard: v, Soft: v}
	}
}

// CompareHands resolves a player hand against the dealer hand. Naturals
// are checked before the ordinary comparison because a two-card 21 beats
// any other 21.
func CompareHands(player, dealer cards.Stack) HandResult {
	playerBest := HandValue(player).Best()
	dealerBest := HandValue(dealer).Best()

	// check for blackjack
	if len(player) == 2 && playerBest == 21 {
		if len(dealer) == 2 && dealerBest == 21 {
			return Push()
		}
		return PlayerWins(true)
	}
	if len(dealer) == 2 && dealerBest == 21 {
		return DealerWins(true)
	}

	// a busted player loses outright, whatever the dealer holds
	if playerBest > 21 {
		return DealerWins(false)
	}

	switch {
	case playerBest > dealerBest:
		return PlayerWins(false)
	case playerBest < dealerBest:
		return DealerWins(false)
	default:
		return Push()
	}
}
