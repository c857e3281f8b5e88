package cards

import "math/rand"

// Shoe represents multiple decks of cards combined into one draw source.
// Cards are drawn from uniformly random positions, so the shoe needs no
// up-front shuffle. The random source is injected so that dealing is
// deterministic under test and concurrent shoes share no hidden state.
type Shoe struct {
	deck *Deck
	rng  *rand.Rand
}

// NewShoe creates a new shoe with a given number of standard decks
func NewShoe(numDecks int, rng *rand.Rand) *Shoe {
	deck := NewEmptyDeck()
	for i := 0; i < numDecks; i++ {
		deck.AddDeck(NewDeck())
	}
	return &Shoe{deck: deck, rng: rng}
}

// Draw removes one card from a random position in the shoe. The boolean
// is false when the shoe is empty. The index is always within [0, Len),
// whatever the current length.
func (s *Shoe) Draw() (Card, bool) {
	if s.deck.Len() == 0 {
		return Card{}, false
	}
	return s.deck.DrawNth(s.rng.Intn(s.deck.Len()))
}

// Len returns the number of cards left in the shoe
func (s *Shoe) Len() int {
	return s.deck.Len()
}
