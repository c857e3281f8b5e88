package blackjack

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// TableRules defines the configuration of a blackjack table.
// MaxSplitsPerBox, SplitAces and BlackjackPayout are recognized but have
// no effect on dealing: splitting is not implemented and settlement is
// the caller's concern.
type TableRules struct {
	NumBoxes        int
	MaxSplitsPerBox int
	SplitAces       bool
	DecksPerShoe    int
	BlackjackPayout float64
}

// Box is one player position at the table
type Box struct {
	Cards  cards.Stack
	Splits []*Box // reserved for split hands, never populated
}

// Table deals and tracks one blackjack round: a multi-deck shoe, a fixed
// number of player boxes, and the dealer hand. A table is discarded
// after its round; there is no reset or reshuffle.
type Table struct {
	ID     string
	Rules  TableRules
	Shoe   *cards.Shoe
	Boxes  []Box
	Dealer cards.Stack

	// events
	Events        []events.Event
	eventHandlers []events.EventHandler
}

// NewTable creates a table with a fresh shoe of Rules.DecksPerShoe
// standard decks and Rules.NumBoxes empty boxes. The random source
// drives card selection from the shoe.
func NewTable(rules TableRules, rng *rand.Rand) *Table {
	t := &Table{
		ID:    uuid.NewString(),
		Rules: rules,
		Shoe:  cards.NewShoe(rules.DecksPerShoe, rng),
		Boxes: make([]Box, rules.NumBoxes),
	}

	t.emitEvent(events.TableCreated{
		TableID:      t.ID,
		NumBoxes:     rules.NumBoxes,
		DecksPerShoe: rules.DecksPerShoe,
	})

	return t
}

// DealCards deals the initial round: one card at a time, round-robin
// across the boxes and then the dealer, twice, except that the dealer's
// final hole card is omitted. Each box ends up with 2 cards and the
// dealer with 1, consuming exactly 2*NumBoxes+1 cards from the shoe.
func (t *Table) DealCards() error {
	for pass := 0; pass < 2; pass++ {
		for i := range t.Boxes {
			card, ok := t.Shoe.Draw()
			if !ok {
				return fmt.Errorf("shoe exhausted while dealing to box %d", i)
			}
			t.Boxes[i].Cards.Add(card)

			t.emitEvent(events.CardDealtToBox{TableID: t.ID, Box: i, Card: card})
		}

		// the dealer's second card (the hole card) is not dealt
		if pass == 0 {
			card, ok := t.Shoe.Draw()
			if !ok {
				return errors.New("shoe exhausted while dealing to the dealer")
			}
			t.Dealer.Add(card)

			t.emitEvent(events.CardDealtToDealer{TableID: t.ID, Card: card})
		}
	}

	t.emitEvent(events.InitialDealCompleted{
		TableID:    t.ID,
		CardsDealt: 2*len(t.Boxes) + 1,
	})

	return nil
}

// DrawCardForBox draws one card from the shoe and appends it to box i.
// Callers decide when to stop drawing; the table enforces no stand or
// bust rule.
func (t *Table) DrawCardForBox(i int) (cards.Card, error) {
	if i < 0 || i >= len(t.Boxes) {
		return cards.Card{}, fmt.Errorf("no box at index %d", i)
	}

	card, ok := t.Shoe.Draw()
	if !ok {
		return cards.Card{}, errors.New("shoe is empty")
	}
	t.Boxes[i].Cards.Add(card)

	t.emitEvent(events.CardDealtToBox{TableID: t.ID, Box: i, Card: card})

	return card, nil
}

// DrawCardForDealer draws one card from the shoe and appends it to the
// dealer hand
func (t *Table) DrawCardForDealer() (cards.Card, error) {
	card, ok := t.Shoe.Draw()
	if !ok {
		return cards.Card{}, errors.New("shoe is empty")
	}
	t.Dealer.Add(card)

	t.emitEvent(events.CardDealtToDealer{TableID: t.ID, Card: card})

	return card, nil
}

// BoxTotal recomputes the total for box i from its current cards
func (t *Table) BoxTotal(i int) (HandTotal, error) {
	if i < 0 || i >= len(t.Boxes) {
		return HandTotal{}, fmt.Errorf("no box at index %d", i)
	}
	return HandValue(t.Boxes[i].Cards), nil
}

// DealerTotal recomputes the total of the dealer hand from its current
// cards
func (t *Table) DealerTotal() HandTotal {
	return HandValue(t.Dealer)
}

// CompareBox resolves box i against the dealer hand
func (t *Table) CompareBox(i int) (HandResult, error) {
	if i < 0 || i >= len(t.Boxes) {
		return HandResult{}, fmt.Errorf("no box at index %d", i)
	}
	return CompareHands(t.Boxes[i].Cards, t.Dealer), nil
}

// RegisterEventHandler registers a callback function that will be called
// when events occur
func (t *Table) RegisterEventHandler(handler events.EventHandler) {
	t.eventHandlers = append(t.eventHandlers, handler)
}

// emitEvent notifies all registered handlers of a new event
func (t *Table) emitEvent(event events.Event) {
	// Add event to the table's event log
	t.Events = append(t.Events, event)

	// Notify all handlers
	for _, handler := range t.eventHandlers {
		handler(event)
	}
}
