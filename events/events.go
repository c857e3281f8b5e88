package events

import "github.com/lazharichir/blackjack/cards"

// TableCreated is emitted when a table is assembled with a fresh shoe.
type TableCreated struct {
	TableID      string
	NumBoxes     int
	DecksPerShoe int
}

func (e TableCreated) Name() string { return "TABLE_CREATED" }

// CardDealtToBox is emitted for every card that lands in a player box,
// during the initial deal and on later caller-driven draws.
type CardDealtToBox struct {
	TableID string
	Box     int
	Card    cards.Card
}

func (e CardDealtToBox) Name() string { return "CARD_DEALT_TO_BOX" }

// CardDealtToDealer is emitted for every card that lands in the dealer
// hand.
type CardDealtToDealer struct {
	TableID string
	Card    cards.Card
}

func (e CardDealtToDealer) Name() string { return "CARD_DEALT_TO_DEALER" }

// InitialDealCompleted is emitted once the round-robin opening deal has
// finished.
type InitialDealCompleted struct {
	TableID    string
	CardsDealt int
}

func (e InitialDealCompleted) Name() string { return "INITIAL_DEAL_COMPLETED" }
