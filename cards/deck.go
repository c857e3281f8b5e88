package cards

// Deck is an ordered, mutable collection of cards. Insertion order is
// meaningful: it determines draw order.
type Deck struct {
	cards []Card
}

// NewDeck creates a standard deck of 52 cards, ordered by
// suit ordinal * 13 + rank ordinal ascending (Clubs through Spades,
// Ace through King, no jokers)
func NewDeck() *Deck {
	deck := NewEmptyDeck()
	for i := 0; i < 52; i++ {
		deck.Add(CardFromOrdinals(i/13, i%13))
	}
	return deck
}

// NewEmptyDeck creates a deck with no cards
func NewEmptyDeck() *Deck {
	return &Deck{}
}

// Draw removes and returns the last card in the deck. The boolean is
// false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// DrawNth removes and returns the card at position n, 0-indexed from the
// front of the deck. Cards after position n shift one position earlier.
// The boolean is false when n is not a valid index.
func (d *Deck) DrawNth(n int) (Card, bool) {
	if n < 0 || n >= len(d.cards) {
		return Card{}, false
	}
	card := d.cards[n]
	d.cards = append(d.cards[:n], d.cards[n+1:]...)
	return card, true
}

// Add appends a card to the end of the deck
func (d *Deck) Add(card Card) {
	d.cards = append(d.cards, card)
}

// AddDeck appends all of other's cards, in their current order, to the
// end of this deck, leaving other empty
func (d *Deck) AddDeck(other *Deck) {
	d.cards = append(d.cards, other.cards...)
	other.cards = nil
}

// Len returns the number of cards currently in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) String() string {
	return Stack(d.cards).String()
}
