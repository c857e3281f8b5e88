package cards

import "fmt"

// Suit represents a card suit. NoSuit is the sentinel for an invalid or
// absent suit, as carried by a joker.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
	NoSuit
)

// Ordinal returns the ordinal value of the suit: 0-3 for the real suits,
// 4 for NoSuit.
func (s Suit) Ordinal() int {
	if s < Clubs || s > Spades {
		return 4
	}
	return int(s)
}

// SuitFromOrdinal converts an ordinal value to a Suit. Any ordinal outside
// 0-3 yields NoSuit rather than failing.
func SuitFromOrdinal(ordinal int) Suit {
	if ordinal < 0 || ordinal > 3 {
		return NoSuit
	}
	return Suit(ordinal)
}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "-"
	}
}

// Rank represents a card rank. Joker is the sentinel for an invalid rank
// and never appears in a standard deck.
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Joker
)

// Ordinal returns the ordinal value of the rank: 0-12 for Ace through
// King, 13 for Joker.
func (r Rank) Ordinal() int {
	if r < Ace || r > King {
		return 13
	}
	return int(r)
}

// RankFromOrdinal converts an ordinal value to a Rank. Any ordinal outside
// 0-12 yields Joker rather than failing.
func RankFromOrdinal(ordinal int) Rank {
	if ordinal < 0 || ordinal > 12 {
		return Joker
	}
	return Rank(ordinal)
}

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Joker:
		return "Joker"
	default:
		return fmt.Sprintf("%d", r.Ordinal()+1)
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates the default card, the Ace of Clubs
func NewCard() Card {
	return Card{Suit: Clubs, Rank: Ace}
}

// CardFromOrdinals creates a card from raw ordinal values (0-3 for suit,
// 0-12 for rank). Out-of-range ordinals degrade to the NoSuit/Joker
// sentinels, so construction never fails.
func CardFromOrdinals(suit, rank int) Card {
	return Card{
		Suit: SuitFromOrdinal(suit),
		Rank: RankFromOrdinal(rank),
	}
}

// String returns the string representation of a card
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// Equals checks if two cards are equal
func (c Card) Equals(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// SetRank replaces the card's rank in place
func (c *Card) SetRank(rank Rank) {
	c.Rank = rank
}

// SetSuit replaces the card's suit in place
func (c *Card) SetSuit(suit Suit) {
	c.Suit = suit
}

// CardFromString creates a card from a string representation
// e.g., "10♠" or "10s" or "10S" -> Card{Suit: Spades, Rank: Ten}
func CardFromString(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) < 2 {
		return Card{}, fmt.Errorf("invalid card shorthand: %s", s)
	}

	var suit Suit
	switch string(runes[len(runes)-1]) {
	case "♠", "s", "S":
		suit = Spades
	case "♥", "h", "H":
		suit = Hearts
	case "♦", "d", "D":
		suit = Diamonds
	case "♣", "c", "C":
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card suit: %s", string(runes[len(runes)-1]))
	}

	var rank Rank
	switch string(runes[:len(runes)-1]) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10", "T":
		rank = Ten
	case "9":
		rank = Nine
	case "8":
		rank = Eight
	case "7":
		rank = Seven
	case "6":
		rank = Six
	case "5":
		rank = Five
	case "4":
		rank = Four
	case "3":
		rank = Three
	case "2":
		rank = Two
	default:
		return Card{}, fmt.Errorf("invalid card rank: %s", string(runes[:len(runes)-1]))
	}

	return Card{Suit: suit, Rank: rank}, nil
}
