package cards

// Stack represents multiple cards held together, such as a hand
type Stack []Card

// NewStack creates a new stack with a given number of cards
func NewStack(cards ...Card) Stack {
	return Stack(cards)
}

// Add appends a card to the stack
func (s *Stack) Add(card Card) {
	*s = append(*s, card)
}

func (s Stack) String() string {
	var out string
	for _, c := range s {
		out += c.String() + " "
	}
	return out
}
