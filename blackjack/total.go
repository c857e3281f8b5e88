package blackjack

// HandTotal is the dual blackjack reading of a hand. The hard total
// counts every ace as 11, the soft total counts every ace as 1; both
// readings are identical for every other rank.
type HandTotal struct {
	Hard int
	Soft int
}

// Add returns the pointwise sum of two totals. Addition is associative
// and commutative, so a hand's total does not depend on card order.
func (t HandTotal) Add(other HandTotal) HandTotal {
	return HandTotal{
		Hard: t.Hard + other.Hard,
		Soft: t.Soft + other.Soft,
	}
}

// Best resolves the dual total to the single value used for comparison.
// When the hard reading busts, the lower of the two readings is taken
// (even if that one busts as well); otherwise the higher reading wins,
// counting aces as 11 whenever that does not bust.
func (t HandTotal) Best() int {
	if t.Hard > 21 {
		return min(t.Hard, t.Soft)
	}
	return max(t.Hard, t.Soft)
}
