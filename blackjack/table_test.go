package blackjack

import (
	"math/rand"
	"testing"

	"github.com/lazharichir/blackjack/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRules(numBoxes, decksPerShoe int) TableRules {
	return TableRules{
		NumBoxes:        numBoxes,
		MaxSplitsPerBox: 3,
		SplitAces:       true,
		DecksPerShoe:    decksPerShoe,
		BlackjackPayout: 1.5,
	}
}

func TestNewTable(t *testing.T) {
	table := NewTable(newTestRules(3, 6), rand.New(rand.NewSource(1)))

	assert.NotEmpty(t, table.ID)
	assert.Len(t, table.Boxes, 3)
	assert.Equal(t, 6*52, table.Shoe.Len())
	assert.Empty(t, table.Dealer)

	require.Len(t, table.Events, 1)
	assert.Equal(t, "TABLE_CREATED", table.Events[0].Name())
}

func TestDealCards(t *testing.T) {
	table := NewTable(newTestRules(3, 6), rand.New(rand.NewSource(1)))

	err := table.DealCards()
	require.NoError(t, err)

	for i, box := range table.Boxes {
		assert.Len(t, box.Cards, 2, "box %d should hold 2 cards", i)
	}
	assert.Len(t, table.Dealer, 1, "dealer should hold only the upcard")

	// conservation: shoe + boxes + dealer is still the whole shoe
	assert.Equal(t, 6*52-(2*3+1), table.Shoe.Len())
}

func TestDealCardsIsDeterministicPerSeed(t *testing.T) {
	first := NewTable(newTestRules(3, 2), rand.New(rand.NewSource(99)))
	second := NewTable(newTestRules(3, 2), rand.New(rand.NewSource(99)))

	require.NoError(t, first.DealCards())
	require.NoError(t, second.DealCards())

	for i := range first.Boxes {
		assert.Equal(t, first.Boxes[i].Cards, second.Boxes[i].Cards)
	}
	assert.Equal(t, first.Dealer, second.Dealer)
}

func TestDealCardsFailsOnExhaustedShoe(t *testing.T) {
	// 30 boxes need 61 cards, a single deck has 52
	table := NewTable(newTestRules(30, 1), rand.New(rand.NewSource(1)))

	err := table.DealCards()
	require.Error(t, err)
}

func TestDrawCardForBox(t *testing.T) {
	table := NewTable(newTestRules(2, 1), rand.New(rand.NewSource(5)))
	require.NoError(t, table.DealCards())

	card, err := table.DrawCardForBox(0)
	require.NoError(t, err)
	assert.Len(t, table.Boxes[0].Cards, 3)
	assert.True(t, card.Equals(table.Boxes[0].Cards[2]))
	assert.Len(t, table.Boxes[1].Cards, 2, "other boxes must be untouched")

	_, err = table.DrawCardForBox(-1)
	assert.Error(t, err)
	_, err = table.DrawCardForBox(2)
	assert.Error(t, err)
}

func TestDrawCardForDealer(t *testing.T) {
	table := NewTable(newTestRules(2, 1), rand.New(rand.NewSource(5)))
	require.NoError(t, table.DealCards())

	card, err := table.DrawCardForDealer()
	require.NoError(t, err)
	assert.Len(t, table.Dealer, 2)
	assert.True(t, card.Equals(table.Dealer[1]))
}

func TestDrawFromEmptyShoe(t *testing.T) {
	table := NewTable(newTestRules(1, 0), rand.New(rand.NewSource(5)))

	_, err := table.DrawCardForBox(0)
	assert.Error(t, err)
	_, err = table.DrawCardForDealer()
	assert.Error(t, err)
}

func TestTotals(t *testing.T) {
	table := NewTable(newTestRules(2, 1), rand.New(rand.NewSource(3)))
	require.NoError(t, table.DealCards())

	for i := range table.Boxes {
		total, err := table.BoxTotal(i)
		require.NoError(t, err)
		assert.Equal(t, HandValue(table.Boxes[i].Cards), total)
	}
	assert.Equal(t, HandValue(table.Dealer), table.DealerTotal())

	// totals are recomputed, never cached
	before, err := table.BoxTotal(0)
	require.NoError(t, err)
	_, err = table.DrawCardForBox(0)
	require.NoError(t, err)
	after, err := table.BoxTotal(0)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	_, err = table.BoxTotal(5)
	assert.Error(t, err)
}

func TestCompareBox(t *testing.T) {
	table := NewTable(newTestRules(1, 1), rand.New(rand.NewSource(3)))
	require.NoError(t, table.DealCards())

	want := CompareHands(table.Boxes[0].Cards, table.Dealer)
	got, err := table.CompareBox(0)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = table.CompareBox(1)
	assert.Error(t, err)
}

func TestDealEventsFollowDealOrder(t *testing.T) {
	table := NewTable(newTestRules(2, 1), rand.New(rand.NewSource(8)))

	var names []string
	table.RegisterEventHandler(func(event events.Event) {
		names = append(names, event.Name())
	})

	require.NoError(t, table.DealCards())

	assert.Equal(t, []string{
		"CARD_DEALT_TO_BOX",
		"CARD_DEALT_TO_BOX",
		"CARD_DEALT_TO_DEALER",
		"CARD_DEALT_TO_BOX",
		"CARD_DEALT_TO_BOX",
		"INITIAL_DEAL_COMPLETED",
	}, names)

	// every event carries the table's ID
	for _, event := range table.Events {
		assert.Equal(t, table.ID, events.GetTableID(event))
	}
}

func TestBoxesDealtInOrder(t *testing.T) {
	table := NewTable(newTestRules(3, 1), rand.New(rand.NewSource(8)))

	var dealt []events.CardDealtToBox
	table.RegisterEventHandler(func(event events.Event) {
		if ev, ok := event.(events.CardDealtToBox); ok {
			dealt = append(dealt, ev)
		}
	})

	require.NoError(t, table.DealCards())

	require.Len(t, dealt, 6)
	assert.Equal(t, []int{0, 1, 2, 0, 1, 2}, []int{
		dealt[0].Box, dealt[1].Box, dealt[2].Box,
		dealt[3].Box, dealt[4].Box, dealt[5].Box,
	})
}
