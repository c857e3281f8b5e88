package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"math/rand"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
	"github.com/sanity-io/litter"
)

func main() {
	fmt.Println("Dealing hands from a single deck until it runs out...")
	playThroughDeck()

	fmt.Print("\n***********\n\n")

	fmt.Println("Playing one table round...")
	playTableRound()
}

// playThroughDeck draws from the front of a standard deck into a hand
// until the hand busts, discards the hand, and repeats until the deck
// is depleted.
func playThroughDeck() {
	deck := cards.NewDeck()
	discard := cards.NewEmptyDeck()

	for deck.Len() > 0 {
		var hand cards.Stack

		for {
			card, ok := deck.DrawNth(0)
			if !ok {
				break
			}
			hand.Add(card)

			total := blackjack.HandValue(hand)
			fmt.Printf("Hand: %s(hard %d, soft %d)\n", hand, total.Hard, total.Soft)

			if total.Hard > 21 && total.Soft > 21 {
				break
			}
		}

		for _, card := range hand {
			discard.Add(card)
		}
		fmt.Printf("Discard pile has %d cards\n", discard.Len())
	}
}

// playTableRound deals a three-box table from a six-deck shoe, draws
// every hand up to the standard 17, and prints each box's outcome.
func playTableRound() {
	table := blackjack.NewTable(blackjack.TableRules{
		NumBoxes:        3,
		MaxSplitsPerBox: 3,
		SplitAces:       true,
		DecksPerShoe:    6,
		BlackjackPayout: 1.5,
	}, rand.New(rand.NewSource(newSeed())))

	store := events.NewInMemoryEventStore()
	table.RegisterEventHandler(func(event events.Event) {
		if err := store.Append(event); err != nil {
			log.Printf("could not store event: %v", err)
		}
	})

	if err := table.DealCards(); err != nil {
		log.Fatalf("initial deal failed: %v", err)
	}

	// draw while best total < 17 is the caller's rule, not the table's
	for i := range table.Boxes {
		for {
			total, err := table.BoxTotal(i)
			if err != nil {
				log.Fatalf("box total failed: %v", err)
			}
			if total.Best() >= 17 {
				break
			}
			if _, err := table.DrawCardForBox(i); err != nil {
				log.Fatalf("draw for box %d failed: %v", i, err)
			}
		}
	}
	for table.DealerTotal().Best() < 17 {
		if _, err := table.DrawCardForDealer(); err != nil {
			log.Fatalf("draw for dealer failed: %v", err)
		}
	}

	fmt.Printf("Dealer: %s(best %d)\n", table.Dealer, table.DealerTotal().Best())
	for i, box := range table.Boxes {
		result, err := table.CompareBox(i)
		if err != nil {
			log.Fatalf("compare failed: %v", err)
		}
		total, _ := table.BoxTotal(i)
		fmt.Printf("Box %d: %s(best %d) -> %s (blackjack = %v)\n",
			i, box.Cards, total.Best(), result.Outcome, result.Blackjack)
	}

	stored, err := store.LoadEvents(table.ID)
	if err != nil {
		log.Fatalf("could not load events: %v", err)
	}
	fmt.Printf("Round produced %d events, last one:\n", len(stored))
	litter.D(stored[len(stored)-1])
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		log.Fatalf("could not seed rng: %v", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
