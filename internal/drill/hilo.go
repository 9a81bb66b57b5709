package drill

import (
	"github.com/verte-zerg/mindflux/internal/random"
)

var (
	ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}
	suits = []string{"♠", "♥", "♦", "♣"}
)

// ShoeSizes lists the valid deck counts.
func ShoeSizes() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 18}
}

// ValidShoeSize reports whether n is one of ShoeSizes.
func ValidShoeSize(n int) bool {
	for _, size := range ShoeSizes() {
		if size == n {
			return true
		}
	}
	return false
}

// Card is a playing card.
type Card struct {
	Rank string
	Suit string
}

func (c Card) String() string { return c.Rank + c.Suit }

// HiLoValue is the Hi-Lo count value of a rank: low cards +1, middle cards 0,
// tens and aces -1.
func HiLoValue(rank string) int {
	switch rank {
	case "2", "3", "4", "5", "6":
		return 1
	case "7", "8", "9":
		return 0
	default:
		return -1
	}
}

// HiLo deals cards from a shuffled shoe in blocks; the player keeps the Hi-Lo
// running count.
type HiLo struct {
	blocks
	src   random.Source
	decks int
	shoe  []Card
	index int
}

// NewHiLo returns an idle drill with a one-deck shoe.
func NewHiLo(src random.Source) *HiLo {
	h := &HiLo{src: src, decks: 1}
	h.init(h.next)
	h.onStart = h.buildShoe
	h.buildShoe()
	return h
}

// SetDecks changes the shoe size while idle or ended.
func (h *HiLo) SetDecks(n int) bool {
	if h.active() || !ValidShoeSize(n) {
		return false
	}
	h.decks = n
	h.buildShoe()
	return true
}

// Decks returns the shoe size.
func (h *HiLo) Decks() int { return h.decks }

// Remaining returns the cards left before a reshuffle.
func (h *HiLo) Remaining() int { return len(h.shoe) - h.index }

func (h *HiLo) buildShoe() {
	h.shoe = h.shoe[:0]
	for d := 0; d < h.decks; d++ {
		for _, rank := range ranks {
			for _, suit := range suits {
				h.shoe = append(h.shoe, Card{Rank: rank, Suit: suit})
			}
		}
	}
	h.shuffle()
}

func (h *HiLo) shuffle() {
	random.Shuffle(h.src, len(h.shoe), func(i, j int) { h.shoe[i], h.shoe[j] = h.shoe[j], h.shoe[i] })
	h.index = 0
}

func (h *HiLo) next() (string, int) {
	if h.index >= len(h.shoe) {
		h.shuffle()
	}
	card := h.shoe[h.index]
	h.index++
	return card.String(), HiLoValue(card.Rank)
}
