package drill

import (
	"strconv"

	"github.com/verte-zerg/mindflux/internal/random"
)

var countValues = []int{-1, 0, 1}

// MentalCount flashes -1, 0 and +1 values in blocks; the player keeps the
// running total.
type MentalCount struct {
	blocks
	src random.Source
}

// NewMentalCount returns an idle drill.
func NewMentalCount(src random.Source) *MentalCount {
	m := &MentalCount{src: src}
	m.init(m.next)
	return m
}

func (m *MentalCount) next() (string, int) {
	v := random.Pick(m.src, countValues)
	if v > 0 {
		return "+" + strconv.Itoa(v), v
	}
	return strconv.Itoa(v), v
}
