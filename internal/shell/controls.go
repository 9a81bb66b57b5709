package shell

import (
	"github.com/verte-zerg/mindflux/internal/books"
	"github.com/verte-zerg/mindflux/internal/level"
)

// Controls is the state of the shared control bar.
type Controls struct {
	Category Category
	Game     GameID
	Level    int
	Distance int
	Book     string
	WidthIdx int
	Running  bool
}

// Patch is a partial update of Controls. Nil fields are left alone.
type Patch struct {
	Category *Category
	Game     *GameID
	Level    *int
	Distance *int
	Book     *string
	WidthIdx *int
	Running  *bool
}

// DefaultControls returns the controls of a fresh session.
func DefaultControls() Controls {
	return Controls{
		Category: EyeMovement,
		Game:     Basic,
		Level:    level.Min,
		Distance: 5,
		Book:     books.DefaultKey,
		WidthIdx: level.DefaultWidthIndex,
	}
}

// Apply merges p into c and keeps the result consistent: levels are clamped,
// a category change without a game picks the category's first game, and a game
// outside its category is replaced.
func (c Controls) Apply(p Patch) Controls {
	if p.Category != nil && *p.Category != c.Category {
		c.Category = *p.Category
		if p.Game == nil {
			c.Game = ""
		}
	}
	if p.Game != nil {
		c.Game = *p.Game
		if _, cat, ok := Lookup(c.Game); ok && p.Category == nil {
			c.Category = cat
		}
	}
	if p.Level != nil {
		c.Level = *p.Level
	}
	if p.Distance != nil {
		c.Distance = *p.Distance
	}
	if p.Book != nil {
		c.Book = *p.Book
	}
	if p.WidthIdx != nil {
		c.WidthIdx = *p.WidthIdx
	}
	if p.Running != nil {
		c.Running = *p.Running
	}
	if GamesOf(c.Category) == nil {
		c.Category = catalog[0].Category
	}
	c.Game = EnsureGame(c.Category, c.Game)
	c.Level = level.Clamp9(c.Level)
	c.Distance = level.Clamp9(c.Distance)
	c.WidthIdx = clampWidth(c.WidthIdx)
	return c
}

func clampWidth(idx int) int {
	ids := level.WidthIndexes()
	return level.Clamp(idx, ids[0], ids[len(ids)-1])
}
