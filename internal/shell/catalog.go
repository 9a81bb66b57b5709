// Package shell hosts the games: the catalog, the shared controls, the round
// lifecycle and the control slot a game fills with its own selectors.
package shell

// Category groups related games.
type Category string

const (
	EyeMovement  Category = "eyeMovement"
	SpeedReading Category = "speedReading"
	VisualField  Category = "visualField"
	ReactionTime Category = "reactionTime"
	MentalMath   Category = "mentalMath"
)

// GameID names a game.
type GameID string

const (
	Basic         GameID = "basic"
	IsoDistance   GameID = "isoDistance"
	FixedReading  GameID = "fixedReading"
	ColumnReading GameID = "columnReading"
	DoubleNumber  GameID = "doubleNumber"
	QuickReflex   GameID = "quickReflex"
	QuickMath     GameID = "quickMath"
	GrammarMatch  GameID = "grammarMatch"
	ChainSum      GameID = "chainSum"
	MentalCount   GameID = "mentalCount"
	HiLo          GameID = "hiLo"
)

// Game describes one catalog entry.
type Game struct {
	ID      GameID
	Title   string
	Summary string
}

// Entry is a category and its games, in menu order.
type Entry struct {
	Category Category
	Title    string
	Games    []Game
}

var catalog = []Entry{
	{EyeMovement, "Eye movement", []Game{
		{Basic, "Random jumps", "Follow a target that jumps to random spots."},
		{IsoDistance, "Iso distance", "Follow a target that moves a fixed distance each step."},
	}},
	{SpeedReading, "Speed reading", []Game{
		{FixedReading, "Fixed line", "Read one line at a time at a set pace."},
		{ColumnReading, "Columns", "Follow a highlight across two columns of text."},
	}},
	{VisualField, "Visual field", []Game{
		{DoubleNumber, "Double stimulus", "Read two symbol groups flashed apart."},
	}},
	{ReactionTime, "Reaction time", []Game{
		{QuickReflex, "Quick reflex", "Press 0 as soon as the dot appears."},
		{QuickMath, "Quick math", "Is the sum of two digits odd or even?"},
		{GrammarMatch, "Grammar match", "Do article and noun agree?"},
	}},
	{MentalMath, "Mental math", []Game{
		{ChainSum, "Chain sum", "Add up a stream of digits."},
		{MentalCount, "Mental count", "Keep a running count of -1, 0 and +1."},
		{HiLo, "Hi-Lo", "Keep the Hi-Lo count of a card shoe."},
	}},
}

// Catalog returns every category with its games.
func Catalog() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Categories returns the categories in menu order.
func Categories() []Category {
	out := make([]Category, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e.Category)
	}
	return out
}

// GamesOf returns the games of c, or nil for an unknown category.
func GamesOf(c Category) []Game {
	for _, e := range catalog {
		if e.Category == c {
			return e.Games
		}
	}
	return nil
}

// Lookup finds a game and its category.
func Lookup(id GameID) (Game, Category, bool) {
	for _, e := range catalog {
		for _, g := range e.Games {
			if g.ID == id {
				return g, e.Category, true
			}
		}
	}
	return Game{}, "", false
}

// ParseGame resolves a game name.
func ParseGame(s string) (GameID, bool) {
	_, _, ok := Lookup(GameID(s))
	return GameID(s), ok
}

// EnsureGame returns g when it belongs to c, otherwise the first game of c.
// An unknown category falls back to the first category.
func EnsureGame(c Category, g GameID) GameID {
	games := GamesOf(c)
	if len(games) == 0 {
		games = catalog[0].Games
	}
	for _, game := range games {
		if game.ID == g {
			return g
		}
	}
	return games[0].ID
}
