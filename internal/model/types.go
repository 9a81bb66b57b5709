// Package model defines shared data structures.
package model

// PlayConfig defines the settings a session starts with. Values come from
// flags, then the config file, then defaults.
type PlayConfig struct {
	// Game is a catalog game id; empty opens the menu.
	Game     string
	Level    int
	Distance int
	Book     string
	// TextFile replaces the book catalog when set.
	TextFile string
	WidthIdx int
	// Speed and Interval are the show and blank levels of the visual field
	// game, and the digit speed of the drills.
	Speed     int
	Interval  int
	Mode      string
	Extended  bool
	Attempts  int
	BlockSize int
	Shoe      int
	Sound     bool
	Volume    float64
}
