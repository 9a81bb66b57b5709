package shell

import "testing"

func TestCatalogCoversEveryGame(t *testing.T) {
	want := map[Category][]GameID{
		EyeMovement:  {Basic, IsoDistance},
		SpeedReading: {FixedReading, ColumnReading},
		VisualField:  {DoubleNumber},
		ReactionTime: {QuickReflex, QuickMath, GrammarMatch},
		MentalMath:   {ChainSum, MentalCount, HiLo},
	}
	cats := Categories()
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for cat, ids := range want {
		games := GamesOf(cat)
		if len(games) != len(ids) {
			t.Fatalf("expected %d games in %s, got %d", len(ids), cat, len(games))
		}
		for i, id := range ids {
			if games[i].ID != id {
				t.Fatalf("expected %s at %d in %s, got %s", id, i, cat, games[i].ID)
			}
		}
	}
}

func TestEnsureGameFallsBackToFirst(t *testing.T) {
	if got := EnsureGame(ReactionTime, QuickMath); got != QuickMath {
		t.Fatalf("expected quickMath kept, got %s", got)
	}
	if got := EnsureGame(ReactionTime, Basic); got != QuickReflex {
		t.Fatalf("expected quickReflex, got %s", got)
	}
	if got := EnsureGame("nope", ""); got != Basic {
		t.Fatalf("expected basic for unknown category, got %s", got)
	}
}

func TestParseGame(t *testing.T) {
	if id, ok := ParseGame("hiLo"); !ok || id != HiLo {
		t.Fatalf("expected hiLo, got %s %v", id, ok)
	}
	if _, ok := ParseGame("hilo"); ok {
		t.Fatalf("expected names to be case sensitive")
	}
}

func TestControlsApply(t *testing.T) {
	c := DefaultControls()
	cat := MentalMath
	c = c.Apply(Patch{Category: &cat})
	if c.Game != ChainSum {
		t.Fatalf("expected first game of category, got %s", c.Game)
	}

	game := GrammarMatch
	c = c.Apply(Patch{Game: &game})
	if c.Category != ReactionTime {
		t.Fatalf("expected category to follow game, got %s", c.Category)
	}

	lvl, dist, width := 42, -3, 99
	c = c.Apply(Patch{Level: &lvl, Distance: &dist, WidthIdx: &width})
	if c.Level != 9 || c.Distance != 1 {
		t.Fatalf("expected clamped levels, got %d %d", c.Level, c.Distance)
	}
	if c.WidthIdx != 5 {
		t.Fatalf("expected width index 5, got %d", c.WidthIdx)
	}
}

func TestSlotOwnership(t *testing.T) {
	var s Slot
	s.Set("a", func() Panel { return Panel{Selectors: []Selector{{Label: "x"}}} })
	s.Set("b", func() Panel { return Panel{Selectors: []Selector{{Label: "y"}, {Label: "z"}}} })
	s.Clear("a")
	if s.Owner() != "b" || len(s.Panel().Selectors) != 2 {
		t.Fatalf("expected stale clear to be ignored")
	}
	s.Clear("b")
	if len(s.Panel().Selectors) != 0 {
		t.Fatalf("expected empty panel")
	}
}
