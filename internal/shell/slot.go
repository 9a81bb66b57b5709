package shell

// Selector is one labelled control a game adds to the control bar.
type Selector struct {
	Label string
	Value string
	// Step moves the value by delta. It returns false when the change is
	// refused, e.g. while a round is running.
	Step func(delta int) bool
}

// Panel is the set of selectors a game contributes.
type Panel struct {
	Selectors []Selector
}

// Slot holds the panel of the mounted game. Only the owner that set the panel
// can clear it, so a late unmount never wipes its successor.
type Slot struct {
	owner string
	build func() Panel
}

// Set installs the panel builder of owner.
func (s *Slot) Set(owner string, build func() Panel) {
	s.owner = owner
	s.build = build
}

// Clear removes the panel if owner still holds the slot.
func (s *Slot) Clear(owner string) {
	if s.owner != owner {
		return
	}
	s.owner = ""
	s.build = nil
}

// Owner returns the current owner, or "".
func (s *Slot) Owner() string { return s.owner }

// Panel builds the current panel. An empty slot yields an empty panel.
func (s *Slot) Panel() Panel {
	if s.build == nil {
		return Panel{}
	}
	return s.build()
}
