package reaction

import (
	"time"

	"github.com/verte-zerg/mindflux/internal/level"
	"github.com/verte-zerg/mindflux/internal/random"
	"github.com/verte-zerg/mindflux/internal/timer"
)

const (
	// LabelCorrect marks a right answer.
	LabelCorrect = "correct"
	// LabelWrong marks a wrong answer.
	LabelWrong = "wrong"

	defaultGameLevel = 5
)

// game hosts a sequence for one reaction game. Help and terminal suspension
// both freeze the sequence and the visibility timer.
type game struct {
	seq       *Sequence
	src       random.Source
	help      bool
	suspended bool
	hide      timer.Timer
	visible   bool

	// OnTimeout runs once when the last attempt is recorded.
	OnTimeout func()
	// OnStimulus runs when a stimulus appears.
	OnStimulus func(attempt int)
	// OnAttempt runs after every recorded attempt.
	OnAttempt func(Result)
}

func (g *game) init(src random.Source) {
	g.src = src
	g.seq = NewSequence(GameConfig(), src)
	g.seq.OnAttemptRecorded = func(r Result) {
		g.hide.Cancel()
		g.visible = false
		if g.OnAttempt != nil {
			g.OnAttempt(r)
		}
	}
	g.seq.OnFinished = func(Summary) {
		if g.OnTimeout != nil {
			g.OnTimeout()
		}
	}
}

func (g *game) stimulus(now, exposure time.Duration, attempt int) {
	g.visible = true
	if exposure > 0 {
		g.hide.Start(now, exposure, func(time.Duration) { g.visible = false })
	}
	if g.OnStimulus != nil {
		g.OnStimulus(attempt)
	}
}

// SetRunning starts or stops the round.
func (g *game) SetRunning(now time.Duration, running bool) {
	g.hide.Cancel()
	g.visible = false
	g.seq.SetRunning(now, running)
}

// SetSuspended freezes the round while the terminal is unfocused.
func (g *game) SetSuspended(now time.Duration, suspended bool) {
	g.suspended = suspended
	g.syncPause(now)
}

// SetHelp opens or closes the help overlay, which pauses the round.
func (g *game) SetHelp(now time.Duration, open bool) {
	g.help = open
	g.syncPause(now)
}

// HelpOpen reports whether the help overlay is shown.
func (g *game) HelpOpen() bool { return g.help }

// SetBoard is a no-op; reaction layouts are proportional.
func (g *game) SetBoard(width, height int) {}

// Frame fires due timers.
func (g *game) Frame(now time.Duration) {
	if g.help || g.suspended {
		return
	}
	g.seq.Frame(now)
	g.hide.Fire(now)
}

// State returns the sequence state.
func (g *game) State() State { return g.seq.State() }

// Config returns the sequence config.
func (g *game) Config() Config { return g.seq.Config() }

// SetAttempts changes the attempts per round while idle.
func (g *game) SetAttempts(n int) bool { return g.seq.SetAttempts(n) }

// Visible reports whether the stimulus is on screen.
func (g *game) Visible() bool { return g.visible }

func (g *game) syncPause(now time.Duration) {
	paused := g.help || g.suspended
	g.seq.SetPaused(now, paused)
	g.hide.SetPaused(now, paused)
}

func (g *game) canRespond() bool {
	return !g.help && !g.suspended && g.seq.Awaiting()
}

func (g *game) running() bool {
	p := g.seq.State().Phase
	return p != PhaseIdle && p != PhaseFinished
}

// QuickReflex shows a dot; the player answers with the 0 key.
type QuickReflex struct {
	game
}

// NewQuickReflex returns an idle reflex game.
func NewQuickReflex(src random.Source) *QuickReflex {
	q := &QuickReflex{}
	q.init(src)
	q.seq.OnStimulus = func(now time.Duration, attempt int) {
		q.stimulus(now, 0, attempt)
	}
	return q
}

// Press handles a key. Only 0 responds.
func (q *QuickReflex) Press(now time.Duration, key string) bool {
	if key != "0" || !q.canRespond() {
		return false
	}
	return q.seq.Respond(now, true, LabelCorrect)
}

// QuickMath shows two digits; z answers an odd sum, x an even one.
type QuickMath struct {
	game
	distance int
	exposure int
	left     int
	right    int
}

// NewQuickMath returns an idle arithmetic game.
func NewQuickMath(src random.Source) *QuickMath {
	q := &QuickMath{distance: defaultGameLevel, exposure: defaultGameLevel}
	q.init(src)
	q.seq.OnStimulus = func(now time.Duration, attempt int) {
		q.left = q.src.Intn(10)
		q.right = q.src.Intn(10)
		q.stimulus(now, level.Exposure(q.exposure), attempt)
	}
	return q
}

// Digits returns the current pair.
func (q *QuickMath) Digits() (int, int) { return q.left, q.right }

// Gap is the horizontal separation of the digits in percent.
func (q *QuickMath) Gap() float64 { return level.GapPercent(q.distance) }

// Distance returns the separation level.
func (q *QuickMath) Distance() int { return q.distance }

// Exposure returns the visibility level.
func (q *QuickMath) Exposure() int { return q.exposure }

// SetDistance changes the separation level while idle.
func (q *QuickMath) SetDistance(l int) bool {
	if q.running() {
		return false
	}
	q.distance = level.Clamp9(l)
	return true
}

// SetExposure changes the visibility level while idle.
func (q *QuickMath) SetExposure(l int) bool {
	if q.running() {
		return false
	}
	q.exposure = level.Clamp9(l)
	return true
}

// Press handles z (odd) and x (even).
func (q *QuickMath) Press(now time.Duration, key string) bool {
	if (key != "z" && key != "x") || !q.canRespond() {
		return false
	}
	odd := (q.left+q.right)%2 == 1
	success := (key == "z") == odd
	return q.seq.Respond(now, success, answerLabel(success))
}

// Category is the gender and number of a Spanish article or noun.
type Category int

const (
	MascSingular Category = iota
	FemSingular
	MascPlural
	FemPlural
)

type article struct {
	value    string
	category Category
}

var articles = []article{
	{"un", MascSingular},
	{"una", FemSingular},
	{"unos", MascPlural},
	{"unas", FemPlural},
	{"el", MascSingular},
	{"la", FemSingular},
	{"los", MascPlural},
	{"las", FemPlural},
}

var nouns = [][]string{
	MascSingular: {"gato", "perro", "libro", "rio", "juego"},
	FemSingular:  {"casa", "taza", "planta", "nube", "silla"},
	MascPlural:   {"gatos", "perros", "libros", "rios", "juegos"},
	FemPlural:    {"casas", "tazas", "plantas", "nubes", "sillas"},
}

// GrammarMatch shows an article and a noun; z answers that they agree in
// gender and number, x that they do not.
type GrammarMatch struct {
	game
	distance     int
	exposure     int
	article      article
	noun         string
	nounCategory Category
}

// NewGrammarMatch returns an idle agreement game.
func NewGrammarMatch(src random.Source) *GrammarMatch {
	q := &GrammarMatch{distance: defaultGameLevel, exposure: defaultGameLevel}
	q.init(src)
	q.seq.OnStimulus = func(now time.Duration, attempt int) {
		q.article = random.Pick(q.src, articles)
		q.nounCategory = Category(q.src.Intn(len(nouns)))
		q.noun = random.Pick(q.src, nouns[q.nounCategory])
		q.stimulus(now, level.Exposure(q.exposure), attempt)
	}
	return q
}

// Pair returns the article and noun on screen.
func (q *GrammarMatch) Pair() (string, string) { return q.article.value, q.noun }

// Agrees reports whether the current pair agrees.
func (q *GrammarMatch) Agrees() bool { return q.article.category == q.nounCategory }

// Gap is the horizontal separation of the words in percent.
func (q *GrammarMatch) Gap() float64 { return level.GapPercent(q.distance) }

// Distance returns the separation level.
func (q *GrammarMatch) Distance() int { return q.distance }

// Exposure returns the visibility level.
func (q *GrammarMatch) Exposure() int { return q.exposure }

// SetDistance changes the separation level while idle.
func (q *GrammarMatch) SetDistance(l int) bool {
	if q.running() {
		return false
	}
	q.distance = level.Clamp9(l)
	return true
}

// SetExposure changes the visibility level while idle.
func (q *GrammarMatch) SetExposure(l int) bool {
	if q.running() {
		return false
	}
	q.exposure = level.Clamp9(l)
	return true
}

// Press handles z (agree) and x (disagree).
func (q *GrammarMatch) Press(now time.Duration, key string) bool {
	if (key != "z" && key != "x") || !q.canRespond() {
		return false
	}
	success := (key == "z") == q.Agrees()
	return q.seq.Respond(now, success, answerLabel(success))
}

func answerLabel(success bool) string {
	if success {
		return LabelCorrect
	}
	return LabelWrong
}
