package animator

import (
	"math/rand/v2"
	"time"

	"github.com/five82/opencustom/internal/buffer"
	"github.com/five82/opencustom/internal/log"
	"github.com/five82/opencustom/internal/snippet"
)

// Phase is the driver's position in the cycle.
type Phase int

const (
	PhaseIdle     Phase = iota
	PhaseClearing       // erasing visible rows, last row first
	PhaseTyping         // typing the current snippet
	PhaseHolding        // dwelling on the fully typed snippet
	PhaseResting        // waiting before the next cycle
	PhaseSettling       // waiting to (re)start, after a resize or StartAfter
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseClearing:
		return "clearing"
	case PhaseTyping:
		return "typing"
	case PhaseHolding:
		return "holding"
	case PhaseResting:
		return "resting"
	case PhaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// State is a read-only view of the driver for the surrounding UI.
type State struct {
	Phase        Phase
	Animating    bool
	Index        int
	Count        int
	Line         int // row being typed, valid while Phase == PhaseTyping
	VisibleLines int
	Capacity     int
	Language     string
	Description  string
}

// Option configures a Driver.
type Option func(*Driver)

// WithTiming overrides the delays. Zero fields keep their defaults.
func WithTiming(t Timing) Option {
	return func(d *Driver) { d.timing = t.Normalized() }
}

// WithRand sets the source of jitter in [0, 1).
func WithRand(f func() float64) Option {
	return func(d *Driver) {
		if f != nil {
			d.rand = f
		}
	}
}

// WithLineMetrics sets the row height and reserved rows used by Resize.
func WithLineMetrics(lineHeight, margin int) Option {
	return func(d *Driver) {
		d.lineHeight = max(1, lineHeight)
		d.margin = max(0, margin)
	}
}

// WithClock sets the time source used to track a pending delayed start.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) {
		if now != nil {
			d.now = now
		}
	}
}

// WithFallback sets the collection substituted when the supplied one has no
// code. Passing nil leaves the driver empty, which makes Start a no-op.
func WithFallback(list []snippet.Snippet) Option {
	return func(d *Driver) { d.fallback = snippet.Clone(list) }
}

// Driver sequences the typewriter animation over a buffer. All methods must
// be called from the goroutine that delivers Resume calls; the driver holds
// no locks.
type Driver struct {
	buf   *buffer.Buffer
	sched Scheduler

	timing     Timing
	rand       func() float64
	now        func() time.Time
	lineHeight int
	margin     int
	fallback   []snippet.Snippet

	snippets  []snippet.Snippet
	index     int
	animating bool
	code      string
	hasCode   bool

	phase      Phase
	tok        *Token
	tokenID    uint64
	startAfter time.Time // when a settling driver starts

	eraseRows []int
	lines     []string
	line      int
	char      int
}

// New returns a driver that types into buf and suspends through sched. When
// list has no snippet with code the fallback (snippet.Defaults unless
// overridden) is used. A nil buf or sched yields a driver whose operations
// are all no-ops.
func New(buf *buffer.Buffer, sched Scheduler, list []snippet.Snippet, opts ...Option) *Driver {
	d := &Driver{
		buf:        buf,
		sched:      sched,
		timing:     DefaultTiming(),
		rand:       rand.Float64,
		now:        time.Now,
		lineHeight: 1,
		fallback:   snippet.Defaults(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.snippets = d.resolve(list)
	return d
}

func (d *Driver) resolve(list []snippet.Snippet) []snippet.Snippet {
	if snippet.HasCode(list) {
		return snippet.Clone(list)
	}
	if len(list) > 0 || len(d.fallback) > 0 {
		log.Warn(log.CatAnimator, "snippet collection has no code, using fallback", "supplied", len(list), "fallback", len(d.fallback))
	}
	return snippet.Clone(d.fallback)
}

func (d *Driver) ready() bool {
	return d != nil && d.buf != nil && d.sched != nil
}

func (d *Driver) newToken() *Token {
	if d.tok != nil {
		d.tok.Cancel()
	}
	d.tokenID++
	d.tok = &Token{id: d.tokenID}
	return d.tok
}

func (d *Driver) wait(delay time.Duration) {
	d.sched.Schedule(delay, d.tok)
}

// Start begins the cycle at the current snippet. It is a no-op while
// animating, without a render target, or when no snippet has code.
func (d *Driver) Start() {
	if !d.ready() || d.animating || !snippet.HasCode(d.snippets) {
		return
	}
	d.animating = true
	d.newToken()
	log.Debug(log.CatAnimator, "start", "index", d.index, "token", d.tok.ID())
	d.beginCycle()
}

// StartAfter schedules Start after delay. Pause, Next, Start or Resize
// before then cancel it.
func (d *Driver) StartAfter(delay time.Duration) {
	if !d.ready() || d.animating {
		return
	}
	d.deferStart(delay)
}

func (d *Driver) deferStart(delay time.Duration) {
	d.newToken()
	d.phase = PhaseSettling
	d.startAfter = d.now().Add(delay)
	d.wait(delay)
}

// Pause stops the animation where it is. Partial text stays on screen; the
// pending continuation is cancelled.
func (d *Driver) Pause() {
	if d == nil {
		return
	}
	if d.tok != nil {
		d.tok.Cancel()
		d.tok = nil
	}
	if d.animating {
		log.Debug(log.CatAnimator, "pause", "index", d.index, "phase", d.phase)
	}
	d.animating = false
	d.phase = PhaseIdle
	if d.buf != nil {
		d.buf.HideCursors()
	}
}

// Toggle pauses a running driver and starts an idle one.
func (d *Driver) Toggle() {
	if d.Animating() {
		d.Pause()
		return
	}
	d.Start()
}

// Next jumps to the following snippet immediately, wherever the cycle was.
func (d *Driver) Next() {
	if !d.ready() || len(d.snippets) == 0 {
		return
	}
	d.Pause()
	d.buf.ClearAll()
	d.index = (d.index + 1) % len(d.snippets)
	d.Start()
}

// Resize reallocates the buffer for a region of height rows. All visible
// text is dropped; a running animation restarts after the settle delay. A
// pending delayed start keeps its deadline when that is later.
func (d *Driver) Resize(height int) {
	if !d.ready() {
		return
	}
	running := d.animating || d.phase == PhaseSettling
	delay := d.timing.Settle
	if d.phase == PhaseSettling {
		delay = max(delay, d.startAfter.Sub(d.now()))
	}
	d.Pause()
	d.buf.Resize(buffer.CapacityFor(height, d.lineHeight, d.margin))
	log.Debug(log.CatAnimator, "resize", "height", height, "capacity", d.buf.Capacity(), "restart", running, "delay", delay)
	if running {
		d.deferStart(delay)
	}
}

// SetSnippets replaces the collection. A collection without code is
// replaced by the fallback. A running animation restarts from a clean panel.
func (d *Driver) SetSnippets(list []snippet.Snippet) {
	if d == nil {
		return
	}
	running := d.animating || d.phase == PhaseSettling
	d.Pause()
	d.snippets = d.resolve(list)
	if d.index >= len(d.snippets) {
		d.index = 0
	}
	if d.buf != nil {
		d.buf.ClearAll()
	}
	if running {
		d.Start()
	}
}

// CopySnapshot returns the full text of the last fully typed snippet.
func (d *Driver) CopySnapshot() (string, bool) {
	if d == nil || !d.hasCode {
		return "", false
	}
	return d.code, true
}

// Animating reports whether the cycle is running.
func (d *Driver) Animating() bool {
	return d != nil && d.animating
}

// Index returns the current snippet index.
func (d *Driver) Index() int {
	if d == nil {
		return 0
	}
	return d.index
}

// Buffer returns the buffer the driver types into.
func (d *Driver) Buffer() *buffer.Buffer {
	if d == nil {
		return nil
	}
	return d.buf
}

// Snippets returns a copy of the collection.
func (d *Driver) Snippets() []snippet.Snippet {
	if d == nil {
		return nil
	}
	return snippet.Clone(d.snippets)
}

// State returns the current driver state.
func (d *Driver) State() State {
	if d == nil {
		return State{}
	}
	st := State{
		Phase:     d.phase,
		Animating: d.animating,
		Index:     d.index,
		Count:     len(d.snippets),
		Line:      d.line,
	}
	if d.buf != nil {
		st.VisibleLines = d.buf.VisibleCount()
		st.Capacity = d.buf.Capacity()
	}
	if d.index < len(d.snippets) {
		st.Language = d.snippets[d.index].Language
		st.Description = d.snippets[d.index].Description
	}
	return st
}

// Resume continues the cycle after a scheduled delay. Calls carrying a
// cancelled or superseded token return without drawing.
func (d *Driver) Resume(tok *Token) {
	if !d.ready() || tok.Cancelled() || tok != d.tok {
		return
	}
	switch d.phase {
	case PhaseSettling:
		d.tok = nil
		d.phase = PhaseIdle
		d.Start()
	case PhaseClearing:
		d.eraseStep()
	case PhaseTyping:
		d.typeStep()
	case PhaseHolding:
		d.index = (d.index + 1) % len(d.snippets)
		d.phase = PhaseResting
		d.wait(d.timing.InterSnippet)
	case PhaseResting:
		d.beginCycle()
	}
}

// beginCycle erases whatever is visible, then types the current snippet.
func (d *Driver) beginCycle() {
	d.eraseRows = d.buf.VisibleRows()
	if len(d.eraseRows) == 0 {
		d.beginTyping()
		return
	}
	d.phase = PhaseClearing
	d.eraseStep()
}

func (d *Driver) eraseStep() {
	if len(d.eraseRows) == 0 {
		d.beginTyping()
		return
	}
	row := d.eraseRows[0]
	runes := []rune(d.buf.Text(row))
	if len(runes) > 0 {
		d.buf.SetLine(row, string(runes[:len(runes)-1]))
		d.buf.SetCursor(row, true)
		d.wait(d.timing.eraseDelay(d.rand()))
		return
	}

	d.buf.Clear(row)
	d.eraseRows = d.eraseRows[1:]
	if len(d.eraseRows) == 0 {
		d.wait(d.timing.ClearPause)
		return
	}
	d.wait(d.timing.EraseLineGap)
}

func (d *Driver) beginTyping() {
	s := d.snippets[d.index]
	d.phase = PhaseTyping
	if s.Empty() {
		// Nothing to type; fall straight through to the advance.
		d.phase = PhaseHolding
		d.wait(0)
		return
	}
	d.lines = s.Lines[:min(len(s.Lines), d.buf.Capacity())]
	d.line = 0
	d.char = 0
	log.Debug(log.CatAnimator, "typing", "index", d.index, "lines", len(d.lines), "dropped", len(s.Lines)-len(d.lines))
	d.typeStep()
}

func (d *Driver) typeStep() {
	runes := []rune(d.lines[d.line])
	if d.char < len(runes) {
		d.char++
		d.buf.SetLine(d.line, string(runes[:d.char]))
		d.buf.SetCursor(d.line, true)
		d.wait(d.timing.typeDelay(runes[d.char-1], d.rand()))
		return
	}

	d.buf.SetCursor(d.line, false)
	d.line++
	d.char = 0
	if d.line >= len(d.lines) {
		d.finishTyping()
		return
	}
	d.buf.SetCursor(d.line, true)
	d.wait(d.timing.LineGap)
}

func (d *Driver) finishTyping() {
	d.code = d.snippets[d.index].Text()
	d.hasCode = true
	d.phase = PhaseHolding
	log.Debug(log.CatAnimator, "snippet typed", "index", d.index)
	d.wait(d.timing.Hold)
}
