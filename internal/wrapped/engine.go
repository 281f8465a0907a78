package wrapped

import "strava-wrapped/internal/api"

// State is the engine lifecycle: Loading until the dataset arrives, then
// Ready, or Failed terminally when the fetch errors.
type State int

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

// Engine owns the wrapped dataset's fetch lifecycle and the slide
// navigation state. It has its own generation guard, independent of the
// aggregate provider, because its fetch lifecycle is decoupled.
type Engine struct {
	state  State
	errMsg string
	gen    uint64

	data   *api.Wrapped
	slides []Slide
	index  int
}

// NewEngine creates an engine in the Loading state.
func NewEngine() *Engine {
	return &Engine{state: StateLoading}
}

// Begin starts a new fetch wave (initial load or filter change), discards
// the previous dataset, and returns the generation token the result must
// carry to be accepted.
func (e *Engine) Begin() uint64 {
	e.gen++
	e.state = StateLoading
	e.errMsg = ""
	e.data = nil
	e.slides = nil
	e.index = 0
	return e.gen
}

// Apply delivers a fetch result. Results from superseded generations are
// discarded. On success the slide sequence is rebuilt from scratch; on
// failure the engine enters the terminal Failed state with the message.
func (e *Engine) Apply(gen uint64, data *api.Wrapped, err error) bool {
	if gen != e.gen {
		return false
	}
	if err != nil {
		e.state = StateFailed
		e.errMsg = err.Error()
		return true
	}
	e.state = StateReady
	e.data = data
	e.slides = BuildSlides(data)
	e.index = 0
	return true
}

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Err returns the failure message, empty unless Failed.
func (e *Engine) Err() string { return e.errMsg }

// Data returns the applied dataset, nil unless Ready.
func (e *Engine) Data() *api.Wrapped { return e.data }

// Slides returns the derived slide sequence, nil unless Ready.
func (e *Engine) Slides() []Slide { return e.slides }

// Index returns the current slide position.
func (e *Engine) Index() int { return e.index }

// Current returns the slide under the cursor; ok is false unless Ready.
func (e *Engine) Current() (Slide, bool) {
	if e.state != StateReady || e.index >= len(e.slides) {
		return Slide{}, false
	}
	return e.slides[e.index], true
}

// Next advances one slide, saturating at the last. No side effects beyond
// the index change.
func (e *Engine) Next() {
	if e.state == StateReady && e.index < len(e.slides)-1 {
		e.index++
	}
}

// Prev steps back one slide, saturating at the first.
func (e *Engine) Prev() {
	if e.state == StateReady && e.index > 0 {
		e.index--
	}
}
