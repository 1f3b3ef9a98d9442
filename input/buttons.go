package input

import "time"

// Pin samples one digital input line; true means the line reads high.
type Pin func() bool

// ButtonPins names the six controls in the engine's priority order. Unused
// controls may be left nil; they then never trigger.
type ButtonPins struct {
	Up     Pin
	Down   Pin
	Select Pin
	Cancel Pin
	Left   Pin
	Right  Pin
}

// ButtonOption configures a Buttons source at construction time.
type ButtonOption func(*Buttons)

// WithButtonClock replaces the time source used for debounce timing. Tests
// substitute a fake clock here.
func WithButtonClock(now func() time.Time) ButtonOption {
	return func(b *Buttons) { b.now = now }
}

// Buttons debounces six physical buttons into press edges. A level change
// only counts once it has held stable for the debounce window, and only a
// transition into the pressed level latches an edge. Each edge is consumed
// at most once.
type Buttons struct {
	pins      [6]Pin
	activeLow bool
	debounce  time.Duration
	now       func() time.Time

	debounced  [6]bool
	lastRaw    [6]bool
	lastChange [6]time.Time
	edges      [6]bool
}

// NewButtons creates a debounced button source. activeLow selects wiring
// polarity: true means a low level is a press (pull-up wiring).
func NewButtons(pins ButtonPins, activeLow bool, debounce time.Duration, opts ...ButtonOption) *Buttons {
	b := &Buttons{
		pins:      [6]Pin{pins.Up, pins.Down, pins.Select, pins.Cancel, pins.Left, pins.Right},
		activeLow: activeLow,
		debounce:  debounce,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	start := b.now()
	for i := range b.pins {
		level := b.sample(i)
		b.debounced[i] = level
		b.lastRaw[i] = level
		b.lastChange[i] = start
	}
	return b
}

// sample reads channel i, substituting the idle level for nil pins.
func (b *Buttons) sample(i int) bool {
	if b.pins[i] == nil {
		return b.activeLow // idle: high when pulled up, low otherwise
	}
	return b.pins[i]()
}

// Capture runs one debounce pass over all six channels.
func (b *Buttons) Capture() {
	now := b.now()
	for i := range b.pins {
		raw := b.sample(i)
		if raw != b.lastRaw[i] {
			b.lastChange[i] = now
			b.lastRaw[i] = raw
		}
		if now.Sub(b.lastChange[i]) >= b.debounce && raw != b.debounced[i] {
			// Level change survived the stability window.
			b.debounced[i] = raw
			if b.pressed(raw) {
				b.edges[i] = true
			}
		}
	}
}

func (b *Buttons) pressed(level bool) bool {
	if b.activeLow {
		return !level
	}
	return level
}

func (b *Buttons) take(i int) bool {
	if !b.edges[i] {
		return false
	}
	b.edges[i] = false
	return true
}

func (b *Buttons) Up() bool     { return b.take(0) }
func (b *Buttons) Down() bool   { return b.take(1) }
func (b *Buttons) Select() bool { return b.take(2) }
func (b *Buttons) Cancel() bool { return b.take(3) }
func (b *Buttons) Left() bool   { return b.take(4) }
func (b *Buttons) Right() bool  { return b.take(5) }
