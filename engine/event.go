package engine

// Event is one abstract input. The engine derives at most one per tick.
type Event uint8

const (
	None Event = iota
	Left
	Right
	Up
	Down
	Select
	Cancel
)

// String returns a short name for the event, used in trace payloads.
func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Select:
		return "select"
	case Cancel:
		return "cancel"
	}
	return "unknown"
}

// Callback is the polling input form: it returns exactly one event, or None
// when nothing happened. prompt is non-empty only on the first poll after a
// render, which lets an adapter print a hint exactly once per screen.
type Callback func(prompt string) Event

// Source is the edge-provider input form. Capture runs once per tick before
// the six edge checks (a debounce pass, a raw read) and may be a no-op. Each
// check reports whether that control triggered since it was last consumed;
// the engine polls them in the fixed order Up, Down, Select, Cancel, Left,
// Right and takes the first hit.
type Source interface {
	Capture()
	Up() bool
	Down() bool
	Select() bool
	Cancel() bool
	Left() bool
	Right() bool
}

// Input prompts handed to a Callback right after a render.
const (
	navPrompt  = "U/D=move  S=select  C=back"
	editPrompt = "U/D=adj  S=save  C=cancel"
)
