// Package input provides built-in event sources for the engine: a
// serial-style byte-mapped key source and a debounced button source. Both
// keep their state in caller-owned values; nothing here is package-global.
package input

import "io"

// Edge bits latched by Keys between Capture and the engine's checks.
const (
	edgeUp uint8 = 1 << iota
	edgeDown
	edgeSelect
	edgeCancel
	edgeLeft
	edgeRight
)

// Keys maps raw bytes onto the six menu controls: w=up s=down e=select
// q=cancel a=left d=right, case-insensitive, CR and LF ignored. Capture
// consumes at most one byte per tick so a burst of input spreads across
// ticks instead of collapsing into one.
type Keys struct {
	raw   chan byte
	edges uint8
}

// NewKeys creates an empty key source. Feed it bytes from wherever raw input
// arrives.
func NewKeys() *Keys {
	return &Keys{raw: make(chan byte, 32)}
}

// NewKeysReader creates a key source pumped from r by a background goroutine.
// The goroutine exits when r reports an error (EOF included). The engine
// itself stays single-threaded; the channel is the only crossing point.
func NewKeysReader(r io.Reader) *Keys {
	k := NewKeys()
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				k.Feed(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()
	return k
}

// Feed queues raw bytes for upcoming ticks. Bytes beyond the internal buffer
// are dropped rather than blocking the caller.
func (k *Keys) Feed(p []byte) {
	for _, b := range p {
		select {
		case k.raw <- b:
		default:
			return
		}
	}
}

// Capture consumes at most one pending byte and latches its edge bit.
func (k *Keys) Capture() {
	select {
	case b := <-k.raw:
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		switch b {
		case 'w':
			k.edges |= edgeUp
		case 's':
			k.edges |= edgeDown
		case 'e':
			k.edges |= edgeSelect
		case 'q':
			k.edges |= edgeCancel
		case 'a':
			k.edges |= edgeLeft
		case 'd':
			k.edges |= edgeRight
		}
	default:
	}
}

func (k *Keys) take(bit uint8) bool {
	if k.edges&bit == 0 {
		return false
	}
	k.edges &^= bit
	return true
}

func (k *Keys) Up() bool     { return k.take(edgeUp) }
func (k *Keys) Down() bool   { return k.take(edgeDown) }
func (k *Keys) Select() bool { return k.take(edgeSelect) }
func (k *Keys) Cancel() bool { return k.take(edgeCancel) }
func (k *Keys) Left() bool   { return k.take(edgeLeft) }
func (k *Keys) Right() bool  { return k.take(edgeRight) }
