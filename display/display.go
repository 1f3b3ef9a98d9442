// Package display defines the line-oriented output contract the engine
// renders through, plus a Writer adapter for serial-style streams.
package display

// Display receives rendered menu lines. Implementations are free to make any
// operation a no-op; the engine never depends on output side effects.
type Display interface {
	// Size reports the drawable area in columns and rows. Zero means
	// unlimited in that direction (a scrolling stream, for example).
	Size() (width, height int)

	// Clear prepares the surface for a fresh frame.
	Clear()

	// WriteLine draws text on the given row, counted from the top of the
	// visible window.
	WriteLine(row int, text string)

	// Flush pushes any buffered output to the device.
	Flush()
}
