package display

import "io"

// separatorRule visually breaks frames on a scrolling stream.
const separatorRule = "────────────────────────────────"

// Writer adapts an io.Writer (a serial port, a log, stdout) into a Display.
// Rows scroll rather than overwrite, so WriteLine ignores its row argument.
// A nil Writer or a nil underlying stream degrades every operation to a no-op.
type Writer struct {
	w      io.Writer
	width  int
	height int
}

// NewWriter wraps w. width and height bound the drawable area; either may be
// 0 for unlimited.
func NewWriter(w io.Writer, width, height int) *Writer {
	return &Writer{w: w, width: width, height: height}
}

// Size reports the configured bounds.
func (d *Writer) Size() (int, int) {
	if d == nil {
		return 0, 0
	}
	return d.width, d.height
}

// Clear emits a blank line and a separator rule so consecutive frames stay
// readable on a scrolling stream.
func (d *Writer) Clear() {
	if d == nil || d.w == nil {
		return
	}
	io.WriteString(d.w, "\n"+separatorRule+"\n")
}

// WriteLine prints the text followed by a newline.
func (d *Writer) WriteLine(_ int, text string) {
	if d == nil || d.w == nil {
		return
	}
	io.WriteString(d.w, text+"\n")
}

// Flush is a no-op; the underlying writer owns buffering.
func (d *Writer) Flush() {}
