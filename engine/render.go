package engine

import (
	"strconv"

	"github.com/ripred/bettermenu/menu"
)

// render pushes the visible window of cur to the display: clear, one line per
// visible item top to bottom, flush. Callers clear the dirty flag; rendering
// itself mutates nothing but the reused line buffer.
func (r *Runtime) render(cur *frame) {
	if r.disp == nil {
		return
	}
	total := cur.table.Count()
	_, h := r.disp.Size()
	visible := total
	if h > 0 && h < total {
		visible = h
	}
	r.disp.Clear()
	for row := 0; row < visible; row++ {
		idx := cur.top + row
		if idx >= total {
			break
		}
		r.disp.WriteLine(row, r.formatLine(cur, idx))
	}
	r.disp.Flush()
}

// height returns the display's row budget, 0 meaning unlimited.
func (r *Runtime) height() int {
	if r.disp == nil {
		return 0
	}
	_, h := r.disp.Size()
	if h < 0 {
		return 0
	}
	return h
}

// width returns the effective line cap: the display width, or the configured
// fallback when the display is unbounded.
func (r *Runtime) width() int {
	if r.disp == nil {
		return r.lineWidth
	}
	w, _ := r.disp.Size()
	if w <= 0 {
		return r.lineWidth
	}
	return w
}

// formatLine builds one display line for the item at idx: selection marker,
// optional 1-based ordinal, label, and for integer items the decimal value
// plus an edit marker. Appends silently stop at the effective width. The
// line buffer is byte-oriented, matching the character displays it targets.
func (r *Runtime) formatLine(cur *frame, idx int) string {
	max := r.width()
	buf := r.line[:0]
	if idx == cur.selected {
		buf = appendCapped(buf, max, ">")
	} else {
		buf = appendCapped(buf, max, " ")
	}
	if r.numbering {
		buf = appendCappedInt(buf, max, idx+1)
		buf = appendCapped(buf, max, " ")
	}
	buf = appendCapped(buf, max, cur.table.LabelAt(idx))
	if cur.table.KindAt(idx) == menu.KindInt && cur.table.IntHas(idx) {
		buf = appendCapped(buf, max, ": ")
		buf = appendCappedInt(buf, max, cur.table.IntGet(idx))
		if r.editing && idx == cur.selected {
			buf = appendCapped(buf, max, "  (edit)")
		}
	}
	r.line = buf
	return string(buf)
}

// appendCapped appends s to dst, dropping anything past max bytes.
func appendCapped(dst []byte, max int, s string) []byte {
	room := max - len(dst)
	if room <= 0 {
		return dst
	}
	if len(s) > room {
		s = s[:room]
	}
	return append(dst, s...)
}

// appendCappedInt appends v in decimal, truncated at max bytes.
func appendCappedInt(dst []byte, max int, v int) []byte {
	if len(dst) >= max {
		return dst
	}
	dst = strconv.AppendInt(dst, int64(v), 10)
	if len(dst) > max {
		dst = dst[:max]
	}
	return dst
}
