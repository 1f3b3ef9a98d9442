package engine

import "github.com/ripred/bettermenu/menu"

// frame is one open menu level: the table it is viewed through, the selected
// index, and the index of the first visible row.
type frame struct {
	table    menu.Table
	selected int
	top      int
}

// clampView normalizes selection and scroll window against the current item
// count. height is the visible window in rows; 0 means unlimited. Invariants
// afterwards: 0 <= selected < count and top <= selected < top+window when
// count > 0, selected == top == 0 otherwise.
func (f *frame) clampView(height int) {
	total := f.table.Count()
	if total == 0 {
		f.selected, f.top = 0, 0
		return
	}
	if f.selected < 0 {
		f.selected = 0
	}
	if f.selected >= total {
		f.selected = total - 1
	}
	win := height
	if win <= 0 {
		win = total
	}
	if f.top+win <= f.selected {
		f.top = f.selected - (win - 1)
	}
	if f.selected < f.top {
		f.top = f.selected
	}
	if f.top < 0 {
		f.top = 0
	}
	if f.top >= total {
		f.top = total - 1
	}
}
