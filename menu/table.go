package menu

// Table is the uniform access surface through which the navigation engine
// manipulates any concrete menu shape. Integer accessors are defined as
// harmless no-ops (or zero returns) when the item at the index is not an
// integer, so callers that have already checked the kind stay branch-free.
// Indexes outside [0, Count()) degrade the same way: nothing happens.
type Table interface {
	Count() int
	LabelAt(i int) string
	KindAt(i int) Kind

	IntHas(i int) bool
	IntGet(i int) int
	IntSet(i, v int)
	IntMin(i int) int
	IntMax(i int) int

	// ChildAt resolves the submenu at i. It reports false for non-submenu
	// items and out-of-range indexes.
	ChildAt(i int) (Table, bool)

	// Invoke calls the action callback at i, if any.
	Invoke(i int)
}

// at returns the item at i, or nil when i is out of range.
func (m *Menu) at(i int) *Item {
	if m == nil || i < 0 || i >= len(m.items) {
		return nil
	}
	return &m.items[i]
}

// Count returns the number of items, fixed for the menu's lifetime.
func (m *Menu) Count() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}

// LabelAt returns the display label of the item at i.
func (m *Menu) LabelAt(i int) string {
	if it := m.at(i); it != nil {
		return it.label
	}
	return ""
}

// KindAt returns the variant held at i.
func (m *Menu) KindAt(i int) Kind {
	if it := m.at(i); it != nil {
		return it.kind
	}
	return KindAction
}

// IntHas reports whether the item at i supports integer access.
func (m *Menu) IntHas(i int) bool {
	it := m.at(i)
	return it != nil && it.kind == KindInt && it.value != nil
}

// IntGet returns the current value of the integer item at i.
func (m *Menu) IntGet(i int) int {
	if m.IntHas(i) {
		return *m.items[i].value
	}
	return 0
}

// IntSet stores v into the integer item at i.
func (m *Menu) IntSet(i, v int) {
	if m.IntHas(i) {
		*m.items[i].value = v
	}
}

// IntMin returns the inclusive lower bound of the integer item at i.
func (m *Menu) IntMin(i int) int {
	if m.IntHas(i) {
		return m.items[i].min
	}
	return 0
}

// IntMax returns the inclusive upper bound of the integer item at i.
func (m *Menu) IntMax(i int) int {
	if m.IntHas(i) {
		return m.items[i].max
	}
	return 0
}

// ChildAt resolves the submenu embedded at i.
func (m *Menu) ChildAt(i int) (Table, bool) {
	it := m.at(i)
	if it == nil || it.kind != KindMenu || it.child == nil {
		return nil, false
	}
	return it.child, true
}

// Invoke calls the action callback at i. Non-action items and nil callbacks
// are no-ops.
func (m *Menu) Invoke(i int) {
	if it := m.at(i); it != nil && it.kind == KindAction && it.fn != nil {
		it.fn()
	}
}
