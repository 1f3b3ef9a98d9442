// Package menu provides the declarative item model: a menu is a titled,
// fixed-shape sequence of editable integers, callback actions, and nested
// submenus, composed once at construction and addressed afterwards only
// through the Table interface.
package menu

// Kind identifies the variant a menu position holds.
type Kind uint8

const (
	KindAction Kind = iota
	KindMenu
	KindInt
)

// String returns a short name for the kind, used in trace payloads.
func (k Kind) String() string {
	switch k {
	case KindAction:
		return "action"
	case KindMenu:
		return "menu"
	case KindInt:
		return "int"
	}
	return "unknown"
}

// Item is one entry in a menu. Items are built with Int, Act, and Sub; the
// variant is fixed at construction and never changes afterwards.
type Item struct {
	kind  Kind
	label string

	// KindInt. The item borrows value for its lifetime and never owns it.
	value    *int
	min, max int

	// KindAction. A nil fn makes invocation a no-op.
	fn func()

	// KindMenu. The child's lifetime equals the parent's.
	child *Menu
}

// Int creates an editable integer item bound to ptr. min and max are
// inclusive; min must not exceed max. The referenced storage must outlive
// every menu the item is composed into.
func Int(label string, ptr *int, min, max int) Item {
	return Item{kind: KindInt, label: label, value: ptr, min: min, max: max}
}

// Act creates an action item. fn may be nil.
func Act(label string, fn func()) Item {
	return Item{kind: KindAction, label: label, fn: fn}
}

// Sub creates a submenu item embedding child.
func Sub(label string, child *Menu) Item {
	return Item{kind: KindMenu, label: label, child: child}
}

// Menu is an ordered, fixed-length sequence of items. The shape is immutable
// after New; only the integers referenced by Int items are mutable.
type Menu struct {
	title string
	items []Item
}

// New builds a menu from the given items. The item slice is copied so later
// mutation of the arguments cannot alter the tree.
func New(title string, items ...Item) *Menu {
	m := &Menu{title: title, items: make([]Item, len(items))}
	copy(m.items, items)
	return m
}

// Title returns the menu's title.
func (m *Menu) Title() string {
	if m == nil {
		return ""
	}
	return m.title
}
