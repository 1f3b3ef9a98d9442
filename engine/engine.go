// Package engine implements the non-blocking navigation and edit state
// machine over a menu tree. A Runtime is driven by repeated Tick calls from a
// cooperative loop: each tick re-renders the current frame when its visual
// state changed, derives at most one input event, and applies it. Nothing in
// the tick path blocks, and no state is shared across goroutines.
package engine

import (
	"context"
	"time"

	"github.com/ripred/bettermenu/display"
	"github.com/ripred/bettermenu/internal/logging/events"
	"github.com/ripred/bettermenu/menu"
)

const (
	// DefaultStackDepth bounds submenu nesting, root frame included.
	DefaultStackDepth = 8

	// DefaultLineWidth caps rendered lines when the display reports an
	// unlimited width.
	DefaultLineWidth = 64
)

// Runtime owns all navigation state for one menu tree. It must be driven
// from a single goroutine; action callbacks run synchronously inside Tick and
// must not call back into the Runtime.
type Runtime struct {
	disp      display.Display
	callback  Callback
	source    Source
	numbering bool

	stack    []frame
	stackCap int
	depth    int

	editing      bool
	dirty        bool
	editOriginal int

	lineWidth int
	line      []byte
}

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// WithCallback installs the polling input form. It replaces any previously
// configured source; the two forms are mutually exclusive.
func WithCallback(cb Callback) Option {
	return func(r *Runtime) {
		r.callback = cb
		r.source = nil
	}
}

// WithSource installs the edge-provider input form. It replaces any
// previously configured callback.
func WithSource(src Source) Option {
	return func(r *Runtime) {
		r.source = src
		r.callback = nil
	}
}

// WithNumbering prefixes each rendered row with its 1-based ordinal.
func WithNumbering(on bool) Option {
	return func(r *Runtime) { r.numbering = on }
}

// WithStackDepth bounds submenu nesting. Values below 1 are raised to 1;
// pushes beyond the bound are silently rejected, so size it for the tree.
func WithStackDepth(n int) Option {
	return func(r *Runtime) { r.stackCap = n }
}

// WithLineWidth sets the fallback line cap used when the display declares an
// unlimited width.
func WithLineWidth(n int) Option {
	return func(r *Runtime) { r.lineWidth = n }
}

// New creates a Runtime rooted at root. The root menu must outlive the
// Runtime. The first Tick renders immediately.
func New(root menu.Table, disp display.Display, opts ...Option) *Runtime {
	r := &Runtime{
		disp:      disp,
		dirty:     true,
		stackCap:  DefaultStackDepth,
		lineWidth: DefaultLineWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.stackCap < 1 {
		r.stackCap = 1
	}
	if r.lineWidth < 1 {
		r.lineWidth = DefaultLineWidth
	}
	r.stack = make([]frame, r.stackCap)
	r.stack[0] = frame{table: root}
	r.line = make([]byte, 0, 2*r.lineWidth)
	return r
}

// Tick performs one cooperative pass: clamp the current frame, render it if
// dirty, poll one event, and apply it. It never blocks.
func (r *Runtime) Tick() {
	cur := &r.stack[r.depth]
	cur.clampView(r.height())

	justRendered := false
	if r.dirty {
		r.render(cur)
		r.dirty = false
		justRendered = true
	}

	ev := r.poll(justRendered)
	if ev == None {
		return
	}
	if r.editing {
		r.applyEdit(cur, ev)
		return
	}
	r.applyNavigate(cur, ev)
}

// Run ticks the runtime at the given interval until ctx is cancelled. It is
// a convenience wrapper for hosts without their own scheduling loop; embedded
// callers keep calling Tick themselves.
func (r *Runtime) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Millisecond
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			r.Tick()
		}
	}
}

// JumpTo moves the current frame's selection straight to index i, clamped
// into range, and reports whether the selection moved. It is meant for
// adapters that resolve a target out of band (search, shortcut keys) and is
// ignored while an edit is in progress.
func (r *Runtime) JumpTo(i int) bool {
	if r.editing {
		return false
	}
	cur := &r.stack[r.depth]
	total := cur.table.Count()
	if total == 0 {
		return false
	}
	if i < 0 {
		i = 0
	}
	if i >= total {
		i = total - 1
	}
	if i == cur.selected {
		return false
	}
	cur.selected = i
	r.dirty = true
	events.Engine.Jump(r.depth, cur.selected)
	return true
}

// Invalidate forces a re-render on the next Tick.
func (r *Runtime) Invalidate() {
	r.dirty = true
}

// Depth returns the number of frames open above the root.
func (r *Runtime) Depth() int { return r.depth }

// Selected returns the selected index of the current frame.
func (r *Runtime) Selected() int { return r.stack[r.depth].selected }

// Editing reports whether an integer edit is in progress.
func (r *Runtime) Editing() bool { return r.editing }

// Current returns the table of the frame on top of the stack.
func (r *Runtime) Current() menu.Table { return r.stack[r.depth].table }

// poll derives at most one event from whichever input form is configured.
func (r *Runtime) poll(justRendered bool) Event {
	if r.callback != nil {
		prompt := ""
		if justRendered {
			if r.editing {
				prompt = editPrompt
			} else {
				prompt = navPrompt
			}
		}
		return r.callback(prompt)
	}
	if r.source != nil {
		r.source.Capture()
		switch {
		case r.source.Up():
			return Up
		case r.source.Down():
			return Down
		case r.source.Select():
			return Select
		case r.source.Cancel():
			return Cancel
		case r.source.Left():
			return Left
		case r.source.Right():
			return Right
		}
	}
	return None
}

// applyEdit handles one event while an integer edit is active. The edit is
// pinned to the item that was selected when it began.
func (r *Runtime) applyEdit(cur *frame, ev Event) {
	if !cur.table.IntHas(cur.selected) {
		// The slot no longer supports integer access; drop out of edit
		// mode without restoring anything.
		r.editing = false
		r.dirty = true
		return
	}
	v := cur.table.IntGet(cur.selected)
	switch ev {
	case Up:
		if v < cur.table.IntMax(cur.selected) {
			cur.table.IntSet(cur.selected, v+1)
			r.dirty = true
		}
	case Down:
		if v > cur.table.IntMin(cur.selected) {
			cur.table.IntSet(cur.selected, v-1)
			r.dirty = true
		}
	case Select:
		r.editing = false
		r.dirty = true
		events.Edit.Commit(cur.table.LabelAt(cur.selected), v)
	case Cancel:
		cur.table.IntSet(cur.selected, r.editOriginal)
		r.editing = false
		r.dirty = true
		events.Edit.Cancel(cur.table.LabelAt(cur.selected), r.editOriginal)
	}
}

// applyNavigate handles one event in the default navigation state.
func (r *Runtime) applyNavigate(cur *frame, ev Event) {
	total := cur.table.Count()
	switch ev {
	case Up:
		if total > 0 {
			old := cur.selected
			if cur.selected == 0 {
				cur.selected = total - 1
			} else {
				cur.selected--
			}
			if cur.selected != old {
				r.dirty = true
				events.Engine.Cursor(r.depth, cur.selected)
			}
		}
	case Down:
		if total > 0 {
			old := cur.selected
			cur.selected = (cur.selected + 1) % total
			if cur.selected != old {
				r.dirty = true
				events.Engine.Cursor(r.depth, cur.selected)
			}
		}
	case Select:
		if total == 0 {
			return
		}
		switch cur.table.KindAt(cur.selected) {
		case menu.KindInt:
			if cur.table.IntHas(cur.selected) {
				r.editOriginal = cur.table.IntGet(cur.selected)
				r.editing = true
				r.dirty = true
				events.Edit.Start(cur.table.LabelAt(cur.selected), r.editOriginal)
			}
		case menu.KindAction:
			cur.table.Invoke(cur.selected)
			r.dirty = true
			events.Action.Invoked(cur.table.LabelAt(cur.selected))
		case menu.KindMenu:
			if child, ok := cur.table.ChildAt(cur.selected); ok {
				r.push(child, cur.table.LabelAt(cur.selected))
			}
		}
	case Cancel:
		r.pop()
	case Left, Right:
		// Reserved for adapter-specific use.
	}
}

// push opens child as a fresh frame. A full stack rejects the push and
// leaves everything untouched.
func (r *Runtime) push(child menu.Table, label string) bool {
	if r.depth+1 >= len(r.stack) {
		events.Engine.PushRejected(r.depth, label)
		return false
	}
	r.depth++
	r.stack[r.depth] = frame{table: child}
	r.dirty = true
	events.Engine.Push(r.depth, label)
	return true
}

// pop closes the current frame. Popping the root is a no-op.
func (r *Runtime) pop() bool {
	if r.depth == 0 {
		return false
	}
	r.depth--
	r.dirty = true
	events.Engine.Pop(r.depth)
	return true
}
