package app

import (
	"sort"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ripred/bettermenu/engine"
	"github.com/ripred/bettermenu/internal/logging/events"
	"github.com/ripred/bettermenu/internal/theme"
)

var styles = theme.Default()

// chromeRows are the view rows reserved around the menu body: header, blank
// spacer, and the footer/filter line.
const chromeRows = 4

// Model implements the Bubble Tea model wrapping an engine.Runtime.
type Model struct {
	rt     *engine.Runtime
	src    *eventSource
	screen *screen
	panel  *panel
	keys   keyMap

	filtering   bool
	filterInput textinput.Model

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
}

// NewModel initialises the UI state with the demo panel and configuration.
func NewModel(cfg Config) *Model {
	p := newPanel()
	src := &eventSource{}
	scr := &screen{}
	opts := []engine.Option{
		engine.WithSource(src),
		engine.WithNumbering(cfg.Numbering),
	}
	if cfg.StackDepth > 0 {
		opts = append(opts, engine.WithStackDepth(cfg.StackDepth))
	}
	m := &Model{
		rt:         engine.New(p.Root(), scr, opts...),
		src:        src,
		screen:     scr,
		panel:      p,
		keys:       defaultKeyMap(),
		showFooter: cfg.ShowFooter,
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	ti := textinput.New()
	ti.Prompt = "» "
	if styles.FilterPrompt != nil {
		ti.PromptStyle = *styles.FilterPrompt
	}
	if styles.Filter != nil {
		ti.TextStyle = *styles.Filter
	}
	ti.Placeholder = "jump to…"
	m.filterInput = ti
	m.resizeScreen()
	m.rt.Tick()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		m.resizeScreen()
		m.rt.Invalidate()
		m.rt.Tick()
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m, m.handleFilterKey(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Filter):
		if !m.rt.Editing() {
			m.filtering = true
			m.filterInput.SetValue("")
			events.Filter.Open()
			return m.filterInput.Focus()
		}
	case key.Matches(msg, m.keys.Up):
		m.feed(engine.Up)
	case key.Matches(msg, m.keys.Down):
		m.feed(engine.Down)
	case key.Matches(msg, m.keys.Select):
		m.feed(engine.Select)
	case key.Matches(msg, m.keys.Back):
		m.feed(engine.Cancel)
	case key.Matches(msg, m.keys.Left):
		m.feed(engine.Left)
	case key.Matches(msg, m.keys.Right):
		m.feed(engine.Right)
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEscape:
		m.closeFilter()
		return nil
	case tea.KeyEnter:
		query := m.filterInput.Value()
		m.closeFilter()
		if query == "" {
			return nil
		}
		if target, ok := m.bestMatch(query); ok {
			events.Filter.Jump(query, target)
			m.rt.JumpTo(target)
			m.rt.Tick()
		} else {
			events.Filter.Miss(query)
		}
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return cmd
}

func (m *Model) closeFilter() {
	m.filtering = false
	m.filterInput.Blur()
	events.Filter.Closed()
}

// bestMatch fuzzy-ranks the current frame's labels against query and returns
// the index of the closest one.
func (m *Model) bestMatch(query string) (int, bool) {
	table := m.rt.Current()
	labels := make([]string, table.Count())
	for i := range labels {
		labels[i] = table.LabelAt(i)
	}
	ranks := fuzzy.RankFindFold(query, labels)
	if len(ranks) == 0 {
		return 0, false
	}
	sort.Sort(ranks)
	return ranks[0].OriginalIndex, true
}

// feed hands one edge event to the engine. The second tick publishes the
// frame the event produced; rendering happens at the top of a tick, so a
// single pass would leave the view one event behind.
func (m *Model) feed(ev engine.Event) {
	m.src.set(ev)
	m.rt.Tick()
	m.rt.Tick()
}

// resizeScreen propagates the terminal geometry to the engine's display,
// reserving the chrome rows around the menu body.
func (m *Model) resizeScreen() {
	m.screen.width = m.width
	rows := m.height - chromeRows
	if rows < 0 {
		rows = 0
	}
	m.screen.height = rows
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Left   key.Binding
	Right  key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// eventSource adapts discrete key presses into the engine's edge-provider
// shape: one pending event, consumed by the first matching check.
type eventSource struct {
	pending engine.Event
}

func (s *eventSource) set(ev engine.Event) { s.pending = ev }

func (s *eventSource) take(ev engine.Event) bool {
	if s.pending != ev {
		return false
	}
	s.pending = engine.None
	return true
}

func (s *eventSource) Capture()     {}
func (s *eventSource) Up() bool     { return s.take(engine.Up) }
func (s *eventSource) Down() bool   { return s.take(engine.Down) }
func (s *eventSource) Select() bool { return s.take(engine.Select) }
func (s *eventSource) Cancel() bool { return s.take(engine.Cancel) }
func (s *eventSource) Left() bool   { return s.take(engine.Left) }
func (s *eventSource) Right() bool  { return s.take(engine.Right) }

// screen is a frame-buffer display: the engine renders into it and View
// publishes the last flushed frame.
type screen struct {
	width  int
	height int

	pending []string
	drawn   []string
}

func (s *screen) Size() (int, int) { return s.width, s.height }

func (s *screen) Clear() { s.pending = s.pending[:0] }

func (s *screen) WriteLine(row int, text string) {
	if row < 0 {
		return
	}
	for len(s.pending) <= row {
		s.pending = append(s.pending, "")
	}
	s.pending[row] = text
}

func (s *screen) Flush() { s.drawn = append(s.drawn[:0], s.pending...) }
