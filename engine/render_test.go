package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ripred/bettermenu/menu"
)

func TestFormatLineMarkersAndValues(t *testing.T) {
	volume := -7
	root := menu.New("Root",
		menu.Int("Volume", &volume, -10, 10),
		menu.Act("Beep", nil),
	)
	r, _, disp := newTestRuntime(root)
	r.Tick()
	want := []string{
		">Volume: -7",
		" Beep",
	}
	if diff := cmp.Diff(want, disp.last()); diff != "" {
		t.Fatalf("unexpected frame (-want +got):\n%s", diff)
	}
}

func TestFormatLineNumbering(t *testing.T) {
	v := 5
	root := menu.New("Root",
		menu.Act("First", nil),
		menu.Int("Second", &v, 0, 9),
	)
	r, _, disp := newTestRuntime(root, WithNumbering(true))
	r.Tick()
	want := []string{
		">1 First",
		" 2 Second: 5",
	}
	if diff := cmp.Diff(want, disp.last()); diff != "" {
		t.Fatalf("unexpected numbered frame (-want +got):\n%s", diff)
	}
}

func TestFormatLineEditMarker(t *testing.T) {
	v := 5
	root := menu.New("Root", menu.Int("Volume", &v, 0, 9))
	r, sc, disp := newTestRuntime(root)
	r.Tick()
	drive(r, sc, Select)
	r.Tick()
	if got, want := disp.last()[0], ">Volume: 5  (edit)"; got != want {
		t.Fatalf("expected %q while editing, got %q", want, got)
	}
	drive(r, sc, Select)
	r.Tick()
	if got, want := disp.last()[0], ">Volume: 5"; got != want {
		t.Fatalf("expected %q after commit, got %q", want, got)
	}
}

func TestTruncationAtDisplayWidth(t *testing.T) {
	label := strings.Repeat("x", 40)
	root := menu.New("Root", menu.Act(label, nil))
	r, _, disp := newTestRuntime(root)
	disp.width = 16
	r.Tick()
	line := disp.last()[0]
	if len(line) != 16 {
		t.Fatalf("expected line capped at 16 bytes, got %d (%q)", len(line), line)
	}
	if line != ">"+label[:15] {
		t.Fatalf("expected silent truncation, got %q", line)
	}
}

func TestTruncationOfValueSuffix(t *testing.T) {
	v := 12345
	root := menu.New("Root", menu.Int(strings.Repeat("y", 10), &v, 0, 99999))
	r, _, disp := newTestRuntime(root)
	disp.width = 14
	r.Tick()
	line := disp.last()[0]
	if len(line) > 14 {
		t.Fatalf("expected value suffix capped, got %d bytes (%q)", len(line), line)
	}
}

func TestUnlimitedWidthUsesFallbackCap(t *testing.T) {
	label := strings.Repeat("z", 100)
	root := menu.New("Root", menu.Act(label, nil))
	r, _, disp := newTestRuntime(root)
	r.Tick()
	if got := len(disp.last()[0]); got != DefaultLineWidth {
		t.Fatalf("expected fallback cap %d, got %d", DefaultLineWidth, got)
	}

	r2, _, disp2 := newTestRuntime(root, WithLineWidth(20))
	r2.Tick()
	if got := len(disp2.last()[0]); got != 20 {
		t.Fatalf("expected configured cap 20, got %d", got)
	}
}

func TestRenderWindowHeight(t *testing.T) {
	root := menu.New("Root",
		menu.Act("a", nil), menu.Act("b", nil), menu.Act("c", nil), menu.Act("d", nil),
	)
	r, _, disp := newTestRuntime(root)
	disp.height = 3
	r.Tick()
	if got := len(disp.last()); got != 3 {
		t.Fatalf("expected 3 visible rows, got %d", got)
	}

	// Unlimited height shows everything.
	r2, _, disp2 := newTestRuntime(root)
	r2.Tick()
	if got := len(disp2.last()); got != 4 {
		t.Fatalf("expected all rows with unlimited height, got %d", got)
	}
}

func TestRenderSequenceClearWriteFlush(t *testing.T) {
	root := menu.New("Root", menu.Act("a", nil))
	r, sc, disp := newTestRuntime(root)
	r.Tick()
	if disp.clears != 1 || len(disp.frames) != 1 {
		t.Fatalf("expected one clear and one flush, got %d/%d", disp.clears, len(disp.frames))
	}
	drive(r, sc, Select) // action marks dirty
	r.Tick()
	if disp.clears != 2 || len(disp.frames) != 2 {
		t.Fatalf("expected a second clear/flush pair, got %d/%d", disp.clears, len(disp.frames))
	}
}
