package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ripred/bettermenu/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{ShowFooter: true}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("unexpected defaults (-want +got):\n%s", diff)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected tracing disabled by default")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-width", "20", "-height", "4", "-numbering", "-stack-depth", "3",
		"-trace", "-log-file", "/tmp/menu.log",
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := app.Config{Width: 20, Height: 4, Numbering: true, ShowFooter: true, StackDepth: 3}
	if diff := cmp.Diff(want, cfg.App); diff != "" {
		t.Fatalf("unexpected app config (-want +got):\n%s", diff)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/menu.log" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	environ := []string{
		"BETTERMENU_WIDTH=16",
		"BETTERMENU_NUMBERING=true",
		"BETTERMENU_FOOTER=false",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 16 || !cfg.App.Numbering || cfg.App.ShowFooter {
		t.Fatalf("expected environment values applied, got %+v", cfg.App)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"-width", "40"}, []string{"BETTERMENU_WIDTH=16"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 40 {
		t.Fatalf("expected flag to win over environment, got %d", cfg.App.Width)
	}
}

func TestValidateRejectsNegatives(t *testing.T) {
	cases := []app.Config{
		{Width: -1},
		{Height: -2},
		{StackDepth: -1},
	}
	for _, tc := range cases {
		if err := Validate(Config{App: tc}); err == nil {
			t.Fatalf("expected validation error for %+v", tc)
		}
	}
	if err := Validate(Config{}); err != nil {
		t.Fatalf("unexpected error for zero config: %v", err)
	}
}

func TestInvalidEnvValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"BETTERMENU_WIDTH=wat", "BETTERMENU_NUMBERING=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Numbering {
		t.Fatalf("expected unparsable environment values ignored, got %+v", cfg.App)
	}
}
