package app

import "github.com/ripred/bettermenu/menu"

// Defaults for the demo device settings.
const (
	defaultVolume     = 5
	defaultBrightness = 70
	defaultContrast   = 50
	defaultTimeout    = 30
)

// panel owns the demo "device control panel": the settings storage and the
// fixed menu tree that edits it. The tree borrows the panel's fields for its
// integer items, so the panel must outlive the runtime it is mounted in.
type panel struct {
	volume     int
	brightness int
	contrast   int
	timeout    int

	beeps int

	root *menu.Menu
}

func newPanel() *panel {
	p := &panel{
		volume:     defaultVolume,
		brightness: defaultBrightness,
		contrast:   defaultContrast,
		timeout:    defaultTimeout,
	}
	settings := menu.New("Settings",
		menu.Int("Contrast", &p.contrast, 0, 100),
		menu.Int("Timeout", &p.timeout, 5, 120),
		menu.Act("Defaults", p.restoreDefaults),
	)
	p.root = menu.New("Control Panel",
		menu.Int("Volume", &p.volume, 0, 10),
		menu.Int("Brightness", &p.brightness, 0, 100),
		menu.Act("Beep", p.beep),
		menu.Sub("Settings", settings),
	)
	return p
}

// Root returns the panel's menu tree.
func (p *panel) Root() *menu.Menu {
	return p.root
}

func (p *panel) beep() {
	p.beeps++
}

func (p *panel) restoreDefaults() {
	p.contrast = defaultContrast
	p.timeout = defaultTimeout
}
