package events

import "github.com/ripred/bettermenu/internal/logging"

type AppTracer struct{}

type FilterTracer struct{}

var (
	App    = AppTracer{}
	Filter = FilterTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (FilterTracer) Open() {
	logging.Trace("filter.open", nil)
}

func (FilterTracer) Jump(query string, target int) {
	logging.Trace("filter.jump", map[string]interface{}{"query": query, "target": target})
}

func (FilterTracer) Miss(query string) {
	logging.Trace("filter.miss", map[string]interface{}{"query": query})
}

func (FilterTracer) Closed() {
	logging.Trace("filter.close", nil)
}
