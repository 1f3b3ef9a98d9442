// Package events groups the typed trace emitters used across the module.
// Each tracer namespaces its entries so log consumers can filter by subsystem.
package events

import "github.com/ripred/bettermenu/internal/logging"

type EngineTracer struct{}

type EditTracer struct{}

type ActionTracer struct{}

var (
	Engine = EngineTracer{}
	Edit   = EditTracer{}
	Action = ActionTracer{}
)

func (EngineTracer) Cursor(depth, selected int) {
	logging.Trace("engine.cursor", map[string]interface{}{"depth": depth, "selected": selected})
}

func (EngineTracer) Push(depth int, label string) {
	logging.Trace("engine.push", map[string]interface{}{"depth": depth, "label": label})
}

func (EngineTracer) PushRejected(depth int, label string) {
	logging.Trace("engine.push-rejected", map[string]interface{}{"depth": depth, "label": label})
}

func (EngineTracer) Pop(depth int) {
	logging.Trace("engine.pop", map[string]interface{}{"depth": depth})
}

func (EngineTracer) Jump(depth, selected int) {
	logging.Trace("engine.jump", map[string]interface{}{"depth": depth, "selected": selected})
}

func (EditTracer) Start(label string, value int) {
	logging.Trace("edit.start", map[string]interface{}{"label": label, "value": value})
}

func (EditTracer) Commit(label string, value int) {
	logging.Trace("edit.commit", map[string]interface{}{"label": label, "value": value})
}

func (EditTracer) Cancel(label string, restored int) {
	logging.Trace("edit.cancel", map[string]interface{}{"label": label, "restored": restored})
}

func (ActionTracer) Invoked(label string) {
	logging.Trace("action.invoked", map[string]interface{}{"label": label})
}
