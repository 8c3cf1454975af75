// Package adapters
// Author: momentics <momentics@gmail.com>
//
// ControlAdapter implements api.Control for an event-set facade, wiring
// together the control package's generic config/metrics/debug primitives
// and seeding the counters an EventSet updates over its lifetime so
// Stats() reports a complete shape even before the first operation is
// inserted.

package adapters

import (
	"github.com/momentics/go-eventset/api"
	"github.com/momentics/go-eventset/control"
)

// eventSetMetricKeys are the counters eventset.EventSet increments as it
// runs: one insert, wait sweep, failed wait, drained error, and close.
var eventSetMetricKeys = []string{
	"eventset.inserts_total",
	"eventset.wait_sweeps_total",
	"eventset.wait_failures_total",
	"eventset.errinfo_drained_total",
	"eventset.closes_total",
}

type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

func NewControlAdapter() api.Control {
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	for _, key := range eventSetMetricKeys {
		adapter.metrics.Incr(key, 0)
	}
	return adapter
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}
func (c *ControlAdapter) Stats() map[string]any {
	stats := c.metrics.GetSnapshot()
	debugStats := c.debug.DumpState()
	combined := make(map[string]any)
	for k, v := range stats {
		combined[k] = v
	}
	for k, v := range debugStats {
		combined["debug."+k] = v
	}
	return combined
}
func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
	control.RegisterReloadHook(fn)
}
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}
func (c *ControlAdapter) IncrMetric(key string, delta int64) int64 {
	return c.metrics.Incr(key, delta)
}
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}
