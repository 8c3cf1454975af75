// File: adapters/tracer_adapter.go
// Package adapters provides glue between internal concurrency and the
// event-set core's optional collaborators.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// LogTracer implements api.Tracer by emitting structured log events
// instead of talking to a real tracing backend: every span becomes one
// "span start" and one "span finish" log line, tags and fields attached
// as structured key/value pairs.

package adapters

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/go-eventset/api"
)

// LogTracer is a zerolog-backed api.Tracer.
type LogTracer struct {
	logger zerolog.Logger
}

// NewLogTracer wraps logger as an api.Tracer.
func NewLogTracer(logger zerolog.Logger) *LogTracer {
	return &LogTracer{logger: logger}
}

// StartSpan implements api.Tracer.
func (t *LogTracer) StartSpan(name string, _ ...api.SpanOption) api.Span {
	span := &logSpan{
		logger: t.logger,
		name:   name,
		start:  time.Now(),
		tags:   make(map[string]any),
	}
	t.logger.Debug().Str("span", name).Msg("span started")
	return span
}

// Inject implements api.Tracer by copying the span's tag snapshot into
// carrier under "trace".
func (t *LogTracer) Inject(span api.Span, carrier map[string]any) {
	carrier["trace"] = span.Context()
}

// Extract implements api.Tracer by reconstructing a detached span whose
// tags are carrier's "trace" entry, if present.
func (t *LogTracer) Extract(carrier map[string]any) (api.Span, error) {
	tags := make(map[string]any)
	if trace, ok := carrier["trace"].(map[string]any); ok {
		if inner, ok := trace["tags"].(map[string]any); ok {
			tags = inner
		}
	}
	return &logSpan{logger: t.logger, name: "extracted", start: time.Now(), tags: tags}, nil
}

type logSpan struct {
	logger zerolog.Logger
	name   string
	start  time.Time
	tags   map[string]any
}

func (s *logSpan) Finish() {
	evt := s.logger.Debug().Str("span", s.name).Dur("elapsed", time.Since(s.start))
	for k, v := range s.tags {
		evt = evt.Interface(k, v)
	}
	evt.Msg("span finished")
}

func (s *logSpan) SetTag(key string, value any) {
	s.tags[key] = value
}

func (s *logSpan) Log(fields map[string]any) {
	evt := s.logger.Debug().Str("span", s.name)
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg("span event")
}

func (s *logSpan) Context() map[string]any {
	return map[string]any{"tags": s.tags}
}

var _ api.Tracer = (*LogTracer)(nil)
