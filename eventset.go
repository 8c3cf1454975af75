// File: eventset.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EventSet is the public facade over the core tracking engine: it adds
// structured logging, optional tracing, and the Control/Debug surface
// the rest of the library exposes, the way server.HioloadWS wraps its
// own subsystems behind one orchestrating type.

package eventset

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/go-eventset/api"
	core "github.com/momentics/go-eventset/internal/eventset"
	"github.com/momentics/go-eventset/pool"
)

// EventSet tracks a collection of asynchronous operations issued
// against a single api.AsyncRuntime, answering questions about how many
// are still in progress, whether any have failed, and what went wrong.
type EventSet struct {
	core *core.Set

	insertFunc   api.InsertFunc
	completeFunc api.CompleteFunc
	userCtx      any
	recordPool   api.ObjectPool[*Record]

	tracer  api.Tracer
	control api.Control
	debug   api.Debug
	logger  zerolog.Logger
}

// New creates an EventSet bound to runtime. A default record pool
// (pool.SyncPool) is installed automatically unless WithRecordPool
// overrides it.
func New(runtime api.AsyncRuntime, opts ...Option) (*EventSet, error) {
	s := &EventSet{
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.recordPool == nil {
		s.recordPool = pool.NewSyncPool(func() *Record { return &Record{} })
	}

	coreOpts := []core.Option{
		core.WithRecordPool(s.recordPool),
		core.WithUserContext(s.userCtx),
	}
	if s.insertFunc != nil {
		coreOpts = append(coreOpts, core.WithInsertFunc(s.insertFunc))
	}
	if s.completeFunc != nil {
		completeFunc, logger := s.completeFunc, s.logger
		coreOpts = append(coreOpts, core.WithCompleteFunc(func(apiName string, site api.AppSite, version string, counter uint64, at time.Time, status api.OperationStatus, userCtx any) error {
			err := completeFunc(apiName, site, version, counter, at, status, userCtx)
			if err != nil {
				logger.Warn().Str("api", apiName).Uint64("counter", counter).Err(err).Msg("complete hook failed")
			}
			return err
		}))
	}

	c, err := core.NewSet(runtime, coreOpts...)
	if err != nil {
		return nil, err
	}
	s.core = c

	activeProbe := func() any { return c.ActiveSnapshot() }
	if s.control != nil {
		s.control.RegisterDebugProbe("eventset.active", activeProbe)
	}
	if s.debug != nil {
		s.debug.RegisterProbe("eventset.active", activeProbe)
	}

	return s, nil
}

// Insert registers a new asynchronous operation, returning the counter
// value assigned to it.
func (s *EventSet) Insert(apiName string, site api.AppSite, appVersion string, token api.Token) (uint64, error) {
	var span api.Span
	if s.tracer != nil {
		span = s.tracer.StartSpan("eventset.insert")
		defer span.Finish()
	}

	counter, err := s.core.Append(apiName, site, appVersion, token)
	if err != nil {
		s.logger.Debug().Str("api", apiName).Err(err).Msg("insert rejected")
		if span != nil {
			span.SetTag("error", err.Error())
		}
		return 0, err
	}
	s.logger.Debug().Str("api", apiName).Uint64("counter", counter).Msg("operation inserted")
	if s.control != nil {
		s.control.IncrMetric("eventset.inserts_total", 1)
	}
	if span != nil {
		span.SetTag("counter", counter)
	}
	return counter, nil
}

// Count reports the number of operations still registered with the set.
func (s *EventSet) Count() int {
	return s.core.Count()
}

// OpCounter peeks at the running insert counter without side effects.
func (s *EventSet) OpCounter() uint64 {
	return s.core.OpCounter()
}

// Wait polls every in-progress operation until the active list drains,
// a failure is observed, or timeout elapses. See core.Set.Wait for the
// exact sweep semantics.
func (s *EventSet) Wait(ctx context.Context, timeout time.Duration) (numInProgress int, opFailed bool, err error) {
	var span api.Span
	if s.tracer != nil {
		span = s.tracer.StartSpan("eventset.wait")
		defer span.Finish()
	}

	numInProgress, opFailed, err = s.core.Wait(ctx, timeout)
	if err != nil {
		s.logger.Warn().Err(err).Msg("wait failed")
	} else {
		s.logger.Debug().Int("in_progress", numInProgress).Bool("failed", opFailed).Msg("wait swept")
	}
	if s.control != nil {
		s.control.IncrMetric("eventset.wait_sweeps_total", 1)
		if opFailed {
			s.control.IncrMetric("eventset.wait_failures_total", 1)
		}
	}
	if span != nil {
		span.SetTag("in_progress", numInProgress)
		span.SetTag("op_failed", opFailed)
	}
	return numInProgress, opFailed, err
}

// ErrStatus reports whether any operation has failed or been cancelled
// since err_flag was last cleared by a full ErrInfo drain.
func (s *EventSet) ErrStatus() bool {
	return s.core.ErrStatus()
}

// ErrCount reports how many failed or cancelled operations are waiting
// to be drained by ErrInfo.
func (s *EventSet) ErrCount() int {
	return s.core.ErrCount()
}

// ErrInfo drains up to n failed or cancelled operations, oldest first.
func (s *EventSet) ErrInfo(n int) ([]api.ErrInfo, error) {
	infos, err := s.core.ErrInfo(n)
	if err == nil && s.control != nil && len(infos) > 0 {
		s.control.IncrMetric("eventset.errinfo_drained_total", int64(len(infos)))
	}
	return infos, err
}

// Close releases the set. It fails if any operation is still in
// progress; callers are expected to Wait first.
func (s *EventSet) Close() error {
	if err := s.core.Close(); err != nil {
		s.logger.Warn().Err(err).Msg("close refused")
		return err
	}
	s.logger.Debug().Msg("event set closed")
	if s.control != nil {
		s.control.IncrMetric("eventset.closes_total", 1)
	}
	return nil
}

// GetControl exposes dynamic configuration and metrics, if a Control
// was attached with WithControl. It returns nil otherwise.
func (s *EventSet) GetControl() api.Control {
	return s.control
}

// GetDebugAPI exposes debug probes, if a Debug was attached with
// WithDebug. It returns nil otherwise.
func (s *EventSet) GetDebugAPI() api.Debug {
	return s.debug
}
