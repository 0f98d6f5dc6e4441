package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/retro/internal/core/ports"
)

// TraceEnv enables phase timing output when set to a true value.
const TraceEnv = "RETRO_TRACE"

var _ sdktrace.SpanProcessor = (*PhaseReporter)(nil)

// PhaseReporter is a span processor that logs the duration of every ended span.
// Failed spans are reported as warnings with their status description.
type PhaseReporter struct {
	logger  ports.Logger
	enabled bool
}

// NewPhaseReporter creates a PhaseReporter. A disabled reporter drops every span.
func NewPhaseReporter(logger ports.Logger, enabled bool) *PhaseReporter {
	return &PhaseReporter{logger: logger, enabled: enabled}
}

// OnStart does nothing.
func (r *PhaseReporter) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span once it has ended.
func (r *PhaseReporter) OnEnd(s sdktrace.ReadOnlySpan) {
	if !r.enabled {
		return
	}

	took := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	if status := s.Status(); status.Code == codes.Error {
		r.logger.Warn(fmt.Sprintf("span %s failed after %s: %s", s.Name(), took, status.Description))
		return
	}
	r.logger.Info(fmt.Sprintf("span %s took %s", s.Name(), took))
}

// Shutdown does nothing.
func (r *PhaseReporter) Shutdown(_ context.Context) error { return nil }

// ForceFlush does nothing.
func (r *PhaseReporter) ForceFlush(_ context.Context) error { return nil }

func traceEnabled(lookupEnv func(string) (string, bool)) bool {
	value, ok := lookupEnv(TraceEnv)
	if !ok {
		return false
	}
	enabled, err := strconv.ParseBool(value)
	return err == nil && enabled
}
