package core

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/step"
)

const (
	// Metrics.
	RunsTotal           = metricz.Key("compose.runs.total")
	SuccessesTotal      = metricz.Key("compose.successes.total")
	FailuresTotal       = metricz.Key("compose.failures.total")
	StepsInvokedTotal   = metricz.Key("compose.steps.invoked.total")
	StepsSkippedTotal   = metricz.Key("compose.steps.skipped.total")
	RecoveriesTotal     = metricz.Key("compose.recoveries.total")
	RecoveryErrorsTotal = metricz.Key("compose.recovery.errors.total")
	StepsTotal          = metricz.Key("compose.steps.total")
	DurationMs          = metricz.Key("compose.duration.ms")

	// Spans.
	RunSpan  = tracez.Key("compose.run")
	StepSpan = tracez.Key("compose.step")

	// Tags.
	TagStepCount = tracez.Tag("compose.step_count")
	TagStepIndex = tracez.Tag("compose.step_index")
	TagStepName  = tracez.Tag("compose.step_name")
	TagStepKind  = tracez.Tag("compose.step_kind")
	TagInvoked   = tracez.Tag("compose.invoked")
	TagSuccess   = tracez.Tag("compose.success")
	TagError     = tracez.Tag("compose.error")
	TagCanceled  = tracez.Tag("compose.canceled")

	// Hook event keys.
	EventStepFailed     = hookz.Key("compose.step_failed")
	EventRecovered      = hookz.Key("compose.recovered")
	EventRecoveryFailed = hookz.Key("compose.recovery_failed")
	EventComplete       = hookz.Key("compose.complete")
)

// Event is emitted through hooks while a composition runs.
type Event struct {
	StepName   string        // Name of the step, empty for EventComplete
	StepKind   step.Kind     // Kind of the step
	StepIndex  int           // Step number (1-based), 0 for EventComplete
	TotalSteps int           // Steps in the run
	Success    bool          // Whether the run is still (or finished) successful
	Message    string        // Observed failure message
	Err        error         // Failure payload
	Canceled   bool          // Failure came from context cancellation or deadline
	Duration   time.Duration // Step or run duration
	Timestamp  time.Time     // When the event occurred
}

// Observer records what compositions do when it is carried in their context
// (see WithObserver). A single Observer may serve many runs concurrently.
type Observer struct {
	mu      sync.RWMutex
	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[Event]
}

func NewObserver() *Observer {
	metrics := metricz.New()
	metrics.Counter(RunsTotal)
	metrics.Counter(SuccessesTotal)
	metrics.Counter(FailuresTotal)
	metrics.Counter(StepsInvokedTotal)
	metrics.Counter(StepsSkippedTotal)
	metrics.Counter(RecoveriesTotal)
	metrics.Counter(RecoveryErrorsTotal)
	metrics.Gauge(StepsTotal)
	metrics.Gauge(DurationMs)

	return &Observer{
		metrics: metrics,
		tracer:  tracez.New(),
		hooks:   hookz.New[Event](),
	}
}

// WithClock sets the clock used for durations and event timestamps.
func (o *Observer) WithClock(clock clockz.Clock) *Observer {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.clock = clock
	return o
}

func (o *Observer) getClock() clockz.Clock {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.clock == nil {
		return clockz.RealClock
	}
	return o.clock
}

func (o *Observer) Metrics() *metricz.Registry {
	return o.metrics
}

func (o *Observer) Tracer() *tracez.Tracer {
	return o.tracer
}

// OnStepFailed registers a handler for a transform step whose callable failed.
// Handlers run asynchronously.
func (o *Observer) OnStepFailed(handler func(context.Context, Event) error) error {
	_, err := o.hooks.Hook(EventStepFailed, handler)
	return err
}

// OnRecovered registers a handler for every recovery step that fired.
func (o *Observer) OnRecovered(handler func(context.Context, Event) error) error {
	_, err := o.hooks.Hook(EventRecovered, handler)
	return err
}

// OnRecoveryFailed registers a handler for recovery callables that failed
// themselves. Their failure is swallowed by the composition.
func (o *Observer) OnRecoveryFailed(handler func(context.Context, Event) error) error {
	_, err := o.hooks.Hook(EventRecoveryFailed, handler)
	return err
}

// OnComplete registers a handler for the end of every run.
func (o *Observer) OnComplete(handler func(context.Context, Event) error) error {
	_, err := o.hooks.Hook(EventComplete, handler)
	return err
}

func (o *Observer) Close() error {
	if o.tracer != nil {
		o.tracer.Close()
	}
	o.hooks.Close()
	return nil
}

// Run tracks one walk over a composition's steps. A nil Run ignores all calls.
type Run struct {
	o      *Observer
	clock  clockz.Clock
	size   int
	start  time.Time
	tag    func(tracez.Tag, string)
	finish func()
}

// StartRun opens the run span. It returns a nil Run when o is nil.
func (o *Observer) StartRun(ctx context.Context, size int) (context.Context, *Run) {
	if o == nil {
		return ctx, nil
	}

	clock := o.getClock()
	o.metrics.Counter(RunsTotal).Inc()
	o.metrics.Gauge(StepsTotal).Set(float64(size))

	ctx, span := o.tracer.StartSpan(ctx, RunSpan)
	span.SetTag(TagStepCount, strconv.Itoa(size))

	return ctx, &Run{
		o:      o,
		clock:  clock,
		size:   size,
		start:  clock.Now(),
		tag:    func(k tracez.Tag, v string) { span.SetTag(k, v) },
		finish: func() { span.Finish() },
	}
}

// StartStep opens a step span. The returned func must be called once with the
// step's output and report.
func (r *Run) StartStep(ctx context.Context, index int, name string,
	kind step.Kind) (context.Context, func(out safe.Result[any], report step.Report)) {

	if r == nil {
		return ctx, func(safe.Result[any], step.Report) {}
	}

	start := r.clock.Now()
	ctx, span := r.o.tracer.StartSpan(ctx, StepSpan)
	span.SetTag(TagStepIndex, strconv.Itoa(index))
	span.SetTag(TagStepName, name)
	span.SetTag(TagStepKind, kind.String())

	return ctx, func(out safe.Result[any], report step.Report) {
		defer span.Finish()
		span.SetTag(TagInvoked, strconv.FormatBool(report.Invoked))

		if !report.Invoked {
			r.o.metrics.Counter(StepsSkippedTotal).Inc()
			return
		}
		r.o.metrics.Counter(StepsInvokedTotal).Inc()

		event := r.event(out)
		event.StepName = name
		event.StepKind = kind
		event.StepIndex = index
		event.Duration = r.clock.Since(start)

		switch kind {
		case step.KindThen:
			if out.Failed() {
				span.SetTag(TagError, event.Message)
				_ = r.o.hooks.Emit(ctx, EventStepFailed, event) //nolint:errcheck
			}
		case step.KindOtherwise:
			r.o.metrics.Counter(RecoveriesTotal).Inc()
			_ = r.o.hooks.Emit(ctx, EventRecovered, event) //nolint:errcheck

			if report.RecoveryFailed {
				r.o.metrics.Counter(RecoveryErrorsTotal).Inc()
				swallowed := report.Swallowed.ErrorOrElse(safe.MissingErrorMessage)
				span.SetTag(TagError, swallowed)
				event.Message = swallowed
				event.Err = report.Swallowed.Err()
				_ = r.o.hooks.Emit(ctx, EventRecoveryFailed, event) //nolint:errcheck
			}
		}
	}
}

// Finish closes the run span with the final result.
func (r *Run) Finish(ctx context.Context, res safe.Result[any]) {
	if r == nil {
		return
	}
	defer r.finish()

	elapsed := r.clock.Since(r.start)
	r.o.metrics.Gauge(DurationMs).Set(float64(elapsed.Milliseconds()))

	event := r.event(res)
	event.Duration = elapsed

	if res.Succeeded() {
		r.tag(TagSuccess, "true")
		r.o.metrics.Counter(SuccessesTotal).Inc()
	} else {
		r.tag(TagSuccess, "false")
		r.tag(TagError, event.Message)
		if event.Canceled {
			r.tag(TagCanceled, "true")
		}
		r.o.metrics.Counter(FailuresTotal).Inc()
	}

	_ = r.o.hooks.Emit(ctx, EventComplete, event) //nolint:errcheck
}

func (r *Run) event(res safe.Result[any]) Event {
	event := Event{
		TotalSteps: r.size,
		Success:    res.Succeeded(),
		Timestamp:  r.clock.Now(),
	}
	if res.Failed() {
		event.Message = res.ErrorOrElse(safe.MissingErrorMessage)
		event.Err = res.Err()
		event.Canceled = safe.IsCancellationError(event.Err)
	}
	return event
}
