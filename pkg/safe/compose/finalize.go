package compose

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/core"
	"github.com/ib-77/safe/pkg/safe/step"
)

var ErrEmpty = errors.New("compose: empty composition")

// Now runs the composition immediately and returns its outcome. A failure
// carries the first failing message; MissingErrorMessage stands in when that
// message could not be recovered.
func (c Composition[T]) Now() safe.Result[T] {
	return finalize[T](c.ctx, c.steps)
}

// Later finalizes the composition without running it. See Lazy.
func (c Composition[T]) Later() Lazy[T] {
	return Lazy[T]{ctx: c.ctx, steps: c.steps}
}

func finalize[T any](ctx context.Context, seq *sequence) safe.Result[T] {
	if seq == nil {
		return safe.FailWith[T](ErrEmpty.Error(), ErrEmpty)
	}

	res := walk(ctx, seq.steps())
	if res.Failed() {
		return safe.FailFromOr[any, T](res, safe.MissingErrorMessage)
	}
	return safe.Assert[T](res)
}

// walk threads a Result through steps in order, starting from a success that
// holds no value.
func walk(ctx context.Context, steps []step.Step) safe.Result[any] {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := core.GetLogger(ctx, nil)
	ctx, run := core.GetObserver(ctx).StartRun(ctx, len(steps))

	res := safe.Success[any](nil)
	for i, st := range steps {
		stepCtx, done := run.StartStep(ctx, i+1, st.Name(), st.Kind())
		out, report := st.Invoke(stepCtx, res)
		done(out, report)
		logStep(ctx, logger, i+1, st, out, report)
		res = out
	}

	run.Finish(ctx, res)
	logger.DebugContext(ctx, "composition finished", slog.Int("steps", len(steps)), slog.Any("result", res))
	return res
}

func logStep(ctx context.Context, logger *slog.Logger, index int, st step.Step,
	out safe.Result[any], report step.Report) {

	attrs := []any{slog.Int("index", index), slog.String("step", st.Name())}

	switch {
	case !report.Invoked:
		logger.DebugContext(ctx, "step skipped", attrs...)
	case st.Kind() == step.KindThen && out.Failed():
		logger.DebugContext(ctx, "step failed",
			append(attrs, slog.String("error", out.ErrorOrElse(safe.MissingErrorMessage)))...)
	case st.Kind() == step.KindOtherwise:
		logger.InfoContext(ctx, "recovery fired",
			append(attrs, slog.String("error", out.ErrorOrElse(safe.MissingErrorMessage)))...)
		if report.RecoveryFailed {
			logger.WarnContext(ctx, "recovery failed, error swallowed",
				append(attrs, slog.String("error", report.Swallowed.ErrorOrElse(safe.MissingErrorMessage)))...)
		}
	}
}
