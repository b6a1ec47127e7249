package compose

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/safe/pkg/safe"
	"github.com/ib-77/safe/pkg/safe/core"
	"github.com/ib-77/safe/pkg/safe/step"
)

// syncBuffer guards a bytes.Buffer shared with a slog handler.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNow_LogsThroughContextLogger(t *testing.T) {
	t.Parallel()

	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := core.WithLogger(context.Background(), logger)

	ThatTry(ctx, func() error { return errors.New("disk full") }).
		Run(func() {}).
		OtherwiseConsumeTry(func(string) error { return errors.New("alert failed") }).
		Now()

	logs := out.String()
	assert.Contains(t, logs, "step failed")
	assert.Contains(t, logs, "disk full")
	assert.Contains(t, logs, "step skipped")
	assert.Contains(t, logs, "recovery fired")
	assert.Contains(t, logs, "recovery failed, error swallowed")
	assert.Contains(t, logs, "alert failed")
	assert.Contains(t, logs, "composition finished")
}

func TestNow_ReportsToObserver(t *testing.T) {
	t.Parallel()

	observer := core.NewObserver()
	defer observer.Close()

	recovered := make(chan core.Event, 1)
	complete := make(chan core.Event, 1)
	require.NoError(t, observer.OnRecovered(func(_ context.Context, e core.Event) error {
		recovered <- e
		return nil
	}))
	require.NoError(t, observer.OnComplete(func(_ context.Context, e core.Event) error {
		complete <- e
		return nil
	}))

	ctx := core.WithObserver(context.Background(), observer)
	res := Map(ThatSupplyTry(ctx, func() (int, error) { return 0, errors.New("offline") }),
		func(v int) int { return v }).
		Otherwise(func() {}).
		Now()
	require.True(t, res.Failed())

	metrics := observer.Metrics()
	assert.Equal(t, float64(1), metrics.Counter(core.RunsTotal).Value())
	assert.Equal(t, float64(1), metrics.Counter(core.FailuresTotal).Value())
	assert.Equal(t, float64(2), metrics.Counter(core.StepsInvokedTotal).Value())
	assert.Equal(t, float64(1), metrics.Counter(core.StepsSkippedTotal).Value())
	assert.Equal(t, float64(1), metrics.Counter(core.RecoveriesTotal).Value())

	select {
	case e := <-recovered:
		assert.Equal(t, "otherwise", e.StepName)
		assert.Equal(t, 3, e.StepIndex)
		assert.Equal(t, "offline", e.Message)
	case <-time.After(time.Second):
		t.Fatal("recovered event not emitted")
	}

	select {
	case e := <-complete:
		assert.False(t, e.Success)
		assert.Equal(t, 3, e.TotalSteps)
		assert.Equal(t, "offline", e.Message)
	case <-time.After(time.Second):
		t.Fatal("complete event not emitted")
	}
}

// fixedStep always yields out, whatever it receives.
type fixedStep struct{ out safe.Result[any] }

func (fixedStep) Name() string    { return "fixed" }
func (fixedStep) Kind() step.Kind { return step.KindThen }
func (s fixedStep) Invoke(context.Context, safe.Result[any]) (safe.Result[any], step.Report) {
	return s.out, step.Report{Invoked: true}
}

func TestFinalize_KeepsFailureIdentity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for name, failure := range map[string]safe.Result[any]{
		"with message":    safe.Erase(safe.Fail[int]("broken")),
		"without message": safe.Erase(safe.Unrecoverable[int](errors.New(""))),
	} {
		t.Run(name, func(t *testing.T) {
			res := finalize[string](ctx, (*sequence)(nil).push(fixedStep{out: failure}))

			require.True(t, res.Failed())
			assert.True(t, res.HasMessage())
			assert.Equal(t, failure.Id(), res.Id())
			assert.Equal(t, failure.CreatedAt(), res.CreatedAt())
			assert.Equal(t, failure.ErrorOrElse(safe.MissingErrorMessage), res.ErrorOrElse(""))
		})
	}
}
