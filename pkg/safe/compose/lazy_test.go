package compose

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLater_EquivalentToNowForPureSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Map(ThatSupply(ctx, func() int { return 20 }), func(v int) int { return v + 1 })
	bad := MapTry(ok, func(int) (int, error) { return 0, errors.New("nope") })

	assert.Equal(t, ok.Now().GetOrElse(0), ok.Later().Eval().GetOrElse(0))
	assert.Equal(t, bad.Now().ErrorOrElse(""), bad.Later().Eval().ErrorOrElse(""))
	assert.Equal(t, ok.Len(), ok.Later().Len())
}

func TestLater_DoesNotRunUntilEval(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	lazy := ThatSupply(ctx, func() int { calls++; return calls }).Later()
	assert.Equal(t, 0, calls)

	assert.Equal(t, 1, lazy.Eval().GetOrElse(0))
	assert.Equal(t, 1, calls)
}

func TestEval_RerunsEveryTime(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	counter := 0
	lazy := ThatSupply(ctx, func() int { counter++; return counter }).Later()

	first := lazy.Eval()
	second := lazy.Eval()

	assert.Equal(t, 1, first.GetOrElse(0))
	assert.Equal(t, 2, second.GetOrElse(0))
	assert.Equal(t, 2, counter)
	assert.NotEqual(t, first.Id(), second.Id())
}

func TestEval_RecoveryFiresOnEachRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen []string
	lazy := ThatTry(ctx, func() error { return errors.New("down") }).
		OtherwiseConsume(func(msg string) { seen = append(seen, msg) }).
		Later()

	lazy.Eval()
	lazy.Eval()

	assert.Equal(t, []string{"down", "down"}, seen)
}

func TestEval_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var calls atomic.Int64
	lazy := Map(ThatSupply(ctx, func() int64 { return calls.Add(1) }), func(v int64) bool { return v > 0 }).Later()

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			res := lazy.Eval()
			assert.True(t, res.GetOrElse(false))
		}()
	}
	wg.Wait()

	require.Equal(t, int64(workers), calls.Load())
}
