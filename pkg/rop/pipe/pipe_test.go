package pipe

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropasync/pkg/rop"
	"github.com/ib-77/ropasync/pkg/rop/core"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func addOne(rec *recorder, name string, delay time.Duration) Step[int, int] {
	return Blocking(func(ctx context.Context, v int) (int, error) {
		time.Sleep(delay)
		rec.add(name)
		return v + 1, nil
	})
}

func TestPipeAsync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := &recorder{}

	res, err := PipeAsync(ctx, core.Resolve(1),
		addOne(rec, "first", 10*time.Millisecond),
		addOne(rec, "second", 0),
	).Await(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, res)
	assert.Equal(t, []string{"first", "second"}, rec.list())
}

func TestPipeAsync_DeferredStart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	start := core.Go(ctx, func(ctx context.Context) (int, error) {
		time.Sleep(5 * time.Millisecond)
		return 10, nil
	})

	res, err := PipeAsync(ctx, start, Sync(func(v int) int { return v * 2 })).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, res)
}

func TestPipeAsync_NoSteps(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	res, err := PipeAsync(ctx, core.Resolve("as is")).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "as is", res)

	_, err = PipeAsync[int](ctx, nil).Await(ctx)
	assert.ErrorIs(t, err, core.ErrNilDeferred)
}

func TestPipeAsync_RejectionStops(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := &recorder{}
	broken := Blocking(func(ctx context.Context, v int) (int, error) {
		rec.add("broken")
		return 0, errors.New("wire cut")
	})

	_, err := PipeAsync(ctx, core.Resolve(1),
		addOne(rec, "first", 0),
		broken,
		addOne(rec, "never", 0),
	).Await(ctx)

	assert.EqualError(t, err, "wire cut")
	assert.Equal(t, []string{"first", "broken"}, rec.list())
}

func TestPipeAsync_RejectedStart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := &recorder{}

	_, err := PipeAsync(ctx, core.Reject[int](errors.New("no input")), addOne(rec, "never", 0)).Await(ctx)
	assert.EqualError(t, err, "no input")
	assert.Empty(t, rec.list())
}

func TestPipeAsync_PanicsBecomeRejections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var p *rop.PanicError

	_, err := PipeAsync(ctx, core.Resolve(0), Sync(func(v int) int { return 1 / v })).Await(ctx)
	require.ErrorAs(t, err, &p)

	raw := func(ctx context.Context, v int) *core.Deferred[int] { panic("raw step") }
	_, err = PipeAsync(ctx, core.Resolve(0), raw).Await(ctx)
	require.ErrorAs(t, err, &p)
	assert.Equal(t, "raw step", p.Value)

	nilStep := func(ctx context.Context, v int) *core.Deferred[int] { return nil }
	_, err = PipeAsync(ctx, core.Resolve(0), nilStep).Await(ctx)
	assert.ErrorIs(t, err, core.ErrNilDeferred)
}

func TestCreatePipeAsync_Reusable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	rec := &recorder{}
	double := Sync(func(v int) int { return v * 2 })
	run := CreatePipeAsync(double, addOne(rec, "inc", 0))

	a, err := run(ctx, 1).Await(ctx)
	require.NoError(t, err)
	b, err := run(ctx, 5).Await(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, a)
	assert.Equal(t, 11, b)
	assert.Equal(t, []string{"inc", "inc"}, rec.list())
}

func TestThenAndFixedArity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	parse := Blocking(func(ctx context.Context, s string) (int, error) { return strconv.Atoi(s) })
	square := Sync(func(v int) int { return v * v })
	format := Sync(func(v int) string { return "n=" + strconv.Itoa(v) })
	length := Sync(func(s string) int { return len(s) })

	got, err := Then(parse, square)(ctx, "7").Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 49, got)

	s, err := Pipe3(parse, square, format)(ctx, "3").Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, "n=9", s)

	n, err := Pipe4(parse, square, format, length)(ctx, "10").Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	_, err = Pipe2(parse, square)(ctx, "x").Await(ctx)
	assert.Error(t, err)
}
