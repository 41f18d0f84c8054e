package future

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ev-ko/await/pkg/await"
)

func TestResolveWins(t *testing.T) {
	t.Parallel()
	f := Deferred[int]()
	assert.True(t, f.Resolve(1))
	assert.False(t, f.Resolve(2))
	assert.False(t, f.Reject(errors.New("late")))

	v, err := f.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAwaitIsIdempotent(t *testing.T) {
	t.Parallel()
	f := Resolved("hello")

	for i := 0; i < 2; i++ {
		v, err := f.Await(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "hello", v)
	}
}

func TestAwaitContextCancel(t *testing.T) {
	t.Parallel()
	f := Deferred[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// the future itself is untouched and can still settle
	f.Resolve(9)
	v, err := f.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestOutcomeCtx(t *testing.T) {
	t.Parallel()
	f := Rejected[int](errors.New("boom"))
	o := f.OutcomeCtx(context.Background())
	assert.True(t, o.IsFailure())

	blocked := Deferred[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	o = blocked.OutcomeCtx(ctx)
	assert.True(t, o.IsCancel())
	assert.ErrorIs(t, o.Err(), context.DeadlineExceeded)
	blocked.Resolve(0)
}

func TestNewExecutor(t *testing.T) {
	t.Parallel()
	f := New(func(resolve func(int), reject func(error)) {
		resolve(42)
	})
	v, err := f.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestNewRecoversPanic(t *testing.T) {
	t.Parallel()
	f := New(func(resolve func(int), reject func(error)) {
		panic("kaboom")
	})
	_, err := f.Await(context.Background())

	var pe PanicError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
}

func TestRejectCancellation(t *testing.T) {
	t.Parallel()
	f := Deferred[int]()
	f.Reject(context.Canceled)
	o := f.OutcomeCtx(context.Background())
	assert.True(t, o.IsCancel())
}

func TestSettledForwardsOutcome(t *testing.T) {
	t.Parallel()
	f := Deferred[string]()
	got := make(chan string, 1)
	f.Settled(func(v string, err error) {
		got <- v
	})
	f.Resolve("done")
	assert.Equal(t, "done", <-got)
}

func TestThenShortCircuits(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	called := false

	out := Then(Rejected[int](boom), func(v int) await.Outcome[string] {
		called = true
		return await.Success("never")
	})

	_, err := out.Await(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestThenTryChain(t *testing.T) {
	t.Parallel()
	out := ThenTry(Resolved(3), func(v int) (int, error) {
		return v * 2, nil
	})
	v, err := out.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 6, v)

	out = ThenTry(Resolved(3), func(v int) (int, error) {
		return 0, errors.New("bad")
	})
	_, err = out.Await(context.Background())
	assert.EqualError(t, err, "bad")
}

func TestMapChain(t *testing.T) {
	t.Parallel()
	out := Map(Resolved(2), func(v int) string {
		return string(rune('a' + v))
	})
	v, err := out.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestDerivedPanicRejects(t *testing.T) {
	t.Parallel()
	out := Map(Resolved(1), func(v int) int {
		panic("step blew up")
	})
	_, err := out.Await(context.Background())

	var pe PanicError
	assert.ErrorAs(t, err, &pe)
}

func TestCatchSeesFailureOnly(t *testing.T) {
	t.Parallel()
	caught := make(chan error, 1)

	Rejected[int](errors.New("boom")).Catch(func(err error) {
		caught <- err
	})
	assert.EqualError(t, <-caught, "boom")

	called := false
	Resolved(1).Catch(func(err error) {
		called = true
	})
	assert.False(t, called)
}

func TestEnsureSeesSuccessOnly(t *testing.T) {
	t.Parallel()
	var got int
	Resolved(5).Ensure(func(v int) {
		got = v
	})
	assert.Equal(t, 5, got)

	Rejected[int](errors.New("boom")).Ensure(func(v int) {
		t.Errorf("Ensure must not run on failure")
	}).Catch(func(error) {})
}

func TestLateSubscriberRunsInline(t *testing.T) {
	t.Parallel()
	f := Resolved(1)
	ran := false
	f.Ensure(func(int) { ran = true })
	assert.True(t, ran, "subscriber on a settled future runs inline")
}
