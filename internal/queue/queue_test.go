package queue

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_PanicsOnNonPositiveCapacity(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { New[int](0) })
	assert.Panics(t, func() { New[int](-3) })
}

func TestSendRecv_FIFO(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tx, rx := New[int](3)

	for i := 1; i <= 3; i++ {
		require.NoError(t, tx.Send(ctx, i))
	}
	assert.Equal(t, 3, rx.Len())

	for i := 1; i <= 3; i++ {
		v, ok, err := rx.Recv(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestRing_WrapsAround(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tx, rx := New[int](2)

	for i := 0; i < 10; i++ {
		require.NoError(t, tx.Send(ctx, i))
		v, ok, err := rx.Recv(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, rx.Len())
}

func TestTrySend_Full(t *testing.T) {
	t.Parallel()
	tx, _ := New[string](1)

	require.NoError(t, tx.TrySend("a"))
	err := tx.TrySend("b")

	var full *FullError[string]
	require.ErrorAs(t, err, &full)
	assert.Equal(t, "b", full.Value)
	assert.ErrorIs(t, err, ErrFull)
}

func TestSend_CancelledWhileFull(t *testing.T) {
	t.Parallel()
	tx, rx := New[int](1)
	require.NoError(t, tx.Send(context.Background(), 1))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := tx.Send(ctx, 2)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, rx.Len(), "cancelled send must not enqueue")
}

func TestRecv_CancelledWhileEmpty(t *testing.T) {
	t.Parallel()
	tx, rx := New[int](1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok, err := rx.Recv(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.Canceled)

	require.NoError(t, tx.Send(context.Background(), 7))
	v, ok, err := rx.Recv(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestRelease_LastSenderEndsStream(t *testing.T) {
	t.Parallel()
	tx, rx := New[int](1)
	clone := tx.Clone()

	last, ok := tx.Release()
	assert.True(t, ok)
	assert.False(t, last)

	last, ok = tx.Release()
	assert.False(t, ok, "double release is a no-op")
	assert.False(t, last)

	last, ok = clone.Release()
	assert.True(t, ok)
	assert.True(t, last)

	_, ok, err := rx.Recv(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClone_OfReleasedHandle(t *testing.T) {
	t.Parallel()
	tx, rx := New[int](1)
	last, _ := tx.Release()
	require.True(t, last)

	c := tx.Clone()
	err := c.Send(context.Background(), 1)

	var sendErr *SendError[int]
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, 1, sendErr.Value)
	_, ok, _ := rx.Recv(context.Background())
	assert.False(t, ok)
}

func TestClose_FailsBlockedSenderKeepsBuffered(t *testing.T) {
	t.Parallel()
	tx, rx := New[int](1)
	require.NoError(t, tx.Send(context.Background(), 1))

	errc := make(chan error, 1)
	go func() { errc <- tx.Send(context.Background(), 2) }()

	time.Sleep(20 * time.Millisecond)
	rx.Close()

	err := <-errc
	var sendErr *SendError[int]
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, 2, sendErr.Value)
	assert.True(t, errors.Is(err, ErrClosed))
	assert.True(t, tx.IsClosed())

	v, ok, err := rx.Recv(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok, err = rx.Recv(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReceiverRelease_DiscardsBuffered(t *testing.T) {
	t.Parallel()
	tx, rx := New[int](2)
	require.NoError(t, tx.Send(context.Background(), 1))

	assert.True(t, rx.Release())
	assert.False(t, rx.Release())

	assert.Equal(t, 0, rx.Len())
	assert.Error(t, tx.Send(context.Background(), 2))
	_, ok, err := rx.Recv(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCapacity(t *testing.T) {
	t.Parallel()
	_, rx := New[int](5)
	assert.Equal(t, 5, rx.Capacity())
}

func TestRelease_ConcurrentCallsOnOneHandle(t *testing.T) {
	t.Parallel()
	tx, rx := New[int](1)
	defer rx.Release()

	const callers = 16
	var (
		wg    sync.WaitGroup
		wins  atomic.Int32
		lasts atomic.Int32
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			last, ok := tx.Release()
			if ok {
				wins.Add(1)
			}
			if last {
				lasts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
	assert.EqualValues(t, 1, lasts.Load())
}
