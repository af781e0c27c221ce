package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/extract"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeExtractor struct {
	delay   time.Duration
	err     error
	running atomic.Int32
	peak    atomic.Int32
}

func (f *fakeExtractor) Extract(ctx context.Context, doc extract.Document) (extract.Result, error) {
	n := f.running.Add(1)
	defer f.running.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	select {
	case <-time.After(f.delay):
	case <-ctx.Done():
		return extract.Result{}, ctx.Err()
	}
	if f.err != nil {
		return extract.Result{}, f.err
	}
	return extract.Result{Text: string(doc.Data), Method: extract.MethodPlain}, nil
}

func TestPool_ReturnsResult(t *testing.T) {
	p := NewPool(&fakeExtractor{}, discardLogger(), WithWorkers(2))
	t.Cleanup(func() { p.Shutdown(context.Background()) })

	res, err := p.Extract(context.Background(), extract.Document{Data: []byte("resume text here")})
	require.NoError(t, err)
	assert.Equal(t, "resume text here", res.Text)
}

func TestPool_PropagatesError(t *testing.T) {
	want := common.NewExtractionError("manual", errors.New("nope"))
	p := NewPool(&fakeExtractor{err: want}, discardLogger())
	t.Cleanup(func() { p.Shutdown(context.Background()) })

	_, err := p.Extract(context.Background(), extract.Document{Data: []byte("x")})
	assert.Same(t, want, err)
}

func TestPool_BoundsConcurrency(t *testing.T) {
	ex := &fakeExtractor{delay: 20 * time.Millisecond}
	p := NewPool(ex, discardLogger(), WithWorkers(2), WithQueueSize(1))
	t.Cleanup(func() { p.Shutdown(context.Background()) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.Extract(context.Background(), extract.Document{Data: []byte("x")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, ex.peak.Load(), int32(2))
}

func TestPool_JobTimeout(t *testing.T) {
	p := NewPool(&fakeExtractor{delay: time.Second}, discardLogger(), WithProcessTimeout(10*time.Millisecond))
	t.Cleanup(func() { p.Shutdown(context.Background()) })

	_, err := p.Extract(context.Background(), extract.Document{Data: []byte("x")})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPool_ClosedRejects(t *testing.T) {
	p := NewPool(&fakeExtractor{}, discardLogger())
	p.Shutdown(context.Background())
	p.Shutdown(context.Background())

	_, err := p.Extract(context.Background(), extract.Document{Data: []byte("x")})
	assert.ErrorIs(t, err, ErrPoolClosed)
}
