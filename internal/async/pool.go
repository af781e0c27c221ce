package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/extract"
)

var ErrPoolClosed = errors.New("extraction pool is shutting down")

// Extractor is the work the pool runs. *extract.Orchestrator satisfies it.
type Extractor interface {
	Extract(ctx context.Context, doc extract.Document) (extract.Result, error)
}

type outcome struct {
	res extract.Result
	err error
}

// Job is one queued upload.
type Job struct {
	ReqID       string
	Doc         extract.Document
	SubmittedAt time.Time

	ctx   context.Context
	reply chan outcome
}

// Pool bounds how many extraction cascades run at once. Callers block in
// Extract until a worker has finished their document.
type Pool struct {
	ex      Extractor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.RWMutex
	closed bool
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewPool(ex Extractor, logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		ex:      ex,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(p)
	}
	p.start()
	return p
}

func (p *Pool) start() {
	p.once.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func(workerID int) {
				defer p.wg.Done()
				p.logger.Debug("async.worker.started", "worker_id", workerID)
				for job := range p.ch {
					p.run(workerID, job)
				}
				p.logger.Debug("async.worker.stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (p *Pool) run(workerID int, job Job) {
	if err := job.ctx.Err(); err != nil {
		job.reply <- outcome{err: err}
		return
	}
	ctx, cancel := context.WithTimeout(job.ctx, p.timeout)
	defer cancel()

	waited := time.Since(job.SubmittedAt)
	res, err := p.ex.Extract(ctx, job.Doc)
	if err != nil {
		p.logger.Warn("async.job.failed",
			"worker_id", workerID, "req_id", job.ReqID, "error", err,
			"queued_ms", waited.Milliseconds(),
		)
	} else {
		p.logger.Info("async.job.done",
			"worker_id", workerID, "req_id", job.ReqID, "method", res.Method,
			"queued_ms", waited.Milliseconds(),
		)
	}
	job.reply <- outcome{res: res, err: err}
}

// Extract queues doc and waits for its result. It blocks while the queue is
// full and gives up when ctx ends.
func (p *Pool) Extract(ctx context.Context, doc extract.Document) (extract.Result, error) {
	ctx, rid := common.EnsureRequestID(ctx)
	job := Job{
		ReqID:       rid,
		Doc:         doc,
		SubmittedAt: time.Now(),
		ctx:         ctx,
		reply:       make(chan outcome, 1),
	}

	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		p.logger.Warn("async.enqueue.closed", "req_id", rid)
		return extract.Result{}, ErrPoolClosed
	}
	select {
	case p.ch <- job:
	default:
		p.logger.Warn("async.enqueue.backpressure", "req_id", rid, "queued", len(p.ch))
		select {
		case p.ch <- job:
		case <-ctx.Done():
			p.mu.RUnlock()
			return extract.Result{}, ctx.Err()
		}
	}
	p.mu.RUnlock()

	select {
	case out := <-job.reply:
		return out.res, out.err
	case <-ctx.Done():
		return extract.Result{}, ctx.Err()
	}
}

// Shutdown stops accepting work and waits for queued jobs to drain.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.ch)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("async.shutdown.interrupted")
	case <-done:
		p.logger.Info("async.shutdown.drained")
	}
}
