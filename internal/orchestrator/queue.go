package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docufield/docufield/internal/common"
)

type Queue struct {
	runner  Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Task
	wg   sync.WaitGroup
	once sync.Once

	mu        sync.Mutex
	closed    bool
	producers sync.WaitGroup // pending channel sends; close(ch) waits on this
	inflight  map[uuid.UUID]Stage
}

type Option func(*Queue)

func WithWorkers(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *Queue) {
		if n > 0 {
			q.ch = make(chan Task, n)
		}
	}
}
func WithStageTimeout(d time.Duration) Option {
	return func(q *Queue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewQueue(runner Runner, logger *slog.Logger, opts ...Option) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &Queue{
		runner:   runner,
		logger:   logger,
		workers:  4,
		timeout:  3 * time.Minute,
		ch:       make(chan Task, 256),
		inflight: make(map[uuid.UUID]Stage),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *Queue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for task := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.runner.Run(ctx, task)
					cancel()
					q.release(task.DocumentID)

					if err != nil {
						q.logger.Error("stage failed",
							"worker_id", workerID, "document_id", task.DocumentID,
							"stage", task.Stage, "error", err)
					} else {
						q.logger.Info("stage completed",
							"worker_id", workerID, "document_id", task.DocumentID,
							"stage", task.Stage,
							"wait_ms", time.Since(task.SubmittedAt).Milliseconds())
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue admits one task per document at a time. A document whose stage is
// still queued or running rejects further triggers with
// ErrStageAlreadyRunning.
func (q *Queue) Enqueue(_ context.Context, task Task) error {
	if task.SubmittedAt.IsZero() {
		task.SubmittedAt = time.Now()
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", task.DocumentID)
		return common.ErrInternal
	}
	if stage, busy := q.inflight[task.DocumentID]; busy {
		q.mu.Unlock()
		q.logger.Warn("stage already in flight",
			"document_id", task.DocumentID, "running", stage, "requested", task.Stage)
		return common.ErrStageAlreadyRunning
	}
	q.inflight[task.DocumentID] = task.Stage
	// registered before closed can flip, so Shutdown waits for this send
	// instead of closing the channel underneath it
	q.producers.Add(1)
	q.mu.Unlock()
	defer q.producers.Done()

	select {
	case q.ch <- task:
		q.logger.Info("task queued", "document_id", task.DocumentID, "stage", task.Stage)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", task.DocumentID)
		q.ch <- task
	}
	return nil
}

func (q *Queue) release(documentID uuid.UUID) {
	q.mu.Lock()
	delete(q.inflight, documentID)
	q.mu.Unlock()
}

// InFlight reports whether a stage is queued or running for the document.
func (q *Queue) InFlight(documentID uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	_, busy := q.inflight[documentID]
	return busy
}

// Shutdown stops intake and waits for in-flight tasks, bounded by ctx.
// Producers already past the closed check finish their sends before the
// channel closes; workers keep draining until then.
func (q *Queue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		q.producers.Wait()
		close(q.ch)
		q.wg.Wait()
	}()

	select {
	case <-done:
		q.logger.Info("queue drained")
	case <-ctx.Done():
		q.logger.Warn("shutdown deadline hit with tasks still running")
	}
}
