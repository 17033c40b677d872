package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docufield/docufield/internal/common"
)

// blockingRunner holds every task until released.
type blockingRunner struct {
	started chan uuid.UUID
	release chan struct{}
	runs    atomic.Int64
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{
		started: make(chan uuid.UUID, 16),
		release: make(chan struct{}),
	}
}

func (r *blockingRunner) Run(ctx context.Context, task Task) error {
	r.runs.Add(1)
	r.started <- task.DocumentID
	select {
	case <-r.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestEnqueueRejectsSecondStageForSameDocument(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, nil, WithWorkers(2))
	defer func() {
		close(runner.release)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		q.Shutdown(shutdownCtx)
	}()

	docID := uuid.New()
	if err := q.Enqueue(context.Background(), Task{DocumentID: docID, Stage: StagePreprocess}); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	<-runner.started // stage is running now

	err := q.Enqueue(context.Background(), Task{DocumentID: docID, Stage: StageExtract})
	if !errors.Is(err, common.ErrStageAlreadyRunning) {
		t.Fatalf("expected ErrStageAlreadyRunning, got %v", err)
	}
	if !q.InFlight(docID) {
		t.Errorf("document should report in flight")
	}

	// a different document is not blocked
	if err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New(), Stage: StagePreprocess}); err != nil {
		t.Errorf("unrelated document rejected: %v", err)
	}
}

func TestDocumentReleasedAfterCompletion(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, nil, WithWorkers(1))

	docID := uuid.New()
	if err := q.Enqueue(context.Background(), Task{DocumentID: docID, Stage: StagePreprocess}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	<-runner.started
	close(runner.release)

	// wait for the worker to release the document
	deadline := time.After(2 * time.Second)
	for q.InFlight(docID) {
		select {
		case <-deadline:
			t.Fatal("document never released")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if err := q.Enqueue(context.Background(), Task{DocumentID: docID, Stage: StageExtract}); err != nil {
		t.Fatalf("re-enqueue after completion: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)
	if got := runner.runs.Load(); got != 2 {
		t.Errorf("expected 2 runs, got %d", got)
	}
}

func TestStageTimeoutCancelsRun(t *testing.T) {
	runner := newBlockingRunner() // never released: only the timeout ends it
	q := NewQueue(runner, nil, WithWorkers(1), WithStageTimeout(20*time.Millisecond))

	docID := uuid.New()
	if err := q.Enqueue(context.Background(), Task{DocumentID: docID, Stage: StagePreprocess}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	<-runner.started

	deadline := time.After(2 * time.Second)
	for q.InFlight(docID) {
		select {
		case <-deadline:
			t.Fatal("timed-out task never released")
		case <-time.After(5 * time.Millisecond):
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)
}

func TestShutdownStopsIntake(t *testing.T) {
	runner := newBlockingRunner()
	close(runner.release)
	q := NewQueue(runner, nil, WithWorkers(1))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(shutdownCtx)

	if err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New(), Stage: StagePreprocess}); err == nil {
		t.Fatal("enqueue after shutdown must fail")
	}
}

func TestShutdownWaitsForBackpressuredSend(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, nil, WithWorkers(1), WithQueueSize(1))

	// occupy the worker and fill the single queue slot
	if err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New(), Stage: StagePreprocess}); err != nil {
		t.Fatalf("enqueue running task: %v", err)
	}
	<-runner.started
	if err := q.Enqueue(context.Background(), Task{DocumentID: uuid.New(), Stage: StagePreprocess}); err != nil {
		t.Fatalf("enqueue queued task: %v", err)
	}

	// third producer blocks in the backpressure send
	sendDone := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				sendDone <- fmt.Errorf("enqueue panicked: %v", r)
			}
		}()
		sendDone <- q.Enqueue(context.Background(), Task{DocumentID: uuid.New(), Stage: StagePreprocess})
	}()
	time.Sleep(20 * time.Millisecond) // let it reach the send

	shutdownRet := make(chan struct{})
	go func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		q.Shutdown(shutdownCtx)
		close(shutdownRet)
	}()
	time.Sleep(20 * time.Millisecond)
	close(runner.release) // workers drain, the blocked send completes

	select {
	case err := <-sendDone:
		if err != nil {
			t.Fatalf("backpressured enqueue: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("backpressured enqueue never returned")
	}
	select {
	case <-shutdownRet:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown never returned")
	}
	if got := runner.runs.Load(); got != 3 {
		t.Errorf("expected all 3 accepted tasks to run, got %d", got)
	}
}

func TestConcurrentEnqueueSingleWinner(t *testing.T) {
	runner := newBlockingRunner()
	q := NewQueue(runner, nil, WithWorkers(4))
	defer func() {
		close(runner.release)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		q.Shutdown(shutdownCtx)
	}()

	docID := uuid.New()
	var wg sync.WaitGroup
	var accepted atomic.Int64
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := q.Enqueue(context.Background(), Task{DocumentID: docID, Stage: StagePreprocess}); err == nil {
				accepted.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := accepted.Load(); got != 1 {
		t.Fatalf("expected exactly 1 accepted trigger, got %d", got)
	}
}
