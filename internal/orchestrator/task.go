// Package orchestrator runs pipeline stages asynchronously on a bounded
// worker queue. At most one stage is in flight per document; a second trigger
// is rejected rather than queued behind the first.
package orchestrator

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Stage names the pipeline stage a task runs.
type Stage string

const (
	StagePreprocess Stage = "preprocess"
	StageExtract    Stage = "extract"
)

// Task is one unit of asynchronous work.
type Task struct {
	DocumentID  uuid.UUID
	Stage       Stage
	TemplateID  *uuid.UUID // extract only; nil means the active template
	SubmittedAt time.Time
}

// Runner executes one task synchronously. The queue owns timeouts and
// concurrency; runners own semantics.
type Runner interface {
	Run(ctx context.Context, task Task) error
}
