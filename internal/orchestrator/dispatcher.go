package orchestrator

import (
	"context"
	"fmt"

	"github.com/docufield/docufield/internal/pipeline/extractfields"
	"github.com/docufield/docufield/internal/pipeline/preprocess"
)

// Dispatcher routes tasks to the concrete pipeline stages.
type Dispatcher struct {
	Preprocess *preprocess.Pipeline
	Extract    *extractfields.Pipeline
}

func NewDispatcher(pre *preprocess.Pipeline, ext *extractfields.Pipeline) *Dispatcher {
	return &Dispatcher{Preprocess: pre, Extract: ext}
}

func (d *Dispatcher) Run(ctx context.Context, task Task) error {
	switch task.Stage {
	case StagePreprocess:
		return d.Preprocess.Run(ctx, task.DocumentID)
	case StageExtract:
		_, err := d.Extract.Run(ctx, task.DocumentID, task.TemplateID)
		return err
	default:
		return fmt.Errorf("unknown stage %q", task.Stage)
	}
}
