// Package preprocess is the first pipeline stage: it runs the format adapter
// for a document and persists the resulting pages and artifacts.
package preprocess

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/adapter"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/lifecycle"
	"github.com/docufield/docufield/internal/repository"
	"github.com/docufield/docufield/internal/storage"
)

const source = "preprocess"

type Pipeline struct {
	Docs     repository.DocumentRepository
	Pages    repository.PageRepository
	Adapters *adapter.Registry
	Store    *storage.Store
	Machine  *lifecycle.Machine
	Recorder audit.Recorder
	Log      *slog.Logger
}

func NewPipeline(docs repository.DocumentRepository, pages repository.PageRepository, adapters *adapter.Registry, store *storage.Store, machine *lifecycle.Machine, recorder audit.Recorder, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		Docs:     docs,
		Pages:    pages,
		Adapters: adapters,
		Store:    store,
		Machine:  machine,
		Recorder: recorder,
		Log:      log,
	}
}

// Run moves the document into processing, extracts pages and lands on
// preprocessed or failed. A lost status race aborts before any work runs.
func (p *Pipeline) Run(ctx context.Context, documentID uuid.UUID) error {
	doc, err := p.Docs.GetByID(ctx, documentID)
	if err != nil {
		return fmt.Errorf("get document: %w", err)
	}

	from := doc.Status
	if err := p.Machine.Move(ctx, documentID, from, constants.StatusProcessing); err != nil {
		return err
	}

	if from == constants.StatusPending {
		// retry: stale pages and artifacts from the previous run go away so
		// page_num stays contiguous from 1
		n, err := p.Pages.DeleteByDocument(ctx, documentID)
		if err != nil {
			// leaving stale rows behind would trip the page uniqueness
			// constraint mid-batch, so the stage fails here
			return p.fail(ctx, documentID, err, map[string]any{
				"document_id": documentID.String(),
				"error":       err.Error(),
			})
		}
		if n > 0 {
			p.Log.Info("stale pages deleted before retry", "document_id", documentID, "count", n)
		}
		if err := p.Store.ClearPageDir(documentID); err != nil {
			p.Log.Warn("failed to clear page dir", "document_id", documentID, "error", err)
		}
	}

	ext, err := p.Adapters.ForSourceType(doc.SourceType)
	if err != nil {
		return p.fail(ctx, documentID, err, map[string]any{
			"document_id": documentID.String(),
			"source_type": string(doc.SourceType),
		})
	}

	res, err := ext.ExtractPages(ctx, documentID, p.Store.Abs(doc.StoragePath))
	if err != nil {
		return p.fail(ctx, documentID, err, map[string]any{
			"document_id": documentID.String(),
			"filename":    doc.Filename,
			"error":       err.Error(),
		})
	}
	for _, w := range res.Warnings {
		p.Recorder.System(ctx, constants.LevelWarning, source, w,
			map[string]any{"document_id": documentID.String()})
	}

	if err := p.Pages.CreateBatch(ctx, documentID, res.Pages); err != nil {
		return p.fail(ctx, documentID, err, map[string]any{
			"document_id": documentID.String(),
			"error":       err.Error(),
		})
	}

	if err := p.Machine.Move(ctx, documentID, constants.StatusProcessing, constants.StatusPreprocessed); err != nil {
		return err
	}
	p.Log.Info("document preprocessed",
		"document_id", documentID, "filename", doc.Filename, "pages", len(res.Pages))
	return nil
}

func (p *Pipeline) fail(ctx context.Context, documentID uuid.UUID, cause error, details map[string]any) error {
	if err := p.Machine.Fail(ctx, documentID, constants.StatusProcessing); err != nil {
		p.Log.Error("failed to mark document failed", "document_id", documentID, "error", err)
	}
	p.Recorder.System(ctx, constants.LevelError, source, "preprocessing failed", details)
	return cause
}
