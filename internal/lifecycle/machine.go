// Package lifecycle drives document status transitions. Every move goes
// through the edge set in constants and lands in the audit trail; the
// conditional update underneath rejects stale transitions under concurrency.
package lifecycle

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

// DocumentTransitioner is the slice of the document repository the machine
// needs: a compare-and-swap on status.
type DocumentTransitioner interface {
	Transition(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) error
}

type Machine struct {
	docs     DocumentTransitioner
	recorder audit.Recorder
	logger   *slog.Logger
}

func NewMachine(docs DocumentTransitioner, recorder audit.Recorder, logger *slog.Logger) *Machine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{docs: docs, recorder: recorder, logger: logger}
}

// Move transitions one document from -> to. Illegal edges fail before
// touching the database; legal edges can still lose the race and come back
// as ErrStaleStateTransition.
func (m *Machine) Move(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) error {
	if !constants.CanTransition(from, to) {
		m.logger.Warn("illegal status transition rejected",
			"document_id", id, "from", from, "to", to)
		return common.ErrStaleStateTransition
	}
	if err := m.docs.Transition(ctx, id, from, to); err != nil {
		m.logger.Error("status transition failed",
			"document_id", id, "from", from, "to", to, "error", err)
		return err
	}

	m.logger.Info("document status changed", "document_id", id, "from", from, "to", to)
	m.recorder.Audit(ctx, &entity.AuditEvent{
		Actor:      "system",
		Action:     constants.AuditUpdate,
		EntityKind: constants.EntityDocument,
		EntityID:   id.String(),
		Details:    audit.Details(map[string]any{"from": string(from), "to": string(to)}),
	})
	return nil
}

// Fail moves a document into failed from whichever in-flight status it holds.
func (m *Machine) Fail(ctx context.Context, id uuid.UUID, from constants.DocStatus) error {
	return m.Move(ctx, id, from, constants.StatusFailed)
}

// ResetToPending re-arms a document that finished or failed so the pipeline
// can run it again.
func (m *Machine) ResetToPending(ctx context.Context, id uuid.UUID, from constants.DocStatus) error {
	return m.Move(ctx, id, from, constants.StatusPending)
}
