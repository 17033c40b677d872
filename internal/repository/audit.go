package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/gen/ent"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/entity"
)

// AuditRepository persists audit and system log rows for the external
// audit/log collaborator to query.
type AuditRepository interface {
	InsertAudit(ctx context.Context, ev *entity.AuditEvent) error
	InsertSystem(ctx context.Context, ev *entity.SystemEvent) error
}

type auditRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(entc *ent.Client, logger *slog.Logger) AuditRepository {
	return &auditRepo{ent: entc, logger: logger}
}

func (r *auditRepo) InsertAudit(ctx context.Context, ev *entity.AuditEvent) error {
	_, err := r.ent.AuditLog.Create().
		SetActor(ev.Actor).
		SetAction(string(ev.Action)).
		SetEntityKind(string(ev.EntityKind)).
		SetEntityID(ev.EntityID).
		SetDetails(ev.Details).
		SetPromptText(ev.PromptText).
		SetModelResponse(ev.ModelResponse).
		Save(ctx)
	if err != nil {
		// audit writes must never take the pipeline down with them
		r.logger.Error("failed to insert audit log", "action", ev.Action, "entity_kind", ev.EntityKind, "error", err)
	}
	return err
}

func (r *auditRepo) InsertSystem(ctx context.Context, ev *entity.SystemEvent) error {
	_, err := r.ent.SystemLog.Create().
		SetLevel(string(ev.Level)).
		SetMessage(ev.Message).
		SetSource(ev.Source).
		SetContext(ev.Context).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert system log", "source", ev.Source, "error", err)
	}
	return err
}

// dbRecorder implements audit.Recorder on top of the audit tables.
type dbRecorder struct {
	repo   AuditRepository
	logger *slog.Logger
}

// NewRecorder returns the database-backed audit recorder.
func NewRecorder(repo AuditRepository, logger *slog.Logger) audit.Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &dbRecorder{repo: repo, logger: logger}
}

func (r *dbRecorder) Audit(ctx context.Context, ev *entity.AuditEvent) {
	_ = r.repo.InsertAudit(ctx, ev)
}

func (r *dbRecorder) System(ctx context.Context, level constants.LogLevel, source, message string, context map[string]any) {
	var raw json.RawMessage
	if context != nil {
		if b, err := json.Marshal(context); err == nil {
			raw = b
		}
	}
	_ = r.repo.InsertSystem(ctx, &entity.SystemEvent{
		Level:   level,
		Message: message,
		Source:  source,
		Context: raw,
	})
}
