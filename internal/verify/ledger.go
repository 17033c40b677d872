// Package verify is the append-only human review ledger over extraction
// results. Review never edits a result row's extracted value; a modify action
// revises the normalized value in the same transaction as the record insert.
package verify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/repository"
)

// Request is one review decision.
type Request struct {
	ResultID       uuid.UUID
	Verifier       string
	Action         constants.VerifyAction
	CorrectedValue string // modify only
	Comment        string
}

type Ledger struct {
	Results  repository.ResultRepository
	Recorder audit.Recorder
	Log      *slog.Logger
}

func NewLedger(results repository.ResultRepository, recorder audit.Recorder, log *slog.Logger) *Ledger {
	if log == nil {
		log = slog.Default()
	}
	return &Ledger{Results: results, Recorder: recorder, Log: log}
}

// Record appends one verification record and applies its side effects:
// accept marks the result verified, modify additionally overrides the
// normalized value, reject touches nothing beyond the record itself.
func (l *Ledger) Record(ctx context.Context, req *Request) (*entity.VerificationRecord, error) {
	if err := l.validate(req); err != nil {
		return nil, err
	}
	if _, err := l.Results.GetByID(ctx, req.ResultID); err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	w := &repository.VerificationWrite{
		Record: &entity.VerificationRecord{
			ResultID:       req.ResultID,
			Verifier:       req.Verifier,
			Action:         req.Action,
			CorrectedValue: req.CorrectedValue,
			Comment:        req.Comment,
		},
	}
	switch req.Action {
	case constants.VerifyAccept:
		w.MarkVerified = true
	case constants.VerifyModify:
		w.MarkVerified = true
		w.OverrideNormalized = &req.CorrectedValue
	case constants.VerifyReject:
		// record only
	}

	rec, err := l.Results.AppendVerification(ctx, w)
	if err != nil {
		return nil, err
	}

	l.Recorder.Audit(ctx, &entity.AuditEvent{
		Actor:      req.Verifier,
		Action:     constants.AuditVerify,
		EntityKind: constants.EntityVerification,
		EntityID:   rec.ID.String(),
		Details: audit.Details(map[string]any{
			"result_id":       req.ResultID.String(),
			"action":          string(req.Action),
			"corrected_value": req.CorrectedValue,
		}),
	})
	return rec, nil
}

// History returns the full record trail for a result, oldest first.
func (l *Ledger) History(ctx context.Context, resultID uuid.UUID) ([]*entity.VerificationRecord, error) {
	return l.Results.ListVerifications(ctx, resultID)
}

func (l *Ledger) validate(req *Request) error {
	if req.Verifier == "" {
		return &common.AppError{Code: "INVALID_INPUT", Message: "verifier is required", Cause: common.ErrInvalidInput}
	}
	valid := false
	for _, a := range constants.VerifyActions {
		if string(req.Action) == a {
			valid = true
			break
		}
	}
	if !valid {
		return &common.AppError{Code: "INVALID_INPUT", Message: fmt.Sprintf("unknown action %q", req.Action), Cause: common.ErrInvalidInput}
	}
	if req.Action == constants.VerifyModify && req.CorrectedValue == "" {
		return &common.AppError{Code: "INVALID_INPUT", Message: "modify requires a corrected value", Cause: common.ErrInvalidInput}
	}
	return nil
}
