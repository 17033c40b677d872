package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/gen/ent"
	entres "github.com/docufield/docufield/gen/ent/extractionresult"
	entver "github.com/docufield/docufield/gen/ent/verificationrecord"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

// CreateResultRequest wraps parameters for persisting one extracted field.
type CreateResultRequest struct {
	DocumentID      uuid.UUID
	FieldDefID      int
	ValueRaw        string
	NormalizedValue string
	Confidence      float64
	PageNum         *int
	BBox            *[4]float64
	ModelName       string
	ModelVersion    string
	PromptVersion   int
}

// VerificationWrite describes the atomic ledger write: the record itself plus
// whether the referenced result is revised alongside it.
type VerificationWrite struct {
	Record             *entity.VerificationRecord
	OverrideNormalized *string // non-nil: overwrite normalized_value in the same Tx
	MarkVerified       bool
}

type ResultRepository interface {
	Create(ctx context.Context, req *CreateResultRequest) (*entity.ExtractionResult, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionResult, error)
	// ListByDocument returns full history, newest first.
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionResult, error)
	// LatestByDocument returns the authoritative row per field: newest by
	// created_at.
	LatestByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionResult, error)
	// AppendVerification inserts the record and applies the revision in one
	// transaction; both happen or neither does.
	AppendVerification(ctx context.Context, w *VerificationWrite) (*entity.VerificationRecord, error)
	ListVerifications(ctx context.Context, resultID uuid.UUID) ([]*entity.VerificationRecord, error)
}

type resultRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewResultRepository(entc *ent.Client, logger *slog.Logger) ResultRepository {
	return &resultRepo{ent: entc, logger: logger}
}

func (r *resultRepo) Create(ctx context.Context, req *CreateResultRequest) (*entity.ExtractionResult, error) {
	b := r.ent.ExtractionResult.Create().
		SetDocumentID(req.DocumentID).
		SetFieldDefID(req.FieldDefID).
		SetValueRaw(req.ValueRaw).
		SetNormalizedValue(req.NormalizedValue).
		SetConfidence(req.Confidence).
		SetModelName(req.ModelName).
		SetModelVersion(req.ModelVersion).
		SetPromptVersion(req.PromptVersion)
	if req.PageNum != nil {
		b = b.SetPageNum(*req.PageNum)
	}
	if req.BBox != nil {
		if raw, err := json.Marshal(req.BBox); err == nil {
			b = b.SetBbox(raw)
		}
	}
	row, err := b.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create extraction result",
			"document_id", req.DocumentID, "field_def_id", req.FieldDefID, "error", err)
		return nil, err
	}
	return toResult(row), nil
}

func (r *resultRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExtractionResult, error) {
	row, err := r.ent.ExtractionResult.Query().
		Where(entres.ID(id)).
		WithFieldDef().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toResult(row), nil
}

func (r *resultRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionResult, error) {
	rows, err := r.ent.ExtractionResult.Query().
		Where(entres.DocumentID(documentID)).
		WithFieldDef().
		Order(ent.Desc(entres.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list extraction results", "document_id", documentID, "error", err)
		return nil, err
	}
	out := make([]*entity.ExtractionResult, len(rows))
	for i, row := range rows {
		out[i] = toResult(row)
	}
	return out, nil
}

func (r *resultRepo) LatestByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.ExtractionResult, error) {
	all, err := r.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	// rows come newest-first; the first row seen per field wins
	seen := make(map[int]struct{}, len(all))
	var out []*entity.ExtractionResult
	for _, res := range all {
		if _, ok := seen[res.FieldDefID]; ok {
			continue
		}
		seen[res.FieldDefID] = struct{}{}
		out = append(out, res)
	}
	return out, nil
}

func (r *resultRepo) AppendVerification(ctx context.Context, w *VerificationWrite) (*entity.VerificationRecord, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rec := w.Record
	row, err := tx.VerificationRecord.Create().
		SetResultID(rec.ResultID).
		SetVerifier(rec.Verifier).
		SetAction(string(rec.Action)).
		SetCorrectedValue(rec.CorrectedValue).
		SetComment(rec.Comment).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to append verification record", "result_id", rec.ResultID, "error", err)
		return nil, err
	}

	if w.OverrideNormalized != nil || w.MarkVerified {
		upd := tx.ExtractionResult.UpdateOneID(rec.ResultID)
		if w.OverrideNormalized != nil {
			upd = upd.SetNormalizedValue(*w.OverrideNormalized)
		}
		if w.MarkVerified {
			upd = upd.SetVerified(true)
		}
		if _, err = upd.Save(ctx); err != nil {
			if ent.IsNotFound(err) {
				err = common.ErrNotFound
			}
			r.logger.Error("failed to revise extraction result", "result_id", rec.ResultID, "error", err)
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("verification recorded",
		"result_id", rec.ResultID, "action", rec.Action, "verifier", rec.Verifier)
	return toVerification(row), nil
}

func (r *resultRepo) ListVerifications(ctx context.Context, resultID uuid.UUID) ([]*entity.VerificationRecord, error) {
	rows, err := r.ent.VerificationRecord.Query().
		Where(entver.ResultID(resultID)).
		Order(ent.Asc(entver.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.VerificationRecord, len(rows))
	for i, row := range rows {
		out[i] = toVerification(row)
	}
	return out, nil
}
