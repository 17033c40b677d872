package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/gen/ent"
	entpage "github.com/docufield/docufield/gen/ent/documentpage"
	"github.com/docufield/docufield/internal/entity"
)

type PageRepository interface {
	// CreateBatch persists adapter output in page_num order.
	CreateBatch(ctx context.Context, documentID uuid.UUID, pages []*entity.Page) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Page, error)
	// DeleteByDocument clears stale pages before a preprocess retry so the
	// page_num sequence stays contiguous from 1.
	DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error)
}

type pageRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewPageRepository(entc *ent.Client, logger *slog.Logger) PageRepository {
	return &pageRepo{ent: entc, logger: logger}
}

func (r *pageRepo) CreateBatch(ctx context.Context, documentID uuid.UUID, pages []*entity.Page) error {
	builders := make([]*ent.DocumentPageCreate, len(pages))
	for i, p := range pages {
		b := r.ent.DocumentPage.Create().
			SetDocumentID(documentID).
			SetPageNum(p.PageNum).
			SetText(p.Text).
			SetImagePath(p.ImagePath)
		if len(p.Layout) > 0 {
			if raw, err := json.Marshal(p.Layout); err == nil {
				b = b.SetLayout(raw)
			}
		}
		builders[i] = b
	}
	if _, err := r.ent.DocumentPage.CreateBulk(builders...).Save(ctx); err != nil {
		r.logger.Error("failed to persist pages", "document_id", documentID, "pages", len(pages), "error", err)
		return err
	}
	r.logger.Info("pages persisted", "document_id", documentID, "pages", len(pages))
	return nil
}

func (r *pageRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.Page, error) {
	rows, err := r.ent.DocumentPage.Query().
		Where(entpage.DocumentID(documentID)).
		Order(ent.Asc(entpage.FieldPageNum)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pages", "document_id", documentID, "error", err)
		return nil, err
	}
	out := make([]*entity.Page, len(rows))
	for i, row := range rows {
		out[i] = toPage(row)
	}
	return out, nil
}

func (r *pageRepo) DeleteByDocument(ctx context.Context, documentID uuid.UUID) (int, error) {
	n, err := r.ent.DocumentPage.Delete().
		Where(entpage.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete stale pages", "document_id", documentID, "error", err)
		return 0, err
	}
	if n > 0 {
		r.logger.Info("stale pages cleared", "document_id", documentID, "deleted", n)
	}
	return n, nil
}
