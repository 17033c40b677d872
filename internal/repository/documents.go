package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/gen/ent"
	entdoc "github.com/docufield/docufield/gen/ent/document"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

// CreateDocumentRequest wraps parameters for registering an upload.
type CreateDocumentRequest struct {
	Filename    string
	SourceType  constants.SourceType
	StoragePath string
	ContentHash []byte
	UploadedBy  string
}

type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Transition applies from -> to as a conditional single-row update.
	// A row whose status is no longer `from` is not touched and the call
	// fails with ErrStaleStateTransition.
	Transition(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) error
	ListByStatus(ctx context.Context, status constants.DocStatus) ([]*entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetFilename(req.Filename).
		SetSourceType(string(req.SourceType)).
		SetStatus(string(constants.StatusUploaded)).
		SetStoragePath(req.StoragePath).
		SetContentHash(req.ContentHash).
		SetUploadedBy(req.UploadedBy).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", req.Filename, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "filename", row.Filename, "source_type", row.SourceType)
	return toDocument(row), nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Document.Query().Where(entdoc.ID(id)).Exist(ctx)
}

func (r *documentRepo) Transition(ctx context.Context, id uuid.UUID, from, to constants.DocStatus) error {
	if !constants.CanTransition(from, to) {
		r.logger.Error("illegal status transition requested", "document_id", id, "from", from, "to", to)
		return common.ErrStaleStateTransition
	}
	n, err := r.ent.Document.Update().
		Where(entdoc.ID(id), entdoc.Status(string(from))).
		SetStatus(string(to)).
		Save(ctx)
	if err != nil {
		r.logger.Error("status transition failed", "document_id", id, "from", from, "to", to, "error", err)
		return err
	}
	if n == 0 {
		// either the document is gone or another run moved it first
		r.logger.Warn("stale status transition rejected", "document_id", id, "from", from, "to", to)
		return common.ErrStaleStateTransition
	}
	r.logger.Info("document status advanced", "document_id", id, "from", from, "to", to)
	return nil
}

func (r *documentRepo) ListByStatus(ctx context.Context, status constants.DocStatus) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.Status(string(status))).
		Order(ent.Asc(entdoc.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "status", status, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toDocument(row)
	}
	return out, nil
}
