package server

import (
	"context"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	v1 "github.com/docufield/docufield/gen/proto/docufield/v1"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/orchestrator"
	"github.com/docufield/docufield/internal/repository"
)

func (s *DocuFieldService) CreateDocument(ctx context.Context, req *v1.CreateDocumentRequest) (*v1.CreateDocumentResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	rel, hash, err := s.store.SaveUpload(filename, req.GetContent())
	if err != nil {
		s.logger.Error("failed to store upload", "filename", filename, "error", err)
		return nil, common.InternalError("failed to store upload")
	}

	doc, err := s.docs.Create(ctx, &repository.CreateDocumentRequest{
		Filename:    filename,
		SourceType:  constants.MapExtToSource(ext),
		StoragePath: rel,
		ContentHash: hash,
		UploadedBy:  req.GetUploadedBy(),
	})
	if err != nil {
		s.logger.Error("failed to create document", "filename", filename, "error", err)
		return nil, common.ToStatusError(err)
	}

	s.recorder.Audit(ctx, &entity.AuditEvent{
		Actor:      req.GetUploadedBy(),
		Action:     constants.AuditUpload,
		EntityKind: constants.EntityDocument,
		EntityID:   doc.ID.String(),
		Details: audit.Details(map[string]any{
			"filename":    filename,
			"source_type": string(doc.SourceType),
			"bytes":       len(req.GetContent()),
		}),
	})

	resp := &v1.CreateDocumentResponse{Document: toProtoDocument(doc)}
	if req.GetAutoPreprocess() {
		if err := s.queue.Enqueue(ctx, orchestrator.Task{
			DocumentID: doc.ID,
			Stage:      orchestrator.StagePreprocess,
		}); err != nil {
			s.logger.Warn("auto preprocess not queued", "document_id", doc.ID, "error", err)
		} else {
			resp.PreprocessQueued = true
		}
	}
	return resp, nil
}

func (s *DocuFieldService) GetDocument(ctx context.Context, req *v1.GetDocumentRequest) (*v1.GetDocumentResponse, error) {
	id, err := parseUUID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	pages, err := s.pages.ListByDocument(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.GetDocumentResponse{
		Document:  toProtoDocument(doc),
		PageCount: int32(len(pages)),
	}, nil
}

func (s *DocuFieldService) TriggerPreprocess(ctx context.Context, req *v1.TriggerPreprocessRequest) (*v1.TriggerResponse, error) {
	id, err := parseUUID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	if exists, err := s.docs.Exists(ctx, id); err != nil || !exists {
		return nil, common.NotFoundError("document not found")
	}
	if err := s.queue.Enqueue(ctx, orchestrator.Task{
		DocumentID: id,
		Stage:      orchestrator.StagePreprocess,
	}); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.TriggerResponse{
		DocumentId: id.String(),
		Stage:      string(orchestrator.StagePreprocess),
		Queued:     true,
	}, nil
}

func (s *DocuFieldService) TriggerExtract(ctx context.Context, req *v1.TriggerExtractRequest) (*v1.TriggerResponse, error) {
	id, err := parseUUID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	if exists, err := s.docs.Exists(ctx, id); err != nil || !exists {
		return nil, common.NotFoundError("document not found")
	}

	var templateID *uuid.UUID
	if raw := strings.TrimSpace(req.GetTemplateId()); raw != "" {
		tid, err := parseUUID("template_id", raw)
		if err != nil {
			return nil, err
		}
		templateID = &tid
	}

	if err := s.queue.Enqueue(ctx, orchestrator.Task{
		DocumentID: id,
		Stage:      orchestrator.StageExtract,
		TemplateID: templateID,
	}); err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.TriggerResponse{
		DocumentId: id.String(),
		Stage:      string(orchestrator.StageExtract),
		Queued:     true,
	}, nil
}

func (s *DocuFieldService) ResetToPending(ctx context.Context, req *v1.ResetToPendingRequest) (*v1.ResetToPendingResponse, error) {
	id, err := parseUUID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	if s.queue.InFlight(id) {
		return nil, common.ConflictError("a stage run is active for this document")
	}
	if err := s.machine.ResetToPending(ctx, id, doc.Status); err != nil {
		return nil, common.ToStatusError(err)
	}
	doc.Status = constants.StatusPending
	return &v1.ResetToPendingResponse{Document: toProtoDocument(doc)}, nil
}

func parseUUID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

func toProtoDocument(doc *entity.Document) *v1.Document {
	return &v1.Document{
		Id:             doc.ID.String(),
		Filename:       doc.Filename,
		SourceType:     string(doc.SourceType),
		Status:         string(doc.Status),
		StoragePath:    doc.StoragePath,
		ContentHashHex: hex.EncodeToString(doc.ContentHash),
		UploadedBy:     doc.UploadedBy,
		CreatedAt:      doc.CreatedAt.UTC().Format(time.RFC3339),
	}
}
