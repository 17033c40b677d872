package server

import (
	"context"
	"fmt"
	"time"

	"github.com/docufield/docufield/constants"
	v1 "github.com/docufield/docufield/gen/proto/docufield/v1"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/verify"
)

func (s *DocuFieldService) ListResults(ctx context.Context, req *v1.ListResultsRequest) (*v1.ListResultsResponse, error) {
	id, err := parseUUID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}

	var rows []*entity.ExtractionResult
	if req.GetFullHistory() {
		rows, err = s.results.ListByDocument(ctx, id)
	} else {
		rows, err = s.results.LatestByDocument(ctx, id)
	}
	if err != nil {
		return nil, common.ToStatusError(err)
	}

	out := make([]*v1.ExtractionResult, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProtoResult(r))
	}
	return &v1.ListResultsResponse{Results: out}, nil
}

func (s *DocuFieldService) RecordVerification(ctx context.Context, req *v1.RecordVerificationRequest) (*v1.RecordVerificationResponse, error) {
	id, err := parseUUID("result_id", req.GetResultId())
	if err != nil {
		return nil, err
	}

	rec, err := s.ledger.Record(ctx, &verify.Request{
		ResultID:       id,
		Verifier:       req.GetVerifier(),
		Action:         constants.VerifyAction(req.GetAction()),
		CorrectedValue: req.GetCorrectedValue(),
		Comment:        req.GetComment(),
	})
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.RecordVerificationResponse{
		RecordId:  rec.ID.String(),
		CreatedAt: rec.Timestamp.UTC().Format(time.RFC3339),
	}, nil
}

func (s *DocuFieldService) ExportResults(ctx context.Context, req *v1.ExportResultsRequest) (*v1.ExportResultsResponse, error) {
	id, err := parseUUID("document_id", req.GetDocumentId())
	if err != nil {
		return nil, err
	}
	data, err := s.exporter.ExportResultsXLSX(ctx, id)
	if err != nil {
		return nil, common.ToStatusError(err)
	}
	return &v1.ExportResultsResponse{
		Filename: fmt.Sprintf("results_%s.xlsx", id),
		Content:  data,
	}, nil
}

func toProtoResult(r *entity.ExtractionResult) *v1.ExtractionResult {
	out := &v1.ExtractionResult{
		Id:              r.ID.String(),
		DocumentId:      r.DocumentID.String(),
		FieldKey:        r.FieldKey,
		ValueRaw:        r.ValueRaw,
		NormalizedValue: r.NormalizedValue,
		Confidence:      r.Confidence,
		ModelName:       r.ModelName,
		ModelVersion:    r.ModelVersion,
		PromptVersion:   int32(r.PromptVersion),
		Verified:        r.Verified,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.PageNum != nil {
		out.PageNum = int32(*r.PageNum)
	}
	if r.BBox != nil {
		out.Bbox = r.BBox[:]
	}
	return out
}
