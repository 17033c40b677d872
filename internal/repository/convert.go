package repository

import (
	"encoding/json"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/gen/ent"
	"github.com/docufield/docufield/internal/entity"
)

func toDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          d.ID,
		Filename:    d.Filename,
		SourceType:  constants.SourceType(d.SourceType),
		Status:      constants.DocStatus(d.Status),
		StoragePath: d.StoragePath,
		ContentHash: d.ContentHash,
		UploadedBy:  d.UploadedBy,
		CreatedAt:   d.CreatedAt,
	}
}

func toPage(p *ent.DocumentPage) *entity.Page {
	out := &entity.Page{
		ID:         p.ID,
		DocumentID: p.DocumentID,
		PageNum:    p.PageNum,
		Text:       p.Text,
		ImagePath:  p.ImagePath,
	}
	if len(p.Layout) > 0 {
		// layout is written by us; a decode failure means a corrupt row and
		// the page is still usable without spans
		_ = json.Unmarshal(p.Layout, &out.Layout)
	}
	return out
}

func toFieldDefinition(f *ent.FieldDefinition) *entity.FieldDefinition {
	return &entity.FieldDefinition{
		ID:           f.ID,
		Key:          f.Key,
		Label:        f.Label,
		DataType:     constants.DataType(f.DataType),
		EnumValues:   f.EnumValues,
		Required:     f.Required,
		UIOrder:      f.UIOrder,
		CustomPrompt: f.CustomPrompt,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func toTemplate(t *ent.PromptTemplate) *entity.PromptTemplate {
	return &entity.PromptTemplate{
		ID:           t.ID,
		Name:         t.Name,
		Version:      t.Version,
		SystemPrompt: t.SystemPrompt,
		FieldPrompts: t.FieldPrompts,
		ModelName:    t.ModelName,
		IsActive:     t.IsActive,
		CreatedBy:    t.CreatedBy,
		CreatedAt:    t.CreatedAt,
	}
}

func toResult(r *ent.ExtractionResult) *entity.ExtractionResult {
	out := &entity.ExtractionResult{
		ID:              r.ID,
		DocumentID:      r.DocumentID,
		FieldDefID:      r.FieldDefID,
		ValueRaw:        r.ValueRaw,
		NormalizedValue: r.NormalizedValue,
		Confidence:      r.Confidence,
		PageNum:         r.PageNum,
		ModelName:       r.ModelName,
		ModelVersion:    r.ModelVersion,
		PromptVersion:   r.PromptVersion,
		Verified:        r.Verified,
		CreatedAt:       r.CreatedAt,
	}
	if len(r.Bbox) > 0 {
		var box [4]float64
		if err := json.Unmarshal(r.Bbox, &box); err == nil {
			out.BBox = &box
		}
	}
	if r.Edges.FieldDef != nil {
		out.FieldKey = r.Edges.FieldDef.Key
	}
	return out
}

func toVerification(v *ent.VerificationRecord) *entity.VerificationRecord {
	return &entity.VerificationRecord{
		ID:             v.ID,
		ResultID:       v.ResultID,
		Verifier:       v.Verifier,
		Action:         constants.VerifyAction(v.Action),
		CorrectedValue: v.CorrectedValue,
		Comment:        v.Comment,
		Timestamp:      v.CreatedAt,
	}
}
