// Package extractfields is the second pipeline stage: it composes one prompt
// per catalog field, calls the extraction capability and appends results.
package extractfields

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/lifecycle"
	"github.com/docufield/docufield/internal/llm"
	"github.com/docufield/docufield/internal/normalize"
	"github.com/docufield/docufield/internal/prompt"
	"github.com/docufield/docufield/internal/repository"
)

const source = "field_extraction"

type Pipeline struct {
	Docs      repository.DocumentRepository
	Pages     repository.PageRepository
	FieldDefs repository.FieldDefinitionRepository
	Templates repository.TemplateRepository
	Results   repository.ResultRepository
	Extractor llm.FieldExtractor
	Machine   *lifecycle.Machine
	Recorder  audit.Recorder
	Log       *slog.Logger
}

// Summary reports what one extraction run did.
type Summary struct {
	DocumentID      uuid.UUID
	TemplateID      uuid.UUID
	TemplateVersion int
	Extracted       int
	Failed          int
}

// Run extracts every catalog field for one document. Individual field
// failures are logged and skipped; the run only fails as a whole when the
// document, template or catalog cannot be loaded.
func (p *Pipeline) Run(ctx context.Context, documentID uuid.UUID, templateID *uuid.UUID) (Summary, error) {
	doc, err := p.Docs.GetByID(ctx, documentID)
	if err != nil {
		return Summary{}, fmt.Errorf("get document: %w", err)
	}
	if err := p.Machine.Move(ctx, documentID, doc.Status, constants.StatusExtracting); err != nil {
		return Summary{}, err
	}

	tpl, err := p.resolveTemplate(ctx, templateID)
	if err != nil {
		return Summary{}, p.fail(ctx, documentID, err)
	}
	fields, err := p.FieldDefs.List(ctx)
	if err != nil {
		return Summary{}, p.fail(ctx, documentID, fmt.Errorf("list field definitions: %w", err))
	}
	pages, err := p.Pages.ListByDocument(ctx, documentID)
	if err != nil {
		return Summary{}, p.fail(ctx, documentID, fmt.Errorf("list pages: %w", err))
	}

	sum := Summary{DocumentID: documentID, TemplateID: tpl.ID, TemplateVersion: tpl.Version}
	for _, field := range fields {
		if err := p.extractOne(ctx, doc, tpl, field, pages); err != nil {
			sum.Failed++
			p.Log.Error("field extraction failed",
				"document_id", documentID, "field_key", field.Key, "error", err)
			p.Recorder.System(ctx, constants.LevelError, source,
				"field extraction failed: "+field.Key,
				map[string]any{
					"document_id": documentID.String(),
					"field_key":   field.Key,
					"error":       err.Error(),
				})
			continue
		}
		sum.Extracted++
	}

	if err := p.Machine.Move(ctx, documentID, constants.StatusExtracting, constants.StatusExtracted); err != nil {
		return sum, err
	}
	p.Log.Info("document fields extracted",
		"document_id", documentID, "filename", doc.Filename,
		"extracted", sum.Extracted, "failed", sum.Failed)
	return sum, nil
}

func (p *Pipeline) extractOne(ctx context.Context, doc *entity.Document, tpl *entity.PromptTemplate, field *entity.FieldDefinition, pages []*entity.Page) error {
	composed := prompt.Compose(field, tpl, pages)

	res, raw, err := p.Extractor.ExtractField(ctx, llm.ExtractRequest{
		Prompt: composed,
		Field:  field,
		Pages:  pages,
	})
	if err != nil {
		return err
	}

	row, err := p.Results.Create(ctx, &repository.CreateResultRequest{
		DocumentID:      doc.ID,
		FieldDefID:      field.ID,
		ValueRaw:        res.Value,
		NormalizedValue: normalize.Value(res.Value, field),
		Confidence:      res.Confidence,
		PageNum:         res.PageNum,
		BBox:            res.BBox,
		ModelName:       tpl.ModelName,
		ModelVersion:    p.Extractor.ModelVersion(),
		PromptVersion:   tpl.Version,
	})
	if err != nil {
		return err
	}

	p.Recorder.Audit(ctx, &entity.AuditEvent{
		Actor:      "system",
		Action:     constants.AuditExtract,
		EntityKind: constants.EntityResult,
		EntityID:   row.ID.String(),
		Details: audit.Details(map[string]any{
			"document_id": doc.ID.String(),
			"field_key":   field.Key,
			"value":       res.Value,
			"confidence":  res.Confidence,
		}),
		PromptText:    composed,
		ModelResponse: string(raw),
	})
	return nil
}

func (p *Pipeline) resolveTemplate(ctx context.Context, templateID *uuid.UUID) (*entity.PromptTemplate, error) {
	if templateID != nil {
		return p.Templates.GetByID(ctx, *templateID)
	}
	return p.Templates.Active(ctx)
}

func (p *Pipeline) fail(ctx context.Context, documentID uuid.UUID, cause error) error {
	if err := p.Machine.Fail(ctx, documentID, constants.StatusExtracting); err != nil {
		p.Log.Error("failed to mark document failed", "document_id", documentID, "error", err)
	}
	p.Recorder.System(ctx, constants.LevelError, source, "extraction run failed",
		map[string]any{"document_id": documentID.String(), "error": cause.Error()})
	return cause
}
