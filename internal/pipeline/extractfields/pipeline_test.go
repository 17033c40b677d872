package extractfields

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/lifecycle"
	"github.com/docufield/docufield/internal/llm"
	"github.com/docufield/docufield/internal/repository"
)

type fakeDocs struct {
	doc *entity.Document
}

func (f *fakeDocs) Create(context.Context, *repository.CreateDocumentRequest) (*entity.Document, error) {
	panic("not used")
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if f.doc == nil || f.doc.ID != id {
		return nil, common.ErrNotFound
	}
	return f.doc, nil
}

func (f *fakeDocs) Exists(context.Context, uuid.UUID) (bool, error) { return f.doc != nil, nil }

func (f *fakeDocs) Transition(_ context.Context, id uuid.UUID, from, to constants.DocStatus) error {
	if f.doc == nil || f.doc.ID != id || f.doc.Status != from {
		return common.ErrStaleStateTransition
	}
	f.doc.Status = to
	return nil
}

func (f *fakeDocs) ListByStatus(context.Context, constants.DocStatus) ([]*entity.Document, error) {
	return nil, nil
}

type fakePages struct{ pages []*entity.Page }

func (f *fakePages) CreateBatch(context.Context, uuid.UUID, []*entity.Page) error { return nil }
func (f *fakePages) ListByDocument(context.Context, uuid.UUID) ([]*entity.Page, error) {
	return f.pages, nil
}
func (f *fakePages) DeleteByDocument(context.Context, uuid.UUID) (int, error) { return 0, nil }

type fakeFieldDefs struct{ defs []*entity.FieldDefinition }

func (f *fakeFieldDefs) List(context.Context) ([]*entity.FieldDefinition, error) { return f.defs, nil }
func (f *fakeFieldDefs) GetByKey(context.Context, string) (*entity.FieldDefinition, error) {
	return nil, common.ErrNotFound
}
func (f *fakeFieldDefs) Upsert(context.Context, *entity.FieldDefinition) (*entity.FieldDefinition, error) {
	panic("not used")
}
func (f *fakeFieldDefs) Delete(context.Context, string) error { return nil }

type fakeTemplates struct{ active *entity.PromptTemplate }

func (f *fakeTemplates) GetByID(_ context.Context, id uuid.UUID) (*entity.PromptTemplate, error) {
	if f.active != nil && f.active.ID == id {
		return f.active, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeTemplates) Active(context.Context) (*entity.PromptTemplate, error) {
	if f.active == nil {
		return nil, common.ErrNoActiveTemplate
	}
	return f.active, nil
}

func (f *fakeTemplates) Create(context.Context, *entity.PromptTemplate) (*entity.PromptTemplate, error) {
	panic("not used")
}
func (f *fakeTemplates) Activate(context.Context, uuid.UUID) (*entity.PromptTemplate, error) {
	panic("not used")
}
func (f *fakeTemplates) Clone(context.Context, uuid.UUID, string, string) (*entity.PromptTemplate, error) {
	panic("not used")
}
func (f *fakeTemplates) List(context.Context) ([]*entity.PromptTemplate, error) { return nil, nil }

type fakeResults struct{ created []*repository.CreateResultRequest }

func (f *fakeResults) Create(_ context.Context, req *repository.CreateResultRequest) (*entity.ExtractionResult, error) {
	f.created = append(f.created, req)
	return &entity.ExtractionResult{
		ID:              uuid.New(),
		DocumentID:      req.DocumentID,
		FieldDefID:      req.FieldDefID,
		ValueRaw:        req.ValueRaw,
		NormalizedValue: req.NormalizedValue,
		Confidence:      req.Confidence,
	}, nil
}

func (f *fakeResults) GetByID(context.Context, uuid.UUID) (*entity.ExtractionResult, error) {
	return nil, common.ErrNotFound
}
func (f *fakeResults) ListByDocument(context.Context, uuid.UUID) ([]*entity.ExtractionResult, error) {
	return nil, nil
}
func (f *fakeResults) LatestByDocument(context.Context, uuid.UUID) ([]*entity.ExtractionResult, error) {
	return nil, nil
}
func (f *fakeResults) AppendVerification(context.Context, *repository.VerificationWrite) (*entity.VerificationRecord, error) {
	panic("not used")
}
func (f *fakeResults) ListVerifications(context.Context, uuid.UUID) ([]*entity.VerificationRecord, error) {
	return nil, nil
}

// flakyExtractor fails for field keys listed in failOn.
type flakyExtractor struct {
	failOn map[string]bool
}

func (e *flakyExtractor) ModelVersion() string { return "test-1" }

func (e *flakyExtractor) ExtractField(_ context.Context, req llm.ExtractRequest) (llm.FieldResult, []byte, error) {
	if e.failOn[req.Field.Key] {
		return llm.FieldResult{}, nil, errors.New("model timeout")
	}
	return llm.FieldResult{Value: "v-" + req.Field.Key, Confidence: 0.8}, []byte(`{"value":"x","confidence":0.8}`), nil
}

func catalog(n int) []*entity.FieldDefinition {
	keys := []string{"policy_number", "insured_name", "issue_date", "premium", "kind"}
	defs := make([]*entity.FieldDefinition, 0, n)
	for i := 0; i < n; i++ {
		defs = append(defs, &entity.FieldDefinition{
			ID: i + 1, Key: keys[i], Label: keys[i], DataType: constants.TypeString, UIOrder: i,
		})
	}
	return defs
}

func testSetup(failOn map[string]bool) (*Pipeline, *fakeDocs, *fakeResults, *audit.MemoryRecorder) {
	doc := &entity.Document{
		ID:       uuid.New(),
		Filename: "policy.pdf",
		Status:   constants.StatusPreprocessed,
	}
	docs := &fakeDocs{doc: doc}
	results := &fakeResults{}
	rec := audit.NewMemoryRecorder()
	tpl := &entity.PromptTemplate{
		ID:           uuid.New(),
		Name:         "default",
		Version:      3,
		SystemPrompt: "You are a document analyst.",
		ModelName:    "gpt-4o-mini",
	}
	p := &Pipeline{
		Docs:      docs,
		Pages:     &fakePages{pages: []*entity.Page{{PageNum: 1, Text: "Policy No: X1"}}},
		FieldDefs: &fakeFieldDefs{defs: catalog(5)},
		Templates: &fakeTemplates{active: tpl},
		Results:   results,
		Extractor: &flakyExtractor{failOn: failOn},
		Machine:   lifecycle.NewMachine(docs, rec, nil),
		Recorder:  rec,
		Log:       slog.Default(),
	}
	return p, docs, results, rec
}

func TestRunAllFieldsSucceed(t *testing.T) {
	p, docs, results, rec := testSetup(nil)

	sum, err := p.Run(context.Background(), docs.doc.ID, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.Extracted != 5 || sum.Failed != 0 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	if docs.doc.Status != constants.StatusExtracted {
		t.Errorf("expected status extracted, got %s", docs.doc.Status)
	}
	if len(results.created) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results.created))
	}
	if sum.TemplateVersion != 3 {
		t.Errorf("expected template version 3, got %d", sum.TemplateVersion)
	}

	// every result carries an audit row with prompt and response attached
	extracts := 0
	for _, ev := range rec.AuditEvents {
		if ev.Action == constants.AuditExtract {
			extracts++
			if ev.PromptText == "" || ev.ModelResponse == "" {
				t.Errorf("audit row missing prompt or response: %+v", ev)
			}
		}
	}
	if extracts != 5 {
		t.Errorf("expected 5 extract audit rows, got %d", extracts)
	}
}

func TestRunPartialFieldFailure(t *testing.T) {
	p, docs, results, rec := testSetup(map[string]bool{"issue_date": true, "premium": true})

	sum, err := p.Run(context.Background(), docs.doc.ID, nil)
	if err != nil {
		t.Fatalf("a failing field must not fail the run: %v", err)
	}
	if sum.Extracted != 3 || sum.Failed != 2 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	if docs.doc.Status != constants.StatusExtracted {
		t.Errorf("expected status extracted despite field failures, got %s", docs.doc.Status)
	}
	if len(results.created) != 3 {
		t.Errorf("expected 3 results, got %d", len(results.created))
	}
	if rec.SystemCount(constants.LevelError) != 2 {
		t.Errorf("expected 2 error diagnostics, got %d", rec.SystemCount(constants.LevelError))
	}
}

func TestRunNoActiveTemplate(t *testing.T) {
	p, docs, _, rec := testSetup(nil)
	p.Templates = &fakeTemplates{} // nothing active

	_, err := p.Run(context.Background(), docs.doc.ID, nil)
	if !errors.Is(err, common.ErrNoActiveTemplate) {
		t.Fatalf("expected ErrNoActiveTemplate, got %v", err)
	}
	if docs.doc.Status != constants.StatusFailed {
		t.Errorf("expected status failed, got %s", docs.doc.Status)
	}
	if rec.SystemCount(constants.LevelError) != 1 {
		t.Errorf("missing failure diagnostic")
	}
}

func TestRunExplicitTemplate(t *testing.T) {
	p, docs, _, _ := testSetup(nil)
	other := &entity.PromptTemplate{ID: uuid.New(), Name: "special", Version: 9, ModelName: "gpt-4o"}
	p.Templates = &fakeTemplates{active: other}

	sum, err := p.Run(context.Background(), docs.doc.ID, &other.ID)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sum.TemplateID != other.ID || sum.TemplateVersion != 9 {
		t.Errorf("explicit template not used: %+v", sum)
	}
}

func TestRunRejectsWrongStatus(t *testing.T) {
	p, docs, _, _ := testSetup(nil)
	docs.doc.Status = constants.StatusUploaded

	_, err := p.Run(context.Background(), docs.doc.ID, nil)
	if !errors.Is(err, common.ErrStaleStateTransition) {
		t.Fatalf("expected ErrStaleStateTransition, got %v", err)
	}
}
