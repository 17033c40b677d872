package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/repository"
)

type fakeDocs struct{ doc *entity.Document }

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
func (f *fakeDocs) Transition(context.Context, uuid.UUID, constants.DocStatus, constants.DocStatus) error {
	return nil
}
func (f *fakeDocs) ListByStatus(context.Context, constants.DocStatus) ([]*entity.Document, error) {
	return nil, nil
}

type fakeResults struct{ latest []*entity.ExtractionResult }

func (f *fakeResults) Create(context.Context, *repository.CreateResultRequest) (*entity.ExtractionResult, error) {
	panic("not used")
}
func (f *fakeResults) GetByID(context.Context, uuid.UUID) (*entity.ExtractionResult, error) {
	return nil, common.ErrNotFound
}
func (f *fakeResults) ListByDocument(context.Context, uuid.UUID) ([]*entity.ExtractionResult, error) {
	return f.latest, nil
}
func (f *fakeResults) LatestByDocument(context.Context, uuid.UUID) ([]*entity.ExtractionResult, error) {
	return f.latest, nil
}
func (f *fakeResults) AppendVerification(context.Context, *repository.VerificationWrite) (*entity.VerificationRecord, error) {
	panic("not used")
}
func (f *fakeResults) ListVerifications(context.Context, uuid.UUID) ([]*entity.VerificationRecord, error) {
	return nil, nil
}

func TestExportResultsXLSX(t *testing.T) {
	doc := &entity.Document{ID: uuid.New(), Filename: "policy.pdf"}
	page := 2
	results := &fakeResults{latest: []*entity.ExtractionResult{
		{
			FieldKey:        "policy_number",
			ValueRaw:        "Policy No: X1",
			NormalizedValue: "X1",
			Confidence:      0.9,
			PageNum:         &page,
			ModelName:       "gpt-4o-mini",
			PromptVersion:   3,
			Verified:        true,
		},
		{
			FieldKey:        "premium",
			ValueRaw:        "1,234.50元",
			NormalizedValue: "1234.5",
			Confidence:      0.8,
		},
	}}

	svc := NewService(&fakeDocs{doc: doc}, results, nil)
	data, err := svc.ExportResultsXLSX(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("ExportResultsXLSX: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer wb.Close()

	getCell := func(ref string) string {
		v, err := wb.GetCellValue("Fields", ref)
		if err != nil {
			t.Fatalf("GetCellValue %s: %v", ref, err)
		}
		return v
	}

	if got := getCell("A1"); got != "Field Key" {
		t.Errorf("A1 = %q", got)
	}
	if got := getCell("A2"); got != "policy_number" {
		t.Errorf("A2 = %q", got)
	}
	if got := getCell("C2"); got != "X1" {
		t.Errorf("C2 = %q", got)
	}
	if got := getCell("E2"); got != "2" {
		t.Errorf("E2 = %q", got)
	}
	if got := getCell("B3"); got != "1,234.50元" {
		t.Errorf("B3 = %q", got)
	}
	if got := getCell("E3"); got != "" {
		t.Errorf("E3 should be empty, got %q", got)
	}
}

func TestExportUnknownDocument(t *testing.T) {
	svc := NewService(&fakeDocs{}, &fakeResults{}, nil)
	if _, err := svc.ExportResultsXLSX(context.Background(), uuid.New()); err == nil {
		t.Fatal("expected error for unknown document")
	}
}
