package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/repository"
)

type fakeResults struct {
	result *entity.ExtractionResult
	writes []*repository.VerificationWrite
}

func (f *fakeResults) Create(context.Context, *repository.CreateResultRequest) (*entity.ExtractionResult, error) {
	panic("not used")
}

func (f *fakeResults) GetByID(_ context.Context, id uuid.UUID) (*entity.ExtractionResult, error) {
	if f.result == nil || f.result.ID != id {
		return nil, common.ErrNotFound
	}
	return f.result, nil
}

func (f *fakeResults) ListByDocument(context.Context, uuid.UUID) ([]*entity.ExtractionResult, error) {
	return nil, nil
}

func (f *fakeResults) LatestByDocument(context.Context, uuid.UUID) ([]*entity.ExtractionResult, error) {
	return nil, nil
}

func (f *fakeResults) AppendVerification(_ context.Context, w *repository.VerificationWrite) (*entity.VerificationRecord, error) {
	f.writes = append(f.writes, w)
	rec := *w.Record
	rec.ID = uuid.New()
	// mirror the transactional side effects the real repository applies
	if w.OverrideNormalized != nil {
		f.result.NormalizedValue = *w.OverrideNormalized
	}
	if w.MarkVerified {
		f.result.Verified = true
	}
	return &rec, nil
}

func (f *fakeResults) ListVerifications(context.Context, uuid.UUID) ([]*entity.VerificationRecord, error) {
	return nil, nil
}

func setup() (*Ledger, *fakeResults, *audit.MemoryRecorder) {
	results := &fakeResults{result: &entity.ExtractionResult{
		ID:              uuid.New(),
		ValueRaw:        "1,234.50元",
		NormalizedValue: "1234.5",
	}}
	rec := audit.NewMemoryRecorder()
	return NewLedger(results, rec, nil), results, rec
}

func TestRecordAccept(t *testing.T) {
	l, results, rec := setup()

	_, err := l.Record(context.Background(), &Request{
		ResultID: results.result.ID,
		Verifier: "reviewer@example.com",
		Action:   constants.VerifyAccept,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	w := results.writes[0]
	if !w.MarkVerified || w.OverrideNormalized != nil {
		t.Errorf("accept must verify without override: %+v", w)
	}
	if results.result.NormalizedValue != "1234.5" {
		t.Errorf("accept must not change the normalized value")
	}
	if len(rec.AuditEvents) != 1 || rec.AuditEvents[0].Action != constants.AuditVerify {
		t.Errorf("verification not audited")
	}
}

func TestRecordModifyOverridesNormalizedValue(t *testing.T) {
	l, results, _ := setup()

	_, err := l.Record(context.Background(), &Request{
		ResultID:       results.result.ID,
		Verifier:       "reviewer@example.com",
		Action:         constants.VerifyModify,
		CorrectedValue: "1234.56",
		Comment:        "decimal misread",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	w := results.writes[0]
	if w.OverrideNormalized == nil || *w.OverrideNormalized != "1234.56" || !w.MarkVerified {
		t.Errorf("modify must override and verify in one write: %+v", w)
	}
	if results.result.NormalizedValue != "1234.56" {
		t.Errorf("normalized value not revised")
	}
	if results.result.ValueRaw != "1,234.50元" {
		t.Errorf("raw value must never change")
	}
}

func TestRecordRejectTouchesNothing(t *testing.T) {
	l, results, _ := setup()

	_, err := l.Record(context.Background(), &Request{
		ResultID: results.result.ID,
		Verifier: "reviewer@example.com",
		Action:   constants.VerifyReject,
		Comment:  "wrong field entirely",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	w := results.writes[0]
	if w.MarkVerified || w.OverrideNormalized != nil {
		t.Errorf("reject must not mutate the result: %+v", w)
	}
	if results.result.Verified {
		t.Errorf("rejected result marked verified")
	}
}

func TestRecordValidation(t *testing.T) {
	l, results, _ := setup()

	cases := []*Request{
		{ResultID: results.result.ID, Action: constants.VerifyAccept},                // no verifier
		{ResultID: results.result.ID, Verifier: "r", Action: "approve"},              // unknown action
		{ResultID: results.result.ID, Verifier: "r", Action: constants.VerifyModify}, // modify without value
	}
	for i, req := range cases {
		if _, err := l.Record(context.Background(), req); !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
	if len(results.writes) != 0 {
		t.Errorf("invalid requests must not reach the repository")
	}
}

func TestRecordUnknownResult(t *testing.T) {
	l, _, _ := setup()
	_, err := l.Record(context.Background(), &Request{
		ResultID: uuid.New(),
		Verifier: "r",
		Action:   constants.VerifyAccept,
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
