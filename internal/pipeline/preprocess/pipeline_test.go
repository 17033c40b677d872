package preprocess

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/adapter"
	"github.com/docufield/docufield/internal/audit"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/lifecycle"
	"github.com/docufield/docufield/internal/repository"
	"github.com/docufield/docufield/internal/storage"
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

type fakePages struct {
	created   []*entity.Page
	deleted   int
	deleteErr error
}

func (f *fakePages) CreateBatch(_ context.Context, _ uuid.UUID, pages []*entity.Page) error {
	f.created = append(f.created, pages...)
	return nil
}

func (f *fakePages) ListByDocument(context.Context, uuid.UUID) ([]*entity.Page, error) {
	return f.created, nil
}

func (f *fakePages) DeleteByDocument(context.Context, uuid.UUID) (int, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deleted++
	n := len(f.created)
	f.created = nil
	return n, nil
}

type stubExtractor struct {
	st    constants.SourceType
	pages []*entity.Page
	err   error
	calls int
}

func (s *stubExtractor) SourceType() constants.SourceType { return s.st }

func (s *stubExtractor) ExtractPages(context.Context, uuid.UUID, string) (*adapter.Result, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &adapter.Result{Pages: s.pages, Warnings: []string{"minor warning"}}, nil
}

func newPipeline(t *testing.T, docs *fakeDocs, pages *fakePages, ext *stubExtractor) (*Pipeline, *audit.MemoryRecorder) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir(), slog.Default())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	rec := audit.NewMemoryRecorder()
	machine := lifecycle.NewMachine(docs, rec, nil)
	return NewPipeline(docs, pages, adapter.NewRegistry(ext), store, machine, rec, slog.Default()), rec
}

func uploadedDoc() *entity.Document {
	return &entity.Document{
		ID:          uuid.New(),
		Filename:    "policy.pdf",
		SourceType:  constants.SourcePDF,
		Status:      constants.StatusUploaded,
		StoragePath: "uploads/policy.pdf",
	}
}

func TestRunSuccess(t *testing.T) {
	doc := uploadedDoc()
	docs := &fakeDocs{doc: doc}
	pages := &fakePages{}
	ext := &stubExtractor{st: constants.SourcePDF, pages: []*entity.Page{
		{PageNum: 1, Text: "page one"},
		{PageNum: 2, Text: "page two"},
	}}
	p, rec := newPipeline(t, docs, pages, ext)

	if err := p.Run(context.Background(), doc.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if doc.Status != constants.StatusPreprocessed {
		t.Errorf("expected status preprocessed, got %s", doc.Status)
	}
	if len(pages.created) != 2 {
		t.Errorf("expected 2 pages persisted, got %d", len(pages.created))
	}
	if rec.SystemCount(constants.LevelWarning) != 1 {
		t.Errorf("adapter warning not recorded")
	}
}

func TestRunAdapterFailureMarksFailed(t *testing.T) {
	doc := uploadedDoc()
	docs := &fakeDocs{doc: doc}
	ext := &stubExtractor{st: constants.SourcePDF, err: errors.New("pdftoppm missing")}
	p, rec := newPipeline(t, docs, &fakePages{}, ext)

	if err := p.Run(context.Background(), doc.ID); err == nil {
		t.Fatal("expected error")
	}
	if doc.Status != constants.StatusFailed {
		t.Errorf("expected status failed, got %s", doc.Status)
	}
	if rec.SystemCount(constants.LevelError) != 1 {
		t.Errorf("failure diagnostic not recorded")
	}
}

func TestRunUnsupportedSourceType(t *testing.T) {
	doc := uploadedDoc()
	doc.SourceType = constants.SourceOther
	docs := &fakeDocs{doc: doc}
	p, _ := newPipeline(t, docs, &fakePages{}, &stubExtractor{st: constants.SourcePDF})

	err := p.Run(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if doc.Status != constants.StatusFailed {
		t.Errorf("expected status failed, got %s", doc.Status)
	}
}

func TestRunRetryClearsStalePages(t *testing.T) {
	doc := uploadedDoc()
	doc.Status = constants.StatusPending
	docs := &fakeDocs{doc: doc}
	pages := &fakePages{created: []*entity.Page{{PageNum: 1, Text: "stale"}}}
	ext := &stubExtractor{st: constants.SourcePDF, pages: []*entity.Page{{PageNum: 1, Text: "fresh"}}}
	p, _ := newPipeline(t, docs, pages, ext)

	if err := p.Run(context.Background(), doc.ID); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if pages.deleted != 1 {
		t.Errorf("stale pages were not deleted before retry")
	}
	if len(pages.created) != 1 || pages.created[0].Text != "fresh" {
		t.Errorf("unexpected pages after retry: %+v", pages.created)
	}
}

func TestRunRetryDeleteFailureMarksFailed(t *testing.T) {
	doc := uploadedDoc()
	doc.Status = constants.StatusPending
	docs := &fakeDocs{doc: doc}
	pages := &fakePages{
		created:   []*entity.Page{{PageNum: 1, Text: "stale"}},
		deleteErr: errors.New("delete blocked"),
	}
	ext := &stubExtractor{st: constants.SourcePDF, pages: []*entity.Page{{PageNum: 1, Text: "fresh"}}}
	p, rec := newPipeline(t, docs, pages, ext)

	if err := p.Run(context.Background(), doc.ID); err == nil {
		t.Fatal("expected error when stale page cleanup fails")
	}
	if doc.Status != constants.StatusFailed {
		t.Errorf("expected status failed, got %s", doc.Status)
	}
	if ext.calls != 0 {
		t.Errorf("adapter ran with stale pages still present")
	}
	if rec.SystemCount(constants.LevelError) != 1 {
		t.Errorf("cleanup failure diagnostic not recorded")
	}
}

func TestRunStaleStateAbortsBeforeWork(t *testing.T) {
	doc := uploadedDoc()
	doc.Status = constants.StatusProcessing // someone else is already running it
	docs := &fakeDocs{doc: doc}
	ext := &stubExtractor{st: constants.SourcePDF}
	p, _ := newPipeline(t, docs, &fakePages{}, ext)

	err := p.Run(context.Background(), doc.ID)
	if !errors.Is(err, common.ErrStaleStateTransition) {
		t.Fatalf("expected ErrStaleStateTransition, got %v", err)
	}
	if ext.calls != 0 {
		t.Errorf("adapter ran despite losing the status race")
	}
}
