package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/storage"
)

// fakeRunner answers commands by matching on the binary name and args.
type fakeRunner struct {
	t     *testing.T
	calls []string
	run   func(name string, args []string) (string, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	out, err := f.run(name, args)
	if err != nil {
		return nil, []byte(err.Error()), err
	}
	return []byte(out), nil, nil
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.NewStore(t.TempDir(), slog.Default())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

const sampleTSV = `level	page_num	block_num	par_num	line_num	word_num	left	top	width	height	conf	text
1	1	0	0	0	0	0	0	600	800	-1
5	1	1	1	1	1	72	71	80	12	96.5	Invoice
5	1	1	1	1	2	160	71	40	12	88.1	2024
5	1	1	1	2	1	72	90	50	12	-1
5	1	1	1	2	2	130	90	60	12	45.0	Total`

func TestParseTSVSpansGroupsLines(t *testing.T) {
	spans := parseTSVSpans(sampleTSV)
	if len(spans) != 2 {
		t.Fatalf("expected 2 line spans, got %d", len(spans))
	}

	first := spans[0]
	if first.Text != "Invoice 2024" {
		t.Errorf("expected first line text %q, got %q", "Invoice 2024", first.Text)
	}
	// union of the two word boxes on line 1
	want := [4]float64{72, 71, 200, 83}
	if first.BBox != want {
		t.Errorf("expected bbox %v, got %v", want, first.BBox)
	}
	if first.Confidence < 0.92 || first.Confidence > 0.93 {
		t.Errorf("expected mean confidence ~0.923, got %f", first.Confidence)
	}

	second := spans[1]
	if second.Text != "Total" {
		t.Errorf("expected second line text Total, got %q", second.Text)
	}
	if second.Confidence != 0.45 {
		t.Errorf("expected confidence 0.45, got %f", second.Confidence)
	}

	mean := meanConfidence(spans)
	if mean <= 0 || mean > 1 {
		t.Errorf("mean confidence out of range: %f", mean)
	}
}

const sampleBBox = `<?xml version="1.0"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<body>
<doc>
<page width="612.000000" height="792.000000">
  <word xMin="72.0" yMin="71.0" xMax="150.2" yMax="83.0">Invoice</word>
  <word xMin="160.0" yMin="71.0" xMax="200.0" yMax="83.0">2024</word>
</page>
<page width="612.000000" height="792.000000">
  <word xMin="72.0" yMin="700.0" xMax="120.0" yMax="712.0">Total</word>
</page>
</doc>
</body>
</html>`

func TestParseBBoxLayout(t *testing.T) {
	layout, err := parseBBoxLayout(sampleBBox)
	if err != nil {
		t.Fatalf("parseBBoxLayout: %v", err)
	}
	if len(layout[1]) != 2 || len(layout[2]) != 1 {
		t.Fatalf("expected 2 words on page 1 and 1 on page 2, got %d and %d", len(layout[1]), len(layout[2]))
	}
	w := layout[2][0]
	if w.Text != "Total" || w.XMin != 72.0 || w.YMax != 712.0 {
		t.Errorf("unexpected page 2 word: %+v", w)
	}
}

func TestImageAdapterExtractPages(t *testing.T) {
	src := writeTempFile(t, "scan.png", "not-a-real-png")
	runner := &fakeRunner{t: t, run: func(name string, args []string) (string, error) {
		if args[len(args)-1] == "tsv" {
			return sampleTSV, nil
		}
		return "Invoice 2024\nTotal 12.50\n", nil
	}}

	a := NewImageAdapter(Config{}, newTestStore(t), slog.Default())
	a.runner = runner

	docID := uuid.New()
	res, err := a.ExtractPages(context.Background(), docID, src)
	if err != nil {
		t.Fatalf("ExtractPages: %v", err)
	}
	if len(res.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(res.Pages))
	}
	page := res.Pages[0]
	if page.PageNum != 1 {
		t.Errorf("expected page_num 1, got %d", page.PageNum)
	}
	if !strings.Contains(page.Text, "Invoice") {
		t.Errorf("expected recognized text, got %q", page.Text)
	}
	if len(page.Layout) != 2 {
		t.Errorf("expected 2 line spans, got %d", len(page.Layout))
	}
	if page.ImagePath != storage.PageImagePath(docID, 1) {
		t.Errorf("unexpected image path %q", page.ImagePath)
	}
}

func TestImageAdapterOCRFailure(t *testing.T) {
	src := writeTempFile(t, "scan.png", "x")
	runner := &fakeRunner{t: t, run: func(name string, args []string) (string, error) {
		return "", errors.New("tesseract exploded")
	}}
	a := NewImageAdapter(Config{}, newTestStore(t), slog.Default())
	a.runner = runner

	_, err := a.ExtractPages(context.Background(), uuid.New(), src)
	if !errors.Is(err, common.ErrAdapterFailure) {
		t.Fatalf("expected ErrAdapterFailure, got %v", err)
	}
}

func TestPDFAdapterExtractPages(t *testing.T) {
	src := writeTempFile(t, "doc.pdf", "%PDF-fake")
	runner := &fakeRunner{t: t, run: func(name string, args []string) (string, error) {
		switch {
		case name == "pdftotext" && args[0] == "-layout":
			return "Invoice 2024 page one\f\f", nil // page 2 and 3 empty
		case name == "pdftotext" && args[0] == "-bbox":
			return sampleBBox, nil
		case name == "pdftoppm":
			// args: -r 300 -png -f N -l N src prefix
			prefix := args[len(args)-1]
			pageNum := args[4]
			if err := os.WriteFile(fmt.Sprintf("%s-%s.png", prefix, pageNum), []byte("png"), 0o644); err != nil {
				return "", err
			}
			return "", nil
		case name == "tesseract":
			if args[len(args)-1] == "tsv" {
				return sampleTSV, nil
			}
			return "recognized scanned text", nil
		}
		return "", fmt.Errorf("unexpected command %s", name)
	}}

	a := NewPDFAdapter(Config{MaxPages: 2}, newTestStore(t), slog.Default())
	a.runner = runner
	a.pageCount = func(string) (int, error) { return 3, nil }

	docID := uuid.New()
	res, err := a.ExtractPages(context.Background(), docID, src)
	if err != nil {
		t.Fatalf("ExtractPages: %v", err)
	}
	if len(res.Pages) != 2 {
		t.Fatalf("expected 2 pages after truncation, got %d", len(res.Pages))
	}
	if !hasWarning(res.Warnings, "truncated") {
		t.Errorf("expected truncation warning, got %v", res.Warnings)
	}

	p1 := res.Pages[0]
	if !strings.Contains(p1.Text, "Invoice") {
		t.Errorf("expected embedded text on page 1, got %q", p1.Text)
	}
	if len(p1.Layout) != 2 || p1.Layout[0].Confidence != 1.0 {
		t.Errorf("expected 2 embedded-layer spans with confidence 1.0, got %+v", p1.Layout)
	}

	// page 2 had no text layer, OCR fallback kicks in
	p2 := res.Pages[1]
	if p2.Text != "recognized scanned text" {
		t.Errorf("expected ocr fallback text on page 2, got %q", p2.Text)
	}
	if len(p2.Layout) != 2 {
		t.Errorf("expected tsv line spans on page 2, got %d", len(p2.Layout))
	}

	for i, p := range res.Pages {
		if p.PageNum != i+1 {
			t.Errorf("page %d has page_num %d", i, p.PageNum)
		}
		if p.ImagePath != storage.PageImagePath(docID, i+1) {
			t.Errorf("page %d image path %q", i+1, p.ImagePath)
		}
	}
}

func TestPDFAdapterUnreadable(t *testing.T) {
	a := NewPDFAdapter(Config{}, newTestStore(t), slog.Default())
	a.runner = &fakeRunner{t: t, run: func(string, []string) (string, error) { return "", nil }}
	a.pageCount = func(string) (int, error) { return 0, errors.New("not a pdf") }

	_, err := a.ExtractPages(context.Background(), uuid.New(), "/tmp/nope.pdf")
	if !errors.Is(err, common.ErrSourceUnreadable) {
		t.Fatalf("expected ErrSourceUnreadable, got %v", err)
	}
}

func TestWordAdapterPlaceholder(t *testing.T) {
	a := NewWordAdapter(slog.Default())
	res, err := a.ExtractPages(context.Background(), uuid.New(), "/tmp/contract.docx")
	if err != nil {
		t.Fatalf("ExtractPages: %v", err)
	}
	if len(res.Pages) != 1 || res.Pages[0].Text != wordPlaceholderText {
		t.Fatalf("unexpected placeholder result: %+v", res.Pages)
	}
}

func TestRegistryDispatch(t *testing.T) {
	word := NewWordAdapter(slog.Default())
	reg := NewRegistry(word)

	got, err := reg.ForSourceType(constants.SourceWord)
	if err != nil {
		t.Fatalf("ForSourceType: %v", err)
	}
	if got != word {
		t.Errorf("registry returned wrong adapter")
	}

	if _, err := reg.ForSourceType(constants.SourcePDF); !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}
