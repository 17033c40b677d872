package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/storage"
)

// PDFAdapter extracts embedded text and word-level layout via pdftotext,
// renders one PNG per page via pdftoppm and falls back to OCR on pages whose
// text layer is empty.
type PDFAdapter struct {
	cfg    Config
	runner Runner
	store  *storage.Store
	logger *slog.Logger

	// swapped out in tests; production path goes through pdfcpu
	pageCount func(path string) (int, error)
}

func NewPDFAdapter(cfg Config, store *storage.Store, logger *slog.Logger) *PDFAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFAdapter{
		cfg:       cfg.withDefaults(),
		runner:    execRunner{},
		store:     store,
		logger:    logger,
		pageCount: api.PageCountFile,
	}
}

func (a *PDFAdapter) SourceType() constants.SourceType { return constants.SourcePDF }

func (a *PDFAdapter) ExtractPages(ctx context.Context, documentID uuid.UUID, srcPath string) (*Result, error) {
	count, err := a.pageCount(srcPath)
	if err != nil {
		return nil, &common.AppError{
			Code:    "SOURCE_UNREADABLE",
			Message: fmt.Sprintf("cannot read pdf %q", filepath.Base(srcPath)),
			Cause:   common.ErrSourceUnreadable,
		}
	}
	if count == 0 {
		return nil, &common.AppError{
			Code:    "SOURCE_UNREADABLE",
			Message: "pdf has no pages",
			Cause:   common.ErrSourceUnreadable,
		}
	}

	res := &Result{}
	if a.cfg.MaxPages > 0 && count > a.cfg.MaxPages {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("pdf has %d pages, truncated to %d", count, a.cfg.MaxPages))
		count = a.cfg.MaxPages
	}

	texts, warns, err := a.pdfToText(ctx, srcPath, count)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAdapterFailure, err)
	}

	layout, warns := a.pdfLayout(ctx, srcPath)
	res.Warnings = append(res.Warnings, warns...)

	tmpDir, err := os.MkdirTemp("", "docufield-pp-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	pages := make([]*entity.Page, count)
	var mu sync.Mutex

	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.cfg.RenderWorkers)
	for i := 1; i <= count; i++ {
		pageNum := i
		eg.Go(func() error {
			page, pageWarns, err := a.buildPage(gctx, documentID, srcPath, tmpDir, pageNum, pageText(texts, pageNum), layout[pageNum])
			if err != nil {
				return fmt.Errorf("page %d: %w", pageNum, err)
			}
			mu.Lock()
			pages[pageNum-1] = page
			res.Warnings = append(res.Warnings, pageWarns...)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAdapterFailure, err)
	}

	res.Pages = pages
	a.logger.Info("pdf pages extracted", "document_id", documentID, "pages", count)
	return res, nil
}

// buildPage renders one page, stores the image and OCRs it when the embedded
// text layer is empty.
func (a *PDFAdapter) buildPage(ctx context.Context, documentID uuid.UUID, srcPath, tmpDir string, pageNum int, text string, words []layoutWord) (*entity.Page, []string, error) {
	imgPath, err := a.renderPage(ctx, srcPath, tmpDir, pageNum)
	if err != nil {
		return nil, nil, err
	}
	rel, err := a.store.CopyPageImage(documentID, pageNum, imgPath)
	if err != nil {
		return nil, nil, err
	}

	page := &entity.Page{
		PageNum:   pageNum,
		Text:      text,
		ImagePath: rel,
		Layout:    wordsToSpans(words),
	}

	var warns []string
	if strings.TrimSpace(page.Text) == "" {
		// scanned page: no embedded text, recognize from the rendered image
		ocrText, w, err := tesseractText(ctx, a.runner, a.cfg, imgPath)
		warns = append(warns, w...)
		if err != nil {
			warns = append(warns, fmt.Sprintf("page %d ocr failed: %v", pageNum, err))
		} else {
			page.Text = ocrText
		}
		if spans, w2, err := tesseractSpans(ctx, a.runner, a.cfg, imgPath); err == nil {
			page.Layout = spans
			warns = append(warns, w2...)
		}
	}
	return page, warns, nil
}

// pdfToText extracts the embedded text layer, one entry per page.
func (a *PDFAdapter) pdfToText(ctx context.Context, path string, count int) ([]string, []string, error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := a.runner.Run(ctx, a.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return nil, []string{string(errb)}, err
	}
	// form-feed is the page separator
	texts := strings.Split(string(out), "\f")
	if len(texts) > count {
		texts = texts[:count]
	}
	return texts, nil, nil
}

// pdfLayout collects word bounding boxes per page. Failure degrades to empty
// layout rather than failing the stage.
func (a *PDFAdapter) pdfLayout(ctx context.Context, path string) (map[int][]layoutWord, []string) {
	// pdftotext -bbox <path> -
	out, errb, err := a.runner.Run(ctx, a.cfg.Pdftotext, "-bbox", path, "-")
	if err != nil {
		return nil, []string{fmt.Sprintf("pdftotext -bbox failed: %s", string(errb))}
	}
	layout, err := parseBBoxLayout(string(out))
	if err != nil {
		return nil, []string{fmt.Sprintf("bbox parse failed: %v", err)}
	}
	return layout, nil
}

// renderPage rasterizes a single page into tmpDir and returns the PNG path.
func (a *PDFAdapter) renderPage(ctx context.Context, srcPath, tmpDir string, pageNum int) (string, error) {
	prefix := filepath.Join(tmpDir, fmt.Sprintf("page_%d", pageNum))
	// pdftoppm -r <dpi> -png -f N -l N <in.pdf> <prefix>
	_, errb, err := a.runner.Run(ctx, a.cfg.Pdftoppm,
		"-r", fmt.Sprintf("%d", a.cfg.DPI), "-png",
		"-f", fmt.Sprintf("%d", pageNum), "-l", fmt.Sprintf("%d", pageNum),
		srcPath, prefix)
	if err != nil {
		return "", fmt.Errorf("pdftoppm: %s: %w", truncate(string(errb), 512), err)
	}
	// pdftoppm appends its own page suffix, match it back
	matches, _ := filepath.Glob(prefix + "-*.png")
	if len(matches) != 1 {
		return "", fmt.Errorf("pdftoppm rendered %d files for page %d", len(matches), pageNum)
	}
	return matches[0], nil
}

func pageText(texts []string, pageNum int) string {
	if pageNum-1 < len(texts) {
		return texts[pageNum-1]
	}
	return ""
}

func wordsToSpans(words []layoutWord) []entity.LayoutSpan {
	if len(words) == 0 {
		return nil
	}
	spans := make([]entity.LayoutSpan, len(words))
	for i, w := range words {
		spans[i] = entity.LayoutSpan{
			Text:       w.Text,
			BBox:       [4]float64{w.XMin, w.YMin, w.XMax, w.YMax},
			Size:       w.YMax - w.YMin,
			Confidence: 1.0, // embedded text layer, not recognition
		}
	}
	return spans
}
