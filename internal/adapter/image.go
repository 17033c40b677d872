package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
	"github.com/docufield/docufield/internal/storage"
)

// ImageAdapter OCRs a single image into a one-page result. The source image
// itself becomes the stored page artifact.
type ImageAdapter struct {
	cfg    Config
	runner Runner
	store  *storage.Store
	logger *slog.Logger
}

func NewImageAdapter(cfg Config, store *storage.Store, logger *slog.Logger) *ImageAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageAdapter{cfg: cfg.withDefaults(), runner: execRunner{}, store: store, logger: logger}
}

func (a *ImageAdapter) SourceType() constants.SourceType { return constants.SourceImage }

func (a *ImageAdapter) ExtractPages(ctx context.Context, documentID uuid.UUID, srcPath string) (*Result, error) {
	res := &Result{}

	text, warns, err := tesseractText(ctx, a.runner, a.cfg, srcPath)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAdapterFailure, err)
	}

	spans, warns, err := tesseractSpans(ctx, a.runner, a.cfg, srcPath)
	res.Warnings = append(res.Warnings, warns...)
	if err != nil {
		// layout is best-effort, text alone is still usable
		res.Warnings = append(res.Warnings, fmt.Sprintf("layout recognition failed: %v", err))
		spans = nil
	}
	if strings.TrimSpace(text) == "" && len(spans) > 0 {
		text = spanText(spans)
	}

	rel, err := a.store.CopyPageImage(documentID, 1, srcPath)
	if err != nil {
		return nil, err
	}

	res.Pages = []*entity.Page{{
		PageNum:   1,
		Text:      text,
		ImagePath: rel,
		Layout:    spans,
	}}
	a.logger.Info("image page extracted",
		"document_id", documentID, "spans", len(spans), "mean_confidence", meanConfidence(spans))
	return res, nil
}
