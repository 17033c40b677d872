// Package adapter turns source files into per-page text, layout spans and
// rendered page images. One adapter per source type; external tools are
// invoked through a Runner so tests can stub them.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/common"
	"github.com/docufield/docufield/internal/entity"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI, default 300
	MaxPages      int    // 0 = no limit
	RenderWorkers int    // concurrent page renders, default 4
}

func (c Config) withDefaults() Config {
	if c.Pdftotext == "" {
		c.Pdftotext = "pdftotext"
	}
	if c.Pdftoppm == "" {
		c.Pdftoppm = "pdftoppm"
	}
	if c.Tesseract == "" {
		c.Tesseract = "tesseract"
	}
	if c.TesseractLang == "" {
		c.TesseractLang = "eng"
	}
	if c.DPI <= 0 {
		c.DPI = 300
	}
	if c.RenderWorkers <= 0 {
		c.RenderWorkers = 4
	}
	return c
}

// Result is what an adapter produces for one document. Pages are ordered and
// numbered from 1. Warnings are non-fatal tool complaints worth surfacing.
type Result struct {
	Pages    []*entity.Page
	Warnings []string
}

// PageExtractor converts one source file into pages. The documentID scopes
// where rendered artifacts land on disk.
type PageExtractor interface {
	SourceType() constants.SourceType
	ExtractPages(ctx context.Context, documentID uuid.UUID, srcPath string) (*Result, error)
}

// Registry dispatches by source type.
type Registry struct {
	byType map[constants.SourceType]PageExtractor
}

func NewRegistry(extractors ...PageExtractor) *Registry {
	r := &Registry{byType: make(map[constants.SourceType]PageExtractor, len(extractors))}
	for _, e := range extractors {
		r.byType[e.SourceType()] = e
	}
	return r
}

func (r *Registry) ForSourceType(st constants.SourceType) (PageExtractor, error) {
	e, ok := r.byType[st]
	if !ok {
		return nil, &common.AppError{
			Code:    "UNSUPPORTED_FORMAT",
			Message: "no adapter registered for source type " + string(st),
			Cause:   common.ErrUnsupportedFormat,
		}
	}
	return e, nil
}
