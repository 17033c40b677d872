package adapter

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

const wordPlaceholderText = "word document processing not yet implemented"

// WordAdapter is a stub: word documents are accepted at upload but produce a
// single placeholder page until a real converter is wired in.
// TODO: shell out to libreoffice --convert-to pdf and reuse the pdf adapter.
type WordAdapter struct {
	logger *slog.Logger
}

func NewWordAdapter(logger *slog.Logger) *WordAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordAdapter{logger: logger}
}

func (a *WordAdapter) SourceType() constants.SourceType { return constants.SourceWord }

func (a *WordAdapter) ExtractPages(ctx context.Context, documentID uuid.UUID, srcPath string) (*Result, error) {
	a.logger.Warn("word adapter placeholder invoked", "document_id", documentID, "path", srcPath)
	return &Result{
		Pages: []*entity.Page{{
			PageNum: 1,
			Text:    wordPlaceholderText,
		}},
		Warnings: []string{wordPlaceholderText},
	}, nil
}
