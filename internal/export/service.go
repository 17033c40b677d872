// Package export produces XLSX workbooks of extraction results for download.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docufield/docufield/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes.
type Service struct {
	docs    repository.DocumentRepository
	results repository.ResultRepository
	logger  *slog.Logger
}

func NewService(docs repository.DocumentRepository, results repository.ResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, results: results, logger: logger}
}

// ExportResultsXLSX returns a workbook with one row per catalog field,
// holding the authoritative (latest) result for the document.
func (s *Service) ExportResultsXLSX(ctx context.Context, documentID uuid.UUID) ([]byte, error) {
	start := time.Now()

	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	rows, err := s.results.LatestByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Fields"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Field Key",
		"Raw Value",
		"Normalized Value",
		"Confidence",
		"Page",
		"Model",
		"Prompt Version",
		"Verified",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowNum := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.FieldKey)
		write(2, r.ValueRaw)
		write(3, r.NormalizedValue)
		write(4, r.Confidence)
		if r.PageNum != nil {
			write(5, *r.PageNum)
		} else {
			write(5, "")
		}
		write(6, r.ModelName)
		write(7, r.PromptVersion)
		write(8, r.Verified)
		rowNum++
	}

	// drop the default sheet excelize creates
	if idx, _ := f.GetSheetIndex("Sheet1"); idx != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("results exported",
		"document_id", documentID,
		"filename", doc.Filename,
		"rows", rowNum-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
