package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/docufield/docufield/internal/entity"
)

// tesseractText runs plain OCR and returns the recognized text.
func tesseractText(ctx context.Context, r Runner, cfg Config, path string) (string, []string, error) {
	// tesseract <file> stdout -l <lang>
	out, errb, err := r.Run(ctx, cfg.Tesseract, path, "stdout", "-l", cfg.TesseractLang)
	if err != nil {
		return "", []string{string(errb)}, fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil, nil
}

// tesseractSpans runs tesseract in TSV mode and converts word rows into
// per-line layout spans with mean confidence in 0..1.
func tesseractSpans(ctx context.Context, r Runner, cfg Config, path string) ([]entity.LayoutSpan, []string, error) {
	// tesseract <file> stdout -l <lang> tsv
	out, errb, err := r.Run(ctx, cfg.Tesseract, path, "stdout", "-l", cfg.TesseractLang, "tsv")
	if err != nil {
		return nil, []string{string(errb)}, fmt.Errorf("tesseract tsv: %w", err)
	}
	return parseTSVSpans(string(out)), nil, nil
}

// parseTSVSpans reads tesseract TSV output and groups word rows into one span
// per text line: words joined by spaces, bboxes unioned, confidences averaged.
// Columns:
// level page_num block_num par_num line_num word_num left top width height conf text
func parseTSVSpans(tsv string) []entity.LayoutSpan {
	var (
		spans   []entity.LayoutSpan
		lineKey string
		words   []string
		bbox    [4]float64
		confSum float64
	)
	flush := func() {
		if len(words) == 0 {
			return
		}
		spans = append(spans, entity.LayoutSpan{
			Text:       strings.Join(words, " "),
			BBox:       bbox,
			Size:       bbox[3] - bbox[1],
			Confidence: confSum / float64(len(words)) / 100.0,
		})
		words = nil
		confSum = 0
	}

	lines := strings.Split(tsv, "\n")
	for i, ln := range lines {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue // conf -1 marks non-word rows
		}
		left, _ := strconv.ParseFloat(cols[6], 64)
		top, _ := strconv.ParseFloat(cols[7], 64)
		width, _ := strconv.ParseFloat(cols[8], 64)
		height, _ := strconv.ParseFloat(cols[9], 64)

		// page:block:par:line identifies the text line a word belongs to
		key := cols[1] + ":" + cols[2] + ":" + cols[3] + ":" + cols[4]
		if key != lineKey {
			flush()
			lineKey = key
			bbox = [4]float64{left, top, left + width, top + height}
		} else {
			bbox[0] = min(bbox[0], left)
			bbox[1] = min(bbox[1], top)
			bbox[2] = max(bbox[2], left+width)
			bbox[3] = max(bbox[3], top+height)
		}
		words = append(words, text)
		confSum += conf
	}
	flush()
	return spans
}

// meanConfidence averages span confidences, 0 when there are none.
func meanConfidence(spans []entity.LayoutSpan) float64 {
	if len(spans) == 0 {
		return 0
	}
	var sum float64
	for _, s := range spans {
		sum += s.Confidence
	}
	return sum / float64(len(spans))
}

// spanText joins span words with single spaces, used when plain OCR text is
// unavailable.
func spanText(spans []entity.LayoutSpan) string {
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}
