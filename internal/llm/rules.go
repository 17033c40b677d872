package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/docufield/docufield/constants"
	"github.com/docufield/docufield/internal/entity"
)

var (
	reDate   = regexp.MustCompile(`\d{4}[-/.年]\d{1,2}[-/.月]\d{1,2}日?`)
	reAmount = regexp.MustCompile(`\d{1,3}(?:,\d{3})*(?:\.\d+)?\s*元|[$€£¥]\s*\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+\.\d{2}\b`)
)

// RulesExtractor is a deterministic FieldExtractor built on pattern matching
// over the page text. It backs development setups and acts as the fallback
// when no model endpoint is configured.
type RulesExtractor struct {
	logger *slog.Logger
}

func NewRulesExtractor(logger *slog.Logger) *RulesExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &RulesExtractor{logger: logger}
}

func (e *RulesExtractor) ModelVersion() string { return "rules-1" }

func (e *RulesExtractor) ExtractField(_ context.Context, req ExtractRequest) (FieldResult, []byte, error) {
	res := e.match(req.Field, req.Pages)
	raw, _ := json.Marshal(res)
	e.logger.Debug("rules extraction",
		"field_key", req.Field.Key, "found", res.Value != "", "confidence", res.Confidence)
	return res, raw, nil
}

func (e *RulesExtractor) match(field *entity.FieldDefinition, pages []*entity.Page) FieldResult {
	switch field.DataType {
	case constants.TypeDate:
		if v, page := findPattern(reDate, pages); v != "" {
			return FieldResult{Value: v, Confidence: 0.95, PageNum: page}
		}
	case constants.TypeAmount:
		if v, page := findPattern(reAmount, pages); v != "" {
			return FieldResult{Value: strings.TrimSpace(v), Confidence: 0.9, PageNum: page}
		}
	case constants.TypeEnum:
		for _, page := range pages {
			textLower := strings.ToLower(page.Text)
			for _, ev := range field.EnumValues {
				if strings.Contains(textLower, strings.ToLower(ev)) {
					n := page.PageNum
					return FieldResult{Value: ev, Confidence: 0.85, PageNum: &n}
				}
			}
		}
	default:
		if v, page := findLabeled(field, pages); v != "" {
			return FieldResult{Value: v, Confidence: 0.6, PageNum: page}
		}
	}
	// not found: empty value, zero confidence
	return FieldResult{Value: "", Confidence: 0}
}

// findPattern returns the first regex match across pages in order.
func findPattern(re *regexp.Regexp, pages []*entity.Page) (string, *int) {
	for _, page := range pages {
		if m := re.FindString(page.Text); m != "" {
			n := page.PageNum
			return m, &n
		}
	}
	return "", nil
}

// findLabeled looks for "<label>: value" or "<key>: value" up to end of line.
func findLabeled(field *entity.FieldDefinition, pages []*entity.Page) (string, *int) {
	for _, needle := range []string{field.Label, field.Key} {
		if needle == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(needle) + `\s*[:：]\s*([^\n]+)`)
		if err != nil {
			continue
		}
		for _, page := range pages {
			if m := re.FindStringSubmatch(page.Text); m != nil {
				n := page.PageNum
				return strings.TrimSpace(m[1]), &n
			}
		}
	}
	return "", nil
}
