// Package llm defines the abstract field extraction capability and its wire
// contracts. Implementations live in subpackages (openai) and in rules.go
// (deterministic fallback used when no model endpoint is configured).
package llm

import (
	"context"

	"github.com/docufield/docufield/internal/entity"
)

// FieldResult is the normalized shape we want back for one field.
type FieldResult struct {
	Value      string      `json:"value"`
	Confidence float64     `json:"confidence"`         // 0..1
	PageNum    *int        `json:"page_num,omitempty"` // 1-based, when the model can localize
	BBox       *[4]float64 `json:"bbox,omitempty"`     // [x0,y0,x1,y1] page coordinates
}

// ExtractRequest carries everything one extraction call needs. Prompt is the
// fully composed prompt; Pages are provided so implementations can localize
// values or fall back to direct search.
type ExtractRequest struct {
	Prompt string
	Field  *entity.FieldDefinition
	Pages  []*entity.Page
}

// FieldExtractor is the capability the extraction pipeline depends on. The
// raw byte slice is the unparsed model response, kept for the audit trail.
type FieldExtractor interface {
	ExtractField(ctx context.Context, req ExtractRequest) (FieldResult, []byte, error)
	// ModelVersion identifies the implementation revision recorded on results.
	ModelVersion() string
}
