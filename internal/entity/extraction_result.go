package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionResult is one extracted field value for a document. Re-extraction
// appends a new row; history is never overwritten. NormalizedValue may later
// be revised by the verification ledger.
type ExtractionResult struct {
	ID              uuid.UUID   `json:"id"`
	DocumentID      uuid.UUID   `json:"document_id"`
	FieldDefID      int         `json:"field_def_id"`
	FieldKey        string      `json:"field_key,omitempty"`
	ValueRaw        string      `json:"value_raw"`
	NormalizedValue string      `json:"normalized_value"`
	Confidence      float64     `json:"confidence"` // 0..1
	PageNum         *int        `json:"page_num,omitempty"`
	BBox            *[4]float64 `json:"bbox,omitempty"`
	ModelName       string      `json:"model_name"`
	ModelVersion    string      `json:"model_version"`
	PromptVersion   int         `json:"prompt_version"`
	Verified        bool        `json:"verified"`
	CreatedAt       time.Time   `json:"created_at"`
}
