package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
)

// VerificationRecord is one human review decision against an extraction
// result. Records are append-only; a result can accumulate many.
type VerificationRecord struct {
	ID             uuid.UUID              `json:"id"`
	ResultID       uuid.UUID              `json:"result_id"`
	Verifier       string                 `json:"verifier"`
	Action         constants.VerifyAction `json:"action"`
	CorrectedValue string                 `json:"corrected_value,omitempty"` // required iff action == modify
	Comment        string                 `json:"comment,omitempty"`
	Timestamp      time.Time              `json:"timestamp"`
}
