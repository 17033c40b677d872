package entity

import (
	"encoding/json"
	"time"

	"github.com/docufield/docufield/constants"
)

// AuditEvent is one structured audit row: who did what to which entity.
// Extraction events additionally carry the composed prompt and the raw
// capability response for later prompt-quality audits.
type AuditEvent struct {
	ID            int                   `json:"id"`
	Actor         string                `json:"actor"` // empty means system
	Action        constants.AuditAction `json:"action"`
	EntityKind    constants.EntityKind  `json:"entity_kind"`
	EntityID      string                `json:"entity_id"`
	Details       json.RawMessage       `json:"details,omitempty"`
	PromptText    string                `json:"prompt_text,omitempty"`
	ModelResponse string                `json:"model_response,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

// SystemEvent is one diagnostic row emitted by pipeline stages.
type SystemEvent struct {
	ID        int                `json:"id"`
	Level     constants.LogLevel `json:"level"`
	Message   string             `json:"message"`
	Source    string             `json:"source"`
	Context   json.RawMessage    `json:"context,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
