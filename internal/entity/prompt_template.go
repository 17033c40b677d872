package entity

import (
	"time"

	"github.com/google/uuid"
)

// PromptTemplate is a versioned prompt configuration. At most one template is
// active at any time; activation is atomic across all rows.
type PromptTemplate struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	Version      int               `json:"version"` // monotonic per name
	SystemPrompt string            `json:"system_prompt"`
	FieldPrompts map[string]string `json:"field_prompts"` // field key -> instruction
	ModelName    string            `json:"model_name"`
	IsActive     bool              `json:"is_active"`
	CreatedBy    string            `json:"created_by,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
