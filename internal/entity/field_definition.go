package entity

import (
	"time"

	"github.com/docufield/docufield/constants"
)

// FieldDefinition is one entry of the global extraction field catalog.
type FieldDefinition struct {
	ID           int                `json:"id"`
	Key          string             `json:"key"`
	Label        string             `json:"label"`
	DataType     constants.DataType `json:"data_type"`
	EnumValues   []string           `json:"enum_values,omitempty"` // required iff data_type == enum
	Required     bool               `json:"required"`
	UIOrder      int                `json:"ui_order"`
	CustomPrompt string             `json:"custom_prompt,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
