package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docufield/docufield/constants"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID          uuid.UUID            `json:"id"`
	Filename    string               `json:"filename"`
	SourceType  constants.SourceType `json:"source_type"`
	Status      constants.DocStatus  `json:"status"`
	StoragePath string               `json:"storage_path"`
	ContentHash []byte               `json:"-"`
	UploadedBy  string               `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}
