package entity

import "github.com/google/uuid"

// LayoutSpan is one positioned text run on a page. BBox is [x0,y0,x1,y1] in
// page coordinates. Size is the font size (PDF spans); Confidence is the OCR
// line confidence (image pages). Either may be zero when not applicable.
type LayoutSpan struct {
	Text       string     `json:"text"`
	BBox       [4]float64 `json:"bbox"`
	Size       float64    `json:"size,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
}

// Page is one extracted page of a document. Pages are created by a format
// adapter during preprocessing and immutable afterwards.
type Page struct {
	ID         int          `json:"id"`
	DocumentID uuid.UUID    `json:"document_id"`
	PageNum    int          `json:"page_num"` // 1-based, contiguous per document
	Text       string       `json:"text"`
	ImagePath  string       `json:"image_path"` // relative locator into the page dir
	Layout     []LayoutSpan `json:"layout,omitempty"`
}
