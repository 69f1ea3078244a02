package model

import (
	"github.com/goccy/go-json"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

// SaveRequest is the body of a save call. Revision orders writes from one
// editor; zero means the write is unconditional.
type SaveRequest struct {
	ResumeData     domain.Resume `json:"resumeData"`
	ActiveTemplate string        `json:"activeTemplate"`
	Revision       int64         `json:"revision,omitempty"`
}

// RawSaveRequest is SaveRequest as received, before the document has been
// decoded and migrated.
type RawSaveRequest struct {
	ResumeData     json.RawMessage `json:"resumeData"`
	ActiveTemplate string          `json:"activeTemplate"`
	Revision       int64           `json:"revision,omitempty"`
}

// LoadResponse is the body of a load call; Data is null when the user has
// no stored document yet.
type LoadResponse struct {
	Data json.RawMessage `json:"data"`
}

type SaveResponse struct {
	Success bool           `json:"success"`
	Data    *domain.Resume `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
