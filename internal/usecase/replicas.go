package usecase

import (
	"context"
	"errors"

	"github.com/capsloque-org/ResumeBuilder/internal/model"
)

// ErrNotFound is returned by a RemoteStore that definitively holds no
// document for the user. Any other load error is a failure, not absence.
var ErrNotFound = errors.New("usecase: no stored resume")

// RemoteStore is the durable copy of one user's document.
type RemoteStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, req model.SaveRequest) error
}

// LocalCache is the fallback copy: a small string key-value store.
type LocalCache interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

const (
	ResumeCacheKey   = "capsloque-resume"
	TemplateCacheKey = "capsloque-template"
)

// Renderer turns a standalone HTML document into a PDF.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}
