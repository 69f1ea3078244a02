package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

var ErrInvalidDocument = errors.New("model: invalid resume document")

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
})

// Validate checks a normalized document against the resume schema before it
// is stored.
func Validate(doc domain.Resume) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return ValidateJSON(body)
}

// ValidateJSON validates an encoded document against the resume schema.
func ValidateJSON(body []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load resume schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
