package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	repo "github.com/capsloque-org/ResumeBuilder/internal/adapter/repository"
	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/model"
)

type ResumeRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (repo.Record, error)
	Upsert(ctx context.Context, rec repo.Record) (repo.Record, error)
}

// Documents implements the load and save contract on top of a repository:
// one document per user, migrated and validated before it is stored.
type Documents struct {
	repo ResumeRepo
	ids  domain.IDSource
	log  *slog.Logger
}

func NewDocuments(r ResumeRepo, ids domain.IDSource, log *slog.Logger) *Documents {
	if ids == nil {
		ids = domain.DefaultIDs
	}
	if log == nil {
		log = slog.Default()
	}
	return &Documents{repo: r, ids: ids, log: log}
}

// Load returns the stored document of user, or ErrNotFound.
func (d *Documents) Load(ctx context.Context, user uuid.UUID) (json.RawMessage, error) {
	rec, err := d.repo.Get(ctx, user)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load resume: %w", err)
	}
	return rec.Document, nil
}

// SaveRaw migrates a document as received over the wire and stores it.
func (d *Documents) SaveRaw(ctx context.Context, user uuid.UUID, req model.RawSaveRequest) (domain.Resume, error) {
	doc, shape, err := model.DecodeDocument(req.ResumeData, d.ids)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("%w: %v", model.ErrInvalidDocument, err)
	}
	if shape != model.ShapeCurrent {
		d.log.Info("migrated incoming resume", "user", user, "shape", shape)
	}
	return d.Save(ctx, user, model.SaveRequest{ResumeData: doc, ActiveTemplate: req.ActiveTemplate, Revision: req.Revision})
}

// Save validates and upserts req for user. An unknown active template
// keeps the one carried by the document.
func (d *Documents) Save(ctx context.Context, user uuid.UUID, req model.SaveRequest) (domain.Resume, error) {
	doc := req.ResumeData
	if t, ok := domain.ParseTemplate(req.ActiveTemplate); ok {
		doc.ActiveTemplate = t
	}
	if err := model.Validate(doc); err != nil {
		return domain.Resume{}, err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("encode resume: %w", err)
	}
	_, err = d.repo.Upsert(ctx, repo.Record{
		UserID:         user,
		Document:       body,
		ActiveTemplate: string(doc.ActiveTemplate),
		Revision:       req.Revision,
	})
	if err != nil {
		return domain.Resume{}, fmt.Errorf("save resume: %w", err)
	}
	return doc, nil
}

// Remote binds the service to one user.
func (d *Documents) Remote(user uuid.UUID) RemoteStore {
	return documentRemote{docs: d, user: user}
}

type documentRemote struct {
	docs *Documents
	user uuid.UUID
}

func (r documentRemote) Load(ctx context.Context) ([]byte, error) {
	return r.docs.Load(ctx, r.user)
}

func (r documentRemote) Save(ctx context.Context, req model.SaveRequest) error {
	_, err := r.docs.Save(ctx, r.user, req)
	return err
}
