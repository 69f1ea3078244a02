package repository

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

var (
	ErrNotFound      = errors.New("repository: resume not found")
	ErrStaleRevision = errors.New("repository: stale revision")
	ErrUnavailable   = errors.New("repository: database unavailable")
)

// Record is one stored resume; there is at most one per user.
type Record struct {
	UserID         uuid.UUID
	Document       json.RawMessage
	ActiveTemplate string
	Revision       int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ResumeRepo struct {
	pool *pgxpool.Pool
}

func NewResumeRepo(pool *pgxpool.Pool) *ResumeRepo {
	return &ResumeRepo{pool: pool}
}

func (r *ResumeRepo) Get(ctx context.Context, userID uuid.UUID) (Record, error) {
	if r.pool == nil {
		return Record{}, ErrUnavailable
	}
	rec := Record{UserID: userID}
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT document, active_template, revision, created_at, updated_at
		FROM resume_documents WHERE user_id = $1`, userID).
		Scan(&doc, &rec.ActiveTemplate, &rec.Revision, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	rec.Document = doc
	return rec, nil
}

// Upsert stores rec for its user. A write whose revision is not newer than
// the stored one is rejected with ErrStaleRevision; revision zero always
// applies.
func (r *ResumeRepo) Upsert(ctx context.Context, rec Record) (Record, error) {
	if r.pool == nil {
		return Record{}, ErrUnavailable
	}
	now := time.Now().UTC()
	err := r.pool.QueryRow(ctx, `INSERT INTO resume_documents (user_id, document, active_template, revision, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (user_id) DO UPDATE SET document = EXCLUDED.document, active_template = EXCLUDED.active_template,
			revision = GREATEST(resume_documents.revision, EXCLUDED.revision), updated_at = EXCLUDED.updated_at
		WHERE EXCLUDED.revision = 0 OR resume_documents.revision < EXCLUDED.revision
		RETURNING created_at, updated_at, revision`,
		rec.UserID, string(rec.Document), rec.ActiveTemplate, rec.Revision, now).
		Scan(&rec.CreatedAt, &rec.UpdatedAt, &rec.Revision)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrStaleRevision
	}
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}
