package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/editor"
	"github.com/capsloque-org/ResumeBuilder/internal/logging"
	"github.com/capsloque-org/ResumeBuilder/internal/model"
	"github.com/capsloque-org/ResumeBuilder/pkg/render"
)

type LoadSource int

const (
	LoadedDefault LoadSource = iota
	LoadedRemote
	LoadedLocal
)

func (s LoadSource) String() string {
	switch s {
	case LoadedRemote:
		return "remote"
	case LoadedLocal:
		return "local"
	}
	return "default"
}

func (s LoadSource) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// LoadResult describes where the session's document came from.
type LoadResult struct {
	Source LoadSource `json:"source"`
	// Migrated is set when the payload was written in a legacy shape.
	Migrated bool `json:"migrated"`
	// Seeded is set when a local document was pushed to an empty remote.
	Seeded bool `json:"seeded"`
	// RemoteErr is the remote failure the load degraded from, if any.
	RemoteErr error `json:"-"`
}

// Session is one user's editing session: the document store, its
// synchronizer and the load protocol.
type Session struct {
	user   uuid.UUID
	store  *editor.Store
	sync   *Synchronizer
	remote RemoteStore
	local  LocalCache
	log    *slog.Logger

	loadOnce sync.Once
	loaded   LoadResult
}

type SessionDeps struct {
	Remote RemoteStore
	Local  LocalCache
	Clock  Clock
	IDs    domain.IDSource
	Sync   SyncConfig
	Log    *slog.Logger
}

func NewSession(user uuid.UUID, deps SessionDeps) *Session {
	log := logging.ForUser(deps.Log, user)
	store := editor.NewStore(domain.NewResume(deps.IDs), deps.IDs)
	s := &Session{
		user:   user,
		store:  store,
		sync:   NewSynchronizer(store, deps.Remote, deps.Local, deps.Clock, deps.Sync, log),
		remote: deps.Remote,
		local:  deps.Local,
		log:    log,
	}
	store.Subscribe(s.persist)
	return s
}

func (s *Session) User() uuid.UUID { return s.user }

func (s *Session) persist(_ domain.Resume, ch editor.Change) {
	switch ch.Persist {
	case editor.PersistDebounced:
		s.sync.Touch()
	case editor.PersistImmediate:
		_ = s.sync.Flush(context.Background())
	}
}

// Load runs the load protocol once; later calls return the first result.
//
// The remote document wins. When the remote definitively has none, the
// local cache is adopted and pushed to the remote once. When the remote
// fails, the local cache is adopted without seeding. With neither, the
// default skeleton stays.
func (s *Session) Load(ctx context.Context) LoadResult {
	s.loadOnce.Do(func() {
		s.loaded = s.load(ctx)
		s.log.Info("resume session loaded", "source", s.loaded.Source, "migrated", s.loaded.Migrated, "seeded", s.loaded.Seeded)
	})
	return s.loaded
}

func (s *Session) load(ctx context.Context) LoadResult {
	var res LoadResult
	absent := false

	raw, err := s.loadRemote(ctx)
	switch {
	case err == nil:
		doc, shape, derr := model.DecodeDocument(raw, s.store.IDs())
		if derr == nil {
			s.store.Replace(doc)
			res.Source = LoadedRemote
			res.Migrated = shape != model.ShapeCurrent
			return res
		}
		res.RemoteErr = derr
		s.log.Warn("stored resume is unreadable, falling back to local cache", "error", derr)
	case errors.Is(err, ErrNotFound):
		absent = true
	default:
		res.RemoteErr = err
		s.log.Warn("loading remote resume failed, falling back to local cache", "error", err)
	}

	doc, shape, ok := s.loadLocal()
	if !ok {
		if t, ok := s.cachedTemplate(); ok {
			doc := s.store.Snapshot()
			doc.ActiveTemplate = t
			s.store.Replace(doc)
		}
		return res
	}
	s.store.Replace(doc)
	res.Source = LoadedLocal
	res.Migrated = shape != model.ShapeCurrent
	if absent {
		res.Seeded = s.sync.Seed(ctx, doc) == nil
	}
	return res
}

func (s *Session) loadRemote(ctx context.Context) ([]byte, error) {
	if s.remote == nil {
		return nil, ErrNotFound
	}
	return s.remote.Load(ctx)
}

func (s *Session) loadLocal() (domain.Resume, model.Shape, bool) {
	if s.local == nil {
		return domain.Resume{}, model.ShapeCurrent, false
	}
	raw, ok, err := s.local.Get(ResumeCacheKey)
	if err != nil {
		s.log.Warn("reading local resume cache failed", "error", err)
		return domain.Resume{}, model.ShapeCurrent, false
	}
	if !ok || raw == "" {
		return domain.Resume{}, model.ShapeCurrent, false
	}
	doc, shape, err := model.DecodeDocument([]byte(raw), s.store.IDs())
	if err != nil {
		s.log.Warn("local resume cache is unreadable", "error", err)
		return domain.Resume{}, model.ShapeCurrent, false
	}
	if t, ok := s.cachedTemplate(); ok {
		doc.ActiveTemplate = t
	}
	return doc, shape, true
}

func (s *Session) cachedTemplate() (domain.Template, bool) {
	if s.local == nil {
		return "", false
	}
	v, ok, err := s.local.Get(TemplateCacheKey)
	if err != nil || !ok {
		return "", false
	}
	return domain.ParseTemplate(v)
}

func (s *Session) Document() domain.Resume { return s.store.Snapshot() }

// Dispatch applies one edit. Persistence follows from the resulting change.
func (s *Session) Dispatch(a editor.Action) (editor.Change, error) {
	return s.store.Dispatch(a)
}

// ApplyLinkTemplate preselects a template requested by an entry link. It
// never writes; the choice is persisted by the next save.
func (s *Session) ApplyLinkTemplate(id string) error {
	t, ok := domain.ParseTemplate(id)
	if !ok {
		return fmt.Errorf("%w: %q", editor.ErrUnknownTemplate, id)
	}
	_, err := s.store.Dispatch(editor.SetTemplate{Template: t, SkipPersist: true})
	return err
}

// Save is the explicit save action.
func (s *Session) Save(ctx context.Context) Status {
	_ = s.sync.SaveNow(ctx)
	return s.sync.Status()
}

// Reset restores the default skeleton, drops the local copy and overwrites
// the remote one.
func (s *Session) Reset(ctx context.Context) error {
	doc := domain.NewResume(s.store.IDs())
	s.store.Replace(doc)
	return s.sync.Reset(ctx, doc)
}

func (s *Session) Status() Status { return s.sync.Status() }

// Page projects the current document with its active template.
func (s *Session) Page() render.Page {
	return render.ProjectActive(s.store.Snapshot())
}

// Preview renders the live preview document at the given zoom.
func (s *Session) Preview(zoom render.Zoom) (string, error) {
	return render.Document(s.Page(), render.DocumentOptions{
		Title:    s.title(),
		Zoom:     zoom,
		Controls: true,
	})
}

// Export prints the page as currently projected.
func (s *Session) Export(ctx context.Context, r Renderer) ([]byte, error) {
	html, err := render.Document(s.Page(), render.DocumentOptions{Title: s.title()})
	if err != nil {
		return nil, err
	}
	pdf, err := r.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("export resume: %w", err)
	}
	return pdf, nil
}

func (s *Session) title() string {
	if name := s.store.Snapshot().PersonalInfo.FullName; name != "" {
		return name + " - Resume"
	}
	return "Resume"
}

// Close stops the session, writing out a pending debounced save.
func (s *Session) Close(ctx context.Context) {
	if s.sync.Stop() {
		_ = s.sync.Flush(ctx)
	}
}
