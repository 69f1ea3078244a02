package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/editor"
	"github.com/capsloque-org/ResumeBuilder/internal/model"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateSaving
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSaving:
		return "saving"
	}
	return "idle"
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(b []byte) error {
	switch string(b) {
	case "idle":
		*s = StateIdle
	case "pending":
		*s = StatePending
	case "saving":
		*s = StateSaving
	default:
		return fmt.Errorf("unknown sync state %q", b)
	}
	return nil
}

// Notice is the transient outcome of an explicit save.
type Notice struct {
	OK      bool      `json:"ok"`
	Message string    `json:"message"`
	Expires time.Time `json:"expires"`
}

type Status struct {
	State  State   `json:"state"`
	Saving bool    `json:"saving"`
	Notice *Notice `json:"notice,omitempty"`
}

type SyncConfig struct {
	Debounce  time.Duration
	NoticeTTL time.Duration
	// Timeout bounds each save started by a timer or an edit.
	Timeout time.Duration
}

func DefaultSyncConfig() SyncConfig {
	return SyncConfig{Debounce: 2 * time.Second, NoticeTTL: 3 * time.Second, Timeout: 10 * time.Second}
}

// Synchronizer keeps the remote store and the local cache in step with an
// editor store. Debounced saves coalesce bursts of edits into one write of
// the latest document; immediate and explicit saves write right away and
// cancel any pending timer. Write failures are logged, never returned to
// the edit path.
type Synchronizer struct {
	store  *editor.Store
	remote RemoteStore
	local  LocalCache
	clock  Clock
	cfg    SyncConfig
	log    *slog.Logger

	mu       sync.Mutex
	timer    Timer
	gen      uint64
	inflight int
	saving   bool
	notice   *Notice
	revision int64
}

func NewSynchronizer(store *editor.Store, remote RemoteStore, local LocalCache, clock Clock, cfg SyncConfig, log *slog.Logger) *Synchronizer {
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	def := DefaultSyncConfig()
	if cfg.Debounce <= 0 {
		cfg.Debounce = def.Debounce
	}
	if cfg.NoticeTTL <= 0 {
		cfg.NoticeTTL = def.NoticeTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	return &Synchronizer{store: store, remote: remote, local: local, clock: clock, cfg: cfg, log: log}
}

// Touch records an edit: the debounce timer is (re)started.
func (s *Synchronizer) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	gen := s.gen
	s.timer = s.clock.AfterFunc(s.cfg.Debounce, func() { s.fire(gen) })
}

// fire runs when the debounce window elapsed without further edits. The
// payload is the document as of now, not as of the first edit.
func (s *Synchronizer) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.timer == nil {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.inflight++
	doc, rev := s.stampLocked()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
	defer cancel()
	_ = s.write(ctx, "debounced", doc, rev)

	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

// Flush writes the current document immediately.
func (s *Synchronizer) Flush(ctx context.Context) error {
	s.mu.Lock()
	s.cancelLocked()
	s.inflight++
	doc, rev := s.stampLocked()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()
	err := s.write(ctx, "immediate", doc, rev)

	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
	return err
}

// SaveNow is the user's explicit save: local cache first, then remote.
// While it runs Status reports Saving; afterwards a Notice describes the
// outcome until it expires.
func (s *Synchronizer) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	s.cancelLocked()
	s.inflight++
	s.saving = true
	doc, rev := s.stampLocked()
	s.mu.Unlock()

	err := s.write(ctx, "explicit", doc, rev)

	notice := &Notice{OK: err == nil, Message: "Progress saved", Expires: s.clock.Now().Add(s.cfg.NoticeTTL)}
	if err != nil {
		notice.Message = "Save failed"
	}
	s.mu.Lock()
	s.inflight--
	s.saving = false
	s.notice = notice
	s.mu.Unlock()
	return err
}

// Seed writes doc to the remote store only. It is used once, when the
// remote reported no document and the local cache supplied one.
func (s *Synchronizer) Seed(ctx context.Context, doc domain.Resume) error {
	err := s.writeRemote(ctx, doc, s.nextRevision())
	if err != nil {
		s.log.Warn("seeding remote resume failed", "error", err)
		return err
	}
	s.log.Info("seeded remote resume from local cache")
	return nil
}

// Reset drops the cached document and overwrites the remote one with doc.
func (s *Synchronizer) Reset(ctx context.Context, doc domain.Resume) error {
	s.mu.Lock()
	s.cancelLocked()
	rev := s.nextRevisionLocked()
	s.mu.Unlock()

	var errs []error
	if s.local != nil {
		if err := s.local.Delete(ResumeCacheKey); err != nil {
			errs = append(errs, fmt.Errorf("local cache: %w", err))
		}
	}
	if err := s.writeRemote(ctx, doc, rev); err != nil {
		errs = append(errs, err)
	}
	err := errors.Join(errs...)
	if err != nil {
		s.log.Warn("resetting resume failed", "error", err)
	}
	return err
}

// Stop cancels a pending debounce and reports whether one was pending.
func (s *Synchronizer) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.timer != nil
	s.cancelLocked()
	return pending
}

func (s *Synchronizer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{State: StateIdle, Saving: s.saving}
	switch {
	case s.timer != nil:
		st.State = StatePending
	case s.inflight > 0:
		st.State = StateSaving
	}
	if s.notice != nil && s.clock.Now().Before(s.notice.Expires) {
		n := *s.notice
		st.Notice = &n
	}
	return st
}

func (s *Synchronizer) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// stampLocked takes the document to write together with its revision, so
// revisions follow the order in which snapshots were taken rather than the
// order in which writes reach the remote.
func (s *Synchronizer) stampLocked() (domain.Resume, int64) {
	return s.store.Snapshot(), s.nextRevisionLocked()
}

func (s *Synchronizer) nextRevision() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextRevisionLocked()
}

// nextRevisionLocked stamps a write with the clock, strictly increasing even
// when the clock does not advance.
func (s *Synchronizer) nextRevisionLocked() int64 {
	r := s.clock.Now().UnixNano()
	if r <= s.revision {
		r = s.revision + 1
	}
	s.revision = r
	return r
}

// write stores doc locally, then remotely. The remote write is attempted
// whatever the local outcome.
func (s *Synchronizer) write(ctx context.Context, reason string, doc domain.Resume, rev int64) error {
	var errs []error
	if err := s.writeLocal(doc); err != nil {
		errs = append(errs, fmt.Errorf("local cache: %w", err))
	}
	if err := s.writeRemote(ctx, doc, rev); err != nil {
		errs = append(errs, err)
	}
	err := errors.Join(errs...)
	if err != nil {
		s.log.Warn("saving resume failed", "reason", reason, "error", err)
		return err
	}
	s.log.Debug("resume saved", "reason", reason)
	return nil
}

func (s *Synchronizer) writeLocal(doc domain.Resume) error {
	if s.local == nil {
		return nil
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.local.Set(ResumeCacheKey, string(body)); err != nil {
		return err
	}
	return s.local.Set(TemplateCacheKey, string(doc.ActiveTemplate))
}

func (s *Synchronizer) writeRemote(ctx context.Context, doc domain.Resume, rev int64) error {
	if s.remote == nil {
		return nil
	}
	req := model.SaveRequest{
		ResumeData:     doc,
		ActiveTemplate: string(doc.ActiveTemplate),
		Revision:       rev,
	}
	if err := s.remote.Save(ctx, req); err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	return nil
}
