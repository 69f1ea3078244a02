package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/editor"
)

func newTestSession(remote *fakeRemote, local *mapCache, clock *manualClock) *Session {
	deps := SessionDeps{
		Clock: clock,
		IDs:   &domain.SequenceIDs{},
		Sync:  SyncConfig{Debounce: 2 * time.Second, NoticeTTL: 3 * time.Second, Timeout: time.Second},
	}
	if remote != nil {
		deps.Remote = remote
	}
	if local != nil {
		deps.Local = local
	}
	return NewSession(uuid.New(), deps)
}

func TestDebounceCoalescesEdits(t *testing.T) {
	clock := newManualClock()
	remote := &fakeRemote{}
	s := newTestSession(remote, newMapCache(), clock)

	for _, name := range []string{"A", "Ad", "Ada", "Ada L", "Ada Lovelace"} {
		_, err := s.Dispatch(editor.UpdatePersonal{Field: "fullName", Value: name})
		require.NoError(t, err)
		assert.Equal(t, StatePending, s.Status().State)
		clock.Advance(100 * time.Millisecond)
	}

	clock.Advance(1800 * time.Millisecond)
	assert.Empty(t, remote.saved(), "window restarts on every edit")

	clock.Advance(100 * time.Millisecond)
	saves := remote.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, "Ada Lovelace", saves[0].ResumeData.PersonalInfo.FullName)
	assert.Equal(t, StateIdle, s.Status().State)

	clock.Advance(10 * time.Second)
	assert.Len(t, remote.saved(), 1)
}

func TestDebouncedSaveWritesLocalCache(t *testing.T) {
	clock := newManualClock()
	local := newMapCache()
	s := newTestSession(&fakeRemote{}, local, clock)

	_, err := s.Dispatch(editor.UpdatePersonal{Field: "email", Value: "ada@example.com"})
	require.NoError(t, err)
	clock.Advance(2 * time.Second)

	raw, ok, err := local.Get(ResumeCacheKey)
	require.NoError(t, err)
	require.True(t, ok)
	var doc domain.Resume
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "ada@example.com", doc.PersonalInfo.Email)

	tpl, ok, _ := local.Get(TemplateCacheKey)
	assert.True(t, ok)
	assert.Equal(t, "minimalist", tpl)
}

func TestExplicitSave(t *testing.T) {
	t.Run("LocalBeforeRemoteWithNotice", func(t *testing.T) {
		clock := newManualClock()
		j := &journal{}
		remote := &fakeRemote{log: j}
		local := newMapCache()
		local.log = j
		s := newTestSession(remote, local, clock)

		_, err := s.Dispatch(editor.UpdatePersonal{Field: "summary", Value: "Hello"})
		require.NoError(t, err)

		st := s.Save(context.Background())
		assert.Equal(t, []string{"local:" + ResumeCacheKey, "local:" + TemplateCacheKey, "remote"}, j.list())
		assert.False(t, st.Saving)
		require.NotNil(t, st.Notice)
		assert.True(t, st.Notice.OK)
		assert.Equal(t, StateIdle, st.State, "explicit save cancels the pending debounce")

		clock.Advance(2 * time.Second)
		assert.Len(t, remote.saved(), 1, "cancelled timer does not fire")
		assert.NotNil(t, s.Status().Notice)
		clock.Advance(time.Second)
		assert.Nil(t, s.Status().Notice, "notice expires")
	})

	t.Run("RemoteFailureStillWritesLocal", func(t *testing.T) {
		clock := newManualClock()
		remote := &fakeRemote{saveErr: errOffline}
		local := newMapCache()
		s := newTestSession(remote, local, clock)

		st := s.Save(context.Background())
		require.NotNil(t, st.Notice)
		assert.False(t, st.Notice.OK)
		_, ok, _ := local.Get(ResumeCacheKey)
		assert.True(t, ok)
	})

	t.Run("LocalFailureStillWritesRemote", func(t *testing.T) {
		clock := newManualClock()
		remote := &fakeRemote{}
		local := newMapCache()
		local.err = errOffline
		s := newTestSession(remote, local, clock)

		st := s.Save(context.Background())
		assert.False(t, st.Notice.OK)
		assert.Len(t, remote.saved(), 1)
	})
}

func TestTemplateChangeSavesImmediately(t *testing.T) {
	clock := newManualClock()
	remote := &fakeRemote{}
	s := newTestSession(remote, newMapCache(), clock)

	_, err := s.Dispatch(editor.UpdatePersonal{Field: "phone", Value: "555"})
	require.NoError(t, err)
	_, err = s.Dispatch(editor.SetTemplate{Template: domain.TemplateExecutive})
	require.NoError(t, err)

	saves := remote.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, "executive", saves[0].ActiveTemplate)
	assert.Equal(t, "555", saves[0].ResumeData.PersonalInfo.Phone)

	clock.Advance(5 * time.Second)
	assert.Len(t, remote.saved(), 1)

	t.Run("LinkTemplateSkipsPersist", func(t *testing.T) {
		require.NoError(t, s.ApplyLinkTemplate("modern"))
		assert.Equal(t, domain.TemplateModern, s.Document().ActiveTemplate)
		clock.Advance(5 * time.Second)
		assert.Len(t, remote.saved(), 1)
		assert.ErrorIs(t, s.ApplyLinkTemplate("fancy"), editor.ErrUnknownTemplate)
	})
}

func TestRevisionsIncrease(t *testing.T) {
	clock := newManualClock()
	remote := &fakeRemote{}
	s := newTestSession(remote, nil, clock)

	s.Save(context.Background())
	s.Save(context.Background())
	clock.Advance(time.Millisecond)
	s.Save(context.Background())

	saves := remote.saved()
	require.Len(t, saves, 3)
	assert.Equal(t, clock.Now().Add(-time.Millisecond).UnixNano(), saves[0].Revision)
	assert.Greater(t, saves[1].Revision, saves[0].Revision, "same instant still increases")
	assert.Greater(t, saves[2].Revision, saves[1].Revision)
}

func TestNoOpEditDoesNotSchedule(t *testing.T) {
	clock := newManualClock()
	s := newTestSession(&fakeRemote{}, nil, clock)

	_, err := s.Dispatch(editor.MoveSection{Section: domain.SectionSummary, Direction: editor.Up})
	require.NoError(t, err)
	assert.Equal(t, StateIdle, s.Status().State)
}

func TestCloseFlushesPending(t *testing.T) {
	clock := newManualClock()
	remote := &fakeRemote{}
	s := newTestSession(remote, nil, clock)

	_, err := s.Dispatch(editor.UpdatePersonal{Field: "fullName", Value: "Grace"})
	require.NoError(t, err)
	s.Close(context.Background())

	saves := remote.saved()
	require.Len(t, saves, 1)
	assert.Equal(t, "Grace", saves[0].ResumeData.PersonalInfo.FullName)
}
