package usecase

import (
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capsloque-org/ResumeBuilder/internal/domain"
)

const legacyDocument = `{
	"personalInfo": {"fullName": "Legacy User", "location": "Berlin"},
	"experience": [],
	"skills": {"technical": ["Go"], "languages": [], "tools": ["Docker"]}
}`

func encodeDoc(t *testing.T, doc domain.Resume) []byte {
	t.Helper()
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	return b
}

func TestLoadProtocol(t *testing.T) {
	ctx := context.Background()

	t.Run("RemoteWins", func(t *testing.T) {
		stored := domain.NewResume(&domain.SequenceIDs{})
		stored.PersonalInfo.FullName = "Remote"
		stored.ActiveTemplate = domain.TemplateModern
		remote := &fakeRemote{data: encodeDoc(t, stored)}
		local := newMapCache()
		local.values[ResumeCacheKey] = `{"personalInfo":{"fullName":"Local"}}`

		s := newTestSession(remote, local, newManualClock())
		res := s.Load(ctx)

		assert.Equal(t, LoadedRemote, res.Source)
		assert.False(t, res.Migrated)
		doc := s.Document()
		assert.Equal(t, "Remote", doc.PersonalInfo.FullName)
		assert.Equal(t, domain.TemplateModern, doc.ActiveTemplate)
		assert.Empty(t, remote.saved())
	})

	t.Run("RemoteLegacyIsMigrated", func(t *testing.T) {
		remote := &fakeRemote{data: []byte(legacyDocument)}
		s := newTestSession(remote, nil, newManualClock())
		res := s.Load(ctx)

		assert.Equal(t, LoadedRemote, res.Source)
		assert.True(t, res.Migrated)
		doc := s.Document()
		require.Len(t, doc.SkillCategories, 2)
		assert.Equal(t, "Technical Skills", doc.SkillCategories[0].Title)
		assert.Equal(t, []string{"Go"}, doc.SkillCategories[0].Skills)
		assert.Equal(t, "Tools & Frameworks", doc.SkillCategories[1].Title)
		assert.Equal(t, []string{"Docker"}, doc.SkillCategories[1].Skills)
		assert.Equal(t, domain.DefaultSectionOrder(), doc.SectionOrder)
		assert.Len(t, doc.Experience, 1)
		assert.Equal(t, "Berlin", doc.PersonalInfo.Location)
	})

	t.Run("LocalSeedsEmptyRemote", func(t *testing.T) {
		cached := domain.NewResume(&domain.SequenceIDs{})
		cached.PersonalInfo.FullName = "Cached"
		remote := &fakeRemote{}
		local := newMapCache()
		local.values[ResumeCacheKey] = string(encodeDoc(t, cached))
		local.values[TemplateCacheKey] = "executive"

		s := newTestSession(remote, local, newManualClock())
		res := s.Load(ctx)

		assert.Equal(t, LoadedLocal, res.Source)
		assert.True(t, res.Seeded)
		saves := remote.saved()
		require.Len(t, saves, 1)
		assert.Equal(t, "Cached", saves[0].ResumeData.PersonalInfo.FullName)
		assert.Equal(t, "executive", saves[0].ActiveTemplate)
		assert.Equal(t, domain.TemplateExecutive, s.Document().ActiveTemplate)
	})

	t.Run("RemoteFailureDoesNotSeed", func(t *testing.T) {
		remote := &fakeRemote{loadErr: errOffline}
		local := newMapCache()
		local.values[ResumeCacheKey] = legacyDocument

		s := newTestSession(remote, local, newManualClock())
		res := s.Load(ctx)

		assert.Equal(t, LoadedLocal, res.Source)
		assert.True(t, res.Migrated)
		assert.False(t, res.Seeded)
		assert.ErrorIs(t, res.RemoteErr, errOffline)
		assert.Empty(t, remote.saved())
		assert.Equal(t, "Legacy User", s.Document().PersonalInfo.FullName)
	})

	t.Run("NothingStoredKeepsSkeleton", func(t *testing.T) {
		remote := &fakeRemote{}
		local := newMapCache()
		local.values[TemplateCacheKey] = "modern"

		s := newTestSession(remote, local, newManualClock())
		before := s.Document()
		res := s.Load(ctx)

		assert.Equal(t, LoadedDefault, res.Source)
		after := s.Document()
		assert.Equal(t, domain.TemplateModern, after.ActiveTemplate)
		after.ActiveTemplate = before.ActiveTemplate
		assert.Equal(t, before, after)
		assert.Empty(t, remote.saved())
	})

	t.Run("RunsOnce", func(t *testing.T) {
		remote := &fakeRemote{}
		s := newTestSession(remote, nil, newManualClock())
		first := s.Load(ctx)
		remote.data = encodeDoc(t, domain.NewResume(nil))
		second := s.Load(ctx)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, remote.loads)
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	local := newMapCache()
	s := newTestSession(remote, local, newManualClock())

	_, err := s.Dispatch(setName("Someone"))
	require.NoError(t, err)
	s.Save(ctx)
	_, ok, _ := local.Get(ResumeCacheKey)
	require.True(t, ok)

	require.NoError(t, s.Reset(ctx))

	_, ok, _ = local.Get(ResumeCacheKey)
	assert.False(t, ok)
	doc := s.Document()
	assert.Empty(t, doc.PersonalInfo.FullName)
	assert.Equal(t, domain.TemplateMinimalist, doc.ActiveTemplate)

	saves := remote.saved()
	require.Len(t, saves, 2)
	assert.Empty(t, saves[1].ResumeData.PersonalInfo.FullName)
	assert.Equal(t, "minimalist", saves[1].ActiveTemplate)
	assert.Equal(t, StateIdle, s.Status().State)
}

func TestExportUsesCurrentProjection(t *testing.T) {
	s := newTestSession(nil, nil, newManualClock())
	_, err := s.Dispatch(setName("Printed Name"))
	require.NoError(t, err)

	r := &captureRenderer{}
	pdf, err := s.Export(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), pdf)
	assert.Contains(t, r.html, "Printed Name")
	assert.Contains(t, r.html, "<title>Printed Name - Resume</title>")
	assert.NotContains(t, r.html, "transform: scale(")

	preview, err := s.Preview(0)
	require.NoError(t, err)
	assert.Contains(t, preview, "transform: scale(0.7)")
}

type captureRenderer struct{ html string }

func (c *captureRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	c.html = html
	return []byte("%PDF"), nil
}
