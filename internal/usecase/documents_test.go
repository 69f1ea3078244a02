package usecase

import (
	"context"
	"testing"

	"github.com/buger/jsonparser"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/capsloque-org/ResumeBuilder/internal/adapter/repository"
	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/editor"
	"github.com/capsloque-org/ResumeBuilder/internal/model"
)

func setName(name string) editor.Action {
	return editor.UpdatePersonal{Field: "fullName", Value: name}
}

func TestDocuments(t *testing.T) {
	ctx := context.Background()
	user := uuid.New()

	t.Run("LoadMissing", func(t *testing.T) {
		docs := NewDocuments(repo.NewMemoryRepo(), nil, nil)
		_, err := docs.Load(ctx, user)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("LegacySaveIsStoredInCurrentShape", func(t *testing.T) {
		docs := NewDocuments(repo.NewMemoryRepo(), &domain.SequenceIDs{}, nil)
		doc, err := docs.SaveRaw(ctx, user, model.RawSaveRequest{
			ResumeData:     []byte(legacyDocument),
			ActiveTemplate: "modern",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TemplateModern, doc.ActiveTemplate)

		raw, err := docs.Load(ctx, user)
		require.NoError(t, err)
		_, dt, _, _ := jsonparser.Get(raw, "skills")
		assert.Equal(t, jsonparser.NotExist, dt, "legacy key is never written back")
		title, err := jsonparser.GetString(raw, "skillCategories", "[1]", "title")
		require.NoError(t, err)
		assert.Equal(t, "Tools & Frameworks", title)
		tpl, err := jsonparser.GetString(raw, "activeTemplate")
		require.NoError(t, err)
		assert.Equal(t, "modern", tpl)
	})

	t.Run("MalformedIsInvalid", func(t *testing.T) {
		docs := NewDocuments(repo.NewMemoryRepo(), nil, nil)
		_, err := docs.SaveRaw(ctx, user, model.RawSaveRequest{ResumeData: []byte(`"nope"`)})
		assert.ErrorIs(t, err, model.ErrInvalidDocument)
		_, err = docs.SaveRaw(ctx, user, model.RawSaveRequest{})
		assert.ErrorIs(t, err, model.ErrInvalidDocument)
	})

	t.Run("SchemaViolationIsInvalid", func(t *testing.T) {
		docs := NewDocuments(repo.NewMemoryRepo(), nil, nil)
		doc := domain.NewResume(nil)
		doc.SectionOrder = doc.SectionOrder[:2]
		_, err := docs.Save(ctx, user, model.SaveRequest{ResumeData: doc})
		assert.ErrorIs(t, err, model.ErrInvalidDocument)
	})

	t.Run("StaleRevision", func(t *testing.T) {
		docs := NewDocuments(repo.NewMemoryRepo(), nil, nil)
		doc := domain.NewResume(nil)
		_, err := docs.Save(ctx, user, model.SaveRequest{ResumeData: doc, Revision: 10})
		require.NoError(t, err)
		_, err = docs.Save(ctx, user, model.SaveRequest{ResumeData: doc, Revision: 9})
		assert.ErrorIs(t, err, repo.ErrStaleRevision)
	})

	t.Run("SessionRoundTrip", func(t *testing.T) {
		docs := NewDocuments(repo.NewMemoryRepo(), nil, nil)
		first := NewSession(user, SessionDeps{Remote: docs.Remote(user), Clock: newManualClock()})
		_, err := first.Dispatch(setName("Round Trip"))
		require.NoError(t, err)
		first.Save(ctx)

		second := NewSession(user, SessionDeps{Remote: docs.Remote(user)})
		res := second.Load(ctx)
		assert.Equal(t, LoadedRemote, res.Source)
		assert.Equal(t, "Round Trip", second.Document().PersonalInfo.FullName)
	})
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	remote := &fakeRemote{}
	reg := NewRegistry(func(user uuid.UUID) *Session {
		return NewSession(user, SessionDeps{Remote: remote, Clock: newManualClock()})
	})
	user := uuid.New()

	_, err := reg.Lookup(user)
	assert.ErrorIs(t, err, ErrNoSession)

	s := reg.Open(ctx, user)
	assert.Same(t, s, reg.Open(ctx, user))
	assert.Equal(t, 1, remote.loads)
	found, err := reg.Lookup(user)
	require.NoError(t, err)
	assert.Same(t, s, found)

	_, err = s.Dispatch(setName("Pending"))
	require.NoError(t, err)
	reg.Close(ctx)
	require.Len(t, remote.saved(), 1)
	_, err = reg.Lookup(user)
	assert.ErrorIs(t, err, ErrNoSession)
}
