package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSearchGenerations(t *testing.T) {
	t.Parallel()

	s := NewSession()

	firstCanceled := false
	gen1 := s.beginSearch(func() { firstCanceled = true })
	assert.True(t, s.State().Busy)

	gen2 := s.beginSearch(func() {})
	assert.True(t, firstCanceled)
	assert.NotEqual(t, gen1, gen2)

	assert.False(t, s.publish(gen1, searchResult{user: &User{Login: "old"}}))
	assert.True(t, s.State().Busy)
	assert.Nil(t, s.State().User)

	assert.True(t, s.publish(gen2, searchResult{
		user:  &User{Login: "new"},
		repos: []Repository{{ID: 1, Name: "r"}},
	}))
	state := s.State()
	assert.False(t, state.Busy)
	require.NotNil(t, state.User)
	assert.Equal(t, "new", state.User.Login)

	assert.False(t, s.fail(gen1, "stale"))
	assert.Empty(t, s.State().Error)
}

func TestSessionBeginSearchKeepsResultsAndClearsError(t *testing.T) {
	t.Parallel()

	s := NewSession()
	gen := s.beginSearch(func() {})
	require.True(t, s.fail(gen, SearchErrorMessage))
	assert.Equal(t, SearchErrorMessage, s.State().Error)

	gen = s.beginSearch(func() {})
	assert.Empty(t, s.State().Error)
	require.True(t, s.publish(gen, searchResult{user: &User{Login: "u"}}))

	s.beginSearch(func() {})
	state := s.State()
	assert.True(t, state.Busy)
	require.NotNil(t, state.User)
	assert.Equal(t, "u", state.User.Login)
}

func TestSessionToggle(t *testing.T) {
	t.Parallel()

	s := NewSession()
	gen := s.beginSearch(func() {})
	require.True(t, s.publish(gen, searchResult{
		repos: []Repository{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}},
	}))

	resultsGen, repo, fetch, err := s.toggle(1)
	require.NoError(t, err)
	assert.True(t, fetch)
	assert.Equal(t, "a", repo.Name)
	assert.Equal(t, RepositoryLoading, s.State().RepositoryState(1))

	require.True(t, s.storeDetail(resultsGen, 1, Detail{Readme: "x"}))
	assert.Equal(t, RepositoryExpanded, s.State().RepositoryState(1))

	_, _, fetch, err = s.toggle(1)
	require.NoError(t, err)
	assert.False(t, fetch)
	assert.Equal(t, RepositoryCollapsed, s.State().RepositoryState(1))

	_, _, fetch, err = s.toggle(1)
	require.NoError(t, err)
	assert.False(t, fetch)

	_, _, fetch, err = s.toggle(2)
	require.NoError(t, err)
	assert.True(t, fetch)
	assert.Equal(t, int64(2), s.State().Expanded)

	s.abortExpand(resultsGen, 2)
	assert.Zero(t, s.State().Expanded)

	_, _, _, err = s.toggle(3)
	assert.True(t, IsNotFoundError(err))
}

func TestSessionDropsDetailOfReplacedResults(t *testing.T) {
	t.Parallel()

	s := NewSession()
	gen := s.beginSearch(func() {})
	require.True(t, s.publish(gen, searchResult{repos: []Repository{{ID: 1}}}))

	resultsGen, _, _, err := s.toggle(1)
	require.NoError(t, err)

	gen = s.beginSearch(func() {})
	require.True(t, s.publish(gen, searchResult{repos: []Repository{{ID: 1}}}))

	assert.False(t, s.storeDetail(resultsGen, 1, Detail{}))
	assert.Empty(t, s.State().Details)
	assert.Zero(t, s.State().Expanded)
}

func TestSessionStateIsSnapshot(t *testing.T) {
	t.Parallel()

	s := NewSession()
	gen := s.beginSearch(context.CancelFunc(func() {}))
	require.True(t, s.publish(gen, searchResult{repos: []Repository{{ID: 1}}}))
	resultsGen, _, _, err := s.toggle(1)
	require.NoError(t, err)

	before := s.State()
	require.True(t, s.storeDetail(resultsGen, 1, Detail{}))
	assert.Empty(t, before.Details)
	assert.Len(t, s.State().Details, 1)
}
