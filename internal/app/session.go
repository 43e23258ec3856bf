package app

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// RepositoryState is display state of a single repository.
type RepositoryState int

// Repository states.
const (
	RepositoryCollapsed RepositoryState = iota
	RepositoryLoading
	RepositoryExpanded
)

// String returns state name.
func (s RepositoryState) String() string {
	switch s {
	case RepositoryLoading:
		return "loading"
	case RepositoryExpanded:
		return "expanded"
	default:
		return "collapsed"
	}
}

// SessionState is a point-in-time snapshot of a Session.
type SessionState struct {
	Busy          bool
	Error         string
	User          *User
	Repositories  []Repository
	Organizations []Organization
	Events        []Event

	// Expanded is an id of currently expanded repository, 0 if none.
	Expanded int64
	Details  map[int64]Detail
}

// RepositoryState returns display state of repository with given id.
func (s SessionState) RepositoryState(id int64) RepositoryState {
	if id == 0 || s.Expanded != id {
		return RepositoryCollapsed
	}
	if _, ok := s.Details[id]; ok {
		return RepositoryExpanded
	}
	return RepositoryLoading
}

// Detail returns cached detail for repository with given id.
func (s SessionState) Detail(id int64) (Detail, bool) {
	d, ok := s.Details[id]
	return d, ok
}

// Session holds view state for a single dashboard user.
//
// Search results are replaced only as a whole. Details are merged one repository at a time
// and are dropped together with the results they were fetched for.
type Session struct {
	m sync.Mutex

	// searchGen identifies the latest requested search, resultsGen the published results.
	searchGen    uint64
	resultsGen   uint64
	cancelSearch context.CancelFunc

	busy     bool
	errMsg   string
	user     *User
	repos    []Repository
	orgs     []Organization
	events   []Event
	expanded int64
	details  map[int64]Detail

	detailFlights singleflight.Group
}

// NewSession creates new, empty Session instance.
func NewSession() *Session {
	return &Session{
		details: make(map[int64]Detail),
	}
}

// State returns snapshot of the session.
func (s *Session) State() SessionState {
	s.m.Lock()
	defer s.m.Unlock()

	details := make(map[int64]Detail, len(s.details))
	for id, d := range s.details {
		details[id] = d
	}

	return SessionState{
		Busy:          s.busy,
		Error:         s.errMsg,
		User:          s.user,
		Repositories:  s.repos,
		Organizations: s.orgs,
		Events:        s.events,
		Expanded:      s.expanded,
		Details:       details,
	}
}

type searchResult struct {
	user   *User
	repos  []Repository
	orgs   []Organization
	events []Event
}

// beginSearch marks the session busy and supersedes any search in flight.
func (s *Session) beginSearch(cancel context.CancelFunc) uint64 {
	s.m.Lock()
	defer s.m.Unlock()

	if s.cancelSearch != nil {
		s.cancelSearch()
	}
	s.cancelSearch = cancel
	s.searchGen++
	s.busy = true
	s.errMsg = ""

	return s.searchGen
}

// publish replaces results with r. Returns false if search gen was superseded.
func (s *Session) publish(gen uint64, r searchResult) bool {
	s.m.Lock()
	defer s.m.Unlock()

	if gen != s.searchGen {
		return false
	}
	s.finishSearch()
	s.user = r.user
	s.repos = r.repos
	s.orgs = r.orgs
	s.events = r.events

	return true
}

// fail clears results and sets error message. Returns false if search gen was superseded.
func (s *Session) fail(gen uint64, msg string) bool {
	s.m.Lock()
	defer s.m.Unlock()

	if gen != s.searchGen {
		return false
	}
	s.finishSearch()
	s.errMsg = msg
	s.user = nil
	s.repos = nil
	s.orgs = nil
	s.events = nil

	return true
}

// finishSearch must be called with s.m held.
func (s *Session) finishSearch() {
	s.cancelSearch = nil
	s.busy = false
	s.errMsg = ""
	s.resultsGen++
	s.expanded = 0
	s.details = make(map[int64]Detail)
}

// toggle flips expansion of repository with given id.
// Returns the repository and true when its detail has to be fetched.
func (s *Session) toggle(id int64) (uint64, Repository, bool, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if id != 0 && s.expanded == id {
		s.expanded = 0
		return s.resultsGen, Repository{}, false, nil
	}

	var (
		repo  Repository
		found bool
	)
	for _, r := range s.repos {
		if r.ID == id {
			repo = r
			found = true
			break
		}
	}
	if !found {
		return s.resultsGen, Repository{}, false, NotFoundError("repository not found in current results")
	}

	s.expanded = id
	_, cached := s.details[id]

	return s.resultsGen, repo, !cached, nil
}

// storeDetail caches d. Returns false if results gen was superseded.
func (s *Session) storeDetail(gen uint64, id int64, d Detail) bool {
	s.m.Lock()
	defer s.m.Unlock()

	if gen != s.resultsGen {
		return false
	}
	s.details[id] = d

	return true
}

// abortExpand collapses repository whose detail couldn't be fetched.
func (s *Session) abortExpand(gen uint64, id int64) {
	s.m.Lock()
	defer s.m.Unlock()

	if gen == s.resultsGen && s.expanded == id {
		s.expanded = 0
	}
}
