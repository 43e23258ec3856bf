package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SearchErrorMessage is published in session state when a search fails, whatever the cause.
const SearchErrorMessage = "failed to fetch user data; check the username and try again"

// GithubClient returns github users and repositories data.
//
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/m-zajac/ghdashboard/internal/app GithubClient
type GithubClient interface {
	User(ctx context.Context, username string) (*User, error)
	UserRepositories(ctx context.Context, username string) ([]Repository, error)
	UserOrganizations(ctx context.Context, username string) ([]Organization, error)
	UserEvents(ctx context.Context, username string) ([]Event, error)

	RepositoryTopics(ctx context.Context, owner string, name string) ([]string, error)
	RepositoryContributors(ctx context.Context, owner string, name string) ([]Contributor, error)
	RepositoryPullRequests(ctx context.Context, owner string, name string) ([]PullRequest, error)
	RepositoryIssues(ctx context.Context, owner string, name string) ([]Issue, error)
	RepositoryReadme(ctx context.Context, owner string, name string) (string, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
	l            logrus.FieldLogger
}

// NewService creates new Service instance
func NewService(githubClient GithubClient, timeout time.Duration, l logrus.FieldLogger) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
		l:            l,
	}
}

// Search fetches profile, repositories, organizations and public events of given user
// and publishes them in the session.
//
// If any of the fetches fails, nothing is published: session results are cleared and
// SearchErrorMessage is set. The underlying error is returned as UnavailableError.
// Results of a search superseded by a newer one are dropped.
func (s *Service) Search(ctx context.Context, sess *Session, username string) (SessionState, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return sess.State(), InvalidRequestError("username cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	gen := sess.beginSearch(cancel)

	var res searchResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		user, err := s.githubClient.User(gctx, username)
		if err != nil {
			return fmt.Errorf("retrieving user: %w", err)
		}
		res.user = user
		return nil
	})
	g.Go(func() error {
		repos, err := s.githubClient.UserRepositories(gctx, username)
		if err != nil {
			return fmt.Errorf("retrieving repositories: %w", err)
		}
		res.repos = repos
		return nil
	})
	g.Go(func() error {
		orgs, err := s.githubClient.UserOrganizations(gctx, username)
		if err != nil {
			return fmt.Errorf("retrieving organizations: %w", err)
		}
		res.orgs = orgs
		return nil
	})
	g.Go(func() error {
		events, err := s.githubClient.UserEvents(gctx, username)
		if err != nil {
			return fmt.Errorf("retrieving events: %w", err)
		}
		res.events = events
		return nil
	})

	if err := g.Wait(); err != nil {
		if !sess.fail(gen, SearchErrorMessage) {
			s.l.Debugf("search for %s superseded, dropping error: %v", username, err)
			return sess.State(), nil
		}
		return sess.State(), UnavailableError{Err: fmt.Errorf("searching user %s: %w", username, err)}
	}

	if !sess.publish(gen, res) {
		s.l.Debugf("search for %s superseded, dropping results", username)
	}

	return sess.State(), nil
}

// ToggleRepository expands or collapses repository with given id.
//
// Only one repository is expanded at a time. Detail is fetched on first expansion only,
// later expansions use the session cache. A part of the detail that can't be fetched is
// left empty; if all parts fail, the repository is collapsed back and the error is returned.
// Concurrent expansions of the same repository share a single fetch. When ctx is done
// before the detail arrives, the fetch carries on and its result is still cached.
func (s *Service) ToggleRepository(ctx context.Context, sess *Session, repoID int64) (SessionState, error) {
	gen, repo, fetch, err := sess.toggle(repoID)
	if err != nil {
		return sess.State(), err
	}
	if !fetch {
		return sess.State(), nil
	}

	// Shared by concurrent expansions, outlives a cancelled caller.
	flightCtx := context.WithoutCancel(ctx)
	key := fmt.Sprintf("%d/%d", gen, repo.ID)
	ch := sess.detailFlights.DoChan(key, func() (interface{}, error) {
		detail, err := s.fetchDetail(flightCtx, repo)
		if err != nil {
			sess.abortExpand(gen, repo.ID)
			return nil, err
		}
		if !sess.storeDetail(gen, repo.ID, detail) {
			s.l.Debugf("results changed, dropping %s/%s detail", repo.OwnerLogin, repo.Name)
		}
		return nil, nil
	})

	select {
	case res := <-ch:
		return sess.State(), res.Err
	case <-ctx.Done():
		return sess.State(), UnavailableError{
			Err: fmt.Errorf("waiting for %s/%s detail: %w", repo.OwnerLogin, repo.Name, ctx.Err()),
		}
	}
}

func (s *Service) fetchDetail(ctx context.Context, repo Repository) (Detail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	owner, name := repo.OwnerLogin, repo.Name

	var (
		detail Detail
		m      sync.Mutex
		errs   = make(map[DetailPart]error)
		g      errgroup.Group
	)
	failed := func(part DetailPart, err error) {
		s.l.Warnf("retrieving %s/%s %s: %v", owner, name, part, err)
		m.Lock()
		errs[part] = err
		m.Unlock()
	}

	g.Go(func() error {
		topics, err := s.githubClient.RepositoryTopics(ctx, owner, name)
		if err != nil {
			failed(DetailTopics, err)
			return nil
		}
		detail.Topics = topics
		return nil
	})
	g.Go(func() error {
		contributors, err := s.githubClient.RepositoryContributors(ctx, owner, name)
		if err != nil {
			failed(DetailContributors, err)
			return nil
		}
		detail.Contributors = contributors
		return nil
	})
	g.Go(func() error {
		pulls, err := s.githubClient.RepositoryPullRequests(ctx, owner, name)
		if err != nil {
			failed(DetailPullRequests, err)
			return nil
		}
		detail.PullRequests = pulls
		return nil
	})
	g.Go(func() error {
		issues, err := s.githubClient.RepositoryIssues(ctx, owner, name)
		if err != nil {
			failed(DetailIssues, err)
			return nil
		}
		detail.Issues = issues
		return nil
	})
	g.Go(func() error {
		readme, err := s.githubClient.RepositoryReadme(ctx, owner, name)
		if err != nil {
			failed(DetailReadme, err)
			return nil
		}
		detail.Readme = readme
		return nil
	})
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return Detail{}, UnavailableError{
			Err: fmt.Errorf("retrieving %s/%s detail: %w", owner, name, err),
		}
	}

	parts := []DetailPart{DetailTopics, DetailContributors, DetailPullRequests, DetailIssues, DetailReadme}
	var joined []error
	for _, part := range parts {
		if err, ok := errs[part]; ok {
			detail.Missing = append(detail.Missing, part)
			joined = append(joined, fmt.Errorf("%s: %w", part, err))
		}
	}
	if len(joined) == len(parts) {
		return Detail{}, UnavailableError{
			Err: fmt.Errorf("retrieving %s/%s detail: %w", owner, name, errors.Join(joined...)),
		}
	}

	return detail, nil
}
