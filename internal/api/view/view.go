// Package view converts session state into the representation served by the API.
package view

import (
	"time"

	"github.com/m-zajac/ghdashboard/internal/app"
)

// View list limits.
const (
	MaxEvents       = 10
	MaxContributors = 10
	MaxPullRequests = 5
	MaxIssues       = 5
)

// State is a session state view.
type State struct {
	Busy          bool           `json:"busy"`
	Error         string         `json:"error,omitempty"`
	User          *User          `json:"user"`
	Organizations []Organization `json:"organizations"`
	Events        []Event        `json:"events"`
	Repositories  []Repository   `json:"repositories"`
	Expanded      int64          `json:"expanded,omitempty"`
	Detail        *Detail        `json:"detail,omitempty"`
}

// User view.
type User struct {
	Login       string    `json:"login"`
	Name        string    `json:"name,omitempty"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio,omitempty"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	HTMLURL     string    `json:"html_url"`
	Location    string    `json:"location,omitempty"`
	Company     string    `json:"company,omitempty"`
	Blog        string    `json:"blog,omitempty"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Organization view.
type Organization struct {
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
}

// Event view.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	RepoName  string    `json:"repo_name"`
	RepoURL   string    `json:"repo_url"`
}

// Repository view. State is one of "collapsed", "loading" or "expanded".
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Owner       string    `json:"owner"`
	Description *string   `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Stars       int       `json:"stars"`
	Language    *string   `json:"language"`
	UpdatedAt   time.Time `json:"updated_at"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"open_issues"`
	Watchers    int       `json:"watchers"`
	License     *string   `json:"license"`
	State       string    `json:"state"`
}

// Contributor view.
type Contributor struct {
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

// Ticket is a pull request or issue view.
type Ticket struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	HTMLURL   string    `json:"html_url"`
	State     string    `json:"state"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// Detail is a repository detail view.
type Detail struct {
	RepositoryID    int64         `json:"repository_id"`
	Topics          []string      `json:"topics"`
	Contributors    []Contributor `json:"contributors"`
	PullRequests    []Ticket      `json:"pull_requests"`
	Issues          []Ticket      `json:"issues"`
	ReadmeTitle     string        `json:"readme_title,omitempty"`
	Readme          string        `json:"readme"`
	ReadmeHTML      string        `json:"readme_html"`
	ReadmeTruncated bool          `json:"readme_truncated"`
	Missing         []string      `json:"missing"`
}

// NewState creates state view. Detail is set only for expanded repository with fetched detail.
func NewState(s app.SessionState) State {
	v := State{
		Busy:          s.Busy,
		Error:         s.Error,
		Organizations: make([]Organization, 0, len(s.Organizations)),
		Events:        make([]Event, 0, MaxEvents),
		Repositories:  make([]Repository, 0, len(s.Repositories)),
		Expanded:      s.Expanded,
	}

	if s.User != nil {
		u := newUser(*s.User)
		v.User = &u
	}
	for _, o := range s.Organizations {
		v.Organizations = append(v.Organizations, Organization{
			Login:       o.Login,
			AvatarURL:   o.AvatarURL,
			Description: o.Description,
			URL:         o.URL,
		})
	}
	for i, e := range s.Events {
		if i == MaxEvents {
			break
		}
		v.Events = append(v.Events, Event{
			ID:        e.ID,
			Type:      e.Type,
			CreatedAt: e.CreatedAt,
			RepoName:  e.Repo.Name,
			RepoURL:   e.Repo.URL,
		})
	}
	for _, r := range s.Repositories {
		v.Repositories = append(v.Repositories, newRepository(r, s.RepositoryState(r.ID)))
	}

	if d, ok := s.Detail(s.Expanded); ok && s.Expanded != 0 {
		dv := NewDetail(s.Expanded, d)
		v.Detail = &dv
	}

	return v
}

func newUser(u app.User) User {
	return User{
		Login:       u.Login,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		PublicRepos: u.PublicRepos,
		PublicGists: u.PublicGists,
		Followers:   u.Followers,
		Following:   u.Following,
		HTMLURL:     u.HTMLURL,
		Location:    u.Location,
		Company:     u.Company,
		Blog:        u.Blog,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
	}
}

func newRepository(r app.Repository, state app.RepositoryState) Repository {
	return Repository{
		ID:          r.ID,
		Name:        r.Name,
		Owner:       r.OwnerLogin,
		Description: r.Description,
		HTMLURL:     r.HTMLURL,
		Stars:       r.Stars,
		Language:    r.Language,
		UpdatedAt:   r.UpdatedAt,
		Forks:       r.Forks,
		OpenIssues:  r.OpenIssues,
		Watchers:    r.Watchers,
		License:     r.License,
		State:       state.String(),
	}
}

// NewDetail creates detail view of repository with given id.
func NewDetail(repoID int64, d app.Detail) Detail {
	v := Detail{
		RepositoryID: repoID,
		Topics:       make([]string, 0, len(d.Topics)),
		Contributors: make([]Contributor, 0, MaxContributors),
		PullRequests: make([]Ticket, 0, MaxPullRequests),
		Issues:       make([]Ticket, 0, MaxIssues),
		Missing:      make([]string, 0, len(d.Missing)),
	}

	v.Topics = append(v.Topics, d.Topics...)
	for i, c := range d.Contributors {
		if i == MaxContributors {
			break
		}
		v.Contributors = append(v.Contributors, Contributor{
			Login:         c.Login,
			AvatarURL:     c.AvatarURL,
			HTMLURL:       c.HTMLURL,
			Contributions: c.Contributions,
		})
	}
	for i, p := range d.PullRequests {
		if i == MaxPullRequests {
			break
		}
		v.PullRequests = append(v.PullRequests, Ticket{
			ID:        p.ID,
			Title:     p.Title,
			HTMLURL:   p.HTMLURL,
			State:     p.State,
			Author:    p.Author.Login,
			CreatedAt: p.CreatedAt,
		})
	}
	for i, is := range d.Issues {
		if i == MaxIssues {
			break
		}
		v.Issues = append(v.Issues, Ticket{
			ID:        is.ID,
			Title:     is.Title,
			HTMLURL:   is.HTMLURL,
			State:     is.State,
			Author:    is.Author.Login,
			CreatedAt: is.CreatedAt,
		})
	}
	for _, m := range d.Missing {
		v.Missing = append(v.Missing, string(m))
	}

	readme := NewReadme(d.Readme)
	v.ReadmeTitle = readme.Title
	v.Readme = readme.Excerpt
	v.ReadmeHTML = readme.HTML
	v.ReadmeTruncated = readme.Truncated

	return v
}
