package github

import (
	"time"

	"github.com/m-zajac/ghdashboard/internal/app"
)

type userResponse struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	PublicGists int       `json:"public_gists"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	HTMLURL     string    `json:"html_url"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Blog        string    `json:"blog"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u userResponse) ToUser() app.User {
	return app.User{
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

type repositoriesResponse []struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Owner       owner     `json:"owner"`
	Description *string   `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Stars       int       `json:"stargazers_count"`
	Language    *string   `json:"language"`
	UpdatedAt   time.Time `json:"updated_at"`
	Forks       int       `json:"forks_count"`
	OpenIssues  int       `json:"open_issues_count"`
	Watchers    int       `json:"watchers_count"`
	License     *struct {
		Name string `json:"name"`
	} `json:"license"`
	Topics []string `json:"topics"`
}

type owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

func (r repositoriesResponse) ToRepositories() []app.Repository {
	rs := make([]app.Repository, 0, len(r))
	for _, el := range r {
		repo := app.Repository{
			ID:          el.ID,
			Name:        el.Name,
			OwnerLogin:  el.Owner.Login,
			Description: el.Description,
			HTMLURL:     el.HTMLURL,
			Stars:       el.Stars,
			Language:    el.Language,
			UpdatedAt:   el.UpdatedAt,
			Forks:       el.Forks,
			OpenIssues:  el.OpenIssues,
			Watchers:    el.Watchers,
			Topics:      el.Topics,
		}
		if el.License != nil {
			name := el.License.Name
			repo.License = &name
		}
		rs = append(rs, repo)
	}

	return rs
}

type organizationsResponse []struct {
	Login       string `json:"login"`
	AvatarURL   string `json:"avatar_url"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

func (o organizationsResponse) ToOrganizations() []app.Organization {
	os := make([]app.Organization, 0, len(o))
	for _, el := range o {
		os = append(os, app.Organization{
			Login:       el.Login,
			AvatarURL:   el.AvatarURL,
			Description: el.Description,
			URL:         el.URL,
		})
	}

	return os
}

type eventsResponse []struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Repo      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"repo"`
}

func (e eventsResponse) ToEvents() []app.Event {
	es := make([]app.Event, 0, len(e))
	for _, el := range e {
		es = append(es, app.Event{
			ID:        el.ID,
			Type:      el.Type,
			CreatedAt: el.CreatedAt,
			Repo: app.EventRepository{
				Name: el.Repo.Name,
				URL:  el.Repo.URL,
			},
		})
	}

	return es
}

type topicsResponse struct {
	Names []string `json:"names"`
}

func (t topicsResponse) ToTopics() []string {
	ts := make([]string, 0, len(t.Names))
	return append(ts, t.Names...)
}

type contributorsResponse []struct {
	Login         string `json:"login"`
	AvatarURL     string `json:"avatar_url"`
	HTMLURL       string `json:"html_url"`
	Contributions int    `json:"contributions"`
}

func (c contributorsResponse) ToContributors() []app.Contributor {
	cs := make([]app.Contributor, 0, len(c))
	for _, el := range c {
		cs = append(cs, app.Contributor{
			Login:         el.Login,
			AvatarURL:     el.AvatarURL,
			HTMLURL:       el.HTMLURL,
			Contributions: el.Contributions,
		})
	}

	return cs
}

// ticket is the shape shared by pull requests and issues.
type ticket struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	HTMLURL   string    `json:"html_url"`
	State     string    `json:"state"`
	User      owner     `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func (t ticket) author() app.Author {
	return app.Author{
		Login:     t.User.Login,
		AvatarURL: t.User.AvatarURL,
	}
}

type pullRequestsResponse []ticket

func (p pullRequestsResponse) ToPullRequests() []app.PullRequest {
	ps := make([]app.PullRequest, 0, len(p))
	for _, el := range p {
		ps = append(ps, app.PullRequest{
			ID:        el.ID,
			Title:     el.Title,
			HTMLURL:   el.HTMLURL,
			State:     el.State,
			Author:    el.author(),
			CreatedAt: el.CreatedAt,
		})
	}

	return ps
}

type issuesResponse []ticket

func (i issuesResponse) ToIssues() []app.Issue {
	is := make([]app.Issue, 0, len(i))
	for _, el := range i {
		is = append(is, app.Issue{
			ID:        el.ID,
			Title:     el.Title,
			HTMLURL:   el.HTMLURL,
			State:     el.State,
			Author:    el.author(),
			CreatedAt: el.CreatedAt,
		})
	}

	return is
}
