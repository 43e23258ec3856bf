package app

import "time"

// User entity.
type User struct {
	Login       string
	Name        string
	AvatarURL   string
	Bio         string
	PublicRepos int
	PublicGists int
	Followers   int
	Following   int
	HTMLURL     string
	Location    string
	Company     string
	Blog        string
	Email       string
	CreatedAt   time.Time
}

// Organization entity
type Organization struct {
	Login       string
	AvatarURL   string
	Description string
	URL         string
}

// EventRepository is a reference to the repository an event happened in.
type EventRepository struct {
	Name string
	URL  string
}

// Event is a single entry of user's public activity.
// Type is a free-form tag, e.g. PushEvent or WatchEvent.
type Event struct {
	ID        string
	Type      string
	CreatedAt time.Time
	Repo      EventRepository
}

// Repository entity.
// Description, Language and License are nil when not set upstream.
type Repository struct {
	ID          int64
	Name        string
	OwnerLogin  string
	Description *string
	HTMLURL     string
	Stars       int
	Language    *string
	UpdatedAt   time.Time
	Forks       int
	OpenIssues  int
	Watchers    int
	License     *string
	Topics      []string
}

// Contributor entity
type Contributor struct {
	Login         string
	AvatarURL     string
	HTMLURL       string
	Contributions int
}

// Author of a pull request or issue.
type Author struct {
	Login     string
	AvatarURL string
}

// PullRequest entity
type PullRequest struct {
	ID        int64
	Title     string
	HTMLURL   string
	State     string
	Author    Author
	CreatedAt time.Time
}

// Issue entity
type Issue struct {
	ID        int64
	Title     string
	HTMLURL   string
	State     string
	Author    Author
	CreatedAt time.Time
}

// DetailPart names one of the sub-resources making up a Detail.
type DetailPart string

// Detail parts.
const (
	DetailTopics       DetailPart = "topics"
	DetailContributors DetailPart = "contributors"
	DetailPullRequests DetailPart = "pulls"
	DetailIssues       DetailPart = "issues"
	DetailReadme       DetailPart = "readme"
)

// Detail is lazily fetched bundle of repository sub-resources.
// Missing lists parts that couldn't be fetched and were left empty.
type Detail struct {
	Topics       []string
	Contributors []Contributor
	PullRequests []PullRequest
	Issues       []Issue
	Readme       string
	Missing      []DetailPart
}
