package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"github.com/m-zajac/ghdashboard/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	acceptJSON   = "application/vnd.github.v3+json"
	acceptTopics = "application/vnd.github.mercy-preview+json"
	acceptRaw    = "application/vnd.github.v3.raw"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github users and repositories data.
// Every method makes exactly one GET request, lists are limited to the first page.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer    HTTPDoer
	address string

	jsonResponseMaxSize   int
	readmeResponseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
func NewClient(doer HTTPDoer, address string) *Client {
	c := Client{
		doer:    doer,
		address: address,

		jsonResponseMaxSize:   1024 * 1024 * 10,
		readmeResponseMaxSize: 1024 * 1024 * 5,
	}

	return &c
}

// User returns user's profile.
func (c *Client) User(ctx context.Context, username string) (*app.User, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	var resp userResponse
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username), acceptJSON, &resp); err != nil {
		return nil, err
	}
	user := resp.ToUser()

	return &user, nil
}

// UserRepositories returns user's public repositories.
func (c *Client) UserRepositories(ctx context.Context, username string) ([]app.Repository, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	var resp repositoriesResponse
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username)+"/repos", acceptJSON, &resp); err != nil {
		return nil, err
	}

	return resp.ToRepositories(), nil
}

// UserOrganizations returns user's public organizations.
func (c *Client) UserOrganizations(ctx context.Context, username string) ([]app.Organization, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	var resp organizationsResponse
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username)+"/orgs", acceptJSON, &resp); err != nil {
		return nil, err
	}

	return resp.ToOrganizations(), nil
}

// UserEvents returns user's recent public events, newest first.
func (c *Client) UserEvents(ctx context.Context, username string) ([]app.Event, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}

	var resp eventsResponse
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username)+"/events/public", acceptJSON, &resp); err != nil {
		return nil, err
	}

	return resp.ToEvents(), nil
}

// RepositoryTopics returns repository topics.
func (c *Client) RepositoryTopics(ctx context.Context, owner string, name string) ([]string, error) {
	path, err := repoPath(owner, name, "topics")
	if err != nil {
		return nil, err
	}

	var resp topicsResponse
	if err := c.getJSON(ctx, path, acceptTopics, &resp); err != nil {
		return nil, err
	}

	return resp.ToTopics(), nil
}

// RepositoryContributors returns repository contributors.
func (c *Client) RepositoryContributors(ctx context.Context, owner string, name string) ([]app.Contributor, error) {
	path, err := repoPath(owner, name, "contributors")
	if err != nil {
		return nil, err
	}

	var resp contributorsResponse
	if err := c.getJSON(ctx, path, acceptJSON, &resp); err != nil {
		return nil, err
	}

	return resp.ToContributors(), nil
}

// RepositoryPullRequests returns repository open pull requests.
func (c *Client) RepositoryPullRequests(ctx context.Context, owner string, name string) ([]app.PullRequest, error) {
	path, err := repoPath(owner, name, "pulls")
	if err != nil {
		return nil, err
	}

	var resp pullRequestsResponse
	if err := c.getJSON(ctx, path, acceptJSON, &resp); err != nil {
		return nil, err
	}

	return resp.ToPullRequests(), nil
}

// RepositoryIssues returns repository open issues.
func (c *Client) RepositoryIssues(ctx context.Context, owner string, name string) ([]app.Issue, error) {
	path, err := repoPath(owner, name, "issues")
	if err != nil {
		return nil, err
	}

	var resp issuesResponse
	if err := c.getJSON(ctx, path, acceptJSON, &resp); err != nil {
		return nil, err
	}

	return resp.ToIssues(), nil
}

// RepositoryReadme returns raw content of repository README.
func (c *Client) RepositoryReadme(ctx context.Context, owner string, name string) (string, error) {
	path, err := repoPath(owner, name, "readme")
	if err != nil {
		return "", err
	}

	body, _, err := c.makeRequest(ctx, path, acceptRaw, c.readmeResponseMaxSize)
	if err != nil {
		return "", fmt.Errorf("making http request: %w", err)
	}

	return string(body), nil
}

func repoPath(owner string, name string, resource string) (string, error) {
	if owner == "" {
		return "", app.InvalidRequestError("repository owner login cannot be empty")
	}
	if name == "" {
		return "", app.InvalidRequestError("repository name cannot be empty")
	}

	return fmt.Sprintf("/repos/%s/%s/%s", url.PathEscape(owner), url.PathEscape(name), resource), nil
}

func (c *Client) getJSON(ctx context.Context, path string, accept string, v interface{}) error {
	body, _, err := c.makeRequest(ctx, path, accept, c.jsonResponseMaxSize)
	if err != nil {
		return fmt.Errorf("making http request: %w", err)
	}
	if body == nil {
		return nil
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unmarshalling response: %w", err)
	}

	return nil
}

func (c *Client) makeRequest(ctx context.Context, path string, accept string, maxBytes int) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.address+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("creating http request: %w", err)
	}
	req.Header.Set("Accept", accept)

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("doing http request: %w", err)
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, resp.StatusCode, nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, resp.StatusCode, app.NotFoundError(fmt.Sprintf("%s not found", path))
	}
	if resp.StatusCode/100 != 2 {
		return nil, resp.StatusCode, fmt.Errorf("got invalid http status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(maxBytes)+1))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("reading http response body: %w", err)
	}
	if len(b) > maxBytes {
		return nil, resp.StatusCode, fmt.Errorf("response body exceeds %d bytes", maxBytes)
	}

	return b, resp.StatusCode, nil
}
