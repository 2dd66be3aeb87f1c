package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	"github.com/google/go-github/v66/github"
	"github.com/gregjones/httpcache"
	"golang.org/x/oauth2"
)

// Compile-time interface satisfaction check.
var _ APIClient = (*Client)(nil)

// Client implements the APIClient interface using the GitHub REST API
type Client struct {
	client *github.Client
	ctx    context.Context
}

// NewClient creates a new GitHub API client with the following transport
// stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. oauth2 (token authentication)
func NewClient(token string) *Client {
	ctx := context.Background()

	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, rateLimitClient), ts)

	return &Client{
		client: github.NewClient(tc),
		ctx:    ctx,
	}
}

// NewClientForBaseURL creates a Client pointed at a custom API base URL.
// This constructor is intended for testing against an httptest server.
func NewClientForBaseURL(baseURL string) (*Client, error) {
	// go-github requires a trailing slash on the base URL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	client := github.NewClient(nil)
	client.BaseURL = u

	return &Client{
		client: client,
		ctx:    context.Background(),
	}, nil
}

// GetIssue retrieves an issue snapshot by number
func (c *Client) GetIssue(owner, repo string, number int) (*Issue, error) {
	var issue *github.Issue

	err := WithRetry(func() error {
		var err error
		issue, _, err = c.client.Issues.Get(c.ctx, owner, repo, number)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("issue %s/%s#%d", owner, repo, number))
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	return convertGitHubIssue(issue), nil
}

// ListLabels lists the names of all labels currently on an issue
func (c *Client) ListLabels(owner, repo string, number int) ([]string, error) {
	opts := &github.ListOptions{PerPage: 100}

	var allLabels []string

	err := WithRetry(func() error {
		allLabels = nil // Reset on retry
		opts.Page = 0   // Reset pagination on retry

		for {
			labels, resp, err := c.client.Issues.ListLabelsByIssue(c.ctx, owner, repo, number, opts)
			if err != nil {
				return WrapGitHubError(err, fmt.Sprintf("labels for issue %s/%s#%d", owner, repo, number))
			}

			for _, label := range labels {
				allLabels = append(allLabels, label.GetName())
			}

			if resp.NextPage == 0 {
				break
			}
			opts.Page = resp.NextPage
		}
		return nil
	}, DefaultRetryConfig())

	return allLabels, err
}

// AddLabels attaches all of the given labels to an issue in a single call
func (c *Client) AddLabels(owner, repo string, number int, labels []string) error {
	return WithRetry(func() error {
		_, _, err := c.client.Issues.AddLabelsToIssue(c.ctx, owner, repo, number, labels)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("labels for issue %s/%s#%d", owner, repo, number))
		}
		return nil
	}, DefaultRetryConfig())
}

// RemoveLabel detaches a single label from an issue
func (c *Client) RemoveLabel(owner, repo string, number int, label string) error {
	return WithRetry(func() error {
		_, err := c.client.Issues.RemoveLabelForIssue(c.ctx, owner, repo, number, label)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("label %q on issue %s/%s#%d", label, owner, repo, number))
		}
		return nil
	}, DefaultRetryConfig())
}

// GetFileContent retrieves the content of a file from the repository's
// default branch via the contents API
func (c *Client) GetFileContent(owner, repo, path string) ([]byte, error) {
	var content string

	err := WithRetry(func() error {
		fileContent, _, _, err := c.client.Repositories.GetContents(c.ctx, owner, repo, path, nil)
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("content %s in %s/%s", path, owner, repo))
		}
		if fileContent == nil {
			// The path resolved to a directory, not a file
			return &GitHubError{
				Type:     ErrorTypeNotFound,
				Message:  fmt.Sprintf("path %q is not a file", path),
				Resource: fmt.Sprintf("content %s in %s/%s", path, owner, repo),
			}
		}

		content, err = fileContent.GetContent()
		if err != nil {
			return WrapGitHubError(err, fmt.Sprintf("content %s in %s/%s", path, owner, repo))
		}
		return nil
	}, DefaultRetryConfig())

	if err != nil {
		return nil, err
	}

	return []byte(content), nil
}

// convertGitHubIssue converts a GitHub API issue to our internal snapshot type
func convertGitHubIssue(issue *github.Issue) *Issue {
	snapshot := &Issue{
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		Body:      issue.GetBody(),
		State:     issue.GetState(),
		CreatedAt: issue.GetCreatedAt().Time,
	}

	for _, label := range issue.Labels {
		snapshot.Labels = append(snapshot.Labels, label.GetName())
	}

	return snapshot
}
