package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/openrport/release-id/pkg/domain/interfaces"
	"github.com/openrport/release-id/pkg/domain/model"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint
	DefaultBaseURL = "https://api.github.com/"

	// DefaultTimeout bounds the whole request including reading the body
	DefaultTimeout = 30 * time.Second

	maxErrorBodySize = 64 << 10
)

type client struct {
	githubClient *github.Client
}

type options struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the GitHub client
type Option func(*options)

// WithBaseURL overrides the API endpoint, e.g. for GitHub Enterprise or tests
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// NewClient creates a GitHub client that authenticates with token as a bearer credential
func NewClient(token model.Token, opts ...Option) (interfaces.ReleaseLister, error) {
	o := &options{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(o)
	}

	if token == "" {
		return nil, goerr.Wrap(model.ErrMissingToken, "GitHub client requires a token")
	}

	// go-github resolves relative paths against BaseURL, which must end with a slash
	baseURL := o.baseURL
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(model.ErrInvalidConfig, fmt.Sprintf("invalid GitHub API URL %q: %v", o.baseURL, err),
			goerr.V("base_url", o.baseURL),
		)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.Wrap(model.ErrInvalidConfig, fmt.Sprintf("invalid GitHub API URL %q: scheme must be http or https", o.baseURL),
			goerr.V("base_url", o.baseURL),
		)
	}

	githubClient := github.NewClient(o.httpClient).WithAuthToken(string(token))
	githubClient.BaseURL = u

	return &client{
		githubClient: githubClient,
	}, nil
}

// ListReleases fetches a single page of releases. Any status other than 200 is an error
// carrying the status code and the raw response body.
func (c *client) ListReleases(ctx context.Context, owner, repo string, page, perPage int) ([]*model.Release, error) {
	releases, resp, err := c.githubClient.Repositories.ListReleases(ctx, owner, repo, &github.ListOptions{
		Page:    page,
		PerPage: perPage,
	})

	if resp != nil && resp.Response != nil && resp.StatusCode != http.StatusOK {
		return nil, statusError(resp.Response, err, owner, repo)
	}
	if err != nil {
		return nil, goerr.Wrap(err, fmt.Sprintf("failed to list releases of %s/%s", owner, repo),
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	result := make([]*model.Release, 0, len(releases))
	for _, r := range releases {
		result = append(result, &model.Release{
			ID:      r.GetID(),
			TagName: r.GetTagName(),
		})
	}

	return result, nil
}

// statusError builds the error for a non-200 response. go-github re-populates the body of
// error responses after parsing it, so the raw text is still readable here.
func statusError(resp *http.Response, cause error, owner, repo string) error {
	var body string
	var accepted *github.AcceptedError
	if errors.As(cause, &accepted) {
		body = string(accepted.Raw)
	} else if resp.Body != nil {
		if data, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize)); readErr == nil {
			body = string(data)
		}
	}

	var ghErr *github.ErrorResponse
	if body == "" && errors.As(cause, &ghErr) {
		body = ghErr.Message
	}

	body = strings.TrimSpace(body)
	msg := fmt.Sprintf("GitHub API returned status %d for %s/%s releases", resp.StatusCode, owner, repo)
	if body != "" {
		msg += ": " + body
	}

	return goerr.Wrap(model.ErrUnexpectedStatus, msg,
		goerr.V("status_code", resp.StatusCode),
		goerr.V("body", body),
		goerr.V("owner", owner),
		goerr.V("repo", repo),
	)
}
