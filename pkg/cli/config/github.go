package config

import (
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/openrport/release-id/pkg/domain/interfaces"
	"github.com/openrport/release-id/pkg/domain/model"
	githubinfra "github.com/openrport/release-id/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub API configuration
type GitHub struct {
	Token   string
	APIURL  string
	Owner   string
	Repo    string
	Timeout time.Duration
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token sent as a bearer credential",
			Destination: &c.Token,
			Sources:     cli.EnvVars("GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API base URL",
			Value:       githubinfra.DefaultBaseURL,
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Value:       model.DefaultOwner,
			Destination: &c.Owner,
			Sources:     cli.EnvVars("RELEASE_ID_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Value:       model.DefaultRepo,
			Destination: &c.Repo,
			Sources:     cli.EnvVars("RELEASE_ID_REPO"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of the GitHub API request",
			Value:       githubinfra.DefaultTimeout,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("RELEASE_ID_TIMEOUT"),
		},
	}
}

// Validate checks that a credential is available
func (c *GitHub) Validate() error {
	if c.Token == "" {
		return goerr.Wrap(model.ErrMissingToken, "GitHub credential is required")
	}
	if c.Timeout < 0 {
		return goerr.Wrap(model.ErrInvalidConfig, "timeout must not be negative",
			goerr.V("timeout", c.Timeout),
		)
	}
	return nil
}

// Query builds the release query for tag
func (c *GitHub) Query(tag string) model.ReleaseQuery {
	query := model.NewReleaseQuery(tag)
	query.Owner = c.Owner
	query.Repo = c.Repo
	return query
}

// NewClient creates the GitHub release lister from the configuration
func (c *GitHub) NewClient() (interfaces.ReleaseLister, error) {
	return githubinfra.NewClient(model.Token(c.Token),
		githubinfra.WithBaseURL(c.APIURL),
		githubinfra.WithHTTPClient(&http.Client{Timeout: c.Timeout}),
	)
}
