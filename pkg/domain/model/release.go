package model

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultOwner and DefaultRepo point at the repository whose releases are resolved
	DefaultOwner = "openrport"
	DefaultRepo  = "openrport"

	// DefaultPage and DefaultPerPage select the most recent releases only
	DefaultPage    = 1
	DefaultPerPage = 5
)

// Release represents a single entry of the releases listing
type Release struct {
	ID      int64  // Numeric release identifier
	TagName string // Tag the release was published from
}

// ReleaseQuery describes which release to look up and where
type ReleaseQuery struct {
	Owner   string // Repository owner
	Repo    string // Repository name
	Tag     string // Tag name to match exactly
	Page    int    // Page of the listing to fetch
	PerPage int    // Number of releases on the page
}

// NewReleaseQuery returns a query for tag against the default repository and page
func NewReleaseQuery(tag string) ReleaseQuery {
	return ReleaseQuery{
		Owner:   DefaultOwner,
		Repo:    DefaultRepo,
		Tag:     tag,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

// Validate checks the query before any request is made
func (q ReleaseQuery) Validate() error {
	if q.Tag == "" {
		return goerr.Wrap(ErrMissingTag, "tag argument is required")
	}
	if q.Owner == "" || q.Repo == "" {
		return goerr.Wrap(ErrInvalidConfig, "repository owner and name are required",
			goerr.V("owner", q.Owner),
			goerr.V("repo", q.Repo),
		)
	}
	if q.Page < 1 || q.PerPage < 1 {
		return goerr.Wrap(ErrInvalidConfig, fmt.Sprintf("page and per_page must be positive (page=%d, per_page=%d)", q.Page, q.PerPage),
			goerr.V("page", q.Page),
			goerr.V("per_page", q.PerPage),
		)
	}
	return nil
}

// FullName returns "owner/repo"
func (q ReleaseQuery) FullName() string {
	return q.Owner + "/" + q.Repo
}
