package interfaces

import (
	"context"

	"github.com/openrport/release-id/pkg/domain/model"
)

// ReleaseLister defines the single GitHub API operation the resolver depends on
type ReleaseLister interface {
	// ListReleases fetches one page of releases for owner/repo, most recent first
	ListReleases(ctx context.Context, owner, repo string, page, perPage int) ([]*model.Release, error)
}
