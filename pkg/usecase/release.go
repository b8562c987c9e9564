package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/openrport/release-id/pkg/domain/interfaces"
	"github.com/openrport/release-id/pkg/domain/model"
)

type releaseUseCase struct {
	lister interfaces.ReleaseLister
	logger *slog.Logger
}

// ReleaseOption configures the release use case
type ReleaseOption func(*releaseUseCase)

// WithLogger sets the logger. slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.logger = logger
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(lister interfaces.ReleaseLister, opts ...ReleaseOption) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		lister: lister,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ResolveRelease fetches one page of releases and returns the ID of the first one
// whose tag equals query.Tag. Releases beyond that page are never considered.
func (uc *releaseUseCase) ResolveRelease(ctx context.Context, query model.ReleaseQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	logger := uc.logger.With(
		"repository", query.FullName(),
		"tag", query.Tag,
	)

	logger.Debug("Listing releases",
		"page", query.Page,
		"per_page", query.PerPage,
	)

	releases, err := uc.lister.ListReleases(ctx, query.Owner, query.Repo, query.Page, query.PerPage)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to fetch releases",
			goerr.V("repository", query.FullName()),
			goerr.V("tag", query.Tag),
		)
	}

	logger.Debug("Fetched releases", "count", len(releases))

	for _, release := range releases {
		if release == nil || release.TagName != query.Tag {
			continue
		}

		logger.Info("Resolved release", "release_id", release.ID)
		return release.ID, nil
	}

	return 0, goerr.Wrap(model.ErrReleaseNotFound,
		fmt.Sprintf("no release tagged %q among the %d most recent releases of %s", query.Tag, query.PerPage, query.FullName()),
		goerr.V("tag", query.Tag),
		goerr.V("repository", query.FullName()),
		goerr.V("scanned", len(releases)),
	)
}
