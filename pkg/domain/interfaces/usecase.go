package interfaces

import (
	"context"

	"github.com/openrport/release-id/pkg/domain/model"
)

// ReleaseUseCase defines release lookup operations
type ReleaseUseCase interface {
	// ResolveRelease returns the ID of the release tagged query.Tag
	ResolveRelease(ctx context.Context, query model.ReleaseQuery) (int64, error)
}
