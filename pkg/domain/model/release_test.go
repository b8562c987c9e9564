package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/openrport/release-id/pkg/domain/model"
)

func TestNewReleaseQuery(t *testing.T) {
	q := model.NewReleaseQuery("v1.2.3")

	gt.Equal(t, q.Owner, model.DefaultOwner)
	gt.Equal(t, q.Repo, model.DefaultRepo)
	gt.Equal(t, q.Tag, "v1.2.3")
	gt.Equal(t, q.Page, 1)
	gt.Equal(t, q.PerPage, 5)
	gt.Equal(t, q.FullName(), "openrport/openrport")
}

func TestReleaseQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(q *model.ReleaseQuery)
		wantErr error
	}{
		{
			name:    "Valid query",
			modify:  func(q *model.ReleaseQuery) {},
			wantErr: nil,
		},
		{
			name:    "Empty tag",
			modify:  func(q *model.ReleaseQuery) { q.Tag = "" },
			wantErr: model.ErrMissingTag,
		},
		{
			name:    "Empty owner",
			modify:  func(q *model.ReleaseQuery) { q.Owner = "" },
			wantErr: model.ErrInvalidConfig,
		},
		{
			name:    "Empty repo",
			modify:  func(q *model.ReleaseQuery) { q.Repo = "" },
			wantErr: model.ErrInvalidConfig,
		},
		{
			name:    "Zero page",
			modify:  func(q *model.ReleaseQuery) { q.Page = 0 },
			wantErr: model.ErrInvalidConfig,
		},
		{
			name:    "Negative page size",
			modify:  func(q *model.ReleaseQuery) { q.PerPage = -1 },
			wantErr: model.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := model.NewReleaseQuery("v1.0.0")
			tt.modify(&q)

			err := q.Validate()
			if tt.wantErr == nil {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err)
			gt.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestReleaseQuery_ValidateMissingTagFirst(t *testing.T) {
	// An empty tag is reported even when the rest of the query is also broken
	err := model.ReleaseQuery{}.Validate()
	gt.True(t, errors.Is(err, model.ErrMissingTag))
}
