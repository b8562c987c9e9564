package model

import "errors"

var (
	ErrMissingToken     = errors.New("GITHUB_TOKEN is not set")
	ErrMissingTag       = errors.New("missing tag")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrReleaseNotFound  = errors.New("release not found")
)
