package model

import "errors"

var (
	// ErrUpstream means an upstream endpoint was unreachable or answered with a non-200 status
	ErrUpstream = errors.New("upstream request failed")

	// ErrMalformedResponse means an upstream body could not be decoded into the expected records
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrTagNotFound means the current version has no known predecessor tag
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidRelease means a release descriptor is incomplete
	ErrInvalidRelease = errors.New("invalid release descriptor")

	// ErrInvalidIssueRef means an issue reference could not be parsed
	ErrInvalidIssueRef = errors.New("invalid issue reference")
)
