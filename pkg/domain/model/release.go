package model

import (
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

var firstBetaPattern = regexp.MustCompile(`b1$`)

// Release describes a shipped (or shipping) build of a product on a branch
type Release struct {
	Product string `json:"product"` // Product name, e.g. "firefox"
	Branch  string `json:"branch"`  // Repository branch path, e.g. "releases/mozilla-beta"
	Version string `json:"version"` // Dot version, e.g. "53.0b10"
}

// Validate checks that every field of the descriptor is set
func (r *Release) Validate() error {
	switch {
	case r.Product == "":
		return goerr.Wrap(ErrInvalidRelease, "product is required")
	case r.Branch == "":
		return goerr.Wrap(ErrInvalidRelease, "branch is required")
	case r.Version == "":
		return goerr.Wrap(ErrInvalidRelease, "version is required")
	}
	return nil
}

// IsFirstBeta reports whether the version is the first beta of a cycle.
// First betas have no predecessor within the same product and major line.
func (r *Release) IsFirstBeta() bool {
	return firstBetaPattern.MatchString(r.Version)
}

// Tag returns the repository tag of this release
func (r *Release) Tag() string {
	return DotVersionToTag(r.Product, r.Version)
}

// MajorVersion returns the leading numeric segment of the version
func (r *Release) MajorVersion() string {
	major, _, _ := strings.Cut(r.Version, ".")
	return major
}
