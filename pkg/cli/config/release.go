package config

import (
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buglist/pkg/domain/model"
)

// Release holds the release given on the command line
type Release struct {
	Product string
	Branch  string
	Version string
}

// Flags returns CLI flags of the release descriptor
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "product",
			Aliases:     []string{"p"},
			Usage:       "Product name, e.g. firefox",
			Value:       "firefox",
			Destination: &c.Product,
			Sources:     cli.EnvVars("BUGLIST_PRODUCT"),
		},
		&cli.StringFlag{
			Name:        "branch",
			Aliases:     []string{"b"},
			Usage:       "Repository branch, e.g. releases/mozilla-beta",
			Required:    true,
			Destination: &c.Branch,
			Sources:     cli.EnvVars("BUGLIST_BRANCH"),
		},
		&cli.StringFlag{
			Name:        "release-version",
			Aliases:     []string{"r"},
			Usage:       "Release version, e.g. 53.0b10",
			Required:    true,
			Destination: &c.Version,
			Sources:     cli.EnvVars("BUGLIST_VERSION"),
		},
	}
}

// Release returns the release descriptor
func (c *Release) Release() *model.Release {
	return &model.Release{
		Product: c.Product,
		Branch:  c.Branch,
		Version: c.Version,
	}
}
