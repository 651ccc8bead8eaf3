package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/infra/bugzilla"
	"github.com/m-mizutani/buglist/pkg/infra/hg"
	"github.com/m-mizutani/buglist/pkg/usecase"
)

// Upstream holds the endpoints the buglist is built from.
// Values are taken from flags or env first, then from the TOML file, then from defaults.
type Upstream struct {
	ConfigFile   string
	HgURL        string
	BugzillaURL  string
	ShortenerURL string
	NoShorten    bool
}

type upstreamFile struct {
	HgURL        string `toml:"hg_url"`
	BugzillaURL  string `toml:"bugzilla_url"`
	ShortenerURL string `toml:"shortener_url"`
	NoShorten    *bool  `toml:"no_shorten"`
}

// Flags returns CLI flags for upstream configuration
func (c *Upstream) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with upstream endpoints",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("BUGLIST_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "hg-url",
			Usage:       "Mercurial server base URL (default: " + hg.DefaultBaseURL + ")",
			Destination: &c.HgURL,
			Sources:     cli.EnvVars("BUGLIST_HG_URL"),
		},
		&cli.StringFlag{
			Name:        "bugzilla-url",
			Usage:       "Bugzilla base URL (default: " + bugzilla.DefaultBaseURL + ")",
			Destination: &c.BugzillaURL,
			Sources:     cli.EnvVars("BUGLIST_BUGZILLA_URL"),
		},
		&cli.StringFlag{
			Name:        "shortener-url",
			Usage:       "URL shortener endpoint (default: " + bugzilla.DefaultShortenerURL + ")",
			Destination: &c.ShortenerURL,
			Sources:     cli.EnvVars("BUGLIST_SHORTENER_URL"),
		},
		&cli.BoolFlag{
			Name:        "no-shorten",
			Usage:       "Keep long Bugzilla links",
			Destination: &c.NoShorten,
			Sources:     cli.EnvVars("BUGLIST_NO_SHORTEN"),
		},
	}
}

// Load fills unset endpoints from the TOML file and the defaults
func (c *Upstream) Load() error {
	if c.ConfigFile != "" {
		raw, err := os.ReadFile(c.ConfigFile)
		if err != nil {
			return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigFile))
		}

		var file upstreamFile
		if err := toml.Unmarshal(raw, &file); err != nil {
			return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigFile))
		}

		c.HgURL = firstNonEmpty(c.HgURL, file.HgURL)
		c.BugzillaURL = firstNonEmpty(c.BugzillaURL, file.BugzillaURL)
		c.ShortenerURL = firstNonEmpty(c.ShortenerURL, file.ShortenerURL)
		if !c.NoShorten && file.NoShorten != nil {
			c.NoShorten = *file.NoShorten
		}
	}

	c.HgURL = firstNonEmpty(c.HgURL, hg.DefaultBaseURL)
	c.BugzillaURL = firstNonEmpty(c.BugzillaURL, bugzilla.DefaultBaseURL)
	c.ShortenerURL = firstNonEmpty(c.ShortenerURL, bugzilla.DefaultShortenerURL)
	return nil
}

// Configure loads the endpoints and builds the buglist use case on top of them
func (c *Upstream) Configure() (interfaces.BuglistUseCase, error) {
	if err := c.Load(); err != nil {
		return nil, err
	}

	opts := []usecase.BuglistOption{
		usecase.WithBugzillaURL(c.BugzillaURL),
	}
	if !c.NoShorten {
		opts = append(opts, usecase.WithShortener(bugzilla.NewShortener(c.ShortenerURL)))
	}

	return usecase.NewBuglist(hg.NewClient(c.HgURL), opts...), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
