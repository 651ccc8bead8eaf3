package cli

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buglist/pkg/cli/config"
	"github.com/m-mizutani/buglist/pkg/domain/interfaces"
	"github.com/m-mizutani/buglist/pkg/infra/console"
	"github.com/m-mizutani/buglist/pkg/usecase"
)

func cmdCreate() *cli.Command {
	var (
		releaseCfg  config.Release
		upstreamCfg config.Upstream
		githubCfg   config.GitHub
		slackCfg    config.Slack
		quiet       bool
	)

	flags := append(releaseCfg.Flags(), upstreamCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "quiet",
		Aliases:     []string{"q"},
		Usage:       "Do not print the buglist to stdout",
		Destination: &quiet,
		Sources:     cli.EnvVars("BUGLIST_QUIET"),
	})

	return &cli.Command{
		Name:    "create",
		Aliases: []string{"c"},
		Usage:   "Create the buglist of a release and deliver it",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			buglistUC, err := upstreamCfg.Configure()
			if err != nil {
				return err
			}

			notifiers, err := remoteNotifiers(&githubCfg, &slackCfg)
			if err != nil {
				return err
			}
			if !quiet {
				notifiers = append([]interfaces.Notifier{console.NewNotifier(os.Stdout)}, notifiers...)
			}

			release := releaseCfg.Release()
			logger.Debug("Creating buglist",
				"product", release.Product,
				"branch", release.Branch,
				"version", release.Version,
				"notifiers", len(notifiers),
			)

			buglist := buglistUC.Create(ctx, release)
			if buglist.IsEmpty() {
				color.New(color.FgYellow).Fprintf(os.Stderr,
					"No bug list available for %s %s (%s)\n",
					release.Product, release.Version, buglist.SkipReason)
				return nil
			}

			if err := usecase.Deliver(ctx, buglist, notifiers); err != nil {
				return goerr.Wrap(err, "failed to deliver buglist", goerr.V("version", release.Version))
			}
			return nil
		},
	}
}
