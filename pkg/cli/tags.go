package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buglist/pkg/cli/config"
)

func cmdTags() *cli.Command {
	var (
		releaseCfg  config.Release
		upstreamCfg config.Upstream
	)

	return &cli.Command{
		Name:    "tags",
		Aliases: []string{"t"},
		Usage:   "Show the current and previous tag of a release",
		Flags:   append(releaseCfg.Flags(), upstreamCfg.Flags()...),
		Action: func(ctx context.Context, c *cli.Command) error {
			buglistUC, err := upstreamCfg.Configure()
			if err != nil {
				return err
			}

			current, previous, err := buglistUC.ResolveTags(ctx, releaseCfg.Release())
			if err != nil {
				return err
			}

			label := color.New(color.Bold)
			fmt.Fprintf(os.Stdout, "%s %s\n", label.Sprint("current: "), current)
			fmt.Fprintf(os.Stdout, "%s %s\n", label.Sprint("previous:"), previous)
			return nil
		},
	}
}
