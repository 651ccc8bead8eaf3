package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/buglist/pkg/cli/config"
	controller "github.com/m-mizutani/buglist/pkg/controller/http"
	"github.com/m-mizutani/buglist/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg   config.Server
		upstreamCfg config.Upstream
		githubCfg   config.GitHub
		slackCfg    config.Slack
	)

	flags := append(serverCfg.Flags(), upstreamCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve buglists over HTTP and build them on release hooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting buglist server",
				slog.String("addr", serverCfg.Addr),
				slog.Bool("release_hook", serverCfg.WebhookSecret != ""),
			)

			// Create use cases
			buglistUC, err := upstreamCfg.Configure()
			if err != nil {
				return err
			}

			notifiers, err := remoteNotifiers(&githubCfg, &slackCfg)
			if err != nil {
				return err
			}
			if serverCfg.WebhookSecret != "" && len(notifiers) == 0 {
				logger.Warn("Release hook is enabled but no notifier is configured")
			}

			hookUC := usecase.NewReleaseHook(buglistUC, notifiers...)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				buglistUC,
				hookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(serverCfg.WebhookSecret),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
