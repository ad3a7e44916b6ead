package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/reposcore/pkg/cli/config"
	"github.com/m-mizutani/reposcore/pkg/controller/server"
	"github.com/m-mizutani/reposcore/pkg/infra"
	"github.com/m-mizutani/reposcore/pkg/infra/ghsearch"
	"github.com/m-mizutani/reposcore/pkg/usecase"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
	"github.com/m-mizutani/reposcore/pkg/utils/metrics"

	"github.com/urfave/cli/v3"
)

func serveCommand() *cli.Command {
	var (
		addr string

		github    config.GitHub
		aggregate config.Aggregate
		sentry    config.Sentry
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:3000",
			Sources:     cli.EnvVars("REPOSCORE_ADDR"),
			Destination: &addr,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			aggregate.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Any("GitHub", github),
				slog.Any("Aggregate", aggregate),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			recorder := metrics.New()

			ghClient, err := github.New(ghsearch.WithMetrics(recorder))
			if err != nil {
				return err
			}

			clients := infra.New(infra.WithGitHub(ghClient))
			uc := usecase.New(clients, aggregate.Options()...)
			s := server.New(uc, server.WithMetrics(recorder))

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				// aggregation waits for all upstream pages
				WriteTimeout: 120 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve", goerr.V("addr", addr))
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
