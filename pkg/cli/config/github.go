package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/reposcore/pkg/domain/types"
	"github.com/m-mizutani/reposcore/pkg/infra/ghsearch"
	"github.com/urfave/cli/v3"
)

// GitHub is configuration of the upstream repository search API. A token or a GitHub App
// installation is optional; without them the API is called anonymously.
type GitHub struct {
	endpoint   types.GitHubEndpoint
	token      types.GitHubToken `masq:"secret"`
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	timeout    time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-endpoint",
			Usage:       "Base URL of GitHub REST API",
			Category:    "GitHub",
			Value:       ghsearch.DefaultEndpoint.String(),
			Destination: (*string)(&x.endpoint),
			Sources:     cli.EnvVars("REPOSCORE_GITHUB_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOSCORE_GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("REPOSCORE_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPOSCORE_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App private key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOSCORE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.DurationFlag{
			Name:        "github-timeout",
			Usage:       "Timeout of a single GitHub API request",
			Category:    "GitHub",
			Value:       ghsearch.DefaultTimeout,
			Destination: &x.timeout,
			Sources:     cli.EnvVars("REPOSCORE_GITHUB_TIMEOUT"),
		},
	}
}

// New creates a search client. GitHub App installation is used if any of its settings is
// given, then the token.
func (x GitHub) New(options ...ghsearch.Option) (*ghsearch.Client, error) {
	opts := []ghsearch.Option{
		ghsearch.WithEndpoint(x.endpoint),
		ghsearch.WithTimeout(x.timeout),
	}

	switch {
	case x.appID != 0 || x.installID != 0 || x.privateKey != "":
		opts = append(opts, ghsearch.WithAppInstallation(x.appID, x.installID, x.privateKey))
	case x.token != "":
		opts = append(opts, ghsearch.WithToken(x.token))
	}

	return ghsearch.New(append(opts, options...)...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("Endpoint", x.endpoint.String()),
		slog.Int("Token.len", len(x.token)),
		slog.Int64("AppID", int64(x.appID)),
		slog.Int64("InstallID", int64(x.installID)),
		slog.Int("PrivateKey.len", len(x.privateKey)),
		slog.Duration("Timeout", x.timeout),
	)
}
