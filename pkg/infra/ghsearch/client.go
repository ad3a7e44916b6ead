package ghsearch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reposcore/pkg/domain/interfaces"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
	"github.com/m-mizutani/reposcore/pkg/domain/types"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
	"github.com/m-mizutani/reposcore/pkg/utils/metrics"
	"golang.org/x/oauth2"
)

const (
	DefaultEndpoint types.GitHubEndpoint = "https://api.github.com/"
	DefaultTimeout                       = 30 * time.Second

	apiVersion = "2022-11-28"
	userAgent  = "reposcore"
)

type Client struct {
	client  *github.Client
	metrics *metrics.Recorder
}

var _ interfaces.GitHub = (*Client)(nil)

type appInstallation struct {
	appID     types.GitHubAppID
	installID types.GitHubAppInstallID
	pem       types.GitHubAppPrivateKey
}

type config struct {
	endpoint  types.GitHubEndpoint
	token     types.GitHubToken
	app       *appInstallation
	timeout   time.Duration
	transport http.RoundTripper
	metrics   *metrics.Recorder
}

type Option func(*config)

// WithEndpoint sets base URL of the REST API, e.g. https://github.example.com/api/v3/
func WithEndpoint(endpoint types.GitHubEndpoint) Option {
	return func(cfg *config) {
		cfg.endpoint = endpoint
	}
}

// WithToken authenticates requests with a personal access token
func WithToken(token types.GitHubToken) Option {
	return func(cfg *config) {
		cfg.token = token
	}
}

// WithAppInstallation authenticates requests as a GitHub App installation
func WithAppInstallation(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey) Option {
	return func(cfg *config) {
		cfg.app = &appInstallation{
			appID:     appID,
			installID: installID,
			pem:       pem,
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = timeout
	}
}

// WithTransport replaces the base HTTP transport
func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func WithMetrics(m *metrics.Recorder) Option {
	return func(cfg *config) {
		cfg.metrics = m
	}
}

func New(options ...Option) (*Client, error) {
	cfg := &config{
		endpoint:  DefaultEndpoint,
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	endpoint := cfg.endpoint.String()
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	baseURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub endpoint",
			goerr.V("endpoint", cfg.endpoint),
			goerr.V("error", err.Error()),
		)
	}

	tr, err := buildTransport(cfg, baseURL)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(&http.Client{
		Transport: tr,
		Timeout:   cfg.timeout,
	})
	client.BaseURL = baseURL
	client.UserAgent = userAgent

	return &Client{
		client:  client,
		metrics: cfg.metrics,
	}, nil
}

func buildTransport(cfg *config, baseURL *url.URL) (http.RoundTripper, error) {
	tr := &headerTransport{base: cfg.transport}

	switch {
	case cfg.app != nil:
		if cfg.app.appID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App ID is empty")
		}
		if cfg.app.installID == 0 {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App installation ID is empty")
		}
		if cfg.app.pem == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is empty")
		}

		itr, err := ghinstallation.New(tr, int64(cfg.app.appID), int64(cfg.app.installID), []byte(cfg.app.pem))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", cfg.app.appID))
		}
		itr.BaseURL = strings.TrimSuffix(baseURL.String(), "/")
		return itr, nil

	case cfg.token != "":
		return &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cfg.token)}),
			Base:   tr,
		}, nil

	default:
		return tr, nil
	}
}

// SearchRepositories fetches one page of the repository search API.
func (x *Client) SearchRepositories(ctx context.Context, input *interfaces.SearchRepositoriesInput) ([]*model.RepositorySummary, error) {
	opt := &github.SearchOptions{
		Sort:  input.Sort,
		Order: input.Order,
		ListOptions: github.ListOptions{
			Page:    input.Page,
			PerPage: input.PerPage,
		},
	}

	logging.From(ctx).Debug("Sending repository search request",
		slog.String("query", input.Query),
		slog.Any("options", opt),
	)

	// https://docs.github.com/en/rest/search/search?apiVersion=2022-11-28#search-repositories
	startedAt := time.Now()
	result, resp, err := x.client.Search.Repositories(ctx, input.Query, opt)
	x.metrics.ObserveUpstream(err, time.Since(startedAt))
	if err != nil {
		options := []goerr.Option{
			goerr.V("query", input.Query),
			goerr.V("page", input.Page),
		}
		if resp != nil {
			options = append(options, goerr.V("status", resp.StatusCode))
		}
		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			options = append(options, goerr.V("rate_reset", rateErr.Rate.Reset.Time))
		}
		return nil, goerr.Wrap(err, "failed to search repositories", options...)
	}

	if result.GetIncompleteResults() {
		logging.From(ctx).Warn("Repository search returned incomplete results",
			slog.String("query", input.Query),
			slog.Int("page", input.Page),
		)
	}

	repos := make([]*model.RepositorySummary, 0, len(result.Repositories))
	for i, repo := range result.Repositories {
		if repo == nil {
			continue
		}
		if repo.FullName == nil || repo.UpdatedAt == nil {
			return nil, goerr.Wrap(types.ErrInvalidGitHubData, "repository record lacks full_name or updated_at",
				goerr.V("query", input.Query),
				goerr.V("page", input.Page),
				goerr.V("index", i),
				goerr.V("id", repo.GetID()),
			)
		}
		repos = append(repos, &model.RepositorySummary{
			Name:          repo.GetFullName(),
			Stars:         repo.GetStargazersCount(),
			Forks:         repo.GetForksCount(),
			LastUpdatedAt: repo.GetUpdatedAt().Time,
		})
	}

	logging.From(ctx).Debug("Received repository search response",
		slog.Int("page", input.Page),
		slog.Int("count", len(repos)),
		slog.Int("total", result.GetTotal()),
	)

	return repos, nil
}

type headerTransport struct {
	base http.RoundTripper
}

func (x *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	return x.base.RoundTrip(req)
}
