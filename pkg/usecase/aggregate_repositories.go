package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
	"github.com/m-mizutani/reposcore/pkg/domain/score"
	"github.com/m-mizutani/reposcore/pkg/domain/types"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// AggregateRepositories fetches upstream pages 1..N concurrently, ranks all repositories
// together and scales their scores into the configured interval. Any failed page fails
// the whole aggregation. The page of params is ignored.
func (x *UseCase) AggregateRepositories(ctx context.Context, params *model.SearchParams) ([]*model.ScoredRepository, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)
	logger.Debug("Aggregating repositories",
		slog.String("query", params.Query()),
		slog.Int("pages", x.aggregatePages),
		slog.Int("per_page", x.perPage),
	)

	pages := make([][]*model.RepositorySummary, x.aggregatePages)
	eg, egCtx := errgroup.WithContext(ctx)

	for i := range pages {
		page := i + 1
		eg.Go(func() error {
			input := x.searchInput(params, page)
			repos, err := x.clients.GitHub().SearchRepositories(egCtx, input)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch repositories", goerr.V("page", page))
			}
			pages[i] = repos
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var repos []*model.RepositorySummary
	for _, p := range pages {
		repos = append(repos, p...)
	}
	logger.Debug("Received repositories from GitHub", slog.Int("count", len(repos)))

	ranked := score.Rank(repos, logging.CtxTime(ctx))
	return score.ScaleToInterval(ranked, x.scaleMin, x.scaleMax), nil
}
