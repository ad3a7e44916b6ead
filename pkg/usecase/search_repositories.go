package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/reposcore/pkg/domain/interfaces"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
	"github.com/m-mizutani/reposcore/pkg/domain/score"
	"github.com/m-mizutani/reposcore/pkg/domain/types"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
)

// SearchRepositories fetches a single upstream page and returns its repositories with raw
// scores, sorted by score in descending order.
func (x *UseCase) SearchRepositories(ctx context.Context, params *model.SearchParams) ([]*model.ScoredRepository, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}

	logger := logging.From(ctx)
	input := x.searchInput(params, params.Page)
	logger.Debug("Calling GitHub search with parameters", slog.Any("input", input))

	repos, err := x.clients.GitHub().SearchRepositories(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch repositories", goerr.V("input", input))
	}
	logger.Debug("Received repositories from GitHub", slog.Int("count", len(repos)))

	return score.Rank(repos, logging.CtxTime(ctx)), nil
}

func (x *UseCase) searchInput(params *model.SearchParams, page int) *interfaces.SearchRepositoriesInput {
	return &interfaces.SearchRepositoriesInput{
		Query:   params.Query(),
		Sort:    sortByStars,
		Order:   orderDesc,
		Page:    page,
		PerPage: x.perPage,
	}
}
