package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/reposcore/pkg/domain/model"
)

type UseCase interface {
	SearchRepositories(ctx context.Context, params *model.SearchParams) ([]*model.ScoredRepository, error)
	AggregateRepositories(ctx context.Context, params *model.SearchParams) ([]*model.ScoredRepository, error)
}
