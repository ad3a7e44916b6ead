package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub

import (
	"context"

	"github.com/m-mizutani/reposcore/pkg/domain/model"
)

// GitHub fetches repository search results from the upstream search API
type GitHub interface {
	SearchRepositories(ctx context.Context, input *SearchRepositoriesInput) ([]*model.RepositorySummary, error)
}

type SearchRepositoriesInput struct {
	Query   string
	Sort    string
	Order   string
	Page    int
	PerPage int
}
