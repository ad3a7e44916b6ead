package usecase

import (
	"github.com/m-mizutani/reposcore/pkg/domain/interfaces"
	"github.com/m-mizutani/reposcore/pkg/infra"
)

const (
	DefaultPerPage        = 100
	DefaultAggregatePages = 10
	DefaultScaleMin       = 0.0
	DefaultScaleMax       = 100.0

	sortByStars = "stars"
	orderDesc   = "desc"
)

type UseCase struct {
	clients *infra.Clients

	perPage        int
	aggregatePages int
	scaleMin       float64
	scaleMax       float64
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithPerPage sets number of repositories requested per upstream page
func WithPerPage(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.perPage = n
		}
	}
}

// WithAggregatePages sets number of upstream pages fetched by AggregateRepositories
func WithAggregatePages(n int) Option {
	return func(x *UseCase) {
		if n > 0 {
			x.aggregatePages = n
		}
	}
}

// WithScaleInterval sets the interval aggregated scores are scaled into. newMin may be
// greater than newMax.
func WithScaleInterval(newMin, newMax float64) Option {
	return func(x *UseCase) {
		x.scaleMin = newMin
		x.scaleMax = newMax
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:        clients,
		perPage:        DefaultPerPage,
		aggregatePages: DefaultAggregatePages,
		scaleMin:       DefaultScaleMin,
		scaleMax:       DefaultScaleMax,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
