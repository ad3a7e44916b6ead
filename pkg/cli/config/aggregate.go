package config

import (
	"log/slog"

	"github.com/m-mizutani/reposcore/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Aggregate is configuration of upstream paging and score scaling
type Aggregate struct {
	perPage  int64
	pages    int64
	scaleMin float64
	scaleMax float64
}

func (x *Aggregate) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "per-page",
			Usage:       "Number of repositories requested per upstream page",
			Category:    "Aggregate",
			Value:       usecase.DefaultPerPage,
			Destination: &x.perPage,
			Sources:     cli.EnvVars("REPOSCORE_PER_PAGE"),
		},
		&cli.Int64Flag{
			Name:        "aggregate-pages",
			Usage:       "Number of upstream pages fetched by aggregation",
			Category:    "Aggregate",
			Value:       usecase.DefaultAggregatePages,
			Destination: &x.pages,
			Sources:     cli.EnvVars("REPOSCORE_AGGREGATE_PAGES"),
		},
		&cli.FloatFlag{
			Name:        "scale-min",
			Usage:       "Lower bound of aggregated scores",
			Category:    "Aggregate",
			Value:       usecase.DefaultScaleMin,
			Destination: &x.scaleMin,
			Sources:     cli.EnvVars("REPOSCORE_SCALE_MIN"),
		},
		&cli.FloatFlag{
			Name:        "scale-max",
			Usage:       "Upper bound of aggregated scores",
			Category:    "Aggregate",
			Value:       usecase.DefaultScaleMax,
			Destination: &x.scaleMax,
			Sources:     cli.EnvVars("REPOSCORE_SCALE_MAX"),
		},
	}
}

func (x Aggregate) Options() []usecase.Option {
	return []usecase.Option{
		usecase.WithPerPage(int(x.perPage)),
		usecase.WithAggregatePages(int(x.pages)),
		usecase.WithScaleInterval(x.scaleMin, x.scaleMax),
	}
}

func (x Aggregate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("PerPage", x.perPage),
		slog.Int64("Pages", x.pages),
		slog.Float64("ScaleMin", x.scaleMin),
		slog.Float64("ScaleMax", x.scaleMax),
	)
}
