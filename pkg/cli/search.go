package cli

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/reposcore/pkg/cli/config"
	"github.com/m-mizutani/reposcore/pkg/domain/interfaces"
	"github.com/m-mizutani/reposcore/pkg/domain/model"
	"github.com/m-mizutani/reposcore/pkg/domain/types"
	"github.com/m-mizutani/reposcore/pkg/infra"
	"github.com/m-mizutani/reposcore/pkg/usecase"
	"github.com/m-mizutani/reposcore/pkg/utils/logging"
	"github.com/m-mizutani/reposcore/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func searchCommand() *cli.Command {
	var (
		aggregateMode bool
		language      string
		created       string
		page          int64
		output        string

		github    config.GitHub
		aggregate config.Aggregate
	)

	return &cli.Command{
		Name:    "search",
		Aliases: []string{"q"},
		Usage:   "Search repositories once and print scored result as JSON",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "aggregate",
				Aliases:     []string{"a"},
				Usage:       "Aggregate multiple pages and scale scores",
				Destination: &aggregateMode,
			},
			&cli.StringFlag{
				Name:        "language",
				Usage:       "Repository language, e.g. go",
				Destination: &language,
			},
			&cli.StringFlag{
				Name:        "created",
				Usage:       "Creation date, e.g. 2024-01-01, >2024-01-01 or 2024-01-01..2024-01-31",
				Destination: &created,
			},
			&cli.Int64Flag{
				Name:        "page",
				Usage:       "Page number of search result (search mode only)",
				Destination: &page,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"O"},
				Usage:       "Output file [-|<file>]",
				Value:       "-",
				Destination: &output,
			},
		},
			github.Flags(),
			aggregate.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			params := &model.SearchParams{
				Language: language,
				Page:     int(page),
			}
			if c.IsSet("created") {
				params.Created = &created
			}
			if c.IsSet("page") && page <= 0 {
				return goerr.Wrap(model.NewBadRequestError(model.MsgInvalidPage), "invalid page", goerr.V("page", page))
			}

			ghClient, err := github.New()
			if err != nil {
				return err
			}
			uc := usecase.New(infra.New(infra.WithGitHub(ghClient)), aggregate.Options()...)

			var w io.Writer = os.Stdout
			if output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("output", output))
				}
				defer safe.Close(f)
				w = f
			}

			return runSearch(ctx, uc, params, aggregateMode, w)
		},
	}
}

func runSearch(ctx context.Context, uc interfaces.UseCase, params *model.SearchParams, aggregateMode bool, w io.Writer) error {
	reqID := types.NewRequestID()
	ctx = logging.CtxWithRequestID(ctx, reqID)
	ctx = logging.With(ctx, logging.From(ctx).With(slog.String("request_id", reqID.String())))

	search := uc.SearchRepositories
	if aggregateMode {
		search = uc.AggregateRepositories
	}

	repos, err := search(ctx, params)
	if err != nil {
		return err
	}
	if repos == nil {
		repos = []*model.ScoredRepository{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(&model.SearchResponse{
		RequestID: reqID,
		Data:      repos,
	}); err != nil {
		return goerr.Wrap(err, "failed to write search result")
	}

	return nil
}
