package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repoward/pkg/cli/config"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// reportRepositoryFactory is replaced in tests
var reportRepositoryFactory = func(ctx context.Context, cfg *config.Firestore) (interfaces.ReportRepository, error) {
	repo, err := cfg.NewRepository(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore repository")
	}
	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "report storage is not configured (firestore-project-id is required)")
	}
	return repo, nil
}

func reportCommand() *cli.Command {
	var (
		firestore config.Firestore
		owner     string
		repo      string
		asJSON    bool
	)

	commonFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Repository owner",
			Required:    true,
			Destination: &owner,
			Sources:     cli.EnvVars("REPOWARD_OWNER"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Repository name",
			Required:    true,
			Destination: &repo,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print reports as JSON",
			Destination: &asJSON,
		},
	}

	var limit int64
	listCommand := &cli.Command{
		Name:  "list",
		Usage: "List provisioning reports of a repository, newest first",
		Flags: slice.Flatten(commonFlags, []cli.Flag{
			&cli.Int64Flag{
				Name:        "limit",
				Usage:       "Max number of reports",
				Value:       10,
				Destination: &limit,
			},
		}, firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Debug("listing reports", slog.Any("firestore", &firestore), slog.String("owner", owner), slog.String("repo", repo))

			store, err := reportRepositoryFactory(ctx, &firestore)
			if err != nil {
				return err
			}
			reports, err := store.ListReports(ctx, owner, repo, int(limit))
			if err != nil {
				return err
			}
			return printReports(c.Root().Writer, reports, asJSON)
		},
	}

	var runID string
	getCommand := &cli.Command{
		Name:  "get",
		Usage: "Show one provisioning report",
		Flags: slice.Flatten(commonFlags, []cli.Flag{
			&cli.StringFlag{
				Name:        "run-id",
				Usage:       "Run ID of the report",
				Required:    true,
				Destination: &runID,
			},
		}, firestore.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			store, err := reportRepositoryFactory(ctx, &firestore)
			if err != nil {
				return err
			}
			report, err := store.GetReport(ctx, owner, repo, types.RunID(runID))
			if err != nil {
				return err
			}
			return printReports(c.Root().Writer, []*model.ProvisionReport{report}, asJSON)
		},
	}

	return &cli.Command{
		Name:     "report",
		Usage:    "Read provisioning reports stored in Firestore",
		Commands: []*cli.Command{listCommand, getCommand},
	}
}
