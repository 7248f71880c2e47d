package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repoward/pkg/cli/config"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/infra"
	"github.com/m-mizutani/repoward/pkg/usecase"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func provisionCommand() *cli.Command {
	var (
		spec      config.SpecFile
		github    config.GitHub
		vault     config.Vault
		firestore config.Firestore
		sentry    config.Sentry

		secretNames  []string
		allowPartial bool
		adopt        bool
		noMint       bool
		asJSON       bool
		concurrency  int64
		taskTimeout  time.Duration
	)

	return &cli.Command{
		Name:    "provision",
		Aliases: []string{"p"},
		Usage:   "Create repositories declared in spec file and converge their governance policy",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringSliceFlag{
				Name:        "secret",
				Usage:       "Name of environment variable put into every repository as action secret (repeatable)",
				Destination: &secretNames,
				Sources:     cli.EnvVars("REPOWARD_SECRETS"),
			},
			&cli.BoolFlag{
				Name:        "allow-partial",
				Usage:       "Exit with zero even if some sub-resources failed",
				Destination: &allowPartial,
				Sources:     cli.EnvVars("REPOWARD_ALLOW_PARTIAL"),
			},
			&cli.BoolFlag{
				Name:        "adopt",
				Usage:       "Reconcile existing repository instead of failing on name conflict",
				Destination: &adopt,
				Sources:     cli.EnvVars("REPOWARD_ADOPT"),
			},
			&cli.BoolFlag{
				Name:        "no-mint",
				Usage:       "Do not mint Vault credentials even if Vault is configured",
				Destination: &noMint,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print reports as JSON",
				Destination: &asJSON,
			},
			&cli.Int64Flag{
				Name:        "concurrency",
				Usage:       "Max number of API calls running at the same time for one repository",
				Value:       8,
				Destination: &concurrency,
				Sources:     cli.EnvVars("REPOWARD_CONCURRENCY"),
			},
			&cli.DurationFlag{
				Name:        "task-timeout",
				Usage:       "Timeout of each sub-resource operation (0 means no limit)",
				Value:       time.Minute,
				Destination: &taskTimeout,
				Sources:     cli.EnvVars("REPOWARD_TASK_TIMEOUT"),
			},
		}, spec.Flags(), github.Flags(), vault.Flags(), firestore.Flags(), sentry.Flags()),

		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.From(ctx)
			logger.Info("starting provision",
				slog.Any("spec", spec),
				slog.Any("github", github),
				slog.Any("vault", vault),
				slog.Any("firestore", &firestore),
				slog.Any("sentry", &sentry),
				slog.Any("secrets", secretNames),
				slog.Bool("adopt", adopt),
			)

			flush, err := sentry.Configure(ctx)
			if err != nil {
				return err
			}
			defer flush()

			specFile, err := spec.Load()
			if err != nil {
				return err
			}
			extra, err := readSecrets(secretNames)
			if err != nil {
				return err
			}

			hosting, err := github.New(ctx, specFile.Owner)
			if err != nil {
				return err
			}
			options := []infra.Option{infra.WithHostingProvider(hosting)}

			input := &model.ProvisionAllInput{
				SpecFile:     *specFile,
				ExtraSecrets: extra,
				Only:         spec.Only(),
				Adopt:        adopt,
			}

			if vault.Enabled() && !noMint {
				backend, err := vault.New(ctx)
				if err != nil {
					return err
				}
				options = append(options, infra.WithSecretBackend(backend))
				mint := vault.MintInput()
				input.Mint = &mint
			} else {
				logger.Warn("Credential minting is disabled", slog.Bool("vault", vault.Enabled()), slog.Bool("no_mint", noMint))
			}

			repo, err := firestore.NewRepository(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create Firestore repository")
			}
			if repo != nil {
				options = append(options, infra.WithReportRepository(repo))
			}

			uc := usecase.New(infra.New(options...),
				usecase.WithConcurrency(concurrency),
				usecase.WithTaskTimeout(taskTimeout),
			)

			reports, runErr := uc.ProvisionAll(ctx, input)
			if err := printReports(c.Root().Writer, reports, asJSON); err != nil {
				return err
			}

			if runErr != nil {
				if allowPartial && !hasFatal(reports) && len(reports) > 0 {
					logger.Warn("Some resources are not provisioned", slog.Any("error", runErr))
					return nil
				}
				return runErr
			}
			return nil
		},
	}
}

func hasFatal(reports []*model.ProvisionReport) bool {
	for _, r := range reports {
		if r.Fatal != "" {
			return true
		}
	}
	return false
}
