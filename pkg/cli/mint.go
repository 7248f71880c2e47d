package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repoward/pkg/cli/config"
	"github.com/m-mizutani/repoward/pkg/infra"
	"github.com/m-mizutani/repoward/pkg/usecase"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func mintCommand() *cli.Command {
	var (
		vault  config.Vault
		target string
	)

	return &cli.Command{
		Name:  "mint",
		Usage: "Mint a credential bundle to check Vault configuration. Only names and lengths are printed",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "target",
				Usage:       "Target recorded in secret ID metadata, e.g. owner/repo",
				Destination: &target,
			},
		}, vault.Flags()),

		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Info("starting mint", slog.Any("vault", vault), slog.String("target", target))

			backend, err := vault.New(ctx)
			if err != nil {
				return err
			}

			input := vault.MintInput()
			input.Target = target

			uc := usecase.New(infra.New(infra.WithSecretBackend(backend)))
			bundle, err := uc.MintCredentials(ctx, input)
			if err != nil {
				return err
			}

			w := c.Root().Writer
			secrets := bundle.Secrets()
			for _, name := range bundle.Names() {
				_, _ = fmt.Fprintf(w, "%-42s %d bytes\n", name, len(secrets[name].Reveal()))
			}
			return nil
		},
	}
}
