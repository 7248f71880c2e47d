package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/repoward/pkg/cli/config"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/infra"
	"github.com/m-mizutani/repoward/pkg/usecase"
	"github.com/urfave/cli/v3"
)

type repoPlan struct {
	Owner      string                  `json:"owner"`
	Repository string                  `json:"repository"`
	Resources  []model.PlannedResource `json:"resources"`
}

func planCommand() *cli.Command {
	var (
		spec   config.SpecFile
		asJSON bool
	)

	return &cli.Command{
		Name:  "plan",
		Usage: "Show resources to be provisioned for each repository without calling any API",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print plan as JSON",
				Destination: &asJSON,
			},
		}, spec.Flags()),

		Action: func(ctx context.Context, c *cli.Command) error {
			specFile, err := spec.Load()
			if err != nil {
				return err
			}
			specs, err := specFile.Select(spec.Only())
			if err != nil {
				return err
			}

			uc := usecase.New(infra.New())
			plans := make([]repoPlan, 0, len(specs))
			for _, s := range specs {
				resources, err := uc.Plan(&s)
				if err != nil {
					return err
				}
				plans = append(plans, repoPlan{
					Owner:      specFile.Owner,
					Repository: s.Name,
					Resources:  resources,
				})
			}

			w := c.Root().Writer
			if asJSON {
				return printJSON(w, plans)
			}

			for _, p := range plans {
				_, _ = fmt.Fprintf(w, "%s/%s\n", p.Owner, p.Repository)
				for _, r := range p.Resources {
					line := "  " + string(r.Resource)
					if len(r.DependsOn) > 0 {
						deps := make([]string, 0, len(r.DependsOn))
						for _, d := range r.DependsOn {
							deps = append(deps, string(d))
						}
						line += " <- " + strings.Join(deps, ", ")
					}
					if r.Fatal {
						line += " (fatal)"
					}
					_, _ = fmt.Fprintln(w, line)
				}
			}
			return nil
		},
	}
}
