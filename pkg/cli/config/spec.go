package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type SpecFile struct {
	path string
	only []string
}

func (x *SpecFile) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "spec",
			Aliases:     []string{"s"},
			Usage:       "Path to repository spec file (YAML)",
			Destination: &x.path,
			Sources:     cli.EnvVars("REPOWARD_SPEC"),
			Value:       "repoward.yaml",
		},
		&cli.StringSliceFlag{
			Name:        "only",
			Usage:       "Provision only the named repositories (repeatable)",
			Destination: &x.only,
			Sources:     cli.EnvVars("REPOWARD_ONLY"),
		},
	}
}

// Load reads and validates the spec file.
func (x *SpecFile) Load() (*model.SpecFile, error) {
	if x.path == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "spec file path is required")
	}

	file, err := model.LoadSpecFile(x.path)
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid spec file", goerr.V("path", x.path))
	}
	return file, nil
}

func (x *SpecFile) Only() []string {
	return x.only
}

func (x SpecFile) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.path),
		slog.Any("only", x.only),
	)
}
