package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	out io.Writer
}

type Option func(*CLI)

// WithWriter replaces stdout of commands
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.out = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		out: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

const defaultEnvFile = ".env"

// loadEnvFile loads dotenv file into process environment. Already set variables are kept.
// Missing default file is ignored, but missing explicit file is an error.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}

	logging.Default().Debug("Loaded env file", slog.String("path", path))
	return nil
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		envFile   string
	)

	app := &cli.Command{
		Name:   "repoward",
		Usage:  "Provision GitHub repositories with governance policy and short-lived Vault credentials for CI",
		Writer: x.out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("REPOWARD_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("REPOWARD_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("REPOWARD_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "Path to dotenv file loaded before command flags are read (default: .env if present)",
				Aliases:     []string{"e"},
				Destination: &envFile,
			},
		},
		Commands: []*cli.Command{
			provisionCommand(),
			planCommand(),
			mintCommand(),
			reportCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := loadEnvFile(envFile); err != nil {
				return ctx, err
			}
			return logging.With(ctx, logging.Default()), nil
		},
	}

	if err := app.Run(context.Background(), argv); err != nil {
		logging.Default().Error("fatal error", "error", err)
		return err
	}

	return nil
}
