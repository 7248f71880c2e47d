package config

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Sentry struct {
	dsn         string `masq:"secret"`
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN to report fatal provisioning errors",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("REPOWARD_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("REPOWARD_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Sentry release, e.g. git commit of the spec repository",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("REPOWARD_SENTRY_RELEASE"),
		},
	}
}

// Configure initializes Sentry client. Returned function flushes buffered events and must be called before exit.
func (x *Sentry) Configure(ctx context.Context) (func(), error) {
	if x.dsn == "" {
		logging.From(ctx).Warn("sentry is not configured")
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry", goerr.V("host", x.host()))
	}

	return func() {
		if !sentry.Flush(5 * time.Second) {
			logging.From(ctx).Warn("some sentry events are not sent")
		}
	}, nil
}

// host returns host part of DSN. DSN contains public key, so only host is logged.
func (x *Sentry) host() string {
	u, err := url.Parse(x.dsn)
	if err != nil {
		return ""
	}
	return u.Host
}

func (x *Sentry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", x.host()),
		slog.Int("DSN.len", len(x.dsn)),
		slog.String("environment", x.environment),
		slog.String("release", x.release),
	)
}
