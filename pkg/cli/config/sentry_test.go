package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/cli/config"
)

func TestSentryFlags(t *testing.T) {
	sentryConfig := &config.Sentry{}
	flags := sentryConfig.Flags()

	gt.V(t, len(flags)).Equal(3)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		flagNames[flag.Names()[0]] = true
	}

	gt.True(t, flagNames["sentry-dsn"])
	gt.True(t, flagNames["sentry-env"])
	gt.True(t, flagNames["sentry-release"])
}

func TestSentryConfigure(t *testing.T) {
	unsetEnv(t, "REPOWARD_SENTRY_DSN", "REPOWARD_SENTRY_ENV", "REPOWARD_SENTRY_RELEASE")

	t.Run("not configured", func(t *testing.T) {
		var s config.Sentry
		gt.NoError(t, parseFlags(t, s.Flags(), nil, func(ctx context.Context) error {
			flush, err := s.Configure(ctx)
			gt.NoError(t, err)
			flush()
			return nil
		}))
	})

	t.Run("log does not contain DSN key", func(t *testing.T) {
		var s config.Sentry
		args := []string{"--sentry-dsn", "https://0123456789abcdef@o1.ingest.sentry.io/42", "--sentry-env", "test"}
		gt.NoError(t, parseFlags(t, s.Flags(), args, func(ctx context.Context) error {
			var buf bytes.Buffer
			slog.New(slog.NewJSONHandler(&buf, nil)).Info("sentry", slog.Any("sentry", &s))
			gt.S(t, buf.String()).Contains("o1.ingest.sentry.io")
			gt.S(t, buf.String()).NotContains("0123456789abcdef")
			return nil
		}))
	})
}
