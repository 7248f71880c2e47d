package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

// parseFlags runs a command having flags with args and calls action after flags are parsed.
func parseFlags(t *testing.T, flags []cli.Flag, args []string, action func(ctx context.Context) error) error {
	t.Helper()
	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			return action(ctx)
		},
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			gt.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, v) })
		}
	}
}
