package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/infra/gh"
	"github.com/urfave/cli/v3"
)

// GitHub selects GitHub App installation or personal access token authentication. App takes precedence.
type GitHub struct {
	appID      types.GitHubAppID
	installID  types.GitHubAppInstallID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	token      types.GitHubToken         `masq:"secret"`
	baseURL    string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("REPOWARD_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-install-id",
			Usage:       "GitHub App installation ID (looked up from owner if not set)",
			Category:    "GitHub",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("REPOWARD_GITHUB_APP_INSTALL_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM)",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("REPOWARD_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token, used when GitHub App is not configured",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOWARD_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL, e.g. https://github.example.com/api/v3/ for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("REPOWARD_GITHUB_BASE_URL"),
		},
	}
}

func (x *GitHub) appEnabled() bool {
	return x.appID != 0 && x.privateKey != ""
}

// New creates a hosting provider for owner. owner is used to find App installation when install ID is not given.
func (x *GitHub) New(ctx context.Context, owner string) (*gh.Client, error) {
	var options []gh.Option
	if x.baseURL != "" {
		options = append(options, gh.WithBaseURL(x.baseURL))
	}

	switch {
	case x.appEnabled():
		return gh.NewWithApp(ctx, x.appID, x.installID, x.privateKey, owner, options...)
	case x.token != "":
		return gh.NewWithToken(x.token, options...)
	case x.appID != 0:
		return nil, goerr.Wrap(types.ErrMissingBootstrapCredential, "GitHub App private key is required", goerr.V("name", "github-app-private-key"))
	default:
		return nil, goerr.Wrap(types.ErrMissingBootstrapCredential, "GitHub App or token is required", goerr.V("name", "github-token"))
	}
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.Int("token.len", len(x.token)),
		slog.String("baseURL", x.baseURL),
	)
}
