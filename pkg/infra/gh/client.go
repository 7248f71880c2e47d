package gh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL       = "https://api.github.com/"
	defaultRetryTimeout  = 30 * time.Second
	defaultRetryInterval = time.Second
)

// Client is a HostingProvider backed by GitHub REST and GraphQL API.
type Client struct {
	client      *github.Client
	graphqlPath string

	retryTimeout  time.Duration
	retryInterval time.Duration

	// owner login -> true if the owner is an organization
	ownerTypes sync.Map
}

var _ interfaces.HostingProvider = (*Client)(nil)

type config struct {
	baseURL       string
	transport     http.RoundTripper
	retryTimeout  time.Duration
	retryInterval time.Duration
}

type Option func(*config)

// WithBaseURL sets REST API endpoint, e.g. https://github.example.com/api/v3/ for GitHub Enterprise Server.
func WithBaseURL(baseURL string) Option {
	return func(x *config) {
		x.baseURL = baseURL
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *config) {
		x.transport = tr
	}
}

// WithRetry configures waiting for eventually consistent operations such as switching default branch.
func WithRetry(timeout, interval time.Duration) Option {
	return func(x *config) {
		x.retryTimeout = timeout
		x.retryInterval = interval
	}
}

func newConfig(options []Option) *config {
	cfg := &config{
		baseURL:       defaultBaseURL,
		transport:     http.DefaultTransport,
		retryTimeout:  defaultRetryTimeout,
		retryInterval: defaultRetryInterval,
	}
	for _, opt := range options {
		opt(cfg)
	}
	if !strings.HasSuffix(cfg.baseURL, "/") {
		cfg.baseURL += "/"
	}
	return cfg
}

// NewWithToken creates a client authenticated by personal access token.
func NewWithToken(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}
	cfg := newConfig(options)

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   cfg.transport,
		},
	}
	return newClient(httpClient, cfg)
}

// NewWithApp creates a client authenticated as a GitHub App installation. If installID is zero, the installation of owner is looked up.
func NewWithApp(ctx context.Context, appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, owner string, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}
	cfg := newConfig(options)
	apiBase := strings.TrimSuffix(cfg.baseURL, "/")

	if installID == 0 {
		if owner == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "owner is required to find installation")
		}

		atr, err := ghinstallation.NewAppsTransport(cfg.transport, int64(appID), []byte(pem))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create app transport")
		}
		atr.BaseURL = apiBase

		appClient, err := newGitHubClient(&http.Client{Transport: atr}, cfg.baseURL)
		if err != nil {
			return nil, err
		}

		id, err := findInstallation(ctx, appClient, owner)
		if err != nil {
			return nil, err
		}
		installID = id
	}

	itr, err := ghinstallation.New(cfg.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("appID", appID),
			goerr.V("installID", installID),
		)
	}
	itr.BaseURL = apiBase

	return newClient(&http.Client{Transport: itr}, cfg)
}

func newGitHubClient(httpClient *http.Client, baseURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", baseURL))
	}
	client.BaseURL = u
	return client, nil
}

func newClient(httpClient *http.Client, cfg *config) (*Client, error) {
	client, err := newGitHubClient(httpClient, cfg.baseURL)
	if err != nil {
		return nil, err
	}

	// GitHub Enterprise Server serves GraphQL at /api/graphql next to /api/v3/
	graphqlPath := "graphql"
	if strings.HasSuffix(client.BaseURL.Path, "/api/v3/") {
		graphqlPath = "../graphql"
	}

	return &Client{
		client:        client,
		graphqlPath:   graphqlPath,
		retryTimeout:  cfg.retryTimeout,
		retryInterval: cfg.retryInterval,
	}, nil
}

func findInstallation(ctx context.Context, client *github.Client, owner string) (types.GitHubAppInstallID, error) {
	installation, resp, orgErr := client.Apps.FindOrganizationInstallation(ctx, owner)
	if orgErr == nil && installation != nil {
		logging.From(ctx).Info("Found organization installation",
			slog.String("owner", owner),
			slog.Int64("installID", installation.GetID()),
		)
		return types.GitHubAppInstallID(installation.GetID()), nil
	}

	if resp != nil && resp.StatusCode == http.StatusNotFound {
		installation, _, userErr := client.Apps.FindUserInstallation(ctx, owner)
		if userErr != nil {
			return 0, goerr.Wrap(userErr, "failed to find user installation for owner",
				goerr.V("owner", owner),
			)
		}
		if installation != nil {
			logging.From(ctx).Info("Found user installation",
				slog.String("owner", owner),
				slog.Int64("installID", installation.GetID()),
			)
			return types.GitHubAppInstallID(installation.GetID()), nil
		}
	}

	if orgErr != nil {
		return 0, goerr.Wrap(orgErr, "failed to find organization installation for owner",
			goerr.V("owner", owner),
		)
	}

	return 0, goerr.Wrap(types.ErrNotFound, "installation not found for owner",
		goerr.V("owner", owner),
	)
}

func statusCode(err error) int {
	var ger *github.ErrorResponse
	if errors.As(err, &ger) && ger.Response != nil {
		return ger.Response.StatusCode
	}
	return 0
}

// isConflict reports whether err is 422 Unprocessable Entity whose message contains fragment.
func isConflict(err error, fragment string) bool {
	var ger *github.ErrorResponse
	if !errors.As(err, &ger) || ger.Response == nil || ger.Response.StatusCode != http.StatusUnprocessableEntity {
		return false
	}

	fragment = strings.ToLower(fragment)
	if strings.Contains(strings.ToLower(ger.Message), fragment) {
		return true
	}
	for _, e := range ger.Errors {
		if strings.Contains(strings.ToLower(e.Message), fragment) {
			return true
		}
	}
	return false
}

func toHandle(repo *github.Repository) *model.RepositoryHandle {
	return &model.RepositoryHandle{
		ID:         repo.GetID(),
		NodeID:     repo.GetNodeID(),
		Owner:      repo.GetOwner().GetLogin(),
		Name:       repo.GetName(),
		HeadBranch: types.BranchName(repo.GetDefaultBranch()),
	}
}
