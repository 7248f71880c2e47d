package gh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"github.com/siderolabs/go-retry/retry"
)

func toGitHubRepository(settings *model.RepoSettings) *github.Repository {
	return &github.Repository{
		Name:                github.String(settings.Name),
		Description:         github.String(settings.Description),
		Homepage:            github.String(settings.HomepageURL),
		Private:             github.Bool(settings.Visibility == types.VisibilityPrivate),
		Visibility:          github.String(string(settings.Visibility)),
		HasIssues:           github.Bool(settings.HasIssues),
		HasProjects:         github.Bool(settings.HasProjects),
		HasWiki:             github.Bool(settings.HasWiki),
		HasDownloads:        github.Bool(settings.HasDownloads),
		IsTemplate:          github.Bool(settings.IsTemplate),
		AllowMergeCommit:    github.Bool(settings.AllowMergeCommit),
		AllowRebaseMerge:    github.Bool(settings.AllowRebaseMerge),
		AllowSquashMerge:    github.Bool(settings.AllowSquashMerge),
		AllowAutoMerge:      github.Bool(settings.AllowAutoMerge),
		DeleteBranchOnMerge: github.Bool(settings.DeleteBranchOnMerge),
	}
}

// isOrganization returns true if owner is an organization. The answer is cached per owner.
func (x *Client) isOrganization(ctx context.Context, owner string) (bool, error) {
	if v, ok := x.ownerTypes.Load(owner); ok {
		return v.(bool), nil
	}

	user, _, err := x.client.Users.Get(ctx, owner)
	if err != nil {
		return false, goerr.Wrap(err, "failed to get owner", goerr.V("owner", owner))
	}

	isOrg := user.GetType() == "Organization"
	x.ownerTypes.Store(owner, isOrg)
	return isOrg, nil
}

func (x *Client) CreateRepository(ctx context.Context, owner string, settings *model.RepoSettings) (*model.RepositoryHandle, error) {
	isOrg, err := x.isOrganization(ctx, owner)
	if err != nil {
		return nil, err
	}
	org := ""
	if isOrg {
		org = owner
	}

	req := toGitHubRepository(settings)
	req.AutoInit = github.Bool(settings.AutoInit)
	if settings.GitignoreTemplate != "" {
		req.GitignoreTemplate = github.String(settings.GitignoreTemplate)
	}
	if settings.LicenseTemplate != "" {
		req.LicenseTemplate = github.String(settings.LicenseTemplate)
	}

	repo, _, err := x.client.Repositories.Create(ctx, org, req)
	if err != nil {
		if isConflict(err, "already exists") {
			return nil, goerr.Wrap(types.ErrAlreadyExists, "repository name is already taken",
				goerr.V("owner", owner),
				goerr.V("repo", settings.Name),
			)
		}
		return nil, goerr.Wrap(err, "failed to create repository",
			goerr.V("owner", owner),
			goerr.V("repo", settings.Name),
		)
	}

	handle := toHandle(repo)
	logging.From(ctx).Info("Created repository", slog.Any("repo", handle))
	return handle, nil
}

func (x *Client) GetRepository(ctx context.Context, owner, name string) (*model.RepositoryHandle, error) {
	repo, _, err := x.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, goerr.Wrap(types.ErrNotFound, "repository not found",
				goerr.V("owner", owner),
				goerr.V("repo", name),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("repo", name),
		)
	}
	return toHandle(repo), nil
}

// UpdateRepository applies mutable settings to an existing repository. Creation-only settings such as auto_init and templates are not applied.
func (x *Client) UpdateRepository(ctx context.Context, repo *model.RepositoryHandle, settings *model.RepoSettings) error {
	req := toGitHubRepository(settings)
	if _, _, err := x.client.Repositories.Edit(ctx, repo.Owner, repo.Name, req); err != nil {
		return goerr.Wrap(err, "failed to update repository", goerr.V("repo", repo.FullName()))
	}

	logging.From(ctx).Info("Updated repository", slog.Any("repo", repo))
	return nil
}

func (x *Client) ListBranches(ctx context.Context, repo *model.RepositoryHandle) ([]types.BranchName, error) {
	var branches []types.BranchName
	opts := &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		result, resp, err := x.client.Repositories.ListBranches(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list branches", goerr.V("repo", repo.FullName()))
		}

		for _, b := range result {
			branches = append(branches, types.BranchName(b.GetName()))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return branches, nil
}

func (x *Client) CreateBranch(ctx context.Context, repo *model.RepositoryHandle, branch types.BranchName) error {
	head := repo.HeadBranch
	if head == "" {
		head = model.DefaultRepoSettings.DefaultBranch
	}

	ref, _, err := x.client.Git.GetRef(ctx, repo.Owner, repo.Name, "heads/"+head.String())
	if err != nil {
		return goerr.Wrap(err, "failed to get HEAD reference",
			goerr.V("repo", repo.FullName()),
			goerr.V("head", head),
		)
	}

	newRef := &github.Reference{
		Ref:    github.String(branch.RefName()),
		Object: &github.GitObject{SHA: ref.GetObject().SHA},
	}
	if _, _, err := x.client.Git.CreateRef(ctx, repo.Owner, repo.Name, newRef); err != nil {
		if isConflict(err, "reference already exists") {
			return goerr.Wrap(types.ErrAlreadyExists, "branch already exists",
				goerr.V("repo", repo.FullName()),
				goerr.V("branch", branch),
			)
		}
		return goerr.Wrap(err, "failed to create branch",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
		)
	}

	logging.From(ctx).Info("Created branch", slog.Any("repo", repo), slog.Any("branch", branch))
	return nil
}

// SetDefaultBranch waits until the branch becomes visible because it may be created concurrently.
func (x *Client) SetDefaultBranch(ctx context.Context, repo *model.RepositoryHandle, branch types.BranchName) error {
	req := &github.Repository{DefaultBranch: github.String(branch.String())}

	err := retry.Constant(x.retryTimeout, retry.WithUnits(x.retryInterval)).
		RetryWithContext(ctx, func(ctx context.Context) error {
			_, _, err := x.client.Repositories.Edit(ctx, repo.Owner, repo.Name, req)
			if err != nil {
				if statusCode(err) == http.StatusUnprocessableEntity {
					logging.From(ctx).Debug("Default branch is not ready yet",
						slog.Any("repo", repo),
						slog.Any("branch", branch),
					)
					return retry.ExpectedError(err)
				}
				return err
			}
			return nil
		})
	if err != nil {
		return goerr.Wrap(err, "failed to set default branch",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
		)
	}

	logging.From(ctx).Info("Set default branch", slog.Any("repo", repo), slog.Any("branch", branch))
	return nil
}

func (x *Client) ReplaceTopics(ctx context.Context, repo *model.RepositoryHandle, topics []string) error {
	if _, _, err := x.client.Repositories.ReplaceAllTopics(ctx, repo.Owner, repo.Name, topics); err != nil {
		return goerr.Wrap(err, "failed to replace topics",
			goerr.V("repo", repo.FullName()),
			goerr.V("topics", topics),
		)
	}
	return nil
}

func (x *Client) SetVulnerabilityAlerts(ctx context.Context, repo *model.RepositoryHandle, enabled bool) error {
	var err error
	if enabled {
		_, err = x.client.Repositories.EnableVulnerabilityAlerts(ctx, repo.Owner, repo.Name)
	} else {
		_, err = x.client.Repositories.DisableVulnerabilityAlerts(ctx, repo.Owner, repo.Name)
	}
	if err != nil {
		return goerr.Wrap(err, "failed to configure vulnerability alerts",
			goerr.V("repo", repo.FullName()),
			goerr.V("enabled", enabled),
		)
	}
	return nil
}

func (x *Client) CreateEnvironment(ctx context.Context, repo *model.RepositoryHandle, name string) error {
	if _, _, err := x.client.Repositories.CreateUpdateEnvironment(ctx, repo.Owner, repo.Name, name, &github.CreateUpdateEnvironment{}); err != nil {
		return goerr.Wrap(err, "failed to create environment",
			goerr.V("repo", repo.FullName()),
			goerr.V("environment", name),
		)
	}
	return nil
}

func (x *Client) AddCollaborator(ctx context.Context, repo *model.RepositoryHandle, login string, permission types.Permission) error {
	opts := &github.RepositoryAddCollaboratorOptions{Permission: string(permission)}
	if _, _, err := x.client.Repositories.AddCollaborator(ctx, repo.Owner, repo.Name, login, opts); err != nil {
		return goerr.Wrap(err, "failed to add collaborator",
			goerr.V("repo", repo.FullName()),
			goerr.V("login", login),
			goerr.V("permission", permission),
		)
	}
	return nil
}
