package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/graph"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
)

// provisioner holds state of one repository provisioning. handle is written only by the repository node
// and read by dependents after it completes.
type provisioner struct {
	hosting  interfaces.HostingProvider
	owner    string
	settings *model.RepoSettings
	adopt    bool

	mu     sync.Mutex
	handle *model.RepositoryHandle
}

type resourceTask func(ctx context.Context, p *provisioner) error

type resource struct {
	id        model.ResourceID
	dependsOn []model.ResourceID
	fatal     bool
	// satisfiable treats types.ErrAlreadyExists as converged state.
	satisfiable bool
	task        resourceTask
}

// resources returns graph nodes of settings. Dependencies always precede dependents.
func resources(settings *model.RepoSettings) []resource {
	repo := []model.ResourceID{model.ResourceRepository}

	nodes := []resource{
		{id: model.ResourceRepository, fatal: true, task: createRepository},
		{
			id:          model.ResourceBranch(settings.DefaultBranch),
			dependsOn:   repo,
			satisfiable: true,
			task:        ensureDefaultBranch,
		},
		{id: model.ResourceBranchDefault, dependsOn: repo, task: setDefaultBranch},
	}

	if settings.ProtectDefaultBranch {
		rule := model.DefaultBranchProtection(settings.DefaultBranch.String())
		nodes = append(nodes, resource{
			id:          model.ResourceBranchProtection(rule.Pattern),
			dependsOn:   []model.ResourceID{model.ResourceBranchDefault},
			satisfiable: true,
			task:        protectBranch(rule),
		})
	}

	backup := model.BackupBranchProtection()
	nodes = append(nodes, resource{
		id:          model.ResourceBranchProtection(backup.Pattern),
		dependsOn:   repo,
		satisfiable: true,
		task:        protectBranch(backup),
	})

	if len(settings.Topics) > 0 {
		nodes = append(nodes, resource{id: model.ResourceTopics, dependsOn: repo, task: replaceTopics})
	}

	nodes = append(nodes, resource{id: model.ResourceVulnerabilityAlerts, dependsOn: repo, task: setVulnerabilityAlerts})

	for _, name := range settings.SortedSecretNames() {
		nodes = append(nodes, resource{
			id:        model.ResourceActionSecret(types.SecretName(name.Key())),
			dependsOn: repo,
			task:      putActionSecret(name),
		})
	}

	nodes = append(nodes, resource{
		id:        model.ResourceEnvironment(model.ProductionEnvironment),
		dependsOn: repo,
		task:      createEnvironment,
	})

	for _, login := range settings.SortedCollaborators() {
		nodes = append(nodes, resource{
			id:        model.ResourceCollaborator(login),
			dependsOn: repo,
			task:      addCollaborator(login),
		})
	}

	return nodes
}

func (p *provisioner) repository() *model.RepositoryHandle {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handle
}

func (p *provisioner) setRepository(handle *model.RepositoryHandle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handle = handle
}

func createRepository(ctx context.Context, p *provisioner) error {
	handle, err := p.hosting.CreateRepository(ctx, p.owner, p.settings)
	if err == nil {
		p.setRepository(handle)
		return nil
	}

	if !p.adopt || !errors.Is(err, types.ErrAlreadyExists) {
		return err
	}

	handle, err = p.hosting.GetRepository(ctx, p.owner, p.settings.Name)
	if err != nil {
		return goerr.Wrap(err, "failed to get existing repository")
	}
	if err := p.hosting.UpdateRepository(ctx, handle, p.settings); err != nil {
		return err
	}
	p.setRepository(handle)

	return goerr.Wrap(types.ErrPreconditionSatisfied, "adopted existing repository")
}

func ensureDefaultBranch(ctx context.Context, p *provisioner) error {
	repo := p.repository()
	branch := p.settings.DefaultBranch

	branches, err := p.hosting.ListBranches(ctx, repo)
	if err != nil {
		return err
	}
	if slices.Contains(branches, branch) {
		return goerr.Wrap(types.ErrPreconditionSatisfied, "default branch already exists", goerr.V("branch", branch))
	}

	return p.hosting.CreateBranch(ctx, repo, branch)
}

func setDefaultBranch(ctx context.Context, p *provisioner) error {
	return p.hosting.SetDefaultBranch(ctx, p.repository(), p.settings.DefaultBranch)
}

func protectBranch(rule *model.BranchProtectionRule) resourceTask {
	return func(ctx context.Context, p *provisioner) error {
		return p.hosting.CreateBranchProtection(ctx, p.repository(), rule)
	}
}

func replaceTopics(ctx context.Context, p *provisioner) error {
	return p.hosting.ReplaceTopics(ctx, p.repository(), p.settings.Topics)
}

func setVulnerabilityAlerts(ctx context.Context, p *provisioner) error {
	return p.hosting.SetVulnerabilityAlerts(ctx, p.repository(), p.settings.VulnerabilityAlerts)
}

func putActionSecret(name types.SecretName) resourceTask {
	return func(ctx context.Context, p *provisioner) error {
		return p.hosting.PutActionSecret(ctx, p.repository(), name, p.settings.ActionSecrets[name])
	}
}

func createEnvironment(ctx context.Context, p *provisioner) error {
	return p.hosting.CreateEnvironment(ctx, p.repository(), model.ProductionEnvironment)
}

func addCollaborator(login string) resourceTask {
	return func(ctx context.Context, p *provisioner) error {
		return p.hosting.AddCollaborator(ctx, p.repository(), login, p.settings.Collaborators[login])
	}
}

func (p *provisioner) wrap(r resource) graph.Task {
	return func(ctx context.Context) error {
		logger := logging.From(ctx).With(slog.String("resource", string(r.id)))
		ctx = logging.With(ctx, logger)

		err := r.task(ctx, p)
		switch {
		case err == nil:
			logger.Debug("Resource created")
			return nil

		case errors.Is(err, types.ErrPreconditionSatisfied),
			r.satisfiable && errors.Is(err, types.ErrAlreadyExists):
			logger.Info("Resource already satisfied", slog.String("reason", err.Error()))
			return goerr.Wrap(graph.ErrSatisfied, "precondition already satisfied", goerr.V("resource", r.id))

		default:
			logger.Warn("Failed to provision resource", slog.Any("error", err))
			return err
		}
	}
}

func buildGraph(g *graph.Graph, nodes []resource, p *provisioner) error {
	for _, r := range nodes {
		opts := []graph.NodeOption{}
		for _, dep := range r.dependsOn {
			opts = append(opts, graph.DependsOn(string(dep)))
		}
		if r.fatal {
			opts = append(opts, graph.Fatal())
		}

		var task graph.Task
		if p != nil {
			task = p.wrap(r)
		}
		if err := g.Add(string(r.id), task, opts...); err != nil {
			return goerr.Wrap(err, "failed to build provisioning graph")
		}
	}
	return nil
}

func toResourceStatus(status graph.Status) model.ResourceStatus {
	switch status {
	case graph.StatusDone:
		return model.ResourceCreated
	case graph.StatusSatisfied:
		return model.ResourceSatisfied
	case graph.StatusFailed:
		return model.ResourceFailed
	default:
		return model.ResourceSkipped
	}
}

// Provision creates the repository and converges its governance sub-resources. An error is returned only when
// input is invalid or the repository itself could not be created; sub-resource failures are recorded in the report.
func (x *UseCase) Provision(ctx context.Context, input *model.ProvisionInput) (*model.ProvisionReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hosting := x.clients.HostingProvider()
	if hosting == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "hosting provider is not configured")
	}

	settings := input.Spec.Resolve()
	runID, ctx := logging.CtxRunID(ctx)
	logger := logging.From(ctx).With(
		slog.String("run_id", runID.String()),
		slog.String("repo", input.Owner+"/"+settings.Name),
	)
	ctx = logging.With(ctx, logger)

	report := &model.ProvisionReport{
		RunID:      runID,
		Owner:      input.Owner,
		Repository: settings.Name,
		StartedAt:  logging.CtxTime(ctx),
	}

	p := &provisioner{
		hosting:  hosting,
		owner:    input.Owner,
		settings: settings,
		adopt:    input.Adopt,
	}

	g := x.newGraph()
	if err := buildGraph(g, resources(settings), p); err != nil {
		return nil, err
	}

	logger.Info("Start provisioning",
		slog.Int("resources", len(g.Nodes())),
		slog.Any("secrets", settings.SortedSecretNames()),
	)

	result, runErr := g.Run(ctx)
	for _, r := range result.Nodes {
		res := model.ResourceResult{
			Resource: model.ResourceID(r.ID),
			Status:   toResourceStatus(r.Status),
		}
		if res.Status == model.ResourceFailed || res.Status == model.ResourceSkipped {
			if r.Err != nil {
				res.Error = r.Err.Error()
			}
		}
		report.Resources = append(report.Resources, res)
	}
	report.FinishedAt = logging.CtxTime(ctx)

	if handle := p.repository(); handle != nil {
		report.Handle = handle
		report.NodeID = handle.NodeID
	}

	if runErr != nil {
		if repo, ok := result.Get(string(model.ResourceRepository)); ok && repo.Status == graph.StatusFailed {
			report.Fatal = string(model.ResourceRepository) + ": " + runErr.Error()
			return report, goerr.Wrap(types.ErrResourceCreationFailed, "failed to create repository",
				goerr.V("resource", model.ResourceRepository),
				goerr.V("owner", input.Owner),
				goerr.V("repo", settings.Name),
				goerr.V("cause", runErr),
			)
		}

		report.Fatal = runErr.Error()
		return report, goerr.Wrap(runErr, "provisioning is interrupted",
			goerr.V("owner", input.Owner),
			goerr.V("repo", settings.Name),
		)
	}

	failed := report.Failed()
	if len(failed) > 0 {
		logger.Warn("Provisioning finished with failures", slog.Int("failed", len(failed)), slog.Any("resources", failed))
	} else {
		logger.Info("Provisioning finished", slog.Int("resources", len(report.Resources)))
	}

	return report, nil
}
