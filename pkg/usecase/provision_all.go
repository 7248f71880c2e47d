package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/errutil"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
)

// mergeSecrets adds src into dst. Names are compared by their case-insensitive key.
func mergeSecrets(dst, src map[types.SecretName]types.SecretValue, source string) error {
	keys := make(map[string]types.SecretName, len(dst))
	for name := range dst {
		keys[name.Key()] = name
	}

	for name, value := range src {
		if prev, ok := keys[name.Key()]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "action secret name conflicts",
				goerr.V("secret", name),
				goerr.V("conflict", prev),
				goerr.V("source", source),
			)
		}
		dst[name] = value
		keys[name.Key()] = name
	}
	return nil
}

// ProvisionAll provisions every repository of the spec file one by one. Failure of one repository does not stop
// the others. An error is returned if any repository failed fatally or partially.
func (x *UseCase) ProvisionAll(ctx context.Context, input *model.ProvisionAllInput) ([]*model.ProvisionReport, error) {
	if err := input.SpecFile.Validate(); err != nil {
		return nil, err
	}
	for name := range input.ExtraSecrets {
		if err := name.Validate(); err != nil {
			return nil, err
		}
	}

	specs, err := input.SpecFile.Select(input.Only)
	if err != nil {
		return nil, err
	}

	var (
		reports []*model.ProvisionReport
		fatal   []string
		partial []string
	)

	for _, spec := range specs {
		repoCtx := logging.CtxWithRunID(ctx, types.NewRunID())

		report, err := x.provisionOne(repoCtx, input, spec)
		if err != nil {
			errutil.HandleError(repoCtx, "failed to provision repository", err)
			fatal = append(fatal, spec.Name)
		} else if !report.Succeeded() {
			partial = append(partial, spec.Name)
		}

		if repo := x.clients.ReportRepository(); repo != nil {
			if err := repo.PutReport(repoCtx, report); err != nil {
				errutil.HandleError(repoCtx, "failed to save provision report", err)
			}
		}
		reports = append(reports, report)

		if ctx.Err() != nil {
			return reports, goerr.Wrap(ctx.Err(), "provisioning is canceled")
		}
	}

	logging.From(ctx).Info("Provisioned repositories",
		slog.String("owner", input.SpecFile.Owner),
		slog.Int("total", len(specs)),
		slog.Any("fatal", fatal),
		slog.Any("partial", partial),
	)

	if len(fatal) > 0 || len(partial) > 0 {
		return reports, goerr.New("some repositories are not fully provisioned",
			goerr.V("fatal", fatal),
			goerr.V("partial", partial),
		)
	}
	return reports, nil
}

// provisionOne always returns a report. The report has Fatal when err is not nil.
func (x *UseCase) provisionOne(ctx context.Context, input *model.ProvisionAllInput, spec model.RepoSpec) (*model.ProvisionReport, error) {
	owner := input.SpecFile.Owner
	runID, ctx := logging.CtxRunID(ctx)
	startedAt := logging.CtxTime(ctx)

	failed := func(err error) (*model.ProvisionReport, error) {
		return &model.ProvisionReport{
			RunID:      runID,
			Owner:      owner,
			Repository: spec.Name,
			Fatal:      err.Error(),
			StartedAt:  startedAt,
			FinishedAt: logging.CtxTime(ctx),
		}, err
	}

	secrets := make(map[types.SecretName]types.SecretValue, len(spec.ActionSecrets)+len(input.ExtraSecrets))
	for name, value := range spec.ActionSecrets {
		secrets[name] = value
	}
	if err := mergeSecrets(secrets, input.ExtraSecrets, "extra"); err != nil {
		return failed(err)
	}

	settings := spec.Resolve()
	if input.Mint != nil && settings.InjectCredentials {
		if x.clients.SecretBackend() == nil {
			logging.From(ctx).Warn("Secret backend is not configured, skip minting credentials", slog.String("repo", spec.Name))
		} else {
			mint := *input.Mint
			mint.Target = owner + "/" + spec.Name

			bundle, err := x.MintCredentials(ctx, mint)
			if err != nil {
				return failed(err)
			}
			if err := mergeSecrets(secrets, bundle.Secrets(), "credential bundle"); err != nil {
				return failed(err)
			}
		}
	}

	spec.ActionSecrets = secrets
	report, err := x.Provision(ctx, &model.ProvisionInput{
		Owner: owner,
		Spec:  spec,
		Adopt: input.Adopt,
	})
	if report == nil {
		return failed(err)
	}
	return report, err
}
