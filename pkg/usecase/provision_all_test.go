package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/infra"
	"github.com/m-mizutani/repoward/pkg/repository/memory"
	"github.com/m-mizutani/repoward/pkg/usecase"
)

func newSpecFile(names ...string) model.SpecFile {
	file := model.SpecFile{Owner: "arpanrec"}
	for _, name := range names {
		file.Repositories = append(file.Repositories, model.RepoSpec{Name: name})
	}
	return file
}

func TestProvisionAll(t *testing.T) {
	log := &callLog{}
	hosting := newHostingMock(log, "main")
	backend := newBackendMock()
	reports := memory.New()
	uc := usecase.New(infra.New(
		infra.WithHostingProvider(hosting),
		infra.WithSecretBackend(backend),
		infra.WithReportRepository(reports),
	))

	results, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
		SpecFile:     newSpecFile("alpha", "beta"),
		Mint:         &model.MintCredentialsInput{},
		ExtraSecrets: map[types.SecretName]types.SecretValue{"NPM_TOKEN": "npm"},
	})
	gt.NoError(t, err)
	gt.V(t, len(results)).Equal(2)

	t.Run("credentials are minted per repository", func(t *testing.T) {
		calls := backend.IssueSecretIDCalls()
		gt.V(t, len(calls)).Equal(2)
		gt.V(t, calls[0].Input.Metadata["target"]).Equal("arpanrec/alpha")
		gt.V(t, calls[1].Input.Metadata["target"]).Equal("arpanrec/beta")
	})

	t.Run("bundle and extra secrets are put", func(t *testing.T) {
		names := map[string]int{}
		for _, c := range hosting.PutActionSecretCalls() {
			names[c.Repo.Name+"/"+string(c.Name)]++
		}
		for _, repo := range []string{"alpha", "beta"} {
			for _, name := range model.CredentialBundleNames {
				gt.V(t, names[repo+"/"+string(name)]).Equal(1)
			}
			gt.V(t, names[repo+"/NPM_TOKEN"]).Equal(1)
		}
	})

	t.Run("each repository has own run ID and stored report", func(t *testing.T) {
		gt.V(t, results[0].RunID).NotEqual(results[1].RunID)

		stored, err := reports.GetReport(context.Background(), "arpanrec", "alpha", results[0].RunID)
		gt.NoError(t, err)
		gt.V(t, stored.Repository).Equal("alpha")
		gt.True(t, stored.Succeeded())

		list, err := reports.ListReports(context.Background(), "arpanrec", "beta", 10)
		gt.NoError(t, err)
		gt.V(t, len(list)).Equal(1)
	})
}

func TestProvisionAllContinuesAfterFatalFailure(t *testing.T) {
	log := &callLog{}
	hosting := newHostingMock(log, "main")
	create := hosting.CreateRepositoryFunc
	hosting.CreateRepositoryFunc = func(ctx context.Context, owner string, settings *model.RepoSettings) (*model.RepositoryHandle, error) {
		if settings.Name == "broken" {
			return nil, errors.New("forbidden")
		}
		return create(ctx, owner, settings)
	}
	reports := memory.New()
	uc := usecase.New(infra.New(
		infra.WithHostingProvider(hosting),
		infra.WithReportRepository(reports),
	))

	results, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
		SpecFile: newSpecFile("broken", "healthy"),
	})
	gt.Error(t, err)
	gt.V(t, len(results)).Equal(2)
	gt.S(t, results[0].Fatal).Contains("repository")
	gt.True(t, results[1].Succeeded())
	gt.True(t, log.has("CreateRepository:arpanrec/healthy"))

	stored, err := reports.ListReports(context.Background(), "arpanrec", "broken", 10)
	gt.NoError(t, err)
	gt.V(t, len(stored)).Equal(1)
	gt.V(t, stored[0].Fatal).NotEqual("")
}

func TestProvisionAllPartialFailure(t *testing.T) {
	log := &callLog{}
	hosting := newHostingMock(log, "main")
	hosting.CreateEnvironmentFunc = func(ctx context.Context, repo *model.RepositoryHandle, name string) error {
		return errors.New("environment is not available on this plan")
	}
	uc := usecase.New(infra.New(infra.WithHostingProvider(hosting)))

	results, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
		SpecFile: newSpecFile("alpha"),
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("not fully provisioned")
	gt.V(t, len(results)).Equal(1)
	gt.V(t, results[0].Fatal).Equal("")
	gt.False(t, results[0].Succeeded())
}

func TestProvisionAllSecretConflict(t *testing.T) {
	log := &callLog{}
	hosting := newHostingMock(log, "main")
	uc := usecase.New(infra.New(
		infra.WithHostingProvider(hosting),
		infra.WithSecretBackend(newBackendMock()),
	))

	results, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
		SpecFile:     newSpecFile("alpha"),
		Mint:         &model.MintCredentialsInput{},
		ExtraSecrets: map[types.SecretName]types.SecretValue{"vault_addr": "https://other.example.com"},
	})
	gt.Error(t, err)
	gt.V(t, len(results)).Equal(1)
	gt.S(t, results[0].Fatal).Contains("conflicts")
	gt.V(t, len(log.calls)).Equal(0)
}

func TestProvisionAllSkipsMinting(t *testing.T) {
	t.Run("inject_credentials is false", func(t *testing.T) {
		log := &callLog{}
		backend := newBackendMock()
		uc := usecase.New(infra.New(
			infra.WithHostingProvider(newHostingMock(log, "main")),
			infra.WithSecretBackend(backend),
		))

		file := newSpecFile("alpha")
		file.Repositories[0].InjectCredentials = ptr(false)

		_, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
			SpecFile: file,
			Mint:     &model.MintCredentialsInput{},
		})
		gt.NoError(t, err)
		gt.V(t, len(backend.IssueCertificateCalls())).Equal(0)
		gt.False(t, log.has("PutActionSecret"))
	})

	t.Run("no secret backend", func(t *testing.T) {
		log := &callLog{}
		uc := usecase.New(infra.New(infra.WithHostingProvider(newHostingMock(log, "main"))))

		_, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
			SpecFile: newSpecFile("alpha"),
			Mint:     &model.MintCredentialsInput{},
		})
		gt.NoError(t, err)
		gt.False(t, log.has("PutActionSecret"))
	})
}

func TestProvisionAllSelection(t *testing.T) {
	t.Run("only named repositories are provisioned", func(t *testing.T) {
		log := &callLog{}
		uc := usecase.New(infra.New(infra.WithHostingProvider(newHostingMock(log, "main"))))

		results, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
			SpecFile: newSpecFile("alpha", "beta"),
			Only:     []string{"BETA"},
		})
		gt.NoError(t, err)
		gt.V(t, len(results)).Equal(1)
		gt.V(t, results[0].Repository).Equal("beta")
		gt.False(t, log.has("CreateRepository:arpanrec/alpha"))
	})

	t.Run("unknown name is rejected", func(t *testing.T) {
		log := &callLog{}
		uc := usecase.New(infra.New(infra.WithHostingProvider(newHostingMock(log, "main"))))

		_, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
			SpecFile: newSpecFile("alpha"),
			Only:     []string{"gamma"},
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(log.calls)).Equal(0)
	})

	t.Run("invalid spec file is rejected", func(t *testing.T) {
		log := &callLog{}
		uc := usecase.New(infra.New(infra.WithHostingProvider(newHostingMock(log, "main"))))

		_, err := uc.ProvisionAll(context.Background(), &model.ProvisionAllInput{
			SpecFile: newSpecFile("alpha", "ALPHA"),
		})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(log.calls)).Equal(0)
	})
}
