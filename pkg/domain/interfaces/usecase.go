package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/repoward/pkg/domain/model"
)

type UseCase interface {
	MintCredentials(ctx context.Context, input model.MintCredentialsInput) (*model.CredentialBundle, error)
	Provision(ctx context.Context, input *model.ProvisionInput) (*model.ProvisionReport, error)
	ProvisionAll(ctx context.Context, input *model.ProvisionAllInput) ([]*model.ProvisionReport, error)
	Plan(spec *model.RepoSpec) ([]model.PlannedResource, error)
}
