package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

type ProvisionInput struct {
	Owner string
	Spec  RepoSpec
	// Adopt reconciles an existing repository of the same name instead of failing.
	Adopt bool
}

func (x *ProvisionInput) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidOption, "owner is empty")
	}
	return x.Spec.Validate()
}

type ProvisionAllInput struct {
	SpecFile SpecFile
	// Mint configures credential minting. Nil disables minting even if a secret backend is available.
	Mint *MintCredentialsInput
	// ExtraSecrets are injected into every repository in addition to minted credentials.
	ExtraSecrets map[types.SecretName]types.SecretValue
	// Only limits provisioning to the named repositories when not empty.
	Only []string
	Adopt bool
}

// PlannedResource is one node of the provisioning graph in execution order.
type PlannedResource struct {
	Resource  ResourceID
	DependsOn []ResourceID
	Fatal     bool
}
