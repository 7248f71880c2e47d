package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . HostingProvider SecretBackend

import (
	"context"

	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

// HostingProvider is an authenticated client of a source-code hosting service bound to one account or organization.
type HostingProvider interface {
	// CreateRepository returns types.ErrAlreadyExists if the name is taken.
	CreateRepository(ctx context.Context, owner string, settings *model.RepoSettings) (*model.RepositoryHandle, error)
	GetRepository(ctx context.Context, owner, name string) (*model.RepositoryHandle, error)
	UpdateRepository(ctx context.Context, repo *model.RepositoryHandle, settings *model.RepoSettings) error
	ListBranches(ctx context.Context, repo *model.RepositoryHandle) ([]types.BranchName, error)
	// CreateBranch creates branch from HEAD. It returns types.ErrAlreadyExists if the branch is present.
	CreateBranch(ctx context.Context, repo *model.RepositoryHandle, branch types.BranchName) error
	SetDefaultBranch(ctx context.Context, repo *model.RepositoryHandle, branch types.BranchName) error
	CreateBranchProtection(ctx context.Context, repo *model.RepositoryHandle, rule *model.BranchProtectionRule) error
	ReplaceTopics(ctx context.Context, repo *model.RepositoryHandle, topics []string) error
	SetVulnerabilityAlerts(ctx context.Context, repo *model.RepositoryHandle, enabled bool) error
	PutActionSecret(ctx context.Context, repo *model.RepositoryHandle, name types.SecretName, value types.SecretValue) error
	CreateEnvironment(ctx context.Context, repo *model.RepositoryHandle, name string) error
	AddCollaborator(ctx context.Context, repo *model.RepositoryHandle, login string, permission types.Permission) error
}

// SecretBackend is a secret management service which can issue PKI certificates and AppRole secret IDs.
type SecretBackend interface {
	Address() string
	IssueCertificate(ctx context.Context, input *IssueCertificateInput) (*model.IssuedCertificate, error)
	IssueSecretID(ctx context.Context, input *IssueSecretIDInput) (types.SecretValue, error)
	LookupRoleID(ctx context.Context, mount, role string) (types.SecretValue, error)
}

type IssueCertificateInput struct {
	Mount      string
	Role       string
	CommonName string
}

type IssueSecretIDInput struct {
	Mount    string
	Role     string
	Metadata map[string]string
}
