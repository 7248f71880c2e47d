package usecase

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
)

const (
	stageResolveAddress   = "resolve-address"
	stageIssueCertificate = "issue-certificate"
	stageIssueSecretID    = "issue-secret-id"
	stageLookupRoleID     = "lookup-role-id"
)

func mintingFailed(stage string, cause error) error {
	return goerr.Wrap(types.ErrCredentialMintingFailed, "failed to mint credentials",
		goerr.V("stage", stage),
		goerr.V("cause", cause),
	)
}

func encodeBase64(v string) types.SecretValue {
	return types.SecretValue(base64.StdEncoding.EncodeToString([]byte(v)))
}

// MintCredentials issues a fresh CredentialBundle. Every call creates new backend-side credentials and nothing is rolled back on failure.
func (x *UseCase) MintCredentials(ctx context.Context, input model.MintCredentialsInput) (*model.CredentialBundle, error) {
	backend := x.clients.SecretBackend()
	if backend == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "secret backend is not configured")
	}

	input = input.Resolve()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	addr := backend.Address()
	u, err := url.Parse(addr)
	if err != nil {
		return nil, mintingFailed(stageResolveAddress, err)
	}
	commonName := u.Hostname()
	if commonName == "" {
		return nil, mintingFailed(stageResolveAddress, goerr.New("backend address has no host", goerr.V("address", addr)))
	}

	cert, err := backend.IssueCertificate(ctx, &interfaces.IssueCertificateInput{
		Mount:      input.PKIMount,
		Role:       input.PKIRole,
		CommonName: commonName,
	})
	if err != nil {
		return nil, mintingFailed(stageIssueCertificate, err)
	}

	// Certificate followed by its chain. The same blob is published as root CA.
	certBundle := encodeBase64(cert.Certificate.Reveal() + "\n" + cert.CAChain.Reveal())
	privateKey := encodeBase64(cert.PrivateKey.Reveal())

	metadata := map[string]string{
		"issuer": input.Issuer,
		"data":   input.Issuer,
	}
	if input.Target != "" {
		metadata["target"] = input.Target
	}

	secretID, err := backend.IssueSecretID(ctx, &interfaces.IssueSecretIDInput{
		Mount:    input.AppRoleMount,
		Role:     input.RoleName,
		Metadata: metadata,
	})
	if err != nil {
		return nil, mintingFailed(stageIssueSecretID, err)
	}

	roleID, err := backend.LookupRoleID(ctx, input.AppRoleMount, input.RoleName)
	if err != nil {
		return nil, mintingFailed(stageLookupRoleID, err)
	}

	bundle := &model.CredentialBundle{
		VaultAddr:         types.SecretValue(addr),
		ClientCertificate: certBundle,
		ClientPrivateKey:  privateKey,
		AppRoleSecretID:   secretID,
		AppRoleRoleID:     roleID,
		RootCACertificate: certBundle,
	}

	logging.From(ctx).Info("Minted credentials",
		slog.String("common_name", commonName),
		slog.String("target", input.Target),
		slog.Any("bundle", bundle),
	)
	return bundle, nil
}
