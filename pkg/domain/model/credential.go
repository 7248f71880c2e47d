package model

import (
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

// Canonical names consumed by the CI pipeline. Do not rename.
const (
	SecretVaultAddr              types.SecretName = "VAULT_ADDR"
	SecretVaultClientCertificate types.SecretName = "VAULT_CLIENT_CERTIFICATE_CONTENT_BASE64"
	SecretVaultClientPrivateKey  types.SecretName = "VAULT_CLIENT_PRIVATE_KEY_CONTENT_BASE64"
	SecretVaultAppRoleSecretID   types.SecretName = "VAULT_APPROLE_SECRET_ID"
	SecretVaultAppRoleRoleID     types.SecretName = "VAULT_APPROLE_ROLE_ID"
	SecretRootCACertificate      types.SecretName = "ROOT_CA_CERTIFICATE_CONTENT_BASE64"
)

// CredentialBundleNames lists the six names of CredentialBundle.
var CredentialBundleNames = []types.SecretName{
	SecretVaultAddr,
	SecretVaultClientCertificate,
	SecretVaultClientPrivateKey,
	SecretVaultAppRoleSecretID,
	SecretVaultAppRoleRoleID,
	SecretRootCACertificate,
}

// CredentialBundle is a set of short-lived Vault credentials for one repository's CI. It lives only for one provisioning run.
type CredentialBundle struct {
	VaultAddr         types.SecretValue
	ClientCertificate types.SecretValue
	ClientPrivateKey  types.SecretValue
	AppRoleSecretID   types.SecretValue
	AppRoleRoleID     types.SecretValue
	// RootCACertificate is the same blob as ClientCertificate (certificate followed by CA chain).
	RootCACertificate types.SecretValue
}

// Secrets returns bundle as action secret map keyed by the canonical names.
func (x *CredentialBundle) Secrets() map[types.SecretName]types.SecretValue {
	return map[types.SecretName]types.SecretValue{
		SecretVaultAddr:              x.VaultAddr,
		SecretVaultClientCertificate: x.ClientCertificate,
		SecretVaultClientPrivateKey:  x.ClientPrivateKey,
		SecretVaultAppRoleSecretID:   x.AppRoleSecretID,
		SecretVaultAppRoleRoleID:     x.AppRoleRoleID,
		SecretRootCACertificate:      x.RootCACertificate,
	}
}

// Names returns sorted secret names in the bundle
func (x *CredentialBundle) Names() []types.SecretName {
	names := make([]types.SecretName, 0, len(CredentialBundleNames))
	for name := range x.Secrets() {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (x *CredentialBundle) LogValue() slog.Value {
	names := x.Names()
	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		attrs = append(attrs, slog.Int(string(name)+".len", len(x.Secrets()[name].Reveal())))
	}
	return slog.GroupValue(attrs...)
}

// IssuedCertificate is a PKI leaf certificate with its chain and key, PEM encoded.
type IssuedCertificate struct {
	Certificate  types.SecretValue
	CAChain      types.SecretValue
	PrivateKey   types.SecretValue
	SerialNumber string
}

// MintCredentialsInput selects backend mounts and the fixed AppRole role for minting.
type MintCredentialsInput struct {
	PKIMount     string
	PKIRole      string
	AppRoleMount string
	RoleName     string
	// Issuer is written to secret-id metadata to identify who minted it.
	Issuer string
	// Target is the repository the bundle is minted for. It is recorded in secret-id metadata.
	Target string
}

const (
	DefaultPKIMount     = "pki"
	DefaultPKIRole      = "vault_client_certificate"
	DefaultAppRoleMount = "approle"
	DefaultAppRoleName  = "github-master-controller"
	DefaultIssuer       = "repoward"
)

// Resolve fills empty fields with defaults
func (x MintCredentialsInput) Resolve() MintCredentialsInput {
	if x.PKIMount == "" {
		x.PKIMount = DefaultPKIMount
	}
	if x.PKIRole == "" {
		x.PKIRole = DefaultPKIRole
	}
	if x.AppRoleMount == "" {
		x.AppRoleMount = DefaultAppRoleMount
	}
	if x.RoleName == "" {
		x.RoleName = DefaultAppRoleName
	}
	if x.Issuer == "" {
		x.Issuer = DefaultIssuer
	}
	return x
}

func (x MintCredentialsInput) Validate() error {
	for name, v := range map[string]string{
		"pki_mount":     x.PKIMount,
		"pki_role":      x.PKIRole,
		"approle_mount": x.AppRoleMount,
		"role_name":     x.RoleName,
	} {
		if v == "" {
			return goerr.Wrap(types.ErrInvalidOption, "mint option is empty", goerr.V("option", name))
		}
	}
	return nil
}
