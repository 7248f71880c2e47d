package config

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/infra/vault"
	"github.com/m-mizutani/repoward/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

// Vault is bootstrap credential of the controller and the minting parameters. Environment variable names
// are the same as the ones the controller injects into CI, so a CI job can run the controller itself.
type Vault struct {
	addr  string
	token types.VaultToken `masq:"secret"`

	caCertFile     string
	clientCertFile string
	clientKeyFile  string

	caCertContent     types.SecretValue
	clientCertContent types.SecretValue
	clientKeyContent  types.SecretValue

	appRoleMount string
	roleID       types.SecretValue
	secretID     types.SecretValue

	pkiMount   string
	pkiRole    string
	mintRole   string
	mintIssuer string
}

func (x *Vault) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "vault-addr",
			Usage:       "Vault address",
			Category:    "Vault",
			Destination: &x.addr,
			Sources:     cli.EnvVars("REPOWARD_VAULT_ADDR", string(model.SecretVaultAddr)),
		},
		&cli.StringFlag{
			Name:        "vault-token",
			Usage:       "Vault token. AppRole login is used if not set",
			Category:    "Vault",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("REPOWARD_VAULT_TOKEN", "VAULT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "vault-ca-cert",
			Usage:       "Path to CA certificate file of Vault server",
			Category:    "Vault",
			Destination: &x.caCertFile,
			Sources:     cli.EnvVars("VAULT_CACERT"),
		},
		&cli.StringFlag{
			Name:        "vault-client-cert",
			Usage:       "Path to client certificate file for Vault mTLS",
			Category:    "Vault",
			Destination: &x.clientCertFile,
			Sources:     cli.EnvVars("VAULT_CLIENT_CERT"),
		},
		&cli.StringFlag{
			Name:        "vault-client-key",
			Usage:       "Path to client private key file for Vault mTLS",
			Category:    "Vault",
			Destination: &x.clientKeyFile,
			Sources:     cli.EnvVars("VAULT_CLIENT_KEY"),
		},
		&cli.StringFlag{
			Name:        "vault-ca-cert-base64",
			Usage:       "Base64 encoded CA certificate of Vault server",
			Category:    "Vault",
			Destination: (*string)(&x.caCertContent),
			Sources:     cli.EnvVars(string(model.SecretRootCACertificate)),
		},
		&cli.StringFlag{
			Name:        "vault-client-cert-base64",
			Usage:       "Base64 encoded client certificate for Vault mTLS",
			Category:    "Vault",
			Destination: (*string)(&x.clientCertContent),
			Sources:     cli.EnvVars(string(model.SecretVaultClientCertificate)),
		},
		&cli.StringFlag{
			Name:        "vault-client-key-base64",
			Usage:       "Base64 encoded client private key for Vault mTLS",
			Category:    "Vault",
			Destination: (*string)(&x.clientKeyContent),
			Sources:     cli.EnvVars(string(model.SecretVaultClientPrivateKey)),
		},
		&cli.StringFlag{
			Name:        "vault-approle-mount",
			Usage:       "AppRole auth mount for login and minting",
			Category:    "Vault",
			Value:       model.DefaultAppRoleMount,
			Destination: &x.appRoleMount,
			Sources:     cli.EnvVars("REPOWARD_VAULT_APPROLE_MOUNT"),
		},
		&cli.StringFlag{
			Name:        "vault-approle-role-id",
			Usage:       "AppRole role ID of the controller",
			Category:    "Vault",
			Destination: (*string)(&x.roleID),
			Sources:     cli.EnvVars(string(model.SecretVaultAppRoleRoleID)),
		},
		&cli.StringFlag{
			Name:        "vault-approle-secret-id",
			Usage:       "AppRole secret ID of the controller",
			Category:    "Vault",
			Destination: (*string)(&x.secretID),
			Sources:     cli.EnvVars(string(model.SecretVaultAppRoleSecretID)),
		},
		&cli.StringFlag{
			Name:        "vault-pki-mount",
			Usage:       "PKI secrets engine mount to issue client certificates",
			Category:    "Vault",
			Value:       model.DefaultPKIMount,
			Destination: &x.pkiMount,
			Sources:     cli.EnvVars("REPOWARD_VAULT_PKI_MOUNT"),
		},
		&cli.StringFlag{
			Name:        "vault-pki-role",
			Usage:       "PKI role to issue client certificates",
			Category:    "Vault",
			Value:       model.DefaultPKIRole,
			Destination: &x.pkiRole,
			Sources:     cli.EnvVars("REPOWARD_VAULT_PKI_ROLE"),
		},
		&cli.StringFlag{
			Name:        "vault-mint-role",
			Usage:       "AppRole role whose secret ID is minted for CI",
			Category:    "Vault",
			Value:       model.DefaultAppRoleName,
			Destination: &x.mintRole,
			Sources:     cli.EnvVars("REPOWARD_VAULT_MINT_ROLE"),
		},
		&cli.StringFlag{
			Name:        "vault-mint-issuer",
			Usage:       "Issuer recorded in secret ID metadata",
			Category:    "Vault",
			Value:       model.DefaultIssuer,
			Destination: &x.mintIssuer,
			Sources:     cli.EnvVars("REPOWARD_VAULT_MINT_ISSUER"),
		},
	}
}

// Enabled reports whether Vault address is set. Minting is skipped otherwise.
func (x *Vault) Enabled() bool {
	return x.addr != ""
}

// MintInput returns minting parameters. Target is filled per repository by the caller.
func (x *Vault) MintInput() model.MintCredentialsInput {
	return model.MintCredentialsInput{
		PKIMount:     x.pkiMount,
		PKIRole:      x.pkiRole,
		AppRoleMount: x.appRoleMount,
		RoleName:     x.mintRole,
		Issuer:       x.mintIssuer,
	}
}

func stageFile(dir, name string, content types.SecretValue) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(content.Reveal())
	if err != nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "failed to decode base64 content", goerr.V("name", name))
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0600); err != nil {
		return "", goerr.Wrap(err, "failed to write staged file", goerr.V("path", path))
	}
	return path, nil
}

// Bootstrap builds Vault client config. Base64 contents are decoded into files under dir; a file path given
// explicitly wins over the content.
func (x *Vault) Bootstrap(dir string) (*vault.Config, error) {
	cfg := &vault.Config{
		Address:      x.addr,
		Token:        x.token,
		CACert:       x.caCertFile,
		ClientCert:   x.clientCertFile,
		ClientKey:    x.clientKeyFile,
		AppRoleMount: x.appRoleMount,
		RoleID:       x.roleID,
		SecretID:     x.secretID,
	}

	staged := []struct {
		dst     *string
		content types.SecretValue
		name    string
	}{
		{&cfg.CACert, x.caCertContent, "ca.pem"},
		{&cfg.ClientCert, x.clientCertContent, "client.pem"},
		{&cfg.ClientKey, x.clientKeyContent, "client-key.pem"},
	}
	for _, s := range staged {
		if *s.dst != "" || s.content.IsEmpty() {
			continue
		}
		path, err := stageFile(dir, s.name, s.content)
		if err != nil {
			return nil, err
		}
		*s.dst = path
	}

	return cfg, nil
}

// New creates an authenticated Vault client. Staged files are removed before return because TLS
// material is loaded while the client is built.
func (x *Vault) New(ctx context.Context) (*vault.Client, error) {
	if !x.Enabled() {
		return nil, goerr.Wrap(types.ErrMissingBootstrapCredential, "vault address is not set", goerr.V("name", string(model.SecretVaultAddr)))
	}

	dir, err := os.MkdirTemp("", "repoward-vault-")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create temp dir for vault TLS files")
	}
	defer safe.RemoveAll(dir)

	cfg, err := x.Bootstrap(dir)
	if err != nil {
		return nil, err
	}
	return vault.New(ctx, cfg)
}

func (x Vault) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.Int("token.len", len(x.token)),
		slog.String("caCert", x.caCertFile),
		slog.String("clientCert", x.clientCertFile),
		slog.String("clientKey", x.clientKeyFile),
		slog.Int("caCertContent.len", len(x.caCertContent)),
		slog.Int("clientCertContent.len", len(x.clientCertContent)),
		slog.Int("clientKeyContent.len", len(x.clientKeyContent)),
		slog.String("appRoleMount", x.appRoleMount),
		slog.Int("roleID.len", len(x.roleID)),
		slog.Int("secretID.len", len(x.secretID)),
		slog.String("pkiMount", x.pkiMount),
		slog.String("pkiRole", x.pkiRole),
		slog.String("mintRole", x.mintRole),
	)
}
