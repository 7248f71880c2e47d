package vault

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/hashicorp/vault/api"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
)

// Config is bootstrap credential of the controller itself. TLS files are paths on local disk.
type Config struct {
	Address string
	Token   types.VaultToken

	CACert     string
	ClientCert string
	ClientKey  string

	AppRoleMount string
	RoleID       types.SecretValue
	SecretID     types.SecretValue
}

func (x *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("address", x.Address),
		slog.Bool("token", x.Token != ""),
		slog.String("ca_cert", x.CACert),
		slog.String("client_cert", x.ClientCert),
		slog.String("client_key", x.ClientKey),
		slog.String("approle_mount", x.AppRoleMount),
		slog.Bool("role_id", !x.RoleID.IsEmpty()),
		slog.Bool("secret_id", !x.SecretID.IsEmpty()),
	)
}

// Client is a SecretBackend backed by HashiCorp Vault PKI and AppRole engines.
type Client struct {
	client *api.Client
}

var _ interfaces.SecretBackend = (*Client)(nil)

// New creates an authenticated Vault client. A static token is preferred; otherwise AppRole login is performed.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg.Address == "" {
		return nil, goerr.Wrap(types.ErrMissingBootstrapCredential, "vault address is not set")
	}
	if cfg.Token == "" && (cfg.RoleID.IsEmpty() || cfg.SecretID.IsEmpty()) {
		return nil, goerr.Wrap(types.ErrMissingBootstrapCredential, "vault token or approle role_id/secret_id is required")
	}
	if (cfg.ClientCert == "") != (cfg.ClientKey == "") {
		return nil, goerr.Wrap(types.ErrMissingBootstrapCredential, "vault client certificate and key must be set together")
	}

	apiCfg := api.DefaultConfig()
	if apiCfg.Error != nil {
		return nil, goerr.Wrap(apiCfg.Error, "failed to build default vault config")
	}
	apiCfg.Address = cfg.Address

	if cfg.CACert != "" || cfg.ClientCert != "" {
		tlsCfg := &api.TLSConfig{
			CACert:     cfg.CACert,
			ClientCert: cfg.ClientCert,
			ClientKey:  cfg.ClientKey,
		}
		if err := apiCfg.ConfigureTLS(tlsCfg); err != nil {
			return nil, goerr.Wrap(err, "failed to configure vault TLS", goerr.V("config", cfg))
		}
	}

	client, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create vault client", goerr.V("address", cfg.Address))
	}

	if cfg.Token != "" {
		client.SetToken(string(cfg.Token))
	} else {
		mount := cfg.AppRoleMount
		if mount == "" {
			mount = "approle"
		}
		if err := login(ctx, client, mount, cfg.RoleID, cfg.SecretID); err != nil {
			return nil, err
		}
	}

	logging.From(ctx).Debug("Vault client is ready", slog.Any("config", cfg))
	return &Client{client: client}, nil
}

func login(ctx context.Context, client *api.Client, mount string, roleID, secretID types.SecretValue) error {
	resp, err := client.Logical().WriteWithContext(ctx, "auth/"+mount+"/login", map[string]any{
		"role_id":   roleID.Reveal(),
		"secret_id": secretID.Reveal(),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to login vault with approle", goerr.V("mount", mount))
	}
	if resp == nil || resp.Auth == nil || resp.Auth.ClientToken == "" {
		return goerr.New("vault approle login returned no token", goerr.V("mount", mount))
	}

	client.SetToken(resp.Auth.ClientToken)
	return nil
}

func (x *Client) Address() string {
	return x.client.Address()
}

func stringField(data map[string]any, key string) string {
	v, _ := data[key].(string)
	return v
}

func (x *Client) IssueCertificate(ctx context.Context, input *interfaces.IssueCertificateInput) (*model.IssuedCertificate, error) {
	path := strings.Trim(input.Mount, "/") + "/issue/" + input.Role
	resp, err := x.client.Logical().WriteWithContext(ctx, path, map[string]any{
		"common_name": input.CommonName,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to issue certificate",
			goerr.V("path", path),
			goerr.V("common_name", input.CommonName),
		)
	}
	if resp == nil || resp.Data == nil {
		return nil, goerr.New("vault returned no certificate", goerr.V("path", path))
	}

	var chain []string
	if items, ok := resp.Data["ca_chain"].([]any); ok {
		for _, item := range items {
			if s, ok := item.(string); ok {
				chain = append(chain, s)
			}
		}
	}
	if len(chain) == 0 {
		if ca := stringField(resp.Data, "issuing_ca"); ca != "" {
			chain = append(chain, ca)
		}
	}

	cert := &model.IssuedCertificate{
		Certificate:  types.SecretValue(stringField(resp.Data, "certificate")),
		CAChain:      types.SecretValue(strings.Join(chain, "\n")),
		PrivateKey:   types.SecretValue(stringField(resp.Data, "private_key")),
		SerialNumber: stringField(resp.Data, "serial_number"),
	}
	if cert.Certificate.IsEmpty() || cert.PrivateKey.IsEmpty() {
		return nil, goerr.New("vault response lacks certificate or private key", goerr.V("path", path))
	}

	logging.From(ctx).Info("Issued client certificate",
		slog.String("common_name", input.CommonName),
		slog.String("serial_number", cert.SerialNumber),
	)
	return cert, nil
}

func (x *Client) IssueSecretID(ctx context.Context, input *interfaces.IssueSecretIDInput) (types.SecretValue, error) {
	path := "auth/" + strings.Trim(input.Mount, "/") + "/role/" + input.Role + "/secret-id"

	data := map[string]any{}
	if len(input.Metadata) > 0 {
		// Vault accepts metadata only as JSON-encoded string
		raw, err := json.Marshal(input.Metadata)
		if err != nil {
			return "", goerr.Wrap(err, "failed to encode secret-id metadata")
		}
		data["metadata"] = string(raw)
	}

	resp, err := x.client.Logical().WriteWithContext(ctx, path, data)
	if err != nil {
		return "", goerr.Wrap(err, "failed to issue secret-id", goerr.V("path", path))
	}
	if resp == nil || resp.Data == nil {
		return "", goerr.New("vault returned no secret-id", goerr.V("path", path))
	}

	secretID := types.SecretValue(stringField(resp.Data, "secret_id"))
	if secretID.IsEmpty() {
		return "", goerr.New("vault response lacks secret_id", goerr.V("path", path))
	}

	logging.From(ctx).Info("Issued approle secret-id",
		slog.String("role", input.Role),
		slog.String("accessor", stringField(resp.Data, "secret_id_accessor")),
	)
	return secretID, nil
}

func (x *Client) LookupRoleID(ctx context.Context, mount, role string) (types.SecretValue, error) {
	path := "auth/" + strings.Trim(mount, "/") + "/role/" + role + "/role-id"

	resp, err := x.client.Logical().ReadWithContext(ctx, path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to read role-id", goerr.V("path", path))
	}
	if resp == nil || resp.Data == nil {
		return "", goerr.Wrap(types.ErrNotFound, "approle role is not found", goerr.V("path", path))
	}

	roleID := types.SecretValue(stringField(resp.Data, "role_id"))
	if roleID.IsEmpty() {
		return "", goerr.New("vault response lacks role_id", goerr.V("path", path))
	}
	return roleID, nil
}
