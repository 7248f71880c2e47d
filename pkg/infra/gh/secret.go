package gh

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/utils/logging"
	"golang.org/x/crypto/nacl/box"
)

// sealSecret encrypts value with the repository public key as libsodium sealed box.
func sealSecret(publicKey string, value types.SecretValue) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(publicKey)
	if err != nil {
		return "", goerr.Wrap(err, "failed to decode repository public key")
	}
	if len(raw) != 32 {
		return "", goerr.New("invalid repository public key length", goerr.V("length", len(raw)))
	}

	var recipient [32]byte
	copy(recipient[:], raw)

	sealed, err := box.SealAnonymous(nil, []byte(value.Reveal()), &recipient, rand.Reader)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encrypt secret")
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (x *Client) PutActionSecret(ctx context.Context, repo *model.RepositoryHandle, name types.SecretName, value types.SecretValue) error {
	key, _, err := x.client.Actions.GetRepoPublicKey(ctx, repo.Owner, repo.Name)
	if err != nil {
		return goerr.Wrap(err, "failed to get repository public key", goerr.V("repo", repo.FullName()))
	}

	encrypted, err := sealSecret(key.GetKey(), value)
	if err != nil {
		return goerr.Wrap(err, "failed to seal action secret",
			goerr.V("repo", repo.FullName()),
			goerr.V("secret", name),
		)
	}

	secret := &github.EncryptedSecret{
		Name:           name.Key(),
		KeyID:          key.GetKeyID(),
		EncryptedValue: encrypted,
	}
	if _, err := x.client.Actions.CreateOrUpdateRepoSecret(ctx, repo.Owner, repo.Name, secret); err != nil {
		return goerr.Wrap(err, "failed to put action secret",
			goerr.V("repo", repo.FullName()),
			goerr.V("secret", name),
		)
	}

	logging.From(ctx).Info("Put action secret",
		slog.Any("repo", repo),
		slog.String("secret", name.Key()),
	)
	return nil
}
