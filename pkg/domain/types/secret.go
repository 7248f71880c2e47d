package types

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const secretMask = "[REDACTED]"

// SecretValue is a sensitive scalar destined for a secret store. Every
// formatting path (fmt verbs, slog, JSON) yields a mask; the plaintext is only
// available through Reveal.
type SecretValue string

func (x SecretValue) String() string   { return secretMask }
func (x SecretValue) GoString() string { return secretMask }

func (x SecretValue) LogValue() slog.Value {
	return slog.StringValue(secretMask)
}

func (x SecretValue) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(secretMask))
}

func (x SecretValue) MarshalJSON() ([]byte, error) {
	return []byte(`"` + secretMask + `"`), nil
}

func (x SecretValue) MarshalText() ([]byte, error) {
	return []byte(secretMask), nil
}

// Reveal returns plaintext of the secret. Call it only when writing to a secret store.
func (x SecretValue) Reveal() string { return string(x) }

func (x SecretValue) IsEmpty() bool { return x == "" }

// SecretName is a name of GitHub Actions secret. It must be environment-variable style.
type SecretName string

var ptnSecretName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func (x SecretName) Validate() error {
	if !ptnSecretName.MatchString(string(x)) {
		return goerr.Wrap(ErrValidationFailed, "invalid secret name",
			goerr.V("name", string(x)),
			goerr.V("pattern", ptnSecretName.String()),
		)
	}
	if strings.HasPrefix(strings.ToUpper(string(x)), "GITHUB_") {
		return goerr.Wrap(ErrValidationFailed, "secret name must not start with GITHUB_", goerr.V("name", string(x)))
	}
	return nil
}

// Key returns normalized name. GitHub stores secret names in upper case.
func (x SecretName) Key() string {
	return strings.ToUpper(string(x))
}

// VaultToken is a Vault client token used for bootstrap only.
type VaultToken string

func (x VaultToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x VaultToken) String() string {
	return "***********"
}
