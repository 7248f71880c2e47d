package types

import "errors"

var (
	ErrInvalidOption    = errors.New("invalid option")
	ErrValidationFailed = errors.New("validation failed")

	// ErrResourceCreationFailed means the hosting backend rejected a create call.
	ErrResourceCreationFailed = errors.New("resource creation failed")

	// ErrAlreadyExists is returned by providers when the record to create is already present.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPreconditionSatisfied marks an operation that turned out to be unnecessary. It is treated as success.
	ErrPreconditionSatisfied = errors.New("precondition already satisfied")

	ErrCredentialMintingFailed    = errors.New("credential minting failed")
	ErrMissingBootstrapCredential = errors.New("missing bootstrap credential")

	ErrNotFound = errors.New("not found")
)
