package types

import "github.com/google/uuid"

// RunID identifies one provisioning run of one repository.
type RunID string

func NewRunID() RunID {
	return RunID(uuid.New().String())
}

func (x RunID) String() string {
	return string(x)
}
