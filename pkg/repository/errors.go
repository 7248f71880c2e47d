package repository

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

var (
	// ErrNotFound is shared with domain so that callers can check it without importing storage packages.
	ErrNotFound     = types.ErrNotFound
	ErrInvalidInput = goerr.New("invalid input")
)
