package model

import (
	"log/slog"

	"github.com/m-mizutani/repoward/pkg/domain/types"
)

// RepositoryHandle is the identity of a created GitHub repository. Every dependent resource references it.
type RepositoryHandle struct {
	ID     int64
	NodeID string
	Owner  string
	Name   string
	// HeadBranch is the branch GitHub reported as default right after creation.
	HeadBranch types.BranchName
}

func (x *RepositoryHandle) FullName() string {
	return x.Owner + "/" + x.Name
}

func (x *RepositoryHandle) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("owner", x.Owner),
		slog.String("name", x.Name),
		slog.String("node_id", x.NodeID),
	)
}
