package types

import (
	"log/slog"
	"strings"
)

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	GitHubToken         string
	GitHubOwner         string
	BranchName          string
	Visibility          string
	Permission          string
)

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

func (x Visibility) Valid() bool {
	switch x {
	case VisibilityPublic, VisibilityPrivate:
		return true
	}
	return false
}

const (
	PermissionPull     Permission = "pull"
	PermissionTriage   Permission = "triage"
	PermissionPush     Permission = "push"
	PermissionMaintain Permission = "maintain"
	PermissionAdmin    Permission = "admin"
)

// Valid reports whether x is one of the repository permission levels GitHub accepts for collaborators.
func (x Permission) Valid() bool {
	switch x {
	case PermissionPull, PermissionTriage, PermissionPush, PermissionMaintain, PermissionAdmin:
		return true
	}
	return false
}

func (x BranchName) String() string { return string(x) }

// RefName returns fully qualified git reference name, e.g. refs/heads/main
func (x BranchName) RefName() string {
	return "refs/heads/" + strings.TrimPrefix(string(x), "refs/heads/")
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}
