package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRepoSpecResolve(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		spec := model.RepoSpec{Name: "dotfiles"}
		s := spec.Resolve()

		expected := model.DefaultRepoSettings
		expected.Name = "dotfiles"
		expected.Topics = []string{}
		expected.Collaborators = map[string]types.Permission{}
		expected.ActionSecrets = map[types.SecretName]types.SecretValue{}
		gt.V(t, *s).Equal(expected)

		gt.V(t, s.Visibility).Equal(types.VisibilityPublic)
		gt.V(t, s.DefaultBranch).Equal(types.BranchName("main"))
		gt.V(t, s.GitignoreTemplate).Equal("Node")
		gt.V(t, s.LicenseTemplate).Equal("mit")
		gt.True(t, s.InjectCredentials)
		gt.False(t, s.ProtectDefaultBranch)
	})

	t.Run("explicit false overrides true default", func(t *testing.T) {
		spec := model.RepoSpec{
			Name:                "dotfiles",
			HasWiki:             ptr(false),
			VulnerabilityAlerts: ptr(false),
			Visibility:          ptr(types.VisibilityPrivate),
			Description:         ptr(""),
		}
		s := spec.Resolve()
		gt.False(t, s.HasWiki)
		gt.False(t, s.VulnerabilityAlerts)
		gt.V(t, s.Visibility).Equal(types.VisibilityPrivate)
		gt.True(t, s.HasIssues)
	})

	t.Run("topics are normalized", func(t *testing.T) {
		spec := model.RepoSpec{Name: "x", Topics: []string{" Go ", "infra", "go", ""}}
		gt.V(t, spec.Resolve().Topics).Equal([]string{"go", "infra"})
	})

	t.Run("maps are copied", func(t *testing.T) {
		spec := model.RepoSpec{
			Name:          "x",
			Collaborators: map[string]types.Permission{"alice": types.PermissionPush},
		}
		s := spec.Resolve()
		s.Collaborators["bob"] = types.PermissionPull
		gt.V(t, len(spec.Collaborators)).Equal(1)
	})
}

func TestRepoSpecWithDefaults(t *testing.T) {
	base := model.RepoSpec{
		Topics:        []string{"managed"},
		HasWiki:       ptr(false),
		Collaborators: map[string]types.Permission{"bot": types.PermissionAdmin, "alice": types.PermissionPull},
	}

	t.Run("unset fields come from base", func(t *testing.T) {
		merged := model.RepoSpec{Name: "x"}.WithDefaults(base)
		gt.V(t, merged.Topics).Equal([]string{"managed"})
		gt.False(t, *merged.HasWiki)
		gt.V(t, len(merged.Collaborators)).Equal(2)
	})

	t.Run("repository wins", func(t *testing.T) {
		merged := model.RepoSpec{
			Name:          "x",
			Topics:        []string{},
			HasWiki:       ptr(true),
			Collaborators: map[string]types.Permission{"alice": types.PermissionMaintain},
		}.WithDefaults(base)
		gt.V(t, len(merged.Topics)).Equal(0)
		gt.True(t, *merged.HasWiki)
		gt.V(t, merged.Collaborators["alice"]).Equal(types.PermissionMaintain)
		gt.V(t, merged.Collaborators["bot"]).Equal(types.PermissionAdmin)
	})
}

func TestRepoSpecValidate(t *testing.T) {
	testCases := map[string]struct {
		spec  model.RepoSpec
		valid bool
	}{
		"minimal": {
			spec:  model.RepoSpec{Name: "dotfiles"},
			valid: true,
		},
		"full": {
			spec: model.RepoSpec{
				Name:          "my.repo-1_x",
				Visibility:    ptr(types.VisibilityPrivate),
				DefaultBranch: ptr(types.BranchName("release/v1")),
				Collaborators: map[string]types.Permission{"bot-user": types.PermissionAdmin, "renovate[bot]": types.PermissionPush},
				ActionSecrets: map[types.SecretName]types.SecretValue{"NPM_TOKEN": "x"},
			},
			valid: true,
		},
		"empty name": {
			spec: model.RepoSpec{},
		},
		"name with space": {
			spec: model.RepoSpec{Name: "bad name"},
		},
		"dot name": {
			spec: model.RepoSpec{Name: ".."},
		},
		"invalid visibility": {
			spec: model.RepoSpec{Name: "x", Visibility: ptr(types.Visibility("internal-ish"))},
		},
		"invalid branch": {
			spec: model.RepoSpec{Name: "x", DefaultBranch: ptr(types.BranchName("feature..x"))},
		},
		"branch with trailing slash": {
			spec: model.RepoSpec{Name: "x", DefaultBranch: ptr(types.BranchName("feature/"))},
		},
		"invalid permission": {
			spec: model.RepoSpec{Name: "x", Collaborators: map[string]types.Permission{"alice": "owner"}},
		},
		"invalid login": {
			spec: model.RepoSpec{Name: "x", Collaborators: map[string]types.Permission{"-alice": types.PermissionPull}},
		},
		"duplicated login": {
			spec: model.RepoSpec{Name: "x", Collaborators: map[string]types.Permission{"Alice": types.PermissionPull, "alice": types.PermissionPush}},
		},
		"invalid secret name": {
			spec: model.RepoSpec{Name: "x", ActionSecrets: map[types.SecretName]types.SecretValue{"1TOKEN": "x"}},
		},
		"reserved secret prefix": {
			spec: model.RepoSpec{Name: "x", ActionSecrets: map[types.SecretName]types.SecretValue{"github_token": "x"}},
		},
		"duplicated secret name": {
			spec: model.RepoSpec{Name: "x", ActionSecrets: map[types.SecretName]types.SecretValue{"token": "a", "TOKEN": "b"}},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.valid {
				gt.NoError(t, err)
			} else {
				gt.True(t, errors.Is(err, types.ErrValidationFailed))
			}
		})
	}

	t.Run("error does not contain secret value", func(t *testing.T) {
		spec := model.RepoSpec{Name: "x", ActionSecrets: map[types.SecretName]types.SecretValue{"token": "plaintext-a", "TOKEN": "plaintext-b"}}
		err := spec.Validate()
		gt.Error(t, err)
		gt.S(t, err.Error()).NotContains("plaintext")
	})
}

func TestBranchProtection(t *testing.T) {
	backup := model.BackupBranchProtection()
	gt.V(t, backup.Pattern).Equal("backup/**")
	gt.False(t, backup.AllowsDeletions)
	gt.False(t, backup.AllowsForcePushes)
	gt.False(t, backup.RequiresApprovingReviews)

	rule := model.DefaultBranchProtection("main")
	gt.V(t, rule.Pattern).Equal("main")
	gt.True(t, rule.EnforceAdmins)
	gt.True(t, rule.RequiresApprovingReviews)
	gt.V(t, rule.RequiredApprovingReviewCount).Equal(0)
}
