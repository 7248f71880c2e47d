package model_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

const specYAML = `owner: arpanrec
defaults:
  topics: [managed]
  has_wiki: false
repositories:
  - name: dotfiles
    description: My Dot Files
    collaborators:
      bot-user: admin
  - name: Service
    has_wiki: true
    default_branch: develop
`

func TestParseSpecFile(t *testing.T) {
	file, err := model.ParseSpecFile(strings.NewReader(specYAML))
	gt.NoError(t, err)
	gt.NoError(t, file.Validate())
	gt.V(t, file.Owner).Equal("arpanrec")

	specs := file.Specs()
	gt.V(t, len(specs)).Equal(2)
	gt.V(t, *specs[0].Description).Equal("My Dot Files")
	gt.V(t, specs[0].Topics).Equal([]string{"managed"})
	gt.False(t, *specs[0].HasWiki)
	gt.True(t, *specs[1].HasWiki)
	gt.V(t, *specs[1].DefaultBranch).Equal(types.BranchName("develop"))
	gt.V(t, specs[0].Collaborators["bot-user"]).Equal(types.PermissionAdmin)

	t.Run("unknown field is rejected", func(t *testing.T) {
		_, err := model.ParseSpecFile(strings.NewReader("owner: x\nrepositories:\n  - name: a\n    unknown: 1\n"))
		gt.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := model.ParseSpecFile(strings.NewReader(""))
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestLoadSpecFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(specYAML), 0600))

	file, err := model.LoadSpecFile(path)
	gt.NoError(t, err)
	gt.V(t, len(file.Repositories)).Equal(2)

	_, err = model.LoadSpecFile(filepath.Join(t.TempDir(), "missing.yaml"))
	gt.Error(t, err)
}

func TestSpecFileValidate(t *testing.T) {
	testCases := map[string]model.SpecFile{
		"no owner": {
			Repositories: []model.RepoSpec{{Name: "a"}},
		},
		"name in defaults": {
			Owner:    "x",
			Defaults: model.RepoSpec{Name: "a"},
		},
		"duplicated name": {
			Owner:        "x",
			Repositories: []model.RepoSpec{{Name: "a"}, {Name: "A"}},
		},
		"invalid default applied to repository": {
			Owner:        "x",
			Defaults:     model.RepoSpec{Visibility: ptr(types.Visibility("secret"))},
			Repositories: []model.RepoSpec{{Name: "a"}},
		},
	}

	for name, file := range testCases {
		t.Run(name, func(t *testing.T) {
			gt.True(t, errors.Is(file.Validate(), types.ErrValidationFailed))
		})
	}
}

func TestSpecFileSelect(t *testing.T) {
	file, err := model.ParseSpecFile(strings.NewReader(specYAML))
	gt.NoError(t, err)

	all, err := file.Select(nil)
	gt.NoError(t, err)
	gt.V(t, len(all)).Equal(2)

	selected, err := file.Select([]string{"service", "DOTFILES"})
	gt.NoError(t, err)
	gt.V(t, selected[0].Name).Equal("Service")
	gt.V(t, selected[1].Name).Equal("dotfiles")
	gt.V(t, selected[1].Topics).Equal([]string{"managed"})

	_, err = file.Select([]string{"missing"})
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}
