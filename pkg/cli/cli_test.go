package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/cli"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/repository/memory"
)

const testSpec = `owner: arpanrec
defaults:
  topics: [managed]
repositories:
  - name: dotfiles
    description: My Dot Files
    collaborators:
      bot-user: admin
  - name: service
    default_branch: develop
    protect_default_branch: true
`

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "repoward.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

// unsetEnv removes variables during the test and restores them after.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			gt.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, v) })
		}
	}
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	orig := cli.ConfigureLogging
	cli.ConfigureLogging = func(logFormat, logLevel, logOutput string) error { return nil }
	t.Cleanup(func() { cli.ConfigureLogging = orig })

	var buf bytes.Buffer
	err := cli.New(cli.WithWriter(&buf)).Run(append([]string{"repoward"}, args...))
	return buf.String(), err
}

func TestPlanCommand(t *testing.T) {
	path := writeSpec(t, testSpec)

	t.Run("text output", func(t *testing.T) {
		out, err := runCLI(t, "plan", "--spec", path)
		gt.NoError(t, err)
		gt.S(t, out).Contains("arpanrec/dotfiles")
		gt.S(t, out).Contains("repository (fatal)")
		gt.S(t, out).Contains("branch-protection/backup/** <- repository")
		gt.S(t, out).Contains("collaborator/bot-user")
		gt.S(t, out).Contains("branch-protection/develop <- branch-default")
		gt.S(t, out).Contains("topics")
	})

	t.Run("json output of selected repository", func(t *testing.T) {
		out, err := runCLI(t, "plan", "--spec", path, "--only", "SERVICE", "--json")
		gt.NoError(t, err)

		var plans []struct {
			Owner      string
			Repository string
			Resources  []model.PlannedResource
		}
		gt.NoError(t, json.Unmarshal([]byte(out), &plans))
		gt.V(t, len(plans)).Equal(1)
		gt.V(t, plans[0].Repository).Equal("service")
		gt.V(t, plans[0].Resources[0].Resource).Equal(model.ResourceRepository)
	})

	t.Run("unknown repository", func(t *testing.T) {
		_, err := runCLI(t, "plan", "--spec", path, "--only", "gamma")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("invalid spec file", func(t *testing.T) {
		bad := writeSpec(t, "owner: arpanrec\nrepositories:\n  - name: bad name\n")
		_, err := runCLI(t, "plan", "--spec", bad)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("unknown field in spec file", func(t *testing.T) {
		bad := writeSpec(t, "owner: arpanrec\nrepositories:\n  - name: x\n    action_secrets: {A: b}\n")
		_, err := runCLI(t, "plan", "--spec", bad)
		gt.Error(t, err)
	})
}

func TestProvisionCommandPreconditions(t *testing.T) {
	path := writeSpec(t, testSpec)
	unsetEnv(t, "GITHUB_TOKEN", "REPOWARD_GITHUB_TOKEN", "REPOWARD_GITHUB_APP_ID", "REPOWARD_GITHUB_APP_PRIVATE_KEY")

	t.Run("secret must be set in environment", func(t *testing.T) {
		unsetEnv(t, "NPM_TOKEN")
		_, err := runCLI(t, "provision", "--spec", path, "--secret", "NPM_TOKEN")
		gt.True(t, errors.Is(err, types.ErrMissingBootstrapCredential))
	})

	t.Run("secret name must be valid", func(t *testing.T) {
		_, err := runCLI(t, "provision", "--spec", path, "--secret", "GITHUB_SOMETHING")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("GitHub credential is required", func(t *testing.T) {
		_, err := runCLI(t, "provision", "--spec", path)
		gt.True(t, errors.Is(err, types.ErrMissingBootstrapCredential))
	})

	t.Run("spec file must exist", func(t *testing.T) {
		_, err := runCLI(t, "provision", "--spec", filepath.Join(t.TempDir(), "missing.yaml"))
		gt.Error(t, err)
	})
}

func TestReportCommand(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	cli.SetReportRepositoryForTest(t, repo)

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []types.RunID{"run-1", "run-2"} {
		gt.NoError(t, repo.PutReport(ctx, &model.ProvisionReport{
			RunID:      id,
			Owner:      "arpanrec",
			Repository: "dotfiles",
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			Resources: []model.ResourceResult{
				{Resource: model.ResourceRepository, Status: model.ResourceCreated},
				{Resource: model.ResourceCollaborator("ghost"), Status: model.ResourceFailed, Error: "user not found"},
			},
		}))
	}

	t.Run("list newest first", func(t *testing.T) {
		out, err := runCLI(t, "report", "list", "--owner", "arpanrec", "--repo", "dotfiles", "--json")
		gt.NoError(t, err)

		var reports []*model.ProvisionReport
		gt.NoError(t, json.Unmarshal([]byte(out), &reports))
		gt.V(t, len(reports)).Equal(2)
		gt.V(t, reports[0].RunID).Equal(types.RunID("run-2"))
	})

	t.Run("get as text", func(t *testing.T) {
		out, err := runCLI(t, "report", "get", "--owner", "arpanrec", "--repo", "dotfiles", "--run-id", "run-1")
		gt.NoError(t, err)
		gt.S(t, out).Contains("arpanrec/dotfiles (run run-1)")
		gt.S(t, out).Contains("collaborator/ghost: user not found")
	})

	t.Run("get unknown run", func(t *testing.T) {
		_, err := runCLI(t, "report", "get", "--owner", "arpanrec", "--repo", "dotfiles", "--run-id", "run-3")
		gt.True(t, errors.Is(err, types.ErrNotFound))
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("explicit file is loaded", func(t *testing.T) {
		const key = "REPOWARD_TEST_ENV_FILE_VALUE"
		if _, ok := os.LookupEnv(key); ok {
			t.Skipf("%s is already set", key)
		}
		t.Cleanup(func() { _ = os.Unsetenv(key) })

		path := filepath.Join(t.TempDir(), "test.env")
		gt.NoError(t, os.WriteFile(path, []byte(key+"=blue\n"), 0600))

		gt.NoError(t, cli.LoadEnvFileForTest(path))
		gt.V(t, os.Getenv(key)).Equal("blue")
	})

	t.Run("missing explicit file is error", func(t *testing.T) {
		gt.Error(t, cli.LoadEnvFileForTest(filepath.Join(t.TempDir(), "missing.env")))
	})

	t.Run("missing default file is ignored", func(t *testing.T) {
		t.Chdir(t.TempDir())
		gt.NoError(t, cli.LoadEnvFileForTest(""))
	})
}
