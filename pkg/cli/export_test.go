package cli

import (
	"context"
	"testing"

	"github.com/m-mizutani/repoward/pkg/cli/config"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
)

var LoadEnvFileForTest = loadEnvFile

func SetReportRepositoryForTest(t testing.TB, repo interfaces.ReportRepository) {
	orig := reportRepositoryFactory
	reportRepositoryFactory = func(ctx context.Context, cfg *config.Firestore) (interfaces.ReportRepository, error) {
		return repo, nil
	}
	t.Cleanup(func() { reportRepositoryFactory = orig })
}
