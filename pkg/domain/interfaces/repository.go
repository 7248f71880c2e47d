package interfaces

import (
	"context"

	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
)

//go:generate moq -out ../mock/report_repository_mock.go -pkg mock . ReportRepository

// ReportRepository stores provisioning reports. Reports never contain secret values.
type ReportRepository interface {
	PutReport(ctx context.Context, report *model.ProvisionReport) error
	GetReport(ctx context.Context, owner, repo string, runID types.RunID) (*model.ProvisionReport, error)
	// ListReports returns reports of the repository, newest first.
	ListReports(ctx context.Context, owner, repo string, limit int) ([]*model.ProvisionReport, error)
}
