package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/domain/interfaces"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/repository"
)

// TestAll runs all test cases for ReportRepository
// This is the main entry point for testing any ReportRepository implementation
func TestAll(t *testing.T, repo interfaces.ReportRepository) {
	t.Run("ReportCRUD", func(t *testing.T) {
		TestReportCRUD(t, repo)
	})
	t.Run("ListReportsOrder", func(t *testing.T) {
		TestListReportsOrder(t, repo)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, repo)
	})
}

func newOwnerRepo() (string, string) {
	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	repoName := fmt.Sprintf("repo-%s", uuid.New().String()[:8])
	return owner, repoName
}

func newReport(owner, repoName string, startedAt time.Time) *model.ProvisionReport {
	return &model.ProvisionReport{
		RunID:      types.NewRunID(),
		Owner:      owner,
		Repository: repoName,
		NodeID:     "R_" + uuid.New().String()[:8],
		StartedAt:  startedAt.UTC().Truncate(time.Millisecond),
		FinishedAt: startedAt.Add(time.Second).UTC().Truncate(time.Millisecond),
		Resources: []model.ResourceResult{
			{Resource: model.ResourceRepository, Status: model.ResourceCreated},
			{Resource: model.ResourceBranchProtection(model.BackupBranchPattern), Status: model.ResourceSatisfied},
			{Resource: model.ResourceCollaborator("bob"), Status: model.ResourceFailed, Error: "failed to add collaborator"},
		},
	}
}

// TestReportCRUD tests put and get of ProvisionReport
func TestReportCRUD(t *testing.T, repo interfaces.ReportRepository) {
	ctx := context.Background()
	owner, repoName := newOwnerRepo()

	report := newReport(owner, repoName, time.Now())
	gt.NoError(t, repo.PutReport(ctx, report))

	retrieved, err := repo.GetReport(ctx, owner, repoName, report.RunID)
	gt.NoError(t, err)
	gt.V(t, retrieved.RunID).Equal(report.RunID)
	gt.V(t, retrieved.Owner).Equal(owner)
	gt.V(t, retrieved.Repository).Equal(repoName)
	gt.V(t, retrieved.NodeID).Equal(report.NodeID)
	gt.True(t, retrieved.StartedAt.Equal(report.StartedAt))
	gt.V(t, retrieved.Resources).Equal(report.Resources)

	// Update the report
	report.Fatal = "repository: failed to create repository"
	gt.NoError(t, repo.PutReport(ctx, report))

	retrieved, err = repo.GetReport(ctx, owner, repoName, report.RunID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Fatal).Equal(report.Fatal)

	// Not found
	_, err = repo.GetReport(ctx, owner, repoName, types.NewRunID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestListReportsOrder tests reports are listed newest first and limited
func TestListReportsOrder(t *testing.T, repo interfaces.ReportRepository) {
	ctx := context.Background()
	owner, repoName := newOwnerRepo()
	base := time.Now().Add(-time.Hour)

	var runIDs []types.RunID
	for i := range 3 {
		report := newReport(owner, repoName, base.Add(time.Duration(i)*time.Minute))
		gt.NoError(t, repo.PutReport(ctx, report))
		runIDs = append(runIDs, report.RunID)
	}

	// Report of another repository must not be listed
	otherOwner, otherRepo := newOwnerRepo()
	gt.NoError(t, repo.PutReport(ctx, newReport(otherOwner, otherRepo, base)))

	reports, err := repo.ListReports(ctx, owner, repoName, 10)
	gt.NoError(t, err)
	gt.V(t, len(reports)).Equal(3)
	gt.V(t, reports[0].RunID).Equal(runIDs[2])
	gt.V(t, reports[1].RunID).Equal(runIDs[1])
	gt.V(t, reports[2].RunID).Equal(runIDs[0])

	limited, err := repo.ListReports(ctx, owner, repoName, 2)
	gt.NoError(t, err)
	gt.V(t, len(limited)).Equal(2)
	gt.V(t, limited[0].RunID).Equal(runIDs[2])

	empty, err := repo.ListReports(ctx, "no-such-owner", "no-such-repo", 10)
	gt.NoError(t, err)
	gt.V(t, len(empty)).Equal(0)
}

// TestInvalidInput tests a report without identity is rejected
func TestInvalidInput(t *testing.T, repo interfaces.ReportRepository) {
	ctx := context.Background()

	report := newReport("", "repo", time.Now())
	err := repo.PutReport(ctx, report)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}
