package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/repoward/pkg/domain/model"
	"github.com/m-mizutani/repoward/pkg/domain/types"
	"github.com/m-mizutani/repoward/pkg/repository"
)

type reportData struct {
	seq    int
	report *model.ProvisionReport
}

type reportRepository struct {
	mu  sync.RWMutex
	seq int
	// owner/repo -> run ID -> report
	reports map[string]map[string]*reportData
}

func repoKey(owner, repo string) string {
	return owner + "/" + repo
}

func copyReport(report *model.ProvisionReport) *model.ProvisionReport {
	copied := *report
	copied.Resources = append([]model.ResourceResult(nil), report.Resources...)
	copied.Handle = nil
	return &copied
}

func (r *reportRepository) PutReport(ctx context.Context, report *model.ProvisionReport) error {
	if report.RunID == "" || report.Owner == "" || report.Repository == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "run ID, owner and repository are required",
			goerr.V("runID", report.RunID),
			goerr.V("owner", report.Owner),
			goerr.V("repository", report.Repository),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := repoKey(report.Owner, report.Repository)
	if _, exists := r.reports[key]; !exists {
		r.reports[key] = make(map[string]*reportData)
	}

	r.seq++
	r.reports[key][string(report.RunID)] = &reportData{
		seq:    r.seq,
		report: copyReport(report),
	}

	return nil
}

func (r *reportRepository) GetReport(ctx context.Context, owner, repo string, runID types.RunID) (*model.ProvisionReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.reports[repoKey(owner, repo)][string(runID)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "report not found",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
			goerr.V("runID", runID),
		)
	}

	return copyReport(data.report), nil
}

func (r *reportRepository) ListReports(ctx context.Context, owner, repo string, limit int) ([]*model.ProvisionReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*reportData
	for _, data := range r.reports[repoKey(owner, repo)] {
		items = append(items, data)
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].report, items[j].report
		if !a.StartedAt.Equal(b.StartedAt) {
			return a.StartedAt.After(b.StartedAt)
		}
		return items[i].seq > items[j].seq
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	reports := make([]*model.ProvisionReport, 0, len(items))
	for _, data := range items {
		reports = append(reports, copyReport(data.report))
	}
	return reports, nil
}
