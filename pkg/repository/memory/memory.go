package memory

import "github.com/m-mizutani/repoward/pkg/domain/interfaces"

// New creates a new in-memory report repository
func New() interfaces.ReportRepository {
	return &reportRepository{
		reports: make(map[string]map[string]*reportData),
	}
}
