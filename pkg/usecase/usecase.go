package usecase

import (
	"time"

	"github.com/m-mizutani/repoward/pkg/infra"
	"github.com/m-mizutani/repoward/pkg/utils/graph"
)

type UseCase struct {
	clients *infra.Clients

	concurrency int64
	taskTimeout time.Duration
}

type Option func(*UseCase)

// WithConcurrency limits sub-resource calls running at the same time for one repository.
func WithConcurrency(n int64) Option {
	return func(x *UseCase) {
		x.concurrency = n
	}
}

// WithTaskTimeout bounds each sub-resource call. Zero means no limit.
func WithTaskTimeout(d time.Duration) Option {
	return func(x *UseCase) {
		x.taskTimeout = d
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

func (x *UseCase) newGraph() *graph.Graph {
	return graph.New(
		graph.WithConcurrency(x.concurrency),
		graph.WithTaskTimeout(x.taskTimeout),
	)
}
