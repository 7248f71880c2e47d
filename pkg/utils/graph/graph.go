// Package graph runs a fixed set of tasks whose ordering is declared as predecessor edges.
// Nodes whose predecessors have all succeeded run concurrently.
package graph

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Task is a unit of work of one node.
type Task func(ctx context.Context) error

type Status string

const (
	StatusDone      Status = "done"
	StatusSatisfied Status = "satisfied"
	StatusFailed    Status = "failed"
	StatusSkipped   Status = "skipped"
)

var (
	// ErrSatisfied can be wrapped and returned by a task to report that nothing had to be done.
	ErrSatisfied = errors.New("already satisfied")

	ErrDependencyFailed = errors.New("dependency failed")
	ErrDuplicatedNode   = errors.New("duplicated node")
	ErrUnknownNode      = errors.New("unknown dependency")
)

const defaultConcurrency = 8

type node struct {
	id    string
	task  Task
	deps  []string
	fatal bool
	done  chan struct{}

	status Status
	err    error
}

// Graph is a set of nodes. Dependencies must be added before dependents, so a Graph is always acyclic.
type Graph struct {
	nodes       map[string]*node
	order       []string
	concurrency int64
	taskTimeout time.Duration
}

type Option func(*Graph)

// WithConcurrency limits the number of tasks running at the same time.
func WithConcurrency(n int64) Option {
	return func(g *Graph) {
		if n > 0 {
			g.concurrency = n
		}
	}
}

// WithTaskTimeout bounds each task. Zero means no limit other than the parent context.
func WithTaskTimeout(d time.Duration) Option {
	return func(g *Graph) {
		g.taskTimeout = d
	}
}

func New(options ...Option) *Graph {
	g := &Graph{
		nodes:       make(map[string]*node),
		concurrency: defaultConcurrency,
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

type NodeOption func(*node)

// DependsOn declares predecessors of the node.
func DependsOn(ids ...string) NodeOption {
	return func(n *node) {
		n.deps = append(n.deps, ids...)
	}
}

// Fatal makes failure of the node abort the whole run.
func Fatal() NodeOption {
	return func(n *node) {
		n.fatal = true
	}
}

// Add registers a node. Every dependency must already be registered.
func (g *Graph) Add(id string, task Task, options ...NodeOption) error {
	if _, ok := g.nodes[id]; ok {
		return goerr.Wrap(ErrDuplicatedNode, "node is already added", goerr.V("id", id))
	}

	n := &node{
		id:   id,
		task: task,
		done: make(chan struct{}),
	}
	for _, opt := range options {
		opt(n)
	}

	for _, dep := range n.deps {
		if _, ok := g.nodes[dep]; !ok {
			return goerr.Wrap(ErrUnknownNode, "dependency must be added before dependent",
				goerr.V("id", id),
				goerr.V("dependency", dep),
			)
		}
	}

	g.nodes[id] = n
	g.order = append(g.order, id)
	return nil
}

// Nodes returns node ids in insertion order with their dependencies.
func (g *Graph) Nodes() []NodeInfo {
	infos := make([]NodeInfo, 0, len(g.order))
	for _, id := range g.order {
		n := g.nodes[id]
		infos = append(infos, NodeInfo{
			ID:        n.id,
			DependsOn: append([]string(nil), n.deps...),
			Fatal:     n.fatal,
		})
	}
	return infos
}

type NodeInfo struct {
	ID        string
	DependsOn []string
	Fatal     bool
}

// NodeResult is an outcome of one node.
type NodeResult struct {
	ID     string
	Status Status
	Err    error
}

// Result holds outcomes in insertion order.
type Result struct {
	Nodes []NodeResult
}

func (x *Result) Get(id string) (NodeResult, bool) {
	for _, r := range x.Nodes {
		if r.ID == id {
			return r, true
		}
	}
	return NodeResult{}, false
}

// Run executes all nodes and waits for them. Non-fatal failures are recorded in Result only.
// When a fatal node fails, the run context is canceled, every node not yet started is skipped
// and the fatal error is returned together with the partial Result.
func (g *Graph) Run(ctx context.Context) (*Result, error) {
	for _, n := range g.nodes {
		n.done = make(chan struct{})
		n.status, n.err = "", nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		fatalOnce sync.Once
		fatalErr  error
	)

	sem := semaphore.NewWeighted(g.concurrency)
	var eg errgroup.Group

	for _, id := range g.order {
		n := g.nodes[id]
		eg.Go(func() error {
			defer close(n.done)

			for _, dep := range n.deps {
				select {
				case <-g.nodes[dep].done:
				case <-runCtx.Done():
				}
			}

			if runCtx.Err() != nil {
				n.status, n.err = StatusSkipped, runCtx.Err()
				return nil
			}

			for _, dep := range n.deps {
				if d := g.nodes[dep]; d.status == StatusFailed || d.status == StatusSkipped {
					n.status = StatusSkipped
					n.err = goerr.Wrap(ErrDependencyFailed, "dependency did not succeed",
						goerr.V("id", n.id),
						goerr.V("dependency", dep),
					)
					return nil
				}
			}

			if err := sem.Acquire(runCtx, 1); err != nil {
				n.status, n.err = StatusSkipped, err
				return nil
			}
			defer sem.Release(1)

			err := g.runTask(runCtx, n)
			switch {
			case err == nil:
				n.status = StatusDone
			case errors.Is(err, ErrSatisfied):
				n.status = StatusSatisfied
			default:
				n.status, n.err = StatusFailed, err
				if n.fatal {
					fatalOnce.Do(func() {
						fatalErr = err
						cancel()
					})
				}
			}
			return nil
		})
	}

	_ = eg.Wait()

	result := &Result{Nodes: make([]NodeResult, 0, len(g.order))}
	for _, id := range g.order {
		n := g.nodes[id]
		result.Nodes = append(result.Nodes, NodeResult{ID: n.id, Status: n.status, Err: n.err})
	}

	if fatalErr != nil {
		return result, fatalErr
	}
	if err := ctx.Err(); err != nil {
		return result, goerr.Wrap(err, "graph run is canceled")
	}
	return result, nil
}

func (g *Graph) runTask(ctx context.Context, n *node) error {
	if g.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.taskTimeout)
		defer cancel()
	}
	return n.task(ctx)
}
