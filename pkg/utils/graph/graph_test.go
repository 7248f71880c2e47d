package graph_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/repoward/pkg/utils/graph"
)

type recorder struct {
	mu    sync.Mutex
	order []string
}

func (r *recorder) task(id string, err error) graph.Task {
	return func(ctx context.Context) error {
		r.mu.Lock()
		r.order = append(r.order, id)
		r.mu.Unlock()
		return err
	}
}

func (r *recorder) index(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.order {
		if v == id {
			return i
		}
	}
	return -1
}

func TestAdd(t *testing.T) {
	t.Run("unknown dependency is rejected", func(t *testing.T) {
		g := graph.New()
		err := g.Add("b", func(ctx context.Context) error { return nil }, graph.DependsOn("a"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, graph.ErrUnknownNode))
	})

	t.Run("duplicated node is rejected", func(t *testing.T) {
		g := graph.New()
		gt.NoError(t, g.Add("a", func(ctx context.Context) error { return nil }))
		err := g.Add("a", func(ctx context.Context) error { return nil })
		gt.True(t, errors.Is(err, graph.ErrDuplicatedNode))
	})

	t.Run("nodes are listed in insertion order", func(t *testing.T) {
		g := graph.New()
		gt.NoError(t, g.Add("a", nil, graph.Fatal()))
		gt.NoError(t, g.Add("b", nil, graph.DependsOn("a")))
		nodes := g.Nodes()
		gt.V(t, len(nodes)).Equal(2)
		gt.V(t, nodes[0].ID).Equal("a")
		gt.True(t, nodes[0].Fatal)
		gt.V(t, nodes[1].DependsOn).Equal([]string{"a"})
	})
}

func TestRun(t *testing.T) {
	t.Run("dependent runs after its dependency", func(t *testing.T) {
		rec := &recorder{}
		g := graph.New()
		gt.NoError(t, g.Add("root", rec.task("root", nil), graph.Fatal()))
		gt.NoError(t, g.Add("mid", rec.task("mid", nil), graph.DependsOn("root")))
		gt.NoError(t, g.Add("leaf", rec.task("leaf", nil), graph.DependsOn("mid")))
		gt.NoError(t, g.Add("side", rec.task("side", nil), graph.DependsOn("root")))

		result, err := g.Run(context.Background())
		gt.NoError(t, err)
		gt.V(t, len(result.Nodes)).Equal(4)
		for _, r := range result.Nodes {
			gt.V(t, r.Status).Equal(graph.StatusDone)
		}

		gt.True(t, rec.index("root") < rec.index("mid"))
		gt.True(t, rec.index("mid") < rec.index("leaf"))
		gt.True(t, rec.index("root") < rec.index("side"))
	})

	t.Run("fatal failure skips every dependent and returns error", func(t *testing.T) {
		rec := &recorder{}
		fatal := errors.New("boom")
		g := graph.New()
		gt.NoError(t, g.Add("root", rec.task("root", fatal), graph.Fatal()))
		gt.NoError(t, g.Add("a", rec.task("a", nil), graph.DependsOn("root")))
		gt.NoError(t, g.Add("b", rec.task("b", nil), graph.DependsOn("a")))

		result, err := g.Run(context.Background())
		gt.True(t, errors.Is(err, fatal))

		root, _ := result.Get("root")
		gt.V(t, root.Status).Equal(graph.StatusFailed)
		a, _ := result.Get("a")
		gt.V(t, a.Status).Equal(graph.StatusSkipped)
		b, _ := result.Get("b")
		gt.V(t, b.Status).Equal(graph.StatusSkipped)
		gt.V(t, rec.index("a")).Equal(-1)
		gt.V(t, rec.index("b")).Equal(-1)
	})

	t.Run("non fatal failure affects only its dependents", func(t *testing.T) {
		rec := &recorder{}
		g := graph.New()
		gt.NoError(t, g.Add("root", rec.task("root", nil), graph.Fatal()))
		gt.NoError(t, g.Add("a", rec.task("a", errors.New("a failed")), graph.DependsOn("root")))
		gt.NoError(t, g.Add("a-child", rec.task("a-child", nil), graph.DependsOn("a")))
		gt.NoError(t, g.Add("b", rec.task("b", nil), graph.DependsOn("root")))

		result, err := g.Run(context.Background())
		gt.NoError(t, err)

		a, _ := result.Get("a")
		gt.V(t, a.Status).Equal(graph.StatusFailed)
		child, _ := result.Get("a-child")
		gt.V(t, child.Status).Equal(graph.StatusSkipped)
		gt.True(t, errors.Is(child.Err, graph.ErrDependencyFailed))
		b, _ := result.Get("b")
		gt.V(t, b.Status).Equal(graph.StatusDone)
	})

	t.Run("satisfied task counts as success for dependents", func(t *testing.T) {
		g := graph.New()
		gt.NoError(t, g.Add("a", func(ctx context.Context) error {
			return goerr.Wrap(graph.ErrSatisfied, "already there")
		}))
		gt.NoError(t, g.Add("b", func(ctx context.Context) error { return nil }, graph.DependsOn("a")))

		result, err := g.Run(context.Background())
		gt.NoError(t, err)
		a, _ := result.Get("a")
		gt.V(t, a.Status).Equal(graph.StatusSatisfied)
		b, _ := result.Get("b")
		gt.V(t, b.Status).Equal(graph.StatusDone)
	})

	t.Run("independent nodes run concurrently", func(t *testing.T) {
		var running, peak atomic.Int32
		release := make(chan struct{})
		task := func(ctx context.Context) error {
			cur := running.Add(1)
			for {
				old := peak.Load()
				if cur <= old || peak.CompareAndSwap(old, cur) {
					break
				}
			}
			<-release
			running.Add(-1)
			return nil
		}

		g := graph.New(graph.WithConcurrency(4))
		gt.NoError(t, g.Add("a", task))
		gt.NoError(t, g.Add("b", task))
		gt.NoError(t, g.Add("c", task))

		go func() {
			deadline := time.Now().Add(5 * time.Second)
			for peak.Load() < 3 && time.Now().Before(deadline) {
				time.Sleep(time.Millisecond)
			}
			close(release)
		}()

		_, err := g.Run(context.Background())
		gt.NoError(t, err)
		gt.V(t, peak.Load()).Equal(int32(3))
	})

	t.Run("task timeout cancels a slow task", func(t *testing.T) {
		g := graph.New(graph.WithTaskTimeout(10 * time.Millisecond))
		gt.NoError(t, g.Add("slow", func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}))

		result, err := g.Run(context.Background())
		gt.NoError(t, err)
		slow, _ := result.Get("slow")
		gt.V(t, slow.Status).Equal(graph.StatusFailed)
		gt.True(t, errors.Is(slow.Err, context.DeadlineExceeded))
	})

	t.Run("canceled parent context returns error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		g := graph.New()
		gt.NoError(t, g.Add("a", func(ctx context.Context) error { return nil }))
		result, err := g.Run(ctx)
		gt.Error(t, err)
		a, _ := result.Get("a")
		gt.V(t, a.Status).Equal(graph.StatusSkipped)
	})
}
