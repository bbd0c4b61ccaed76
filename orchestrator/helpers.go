package orchestrator

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

var timeNow = time.Now

// forEach runs fn for 0..n-1 on at most pipeline.workers goroutines and
// returns the first error. Remaining indexes are skipped once one fails.
func (p *Pipeline) forEach(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, i)
		})
	}
	return g.Wait()
}

func (p *Pipeline) workers() int {
	if p.cfg.Pipeline.Workers < 1 {
		return 1
	}
	return p.cfg.Pipeline.Workers
}

func (p *Pipeline) speakers(given []string) []string {
	if len(given) > 0 {
		return given
	}
	return p.cfg.Extract.Speakers
}

func subjectOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
