// Package batch resolves many phrases concurrently against one anchor.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"fuzzydate/pkg/fuzzydate"
	"fuzzydate/pkg/interfaces"
	"fuzzydate/pkg/models"
)

// Options controls Runner.Run.
type Options struct {
	Anchor   time.Time
	Location *time.Location // nil = Anchor's location
	Workers  int            // 0 = GOMAXPROCS
}

// Result is returned by Run. Resolutions are in input order.
type Result struct {
	Resolutions []models.Resolution
	Failed      int
	CacheHits   int
}

// Runner compiles and resolves phrases. Compiled expressions are kept in an
// LRU cache keyed by phrase; resolution always runs against the current
// anchor.
type Runner struct {
	parser *fuzzydate.Parser
	cache  *lru.Cache[string, *models.Expr]
}

// NewRunner creates a Runner. A cacheSize of zero disables caching.
func NewRunner(parser *fuzzydate.Parser, cacheSize int) (*Runner, error) {
	r := &Runner{parser: parser}

	if cacheSize > 0 {
		cache, err := lru.New[string, *models.Expr](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create expression cache: %w", err)
		}

		r.cache = cache
	}

	return r, nil
}

// Run resolves every phrase and writes the results to all sinks.
//
// Phrases are resolved concurrently, at most opts.Workers at a time. A phrase
// that fails to parse or resolve is recorded in its Resolution and does not
// stop the run. Context cancellation does. Sink failures are fatal: the first
// sink error cancels remaining sinks and is returned.
func (r *Runner) Run(
	ctx context.Context,
	phrases []string,
	sinks []interfaces.Sink,
	opts Options,
) (*Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Each goroutine writes only its own index, so output order is input order.
	resolutions := make([]models.Resolution, len(phrases))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, phrase := range phrases {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			resolutions[i] = r.resolve(i, phrase, opts)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Resolutions: resolutions}

	for _, res := range resolutions {
		if !res.OK() {
			result.Failed++
		}

		if res.Cached {
			result.CacheHits++
		}
	}

	slog.Debug("batch resolved", "phrases", len(phrases), "failed", result.Failed, "cache_hits", result.CacheHits)

	gw, gwCtx := errgroup.WithContext(ctx)

	for _, sink := range sinks {
		gw.Go(func() error {
			if err := sink.Write(gwCtx, resolutions); err != nil {
				return fmt.Errorf("sink '%s' write failed: %w", sink.Name(), err)
			}

			return nil
		})
	}

	if err := gw.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Runner) resolve(i int, phrase string, opts Options) models.Resolution {
	res := models.Resolution{Index: i, Phrase: phrase}

	expr, cached, err := r.compile(phrase)
	if err != nil {
		slog.Debug("phrase failed to compile", "index", i, "phrase", phrase, "error", err)
		res.Error = err.Error()

		return res
	}

	res.Cached = cached

	t, err := r.parser.Resolve(expr, opts.Anchor, opts.Location)
	if err != nil {
		slog.Debug("phrase failed to resolve", "index", i, "phrase", phrase, "error", err)
		res.Error = err.Error()

		return res
	}

	res.Time = t

	return res
}

// compile returns the cached expression for phrase or parses it. Only
// successful parses are cached. Cached trees are shared between goroutines
// and must not be modified.
func (r *Runner) compile(phrase string) (*models.Expr, bool, error) {
	key := strings.TrimSpace(phrase)

	if r.cache != nil {
		if expr, ok := r.cache.Get(key); ok {
			return expr, true, nil
		}
	}

	expr, err := r.parser.Compile(phrase)
	if err != nil {
		return nil, false, err
	}

	if r.cache != nil {
		r.cache.Add(key, expr)
	}

	return expr, false, nil
}
