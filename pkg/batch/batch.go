// Package batch runs one compiled JSONPath over many documents
// concurrently, in the lazy iter.Seq2 idiom the teacher's own streaming
// internal/jsonpath package used for its Stream entry point, layered with
// the rate limiting and UUID run-correlation the teacher's template
// functions and internal/ratelimit already provide.
package batch

import (
	"context"
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jacoelho/jsonselect/internal/ratelimit"
	"github.com/jacoelho/jsonselect/pkg/jsonpath"
)

var (
	documentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jsonselect_batch_documents_total",
		Help: "Total number of documents evaluated by a batch run, by outcome.",
	}, []string{"outcome"})

	evaluateDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jsonselect_batch_evaluate_duration_seconds",
		Help:    "Latency of a single document's Select call within a batch run.",
		Buckets: prometheus.DefBuckets,
	})
)

// Result is one document's selection outcome within a batch run. RunID
// correlates every Result produced by one Run call, the same way the
// teacher's request templates stamp a UUID across a run's log lines.
type Result struct {
	RunID  string
	Index  int
	Values []*jsonpath.Value
}

// Options configures a batch run.
type Options struct {
	// DocumentsPerSecond throttles how fast documents are fed through the
	// selector. Zero or negative means unlimited (internal/ratelimit.New).
	DocumentsPerSecond float64
	// Workers bounds how many documents are evaluated concurrently. Zero or
	// negative defaults to 1.
	Workers int
}

// Run evaluates path against every document docs yields, across opts.Workers
// goroutines, throttled to opts.DocumentsPerSecond documents/second. Every
// document is selected from independently; Run never touches the same
// document from two goroutines at once, matching the engine's
// single-document, non-concurrent contract (spec.md's concurrency
// non-goal still holds inside internal/engine — this boundary is where
// concurrency is introduced, and nowhere deeper).
//
// Results are not guaranteed to arrive in document order: the worker that
// finishes first yields first. Callers that need document order should
// sort on Result.Index.
func Run(ctx context.Context, path *jsonpath.Path, docs iter.Seq[*jsonpath.Value], opts Options) iter.Seq2[Result, error] {
	runID := uuid.NewString()
	limiter := ratelimit.New(opts.DocumentsPerSecond)
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	return func(yield func(Result, error) bool) {
		runCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		type job struct {
			index int
			doc   *jsonpath.Value
		}
		type outcome struct {
			result Result
			err    error
		}

		jobs := make(chan job)
		outcomes := make(chan outcome)

		go func() {
			defer close(jobs)
			i := 0
			for doc := range docs {
				select {
				case jobs <- job{index: i, doc: doc}:
				case <-runCtx.Done():
					return
				}
				i++
			}
		}()

		var wg sync.WaitGroup
		wg.Add(workers)
		for range workers {
			go func() {
				defer wg.Done()
				for j := range jobs {
					res, err := evaluateOne(runCtx, limiter, path, runID, j.index, j.doc)
					select {
					case outcomes <- outcome{result: res, err: err}:
					case <-runCtx.Done():
						return
					}
				}
			}()
		}

		go func() {
			wg.Wait()
			close(outcomes)
		}()

		for o := range outcomes {
			if !yield(o.result, o.err) {
				cancel()
				return
			}
		}
	}
}

func evaluateOne(ctx context.Context, limiter *ratelimit.Limiter, path *jsonpath.Path, runID string, index int, doc *jsonpath.Value) (Result, error) {
	result := Result{RunID: runID, Index: index}

	if err := limiter.Wait(ctx); err != nil {
		documentsTotal.WithLabelValues("throttle_cancelled").Inc()
		return result, err
	}

	start := time.Now()
	values, err := jsonpath.Select(doc, path)
	evaluateDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		documentsTotal.WithLabelValues("error").Inc()
		return result, err
	}

	documentsTotal.WithLabelValues("ok").Inc()
	result.Values = values
	return result, nil
}
