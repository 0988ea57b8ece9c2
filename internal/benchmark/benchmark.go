// Package benchmark times the registered sorts against a shared input.
package benchmark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/MeKo-Tech/sortbench/internal/common"
	"github.com/MeKo-Tech/sortbench/internal/generate"
	"github.com/MeKo-Tech/sortbench/internal/metrics"
	"github.com/MeKo-Tech/sortbench/internal/sorting"
	"github.com/sourcegraph/conc/pool"
)

// ErrUnsorted marks a sort whose output differs from the sorted input.
var ErrUnsorted = errors.New("output is not the sorted input")

// Options controls how a Suite runs.
type Options struct {
	Iterations int  // runs per algorithm, each on a fresh copy
	Parallel   bool // run algorithms concurrently, each on its own copy
	Workers    int  // parallel workers; 0 means GOMAXPROCS
	Verify     bool // compare every output with the sorted input
}

// DefaultOptions runs each algorithm once, sequentially, with verification.
func DefaultOptions() Options {
	return Options{Iterations: 1, Verify: true}
}

// Result holds the outcome of benchmarking one algorithm on one input.
type Result struct {
	Name         string
	Label        string
	Size         int
	Iterations   int // completed iterations
	Duration     time.Duration
	Min          time.Duration
	Max          time.Duration
	MemoryBefore common.MemoryStats
	MemoryAfter  common.MemoryStats
	Output       []int
	Error        error
}

// Mean returns the average duration of one iteration.
func (r Result) Mean() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Duration / time.Duration(r.Iterations)
}

// Allocated returns the bytes allocated while the algorithm ran.
func (r Result) Allocated() uint64 {
	return r.MemoryAfter.AllocatedSince(r.MemoryBefore)
}

// String returns a formatted string representation of the benchmark result.
func (r Result) String() string {
	if r.Error != nil {
		return fmt.Sprintf("%s: ERROR - %v", r.Label, r.Error)
	}
	return fmt.Sprintf("%s: n=%d, %d iterations, avg: %v, total: %v, mem: +%d KB",
		r.Label, r.Size, r.Iterations, r.Mean(), r.Duration, r.Allocated()/1024)
}

// Suite runs a fixed set of algorithms.
type Suite struct {
	algorithms []sorting.Algorithm
	opts       Options
	sink       common.Sink
	metrics    *metrics.Sink
	logger     *slog.Logger
	results    []Result
	mu         sync.Mutex
}

// NewSuite creates a suite over algorithms. Iterations below 1 are raised to 1.
func NewSuite(algorithms []sorting.Algorithm, opts Options) *Suite {
	if opts.Iterations < 1 {
		opts.Iterations = 1
	}
	return &Suite{
		algorithms: slices.Clone(algorithms),
		opts:       opts,
		sink:       common.NopSink{},
	}
}

// WithSink sets the sink every timer scope reports to.
func (s *Suite) WithSink(sink common.Sink) *Suite {
	if sink == nil {
		sink = common.NopSink{}
	}
	s.sink = sink
	return s
}

// WithMetrics additionally records timings and outcomes as Prometheus
// metrics, labeled with the algorithm name.
func (s *Suite) WithMetrics(m *metrics.Sink) *Suite {
	s.metrics = m
	return s
}

// WithLogger sets the logger for progress messages.
func (s *Suite) WithLogger(logger *slog.Logger) *Suite {
	s.logger = logger
	return s
}

// Algorithms returns the algorithms the suite runs, in order.
func (s *Suite) Algorithms() []sorting.Algorithm {
	return slices.Clone(s.algorithms)
}

// Options returns the effective options.
func (s *Suite) Options() Options {
	return s.opts
}

// Run benchmarks every algorithm on private copies of input. Results come
// back in algorithm order, in parallel mode too. Once ctx is done no
// further algorithm starts; the results gathered so far are returned with
// the context error.
func (s *Suite) Run(ctx context.Context, input []int) ([]Result, error) {
	want := slices.Sorted(slices.Values(input))
	if s.metrics != nil {
		s.metrics.SetInputSize(len(input))
	}

	var (
		results []Result
		err     error
	)
	if s.opts.Parallel {
		results, err = s.runParallel(ctx, input, want)
	} else {
		results, err = s.runSequential(ctx, input, want)
	}

	s.mu.Lock()
	s.results = results
	s.mu.Unlock()

	return results, err
}

// Results returns the last run results.
func (s *Suite) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Sweep runs the suite once per size, generating each input from gen with
// Size replaced. Results are concatenated in size order.
func (s *Suite) Sweep(ctx context.Context, gen generate.Config, sizes []int) ([]Result, error) {
	var all []Result
	for _, size := range sizes {
		cfg := gen
		cfg.Size = size
		input, err := generate.Ints(cfg)
		if err != nil {
			return all, fmt.Errorf("failed to generate input of size %d: %w", size, err)
		}
		s.log().Info("benchmarking input", "size", size, "pattern", cfg.Pattern)

		results, err := s.Run(ctx, input)
		all = append(all, results...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}

// PrintResults writes one line per result of the last run.
func (s *Suite) PrintResults(w io.Writer) {
	for _, result := range s.Results() {
		_, _ = fmt.Fprintln(w, result.String())
	}
}

func (s *Suite) runSequential(ctx context.Context, input, want []int) ([]Result, error) {
	results := make([]Result, 0, len(s.algorithms))
	for _, alg := range s.algorithms {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		// Collect garbage left by the previous algorithm so it is not
		// charged to this one.
		runtime.GC()
		results = append(results, s.runAlgorithm(alg, input, want))
	}
	return results, nil
}

func (s *Suite) runParallel(ctx context.Context, input, want []int) ([]Result, error) {
	workers := s.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	slots := make([]Result, len(s.algorithms))
	ran := make([]bool, len(s.algorithms))
	p := pool.New().WithMaxGoroutines(workers).WithContext(ctx)
	for i, alg := range s.algorithms {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slots[i] = s.runAlgorithm(alg, input, want)
			ran[i] = true
			return nil
		})
	}
	err := p.Wait()

	results := make([]Result, 0, len(slots))
	for i, r := range slots {
		if ran[i] {
			results = append(results, r)
		}
	}
	if err != nil {
		return results, fmt.Errorf("parallel run interrupted: %w", err)
	}
	return results, nil
}

func (s *Suite) runAlgorithm(alg sorting.Algorithm, input, want []int) Result {
	result := Result{Name: alg.Name, Label: alg.Label, Size: len(input)}

	result.MemoryBefore = common.GetMemoryStats()
	for range s.opts.Iterations {
		out, elapsed, err := timeSort(alg, slices.Clone(input), s.sink)
		if s.metrics != nil {
			// Metrics use the registry name, which stays stable when labels change.
			s.metrics.Observe(alg.Name, elapsed)
			s.metrics.RecordSort(alg.Name, err)
		}
		if err != nil {
			result.Error = fmt.Errorf("%s failed: %w", alg.Name, err)
			break
		}

		if result.Iterations == 0 || elapsed < result.Min {
			result.Min = elapsed
		}
		result.Max = max(result.Max, elapsed)
		result.Duration += elapsed
		result.Iterations++
		result.Output = out

		if s.opts.Verify && !slices.Equal(out, want) {
			result.Error = fmt.Errorf("%w: %s", ErrUnsorted, alg.Name)
			break
		}
	}
	result.MemoryAfter = common.GetMemoryStats()

	s.log().Debug("algorithm finished",
		"algorithm", alg.Name,
		"size", result.Size,
		"iterations", result.Iterations,
		"mean", result.Mean(),
		"error", result.Error,
	)
	return result
}

// timeSort runs one sort inside a timer scope.
func timeSort(alg sorting.Algorithm, data []int, sink common.Sink) (out []int, elapsed time.Duration, err error) {
	timer := common.Begin(alg.Label, sink)
	defer func() { elapsed = timer.Stop() }()

	out, err = alg.Sort(data, len(data))
	return
}

func (s *Suite) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return slog.Default()
}
