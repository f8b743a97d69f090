package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	mdtoc "github.com/alnah/go-mdtoc"
	"github.com/alnah/go-mdtoc/internal/diffutil"
	"github.com/alnah/go-mdtoc/internal/fileutil"
)

// filePermissions applies to documents created by -o; in-place rewrites keep
// the original mode.
const filePermissions = 0o644 // rw-r--r--

// runMode selects what happens with a regenerated document.
type runMode int

const (
	modeStdout runMode = iota
	modeInPlace
	modeCheck
	modeOutputFile
)

// Result holds the outcome of processing a single document.
type Result struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
	Diff       []byte // check-mode hunks, rendered
}

// processBatch fans jobs out over a fixed set of workers. The Service is
// stateless, so all workers share one instance.
func processBatch(svc *mdtoc.Service, files []FileJob, mode runMode, workers int, env *Environment) []Result {
	if len(files) == 0 {
		return nil
	}

	concurrency := workers
	if concurrency > len(files) {
		concurrency = len(files)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]Result, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processFile(svc, files[idx], mode, env)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// processFile regenerates one document and applies the output mode.
func processFile(svc *mdtoc.Service, job FileJob, mode runMode, env *Environment) Result {
	start := time.Now()
	result := Result{InputPath: job.Source(), OutputPath: job.OutputPath}

	var source []byte
	var err error
	if job.InputPath == "" {
		source, err = io.ReadAll(env.Stdin)
	} else {
		source, err = os.ReadFile(job.InputPath) // #nosec G304 -- discovered path
	}
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadDocument, err)
		result.Duration = time.Since(start)
		return result
	}

	var buf bytes.Buffer
	if err := svc.Write(&buf, string(source)); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	switch mode {
	case modeCheck:
		if !bytes.Equal(buf.Bytes(), source) {
			var diff bytes.Buffer
			hunks := diffutil.Compare(string(source), buf.String(), diffutil.DefaultContext)
			_ = diffutil.Write(&diff, result.InputPath, hunks)
			result.Err = ErrTOCOutdated
			result.Diff = diff.Bytes()
		}

	case modeInPlace:
		// Skip the write when nothing changed, preserving mtimes.
		if !bytes.Equal(buf.Bytes(), source) {
			if err := fileutil.WriteFileAtomic(job.InputPath, buf.Bytes(), filePermissions); err != nil {
				result.Err = fmt.Errorf("%w: %v", ErrWriteDocument, err)
			}
		}

	case modeOutputFile:
		if err := fileutil.WriteFileAtomic(job.OutputPath, buf.Bytes(), filePermissions); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteDocument, err)
		}

	case modeStdout:
		if _, err := env.Stdout.Write(buf.Bytes()); err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteDocument, err)
		}
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary tallies the outcome of a batch.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Stale     int
}

// countResults tallies succeeded, failed, and stale documents.
func countResults(results []Result) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case errors.Is(r.Err, ErrTOCOutdated):
			summary.Failed++
			summary.Stale++
		case r.Err != nil:
			summary.Failed++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs per-file outcomes using the provided writers.
func printResults(results []Result, quiet, verbose bool, mode runMode, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if errors.Is(r.Err, ErrTOCOutdated) {
			fmt.Fprintf(env.Stderr, "Outdated TOC in %s\n", r.InputPath)
			_, _ = env.Stderr.Write(r.Diff)
			continue
		}
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		// Stdout mode already carries the document itself.
		if quiet || mode == modeStdout {
			continue
		}

		switch {
		case verbose:
			fmt.Fprintf(env.Stdout, "%s (%v)\n", r.InputPath, r.Duration.Round(time.Millisecond))
		case mode == modeInPlace:
			fmt.Fprintf(env.Stdout, "Updated %s\n", r.InputPath)
		case mode == modeOutputFile:
			fmt.Fprintf(env.Stdout, "Wrote %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > config > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, cfgWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if cfgWorkers > 0 {
		return cfgWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in
	// containers).
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
