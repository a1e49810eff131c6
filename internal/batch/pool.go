package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

// Progress is notified once per finished task.
//
// *progressbar.ProgressBar satisfies it. Implementations must be safe for
// concurrent use.
type Progress interface {
	Add(num int) error
}

// Task processes a single file.
type Task[T any] func(ctx context.Context, path string) (T, error)

// RunPool runs task once per file on at most workers goroutines and returns
// the results index-aligned with files.
//
// Parameters:
//   - ctx: Cancelling it stops tasks that have not yet started.
//   - workers: Maximum concurrent tasks. Zero or less means runtime.NumCPU().
//   - files: Inputs, one task each.
//   - task: The work to run per file. It must not share mutable state with
//     other tasks.
//   - progress: Optional; advanced by one per successful task.
//
// Returns:
//   - []T: results[i] is the result for files[i], whatever order tasks
//     finished in.
//   - error: Non-nil if any task failed or ctx was cancelled. No results are
//     returned in that case.
//
// # Errors
//
//   - The first task error cancels the remaining tasks and is returned,
//     wrapped with the failing path
//   - Returns ctx.Err() if ctx was cancelled and no task failed
func RunPool[T any](ctx context.Context, workers int, files []string, task Task[T], progress Progress) ([]T, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	poolCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]T, len(files))
	errs := make(chan error, len(files))
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, path := range files {
		wg.Add(1)
		go func(idx int, path string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-poolCtx.Done():
				return
			}
			defer func() { <-sem }()

			if poolCtx.Err() != nil {
				return
			}

			res, err := task(poolCtx, path)
			if err != nil {
				errs <- fmt.Errorf("%s: %w", path, err)
				cancel()
				return
			}
			results[idx] = res

			if progress != nil {
				_ = progress.Add(1)
			}
		}(i, path)
	}

	wg.Wait()
	close(errs)

	// Return the first error (if any)
	for err := range errs {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
