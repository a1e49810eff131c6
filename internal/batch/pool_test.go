package batch

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type countingProgress struct {
	mu    sync.Mutex
	count int
}

func (p *countingProgress) Add(num int) error {
	p.mu.Lock()
	p.count += num
	p.mu.Unlock()
	return nil
}

func TestRunPool_PreservesOrder(t *testing.T) {
	files := []string{"a", "b", "c", "d", "e", "f"}

	// Earlier files sleep longer so they finish last.
	task := func(_ context.Context, path string) (string, error) {
		delay := time.Duration(len(files)-int(path[0]-'a')) * time.Millisecond
		time.Sleep(delay)
		return strings.ToUpper(path), nil
	}

	progress := &countingProgress{}
	results, err := RunPool(context.Background(), 3, files, task, progress)
	if err != nil {
		t.Fatalf("RunPool failed: %v", err)
	}

	want := []string{"A", "B", "C", "D", "E", "F"}
	if !reflect.DeepEqual(results, want) {
		t.Errorf("results: got %v, want %v", results, want)
	}
	if progress.count != len(files) {
		t.Errorf("progress: got %d, want %d", progress.count, len(files))
	}
}

func TestRunPool_BoundsConcurrency(t *testing.T) {
	files := make([]string, 20)
	for i := range files {
		files[i] = fmt.Sprintf("f%d", i)
	}

	var running, peak int32
	task := func(_ context.Context, _ string) (int, error) {
		n := atomic.AddInt32(&running, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&running, -1)
		return 0, nil
	}

	if _, err := RunPool(context.Background(), 4, files, task, nil); err != nil {
		t.Fatalf("RunPool failed: %v", err)
	}
	if peak > 4 {
		t.Errorf("peak concurrency: got %d, want <= 4", peak)
	}
}

func TestRunPool_FailureAbortsBatch(t *testing.T) {
	boom := errors.New("boom")
	files := []string{"ok1", "bad", "ok2"}

	task := func(_ context.Context, path string) (int, error) {
		if path == "bad" {
			return 0, boom
		}
		return 1, nil
	}

	results, err := RunPool(context.Background(), 1, files, task, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("got error %v, want boom", err)
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("error should name the failing file: %v", err)
	}
	if results != nil {
		t.Errorf("no partial results expected, got %v", results)
	}
}

func TestRunPool_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	task := func(_ context.Context, _ string) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 0, nil
	}

	_, err := RunPool(ctx, 2, []string{"a", "b", "c"}, task, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want context.Canceled", err)
	}
}

func TestRunPool_Empty(t *testing.T) {
	results, err := RunPool(context.Background(), 0, nil, func(_ context.Context, _ string) (int, error) {
		return 0, nil
	}, nil)
	if err != nil {
		t.Fatalf("RunPool failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}
