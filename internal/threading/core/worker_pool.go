package core

import (
	"context"
	"runtime"
	"sync"
)

// WorkerPool manages a pool of worker goroutines for parallel processing
type WorkerPool struct {
	numWorkers int
	jobQueue   chan func()
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// A non-positive count uses one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan func(), numWorkers*2),
		quit:       make(chan struct{}),
	}
}

// CreateDefaultWorkerPool creates and starts a pool sized to the CPU count
func CreateDefaultWorkerPool() *WorkerPool {
	pool := NewWorkerPool(0)
	pool.Start()
	return pool
}

// Start launches the worker goroutines
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		go wp.worker()
	}
}

func (wp *WorkerPool) worker() {
	for {
		select {
		case job := <-wp.jobQueue:
			job()
		case <-wp.quit:
			return
		}
	}
}

// Submit queues a job. It blocks while the queue is full and must not be
// called after Stop.
func (wp *WorkerPool) Submit(job func()) {
	wp.jobQueue <- job
}

// Stop shuts the workers down. Safe to call more than once.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() { close(wp.quit) })
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// ParallelFor runs fn(i) for every i in [start, end) and returns once all
// calls have finished.
func (wp *WorkerPool) ParallelFor(start, end int, fn func(int)) {
	wp.ParallelForWithContext(context.Background(), start, end, fn)
}

// ParallelForWithContext is ParallelFor with cancellation checked between
// iterations. Each call tracks its own jobs, so concurrent callers do not
// wait on each other.
func (wp *WorkerPool) ParallelForWithContext(ctx context.Context, start, end int, fn func(int)) {
	if start >= end {
		return
	}

	totalWork := end - start
	chunkSize := max(1, totalWork/wp.numWorkers)

	var wg sync.WaitGroup
	for i := start; i < end; i += chunkSize {
		chunkStart := i
		chunkEnd := min(i+chunkSize, end)
		wg.Add(1)
		wp.Submit(func() {
			defer wg.Done()
			for j := chunkStart; j < chunkEnd; j++ {
				select {
				case <-ctx.Done():
					return
				default:
					fn(j)
				}
			}
		})
	}
	wg.Wait()
}
