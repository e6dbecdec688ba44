package rendering

import (
	"raymarch/internal/threading/core"
)

// inlineColumns is the workload below which columns are cast on the
// calling goroutine.
const inlineColumns = 8

// ParallelRenderer spreads independent per-column work over a worker pool.
type ParallelRenderer struct {
	workerPool *core.WorkerPool
}

// NewParallelRenderer creates a renderer backed by numWorkers goroutines
// (non-positive means one per CPU).
func NewParallelRenderer(numWorkers int) *ParallelRenderer {
	if numWorkers <= 0 {
		return &ParallelRenderer{workerPool: core.CreateDefaultWorkerPool()}
	}
	pool := core.NewWorkerPool(numWorkers)
	pool.Start()
	return &ParallelRenderer{workerPool: pool}
}

// NumWorkers reports the pool size.
func (pr *ParallelRenderer) NumWorkers() int {
	return pr.workerPool.NumWorkers()
}

// CastColumns calls castColumn for every column in [0, numColumns) and
// waits for all of them. castColumn must only write state owned by its
// column.
func (pr *ParallelRenderer) CastColumns(numColumns int, castColumn func(col int)) {
	if numColumns <= inlineColumns {
		for col := 0; col < numColumns; col++ {
			castColumn(col)
		}
		return
	}
	pr.workerPool.ParallelFor(0, numColumns, castColumn)
}

// Stop shuts down the parallel renderer
func (pr *ParallelRenderer) Stop() {
	pr.workerPool.Stop()
}
