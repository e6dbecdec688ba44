package threading

import (
	"raymarch/internal/threading/monitoring"
	"raymarch/internal/threading/rendering"
)

// ThreadingComponents holds all threading-related components
type ThreadingComponents struct {
	ParallelRenderer   *rendering.ParallelRenderer // nil when rendering serially
	PerformanceMonitor *monitoring.PerformanceMonitor
}

// NewThreadingComponents creates the components. workers > 0 enables the
// parallel column caster with that many goroutines; workers < 0 uses one per
// CPU; 0 keeps rendering on the calling goroutine.
func NewThreadingComponents(workers int) *ThreadingComponents {
	tc := &ThreadingComponents{
		PerformanceMonitor: monitoring.NewPerformanceMonitor(),
	}
	if workers != 0 {
		tc.ParallelRenderer = rendering.NewParallelRenderer(workers)
	}
	return tc
}

// RenderWorkers reports the column caster's goroutine count, 0 when
// rendering serially.
func (tc *ThreadingComponents) RenderWorkers() int {
	if tc.ParallelRenderer == nil {
		return 0
	}
	return tc.ParallelRenderer.NumWorkers()
}

// Shutdown gracefully shuts down all threading components
func (tc *ThreadingComponents) Shutdown() {
	if tc.ParallelRenderer != nil {
		tc.ParallelRenderer.Stop()
	}
	if tc.PerformanceMonitor != nil {
		tc.PerformanceMonitor.Reset()
	}
}
