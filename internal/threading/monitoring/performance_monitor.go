package monitoring

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// smoothing is the weight of the newest sample in the running averages.
const smoothing = 0.1

// PerformanceMonitor tracks frame and render-phase timings
type PerformanceMonitor struct {
	frameCount       atomic.Uint64
	frameTime        atomic.Uint64 // nanoseconds, last frame
	raycastTime      atomic.Uint64 // nanoseconds, last wall pass
	spriteRenderTime atomic.Uint64 // nanoseconds, last sprite pass

	mutex          sync.RWMutex
	avgFrameTime   float64
	avgRaycastTime float64
	startTime      time.Time
}

// NewPerformanceMonitor creates a new performance monitor
func NewPerformanceMonitor() *PerformanceMonitor {
	return &PerformanceMonitor{startTime: time.Now()}
}

// FrameTimer helps measure frame timing
type FrameTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartFrame begins frame timing
func (pm *PerformanceMonitor) StartFrame() *FrameTimer {
	return &FrameTimer{monitor: pm, startTime: time.Now()}
}

// EndFrame completes frame timing
func (ft *FrameTimer) EndFrame() {
	ns := uint64(time.Since(ft.startTime).Nanoseconds())
	ft.monitor.frameTime.Store(ns)
	count := ft.monitor.frameCount.Add(1)

	ft.monitor.mutex.Lock()
	ft.monitor.avgFrameTime = blend(ft.monitor.avgFrameTime, float64(ns), count == 1)
	ft.monitor.mutex.Unlock()
}

// RaycastTimer helps measure raycasting performance
type RaycastTimer struct {
	monitor   *PerformanceMonitor
	startTime time.Time
}

// StartRaycast begins raycast timing
func (pm *PerformanceMonitor) StartRaycast() *RaycastTimer {
	return &RaycastTimer{monitor: pm, startTime: time.Now()}
}

// EndRaycast completes raycast timing
func (rt *RaycastTimer) EndRaycast() {
	ns := uint64(time.Since(rt.startTime).Nanoseconds())
	first := rt.monitor.raycastTime.Swap(ns) == 0
	rt.monitor.mutex.Lock()
	rt.monitor.avgRaycastTime = blend(rt.monitor.avgRaycastTime, float64(ns), first)
	rt.monitor.mutex.Unlock()
}

func blend(avg, sample float64, first bool) float64 {
	if first {
		return sample
	}
	return avg + smoothing*(sample-avg)
}

// ProfiledFunction wraps a function with performance timing
func (pm *PerformanceMonitor) ProfiledFunction(name string, fn func()) time.Duration {
	start := time.Now()
	fn()
	duration := time.Since(start)

	switch name {
	case "raycast":
		pm.raycastTime.Store(uint64(duration.Nanoseconds()))
	case "sprite_render":
		pm.spriteRenderTime.Store(uint64(duration.Nanoseconds()))
	}
	return duration
}

// FrameMetrics is a snapshot of the monitor
type FrameMetrics struct {
	Frames          uint64
	FramesPerSecond float64
	AvgFrameTime    time.Duration
	AvgRaycastTime  time.Duration
	SpriteTime      time.Duration
	MemoryUsageMB   uint64
	Uptime          time.Duration
}

// GetCurrentMetrics returns current performance metrics
func (pm *PerformanceMonitor) GetCurrentMetrics() FrameMetrics {
	pm.mutex.RLock()
	avgFrame, avgRaycast, start := pm.avgFrameTime, pm.avgRaycastTime, pm.startTime
	pm.mutex.RUnlock()

	fps := 0.0
	if avgFrame > 0 {
		fps = float64(time.Second) / avgFrame
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return FrameMetrics{
		Frames:          pm.frameCount.Load(),
		FramesPerSecond: fps,
		AvgFrameTime:    time.Duration(avgFrame),
		AvgRaycastTime:  time.Duration(avgRaycast),
		SpriteTime:      time.Duration(pm.spriteRenderTime.Load()),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
		Uptime:          time.Since(start),
	}
}

func (m FrameMetrics) String() string {
	return fmt.Sprintf("frames=%d fps=%.1f frame=%s raycast=%s sprites=%s mem=%dMB",
		m.Frames, m.FramesPerSecond, m.AvgFrameTime.Round(time.Microsecond),
		m.AvgRaycastTime.Round(time.Microsecond), m.SpriteTime.Round(time.Microsecond), m.MemoryUsageMB)
}

// ShouldReport reports whether the frame count just crossed a multiple of
// interval. Non-positive intervals disable reporting.
func (pm *PerformanceMonitor) ShouldReport(interval int) bool {
	if interval <= 0 {
		return false
	}
	n := pm.frameCount.Load()
	return n > 0 && n%uint64(interval) == 0
}

// PerformanceAlert represents a performance warning
type PerformanceAlert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
}

// CheckPerformanceAlerts returns a low_fps alert when the smoothed frame
// rate falls below minFPS.
func (pm *PerformanceMonitor) CheckPerformanceAlerts(minFPS float64) []PerformanceAlert {
	m := pm.GetCurrentMetrics()
	if m.Frames == 0 || m.FramesPerSecond >= minFPS {
		return nil
	}
	return []PerformanceAlert{{
		Type:      "low_fps",
		Message:   fmt.Sprintf("Frame rate is below %.0f FPS", minFPS),
		Value:     m.FramesPerSecond,
		Threshold: minFPS,
	}}
}

// Reset resets all performance counters
func (pm *PerformanceMonitor) Reset() {
	pm.frameCount.Store(0)
	pm.frameTime.Store(0)
	pm.raycastTime.Store(0)
	pm.spriteRenderTime.Store(0)

	pm.mutex.Lock()
	pm.avgFrameTime = 0
	pm.avgRaycastTime = 0
	pm.startTime = time.Now()
	pm.mutex.Unlock()
}
