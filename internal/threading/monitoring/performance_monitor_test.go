package monitoring

import (
	"testing"
	"time"
)

func TestNewPerformanceMonitor(t *testing.T) {
	pm := NewPerformanceMonitor()
	if pm == nil {
		t.Fatal("NewPerformanceMonitor returned nil")
	}
	if time.Since(pm.startTime) > time.Second {
		t.Error("Start time should be recent")
	}
}

func TestPerformanceMonitorFrameTiming(t *testing.T) {
	pm := NewPerformanceMonitor()

	frameTimer := pm.StartFrame()
	time.Sleep(10 * time.Millisecond)
	frameTimer.EndFrame()

	if pm.frameCount.Load() != 1 {
		t.Errorf("Expected frame count to be 1, got %d", pm.frameCount.Load())
	}
	minExpectedTime := uint64(10 * time.Millisecond)
	if ft := pm.frameTime.Load(); ft < minExpectedTime {
		t.Errorf("Expected frame time to be at least %d ns, got %d ns", minExpectedTime, ft)
	}

	m := pm.GetCurrentMetrics()
	if m.Frames != 1 || m.FramesPerSecond <= 0 || m.FramesPerSecond > 100 {
		t.Errorf("unexpected metrics %+v", m)
	}
}

func TestRaycastTiming(t *testing.T) {
	pm := NewPerformanceMonitor()
	rt := pm.StartRaycast()
	time.Sleep(2 * time.Millisecond)
	rt.EndRaycast()
	if pm.GetCurrentMetrics().AvgRaycastTime < 2*time.Millisecond {
		t.Error("raycast average not recorded")
	}
}

func TestShouldReport(t *testing.T) {
	pm := NewPerformanceMonitor()
	if pm.ShouldReport(3) {
		t.Error("no frames yet")
	}
	for i := 0; i < 3; i++ {
		pm.StartFrame().EndFrame()
	}
	if !pm.ShouldReport(3) {
		t.Error("expected report at frame 3")
	}
	if pm.ShouldReport(0) {
		t.Error("interval 0 disables reporting")
	}
}

func TestAlertsAndReset(t *testing.T) {
	pm := NewPerformanceMonitor()
	ft := pm.StartFrame()
	time.Sleep(30 * time.Millisecond)
	ft.EndFrame()

	alerts := pm.CheckPerformanceAlerts(60)
	if len(alerts) != 1 || alerts[0].Type != "low_fps" {
		t.Fatalf("alerts = %+v", alerts)
	}

	pm.Reset()
	if pm.frameCount.Load() != 0 || pm.GetCurrentMetrics().AvgFrameTime != 0 {
		t.Error("Reset left counters behind")
	}
	if len(pm.CheckPerformanceAlerts(60)) != 0 {
		t.Error("no alerts expected after reset")
	}
}
