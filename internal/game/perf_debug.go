package game

import "log"

// reportPerformance logs the frame metrics every logInterval frames, plus
// any alerts raised since the last report.
func (g *Game) reportPerformance() {
	monitor := g.threading.PerformanceMonitor
	if !monitor.ShouldReport(g.logInterval) {
		return
	}
	log.Printf("Performance: %s (render workers: %d)", monitor.GetCurrentMetrics(), g.threading.RenderWorkers())
	for _, alert := range monitor.CheckPerformanceAlerts(g.minFPS) {
		log.Printf("Performance warning [%s]: %s (%.1f < %.1f)", alert.Type, alert.Message, alert.Value, alert.Threshold)
	}
}
