package core

import (
	"fmt"
	"math"
	"time"
)

// Report is the summary of one completed reporting interval
type Report struct {
	Frames  int
	Elapsed time.Duration

	// FPS is the plain rate over the interval, AvgMs the mean frame time
	FPS   float64
	AvgMs float64

	// Frame time extremes in milliseconds and the rates derived from them.
	// Only meaningful when HasExtremes is set.
	MinFrameMs  float64
	MaxFrameMs  float64
	MinFPS      float64
	MaxFPS      float64
	HasExtremes bool
}

// Title formats the report for the window title
func (r Report) Title(prefix string) string {
	title := fmt.Sprintf("%s | FPS: %.1f | %.2f ms", prefix, r.FPS, r.AvgMs)
	if r.HasExtremes {
		title += fmt.Sprintf(" | min %.1f / max %.1f FPS", r.MinFPS, r.MaxFPS)
	}
	return title
}

// NewFrameStatistics creates statistics that report every interval
func NewFrameStatistics(interval time.Duration) *FrameStatistics {
	s := &FrameStatistics{
		interval: interval,
	}
	s.Reset(0)
	return s
}

// FrameStatistics accumulates frame timings for one reporting interval.
// Timestamps are durations on the loop's clock.
type FrameStatistics struct {
	interval time.Duration

	frameCount  int
	windowStart time.Duration
	lastFrame   time.Duration

	// milliseconds
	minFrame float64
	maxFrame float64
}

// Reset starts a fresh interval at now
func (s *FrameStatistics) Reset(now time.Duration) {
	s.frameCount = 0
	s.windowStart = now
	s.lastFrame = now
	s.resetExtremes()
}

func (s *FrameStatistics) resetExtremes() {
	s.minFrame = math.Inf(1)
	s.maxFrame = 0
}

// Frame records a frame that finished at now. When the interval is
// complete it returns the report and starts the next interval.
func (s *FrameStatistics) Frame(now time.Duration) (Report, bool) {
	s.frameCount++
	delta := durationMs(now - s.lastFrame)

	// the first delta of an interval carries setup cost
	if s.frameCount > 1 {
		s.minFrame = math.Min(s.minFrame, delta)
		s.maxFrame = math.Max(s.maxFrame, delta)
	}
	s.lastFrame = now

	elapsed := now - s.windowStart
	if elapsed < s.interval || elapsed <= 0 {
		return Report{}, false
	}

	seconds := elapsed.Seconds()
	report := Report{
		Frames:  s.frameCount,
		Elapsed: elapsed,
		FPS:     float64(s.frameCount) / seconds,
		AvgMs:   seconds * 1000 / float64(s.frameCount),
	}
	if s.frameCount > 1 {
		report.HasExtremes = true
		report.MinFrameMs = s.minFrame
		report.MaxFrameMs = s.maxFrame
		report.MinFPS = 1000 / s.maxFrame
		report.MaxFPS = 1000 / s.minFrame
	}

	s.frameCount = 0
	s.windowStart = now
	s.resetExtremes()

	return report, true
}

// FrameCount returns the frames counted in the current interval
func (s *FrameStatistics) FrameCount() int {
	return s.frameCount
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
