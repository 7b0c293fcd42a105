package core

import (
	"context"
	"time"

	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"
)

// NewFrameLoop creates the render loop for an already created
// surface and program. title prefixes the statistics in the window title.
func NewFrameLoop(surface Surface, program Program, clock Clock, cfg PerformanceConfiguration, title string, logger log.FieldLogger) *FrameLoop {
	interval := time.Duration(cfg.FPSUpdateInterval * float64(time.Second))
	return &FrameLoop{
		surface: surface,
		program: program,
		clock:   clock,
		config:  cfg,
		title:   title,
		stats:   NewFrameStatistics(interval),
		logger:  logger,
	}
}

// FrameLoop drives the per frame uniform updates, the draw call and
// the statistics. It must run on the thread owning the context.
type FrameLoop struct {
	surface Surface
	program Program
	clock   Clock
	config  PerformanceConfiguration
	title   string
	stats   *FrameStatistics
	logger  log.FieldLogger

	frames uint64
}

// Run renders until the surface reports a close request or ctx is done.
// The context is only checked between frames.
func (l *FrameLoop) Run(ctx context.Context) error {
	l.stats.Reset(l.clock.Elapsed())

	for !l.surface.ShouldClose() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		l.RenderFrame()
	}

	l.logger.WithField("frames", l.frames).Debug("frame loop exited")
	return nil
}

// RenderFrame runs one iteration: uniforms, draw, present, statistics
func (l *FrameLoop) RenderFrame() {
	l.program.Clear()
	l.program.Use()

	now := l.clock.Elapsed()
	width, height := l.surface.FramebufferSize()
	x, y := l.surface.CursorPosition()

	l.program.SetFloat(UniformTime, float32(now.Seconds()))
	l.program.SetVec2(UniformResolution, glm.Vec2{float32(width), float32(height)})
	l.program.SetVec2(UniformMouse, glm.Vec2{float32(x), float32(y)})

	l.program.DrawQuad()

	l.surface.SwapBuffers()
	l.surface.PollEvents()
	l.frames++

	if report, ok := l.stats.Frame(l.clock.Elapsed()); ok {
		l.publish(report)
	}
}

func (l *FrameLoop) publish(report Report) {
	if l.config.ShowTitleFPS {
		l.surface.SetTitle(report.Title(l.title))
	}

	if l.config.ShowConsoleFPS {
		l.logger.WithFields(log.Fields{
			"fps":    report.FPS,
			"avg_ms": report.AvgMs,
		}).Info("frame statistics")
	}
}

// Frames returns the number of frames rendered so far
func (l *FrameLoop) Frames() uint64 {
	return l.frames
}
