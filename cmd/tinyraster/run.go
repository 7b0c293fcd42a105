package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAM0619TJ/Tiny-rasterizer/core"
	"github.com/SAM0619TJ/Tiny-rasterizer/core/renderer"
	"github.com/SAM0619TJ/Tiny-rasterizer/device"
	"github.com/gobuffalo/envy"
	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// builtinShaders backs the "builtin:" shader paths
var builtinShaders = packr.NewBox("../../shaders")

var runCmd = &cobra.Command{
	Use:   "run [scene]",
	Short: "Open the viewer and render the active scene",
	Long: `Open the viewer and render the active scene until the window is closed.

The scene given as argument, or $TINYRASTER_SCENE, replaces the config's
active_scene. Unknown keys are reported and the configured scene is kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runViewer,
}

func runViewer(cmd *cobra.Command, args []string) error {
	settings, err := core.LoadSettings(configPath, logger)
	if err != nil {
		return err
	}

	override := envy.Get(envScene, "")
	if len(args) == 1 {
		override = args[0]
	}
	if override != "" {
		settings.SetActiveScene(override)
	}

	scene, err := settings.ActiveScene()
	if err != nil {
		return err
	}

	loader := core.NewSourceLoader(builtinShaders, logger)
	vertex, fragment, err := loader.LoadScene(scene)
	if err != nil {
		return err
	}

	surface, err := device.NewSDLSurface(settings.Window, settings.GPU, logger)
	if err != nil {
		return err
	}
	defer surface.Destroy()

	program, err := renderer.NewProgram(vertex, fragment, renderer.DefaultConfiguration, logger)
	if err != nil {
		return err
	}
	defer program.Destroy()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := core.NewTime()
	logger.WithFields(log.Fields{
		"scene":   scene.Key,
		"name":    scene.Name,
		"started": clock.Start().Format(time.RFC3339),
	}).Info("rendering")

	loop := core.NewFrameLoop(surface, program, clock, settings.Performance, settings.Window.Title, logger)
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.WithField("frames", loop.Frames()).Info("viewer closed")
	return nil
}
