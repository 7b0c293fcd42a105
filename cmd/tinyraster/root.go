package main

import (
	"fmt"
	"os"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	envConfig = "TINYRASTER_CONFIG"
	envScene  = "TINYRASTER_SCENE"

	defaultConfigPath = "config.yaml"
)

var logger = log.New()

var (
	configPath string
	envFile    string
	verbose    bool
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "tinyraster",
	Short: "Render full screen fragment shaders",
	Long: `tinyraster opens a window and renders a fragment shader over the whole
framebuffer, feeding it the iTime, iResolution and iMouse uniforms.

Scenes and window settings are read from a YAML config file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default $"+envConfig+" or "+defaultConfigPath+")")
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file with environment overrides")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug messages")
	flags.StringVar(&logFormat, "log-format", "text", "log format, text or json")

	rootCmd.AddCommand(runCmd, scenesCmd, packCmd)
}

func setup(_ *cobra.Command, _ []string) error {
	if err := setupLogging(); err != nil {
		return err
	}

	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	if configPath == "" {
		configPath = envy.Get(envConfig, defaultConfigPath)
	}
	return nil
}

func setupLogging() error {
	logger.SetOutput(os.Stderr)

	switch logFormat {
	case "text":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", logFormat)
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return nil
}

// loadEnvFile applies a dotenv file on top of the environment,
// a missing file is not an error
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("env file %s: %w", path, err)
	}
	envy.Reload()

	logger.WithField("path", path).Debug("loaded env file")
	return nil
}
