package core

import (
	"errors"
	"fmt"
	"io/ioutil"
	"sort"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// settingsDocument mirrors the settings file, every field is optional
// so the pointers tell a missing field apart from a zero value
type settingsDocument struct {
	ActiveScene *string                  `yaml:"active_scene"`
	Scenes      map[string]sceneDocument `yaml:"scenes"`
	Window      *windowDocument          `yaml:"window"`
	Performance *performanceDocument     `yaml:"performance"`
	GPU         *gpuDocument             `yaml:"gpu"`
}

type sceneDocument struct {
	Name           *string `yaml:"name"`
	Description    *string `yaml:"description"`
	VertexShader   *string `yaml:"vertex_shader"`
	FragmentShader *string `yaml:"fragment_shader"`
}

type windowDocument struct {
	Width  *int    `yaml:"width"`
	Height *int    `yaml:"height"`
	Title  *string `yaml:"title"`
	VSync  *bool   `yaml:"vsync"`
}

type performanceDocument struct {
	FPSUpdateInterval *float64 `yaml:"fps_update_interval"`
	ShowConsoleFPS    *bool    `yaml:"show_console_fps"`
	ShowTitleFPS      *bool    `yaml:"show_title_fps"`
}

type gpuDocument struct {
	OpenGLMajor *int `yaml:"opengl_major"`
	OpenGLMinor *int `yaml:"opengl_minor"`
	Samples     *int `yaml:"samples"`
}

// Settings holds the scene registry, the active scene selection
// and the window, performance and GPU configuration.
type Settings struct {
	Configuration

	scenes map[string]Scene
	active string
	logger log.FieldLogger
}

// LoadSettings reads and parses the settings file at path
func LoadSettings(path string, logger log.FieldLogger) (*Settings, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	settings, err := ParseSettings(data, logger.WithField("path", path))
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}
	return settings, nil
}

// ParseSettings builds Settings from a YAML document. The scene registry
// is built first so active_scene can be resolved against it, the other
// sections are independent and fall back to DefaultConfiguration.
func ParseSettings(data []byte, logger log.FieldLogger) (*Settings, error) {
	var doc settingsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{Err: err}
	}

	s := &Settings{
		Configuration: DefaultConfiguration,
		scenes:        make(map[string]Scene),
		logger:        logger,
	}

	s.loadScenes(doc.Scenes)
	if doc.ActiveScene != nil {
		s.resolveActiveScene(*doc.ActiveScene)
	} else if keys := s.SceneKeys(); len(keys) > 0 {
		s.active = keys[0]
		logger.WithField("fallback", s.active).Warn("no active scene configured, using default")
	}

	s.loadWindow(doc.Window)
	s.loadPerformance(doc.Performance)
	s.loadGPU(doc.GPU)

	if err := s.Configuration.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}

	entry := logger.WithField("scene", s.active)
	if sc, ok := s.scenes[s.active]; ok {
		entry = entry.WithField("name", sc.Name)
	}
	entry.Info("config loaded")

	return s, nil
}

func (s *Settings) loadScenes(scenes map[string]sceneDocument) {
	if len(scenes) == 0 {
		s.logger.Warn("no scenes defined in config")
		return
	}

	for key, doc := range scenes {
		scene := Scene{
			Key:  key,
			Name: key,
		}
		if doc.Name != nil {
			scene.Name = *doc.Name
		}
		if doc.Description != nil {
			scene.Description = *doc.Description
		}
		if doc.VertexShader != nil {
			scene.VertexShader = *doc.VertexShader
		}
		if doc.FragmentShader != nil {
			scene.FragmentShader = *doc.FragmentShader
		}
		s.scenes[key] = scene
	}

	for _, key := range s.SceneKeys() {
		s.logger.WithFields(log.Fields{
			"scene": key,
			"name":  s.scenes[key].Name,
		}).Debug("loaded scene")
	}
}

// resolveActiveScene matches identifier against keys first,
// then display names, then falls back to the smallest key.
func (s *Settings) resolveActiveScene(identifier string) {
	if _, ok := s.scenes[identifier]; ok {
		s.active = identifier
		return
	}

	keys := s.SceneKeys()
	for _, key := range keys {
		if s.scenes[key].Name == identifier {
			s.active = key
			return
		}
	}

	entry := s.logger.WithField("scene", identifier)
	if len(keys) == 0 {
		entry.Warn("scene not found and no scenes are registered")
		return
	}
	s.active = keys[0]
	entry.WithField("fallback", s.active).Warn("scene not found, using default")
}

func (s *Settings) loadWindow(doc *windowDocument) {
	if doc == nil {
		return
	}
	if doc.Width != nil {
		s.Window.Width = *doc.Width
	}
	if doc.Height != nil {
		s.Window.Height = *doc.Height
	}
	if doc.Title != nil {
		s.Window.Title = *doc.Title
	}
	if doc.VSync != nil {
		s.Window.VSync = *doc.VSync
	}
}

func (s *Settings) loadPerformance(doc *performanceDocument) {
	if doc == nil {
		return
	}
	if doc.FPSUpdateInterval != nil {
		s.Performance.FPSUpdateInterval = *doc.FPSUpdateInterval
	}
	if doc.ShowConsoleFPS != nil {
		s.Performance.ShowConsoleFPS = *doc.ShowConsoleFPS
	}
	if doc.ShowTitleFPS != nil {
		s.Performance.ShowTitleFPS = *doc.ShowTitleFPS
	}
}

func (s *Settings) loadGPU(doc *gpuDocument) {
	if doc == nil {
		return
	}
	if doc.OpenGLMajor != nil {
		s.GPU.OpenGLMajor = *doc.OpenGLMajor
	}
	if doc.OpenGLMinor != nil {
		s.GPU.OpenGLMinor = *doc.OpenGLMinor
	}
	if doc.Samples != nil {
		s.GPU.Samples = *doc.Samples
	}
}

// Validate checks the value ranges of the configuration
func (c Configuration) Validate() error {
	switch {
	case c.Window.Width <= 0:
		return fmt.Errorf("window width must be positive, got %d", c.Window.Width)
	case c.Window.Height <= 0:
		return fmt.Errorf("window height must be positive, got %d", c.Window.Height)
	case c.Performance.FPSUpdateInterval <= 0:
		return fmt.Errorf("fps_update_interval must be positive, got %g", c.Performance.FPSUpdateInterval)
	case c.GPU.Samples < 0:
		return fmt.Errorf("samples can't be negative, got %d", c.GPU.Samples)
	}
	return nil
}

// ActiveScene returns the currently selected scene
func (s *Settings) ActiveScene() (Scene, error) {
	return s.Scene(s.active)
}

// ActiveSceneKey returns the key of the selected scene,
// empty when nothing could be selected
func (s *Settings) ActiveSceneKey() string {
	return s.active
}

// SetActiveScene switches the selection to key. An unknown key
// is reported and leaves the selection as it was.
func (s *Settings) SetActiveScene(key string) bool {
	if _, ok := s.scenes[key]; !ok {
		s.logger.WithField("scene", key).Warn("scene not found")
		return false
	}
	s.active = key
	s.logger.WithField("scene", key).Info("switched scene")
	return true
}

// Scene returns the scene registered under key
func (s *Settings) Scene(key string) (Scene, error) {
	sc, ok := s.scenes[key]
	if !ok {
		return Scene{}, &NotFoundError{Key: key}
	}
	return sc, nil
}

// SceneKeys returns all registered keys in lexicographic order
func (s *Settings) SceneKeys() []string {
	keys := make([]string, 0, len(s.scenes))
	for key := range s.scenes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
