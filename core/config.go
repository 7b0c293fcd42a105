package core

// Configuration defines the complete viewer configuration
// as read from the settings document
type Configuration struct {
	Window      WindowConfiguration      `yaml:"window"`
	Performance PerformanceConfiguration `yaml:"performance"`
	GPU         GPUConfiguration         `yaml:"gpu"`
}

// WindowConfiguration is used to configure the window,
// it's consumed once when the surface is created
type WindowConfiguration struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// PerformanceConfiguration is used to configure frame statistics reporting
type PerformanceConfiguration struct {
	// FPSUpdateInterval is the reporting interval in seconds
	FPSUpdateInterval float64 `yaml:"fps_update_interval"`
	ShowConsoleFPS    bool    `yaml:"show_console_fps"`
	ShowTitleFPS      bool    `yaml:"show_title_fps"`
}

// GPUConfiguration is used to configure the rendering context.
// It's passed to the surface constructor, a created surface
// never reads it again.
type GPUConfiguration struct {
	OpenGLMajor int `yaml:"opengl_major"`
	OpenGLMinor int `yaml:"opengl_minor"`

	// Samples is the multisample count, 0 disables multisampling
	Samples int `yaml:"samples"`
}

// Scene describes one selectable shader scene
type Scene struct {
	Key            string
	Name           string
	Description    string
	VertexShader   string
	FragmentShader string
}

// DefaultConfiguration holds the values used for every field
// missing from the settings document
var DefaultConfiguration = Configuration{
	Window: WindowConfiguration{
		Width:  1000,
		Height: 600,
		Title:  "Tiny Rasterizer",
		VSync:  false,
	},
	Performance: PerformanceConfiguration{
		FPSUpdateInterval: 0.5,
		ShowConsoleFPS:    true,
		ShowTitleFPS:      true,
	},
	GPU: GPUConfiguration{
		OpenGLMajor: 4,
		OpenGLMinor: 1,
		Samples:     0,
	},
}
