package core

import "fmt"

// ConfigError is returned when the settings document can't be read,
// parsed or holds invalid values. Startup can't continue after it.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %s", e.Err)
	}
	return fmt.Sprintf("config %s: %s", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a scene key is not in the registry
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("scene not found: %q", e.Key)
}

// ShaderFileError is returned when a shader source is missing,
// unreadable or empty
type ShaderFileError struct {
	Path string
	Err  error
}

func (e *ShaderFileError) Error() string {
	return fmt.Sprintf("shader file %s: %s", e.Path, e.Err)
}

func (e *ShaderFileError) Unwrap() error {
	return e.Err
}
