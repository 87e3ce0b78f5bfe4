package app

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"dasa.cc/triangle/nui"
	"dasa.cc/triangle/vk"
)

// Config holds everything the bootstrapper needs to know up front.
type Config struct {
	Window nui.Config `toml:"window"`
	App    AppConfig  `toml:"app"`

	Validation       bool     `toml:"validation"`
	ValidationLayers []string `toml:"validation_layers"`
}

// AppConfig is the application metadata as written in a config file.
// Versions are written as [major, minor, patch].
type AppConfig struct {
	Name          string    `toml:"name"`
	Version       [3]uint32 `toml:"version"`
	EngineName    string    `toml:"engine_name"`
	EngineVersion [3]uint32 `toml:"engine_version"`
	APIVersion    [3]uint32 `toml:"api_version"`
}

// Info converts c to the form handed to the driver.
func (c AppConfig) Info() vk.AppInfo {
	return vk.AppInfo{
		Name:          c.Name,
		Version:       vk.MakeVersion(c.Version[0], c.Version[1], c.Version[2]),
		EngineName:    c.EngineName,
		EngineVersion: vk.MakeVersion(c.EngineVersion[0], c.EngineVersion[1], c.EngineVersion[2]),
		APIVersion:    vk.MakeVersion(c.APIVersion[0], c.APIVersion[1], c.APIVersion[2]),
	}
}

// DefaultConfig is an 800x600 fixed window and the "Test Triangle" application.
// Validation follows the build: on unless built with the release tag.
func DefaultConfig() Config {
	return Config{
		Window: nui.DefaultConfig(),
		App: AppConfig{
			Name:          "Test Triangle",
			Version:       [3]uint32{1, 0, 0},
			EngineName:    "No Engine",
			EngineVersion: [3]uint32{1, 0, 0},
			APIVersion:    [3]uint32{1, 0, 0},
		},
		Validation:       enableValidationLayers,
		ValidationLayers: vk.DefaultValidationLayers(),
	}
}

// Validate reports the first problem that would keep c from bootstrapping.
func (c Config) Validate() error {
	if err := c.Window.Validate(); err != nil {
		return err
	}
	return c.App.Validate()
}

// Validate checks that every version packs without overflow and that the
// api version names a real Vulkan release.
func (c AppConfig) Validate() error {
	for _, v := range []struct {
		key string
		v   [3]uint32
	}{
		{"version", c.Version},
		{"engine_version", c.EngineVersion},
		{"api_version", c.APIVersion},
	} {
		if err := vk.CheckVersion(v.v[0], v.v[1], v.v[2]); err != nil {
			return fmt.Errorf("app.%s: %w", v.key, err)
		}
	}
	if c.APIVersion[0] == 0 {
		return fmt.Errorf("app.api_version: invalid api version %v", c.APIVersion)
	}
	return nil
}

// Decode overlays the TOML document b onto c. Keys absent from b keep
// their current values; unknown keys are an error.
func (c *Config) Decode(b []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return err
	}
	return c.Validate()
}

// LoadConfig reads the TOML file at path over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Decode(b); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
