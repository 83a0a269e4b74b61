// Package config loads podbundle's configuration: embedded defaults
// first, then an optional podbundle.toml from the working directory
// layered on top.
package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Aricalhe/podbundle/pkg/errors"
)

// ConfigFileName is the user configuration file podbundle looks for.
const ConfigFileName = "podbundle.toml"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the resolved installer configuration.
type Config struct {
	Sandbox SandboxConfig `koanf:"sandbox"`
	Install InstallConfig `koanf:"install"`
}

// SandboxConfig locates the generated project.
type SandboxConfig struct {
	// Root is the sandbox directory, absolute or relative to the
	// working directory
	Root string `koanf:"root"`
}

// InstallConfig controls optional installation behavior.
type InstallConfig struct {
	// BridgeSupport enables bridge-support metadata generation
	BridgeSupport bool `koanf:"bridge_support"`

	// Parallel bounds concurrent target passes; 0 means unbounded
	Parallel int `koanf:"parallel"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Load resolves the configuration for the given working directory:
// embedded defaults, then podbundle.toml in dir when present.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load %s", path)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if !filepath.IsAbs(cfg.Sandbox.Root) {
		cfg.Sandbox.Root = filepath.Join(dir, cfg.Sandbox.Root)
	}
	return &cfg, nil
}
