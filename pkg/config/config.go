// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/shootday/pkg/operation"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config flag
// is given
const DefaultFileName = ".shootday.hcl"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📦 MigrateArgs configures the directory merge
type MigrateArgs struct {
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"` // Globs left out of the copy
}

// 🗂️ RefCleanArgs configures the reference sorter
type RefCleanArgs struct {
	Collision string   `json:"collision,omitempty" yaml:"collision,omitempty"` // fail or suffix
	Ignore    []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`       // Globs for files left in place
}

// 📁 ScaffoldArgs configures the session scaffold
type ScaffoldArgs struct {
	SkipRegisterOnFailure bool `json:"skip_register_on_failure,omitempty" yaml:"skip_register_on_failure,omitempty"`
}

// 🔌 HostArgs configures the host settings store
type HostArgs struct {
	Settings string `json:"settings,omitempty" yaml:"settings,omitempty"` // host.yaml location
	Window   string `json:"window,omitempty" yaml:"window,omitempty"`     // main window title
}

// 📚 Config represents the complete configuration
type Config struct {
	Migrate  MigrateArgs  `json:"migrate" yaml:"migrate"`
	RefClean RefCleanArgs `json:"refclean" yaml:"refclean"`
	Scaffold ScaffoldArgs `json:"scaffold" yaml:"scaffold"`
	Host     HostArgs     `json:"host" yaml:"host"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		RefClean: RefCleanArgs{Collision: string(operation.CollisionFail)},
		Host:     HostArgs{Window: "Capture"},
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	policy, err := operation.ParseCollisionPolicy(cfg.RefClean.Collision)
	if err != nil {
		return errors.Errorf("refclean.collision: %w", err)
	}

	// Set defaults
	cfg.RefClean.Collision = string(policy)
	if cfg.Host.Window == "" {
		cfg.Host.Window = Default().Host.Window
	}
	if cfg.Host.Settings != "" {
		cfg.Host.Settings = filepath.Clean(cfg.Host.Settings)
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("migrate ignore=%v refclean collision=%s ignore=%v scaffold skip_register_on_failure=%t",
		cfg.Migrate.Ignore, cfg.RefClean.Collision, cfg.RefClean.Ignore, cfg.Scaffold.SkipRegisterOnFailure)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	// an empty document is io.EOF and means defaults
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
