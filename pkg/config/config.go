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
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/rs/zerolog"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

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

// 🔧 OrganizeArgs represents optional organize behavior configuration
type OrganizeArgs struct {
	// Glob patterns (doublestar) for source files to leave in place
	IgnorePatterns []string `json:"ignore_patterns" yaml:"ignore_patterns" hcl:"ignore_patterns,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Source   string        `json:"source" yaml:"source" hcl:"source"`
	Target   string        `json:"target" yaml:"target" hcl:"target"`
	Organize *OrganizeArgs `json:"organize,omitempty" yaml:"organize,omitempty" hcl:"organize,block"`
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

// 🔍 Validate checks if the configuration is valid. Both source and target
// must name existing directories — the organize pipeline assumes this has
// been checked and does not re-validate it.
func (cfg *Config) Validate() error {
	// Check required fields
	if cfg.Source == "" {
		return errors.Errorf("source is required")
	}
	if cfg.Target == "" {
		return errors.Errorf("target is required")
	}

	// Clean up paths
	cfg.Source = filepath.Clean(cfg.Source)
	cfg.Target = filepath.Clean(cfg.Target)

	// Both ends must be existing directories
	if err := checkDir(cfg.Source); err != nil {
		return errors.Errorf("source: %w", err)
	}
	if err := checkDir(cfg.Target); err != nil {
		return errors.Errorf("target: %w", err)
	}

	return nil
}

// 📁 checkDir verifies that path exists and is a directory
func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("checking directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", path)
	}
	return nil
}

// 🔍 IgnorePatterns returns the configured ignore patterns, if any
func (cfg *Config) IgnorePatterns() []string {
	if cfg.Organize == nil {
		return nil
	}
	return cfg.Organize.IgnorePatterns
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s -> %s", cfg.Source, cfg.Target)
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
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}
