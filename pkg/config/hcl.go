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
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// evalContext exposes ${home} so settings paths can be written portably
func evalContext() *hcl.EvalContext {
	vars := map[string]cty.Value{}
	if home, err := os.UserHomeDir(); err == nil {
		vars["home"] = cty.StringVal(home)
	}
	return &hcl.EvalContext{
		Variables: vars,
	}
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, DefaultFileName)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Define HCL schema
	type hclConfig struct {
		Migrate *struct {
			Ignore []string `hcl:"ignore,optional"`
		} `hcl:"migrate,block"`
		RefClean *struct {
			Collision string   `hcl:"collision,optional"`
			Ignore    []string `hcl:"ignore,optional"`
		} `hcl:"refclean,block"`
		Scaffold *struct {
			SkipRegisterOnFailure bool `hcl:"skip_register_on_failure,optional"`
		} `hcl:"scaffold,block"`
		Host *struct {
			Settings string `hcl:"settings,optional"`
			Window   string `hcl:"window,optional"`
		} `hcl:"host,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := Default()
	if hclCfg.Migrate != nil {
		cfg.Migrate.Ignore = hclCfg.Migrate.Ignore
	}
	if hclCfg.RefClean != nil {
		if hclCfg.RefClean.Collision != "" {
			cfg.RefClean.Collision = hclCfg.RefClean.Collision
		}
		cfg.RefClean.Ignore = hclCfg.RefClean.Ignore
	}
	if hclCfg.Scaffold != nil {
		cfg.Scaffold.SkipRegisterOnFailure = hclCfg.Scaffold.SkipRegisterOnFailure
	}
	if hclCfg.Host != nil {
		cfg.Host.Settings = hclCfg.Host.Settings
		if hclCfg.Host.Window != "" {
			cfg.Host.Window = hclCfg.Host.Window
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
