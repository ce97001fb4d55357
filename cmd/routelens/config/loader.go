// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const configFileName = "routelens.yaml"

// Load reads the configuration from the given file, or from the default
// location (~/.routelens/routelens.yaml) when path is empty. On first
// run the default file is created. Environment variables with the
// ROUTELENS_ prefix override file values (ROUTELENS_SERVER_PORT=9090).
func Load(path string) (*RouteLensConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ROUTELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		defaultPath, err := defaultConfigPath()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(defaultPath); os.IsNotExist(err) {
			if err := createDefault(defaultPath); err != nil {
				return nil, err
			}
		}
		path = defaultPath
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}

	var cfg RouteLensConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks a configuration against its struct constraints.
func Validate(cfg *RouteLensConfig) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// setDefaults seeds viper so partial config files still produce a
// complete config.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()
	v.SetDefault("project.alias_prefix", defaults.Project.AliasPrefix)
	v.SetDefault("project.source_root", defaults.Project.SourceRoot)
	v.SetDefault("project.pages_root", defaults.Project.PagesRoot)
	v.SetDefault("project.api_root", defaults.Project.APIRoot)
	v.SetDefault("project.page_base", defaults.Project.PageBase)
	v.SetDefault("project.skip_dirs", defaults.Project.SkipDirs)
	v.SetDefault("analysis.max_depth", defaults.Analysis.MaxDepth)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("store.path", defaults.Store.Path)
	v.SetDefault("store.sync_writes", defaults.Store.SyncWrites)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("telemetry.trace_exporter", defaults.Telemetry.TraceExporter)
}

func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".routelens", configFileName), nil
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	defaultCfg := DefaultConfig()
	data, err := yaml.Marshal(defaultCfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
