// Copyright (C) 2025 Civicgraph (oss@civicgraph.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config defines and loads the routelens configuration.
package config

// RouteLensConfig is the root configuration structure. It is written to
// ~/.routelens/routelens.yaml on first run and can be overridden per
// project with a routelens.yaml in the project root.
type RouteLensConfig struct {
	Project   ProjectConfig   `yaml:"project" mapstructure:"project"`
	Analysis  AnalysisConfig  `yaml:"analysis" mapstructure:"analysis"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// ProjectConfig describes the project tree layout.
type ProjectConfig struct {
	// Root is the project root directory. Empty means the current
	// working directory.
	Root string `yaml:"root" mapstructure:"root"`

	// AliasPrefix is the import alias mapped onto SourceRoot.
	AliasPrefix string `yaml:"alias_prefix" mapstructure:"alias_prefix" validate:"required"`

	// SourceRoot is the source directory relative to Root.
	SourceRoot string `yaml:"source_root" mapstructure:"source_root" validate:"required"`

	// PagesRoot is the app-router directory relative to Root.
	PagesRoot string `yaml:"pages_root" mapstructure:"pages_root" validate:"required"`

	// APIRoot is the API route directory relative to Root.
	APIRoot string `yaml:"api_root" mapstructure:"api_root" validate:"required"`

	// PageBase is the page file basename without extension.
	PageBase string `yaml:"page_base" mapstructure:"page_base" validate:"required"`

	// SkipDirs are directory names the scanner never descends into.
	SkipDirs []string `yaml:"skip_dirs" mapstructure:"skip_dirs"`
}

// AnalysisConfig tunes the dependency walk.
type AnalysisConfig struct {
	// MaxDepth bounds transitive resolution.
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth" validate:"min=1,max=32"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" mapstructure:"level" validate:"oneof=debug info warn error"`

	// Dir enables JSON file logging when set. Supports ~ expansion.
	Dir string `yaml:"dir" mapstructure:"dir"`

	// JSON switches stderr output to JSON.
	JSON bool `yaml:"json" mapstructure:"json"`
}

// StoreConfig controls report persistence.
type StoreConfig struct {
	// Path is the report database directory. Supports ~ expansion.
	Path string `yaml:"path" mapstructure:"path" validate:"required"`

	// SyncWrites enables synchronous writes for durability.
	SyncWrites bool `yaml:"sync_writes" mapstructure:"sync_writes"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	// Port is the listen port for routelens serve.
	Port int `yaml:"port" mapstructure:"port" validate:"min=1,max=65535"`

	// Debug enables gin debug mode and request logging.
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// TelemetryConfig controls tracing.
type TelemetryConfig struct {
	// TraceExporter is "stdout" or "none".
	TraceExporter string `yaml:"trace_exporter" mapstructure:"trace_exporter" validate:"oneof=stdout none"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() RouteLensConfig {
	return RouteLensConfig{
		Project: ProjectConfig{
			AliasPrefix: "@/",
			SourceRoot:  "src",
			PagesRoot:   "src/app",
			APIRoot:     "src/app/api",
			PageBase:    "page",
			SkipDirs:    []string{"node_modules", ".next"},
		},
		Analysis: AnalysisConfig{
			MaxDepth: 5,
		},
		Log: LogConfig{
			Level: "info",
		},
		Store: StoreConfig{
			Path:       "~/.routelens/reports",
			SyncWrites: true,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
		},
	}
}
