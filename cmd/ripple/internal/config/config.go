// Package config loads the optional ripple.yaml configuration used by the
// binding generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Config represents the optional ripple.yaml configuration.
type Config struct {
	Bindings BindingsConfig `yaml:"bindings"`
}

// BindingsConfig controls host binding generation.
type BindingsConfig struct {
	// Package is the namespace emitted into the manifest for host-side
	// generators (e.g. a Swift module or Kotlin package name).
	Package string `yaml:"package,omitempty"`
	// MinHostVersion is the minimum host runtime the generated bindings
	// require, as a semantic version.
	MinHostVersion string `yaml:"min_host_version,omitempty"`
	// Format selects the manifest output format: "yaml" or "json".
	Format string `yaml:"format,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root           string
	ModulePath     string
	Package        string
	MinHostVersion string
	Format         string
}

// LoadOptional reads ripple.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "ripple.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read ripple.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ripple.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads ripple.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	pkg := strings.TrimSpace(cfg.Bindings.Package)
	if pkg == "" {
		pkg = defaultPackage(modulePath)
	}

	minHost := strings.TrimSpace(cfg.Bindings.MinHostVersion)
	if minHost != "" {
		if !strings.HasPrefix(minHost, "v") {
			minHost = "v" + minHost
		}
		if !semver.IsValid(minHost) {
			return nil, fmt.Errorf("invalid bindings.min_host_version %q", cfg.Bindings.MinHostVersion)
		}
	}

	format := strings.TrimSpace(cfg.Bindings.Format)
	switch format {
	case "":
		format = "yaml"
	case "yaml", "json":
	default:
		return nil, fmt.Errorf("invalid bindings.format %q (want yaml or json)", format)
	}

	return &Resolved{
		Root:           dir,
		ModulePath:     modulePath,
		Package:        pkg,
		MinHostVersion: minHost,
		Format:         format,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultPackage(modulePath string) string {
	parts := strings.Split(modulePath, "/")
	base := parts[len(parts)-1]
	if base == "" {
		return "ripple"
	}
	return strings.ReplaceAll(base, "-", "")
}
