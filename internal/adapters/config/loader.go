// Package config provides the configuration loader for sdkres.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/sdkres/internal/core/domain"
	"go.trai.ch/sdkres/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration file at path. A missing file yields domain.DefaultConfig
// rooted at the file's directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	root := filepath.Dir(path)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.Logger != nil {
				l.Logger.Debug("no config file found at " + path + ", using defaults")
			}
			return domain.DefaultConfig(root), nil
		}
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Sdkresfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "path", path)
	}

	cfg, err := file.toDomain(root)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (f *Sdkresfile) toDomain(root string) (*domain.Config, error) {
	if f.Version != "" && f.Version != supportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidResolverConfig, "unsupported config version"),
			"version", f.Version)
	}

	cfg := domain.DefaultConfig(root)
	cfg.HostVersion = f.HostVersion

	policy, err := domain.ParseSharingPolicy(f.Policy)
	if err != nil {
		return nil, err
	}
	cfg.Policy = policy

	if m := f.Resolvers.Manifest; m != nil {
		overlay(&cfg.Manifest.Enabled, &cfg.Manifest.Priority, m.Enabled, m.Priority)
		for key, dir := range m.Sdks {
			if strings.TrimSpace(key) == "" || strings.TrimSpace(dir) == "" {
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidResolverConfig, "manifest entries need a name and a path"),
					"sdk", key)
			}
			cfg.Manifest.Sdks[key] = resolvePath(root, dir)
		}
	}

	if e := f.Resolvers.Env; e != nil {
		overlay(&cfg.Env.Enabled, &cfg.Env.Priority, e.Enabled, e.Priority)
		if e.Prefix != nil {
			cfg.Env.Prefix = *e.Prefix
		}
	}

	if d := f.Resolvers.Directory; d != nil {
		overlay(&cfg.Directory.Enabled, &cfg.Directory.Priority, d.Enabled, d.Priority)
		for _, r := range d.Roots {
			cfg.Directory.Roots = append(cfg.Directory.Roots, resolvePath(root, r))
		}
	}

	if n := f.Resolvers.Nix; n != nil {
		// The nix section opts in unless it says otherwise.
		cfg.Nix.Enabled = true
		overlay(&cfg.Nix.Enabled, &cfg.Nix.Priority, n.Enabled, n.Priority)
		if n.CacheDir != nil {
			cfg.Nix.CacheDir = *n.CacheDir
		}
	}
	cfg.Nix.CacheDir = resolvePath(root, cfg.Nix.CacheDir)

	for project, refs := range f.Projects {
		parsed := make([]domain.SdkReference, 0, len(refs))
		for _, raw := range refs {
			ref, err := domain.ParseSdkReference(raw)
			if err != nil {
				return nil, zerr.With(err, "project", project)
			}
			parsed = append(parsed, ref)
		}
		cfg.Projects[resolvePath(root, project)] = parsed
	}

	return cfg, nil
}

func overlay(enabled *bool, priority *int, enabledIn *bool, priorityIn *int) {
	if enabledIn != nil {
		*enabled = *enabledIn
	}
	if priorityIn != nil {
		*priority = *priorityIn
	}
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

var _ ports.ConfigLoader = (*Loader)(nil)
