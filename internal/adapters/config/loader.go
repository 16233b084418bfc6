// Package config provides the configuration loader for lessco.
package config

import (
	"fmt"
	"maps"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/lessco/internal/core/domain"
	"go.trai.ch/lessco/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load resolves the configuration. path may name a config file, or a directory
// from which lessco.yaml is searched upwards. An empty path starts at the
// working directory.
func (l *Loader) Load(path string) (*domain.Config, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		path = cwd
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	configPath := abs
	info, err := l.FS.Stat(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", abs)
	}
	if info.IsDir() {
		configPath, err = l.findConfiguration(abs)
		if err != nil {
			return nil, err
		}
	}

	var lessfile Lessfile
	if err := l.readAndUnmarshalYAML(configPath, &lessfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.build(configPath, &lessfile)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) build(configPath string, lf *Lessfile) (*domain.Config, error) {
	siteRoot := resolvePath(filepath.Dir(configPath), lf.SiteRoot)
	cfg := domain.DefaultConfig(siteRoot)

	if lf.AdminRoot != "" {
		cfg.AdminRoot = resolvePath(siteRoot, lf.AdminRoot)
	}
	if lf.TmpPath != "" {
		cfg.TmpPath = resolvePath(siteRoot, lf.TmpPath)
	}

	cfg.SiteBase = normalizeBase(lf.SiteBase)
	if lf.AdminBase != "" {
		cfg.AdminBase = normalizeBase(lf.AdminBase)
	}
	if lf.SiteURL != "" {
		cfg.SiteURL = strings.TrimSuffix(lf.SiteURL, "/")
		if u, err := url.Parse(cfg.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
			l.Logger.Warn(fmt.Sprintf("siteURL %q is not an absolute URL, absolute stylesheet lookups will not match", lf.SiteURL))
		}
	}

	mode, err := domain.ParseModeSelector(lf.Mode.Raw)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	cfg.Mode = mode

	overridePaths(&cfg.Site, lf.Site)
	overridePaths(&cfg.Admin, lf.Admin)

	cfg.Force = lf.Force
	cfg.PreserveComments = lf.PreserveComments
	cfg.Compress = lf.Compress

	cfg.ClientSide.Enabled = lf.ClientSide.Enabled
	if lf.ClientSide.MediaDir != "" {
		cfg.ClientSide.MediaDir = filepath.ToSlash(strings.Trim(lf.ClientSide.MediaDir, "/"))
	}
	maps.Copy(cfg.ClientSide.Options, lf.ClientSide.Options)

	if lf.Engine.Binary != "" {
		cfg.Engine.Binary = lf.Engine.Binary
	}
	cfg.Engine.Args = lf.Engine.Args

	return cfg, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Lessfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}
	return nil
}

func overridePaths(dst *domain.ClientPaths, dto ClientDTO) {
	if dto.LessFile != "" {
		dst.LessFile = filepath.ToSlash(dto.LessFile)
	}
	if dto.CSSFile != "" {
		dst.CSSFile = filepath.ToSlash(dto.CSSFile)
	}
}

func resolvePath(base, configured string) string {
	if configured == "" {
		return filepath.Clean(base)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(base, configured))
}

// normalizeBase turns a URL path prefix into "/x/y" form, or "" for the root.
func normalizeBase(base string) string {
	base = strings.Trim(strings.TrimSpace(base), "/")
	if base == "" {
		return ""
	}
	return "/" + base
}
