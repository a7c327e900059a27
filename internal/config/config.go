package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"github.com/winkty-official/winkty-ui-sub001/internal/branding"
)

const fileType = "yaml"

// Configuration keys.
const (
	KeyManifest          = "manifest"
	KeyCopySource        = "copy.source"
	KeyCopyDest          = "copy.dest"
	KeyCopyExt           = "copy.ext"
	KeyCopyConcurrency   = "copy.concurrency"
	KeyCopyComponents    = "copy.components"
	KeyBuildSource       = "build.source"
	KeyBuildDest         = "build.dest"
	KeyServeAddr         = "serve.addr"
	KeyServeDir          = "serve.dir"
	KeyLogLevel          = "log.level"
	KeyLogFormat         = "log.format"
	KeyInstallProjectDir = "install.project"
)

// defaults holds the value of every known key when neither the config file
// nor the environment sets it.
var defaults = map[string]any{
	KeyManifest:          "",
	KeyCopySource:        "components/ui",
	KeyCopyDest:          "registry/components",
	KeyCopyExt:           ".tsx",
	KeyCopyConcurrency:   1,
	KeyCopyComponents:    []string{},
	KeyBuildSource:       ".",
	KeyBuildDest:         "public/r",
	KeyServeAddr:         ":8080",
	KeyServeDir:          "",
	KeyLogLevel:          "info",
	KeyLogFormat:         "text",
	KeyInstallProjectDir: ".",
}

// Keys returns every known configuration key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Settings is the resolved project configuration.
type Settings struct {
	Manifest string
	Copy     CopySettings
	Build    BuildSettings
	Serve    ServeSettings
	Log      LogSettings
	Install  InstallSettings
}

// CopySettings configures the copy packaging run.
type CopySettings struct {
	Source      string
	Dest        string
	Ext         string
	Concurrency int
	Components  []string
}

// BuildSettings configures registry item packaging.
type BuildSettings struct {
	Source string
	Dest   string
}

// ServeSettings configures the registry HTTP endpoint.
type ServeSettings struct {
	Addr string
	Dir  string
}

// LogSettings configures the logger.
type LogSettings struct {
	Level  string
	Format string
}

// InstallSettings configures add/remove.
type InstallSettings struct {
	ProjectDir string
}

// Config wraps the viper instance a command loaded its settings from.
type Config struct {
	v    *viper.Viper
	file string
}

// DefaultFileName returns the project config file name (e.g., "winkty.yaml").
func DefaultFileName() string {
	return branding.ConfigName() + "." + fileType
}

// Load reads configuration from path, or from DefaultFileName() in the
// working directory when path is empty. A missing default file is not an
// error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(branding.ConfigName())
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	c := &Config{v: v, file: v.ConfigFileUsed()}
	if _, err := c.Settings(); err != nil {
		return nil, err
	}
	return c, nil
}

// File returns the config file that was read, or "" when none was found.
func (c *Config) File() string {
	return c.file
}

// Get returns a config value by key as a string. Slice values are joined
// with commas.
func (c *Config) Get(key string) string {
	if key == KeyCopyComponents {
		return strings.Join(c.v.GetStringSlice(key), ",")
	}
	return c.v.GetString(key)
}

// Settings resolves and validates every known key.
func (c *Config) Settings() (*Settings, error) {
	v := c.v
	s := &Settings{
		Manifest: v.GetString(KeyManifest),
		Copy: CopySettings{
			Source:      v.GetString(KeyCopySource),
			Dest:        v.GetString(KeyCopyDest),
			Ext:         v.GetString(KeyCopyExt),
			Concurrency: v.GetInt(KeyCopyConcurrency),
			Components:  v.GetStringSlice(KeyCopyComponents),
		},
		Build: BuildSettings{
			Source: v.GetString(KeyBuildSource),
			Dest:   v.GetString(KeyBuildDest),
		},
		Serve: ServeSettings{
			Addr: v.GetString(KeyServeAddr),
			Dir:  v.GetString(KeyServeDir),
		},
		Log: LogSettings{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Install: InstallSettings{
			ProjectDir: v.GetString(KeyInstallProjectDir),
		},
	}

	if s.Serve.Dir == "" {
		s.Serve.Dir = s.Build.Dest
	}
	if s.Copy.Ext != "" && !strings.HasPrefix(s.Copy.Ext, ".") {
		s.Copy.Ext = "." + s.Copy.Ext
	}
	if s.Copy.Concurrency < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", KeyCopyConcurrency, s.Copy.Concurrency)
	}
	if s.Copy.Source == "" || s.Copy.Dest == "" {
		return nil, fmt.Errorf("%s and %s must both be set", KeyCopySource, KeyCopyDest)
	}
	if s.Log.Format != "text" && s.Log.Format != "json" {
		return nil, fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, s.Log.Format)
	}
	return s, nil
}

// Set writes a config key-value pair into the config file at path (or
// DefaultFileName() when empty), creating the file if needed. Only keys
// already present in the file plus the new one are written.
func Set(path, key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if path == "" {
		path = DefaultFileName()
	}

	var typed any = value
	switch key {
	case KeyCopyConcurrency:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		typed = n
	case KeyCopyComponents:
		var names []string
		for _, part := range strings.Split(value, ",") {
			if p := strings.TrimSpace(part); p != "" {
				names = append(names, p)
			}
		}
		typed = names
	}

	w := viper.New()
	w.SetConfigFile(path)
	w.SetConfigType(fileType)

	if _, err := os.Stat(path); err == nil {
		if err := w.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	} else {
		return fmt.Errorf("checking config file %s: %w", path, err)
	}

	w.Set(key, typed)
	if err := w.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
