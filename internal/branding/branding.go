// Package branding provides compile-time identity values for the CLI and
// the registry it publishes.
//
// Values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Forks edit the YAML and rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName           string `yaml:"cli_name"`
	DisplayName       string `yaml:"display_name"`
	Description       string `yaml:"description"`
	EnvPrefix         string `yaml:"env_prefix"`
	ConfigName        string `yaml:"config_name"`
	GoModule          string `yaml:"go_module"`
	RegistryName      string `yaml:"registry_name"`
	Homepage          string `yaml:"homepage"`
	ItemSchemaURL     string `yaml:"item_schema_url"`
	RegistrySchemaURL string `yaml:"registry_schema_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:           "winkty",
			DisplayName:       "Winkty UI",
			Description:       "Registry manifest and packaging toolchain",
			EnvPrefix:         "WINKTY",
			ConfigName:        "winkty",
			GoModule:          "github.com/winkty-official/winkty-ui-sub001",
			RegistryName:      "winkty-ui",
			Homepage:          "https://ui.winkty.com",
			ItemSchemaURL:     "https://ui.shadcn.com/schema/registry-item.json",
			RegistrySchemaURL: "https://ui.shadcn.com/schema/registry.json",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "winkty").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "WINKTY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ConfigName returns the project config file base name without extension.
func ConfigName() string { load(); return defaults.ConfigName }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// RegistryName returns the default registry name written into registry.json.
func RegistryName() string { load(); return defaults.RegistryName }

// Homepage returns the documentation site URL.
func Homepage() string { load(); return defaults.Homepage }

// ItemSchemaURL returns the $schema value stamped on registry item files.
func ItemSchemaURL() string { load(); return defaults.ItemSchemaURL }

// RegistrySchemaURL returns the $schema value stamped on registry.json.
func RegistrySchemaURL() string { load(); return defaults.RegistrySchemaURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("LOG_LEVEL") -> "WINKTY_LOG_LEVEL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
