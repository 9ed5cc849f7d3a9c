// Package config resolves the bonsai CLI profile: credentials, default
// workspace, and endpoint URLs. The profile is loaded once at startup and
// passed explicitly into every component that needs it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFilename = "config.yaml"

	defaultGatewayURL = "https://cp-api.bons.ai"
)

// DefaultUpdateURL serves release metadata for the advisory version check.
var DefaultUpdateURL = defaultGatewayURL + "/v2/clients/bonsai-cli/latest"

// Profile is the resolved client configuration.
type Profile struct {
	AccessKey   string `yaml:"access_key"`
	WorkspaceID string `yaml:"workspace_id"`
	GatewayURL  string `yaml:"gateway_url"`
	UpdateURL   string `yaml:"update_url"`
}

// Dir returns the bonsai configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bonsai"
	}
	return filepath.Join(home, ".bonsai")
}

// Path returns the location of the config file.
func Path() string {
	return filepath.Join(Dir(), configFilename)
}

// Load resolves the profile from ~/.bonsai/config.yaml and BONSAI_-prefixed
// environment variables, with a local .env file loaded first. Environment
// variables take precedence over the config file. A missing config file is
// not an error; a malformed one is.
func Load() (*Profile, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(Path())
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BONSAI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("gateway_url", defaultGatewayURL)
	v.SetDefault("update_url", DefaultUpdateURL)

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(Path()); statErr == nil {
			return nil, fmt.Errorf("failed to read %s: %w", Path(), err)
		}
	}

	p := &Profile{
		AccessKey:   v.GetString("access_key"),
		WorkspaceID: v.GetString("workspace_id"),
		GatewayURL:  v.GetString("gateway_url"),
		UpdateURL:   v.GetString("update_url"),
	}
	// An empty value written by an older config file must not erase the
	// endpoint defaults.
	if p.GatewayURL == "" {
		p.GatewayURL = defaultGatewayURL
	}
	if p.UpdateURL == "" {
		p.UpdateURL = DefaultUpdateURL
	}
	return p, nil
}

// Save writes the profile to ~/.bonsai/config.yaml, creating the directory
// if needed. The file is written with owner-only permissions since it holds
// the access key.
func Save(p *Profile) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return err
	}

	return os.WriteFile(Path(), data, 0o600)
}
