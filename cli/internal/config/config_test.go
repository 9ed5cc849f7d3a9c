package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWithNoConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BONSAI_ACCESS_KEY", "")
	t.Setenv("BONSAI_WORKSPACE_ID", "")

	p, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.GatewayURL != "https://cp-api.bons.ai" {
		t.Errorf("expected default gateway URL, got %s", p.GatewayURL)
	}
	if p.UpdateURL != DefaultUpdateURL {
		t.Errorf("expected default update URL, got %s", p.UpdateURL)
	}
	if p.AccessKey != "" {
		t.Errorf("expected empty access key, got %q", p.AccessKey)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BONSAI_ACCESS_KEY", "")
	t.Setenv("BONSAI_WORKSPACE_ID", "")

	saved := &Profile{
		AccessKey:   "key-123",
		WorkspaceID: "ws-1",
		GatewayURL:  "https://custom.example.com",
		UpdateURL:   "https://custom.example.com/latest",
	}
	if err := Save(saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *loaded != *saved {
		t.Errorf("roundtrip mismatch:\nsaved:  %+v\nloaded: %+v", saved, loaded)
	}
}

func TestSaveFilePermissions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := Save(&Profile{AccessKey: "secret"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected 0600 permissions, got %o", perm)
	}
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := Save(&Profile{AccessKey: "file-key", WorkspaceID: "file-ws"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("BONSAI_ACCESS_KEY", "env-key")

	p, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.AccessKey != "env-key" {
		t.Errorf("expected environment to win, got %q", p.AccessKey)
	}
	if p.WorkspaceID != "file-ws" {
		t.Errorf("expected file workspace to survive, got %q", p.WorkspaceID)
	}
}

func TestLoadEmptyEndpointsFallBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BONSAI_ACCESS_KEY", "")

	if err := Save(&Profile{AccessKey: "k", GatewayURL: "", UpdateURL: ""}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.GatewayURL != "https://cp-api.bons.ai" {
		t.Errorf("expected default gateway URL, got %q", p.GatewayURL)
	}
	if p.UpdateURL != DefaultUpdateURL {
		t.Errorf("expected default update URL, got %q", p.UpdateURL)
	}
}

func TestMalformedConfigFileIsAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("access_key: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}
	if !strings.Contains(err.Error(), filepath.Join(".bonsai", "config.yaml")) {
		t.Errorf("expected the config path in the error, got %v", err)
	}
}
