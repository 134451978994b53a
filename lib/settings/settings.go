// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Hard-coded connection defaults, used when the settings file omits
// the corresponding field or does not exist at all.
const (
	DefaultHost = "localhost"
	DefaultPort = 8443
)

// EnvConfig overrides the settings file location when set. There is no
// further discovery chain: the file is either at $VESSEL_CONFIG or at
// the fixed per-user default path.
const EnvConfig = "VESSEL_CONFIG"

// Settings is the persisted client configuration. It is read once per
// process invocation and passed by reference into the transport
// constructor; nothing reads it through ambient globals. The only
// writer is "vessel server set".
type Settings struct {
	// Server is the remote orchestration server address.
	Server ServerSettings `yaml:"server"`

	// AuthKey is the shared authentication secret used to sign every
	// request. Empty means unconfigured: the transport fails fast with
	// a fixed error and performs no network I/O.
	AuthKey string `yaml:"auth_key,omitempty"`

	// InstallID is a stable UUID identifying this client installation.
	// Sent as a cookie so the server can correlate anonymous requests
	// from the same install. Generated once by "vessel server set".
	InstallID string `yaml:"install_id,omitempty"`

	// DangerSkipTLSVerify disables TLS certificate validation for all
	// calls. This is a known, deliberate weakness: the server currently
	// serves a self-signed certificate and no root-of-trust mechanism
	// exists yet. The transport logs a warning every time a client is
	// constructed with this enabled. Named to make the insecurity
	// impossible to miss in a settings file.
	DangerSkipTLSVerify bool `yaml:"danger_skip_tls_verify"`
}

// ServerSettings is the remote server address.
type ServerSettings struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// Default returns the settings used before "vessel server set" has ever
// run: default address, no credentials, certificate validation off
// (the server has no CA-signed certificate to validate against).
func Default() *Settings {
	return &Settings{DangerSkipTLSVerify: true}
}

// Path returns the settings file location: $VESSEL_CONFIG when set,
// otherwise <user config dir>/vessel/settings.yaml.
func Path() (string, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return path, nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(configDir, "vessel", "settings.yaml"), nil
}

// Load reads the settings file from Path. A missing file is not an
// error: it yields Default, the unconfigured state.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads settings from an explicit path. Fields absent from the
// file keep their Default values, so a file that only sets server.host
// still gets the default port and the TLS flag.
func LoadFile(path string) (*Settings, error) {
	loaded := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return loaded, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return loaded, nil
}

// SaveFile writes the settings to an explicit path, creating parent
// directories as needed. Mode 0600: the file holds the auth secret.
func (s *Settings) SaveFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}

// Save writes the settings to the Path location.
func (s *Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return s.SaveFile(path)
}

// Host returns the configured host or the default.
func (s *Settings) Host() string {
	if s.Server.Host != "" {
		return s.Server.Host
	}
	return DefaultHost
}

// Port returns the configured port or the default.
func (s *Settings) Port() int {
	if s.Server.Port != 0 {
		return s.Server.Port
	}
	return DefaultPort
}

// BaseURL returns the server base URL, always HTTPS, always with a
// trailing slash so a call name appends directly.
func (s *Settings) BaseURL() string {
	return fmt.Sprintf("https://%s:%d/", s.Host(), s.Port())
}
