// Package config loads the operator's YAML configuration file and converts
// it into the runtime peering settings.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/tmcsantos/kopf/pkg/peering"
)

// Peering is the peering section of the config file. Zero values mean "use
// the documented default" (name "default", lifetime 60s, autoclean on).
type Peering struct {
	// Name of the ClusterKopfPeering/KopfPeering object.
	Name string `yaml:"name"`
	// Namespace switches to the namespaced KopfPeering kind.
	Namespace string `yaml:"namespace"`
	// Priority of this operator in the peer arbitration.
	Priority int64 `yaml:"priority"`
	// Lifetime in seconds of one keep-alive entry.
	Lifetime int64 `yaml:"lifetime"`
	// Standalone disables peering entirely.
	Standalone bool `yaml:"standalone"`
	// Mandatory makes a missing peering object fatal at startup.
	Mandatory bool `yaml:"mandatory"`
	// Stealth suppresses per-keep-alive log lines.
	Stealth bool `yaml:"stealth"`
	// Autoclean of dead peers; defaults to on when omitted.
	Autoclean *bool `yaml:"autoclean"`
}

type Config struct {
	Peering Peering `yaml:"peering"`
}

// Load reads the config file at path. When no path is given, the
// KOPF_CONFIG_PATH environment variable is consulted, then "./config.yaml".
func Load(configPath ...string) (Config, error) {
	path := "./config.yaml"
	if env := os.Getenv("KOPF_CONFIG_PATH"); env != "" {
		path = env
	}
	if len(configPath) > 0 && configPath[0] != "" {
		path = configPath[0]
	}

	var config Config
	content, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("trying to open config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(content, &config); err != nil {
		return config, fmt.Errorf("error unmarshaling YAML %s: %w", path, err)
	}
	return config, nil
}

// Settings converts the file values into runtime settings, applying defaults
// for everything left unset.
func (p Peering) Settings() peering.Settings {
	settings := peering.DefaultSettings()
	if p.Name != "" {
		settings.Name = p.Name
	}
	settings.Namespace = p.Namespace
	settings.Priority = p.Priority
	if p.Lifetime > 0 {
		settings.Lifetime = time.Duration(p.Lifetime) * time.Second
	}
	settings.Standalone = p.Standalone
	settings.Mandatory = p.Mandatory
	settings.Stealth = p.Stealth
	if p.Autoclean != nil {
		settings.Autoclean = *p.Autoclean
	}
	return settings
}
