package cli

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tmcsantos/kopf/pkg/peering"
)

type Config struct {
	// Application flags
	Debug      bool
	ConfigPath string

	// Peering flags
	PeeringName      string
	PeeringNamespace string
	Priority         int64
	Lifetime         int64
	Standalone       bool
	Mandatory        bool
	Stealth          bool
	Autoclean        bool

	// Metrics and health probe flags
	MetricsAddr string
	ProbeAddr   string

	// Names of flags explicitly passed on the command line, captured right
	// after parsing; Overlay lets exactly these beat config-file values.
	setFlags map[string]bool
}

func Parse() *Config {
	config := &Config{}

	flag.BoolVar(&config.Debug, "debug", getEnvBool("KOPF_DEBUG", false),
		"Enable debug level logging")
	flag.StringVar(&config.ConfigPath, "config", getEnvString("KOPF_CONFIG_PATH", ""),
		"Path to an optional YAML config file; flags override its values")

	flag.StringVar(&config.PeeringName, "peering", getEnvString("KOPF_PEERING_NAME", peering.DefaultName),
		"Name of the ClusterKopfPeering/KopfPeering object to coordinate through")
	flag.StringVar(&config.PeeringNamespace, "namespace", getEnvString("KOPF_PEERING_NAMESPACE", ""),
		"Namespace of the peering object. If empty, the cluster-wide kind is used")
	flag.Int64Var(&config.Priority, "priority", getEnvInt64("KOPF_PRIORITY", 0),
		"Priority of this operator; the highest-priority live peer wins and the others freeze")
	flag.Int64Var(&config.Lifetime, "lifetime", getEnvInt64("KOPF_LIFETIME", int64(peering.DefaultLifetime/time.Second)),
		"Seconds after which an un-renewed keep-alive entry is considered dead")
	flag.BoolVar(&config.Standalone, "standalone", getEnvBool("KOPF_STANDALONE", false),
		"Disable peering entirely and never freeze")
	flag.BoolVar(&config.Mandatory, "peering-mandatory", getEnvBool("KOPF_PEERING_MANDATORY", false),
		"Fail at startup when the peering object does not exist")
	flag.BoolVar(&config.Stealth, "stealth", getEnvBool("KOPF_STEALTH", false),
		"Suppress the per-keep-alive log lines")
	flag.BoolVar(&config.Autoclean, "autoclean", getEnvBool("KOPF_AUTOCLEAN", true),
		"Remove dead peer entries from the peering object")

	flag.StringVar(&config.MetricsAddr, "metrics-bind-address", getEnvString("METRICS_BIND_ADDRESS", ":8081"),
		"The address the metrics endpoint binds to, or 0 to disable")
	flag.StringVar(&config.ProbeAddr, "health-probe-bind-address", getEnvString("PROBE_BIND_ADDRESS", ":8082"),
		"The address the health probe endpoint binds to")

	flag.Parse()
	config.setFlags = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { config.setFlags[f.Name] = true })
	return config
}

// Settings converts the parsed flags into runtime peering settings.
func (c *Config) Settings() peering.Settings {
	settings := peering.DefaultSettings()
	if c.PeeringName != "" {
		settings.Name = c.PeeringName
	}
	settings.Namespace = c.PeeringNamespace
	settings.Priority = c.Priority
	if c.Lifetime > 0 {
		settings.Lifetime = time.Duration(c.Lifetime) * time.Second
	}
	settings.Standalone = c.Standalone
	settings.Mandatory = c.Mandatory
	settings.Stealth = c.Stealth
	settings.Autoclean = c.Autoclean
	return settings
}

// Overlay applies only the flags explicitly passed on the command line onto
// base, so a config file can provide defaults without losing flag overrides.
func (c *Config) Overlay(base peering.Settings) peering.Settings {
	for name := range c.setFlags {
		switch name {
		case "peering":
			base.Name = c.PeeringName
		case "namespace":
			base.Namespace = c.PeeringNamespace
		case "priority":
			base.Priority = c.Priority
		case "lifetime":
			base.Lifetime = time.Duration(c.Lifetime) * time.Second
		case "standalone":
			base.Standalone = c.Standalone
		case "peering-mandatory":
			base.Mandatory = c.Mandatory
		case "stealth":
			base.Stealth = c.Stealth
		case "autoclean":
			base.Autoclean = c.Autoclean
		}
	}
	return base
}

// getEnvString returns the value of an environment variable, or the provided default if not set.
func getEnvString(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// getEnvBool returns the value of an environment variable as a bool, or the provided default if not set.
// Valid true values are "true", "1", "yes" (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvInt64 returns the value of an environment variable as an int64, or the provided default
// if not set or not parseable.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}
