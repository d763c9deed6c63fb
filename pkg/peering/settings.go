package peering

import (
	"time"
)

const (
	// DefaultName is the peering object name used when none is configured.
	DefaultName = "default"
	// DefaultLifetime is how long a keep-alive entry stays valid without renewal.
	DefaultLifetime = 60 * time.Second
)

// Settings holds the peering configuration of one operator process.
type Settings struct {
	// Name of the ClusterKopfPeering/KopfPeering object to coordinate through.
	Name string
	// Namespace restricts coordination to the namespaced KopfPeering kind;
	// empty means cluster-wide via ClusterKopfPeering.
	Namespace string
	// Priority of this operator; higher-priority peers win arbitration.
	Priority int64
	// Lifetime after which an un-renewed keep-alive entry counts as dead.
	Lifetime time.Duration
	// Standalone disables peering entirely.
	Standalone bool
	// Mandatory makes a missing peering object a fatal startup error.
	Mandatory bool
	// Stealth suppresses the per-keep-alive log lines.
	Stealth bool
	// Autoclean enables removal of dead peer entries from the shared object.
	Autoclean bool
}

// DefaultSettings returns settings with the documented defaults applied.
func DefaultSettings() Settings {
	return Settings{
		Name:      DefaultName,
		Lifetime:  DefaultLifetime,
		Autoclean: true,
	}
}

// Target returns the peering object this operator coordinates through.
func (s Settings) Target() Target {
	return Target{Name: s.Name, Namespace: s.Namespace}
}
