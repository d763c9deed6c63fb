// Package cli defines the flag configuration and parsing for the peering
// operator binary, including flags for the peering target, priority,
// lifetime, metrics and health probe endpoints. Every flag falls back to an
// environment variable so the binary is configurable from a pod spec without
// arguments.
package cli
