package peering

import (
	"fmt"
	"time"

	"k8s.io/utils/clock"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
)

// Identity is the opaque unique name of one operator process within a peering
// object. It is the key of the status entry and never changes once assigned.
type Identity string

// lastseenLayout is the serialization format of the lastseen timestamp:
// ISO-8601 without a timezone offset, microsecond precision.
const lastseenLayout = "2006-01-02T15:04:05.000000"

// lastseenParseLayouts are accepted on decode. Entries written by other
// implementations may carry an offset; it is discarded and the wall-clock
// value is taken as UTC, so comparisons are sensitive to clock skew between
// the writers.
var lastseenParseLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// Peer is one operator's entry parsed from (or about to be written to) the
// shared peering object. Deadline and IsDead are derived once at construction
// from the current wall clock and are never re-evaluated: a peer read as dead
// stays dead for the whole decision cycle.
type Peer struct {
	Identity Identity
	Priority int64
	Lastseen time.Time
	Lifetime time.Duration
	Deadline time.Time
	IsDead   bool
}

// ParsePeer builds a Peer from one status entry. Parsing is lenient: a
// missing lastseen defaults to now, a missing lifetime defaults to 60s, and
// anything unrecognized in the entry has already been dropped on decode.
func ParsePeer(identity Identity, spec kopfv1.PeerSpec, clk clock.PassiveClock) *Peer {
	lifetime := DefaultLifetime
	if spec.Lifetime > 0 {
		lifetime = time.Duration(spec.Lifetime) * time.Second
	}
	lastseen := clk.Now().UTC()
	if spec.Lastseen != "" {
		if parsed, err := parseLastseen(spec.Lastseen); err == nil {
			lastseen = parsed
		}
	}
	return newPeer(identity, spec.Priority, lastseen, lifetime, clk)
}

// NewPeer builds this operator's own entry, last seen now. A zero lifetime
// yields an already-dead peer, which is how an operator deletes its own entry
// on shutdown.
func NewPeer(identity Identity, priority int64, lifetime time.Duration, clk clock.PassiveClock) *Peer {
	return newPeer(identity, priority, clk.Now().UTC(), lifetime, clk)
}

func newPeer(identity Identity, priority int64, lastseen time.Time, lifetime time.Duration, clk clock.PassiveClock) *Peer {
	deadline := lastseen.Add(lifetime)
	return &Peer{
		Identity: identity,
		Priority: priority,
		Lastseen: lastseen,
		Lifetime: lifetime,
		Deadline: deadline,
		// Reaching the deadline exactly counts as dead.
		IsDead: !clk.Now().UTC().Before(deadline),
	}
}

// AsStatus returns the persisted representation of the peer. Only priority,
// lastseen and lifetime are serialized; the derived fields never are.
func (p *Peer) AsStatus() kopfv1.PeerSpec {
	return kopfv1.PeerSpec{
		Priority: p.Priority,
		Lastseen: p.Lastseen.Format(lastseenLayout),
		Lifetime: int64(p.Lifetime / time.Second),
	}
}

func (p *Peer) String() string {
	return fmt.Sprintf("%s (priority %d)", p.Identity, p.Priority)
}

func parseLastseen(raw string) (time.Time, error) {
	var firstErr error
	for _, layout := range lastseenParseLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return naiveUTC(parsed), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// naiveUTC drops the timezone of t and reinterprets its wall-clock value as
// UTC, mirroring how all peers serialize and compare timestamps.
func naiveUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func identities(peers []*Peer) []string {
	names := make([]string, 0, len(peers))
	for _, peer := range peers {
		names = append(names, peer.String())
	}
	return names
}
