package peering

import (
	"context"

	"go.uber.org/zap"
	"k8s.io/utils/clock"
	"sigs.k8s.io/controller-runtime/pkg/client"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
	"github.com/tmcsantos/kopf/pkg/metrics"
)

// Processor consumes change notifications on the peering object (including
// the ones caused by this operator's own keep-alives), reconstructs the peer
// set and drives the freeze flag. It is the only writer of the Toggle.
//
// Events are handed in one at a time, so every decision is based on a single
// consistent snapshot of the peering status.
type Processor struct {
	store    Store
	identity Identity
	settings Settings
	freeze   *Toggle
	log      *zap.SugaredLogger
	clock    clock.PassiveClock
}

// NewProcessor creates a peering event processor writing to the given Toggle.
func NewProcessor(store Store, identity Identity, settings Settings, freeze *Toggle, log *zap.SugaredLogger) *Processor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Processor{
		store:    store,
		identity: identity,
		settings: settings,
		freeze:   freeze,
		log:      log,
		clock:    clock.RealClock{},
	}
}

// WithClock overrides the wall clock, for tests.
func (p *Processor) WithClock(c clock.PassiveClock) *Processor {
	p.clock = c
	return p
}

// Freeze returns the read-only view of the freeze flag for handler dispatch.
func (p *Processor) Freeze() FreezeChecker {
	return p.freeze
}

// ProcessEvent handles one update of the peering object.
//
// Dead peers are removed best-effort in a single batched patch; they are
// excluded from the decision regardless of whether that patch succeeds. The
// decision itself is a priority arbitration: freeze while a strictly
// higher-priority peer is alive, freeze (with a conflict warning) while an
// equal-priority peer is alive, resume otherwise. Every invocation flips the
// flag at most once; flipping to the current state is a silent no-op.
func (p *Processor) ProcessEvent(ctx context.Context, obj client.Object) {
	// Not the peering object this operator coordinates through.
	if !p.settings.Target().Matches(obj) {
		return
	}
	metrics.EventsProcessed.Inc()

	status, _ := StatusOf(obj)
	peers := make([]*Peer, 0, len(status))
	for id, spec := range status {
		peers = append(peers, ParsePeer(Identity(id), spec, p.clock))
	}

	var dead, prio, same []*Peer
	for _, peer := range peers {
		switch {
		case peer.IsDead:
			dead = append(dead, peer)
		case peer.Identity == p.identity:
			// own entry, not a peer to arbitrate against
		default:
			if peer.Priority > p.settings.Priority {
				prio = append(prio, peer)
			} else if peer.Priority == p.settings.Priority {
				same = append(same, peer)
			}
		}
	}

	if p.settings.Autoclean && len(dead) > 0 {
		p.clean(ctx, dead)
	}

	switch {
	case len(prio) > 0:
		if p.freeze.IsOff() {
			p.log.Infow("Freezing operations in favour of higher-priority operators",
				"peers", identities(prio))
			p.freeze.TurnOn()
			metrics.FreezeState.Set(1)
		}
	case len(same) > 0:
		if p.freeze.IsOff() {
			// Neither side can tell which of the equal-priority contenders
			// should survive, so all of them freeze, including self.
			p.log.Warnw("Possibly conflicting operators with the same priority, freezing all of them including self",
				"peers", identities(same), "priority", p.settings.Priority)
			p.freeze.TurnOn()
			metrics.PriorityConflicts.Inc()
			metrics.FreezeState.Set(1)
		}
	default:
		if p.freeze.IsOn() {
			p.log.Infow("Resuming operations after the freeze, conflicting operators are gone")
			p.freeze.TurnOff()
			metrics.FreezeState.Set(0)
		}
	}
}

// clean removes all dead peers in one batched patch. Purely housekeeping:
// failures are logged and dropped, the freeze decision does not depend on it.
func (p *Processor) clean(ctx context.Context, dead []*Peer) {
	entries := make(map[string]*kopfv1.PeerSpec, len(dead))
	for _, peer := range dead {
		entries[string(peer.Identity)] = nil
	}
	if _, err := p.store.PatchStatus(ctx, entries); err != nil {
		p.log.Errorw("Failed to remove dead peers, ignoring", "error", err, "peers", identities(dead))
		return
	}
	p.log.Debugw("Removed dead peers", "peers", identities(dead))
	metrics.DeadPeersCleaned.Add(float64(len(dead)))
}
