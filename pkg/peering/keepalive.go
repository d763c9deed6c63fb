package peering

import (
	"context"
	"time"

	"go.uber.org/zap"
	"k8s.io/utils/clock"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
	"github.com/tmcsantos/kopf/pkg/metrics"
	"github.com/tmcsantos/kopf/pkg/system"
)

// finalTouchTimeout bounds the self-removal write during shutdown so a hung
// apiserver cannot block process teardown indefinitely.
const finalTouchTimeout = 10 * time.Second

// Announcer is the keep-alive loop of one operator: it periodically writes
// this operator's own peer entry into the shared peering object and, on
// shutdown, best-effort marks itself dead so the peers do not wait a full
// lifetime to notice.
//
// It implements manager.Runnable and is started once peering is detected as
// present.
type Announcer struct {
	store    Store
	identity Identity
	settings Settings
	log      *zap.SugaredLogger
	clock    clock.Clock
}

// NewAnnouncer creates a keep-alive announcer for the given identity.
func NewAnnouncer(store Store, identity Identity, settings Settings, log *zap.SugaredLogger) *Announcer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Announcer{
		store:    store,
		identity: identity,
		settings: settings,
		log:      log,
		clock:    clock.RealClock{},
	}
}

// WithClock overrides the wall clock, for tests.
func (a *Announcer) WithClock(c clock.Clock) *Announcer {
	a.clock = c
	return a
}

// Start runs the keep-alive loop until ctx is cancelled: write own entry,
// sleep slightly less than the lifetime so a renewal always lands before the
// previous entry expires, with margin for the patch request itself.
//
// On cancellation exactly one more write is attempted, with lifetime 0, which
// deletes the own entry. That write runs on a detached context so the
// surrounding teardown cannot interrupt it, and any failure is logged and
// swallowed.
func (a *Announcer) Start(ctx context.Context) error {
	a.log.Infow("Starting peering keep-alive",
		append(system.NamespacedFields(a.settings.Name, a.settings.Namespace), "identity", a.identity)...)

	interval := keepaliveInterval(a.settings.Lifetime)
	for {
		if err := a.TouchOnce(ctx, nil); err != nil && ctx.Err() == nil {
			// Keep the loop alive across transient apiserver failures; the
			// entry stays valid until its previous deadline anyway.
			a.log.Errorw("Keep-alive write failed, retrying next interval", "error", err)
		}

		select {
		case <-ctx.Done():
			a.markSelfDead(ctx)
			return nil
		case <-a.clock.After(interval):
		}
	}
}

// TouchOnce writes this operator's peer entry once. A nil lifetime uses the
// configured one; a zero lifetime produces a dead peer, which deletes the
// entry instead of writing fields. A missing peering object is a logged
// no-op, not an error.
func (a *Announcer) TouchOnce(ctx context.Context, lifetime *time.Duration) error {
	effective := a.settings.Lifetime
	if lifetime != nil {
		effective = *lifetime
	}
	peer := NewPeer(a.identity, a.settings.Priority, effective, a.clock)

	var entry *kopfv1.PeerSpec
	if !peer.IsDead {
		spec := peer.AsStatus()
		entry = &spec
	}

	found, err := a.store.PatchStatus(ctx, map[string]*kopfv1.PeerSpec{string(a.identity): entry})
	if err != nil {
		metrics.KeepalivesSent.WithLabelValues(a.settings.Name, "error").Inc()
		return err
	}

	result := "ok"
	if !found {
		result = "not found"
	}
	if !a.settings.Stealth || !found {
		a.log.Debugw("Keep-alive",
			append(system.NamespacedFields(a.settings.Name, a.settings.Namespace), "result", result)...)
	}
	metrics.KeepalivesSent.WithLabelValues(a.settings.Name, result).Inc()
	return nil
}

// markSelfDead is the unconditional finalization step of the loop: one
// shielded write with lifetime 0. Errors are contained here and never reach
// the shutdown path.
func (a *Announcer) markSelfDead(parent context.Context) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), finalTouchTimeout)
	defer cancel()

	zero := time.Duration(0)
	if err := a.TouchOnce(ctx, &zero); err != nil {
		a.log.Errorw("Couldn't remove self from the peering, ignoring", "error", err)
	}
}

// keepaliveInterval is slightly less than the lifetime, floored at one
// second, to keep renewals landing before the previous deadline without
// flooding the apiserver.
func keepaliveInterval(lifetime time.Duration) time.Duration {
	seconds := int64(lifetime/time.Second) - 10
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}
