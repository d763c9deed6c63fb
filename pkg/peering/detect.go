package peering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Presence is the result of the startup check for the peering object.
type Presence int

const (
	// PresenceDisabled means peering is explicitly disabled by configuration.
	PresenceDisabled Presence = iota
	// PresenceAbsent means the peering object does not exist and peering is
	// optional; the operator falls back to standalone mode.
	PresenceAbsent
	// PresencePresent means the peering object exists and peering is active.
	PresencePresent
)

// DetectPresence decides once at startup whether peering is active. It issues
// at most one read of the peering object and never retries: a missing object
// is fatal when peering is mandatory, otherwise a logged fallback to
// standalone mode.
func DetectPresence(ctx context.Context, store Store, settings Settings, log *zap.SugaredLogger) (Presence, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if settings.Standalone {
		return PresenceDisabled, nil
	}

	_, found, err := store.Get(ctx)
	if err != nil {
		return PresenceAbsent, err
	}
	if !found {
		if settings.Mandatory {
			return PresenceAbsent, fmt.Errorf("the mandatory peering %q was not found", settings.Name)
		}
		log.Warnw("Peering object not found, falling back to the standalone mode",
			"peering", settings.Name, "namespace", settings.Namespace)
		return PresenceAbsent, nil
	}
	return PresencePresent, nil
}
