package peering

import (
	"context"
	"encoding/json"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
)

// Store is the sole I/O boundary of the peering protocol: one read and one
// patch primitive against the shared peering object. An absent object is
// reported via the found flag, never as an error, since the object being
// deleted at runtime is an expected condition.
type Store interface {
	// Get reads the current peer entries. found is false when the peering
	// object does not exist.
	Get(ctx context.Context) (status kopfv1.PeeringStatus, found bool, err error)

	// PatchStatus upserts or deletes entries in one request: a non-nil value
	// writes the entry, a nil value deletes it. found is false when the
	// peering object does not exist, in which case nothing was written.
	PatchStatus(ctx context.Context, entries map[string]*kopfv1.PeerSpec) (found bool, err error)
}

// kubeStore implements Store over a controller-runtime client with a JSON
// merge patch, so nil entries translate to key deletion on the server side.
type kubeStore struct {
	client client.Client
	target Target
}

// NewKubeStore returns a Store bound to the given peering target.
func NewKubeStore(c client.Client, target Target) Store {
	return &kubeStore{client: c, target: target}
}

func (s *kubeStore) Get(ctx context.Context) (kopfv1.PeeringStatus, bool, error) {
	obj := s.target.NewObject()
	if err := s.client.Get(ctx, s.target.ObjectKey(), obj); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading peering object %q: %w", s.target.Name, err)
	}
	status, _ := StatusOf(obj)
	return status, true, nil
}

func (s *kubeStore) PatchStatus(ctx context.Context, entries map[string]*kopfv1.PeerSpec) (bool, error) {
	payload, err := json.Marshal(map[string]any{"status": entries})
	if err != nil {
		return false, fmt.Errorf("encoding peering patch: %w", err)
	}
	obj := s.target.NewObject()
	if err := s.client.Patch(ctx, obj, client.RawPatch(types.MergePatchType, payload)); err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("patching peering object %q: %w", s.target.Name, err)
	}
	return true, nil
}

// StatusOf extracts the peer entries from a peering object of either kind.
func StatusOf(obj client.Object) (kopfv1.PeeringStatus, bool) {
	switch peering := obj.(type) {
	case *kopfv1.ClusterKopfPeering:
		return peering.Status, true
	case *kopfv1.KopfPeering:
		return peering.Status, true
	default:
		return nil, false
	}
}
