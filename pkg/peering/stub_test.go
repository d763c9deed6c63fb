package peering

import (
	"context"
	"sync"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
)

// stubStore is an in-memory Store recording every call, used instead of a
// live apiserver in the unit tests.
type stubStore struct {
	mu       sync.Mutex
	status   kopfv1.PeeringStatus
	found    bool
	getErr   error
	patchErr error

	gets    int
	patches []map[string]*kopfv1.PeerSpec
}

func newStubStore(found bool, status kopfv1.PeeringStatus) *stubStore {
	if status == nil {
		status = kopfv1.PeeringStatus{}
	}
	return &stubStore{found: found, status: status}
}

func (s *stubStore) Get(context.Context) (kopfv1.PeeringStatus, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	if !s.found {
		return nil, false, nil
	}
	out := make(kopfv1.PeeringStatus, len(s.status))
	for k, v := range s.status {
		out[k] = v
	}
	return out, true, nil
}

func (s *stubStore) PatchStatus(_ context.Context, entries map[string]*kopfv1.PeerSpec) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recorded := make(map[string]*kopfv1.PeerSpec, len(entries))
	for k, v := range entries {
		recorded[k] = v
	}
	s.patches = append(s.patches, recorded)
	if s.patchErr != nil {
		return false, s.patchErr
	}
	if !s.found {
		return false, nil
	}
	for k, v := range entries {
		if v == nil {
			delete(s.status, k)
		} else {
			s.status[k] = *v
		}
	}
	return true, nil
}

func (s *stubStore) patchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.patches)
}

func (s *stubStore) lastPatch() map[string]*kopfv1.PeerSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.patches) == 0 {
		return nil
	}
	return s.patches[len(s.patches)-1]
}
