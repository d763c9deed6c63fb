package peering

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	clocktesting "k8s.io/utils/clock/testing"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
	"github.com/tmcsantos/kopf/pkg/system"
)

const selfIdentity = "self@host/20260829120000/abc"

func processorSettings() Settings {
	settings := DefaultSettings()
	settings.Priority = 10
	return settings
}

// liveEntry returns a status entry renewed just now.
func liveEntry(priority int64) kopfv1.PeerSpec {
	return kopfv1.PeerSpec{
		Priority: priority,
		Lastseen: testNow.Format("2006-01-02T15:04:05.000000"),
		Lifetime: 60,
	}
}

// deadEntry returns a status entry whose deadline has long passed.
func deadEntry(priority int64) kopfv1.PeerSpec {
	return kopfv1.PeerSpec{
		Priority: priority,
		Lastseen: testNow.Add(-10 * time.Minute).Format("2006-01-02T15:04:05.000000"),
		Lifetime: 60,
	}
}

func peeringObject(name string, status kopfv1.PeeringStatus) *kopfv1.ClusterKopfPeering {
	obj := &kopfv1.ClusterKopfPeering{Status: status}
	obj.Name = name
	return obj
}

func newTestProcessor(store Store, freeze *Toggle, settings Settings) (*Processor, *observer.ObservedLogs) {
	log, logs := system.NewObservedLogger()
	processor := NewProcessor(store, selfIdentity, settings, freeze, log).
		WithClock(clocktesting.NewFakeClock(testNow))
	return processor, logs
}

func TestProcessorIgnoresForeignObjects(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(false)
	processor, logs := newTestProcessor(store, freeze, processorSettings())

	processor.ProcessEvent(context.Background(), peeringObject("some-other-peering", kopfv1.PeeringStatus{
		"rival": liveEntry(99),
	}))

	assert.True(t, freeze.IsOff())
	assert.Zero(t, store.patchCount())
	assert.Zero(t, logs.Len())
}

func TestProcessorFreezesForHigherPriorityPeer(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(false)
	processor, logs := newTestProcessor(store, freeze, processorSettings())

	obj := peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
		"rival-a":    liveEntry(20),
		"rival-b":    liveEntry(30),
	})
	processor.ProcessEvent(context.Background(), obj)

	assert.True(t, freeze.IsOn())
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len(),
		"one freeze transition regardless of how many higher-priority peers exist")

	// Idempotence: an unchanged peer set flips nothing and logs nothing new.
	processor.ProcessEvent(context.Background(), obj)
	assert.True(t, freeze.IsOn())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())
}

func TestProcessorWarnsOnSamePriorityConflict(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(false)
	processor, logs := newTestProcessor(store, freeze, processorSettings())

	processor.ProcessEvent(context.Background(), peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
		"twin":       liveEntry(10),
	}))

	assert.True(t, freeze.IsOn())
	warnings := logs.FilterLevelExact(zapcore.WarnLevel)
	require.Equal(t, 1, warnings.Len())
	assert.Contains(t, warnings.All()[0].ContextMap()["peers"], "twin (priority 10)")
}

func TestProcessorHigherPriorityWinsOverSamePriority(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(false)
	processor, logs := newTestProcessor(store, freeze, processorSettings())

	processor.ProcessEvent(context.Background(), peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
		"twin":       liveEntry(10),
		"boss":       liveEntry(20),
	}))

	// The higher-priority peer decides the outcome; no conflict warning.
	assert.True(t, freeze.IsOn())
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())
}

func TestProcessorResumesWhenPeersAreGone(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(true)
	processor, logs := newTestProcessor(store, freeze, processorSettings())

	obj := peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
		"minion":     liveEntry(5),
	})
	processor.ProcessEvent(context.Background(), obj)

	assert.True(t, freeze.IsOff(), "lower-priority peers never freeze us")
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())

	processor.ProcessEvent(context.Background(), obj)
	assert.True(t, freeze.IsOff())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len(), "no duplicate resume log")
}

func TestProcessorStaysOffWithoutRelevantPeers(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(false)
	processor, logs := newTestProcessor(store, freeze, processorSettings())

	processor.ProcessEvent(context.Background(), peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
		"minion":     liveEntry(5),
	}))

	assert.True(t, freeze.IsOff())
	assert.Zero(t, logs.Len())
}

func TestProcessorDeadPeersDoNotFreeze(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(false)
	settings := processorSettings()
	settings.Autoclean = false
	processor, _ := newTestProcessor(store, freeze, settings)

	processor.ProcessEvent(context.Background(), peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
		"ghost":      deadEntry(99),
	}))

	assert.True(t, freeze.IsOff(), "a dead peer has no say regardless of its priority")
	assert.Zero(t, store.patchCount(), "autoclean disabled must not patch")
}

func TestProcessorCleansDeadPeersInOneBatch(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(false)
	processor, _ := newTestProcessor(store, freeze, processorSettings())

	processor.ProcessEvent(context.Background(), peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
		"ghost-a":    deadEntry(1),
		"ghost-b":    deadEntry(2),
		"ghost-c":    deadEntry(3),
	}))

	require.Equal(t, 1, store.patchCount(), "all dead peers removed in a single patch")
	patch := store.lastPatch()
	require.Len(t, patch, 3)
	for _, id := range []string{"ghost-a", "ghost-b", "ghost-c"} {
		require.Contains(t, patch, id)
		assert.Nil(t, patch[id])
	}
}

func TestProcessorCleanupFailureDoesNotAffectDecision(t *testing.T) {
	store := newStubStore(true, nil)
	store.patchErr = errors.New("conflict")
	freeze := NewToggle(true)
	processor, _ := newTestProcessor(store, freeze, processorSettings())

	processor.ProcessEvent(context.Background(), peeringObject(DefaultName, kopfv1.PeeringStatus{
		"ghost": deadEntry(99),
	}))

	// Dead peers are excluded from the decision whether or not the cleanup
	// patch went through, so the freeze lifts.
	assert.True(t, freeze.IsOff())
}

func TestProcessorSelfEntryIsNotAPeer(t *testing.T) {
	store := newStubStore(true, nil)
	freeze := NewToggle(true)
	processor, _ := newTestProcessor(store, freeze, processorSettings())

	processor.ProcessEvent(context.Background(), peeringObject(DefaultName, kopfv1.PeeringStatus{
		selfIdentity: liveEntry(10),
	}))

	assert.True(t, freeze.IsOff(), "own entry alone must not keep the freeze on")
}
