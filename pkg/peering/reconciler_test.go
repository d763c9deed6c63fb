package peering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
)

func reconcileRequest(target Target) reconcile.Request {
	return reconcile.Request{NamespacedName: target.ObjectKey()}
}

func interceptorGetFails() interceptor.Funcs {
	return interceptor.Funcs{
		Get: func(context.Context, client.WithWatch, client.ObjectKey, client.Object, ...client.GetOption) error {
			return errors.New("apiserver unavailable")
		},
	}
}

func TestReconcileDrivesFreezeFromFetchedObject(t *testing.T) {
	target := Target{Name: DefaultName}
	obj := peeringObject(DefaultName, kopfv1.PeeringStatus{
		"rival": liveEntry(99),
	})

	c := fake.NewClientBuilder().WithScheme(testScheme(t)).WithObjects(obj).Build()
	freeze := NewToggle(false)
	processor, _ := newTestProcessor(newStubStore(true, nil), freeze, processorSettings())
	reconciler := NewReconciler(c, processor, target, nil)

	result, err := reconciler.Reconcile(context.Background(), reconcileRequest(target))
	require.NoError(t, err)
	assert.Equal(t, reconcile.Result{}, result)
	assert.True(t, freeze.IsOn(), "a fetched higher-priority peer must reach the processor")
}

func TestReconcileMissingObjectIsNotAnError(t *testing.T) {
	target := Target{Name: DefaultName}

	c := fake.NewClientBuilder().WithScheme(testScheme(t)).Build()
	freeze := NewToggle(false)
	store := newStubStore(true, nil)
	processor, logs := newTestProcessor(store, freeze, processorSettings())
	reconciler := NewReconciler(c, processor, target, nil)

	result, err := reconciler.Reconcile(context.Background(), reconcileRequest(target))
	require.NoError(t, err, "a deleted peering object is an expected condition")
	assert.Equal(t, reconcile.Result{}, result)
	assert.True(t, freeze.IsOff(), "no object, no arbitration")
	assert.Zero(t, store.patchCount())
	assert.Zero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestReconcileFetchErrorPropagates(t *testing.T) {
	target := Target{Name: DefaultName}

	c := fake.NewClientBuilder().
		WithScheme(testScheme(t)).
		WithInterceptorFuncs(interceptorGetFails()).
		Build()
	freeze := NewToggle(false)
	processor, _ := newTestProcessor(newStubStore(true, nil), freeze, processorSettings())
	reconciler := NewReconciler(c, processor, target, nil)

	_, err := reconciler.Reconcile(context.Background(), reconcileRequest(target))
	require.Error(t, err, "transient fetch failures must requeue via the controller")
	assert.True(t, freeze.IsOff())
}

func TestReconcileNamespacedTarget(t *testing.T) {
	target := Target{Name: "production", Namespace: "team-a"}
	obj := &kopfv1.KopfPeering{Status: kopfv1.PeeringStatus{
		"rival": liveEntry(99),
	}}
	obj.Name = "production"
	obj.Namespace = "team-a"

	c := fake.NewClientBuilder().WithScheme(testScheme(t)).WithObjects(obj).Build()
	freeze := NewToggle(false)
	settings := processorSettings()
	settings.Name = "production"
	settings.Namespace = "team-a"
	processor, _ := newTestProcessor(newStubStore(true, nil), freeze, settings)
	reconciler := NewReconciler(c, processor, target, nil)

	_, err := reconciler.Reconcile(context.Background(), reconcileRequest(target))
	require.NoError(t, err)
	assert.True(t, freeze.IsOn())
}
