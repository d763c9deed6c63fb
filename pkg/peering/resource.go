package peering

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/client"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
)

// Target identifies the one peering object this operator coordinates
// through: the cluster-wide ClusterKopfPeering when Namespace is empty, the
// namespaced KopfPeering otherwise.
type Target struct {
	Name      string
	Namespace string
}

// GuessKind returns the peering kind applying to the given namespace
// restriction: ClusterKopfPeering for cluster-wide operators, KopfPeering for
// namespaced ones.
func GuessKind(namespace string) schema.GroupVersionKind {
	if namespace == "" {
		return kopfv1.GroupVersion.WithKind("ClusterKopfPeering")
	}
	return kopfv1.GroupVersion.WithKind("KopfPeering")
}

// NewObject returns an empty object of the applicable kind with the target's
// name and namespace set, ready for Get/Patch calls.
func (t Target) NewObject() client.Object {
	if t.Namespace == "" {
		obj := &kopfv1.ClusterKopfPeering{}
		obj.Name = t.Name
		return obj
	}
	obj := &kopfv1.KopfPeering{}
	obj.Name = t.Name
	obj.Namespace = t.Namespace
	return obj
}

// ObjectKey returns the lookup key of the peering object.
func (t Target) ObjectKey() client.ObjectKey {
	return client.ObjectKey{Name: t.Name, Namespace: t.Namespace}
}

// Matches reports whether obj is the peering object this operator watches.
func (t Target) Matches(obj client.Object) bool {
	return obj.GetName() == t.Name && obj.GetNamespace() == t.Namespace
}
