package peering

import (
	"context"

	"go.uber.org/zap"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/predicate"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"
)

// Reconciler routes change notifications of the peering object into the
// Processor. It runs with a single worker, so snapshots are processed
// strictly one at a time in arrival order, and is name-filtered so that
// unrelated peering objects in the same cluster never reach the processor.
type Reconciler struct {
	client    client.Client
	processor *Processor
	target    Target
	log       *zap.SugaredLogger
}

// NewReconciler creates the peering watch consumer.
func NewReconciler(c client.Client, processor *Processor, target Target, log *zap.SugaredLogger) *Reconciler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Reconciler{client: c, processor: processor, target: target, log: log}
}

// Reconcile fetches the current peering object and hands it to the
// processor. A deleted object is an expected condition and never an error;
// the freeze state simply stays as it is until the object reappears.
func (r *Reconciler) Reconcile(ctx context.Context, req reconcile.Request) (reconcile.Result, error) {
	obj := r.target.NewObject()
	if err := r.client.Get(ctx, req.NamespacedName, obj); err != nil {
		if apierrors.IsNotFound(err) {
			r.log.Debugw("Peering object is gone", "name", req.Name)
			return reconcile.Result{}, nil
		}
		r.log.Errorw("Failed to fetch peering object", "error", err, "name", req.Name)
		return reconcile.Result{}, err
	}

	r.processor.ProcessEvent(ctx, obj)
	return reconcile.Result{}, nil
}

// SetupWithManager registers the reconciler for the applicable peering kind.
func (r *Reconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(r.target.NewObject()).
		WithEventFilter(predicate.NewPredicateFuncs(r.target.Matches)).
		WithOptions(controller.Options{MaxConcurrentReconciles: 1}).
		Named("peering").
		Complete(r)
}
