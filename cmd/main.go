package main

import (
	stdlog "log"

	"github.com/go-logr/zapr"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
	"github.com/tmcsantos/kopf/pkg/cli"
	"github.com/tmcsantos/kopf/pkg/config"
	"github.com/tmcsantos/kopf/pkg/peering"
	"github.com/tmcsantos/kopf/pkg/system"
	"github.com/tmcsantos/kopf/pkg/version"
)

func main() {
	flags := cli.Parse()

	zl, err := system.BuildLogger(flags.Debug)
	if err != nil {
		stdlog.Fatalf("failed to set up logger: %v", err)
	}
	// Ensure controller-runtime uses our zap logger to avoid its default stacktrace output
	ctrl.SetLogger(zapr.NewLogger(zl))
	log := zl.Sugar()
	log.With("version", version.Version).Info("Starting peering operator")

	settings := flags.Settings()
	if flags.ConfigPath != "" {
		fileCfg, err := config.Load(flags.ConfigPath)
		if err != nil {
			log.Fatalf("Error loading config for peering operator: %v", err)
		}
		// File values form the base; flags given explicitly still win.
		settings = flags.Overlay(fileCfg.Peering.Settings())
	}
	if flags.Debug {
		log.Infof("%#v", settings)
	}

	identity := peering.DetectOwnID(false)
	log.Infow("Detected own peering identity", "identity", identity)

	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(kopfv1.AddToScheme(scheme))

	restCfg, err := ctrl.GetConfig()
	if err != nil {
		log.Fatalf("Error loading kubeconfig: %v", err)
	}

	ctx := ctrl.SetupSignalHandler()
	target := settings.Target()

	// The presence check runs before the manager cache exists, so it uses a
	// direct client.
	directClient, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		log.Fatalf("Error creating Kubernetes client: %v", err)
	}
	presence, err := peering.DetectPresence(ctx, peering.NewKubeStore(directClient, target), settings, log)
	if err != nil {
		log.Fatalf("Peering presence detection failed: %v", err)
	}

	mgr, err := ctrl.NewManager(restCfg, ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsserver.Options{BindAddress: flags.MetricsAddr},
		HealthProbeBindAddress: flags.ProbeAddr,
		LeaderElection:         false,
	})
	if err != nil {
		log.Fatalf("Error creating manager: %v", err)
	}
	if err := mgr.AddHealthzCheck("ping", healthz.Ping); err != nil {
		log.Fatalf("Error adding healthz check: %v", err)
	}
	if err := mgr.AddReadyzCheck("ping", healthz.Ping); err != nil {
		log.Fatalf("Error adding readyz check: %v", err)
	}

	switch presence {
	case peering.PresenceDisabled:
		log.Info("Peering is explicitly disabled, running standalone")
	case peering.PresenceAbsent:
		log.Info("Running standalone, no peering object to coordinate through")
	case peering.PresencePresent:
		store := peering.NewKubeStore(mgr.GetClient(), target)
		if err := mgr.Add(peering.NewAnnouncer(store, identity, settings, log)); err != nil {
			log.Fatalf("Error adding keep-alive announcer: %v", err)
		}

		// The freeze flag is what an embedding reactor consults (via
		// processor.Freeze()) before dispatching resource handlers.
		freeze := peering.NewToggle(false)
		processor := peering.NewProcessor(store, identity, settings, freeze, log)
		if err := peering.NewReconciler(mgr.GetClient(), processor, target, log).SetupWithManager(mgr); err != nil {
			log.Fatalf("Error setting up peering reconciler: %v", err)
		}
		log.Infow("Peering is active", append(system.NamespacedFields(settings.Name, settings.Namespace),
			"priority", settings.Priority, "lifetime", settings.Lifetime)...)
	}

	if err := mgr.Start(ctx); err != nil {
		log.Fatalf("Manager exited with error: %v", err)
	}
}
