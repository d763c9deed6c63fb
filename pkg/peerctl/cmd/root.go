// Package cmd implements the peerctl command line tool: freeze and resume
// all operators peered through a ClusterKopfPeering/KopfPeering object, and
// list the current peer set.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
	"github.com/tmcsantos/kopf/pkg/peering"
)

type Config struct {
	OutputWriter io.Writer
	// StoreFactory overrides how the peering store is built; nil uses the
	// kubeconfig-backed client.
	StoreFactory func(target peering.Target) (peering.Store, error)
}

type runtimeState struct {
	peeringName string
	namespace   string
	writer      io.Writer

	// newStore is swappable in tests.
	newStore func(target peering.Target) (peering.Store, error)
}

func DefaultConfig() Config {
	return Config{OutputWriter: os.Stdout}
}

func NewRootCommand(cfg Config) *cobra.Command {
	rt := &runtimeState{writer: cfg.OutputWriter, newStore: cfg.StoreFactory}
	if rt.newStore == nil {
		rt.newStore = buildStore
	}

	root := &cobra.Command{
		Use:          "peerctl",
		Short:        "Operator peering CLI",
		Long:         "Inspect and control operator peering: freeze all peered operators, resume them, or list the current peer set.",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if rt.writer == nil {
				rt.writer = os.Stdout
			}
		},
	}
	root.PersistentFlags().StringVar(&rt.peeringName, "peering", peering.DefaultName,
		"Name of the peering object")
	root.PersistentFlags().StringVarP(&rt.namespace, "namespace", "n", "",
		"Namespace of the peering object; empty targets the cluster-wide kind")

	root.AddCommand(
		newFreezeCommand(rt),
		newResumeCommand(rt),
		newListCommand(rt),
		newVersionCommand(rt),
	)
	return root
}

// target returns the peering object addressed by the persistent flags.
func (rt *runtimeState) target() peering.Target {
	return peering.Target{Name: rt.peeringName, Namespace: rt.namespace}
}

func (rt *runtimeState) store() (peering.Store, error) {
	return rt.newStore(rt.target())
}

func buildStore(target peering.Target) (peering.Store, error) {
	restCfg, err := ctrl.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading kubeconfig: %w", err)
	}
	scheme := runtime.NewScheme()
	if err := kopfv1.AddToScheme(scheme); err != nil {
		return nil, err
	}
	c, err := client.New(restCfg, client.Options{Scheme: scheme})
	if err != nil {
		return nil, fmt.Errorf("creating Kubernetes client: %w", err)
	}
	return peering.NewKubeStore(c, target), nil
}
