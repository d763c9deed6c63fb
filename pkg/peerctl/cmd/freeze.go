package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
	"github.com/tmcsantos/kopf/pkg/peering"
)

const (
	// defaultFreezePriority outranks any normally configured operator, so a
	// manual freeze wins arbitration everywhere.
	defaultFreezePriority = 100
	// defaultFreezeLifetime bounds a forgotten freeze: the blocker entry dies
	// on its own after this many seconds.
	defaultFreezeLifetime = 600
)

func newFreezeCommand(rt *runtimeState) *cobra.Command {
	var (
		priority int64
		lifetime int64
		id       string
	)

	cmd := &cobra.Command{
		Use:   "freeze",
		Short: "Pause all peered operators",
		Long: "Announce a high-priority blocker peer into the peering object, making every " +
			"operator of lower priority freeze until the blocker expires or is resumed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity := peering.Identity(id)
			if identity == "" {
				identity = peering.DetectOwnID(true)
			}

			store, err := rt.store()
			if err != nil {
				return err
			}

			blocker := peering.NewPeer(identity, priority, time.Duration(lifetime)*time.Second, clock.RealClock{})
			spec := blocker.AsStatus()
			found, err := store.PatchStatus(cmd.Context(), map[string]*kopfv1.PeerSpec{string(identity): &spec})
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("peering object %q not found", rt.peeringName)
			}

			fmt.Fprintf(rt.writer, "Froze peering %q as %s (priority %d) for %ds\n",
				rt.peeringName, identity, priority, lifetime)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&priority, "priority", "p", defaultFreezePriority,
		"Priority of the blocker peer; must exceed every operator's priority to freeze them all")
	cmd.Flags().Int64VarP(&lifetime, "lifetime", "t", defaultFreezeLifetime,
		"Seconds until the blocker entry expires on its own")
	cmd.Flags().StringVar(&id, "id", "",
		"Identity of the blocker peer; defaults to a stable user@host identity")
	return cmd
}
