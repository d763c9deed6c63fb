package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	kopfv1 "github.com/tmcsantos/kopf/api/v1"
	"github.com/tmcsantos/kopf/pkg/peering"
)

func newResumeCommand(rt *runtimeState) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Lift a manual freeze",
		Long:  "Remove the blocker peer entry written by `peerctl freeze`, letting the peered operators resume.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity := peering.Identity(id)
			if identity == "" {
				identity = peering.DetectOwnID(true)
			}

			store, err := rt.store()
			if err != nil {
				return err
			}

			// A nil entry deletes the key via the merge patch.
			found, err := store.PatchStatus(cmd.Context(), map[string]*kopfv1.PeerSpec{string(identity): nil})
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("peering object %q not found", rt.peeringName)
			}

			fmt.Fprintf(rt.writer, "Resumed peering %q, removed blocker %s\n", rt.peeringName, identity)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "",
		"Identity of the blocker peer to remove; defaults to the same stable identity freeze uses")
	return cmd
}
