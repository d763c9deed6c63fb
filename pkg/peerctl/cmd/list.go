package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/utils/clock"

	"github.com/tmcsantos/kopf/pkg/peering"
)

func newListCommand(rt *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the current peer set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := rt.store()
			if err != nil {
				return err
			}

			status, found, err := store.Get(cmd.Context())
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("peering object %q not found", rt.peeringName)
			}

			clk := clock.RealClock{}
			peers := make([]*peering.Peer, 0, len(status))
			for id, spec := range status {
				peers = append(peers, peering.ParsePeer(peering.Identity(id), spec, clk))
			}
			sort.Slice(peers, func(i, j int) bool { return peers[i].Identity < peers[j].Identity })

			tw := tabwriter.NewWriter(rt.writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "IDENTITY\tPRIORITY\tLASTSEEN\tLIFETIME\tSTATE")
			for _, peer := range peers {
				state := "live"
				if peer.IsDead {
					state = "dead"
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
					peer.Identity, peer.Priority,
					peer.Lastseen.Format(time.RFC3339), peer.Lifetime, state)
			}
			return tw.Flush()
		},
	}
}
