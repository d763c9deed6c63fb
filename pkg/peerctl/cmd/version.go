package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmcsantos/kopf/pkg/version"
)

func newVersionCommand(rt *runtimeState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the peerctl version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintln(rt.writer, version.String())
			return err
		},
	}
}
