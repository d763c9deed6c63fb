package main

import (
	"os"

	peerctlcmd "github.com/tmcsantos/kopf/pkg/peerctl/cmd"
)

func main() {
	root := peerctlcmd.NewRootCommand(peerctlcmd.DefaultConfig())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
