package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("streamline: failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "streamline",
		Short: "Evenly-spaced geodesic streamline placement",
	}
	root.AddCommand(newGenerateCmd())
	return root
}
