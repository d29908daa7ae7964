package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"phased/pkg/daemon"
	"phased/pkg/version"
)

var (
	listenAddr = ""
)

// NewDaemonCommand .
func NewDaemonCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "daemon",
		Short:   "Run the phased daemon in the foreground",
		GroupID: gAdvanced,
		RunE: func(_ *cobra.Command, _ []string) error {
			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("phased daemon starting")
			return daemon.Run(configPath, listenAddr)
		},
	}

	f := cmd.Flags()

	f.StringVar(&listenAddr, "listen", "",
		"Listen address (host:port). Overrides the port from PHASED_PORT/PORT and the config file.")

	return cmd
}
