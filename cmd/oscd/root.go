package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "oscd",
	Short: "oscd - Open Sound Control daemon and client",
	Long: `oscd serves the OSC 1.0 message subset over UDP, dispatching inbound
messages to built-in handlers and answering back to the sender. The send
subcommand provides a matching one-shot client.`,
	Version: version,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("oscd version %s (commit: %s, built: %s)\n", version, commit, date))
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sendCmd)
}
