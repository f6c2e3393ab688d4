// Command wordrighter rewrites chat text against a wordbook of phrase
// replacements. It serves a websocket chat with the bot in it, runs the
// bot on a terminal, or corrects text in one shot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kittclouds/wordrighter/internal/config"
)

// Version info
const Version = "0.3.0"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "wordrighter",
		Short:         "Rewrites text by swapping wordbook phrases for their standins",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath,
		"config file; created with defaults when missing, empty to skip")

	load := func() (*app, error) { return loadApp(configPath) }

	root.AddCommand(newServeCmd(load))
	root.AddCommand(newReplCmd(load))
	root.AddCommand(newCorrectCmd(load))
	root.AddCommand(newWordbookCmd(load))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wordrighter:", err)
		os.Exit(1)
	}
}
