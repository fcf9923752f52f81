package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/hanoi/internal/cli"
	"github.com/aretw0/hanoi/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "hanoi",
	Short:         "hanoi is the Tower of Hanoi puzzle for the terminal",
	Long:          `hanoi sets up three poles, stacks the disks on the first one and prints the title at the cursor, falling back to the alternate screen when the cursor cannot be found.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		sigCtx := cli.NewSignalContext(cmd.Context())
		defer sigCtx.Cancel()

		s, err := cli.RunSession(sigCtx, cli.RunOptions{
			ConfigPath: configPath,
			Debug:      debug,
		})
		if err != nil {
			return err
		}
		s.Close()

		if sigCtx.Interrupted() {
			return errInterrupted
		}
		return nil
	},
}

// errInterrupted marks a session stopped by SIGINT or SIGTERM.
var errInterrupted = errors.New("interrupted")

// exitCode maps a command error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errInterrupted):
		return 130 // 128 + SIGINT, as shells report it
	default:
		return 1
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInterrupted) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the hanoi config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
