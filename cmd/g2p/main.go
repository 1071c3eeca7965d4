package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/g2p/internal/cli"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Config file and environment fill in flags not given on the command line
	flags.LoadFromViper()
	log := cli.NewLogger(flags.LogLevel, flags.LogFormat)

	runner, err := cli.NewRunner(flags, os.Stdout, log)
	if err != nil {
		return fmt.Errorf("failed to initialize converter: %w", err)
	}

	if err := runner.Run(cmd.Context(), args); err != nil {
		if errors.Is(err, cli.ErrNoInput) {
			cmd.Usage()
		}
		return err
	}
	return nil
}
