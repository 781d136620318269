// Package main is the entry point for the boathouse-cli application.
// It initializes the root command and registers the profile and session
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/lmrc/boathouse/cmd/boathouse-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "boathouse-cli",
		Short: "Club configuration tool for the boathouse booking service",
		Long: `boathouse-cli manages club profile files for the booking service.
Generate a starter profile from a club name, validate an edited profile
before deploying it, and preview how a session window will be displayed.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitProfileCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize profile commands: %w", err)
	}

	if err := commands.InitSessionCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize session commands: %w", err)
	}

	return nil
}
