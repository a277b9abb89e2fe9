package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/l-sayginsoy/drk-display/cmd/display/commands"
)

// @title DRK Melm Display API
// @version 1.0
// @description Facility information display and editor API for the DRK Melm house.

// @host localhost:8080
// @BasePath /api/v1

func main() {
	rootCmd := &cobra.Command{
		Use:   "drk-display",
		Short: "DRK Melm facility display server",
		Long:  `drk-display serves the facility information screen of the DRK Melm house together with the admin editor that maintains its content.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewContentCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
