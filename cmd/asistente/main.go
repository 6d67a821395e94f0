package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castellanodev/asistente/cmd/asistente/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "asistente",
		Short: "Asistente personal de chat",
		Long:  "CLI tool for talking to the personal assistant without running the HTTP server",
	}

	rootCmd.AddCommand(commands.NewReplCmd())
	rootCmd.AddCommand(commands.NewExecCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
