// Package main is the entry point for the glamour gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/glamour-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "glamour-api",
	Short: "Glamour API gRPC Server",
	Long: `Glamour API tracks the appearance of actors, reconciles it against what the
host reports and applies stored designs on top.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(codecCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
