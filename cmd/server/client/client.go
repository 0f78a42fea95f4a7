// Package client provides commands that call a running Glamour API server
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/glamour-api/internal/handlers/glamour/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Glamour API",
	Long:  `Client commands call a running Glamour API server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Actor commands
	ClientCmd.AddCommand(reportCmd)
	ClientCmd.AddCommand(untrackCmd)
	ClientCmd.AddCommand(stateCmd)
	ClientCmd.AddCommand(listActorsCmd)
	ClientCmd.AddCommand(lockCmd)
	ClientCmd.AddCommand(releaseCmd)
	ClientCmd.AddCommand(editCmd)

	// Design commands
	ClientCmd.AddCommand(applyCmd)
	ClientCmd.AddCommand(saveDesignCmd)
	ClientCmd.AddCommand(captureCmd)
	ClientCmd.AddCommand(getDesignCmd)
	ClientCmd.AddCommand(listDesignsCmd)
	ClientCmd.AddCommand(deleteDesignCmd)
	ClientCmd.AddCommand(bindCmd)
	ClientCmd.AddCommand(unbindCmd)
	ClientCmd.AddCommand(listBindingsCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createStateClient creates a state service client
func createStateClient() (*v1alpha1.Client, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
