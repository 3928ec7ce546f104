// Package client provides test commands for the bestiary gRPC service
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	v1alpha1 "github.com/KirkDiggler/rpg-bestiary/internal/handlers/bestiary/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the bestiary API",
	Long:  `Client commands exercise a running bestiary server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(getMonsterCmd)
	ClientCmd.AddCommand(searchCmd)
	ClientCmd.AddCommand(listTemplatesCmd)
	ClientCmd.AddCommand(applyCmd)
	ClientCmd.AddCommand(rollHPCmd)
	ClientCmd.AddCommand(rollAttackCmd)
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

// createBestiaryClient creates a bestiary service client
func createBestiaryClient() (v1alpha1.BestiaryServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewBestiaryServiceClient(conn), cleanup, nil
}

// invoke sends fields to method and prints the response as JSON
func invoke(cmd *cobra.Command, method string, fields map[string]interface{}) error {
	req, err := structpb.NewStruct(fields)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	client, cleanup, err := createBestiaryClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

// withSource adds the source field when the flag was given
func withSource(fields map[string]interface{}, source string) map[string]interface{} {
	if source != "" {
		fields["source"] = source
	}
	return fields
}
