package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/worldmind/worldmind/proto"
)

// GRPCOracle implements Oracle by calling the LLM sidecar service via gRPC.
type GRPCOracle struct {
	conn   *grpc.ClientConn
	client pb.LLMServiceClient
}

// NewGRPCOracle creates a gRPC oracle. grpc.NewClient dials lazily; the
// connection is established on the first RPC.
func NewGRPCOracle(addr string) (*GRPCOracle, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCOracle{
		conn:   conn,
		client: pb.NewLLMServiceClient(conn),
	}, nil
}

// Complete sends the request to the sidecar and returns its completion text.
func (o *GRPCOracle) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := o.client.Complete(ctx, &pb.CompleteRequest{
		System:    req.System,
		User:      req.User,
		MaxTokens: int32(req.MaxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("gRPC Complete call failed: %w", err)
	}
	if resp.Error != "" {
		return "", fmt.Errorf("LLM service error: %s", resp.Error)
	}
	if resp.Text == "" {
		return "", errors.New("LLM service returned empty completion")
	}
	return resp.Text, nil
}

// Close releases the gRPC connection.
func (o *GRPCOracle) Close() error {
	return o.conn.Close()
}
