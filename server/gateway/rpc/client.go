package rpc

import (
	"fmt"
	"log/slog"

	pb "mydarts/proto"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// NewGameClient opens a lazy connection to the game service.
func NewGameClient(addr string) (pb.GameServiceClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("connect game-service at %s: %w", addr, err)
	}
	slog.Info("game service client ready", "addr", addr)
	return pb.NewGameServiceClient(conn), conn, nil
}
