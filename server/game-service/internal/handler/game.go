package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	pb "mydarts/proto"
	"mydarts/server/game-service/internal/core"
	"mydarts/server/game-service/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type GameServiceServer struct {
	pb.UnimplementedGameServiceServer
	svc *service.GameService
}

func NewGameServiceServer(svc *service.GameService) *GameServiceServer {
	return &GameServiceServer{svc: svc}
}

func (s *GameServiceServer) CreateGame(ctx context.Context, req *pb.CreateGameReq) (*pb.Game, error) {
	settings := core.Settings{
		StartingPoints: int(req.TotalPoints),
		BestOfSets:     int(req.BestOf),
		BestOfLegs:     int(req.BestOfLegs),
		DoubleOut:      req.DoubleOut,
	}
	m, err := s.svc.CreateGame(ctx, settings, req.PlayerIds)
	if err != nil {
		return nil, toStatus(err)
	}
	return toGame(m), nil
}

func (s *GameServiceServer) GetGame(ctx context.Context, req *pb.GetGameReq) (*pb.Game, error) {
	m, err := s.svc.GetGame(ctx, req.GameId)
	if err != nil {
		return nil, toStatus(err)
	}
	return toGame(m), nil
}

func (s *GameServiceServer) SubmitThrow(ctx context.Context, req *pb.SubmitThrowReq) (*pb.Game, error) {
	th := core.Throw{Segment: int(req.Points), Multiplier: int(req.Multiplier)}
	m, err := s.svc.SubmitThrow(ctx, req.GameId, req.UserId, th)
	if err != nil {
		slog.Debug("throw rejected", "match_id", req.GameId, "user_id", req.UserId, "throw", th.String(), "error", err)
		return nil, toStatus(err)
	}
	return toGame(m), nil
}

func (s *GameServiceServer) GetGameStatistics(ctx context.Context, req *pb.GetGameStatisticsReq) (*pb.GameStatistics, error) {
	st, err := s.svc.GetGameStatistics(ctx, req.GameId)
	if err != nil {
		return nil, toStatus(err)
	}
	return toGameStatistics(st), nil
}

func (s *GameServiceServer) GetUserStats(ctx context.Context, req *pb.GetUserStatsReq) (*pb.UserStats, error) {
	cs, err := s.svc.GetUserStats(ctx, req.UserId)
	if err != nil {
		return nil, toStatus(err)
	}
	return toUserStats(cs), nil
}

func (s *GameServiceServer) ListActiveGames(ctx context.Context, req *pb.ListActiveGamesReq) (*pb.ListActiveGamesResp, error) {
	ids, err := s.svc.ListActiveGames(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	if ids == nil {
		ids = []string{}
	}
	return &pb.ListActiveGamesResp{GameIds: ids}, nil
}

// toStatus maps domain errors onto gRPC codes; the gateway maps them on to HTTP.
func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, core.ErrInvalidThrow), errors.Is(err, core.ErrInvalidSettings):
		code = codes.InvalidArgument
	case errors.Is(err, core.ErrNotYourTurn):
		code = codes.Aborted
	case errors.Is(err, core.ErrMatchFinished):
		code = codes.FailedPrecondition
	case errors.Is(err, core.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, core.ErrBusy):
		code = codes.Unavailable
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		slog.Error("request failed", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
	return status.Error(code, err.Error())
}

func NewGRPCServer(svc *service.GameService) *grpc.Server {
	s := grpc.NewServer()
	pb.RegisterGameServiceServer(s, NewGameServiceServer(svc))
	return s
}

// StartGRPC serves until s is stopped.
func StartGRPC(s *grpc.Server, port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	slog.Info("game service gRPC listening", "port", port)
	return s.Serve(lis)
}
