package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	GameService_CreateGame_FullMethodName        = "/darts.GameService/CreateGame"
	GameService_GetGame_FullMethodName           = "/darts.GameService/GetGame"
	GameService_SubmitThrow_FullMethodName       = "/darts.GameService/SubmitThrow"
	GameService_GetGameStatistics_FullMethodName = "/darts.GameService/GetGameStatistics"
	GameService_GetUserStats_FullMethodName      = "/darts.GameService/GetUserStats"
	GameService_ListActiveGames_FullMethodName   = "/darts.GameService/ListActiveGames"
)

// GameServiceClient is the client API for the darts GameService.
type GameServiceClient interface {
	CreateGame(ctx context.Context, in *CreateGameReq, opts ...grpc.CallOption) (*Game, error)
	GetGame(ctx context.Context, in *GetGameReq, opts ...grpc.CallOption) (*Game, error)
	SubmitThrow(ctx context.Context, in *SubmitThrowReq, opts ...grpc.CallOption) (*Game, error)
	GetGameStatistics(ctx context.Context, in *GetGameStatisticsReq, opts ...grpc.CallOption) (*GameStatistics, error)
	GetUserStats(ctx context.Context, in *GetUserStatsReq, opts ...grpc.CallOption) (*UserStats, error)
	ListActiveGames(ctx context.Context, in *ListActiveGamesReq, opts ...grpc.CallOption) (*ListActiveGamesResp, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc}
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *gameServiceClient) CreateGame(ctx context.Context, in *CreateGameReq, opts ...grpc.CallOption) (*Game, error) {
	out := new(Game)
	if err := c.cc.Invoke(ctx, GameService_CreateGame_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetGame(ctx context.Context, in *GetGameReq, opts ...grpc.CallOption) (*Game, error) {
	out := new(Game)
	if err := c.cc.Invoke(ctx, GameService_GetGame_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) SubmitThrow(ctx context.Context, in *SubmitThrowReq, opts ...grpc.CallOption) (*Game, error) {
	out := new(Game)
	if err := c.cc.Invoke(ctx, GameService_SubmitThrow_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetGameStatistics(ctx context.Context, in *GetGameStatisticsReq, opts ...grpc.CallOption) (*GameStatistics, error) {
	out := new(GameStatistics)
	if err := c.cc.Invoke(ctx, GameService_GetGameStatistics_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetUserStats(ctx context.Context, in *GetUserStatsReq, opts ...grpc.CallOption) (*UserStats, error) {
	out := new(UserStats)
	if err := c.cc.Invoke(ctx, GameService_GetUserStats_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) ListActiveGames(ctx context.Context, in *ListActiveGamesReq, opts ...grpc.CallOption) (*ListActiveGamesResp, error) {
	out := new(ListActiveGamesResp)
	if err := c.cc.Invoke(ctx, GameService_ListActiveGames_FullMethodName, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// GameServiceServer is the server API for the darts GameService.
type GameServiceServer interface {
	CreateGame(context.Context, *CreateGameReq) (*Game, error)
	GetGame(context.Context, *GetGameReq) (*Game, error)
	SubmitThrow(context.Context, *SubmitThrowReq) (*Game, error)
	GetGameStatistics(context.Context, *GetGameStatisticsReq) (*GameStatistics, error)
	GetUserStats(context.Context, *GetUserStatsReq) (*UserStats, error)
	ListActiveGames(context.Context, *ListActiveGamesReq) (*ListActiveGamesResp, error)
}

// UnimplementedGameServiceServer can be embedded to have forward compatible implementations.
type UnimplementedGameServiceServer struct{}

func (UnimplementedGameServiceServer) CreateGame(context.Context, *CreateGameReq) (*Game, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateGame not implemented")
}
func (UnimplementedGameServiceServer) GetGame(context.Context, *GetGameReq) (*Game, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGame not implemented")
}
func (UnimplementedGameServiceServer) SubmitThrow(context.Context, *SubmitThrowReq) (*Game, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitThrow not implemented")
}
func (UnimplementedGameServiceServer) GetGameStatistics(context.Context, *GetGameStatisticsReq) (*GameStatistics, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetGameStatistics not implemented")
}
func (UnimplementedGameServiceServer) GetUserStats(context.Context, *GetUserStatsReq) (*UserStats, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserStats not implemented")
}
func (UnimplementedGameServiceServer) ListActiveGames(context.Context, *ListActiveGamesReq) (*ListActiveGamesResp, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListActiveGames not implemented")
}

func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameService_ServiceDesc, srv)
}

func _GameService_CreateGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateGameReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).CreateGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GameService_CreateGame_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).CreateGame(ctx, req.(*CreateGameReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_GetGame_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGameReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).GetGame(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GameService_GetGame_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).GetGame(ctx, req.(*GetGameReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_SubmitThrow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitThrowReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).SubmitThrow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GameService_SubmitThrow_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).SubmitThrow(ctx, req.(*SubmitThrowReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_GetGameStatistics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetGameStatisticsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).GetGameStatistics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GameService_GetGameStatistics_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).GetGameStatistics(ctx, req.(*GetGameStatisticsReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_GetUserStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserStatsReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).GetUserStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GameService_GetUserStats_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).GetUserStats(ctx, req.(*GetUserStatsReq))
	}
	return interceptor(ctx, in, info, handler)
}

func _GameService_ListActiveGames_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListActiveGamesReq)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GameServiceServer).ListActiveGames(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GameService_ListActiveGames_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GameServiceServer).ListActiveGames(ctx, req.(*ListActiveGamesReq))
	}
	return interceptor(ctx, in, info, handler)
}

// GameService_ServiceDesc is the grpc.ServiceDesc for GameService.
var GameService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "darts.GameService",
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateGame", Handler: _GameService_CreateGame_Handler},
		{MethodName: "GetGame", Handler: _GameService_GetGame_Handler},
		{MethodName: "SubmitThrow", Handler: _GameService_SubmitThrow_Handler},
		{MethodName: "GetGameStatistics", Handler: _GameService_GetGameStatistics_Handler},
		{MethodName: "GetUserStats", Handler: _GameService_GetUserStats_Handler},
		{MethodName: "ListActiveGames", Handler: _GameService_ListActiveGames_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "darts/game.proto",
}
