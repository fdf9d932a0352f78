package handlers

import (
	"context"
	"net/http"
	"time"

	pb "mydarts/proto"
	"mydarts/server/gateway/middleware"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	client  pb.GameServiceClient
	timeout time.Duration
}

func NewGameHandler(client pb.GameServiceClient, timeout time.Duration) *GameHandler {
	return &GameHandler{client: client, timeout: timeout}
}

func (h *GameHandler) rpcContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// Create Game
func (h *GameHandler) HandleCreateGame(c *gin.Context) {
	var req struct {
		TotalPoints int32   `json:"total_points" binding:"required"`
		BestOf      int32   `json:"best_of" binding:"required"`
		BestOfLegs  int32   `json:"best_of_legs"`
		DoubleOut   bool    `json:"double_out"`
		PlayerIds   []int64 `json:"player_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	g, err := h.client.CreateGame(ctx, &pb.CreateGameReq{
		TotalPoints: req.TotalPoints,
		BestOf:      req.BestOf,
		BestOfLegs:  req.BestOfLegs,
		DoubleOut:   req.DoubleOut,
		PlayerIds:   req.PlayerIds,
	})
	if err != nil {
		abortWithRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, g)
}

// List active games
func (h *GameHandler) HandleListGames(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.client.ListActiveGames(ctx, &pb.ListActiveGamesReq{})
	if err != nil {
		abortWithRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"games": resp.GameIds})
}

// Get Game
func (h *GameHandler) HandleGetGame(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	g, err := h.client.GetGame(ctx, &pb.GetGameReq{GameId: c.Param("id")})
	if err != nil {
		abortWithRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

// Submit Throw
func (h *GameHandler) HandleSubmitThrow(c *gin.Context) {
	var req struct {
		UserId     int64 `json:"user_id" binding:"required"`
		Points     int32 `json:"points"`
		Multiplier int32 `json:"multiplier"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	if uid, ok := c.Get(middleware.ContextKeyUID); ok && uid.(int64) != req.UserId {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot throw for another player", "code": "FORBIDDEN"})
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	g, err := h.client.SubmitThrow(ctx, &pb.SubmitThrowReq{
		GameId:     c.Param("id"),
		UserId:     req.UserId,
		Points:     req.Points,
		Multiplier: req.Multiplier,
	})
	if err != nil {
		abortWithRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, g)
}

// Game Statistics
func (h *GameHandler) HandleGetStatistics(c *gin.Context) {
	ctx, cancel := h.rpcContext(c)
	defer cancel()

	st, err := h.client.GetGameStatistics(ctx, &pb.GetGameStatisticsReq{GameId: c.Param("id")})
	if err != nil {
		abortWithRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, st)
}
