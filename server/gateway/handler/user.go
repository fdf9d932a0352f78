package handlers

import (
	"net/http"
	"strconv"

	pb "mydarts/proto"

	"github.com/gin-gonic/gin"
)

// Career stats of one user
func (h *GameHandler) HandleGetUserStats(c *gin.Context) {
	uid, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || uid <= 0 {
		badRequest(c, "invalid user id")
		return
	}

	ctx, cancel := h.rpcContext(c)
	defer cancel()

	resp, err := h.client.GetUserStats(ctx, &pb.GetUserStatsReq{UserId: uid})
	if err != nil {
		abortWithRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
