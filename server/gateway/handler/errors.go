package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg, "code": "INVALID_REQUEST"})
}

// abortWithRPCError translates a game-service status into an HTTP response.
func abortWithRPCError(c *gin.Context, err error) {
	st := status.Convert(err)

	var httpStatus int
	var code string
	switch st.Code() {
	case codes.InvalidArgument:
		httpStatus, code = http.StatusBadRequest, "INVALID_ARGUMENT"
	case codes.Aborted:
		httpStatus, code = http.StatusConflict, "NOT_YOUR_TURN"
	case codes.FailedPrecondition:
		httpStatus, code = http.StatusConflict, "MATCH_FINISHED"
	case codes.NotFound:
		httpStatus, code = http.StatusNotFound, "NOT_FOUND"
	case codes.Unavailable:
		httpStatus, code = http.StatusServiceUnavailable, "BUSY"
		c.Header("Retry-After", "1")
	case codes.DeadlineExceeded:
		httpStatus, code = http.StatusGatewayTimeout, "TIMEOUT"
	default:
		slog.Error("game service call failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "code": "INTERNAL"})
		return
	}

	c.JSON(httpStatus, gin.H{"error": st.Message(), "code": code})
}
