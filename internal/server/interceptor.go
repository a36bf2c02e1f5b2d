package server

import (
	"context"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/accessly/docpipeline/internal/common"
)

// UnaryRequestID tags every request context with a request ID and logs
// the call outcome with it, so server logs correlate across layers.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed", "method", info.FullMethod, "request_id", requestID, "duration_ms", time.Since(start).Milliseconds(), "error", err)
		}
		return resp, err
	}
}
