package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/logger"
)

// AuthInterceptor resolves the caller's session, if any, into the context.
// It never rejects: protected procedures call auth.RequireUser themselves.
func AuthInterceptor(appCtx *app.AppContext) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if appCtx.Auth == nil {
			return handler(ctx, req)
		}
		token := auth.TokenFromMetadata(ctx, appCtx.Config.Auth.CookieName)
		return handler(appCtx.Auth.ResolveOptional(ctx, token), req)
	}
}

// LoggingInterceptor logs each unary call with a request id, its status code
// and duration. The request-scoped logger is passed down via the context.
func LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		log := logger.With("request_id", uuid.NewString(), "method", info.FullMethod)

		resp, err := handler(logger.IntoContext(ctx, log), req)

		code := status.Code(err)
		if err != nil {
			log.Warn("grpc call failed", "code", code.String(), "duration", time.Since(start), "err", err)
		} else {
			log.Debug("grpc call", "code", code.String(), "duration", time.Since(start))
		}
		return resp, err
	}
}
