package catalogsvc

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/machinery-catalog/internal/pkg/errx"
)

// ServerOptions returns the interceptor chain for the catalog gRPC server:
// call logging on the outside, panic recovery on the inside so a recovered
// panic is logged as an Internal error.
func ServerOptions(log *zap.Logger) []grpc.ServerOption {
	if log == nil {
		log = zap.NewNop()
	}

	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			logging.UnaryServerInterceptor(zapLogger(log), logging.WithLogOnEvents(logging.FinishCall)),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoverHandler(log))),
		),
	}
}

func recoverHandler(log *zap.Logger) recovery.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		log.Error("panic in gRPC handler",
			zap.String("panic", fmt.Sprint(p)),
			zap.Stack("stack"),
		)
		return status.Error(codes.Internal, errx.SystemErrorMessage)
	}
}

// zapLogger adapts zap to the middleware logging interface.
func zapLogger(l *zap.Logger) logging.Logger {
	return logging.LoggerFunc(func(_ context.Context, lvl logging.Level, msg string, fields ...any) {
		zf := make([]zap.Field, 0, len(fields)/2)
		for i := 0; i+1 < len(fields); i += 2 {
			key := fmt.Sprint(fields[i])
			switch v := fields[i+1].(type) {
			case string:
				zf = append(zf, zap.String(key, v))
			case int:
				zf = append(zf, zap.Int(key, v))
			case bool:
				zf = append(zf, zap.Bool(key, v))
			default:
				zf = append(zf, zap.Any(key, v))
			}
		}

		logger := l.WithOptions(zap.AddCallerSkip(1)).With(zf...)
		switch lvl {
		case logging.LevelDebug:
			logger.Debug(msg)
		case logging.LevelInfo:
			logger.Info(msg)
		case logging.LevelWarn:
			logger.Warn(msg)
		case logging.LevelError:
			logger.Error(msg)
		default:
			logger.Info(msg, zap.Int("level", int(lvl)))
		}
	})
}
