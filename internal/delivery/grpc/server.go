package grpc

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// NewServer returns a gRPC server with the product service and reflection
// registered and every unary call logged.
func NewServer(handler ProductServiceServer, logger *logrus.Logger) *grpc.Server {
	server := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))
	RegisterProductServiceServer(server, handler)
	reflection.Register(server)
	return server
}

func loggingInterceptor(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.WithFields(logrus.Fields{
			"method":  info.FullMethod,
			"code":    status.Code(err).String(),
			"latency": time.Since(start).String(),
		}).Info("gRPC call completed")
		return resp, err
	}
}
