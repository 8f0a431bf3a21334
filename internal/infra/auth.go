package infra

import (
	"context"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/s21platform/access-service/internal/config"
	"github.com/s21platform/access-service/internal/model"
)

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*model.AccessClaims, error)
}

// AuthInterceptorHTTP validates the Bearer token and puts the caller's uuid
// into the request context under config.KeyUUID.
func AuthInterceptorHTTP(next http.Handler, validator TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "missing authorization token", http.StatusUnauthorized)
			return
		}

		claims, err := validator.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, "invalid authorization token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.UserUUID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthInterceptorGRPC is the gRPC counterpart of AuthInterceptorHTTP, reading
// the token from the "authorization" metadata key.
func AuthInterceptorGRPC(validator TokenValidator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		values := md.Get("authorization")
		if len(values) == 0 || !strings.HasPrefix(values[0], "Bearer ") {
			return nil, status.Error(codes.Unauthenticated, "missing authorization token")
		}

		claims, err := validator.ValidateAccessToken(strings.TrimPrefix(values[0], "Bearer "))
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
		}

		ctx = context.WithValue(ctx, config.KeyUUID, claims.UserUUID)

		return handler(ctx, req)
	}
}
