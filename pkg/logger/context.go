package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const requestIDKey contextKey = "request_id"

func (a *Adapter) WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func (a *Adapter) GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

func (a *Adapter) GenerateRequestID() string {
	return uuid.NewString()
}

func (a *Adapter) contextLogger(ctx context.Context) *zap.Logger {
	requestID := a.GetRequestID(ctx)
	if requestID == "" {
		return a.logger
	}
	return a.logger.With(zap.String("request_id", requestID))
}
