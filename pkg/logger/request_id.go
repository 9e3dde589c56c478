package logger

import (
	"context"

	"github.com/google/uuid"
)

// requestIDKeyType - ключ контекста для хранения request_id.
type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// NewRequestIDContext создает новый контекст с идентификатором запроса.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}

// GenerateRequestID генерирует новый идентификатор запроса.
func GenerateRequestID() string {
	return uuid.New().String()
}

// RequestIDContextKey возвращает ключ, под которым request_id лежит в
// контексте. Нужен HTTP слою: fiber кладет Locals в user values запроса
// fasthttp, и ctx.Context().Value находит их по этому же ключу.
func RequestIDContextKey() any {
	return requestIDKey
}
