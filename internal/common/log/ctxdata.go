package log

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const correlationIDKey ctxKey = iota

// SetCorrelationID stores the request correlation id on the context,
// generating one when the caller did not supply it.
func SetCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, correlationIDKey, id)
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
