package log

import "context"

type ctxKey int

const correlationIdKey ctxKey = iota

// SetCorrelationId stores the request correlation id so every log line
// emitted downstream carries it.
func SetCorrelationId(ctx context.Context, correlationId string) context.Context {
	return context.WithValue(ctx, correlationIdKey, correlationId)
}

func GetCorrelationId(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(correlationIdKey).(string); ok {
		return v
	}
	return ""
}
