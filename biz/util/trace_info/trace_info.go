package trace_info

import (
	"context"
)

type logIdKey struct{}

type userIdKey struct{}

func WithLogId(ctx context.Context, logId string) context.Context {
	return context.WithValue(ctx, logIdKey{}, logId)
}

func GetLogId(ctx context.Context) string {
	logId, ok := ctx.Value(logIdKey{}).(string)
	if ok {
		return logId
	}
	return ""
}

// WithUserId records the public id of the authenticated caller for logging.
func WithUserId(ctx context.Context, publicID string) context.Context {
	return context.WithValue(ctx, userIdKey{}, publicID)
}

func GetUserId(ctx context.Context) string {
	id, _ := ctx.Value(userIdKey{}).(string)
	return id
}
