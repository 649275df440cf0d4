package utils

import "context"

type ctxKey string

const userIDKey ctxKey = "user_id"

// WithUserID stores the authenticated user id in ctx
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// GetUserIDFromContext returns the id stored by the auth middleware
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
