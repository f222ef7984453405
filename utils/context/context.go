package context

import (
	"context"

	"github.com/muhammadheryan/humidor-club/constant"
)

// GetUserID returns the authenticated user id; ok is false for anonymous requests.
func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok && id != 0
}

func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, constant.UserIDKey, userID)
}
