package middleware

import (
	"context"

	"github.com/rentora/rentora-backend/pkg/visibility"
)

type contextKey string

const (
	ctxUserID        contextKey = "user_id"
	ctxUsername      contextKey = "username"
	ctxIsAdmin       contextKey = "is_admin"
	ctxAuthenticated contextKey = "authenticated"
)

func UserIDFromContext(ctx context.Context) uint {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxUserID).(uint); ok {
		return v
	}
	return 0
}

func UsernameFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUsername).(string); ok {
		return v
	}
	return ""
}

func IsAdminFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxIsAdmin).(bool); ok {
		return v
	}
	return false
}

func IsAuthenticatedFromContext(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	if v, ok := ctx.Value(ctxAuthenticated).(bool); ok {
		return v
	}
	return false
}

// VisibilityFromContext folds the auth flags into a projection level.
func VisibilityFromContext(ctx context.Context) visibility.Level {
	return visibility.FromCaller(IsAuthenticatedFromContext(ctx), IsAdminFromContext(ctx))
}

// WithIdentity seeds the context with the parsed claim values.
func WithIdentity(ctx context.Context, userID uint, username string, isAdmin bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxUserID, userID)
	ctx = context.WithValue(ctx, ctxUsername, username)
	ctx = context.WithValue(ctx, ctxIsAdmin, isAdmin)
	return context.WithValue(ctx, ctxAuthenticated, true)
}
