package ctxdata

import (
	"context"
)

type traceIDKey struct{}
type userEmailKey struct{}
type userNameKey struct{}

var (
	traceIDKeyInstance   = traceIDKey{}
	userEmailKeyInstance = userEmailKey{}
	userNameKeyInstance  = userNameKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKeyInstance, email)
}

func GetUserEmail(ctx context.Context) (string, bool) {
	v := ctx.Value(userEmailKeyInstance)
	email, ok := v.(string)
	return email, ok
}

func WithUserName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, userNameKeyInstance, name)
}

func GetUserName(ctx context.Context) (string, bool) {
	v := ctx.Value(userNameKeyInstance)
	name, ok := v.(string)
	return name, ok
}
