package audit

import "context"

const DefaultActor = "Admin"

type actorKey struct{}

// WithActor binds the identity recorded on audit entries for mutations made under ctx.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

func ActorFromContext(ctx context.Context) string {
	if a, ok := ctx.Value(actorKey{}).(string); ok && a != "" {
		return a
	}
	return DefaultActor
}
