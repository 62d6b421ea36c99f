package llm

import "context"

type contextKey int

const (
	purposeKey contextKey = iota
	gameKey
)

// WithPurpose labels requests made with ctx, e.g. "hint".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithGameID tags requests made with ctx with the game they serve.
func WithGameID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, gameKey, id)
}

// GameIDFrom returns the game ID tag, if any.
func GameIDFrom(ctx context.Context) string {
	v, _ := ctx.Value(gameKey).(string)
	return v
}
