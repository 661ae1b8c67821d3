package board

import "context"

// Prompt describes a destructive action awaiting the user's decision.
type Prompt struct {
	Op      string
	Message string
}

// Confirmer asks the user to approve a destructive action. Declining makes
// the whole operation a no-op: no snapshot, no change.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, p Prompt) bool

func (f ConfirmFunc) Confirm(ctx context.Context, p Prompt) bool { return f(ctx, p) }

// Always and Never are fixed answers, mostly useful in tests and batch tools.
var (
	Always Confirmer = ConfirmFunc(func(context.Context, Prompt) bool { return true })
	Never  Confirmer = ConfirmFunc(func(context.Context, Prompt) bool { return false })
)

type confirmKey struct{}

// WithConfirmation marks ctx as carrying the user's answer to any
// confirmation asked during the call. The RPC layer sets it from the request.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmKey{}, confirmed)
}

// ContextConfirmer answers with the value stored by WithConfirmation, or
// false when none was stored.
type ContextConfirmer struct{}

func (ContextConfirmer) Confirm(ctx context.Context, _ Prompt) bool {
	confirmed, _ := ctx.Value(confirmKey{}).(bool)
	return confirmed
}
