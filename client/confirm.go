package client

import "context"

// ConfirmFunc asks the user to approve a destructive action before it runs.
// Hosts wire it to a blocking confirm dialog; a nil ConfirmFunc approves
// everything.
type ConfirmFunc func(ctx context.Context, action string) bool

func confirmed(ctx context.Context, fn ConfirmFunc, action string) bool {
	return fn == nil || fn(ctx, action)
}
