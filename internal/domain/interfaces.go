package domain

import "context"

// Gateway represents the upstream completion gateway.
type Gateway interface {
	// Complete issues a single blocking completion call.
	Complete(ctx context.Context, args *CompletionArgs) (*Completion, error)

	// Stream opens a streaming completion call. The channel yields the
	// upstream body line by line and is closed when the upstream ends or
	// ctx is cancelled.
	Stream(ctx context.Context, args *CompletionArgs) (<-chan StreamLine, error)
}
