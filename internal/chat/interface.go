package chat

import "context"

// UseCase is the chat pipeline entry point.
type UseCase interface {
	Ask(ctx context.Context, input AskInput) (AskOutput, error)
}
