package mock

import (
	"context"

	"github.com/fwojciec/dealscope"
)

var _ dealscope.Chatter = (*Chatter)(nil)

// Chatter is a mock implementation of dealscope.Chatter.
type Chatter struct {
	ChatFn func(ctx context.Context, messages []dealscope.Message, onDelta func(delta string) error) error
}

func (c *Chatter) Chat(ctx context.Context, messages []dealscope.Message, onDelta func(delta string) error) error {
	return c.ChatFn(ctx, messages, onDelta)
}
