package dealscope

import "context"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a chat transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chatter relays a chat transcript to a hosted language model and streams
// the response back incrementally.
type Chatter interface {
	// Chat forwards the transcript and invokes onDelta for each chunk of
	// the model's response as it arrives. A transport error terminates
	// the stream; there is no retry. Returning an error from onDelta
	// aborts the relay.
	Chat(ctx context.Context, messages []Message, onDelta func(delta string) error) error
}
