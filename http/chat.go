package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fwojciec/dealscope"
)

// handleChat relays a chat transcript to the model and streams the
// response back as server-sent events. Each model chunk arrives as a
// "delta" event; the stream ends with a "done" event, or an "error" event
// if the upstream fails mid-stream.
// POST /api/chat {"messages": [{"role": "...", "content": "..."}]}
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []dealscope.Message `json:"messages"`
	}
	if err := decodeJSON(r, &body); err != nil {
		s.Error(w, r, err)
		return
	}
	if len(body.Messages) == 0 {
		s.Error(w, r, dealscope.Errorf(dealscope.EINVALID, "messages are required"))
		return
	}

	sse, err := newSSEWriter(w)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	timeout := s.ChatTimeout
	if timeout <= 0 {
		timeout = DefaultChatTimeout
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	err = s.Chatter.Chat(ctx, body.Messages, func(delta string) error {
		return sse.writeEvent("delta", map[string]string{"delta": delta})
	})
	if err != nil {
		// Headers are gone; the error has to travel in-band.
		sse.writeError(dealscope.ErrorMessage(err))
		return
	}

	_ = sse.writeEvent("done", map[string]string{})
}

// sseWriter writes server-sent events and flushes after each one.
type sseWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

func newSSEWriter(w http.ResponseWriter) (*sseWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, dealscope.Errorf(dealscope.EINTERNAL, "streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &sseWriter{w: w, flusher: flusher}, nil
}

func (s *sseWriter) writeEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *sseWriter) writeError(message string) {
	_ = s.writeEvent("error", map[string]string{"error": message})
}
