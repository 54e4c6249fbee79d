package mailer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// NoopSender records messages instead of sending them. Used when no provider
// key is configured and in tests.
type NoopSender struct {
	log zerolog.Logger

	mu   sync.Mutex
	sent []Message
}

func NewNoopSender(log zerolog.Logger) *NoopSender {
	return &NoopSender{log: log}
}

func (s *NoopSender) Send(_ context.Context, msg Message) (string, error) {
	s.mu.Lock()
	s.sent = append(s.sent, msg)
	s.mu.Unlock()
	s.log.Debug().Strs("to", msg.To).Str("subject", msg.Subject).Msg("mail skipped (noop sender)")
	return "", nil
}

func (s *NoopSender) Sent() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.sent...)
}

// New picks the Resend sender when an API key is present.
func New(apiKey, from string, log zerolog.Logger) Sender {
	if apiKey == "" {
		return NewNoopSender(log)
	}
	return NewResendSender(apiKey, from, log)
}
