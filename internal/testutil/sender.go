package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/brendanm12345/bedtime-bully/internal/notify"
)

// RecordingSender captures messages instead of delivering them.
type RecordingSender struct {
	Err error

	mu   sync.Mutex
	sent []notify.Message
}

func (s *RecordingSender) Send(ctx context.Context, msg notify.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	s.sent = append(s.sent, msg)
	return fmt.Sprintf("<test-%d@bedtime.local>", len(s.sent)), nil
}

func (s *RecordingSender) Sent() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]notify.Message(nil), s.sent...)
}
