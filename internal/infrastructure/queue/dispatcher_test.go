package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/core/domain"
)

type captureSender struct {
	mu   sync.Mutex
	sent []domain.WelcomeEmail
	done chan struct{}
	want int
}

func newCaptureSender(want int) *captureSender {
	return &captureSender{done: make(chan struct{}), want: want}
}

func (s *captureSender) Send(msg domain.WelcomeEmail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	if len(s.sent) == s.want {
		close(s.done)
	}
	return nil
}

func TestDispatcher_DeliversMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender := newCaptureSender(3)
	d := NewDispatcher(2, sender, zerolog.Nop())
	d.Start(ctx)

	for _, to := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		d.Notify(domain.NewWelcomeEmail("user", to, "no-reply@example.com"))
	}

	select {
	case <-sender.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(sender.sent))
	}
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	// Workers are never started, so every buffer stays full once filled and
	// the overflow path must drop instead of blocking.
	sender := newCaptureSender(1)
	d := NewDispatcher(1, sender, zerolog.Nop())

	msg := domain.NewWelcomeEmail("user", "a@example.com", "no-reply@example.com")
	finished := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Notify(msg)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Notify blocked on a full queue")
	}
}

func TestDispatcher_ShardIsStablePerRecipient(t *testing.T) {
	d := NewDispatcher(4, newCaptureSender(0), zerolog.Nop())

	msg := domain.NewWelcomeEmail("user", "a@example.com", "no-reply@example.com")
	first := d.shardIndex(msg)
	for i := 0; i < 10; i++ {
		if got := d.shardIndex(msg); got != first {
			t.Fatalf("shard changed: %d != %d", got, first)
		}
	}
}
