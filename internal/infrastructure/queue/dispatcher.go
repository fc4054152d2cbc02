package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/empleos/employment-portal/internal/api/metrics"
	"github.com/empleos/employment-portal/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// MailSender delivers a single message. Satisfied by email.Sender.
type MailSender interface {
	Send(msg domain.WelcomeEmail) error
}

// Dispatcher delivers welcome emails off the request path. Messages are
// sharded across a fixed set of workers by recipient so one slow mailbox
// cannot stall the rest. Delivery is best effort: failures are logged and
// counted, never surfaced to the registering user.
type Dispatcher struct {
	workers []chan domain.WelcomeEmail
	sender  MailSender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender MailSender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.WelcomeEmail, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.WelcomeEmail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify enqueues a welcome message for delivery. When the responsible
// worker's buffer is full the message is dropped rather than blocking the
// registration request.
func (d *Dispatcher) Notify(msg domain.WelcomeEmail) {
	ch := d.workers[d.shardIndex(msg)]
	select {
	case ch <- msg:
	default:
		d.log.Warn().Strs("to", msg.RecipientList).Msg("mail queue full, dropping welcome email")
		metrics.WelcomeEmailsTotal.WithLabelValues("dropped").Inc()
	}
}

// shardIndex maps a message deterministically to a worker by first recipient.
func (d *Dispatcher) shardIndex(msg domain.WelcomeEmail) int {
	recipient := ""
	if len(msg.RecipientList) > 0 {
		recipient = msg.RecipientList[0]
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.WelcomeEmail) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.Send(msg); err != nil {
				d.log.Error().Err(err).
					Strs("to", msg.RecipientList).
					Int("worker_id", id).
					Msg("welcome email delivery failed")
				metrics.WelcomeEmailsTotal.WithLabelValues("error").Inc()
				continue
			}
			metrics.WelcomeEmailsTotal.WithLabelValues("sent").Inc()
		}
	}
}
