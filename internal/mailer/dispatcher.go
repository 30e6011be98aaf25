package mailer

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Dispatcher sends notifications without blocking the request that
// triggered them. Delivery failures are logged and never propagated:
// the user-facing flow must not depend on the email provider.
type Dispatcher struct {
	sender  Sender
	log     zerolog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewDispatcher(sender Sender, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		log:     log,
		timeout: 30 * time.Second,
	}
}

// Dispatch queues msg for background delivery and returns immediately.
func (d *Dispatcher) Dispatch(msg Message) {
	jobID := uuid.NewString()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sender.Send(ctx, msg); err != nil {
			d.log.Error().
				Err(err).
				Str("job_id", jobID).
				Str("to", msg.To).
				Str("subject", msg.Subject).
				Msg("email delivery failed")
			return
		}

		d.log.Info().
			Str("job_id", jobID).
			Str("to", msg.To).
			Str("subject", msg.Subject).
			Msg("email delivered")
	}()
}

// Wait blocks until all in-flight deliveries finish. Used on shutdown.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
