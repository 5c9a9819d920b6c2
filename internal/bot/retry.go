package bot

import (
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const maxSendAttempts = 3

// withRetry wraps a transport call with exponential backoff. Only network
// calls are retried; aggregation results are final and never re-applied.
func withRetry(op func() error) error {
	policy := backoff.WithMaxRetries(newBackOff(), maxSendAttempts-1)

	return backoff.RetryNotify(op, policy, func(err error, wait time.Duration) {
		log.Printf("[BOT] transport error: %v (retrying in %s)", err, wait)
	})
}

func newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.Multiplier = 2
	b.MaxInterval = 8 * time.Second
	return b
}
