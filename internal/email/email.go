package email

import (
	"context"
	"sync"
	"time"
)

// Attachment is an in-memory file attached to an outgoing email
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is one outgoing email to a single recipient
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// Receipt identifies an accepted delivery
type Receipt struct {
	DeliveryID string
}

// Sender delivers a single message. Implementations return failures as
// errors rather than panicking so batch senders can account for partial
// success.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Result is the per-recipient outcome of a batch send
type Result struct {
	Recipient  string
	DeliveryID string
	Err        error
}

// SendBatch dispatches every message concurrently, bounding each send with
// its own timeout, and waits for all of them. Individual failures never
// abort the batch; they come back in the result slice, in input order.
func SendBatch(ctx context.Context, sender Sender, msgs []Message, perRecipientTimeout time.Duration) []Result {
	results := make([]Result, len(msgs))

	var wg sync.WaitGroup
	for i, msg := range msgs {
		wg.Add(1)
		go func(i int, msg Message) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, perRecipientTimeout)
			defer cancel()

			receipt, err := sender.Send(sendCtx, msg)
			results[i] = Result{
				Recipient:  msg.To,
				DeliveryID: receipt.DeliveryID,
				Err:        err,
			}
		}(i, msg)
	}
	wg.Wait()

	return results
}

// CountSent tallies successful deliveries in a batch result
func CountSent(results []Result) int {
	sent := 0
	for _, r := range results {
		if r.Err == nil {
			sent++
		}
	}
	return sent
}
