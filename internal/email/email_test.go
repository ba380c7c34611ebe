package email

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender fails for configured recipients and optionally blocks
type fakeSender struct {
	mu       sync.Mutex
	failFor  map[string]error
	blockFor map[string]time.Duration
	calls    []string
}

func (f *fakeSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	f.mu.Lock()
	f.calls = append(f.calls, msg.To)
	f.mu.Unlock()

	if delay, ok := f.blockFor[msg.To]; ok {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		}
	}
	if err, ok := f.failFor[msg.To]; ok {
		return Receipt{}, err
	}
	return Receipt{DeliveryID: "rcpt-" + msg.To}, nil
}

func messagesFor(recipients ...string) []Message {
	msgs := make([]Message, 0, len(recipients))
	for _, r := range recipients {
		msgs = append(msgs, Message{To: r, Subject: "Scheduling poll", HTMLBody: "<p>vote</p>"})
	}
	return msgs
}

func TestSendBatchAllSucceed(t *testing.T) {
	sender := &fakeSender{}
	results := SendBatch(context.Background(), sender, messagesFor("a@x.com", "b@x.com"), time.Second)

	require.Len(t, results, 2)
	assert.Equal(t, "a@x.com", results[0].Recipient)
	assert.Equal(t, "b@x.com", results[1].Recipient)
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.NotEmpty(t, r.DeliveryID)
	}
	assert.Equal(t, 2, CountSent(results))
}

func TestSendBatchPartialFailure(t *testing.T) {
	sender := &fakeSender{
		failFor: map[string]error{"b@x.com": errors.New("mailbox full")},
	}
	results := SendBatch(context.Background(), sender, messagesFor("a@x.com", "b@x.com", "c@x.com"), time.Second)

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, 2, CountSent(results))

	// every recipient was attempted despite the failure
	assert.Len(t, sender.calls, 3)
}

func TestSendBatchPerRecipientTimeout(t *testing.T) {
	sender := &fakeSender{
		blockFor: map[string]time.Duration{"slow@x.com": time.Second},
	}
	start := time.Now()
	results := SendBatch(context.Background(), sender, messagesFor("slow@x.com", "fast@x.com"), 50*time.Millisecond)

	require.Len(t, results, 2)
	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
	assert.NoError(t, results[1].Err)
	// the slow recipient's timeout must not stall the batch for its full delay
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestSendBatchEmpty(t *testing.T) {
	results := SendBatch(context.Background(), &fakeSender{}, nil, time.Second)
	assert.Empty(t, results)
	assert.Equal(t, 0, CountSent(results))
}

func TestSendBatchLargeFanOut(t *testing.T) {
	sender := &fakeSender{failFor: map[string]error{}}
	var msgs []Message
	for i := 0; i < 50; i++ {
		to := fmt.Sprintf("p%d@x.com", i)
		msgs = append(msgs, Message{To: to})
		if i%5 == 0 {
			sender.failFor[to] = errors.New("bounced")
		}
	}

	results := SendBatch(context.Background(), sender, msgs, time.Second)
	require.Len(t, results, 50)
	assert.Equal(t, 40, CountSent(results))
}
