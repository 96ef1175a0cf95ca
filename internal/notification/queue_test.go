package notification

import (
	"context"
	"sync"
	"testing"
)

func TestQueue_EnqueueAfterCloseIsSafe(t *testing.T) {
	q := NewQueue(4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)
	q.Close()

	// Must neither panic nor block once the queue is closed.
	q.Enqueue(Message{Channel: ChannelEmail, To: "late@example.com", Body: "late"})
}

func TestQueue_ConcurrentEnqueueAndClose(t *testing.T) {
	q := NewQueue(8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	q.Start(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 32; j++ {
				q.Enqueue(Message{Channel: ChannelEmail, To: "a@example.com", Body: "hi"})
			}
		}()
	}

	q.Close()
	wg.Wait()
}

func TestQueue_AssignsMessageID(t *testing.T) {
	q := NewQueue(1)

	msg := Message{Channel: ChannelSMS, To: "+15550000000", Body: "hi"}
	q.Enqueue(msg)

	got := <-q.messages
	if got.ID == "" {
		t.Error("enqueue must assign an id")
	}
}

func TestQueue_DropsWhenFull(t *testing.T) {
	q := NewQueue(1)

	q.Enqueue(Message{Channel: ChannelEmail, To: "a@example.com", Body: "first"})
	q.Enqueue(Message{Channel: ChannelEmail, To: "b@example.com", Body: "dropped"})

	if got := len(q.messages); got != 1 {
		t.Errorf("buffered = %d, want 1", got)
	}
	first := <-q.messages
	if first.Body != "first" {
		t.Errorf("kept message = %q, want the first one", first.Body)
	}
}
