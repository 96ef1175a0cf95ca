package notification

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jabrielm92/ARIadmin-client-sub000/internal/logger"
)

// Message channels.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Message is one queued notification.
type Message struct {
	ID      string            // assigned on enqueue
	Channel string            // email or sms
	To      string            // email address or phone number
	Subject string            // email only
	Body    string
	Meta    map[string]string // free-form context for the log line
}

// Queue buffers messages and delivers them on a single worker goroutine.
type Queue struct {
	messages chan Message
	wg       sync.WaitGroup
	mu       sync.Mutex
	closed   bool
}

// NewQueue creates a queue with the given buffer size (default 256).
func NewQueue(bufferSize int) *Queue {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	return &Queue{
		messages: make(chan Message, bufferSize),
	}
}

// Enqueue queues a message without blocking. When the buffer is full the
// message is dropped and logged, matching the logger's drop policy. The lock
// is held across the send so Close cannot close the channel mid-enqueue.
func (q *Queue) Enqueue(msg Message) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}

	select {
	case q.messages <- msg:
	default:
		logger.GetErrorLogger().WithField("channel", msg.Channel).Warn("Notification queue full, message dropped")
	}
}

// Start runs the delivery worker until ctx is cancelled.
func (q *Queue) Start(ctx context.Context) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-q.messages:
				if !ok {
					return
				}
				q.deliver(msg)
			}
		}
	}()
}

// Close stops accepting messages and waits for the worker to drain.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.messages)
	q.mu.Unlock()

	q.wg.Wait()
}

// deliver routes the message to its channel stub.
func (q *Queue) deliver(msg Message) {
	switch msg.Channel {
	case ChannelEmail:
		sendEmail(msg)
	case ChannelSMS:
		sendSMS(msg)
	default:
		logger.GetErrorLogger().WithField("channel", msg.Channel).Warn("Unknown notification channel")
	}
}

// defaultQueue is the process-wide queue started by the server entrypoint.
var (
	defaultQueue *Queue
	defaultOnce  sync.Once
)

// Default returns the process-wide queue, creating it on first use.
func Default() *Queue {
	defaultOnce.Do(func() {
		defaultQueue = NewQueue(256)
	})
	return defaultQueue
}
