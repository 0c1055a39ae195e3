package live

import (
	"sync"

	"github.com/google/uuid"
)

// Message is one server-sent event: a name and its JSON payload.
type Message struct {
	Event string
	Data  []byte
}

// Stream is one live subscription. The hub is the only producer; the HTTP
// handler that subscribed is the only consumer. msgs is never closed, so a
// late offer can never panic; consumers stop on Done instead.
type Stream struct {
	InventoryID uuid.UUID
	UserID      uuid.UUID

	msgs chan Message
	done chan struct{}
	once sync.Once
}

func newStream(inventoryID, userID uuid.UUID, buffer int) *Stream {
	return &Stream{
		InventoryID: inventoryID,
		UserID:      userID,
		msgs:        make(chan Message, buffer),
		done:        make(chan struct{}),
	}
}

// Messages returns the channel of pending events.
func (s *Stream) Messages() <-chan Message {
	return s.msgs
}

// Done is closed once the hub has removed the stream.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// offer queues m without blocking. It reports false when the stream is
// closed or its buffer is full.
func (s *Stream) offer(m Message) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.msgs <- m:
		return true
	default:
		return false
	}
}

func (s *Stream) close() {
	s.once.Do(func() { close(s.done) })
}
