package controller

import (
	"sync"
	"time"
)

// messageClearDelay is how long a transient message stays visible.
const messageClearDelay = 3 * time.Second

// MessageKind distinguishes the transient message states of a view.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageError
	MessageSuccess
)

// Message is the transient error/success text shown above a list view.
type Message struct {
	Kind MessageKind
	Text string
}

// messageCenter owns the auto-clearing message slot. Every message carries a
// generation; the clear timer only fires for its own generation, so a timer
// left over from an earlier message can never clobber a newer one.
type messageCenter struct {
	mu         sync.Mutex
	current    Message
	generation uint64
	clearAfter time.Duration
}

func newMessageCenter(clearAfter time.Duration) *messageCenter {
	if clearAfter <= 0 {
		clearAfter = messageClearDelay
	}
	return &messageCenter{clearAfter: clearAfter}
}

func (m *messageCenter) set(kind MessageKind, text string) {
	m.mu.Lock()
	m.generation++
	generation := m.generation
	m.current = Message{Kind: kind, Text: text}
	m.mu.Unlock()

	time.AfterFunc(m.clearAfter, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.generation == generation {
			m.current = Message{}
		}
	})
}

func (m *messageCenter) message() Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}
