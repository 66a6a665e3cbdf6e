package systems

import (
	"fmt"
	"sync"
)

// MessageLog stores debug messages, newest last
type MessageLog struct {
	mu          sync.Mutex
	Messages    []ColoredMessage
	MaxMessages int
}

// Global message log instance (singleton)
var (
	globalMessageLog *MessageLog
	messageLogOnce   sync.Once
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	messageLogOnce.Do(func() {
		globalMessageLog = NewMessageLog()
	})
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Addf formats and adds a message of the given type
func (ml *MessageLog) Addf(msgType MessageType, format string, args ...any) {
	ml.AddTyped(fmt.Sprintf(format, args...), msgType)
}

// AddTyped adds a message with an explicit type
func (ml *MessageLog) AddTyped(message string, msgType MessageType) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Logger returns a logging function that tags every line with msgType
func (ml *MessageLog) Logger(msgType MessageType) func(string) {
	return func(message string) {
		ml.AddTyped(message, msgType)
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	n = min(n, len(ml.Messages))
	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// Snapshot returns a copy of all stored messages, oldest first
func (ml *MessageLog) Snapshot() []ColoredMessage {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	out := make([]ColoredMessage, len(ml.Messages))
	copy(out, ml.Messages)
	return out
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.Messages = nil
}
