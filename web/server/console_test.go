package server

import (
	"testing"
	"time"
)

func receive(t *testing.T, messageChan <-chan ConsoleMessage) ConsoleMessage {
	t.Helper()
	select {
	case msg := <-messageChan:
		return msg
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timeout waiting for console message")
		return ConsoleMessage{}
	}
}

func TestWebLogger_FormattedMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-format", messageChan)

	logger.Printf("Rendering %dx%d using %d workers...\n", 400, 300, 8)

	msg := receive(t, messageChan)
	expected := "Rendering 400x300 using 8 workers...\n"
	if msg.Message != expected {
		t.Errorf("Expected formatted message '%s', got '%s'", expected, msg.Message)
	}
	if msg.RenderID != "test-render-format" {
		t.Errorf("Expected render ID 'test-render-format', got '%s'", msg.RenderID)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestWebLogger_Levels(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 10)
	logger := NewWebLogger("test-render-levels", messageChan)

	tests := []struct {
		message string
		level   string
	}{
		{"Render completed in 1s\n", "info"},
		{"Render cancelled after 3 of 10 rows\n", "warning"},
		{"Error creating file\n", "error"},
	}

	for _, tt := range tests {
		logger.Printf("%s", tt.message)
		if msg := receive(t, messageChan); msg.Level != tt.level {
			t.Errorf("Message %q: expected level '%s', got '%s'", tt.message, tt.level, msg.Level)
		}
	}
}

func TestWebLogger_ChannelFull(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("test-render-full", messageChan)

	logger.Printf("Message 1\n")
	// These must not block even though the channel is full
	logger.Printf("Message 2\n")
	logger.Printf("Message 3\n")

	if msg := receive(t, messageChan); msg.Message != "Message 1\n" {
		t.Errorf("Expected first message to be kept, got '%s'", msg.Message)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("test-render-nil", nil)
	logger.Printf("Test message with nil channel\n")
}
