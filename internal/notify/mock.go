package notify

import (
	"context"
	"log"
)

// MockNotifier implements the Notifier interface by logging messages to
// stdout. Used when no email credentials are configured.
type MockNotifier struct{}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Publish(ctx context.Context, subject, message string) error {
	log.Printf("📨 [MockNotifier] %s: %s", subject, message)
	return nil
}
