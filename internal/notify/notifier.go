package notify

import "context"

// Notifier defines the interface for publishing messages to a notification
// channel. This abstraction allows swapping the logging mock with the real
// email integration without refactoring.
type Notifier interface {
	Publish(ctx context.Context, subject, message string) error
}
