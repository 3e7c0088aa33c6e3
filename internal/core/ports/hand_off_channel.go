package ports

import "context"

// HandOffChannel opens a deep link on the external messaging channel so a
// human dispatcher receives the booking request.
type HandOffChannel interface {
	// Open asks the platform to open link. An error means no handler could
	// take it; the caller reports it and does not retry.
	Open(ctx context.Context, link string) error
}
