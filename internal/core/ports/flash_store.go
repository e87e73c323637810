package ports

import "context"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-time user-facing notice that survives a redirect.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FlashStore holds pending flash messages per anonymous browser session.
type FlashStore interface {
	Add(ctx context.Context, sessionID string, f Flash) error
	// Consume returns and removes all pending messages for the session.
	Consume(ctx context.Context, sessionID string) ([]Flash, error)
}
