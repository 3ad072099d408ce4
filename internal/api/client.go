package api

import (
	"context"

	"github.com/mfreitas/gh-activity/internal/domain"
)

// FeedClient defines the interface to the activity feed provider.
// This follows Interface Segregation Principle - small, focused interface.
// Consumers depend on this interface, not on the GitHub implementation.
type FeedClient interface {
	// ListEvents returns one page of the user's activity feed in the
	// provider's native order (newest first). Page numbering is 1-based.
	ListEvents(ctx context.Context, username string, page, perPage int) ([]domain.Event, error)

	// IsRepoPrivate reports whether the repository ("owner/name") is
	// private. Used as the secondary visibility lookup when an event does
	// not carry its own visibility flag.
	IsRepoPrivate(ctx context.Context, repo string) (bool, error)
}

// ClientConfig holds common configuration for feed clients.
type ClientConfig struct {
	BaseURL string
	Token   string
}
