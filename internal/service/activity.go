package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mfreitas/gh-activity/internal/api"
	"github.com/mfreitas/gh-activity/internal/domain"
	"github.com/mfreitas/gh-activity/internal/render"
)

const (
	eventsPerPage = 100

	// The events API only serves a bounded window of recent activity
	// (about 300 events), so the page cap is a guard against a feed that
	// never reports exhaustion, not a tuning knob.
	maxEventPages = 10

	// Two consecutive empty pages are treated as feed exhaustion.
	maxEmptyPages = 2
)

// ActivityService drives the fetch-classify-accumulate pipeline.
// Follows Single Responsibility Principle - orchestrates the feed client
// and the classifier, nothing else.
type ActivityService struct {
	client             api.FeedClient
	ignore             map[string]struct{}
	hidePrivateDetails bool
	logger             *slog.Logger

	// privacy memoizes repository visibility lookups for one run. The map
	// is confined to this service instance and never shared.
	privacy map[string]bool
}

// NewActivityService creates a new activity service.
// Uses dependency injection for the feed client (IoC).
func NewActivityService(client api.FeedClient, ignoreEvents []string, hidePrivateDetails bool, logger *slog.Logger) *ActivityService {
	ignore := make(map[string]struct{}, len(ignoreEvents))
	for _, t := range ignoreEvents {
		ignore[t] = struct{}{}
	}

	return &ActivityService{
		client:             client,
		ignore:             ignore,
		hidePrivateDetails: hidePrivateDetails,
		logger:             logger,
		privacy:            make(map[string]bool),
	}
}

// Fetch collects up to limit rendered activity lines in feed order (newest
// first). It returns fewer lines only when the feed is exhausted first.
// Any page-fetch failure aborts the run; partial results are discarded.
func (s *ActivityService) Fetch(ctx context.Context, username string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("event limit must be positive, got %d", limit)
	}

	var lines []string
	emptyStreak := 0

	for page := 1; page <= maxEventPages && len(lines) < limit; page++ {
		events, err := s.client.ListEvents(ctx, username, page, eventsPerPage)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch events page %d: %w", page, err)
		}

		if len(events) == 0 {
			emptyStreak++
			if emptyStreak >= maxEmptyPages {
				break
			}
			continue
		}
		emptyStreak = 0

		for _, ev := range events {
			line, ok := render.Classify(ev, s.resolvePrivacy(ctx, ev), s.ignore, s.logger)
			if !ok {
				// Sentinel results never count toward the limit.
				continue
			}
			lines = append(lines, line)
			if len(lines) == limit {
				break
			}
		}

		// A short page means the feed has no further events.
		if len(events) < eventsPerPage {
			break
		}
	}

	s.logger.Info("activity collected", "username", username, "lines", len(lines), "limit", limit)
	return lines, nil
}

// resolvePrivacy reports whether the event must be rendered redacted.
// Redaction only applies when the run is configured to hide private detail.
func (s *ActivityService) resolvePrivacy(ctx context.Context, ev domain.Event) bool {
	if !s.hidePrivateDetails {
		return false
	}
	return s.repoIsPrivate(ctx, ev)
}

// repoIsPrivate resolves repository visibility: the event's own flag is
// authoritative when present; otherwise one lookup per repository per run.
func (s *ActivityService) repoIsPrivate(ctx context.Context, ev domain.Event) bool {
	if ev.Public != nil {
		return !*ev.Public
	}

	if private, seen := s.privacy[ev.Repo]; seen {
		return private
	}

	private, err := s.client.IsRepoPrivate(ctx, ev.Repo)
	if err != nil {
		// Visibility unknown: assume private so detail is never leaked.
		s.logger.Warn("repository visibility lookup failed; treating as private",
			"repo", ev.Repo, "error", err)
		private = true
	}
	s.privacy[ev.Repo] = private
	return private
}
