package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/mfreitas/gh-activity/internal/api"
	"github.com/mfreitas/gh-activity/internal/domain"
)

const (
	defaultBaseURL = "https://api.github.com"
	// MaxPerPage is the largest page size the events API accepts.
	MaxPerPage = 100

	// Client-side pacing for API requests. The unauthenticated quota is
	// 60 requests per hour, so the limiter mostly protects the
	// authenticated visibility-lookup path from bursting.
	requestsPerSecond = 2
	requestBurst      = 5

	userAgent = "gh-activity/1.0"
)

// Client implements api.FeedClient against the GitHub REST API.
// Follows Single Responsibility Principle - only handles GitHub API
// communication and wire-format conversion.
type Client struct {
	baseURL    string
	token      string
	httpClient HTTPClient
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates a new GitHub feed client.
// Uses dependency injection for HTTPClient (IoC).
func NewClient(config api.ClientConfig, httpClient HTTPClient, logger *slog.Logger) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		logger:     logger,
	}
}

// ListEvents retrieves one page of a user's activity feed, newest first.
func (c *Client) ListEvents(ctx context.Context, username string, page, perPage int) ([]domain.Event, error) {
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	url := fmt.Sprintf("%s/users/%s/events?page=%d&per_page=%d", c.baseURL, username, page, perPage)

	var ghEvents []githubEvent
	if err := c.doRequest(ctx, url, &ghEvents); err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", username, err)
	}

	c.logger.Debug("fetched events page", "username", username, "page", page, "events", len(ghEvents))
	return c.convertEvents(ghEvents), nil
}

// IsRepoPrivate reports the visibility of a repository ("owner/name").
func (c *Client) IsRepoPrivate(ctx context.Context, repo string) (bool, error) {
	url := fmt.Sprintf("%s/repos/%s", c.baseURL, repo)

	var ghRepo githubRepository
	if err := c.doRequest(ctx, url, &ghRepo); err != nil {
		return false, fmt.Errorf("failed to look up repository %s: %w", repo, err)
	}

	return ghRepo.Private, nil
}

// doRequest performs a paced, authenticated GET against the GitHub API.
func (c *Client) doRequest(ctx context.Context, url string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// convertEvents converts GitHub wire events to domain models.
func (c *Client) convertEvents(ghEvents []githubEvent) []domain.Event {
	events := make([]domain.Event, 0, len(ghEvents))
	for _, ev := range ghEvents {
		events = append(events, domain.Event{
			ID:        ev.ID,
			Type:      ev.Type,
			Repo:      ev.Repo.Name,
			CreatedAt: ev.CreatedAt,
			Public:    ev.Public,
			Payload:   convertPayload(ev.Payload),
		})
	}
	return events
}

// convertPayload converts the wire payload to the domain union. Fields that
// are absent for the event's type simply stay zero.
func convertPayload(p githubPayload) domain.Payload {
	out := domain.Payload{
		Action:  p.Action,
		Head:    p.Head,
		Ref:     p.Ref,
		RefType: p.RefType,
	}
	for _, commit := range p.Commits {
		out.Commits = append(out.Commits, domain.Commit{
			SHA:     commit.SHA,
			Message: commit.Message,
		})
	}
	if p.Issue != nil {
		out.Issue = domain.Issue{Number: p.Issue.Number}
	}
	if p.PullRequest != nil {
		out.PullRequest = domain.PullRequest{
			Number: p.PullRequest.Number,
			Merged: p.PullRequest.Merged,
		}
	}
	if p.Release != nil {
		out.Release = domain.Release{TagName: p.Release.TagName}
	}
	return out
}

// GitHub API response types
type githubEvent struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"`
	Repo      githubRepoRef `json:"repo"`
	Public    *bool         `json:"public"`
	CreatedAt time.Time     `json:"created_at"`
	Payload   githubPayload `json:"payload"`
}

type githubRepoRef struct {
	Name string `json:"name"`
}

type githubPayload struct {
	Action      string             `json:"action"`
	Head        string             `json:"head"`
	Ref         string             `json:"ref"`
	RefType     string             `json:"ref_type"`
	Commits     []githubCommit     `json:"commits"`
	Issue       *githubIssue       `json:"issue"`
	PullRequest *githubPullRequest `json:"pull_request"`
	Release     *githubRelease     `json:"release"`
}

type githubCommit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

type githubIssue struct {
	Number int `json:"number"`
}

type githubPullRequest struct {
	Number int  `json:"number"`
	Merged bool `json:"merged"`
}

type githubRelease struct {
	TagName string `json:"tag_name"`
}

type githubRepository struct {
	FullName string `json:"full_name"`
	Private  bool   `json:"private"`
}
