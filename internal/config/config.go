package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mfreitas/gh-activity/internal/domain"
)

// ErrInvalidConfig marks configuration errors. These are reported before
// any fetch begins; callers can branch with errors.Is.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all inputs of one update run.
// Follows Single Responsibility - only holds configuration data.
type Config struct {
	// Username is the GitHub account whose activity is rendered.
	Username string `koanf:"username"`

	// Token authenticates API requests. Optional for public activity, but
	// required to resolve private-repository visibility.
	Token string `koanf:"token"`

	// EventLimit caps the number of rendered activity lines.
	EventLimit int `koanf:"event_limit"`

	// OutputStyle selects the list formatting: MARKDOWN or LIST.
	OutputStyle string `koanf:"output_style"`

	// IgnoreEvents lists event types to exclude, either as a JSON array
	// ("[\"PushEvent\"]", the action's input format) or comma-separated.
	IgnoreEvents string `koanf:"ignore_events"`

	// HideDetailsOnPrivateRepos redacts identifying detail from events on
	// private repositories.
	HideDetailsOnPrivateRepos bool `koanf:"hide_details_on_private_repos"`

	// ReadmePath is the target document.
	ReadmePath string `koanf:"readme_path"`

	// CommitMessage is used when committing the updated document.
	CommitMessage string `koanf:"commit_message"`

	// CommitChanges controls whether an updated document is committed.
	CommitChanges bool `koanf:"commit_changes"`

	// APIURL overrides the GitHub API base URL (e.g. for GHES).
	APIURL string `koanf:"api_url"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// defaults returns a Config populated with default values. Load layers the
// optional config file and environment variables on top.
func defaults() *Config {
	return &Config{
		EventLimit:    5,
		OutputStyle:   string(domain.StyleMarkdown),
		ReadmePath:    "README.md",
		CommitMessage: "⚡ Update README with the latest activity",
		CommitChanges: true,
		APIURL:        "https://api.github.com",
		LogLevel:      "info",
	}
}

// Validate checks the loaded configuration. Any failure here is a
// configuration error and must abort the run before the first fetch.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("%w: GITHUB_USERNAME is required", ErrInvalidConfig)
	}
	if c.EventLimit <= 0 {
		return fmt.Errorf("%w: EVENT_LIMIT must be a positive integer, got %d", ErrInvalidConfig, c.EventLimit)
	}
	if _, ok := domain.ParseStyle(c.OutputStyle); !ok {
		return fmt.Errorf("%w: unknown OUTPUT_STYLE %q", ErrInvalidConfig, c.OutputStyle)
	}
	if strings.TrimSpace(c.ReadmePath) == "" {
		return fmt.Errorf("%w: README_PATH must not be empty", ErrInvalidConfig)
	}
	if _, err := c.IgnoreList(); err != nil {
		return err
	}
	return nil
}

// Style returns the parsed output style. Only valid after Validate.
func (c *Config) Style() domain.Style {
	style, _ := domain.ParseStyle(c.OutputStyle)
	return style
}

// IgnoreList returns the event types to exclude. Both the original JSON
// array form and a plain comma-separated list are accepted.
func (c *Config) IgnoreList() ([]string, error) {
	raw := strings.TrimSpace(c.IgnoreEvents)
	if raw == "" {
		return nil, nil
	}

	if strings.HasPrefix(raw, "[") {
		var types []string
		if err := json.Unmarshal([]byte(raw), &types); err != nil {
			return nil, fmt.Errorf("%w: IGNORE_EVENTS is not a valid JSON array: %v", ErrInvalidConfig, err)
		}
		return trimNonEmpty(types), nil
	}

	return trimNonEmpty(strings.Split(raw, ",")), nil
}

func trimNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
