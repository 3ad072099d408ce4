package domain

import "time"

// Event represents one immutable record of user activity from the GitHub
// events feed (a push, an issue action, a repository creation, etc.).
// Produced by the feed client; consumed by the classifier.
type Event struct {
	ID        string    // Event ID as reported by the feed
	Type      string    // Event type, e.g. "PushEvent", "IssuesEvent"
	Repo      string    // Repository full name in "owner/name" form
	CreatedAt time.Time // When the event occurred

	// Public reports the repository visibility as carried by the feed
	// itself. A nil value means the feed did not say; callers must resolve
	// visibility through a secondary lookup instead of guessing.
	Public *bool

	// Payload holds the type-dependent detail fields. Only the fields
	// relevant to Type are populated; the rest stay zero.
	Payload Payload
}

// Payload is the union of per-type detail fields the description table
// reads. Modelling it as one flat struct keeps events immutable and avoids
// type assertions on interface values.
type Payload struct {
	Action      string      // Sub-action for nested types: "opened", "closed", ...
	Head        string      // Head commit SHA (PushEvent)
	Commits     []Commit    // Commits in the push (PushEvent)
	RefType     string      // "repository", "branch" or "tag" (CreateEvent)
	Ref         string      // Ref name (CreateEvent)
	Issue       Issue       // Issue detail (IssuesEvent, IssueCommentEvent)
	PullRequest PullRequest // Pull request detail (PullRequestEvent)
	Release     Release     // Release detail (ReleaseEvent)
}

// Commit is one commit carried by a push event.
type Commit struct {
	SHA     string
	Message string
}

// Issue is the issue detail carried by issue-related events.
type Issue struct {
	Number int
}

// PullRequest is the pull request detail carried by PR events.
type PullRequest struct {
	Number int
	Merged bool
}

// Release is the release detail carried by release events.
type Release struct {
	TagName string
}
