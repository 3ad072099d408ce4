package domain

// Event type constants as named by the GitHub events API.
const (
	EventPush         = "PushEvent"
	EventCreate       = "CreateEvent"
	EventFork         = "ForkEvent"
	EventIssues       = "IssuesEvent"
	EventPullRequest  = "PullRequestEvent"
	EventIssueComment = "IssueCommentEvent"
	EventRelease      = "ReleaseEvent"
	EventWatch        = "WatchEvent"
)

// Ref type constants for CreateEvent payloads.
const (
	RefTypeRepository = "repository"
	RefTypeBranch     = "branch"
	RefTypeTag        = "tag"
)

// Style selects the formatting rule applied uniformly to every rendered
// activity line.
type Style string

const (
	// StyleMarkdown renders a numbered markdown list ("1. ...").
	StyleMarkdown Style = "MARKDOWN"
	// StyleList renders dash bullets ("- ...").
	StyleList Style = "LIST"
)

// ParseStyle maps a configured style name to a Style. The second return
// value reports whether the name is known.
func ParseStyle(name string) (Style, bool) {
	switch Style(name) {
	case StyleMarkdown:
		return StyleMarkdown, true
	case StyleList:
		return StyleList, true
	default:
		return "", false
	}
}
