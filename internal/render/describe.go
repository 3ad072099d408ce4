package render

import (
	"fmt"
	"log/slog"

	"github.com/mfreitas/gh-activity/internal/domain"
)

// githubHost is the web host used for every rendered link. Link targets are
// always of the form https://github.com/<repo>/<resource-path>/<id>.
const githubHost = "https://github.com"

// NoDescription is the sentinel result for events that produce no line:
// unknown type, unknown sub-action, ignored type, suppressed private
// activity, or a renderer failure. It is distinct from an error.
const NoDescription = ""

// renderFunc produces the public (non-redacted) line for one event.
// Returning NoDescription marks the event unrenderable (malformed payload).
type renderFunc func(ev domain.Event) string

// entry is one leaf of the description table: the public renderer plus the
// fixed redacted phrase used when the repository is private. An empty
// private phrase suppresses the event entirely under redaction.
type entry struct {
	render  renderFunc
	private string
}

// descriptor is one description-table value: either a direct entry, or a
// nested table keyed by payload action for event types whose meaning
// depends on a sub-action.
type descriptor struct {
	direct  *entry
	actions map[string]entry
}

// descriptions maps every supported event type to its descriptor. A table
// rather than a conditional chain keeps the supported set enumerable and
// testable one entry at a time; the nesting mirrors the feed's own
// two-level taxonomy (type, then action).
var descriptions = map[string]descriptor{
	domain.EventPush: {direct: &entry{
		render:  describePush,
		private: "📝 Committed to a private repo",
	}},
	// Private creation events are suppressed rather than redacted: even a
	// redacted line would reveal that a private repository exists.
	domain.EventCreate: {direct: &entry{
		render: describeCreate,
	}},
	domain.EventFork: {direct: &entry{
		render:  describeFork,
		private: "🍴 Forked a private repo",
	}},
	domain.EventIssues: {actions: map[string]entry{
		"opened": {
			render:  issueDescriber("❗ Opened"),
			private: "❗ Opened an issue in a private repo",
		},
		"closed": {
			render:  issueDescriber("❌ Closed"),
			private: "❌ Closed an issue in a private repo",
		},
		"reopened": {
			render:  issueDescriber("🔄 Reopened"),
			private: "🔄 Reopened an issue in a private repo",
		},
	}},
	domain.EventPullRequest: {actions: map[string]entry{
		"opened": {
			render:  describePROpened,
			private: "💪 Opened a PR in a private repo",
		},
		"closed": {
			render:  describePRClosed,
			private: "❌ Closed a PR in a private repo",
		},
	}},
	domain.EventIssueComment: {actions: map[string]entry{
		"created": {
			render:  describeIssueComment,
			private: "🗣 Commented on an issue in a private repo",
		},
	}},
	domain.EventRelease: {actions: map[string]entry{
		"published": {
			render:  describeRelease,
			private: "🚀 Published a release in a private repo",
		},
	}},
	domain.EventWatch: {actions: map[string]entry{
		"started": {
			render:  describeWatch,
			private: "⭐ Starred a private repo",
		},
	}},
}

// Classify maps one event to its rendered line. The boolean reports whether
// a line was produced; false is the sentinel case and never an error. Pure
// function of its inputs apart from the logging hook.
func Classify(ev domain.Event, isPrivate bool, ignore map[string]struct{}, logger *slog.Logger) (string, bool) {
	if _, ignored := ignore[ev.Type]; ignored {
		return NoDescription, false
	}

	d, known := descriptions[ev.Type]
	if !known {
		return NoDescription, false
	}

	e := d.direct
	if e == nil {
		// Unknown sub-actions fall through to the sentinel rather than a
		// generic message, so they are never mislabeled.
		leaf, found := d.actions[ev.Payload.Action]
		if !found {
			return NoDescription, false
		}
		e = &leaf
	}

	if isPrivate {
		if e.private == "" {
			return NoDescription, false
		}
		return e.private, true
	}

	return safeRender(e.render, ev, logger)
}

// safeRender invokes a renderer behind a recovery boundary so a single
// malformed event cannot abort the run. Failures surface through the logger
// and become the sentinel.
func safeRender(fn renderFunc, ev domain.Event, logger *slog.Logger) (line string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Warn("event renderer failed",
					"event_id", ev.ID,
					"event_type", ev.Type,
					"panic", r)
			}
			line, ok = NoDescription, false
		}
	}()

	line = fn(ev)
	return line, line != NoDescription
}

func describePush(ev domain.Event) string {
	if ev.Payload.Head == "" {
		return NoDescription
	}
	return fmt.Sprintf("📝 Committed to [%s](%s/%s/commit/%s)",
		ev.Repo, githubHost, ev.Repo, ev.Payload.Head)
}

func describeCreate(ev domain.Event) string {
	switch ev.Payload.RefType {
	case domain.RefTypeRepository:
		return "🎉 Created a new repository " + repoLink(ev.Repo)
	case domain.RefTypeBranch:
		return "🌱 Created a new branch in " + repoLink(ev.Repo)
	case domain.RefTypeTag:
		return "🔖 Created a new tag in " + repoLink(ev.Repo)
	default:
		return NoDescription
	}
}

func describeFork(ev domain.Event) string {
	return "🍴 Forked " + repoLink(ev.Repo)
}

// issueDescriber builds the renderer for one issue action. All issue
// actions share the same shape and differ only in the verb phrase.
func issueDescriber(verb string) renderFunc {
	return func(ev domain.Event) string {
		n := ev.Payload.Issue.Number
		if n == 0 {
			return NoDescription
		}
		return fmt.Sprintf("%s an issue [#%d](%s/%s/issues/%d) in %s",
			verb, n, githubHost, ev.Repo, n, repoLink(ev.Repo))
	}
}

func describePROpened(ev domain.Event) string {
	n := ev.Payload.PullRequest.Number
	if n == 0 {
		return NoDescription
	}
	return fmt.Sprintf("💪 Opened a PR %s in %s", prLink(ev.Repo, n), repoLink(ev.Repo))
}

func describePRClosed(ev domain.Event) string {
	n := ev.Payload.PullRequest.Number
	if n == 0 {
		return NoDescription
	}
	// GitHub reports merges as "closed" with the merged flag set.
	if ev.Payload.PullRequest.Merged {
		return fmt.Sprintf("🎉 Merged a PR %s in %s", prLink(ev.Repo, n), repoLink(ev.Repo))
	}
	return fmt.Sprintf("❌ Closed a PR %s in %s", prLink(ev.Repo, n), repoLink(ev.Repo))
}

func describeIssueComment(ev domain.Event) string {
	n := ev.Payload.Issue.Number
	if n == 0 {
		return NoDescription
	}
	return fmt.Sprintf("🗣 Commented on issue [#%d](%s/%s/issues/%d) in %s",
		n, githubHost, ev.Repo, n, repoLink(ev.Repo))
}

func describeRelease(ev domain.Event) string {
	tag := ev.Payload.Release.TagName
	if tag == "" {
		return NoDescription
	}
	return fmt.Sprintf("🚀 Published release [%s](%s/%s/releases/tag/%s) of %s",
		tag, githubHost, ev.Repo, tag, repoLink(ev.Repo))
}

func describeWatch(ev domain.Event) string {
	return "⭐ Starred " + repoLink(ev.Repo)
}

// repoLink renders the markdown link to a repository.
func repoLink(repo string) string {
	return fmt.Sprintf("[%s](%s/%s)", repo, githubHost, repo)
}

// prLink renders the markdown link to a pull request.
func prLink(repo string, number int) string {
	return fmt.Sprintf("[#%d](%s/%s/pull/%d)", number, githubHost, repo, number)
}
