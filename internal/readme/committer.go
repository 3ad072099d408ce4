package readme

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"
)

// Commit identity used when running inside a workflow checkout.
const (
	commitAuthorName  = "github-actions[bot]"
	commitAuthorEmail = "41898282+github-actions[bot]@users.noreply.github.com"
)

// Committer records the updated document in git. It shells out to the git
// binary of the surrounding checkout, which is the only git available in a
// workflow job.
type Committer struct {
	logger *slog.Logger
}

// NewCommitter creates a new committer.
func NewCommitter(logger *slog.Logger) *Committer {
	return &Committer{logger: logger}
}

// Commit stages path and commits it with message. A clean tree is reported
// as success, not an error, so repeated runs stay idempotent.
func (c *Committer) Commit(ctx context.Context, path, message string) error {
	dir := filepath.Dir(path)
	file := filepath.Base(path)

	if out, err := gitRun(ctx, dir, "add", "--", file); err != nil {
		return fmt.Errorf("git add failed: %w: %s", err, out)
	}

	// diff --cached --quiet exits non-zero only when staged changes exist.
	if _, err := gitRun(ctx, dir, "diff", "--cached", "--quiet", "--", file); err == nil {
		c.logger.Info("no staged changes to commit", "path", path)
		return nil
	}

	out, err := gitRun(ctx, dir,
		"-c", "user.name="+commitAuthorName,
		"-c", "user.email="+commitAuthorEmail,
		"commit", "-m", message, "--", file)
	if err != nil {
		return fmt.Errorf("git commit failed: %w: %s", err, out)
	}

	c.logger.Info("committed document update", "path", path, "message", message)
	return nil
}

func gitRun(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
