package readme

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestUpdate_SplicesBetweenMarkers tests that only the marked section is
// replaced and surrounding content is untouched.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestUpdate_SplicesBetweenMarkers(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "README.md")
	writeFile(t, path, "# Profile\n\nIntro text.\n\n"+
		StartMarker+"\nold content\n"+EndMarker+"\n\nFooter.\n")
	updater := NewUpdater(path, testLogger())

	// Act
	changed, err := updater.Update("1. 📝 Committed to [user/repo](https://github.com/user/repo/commit/abc)")

	// Assert
	require.NoError(t, err)
	assert.True(t, changed)

	content := readFile(t, path)
	assert.Contains(t, content, "# Profile\n\nIntro text.\n\n")
	assert.Contains(t, content, StartMarker+"\n1. 📝 Committed to")
	assert.Contains(t, content, "\nFooter.\n")
	assert.NotContains(t, content, "old content")
}

// TestUpdate_Idempotent tests that running twice with the same block
// produces byte-identical output and reports no change the second time.
func TestUpdate_Idempotent(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "README.md")
	writeFile(t, path, "before\n"+StartMarker+"\nx\n"+EndMarker+"\nafter\n")
	updater := NewUpdater(path, testLogger())

	// Act
	first, err := updater.Update("1. line one\n2. line two")
	require.NoError(t, err)
	afterFirst := readFile(t, path)

	second, err := updater.Update("1. line one\n2. line two")
	require.NoError(t, err)
	afterSecond := readFile(t, path)

	// Assert
	assert.True(t, first)
	assert.False(t, second)
	assert.Equal(t, afterFirst, afterSecond)
}

// TestUpdate_NoMarkers tests the whole-document fallback when the markers
// are absent.
func TestUpdate_NoMarkers(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "README.md")
	writeFile(t, path, "just some text, no markers\n")
	updater := NewUpdater(path, testLogger())

	// Act
	changed, err := updater.Update("1. latest activity")

	// Assert
	require.NoError(t, err)
	assert.True(t, changed)

	content := readFile(t, path)
	assert.Equal(t, StartMarker+"\n1. latest activity\n"+EndMarker+"\n", content)
}

// TestUpdate_MissingFile tests that a missing document is created as a
// fresh marked section.
func TestUpdate_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	updater := NewUpdater(path, testLogger())

	changed, err := updater.Update("1. latest activity")

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, readFile(t, path), "1. latest activity")
}

// TestUpdate_StartMarkerWithoutEnd tests that a lone start marker is
// treated as missing markers rather than swallowing the document tail.
func TestUpdate_StartMarkerWithoutEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	writeFile(t, path, "intro\n"+StartMarker+"\ntail that must not be eaten\n")
	updater := NewUpdater(path, testLogger())

	changed, err := updater.Update("1. activity")

	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, StartMarker+"\n1. activity\n"+EndMarker+"\n", readFile(t, path))
}

// TestSplice_SecondMarkerPairUntouched tests that only the first marker
// pair is spliced; later pairs are preserved.
func TestSplice_SecondMarkerPairUntouched(t *testing.T) {
	content := StartMarker + "\na\n" + EndMarker + "\nmiddle\n" +
		StartMarker + "\nb\n" + EndMarker + "\n"

	result := splice(content, "new")

	assert.Contains(t, result, StartMarker+"\nnew\n"+EndMarker+"\nmiddle\n")
	assert.Contains(t, result, StartMarker+"\nb\n"+EndMarker)
}
