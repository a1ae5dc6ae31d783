package ask

import (
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererCursorLifecycle(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)
	assert.True(t, term.cursorHidden, "renderer must hide the cursor on startup")

	r.close()
	assert.False(t, term.cursorHidden, "close must restore the cursor")
}

func TestRendererResetPrompt(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	require.NoError(t, r.printPrompt("first", "", ""))
	require.NoError(t, r.printErrorMessage("boom"))
	require.NoError(t, r.printHelp("a hint"))
	assert.Equal(t, 3, r.curLine, "one increment per rendered line")

	term.out.Reset()
	require.NoError(t, r.resetPrompt())
	assert.Equal(t, 0, r.curLine)
	assert.Equal(t, 3, strings.Count(term.out.String(), "\x1b[1A"), "one cursor-up per previous line")
	assert.Equal(t, 3, strings.Count(term.out.String(), "\x1b[2K"), "one clear per previous line")
}

func TestRendererCleanup(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	require.NoError(t, r.printPromptInput("What is your name?", "", newInput("Bob")))
	require.NoError(t, r.cleanup("What is your name?", "Bob"))

	assert.Contains(t, term.plainOutput(), "? What is your name? Bob")
	assert.Equal(t, 1, r.curLine, "only the answer line remains")
}

func TestRendererErrorMessage(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	require.NoError(t, r.printErrorMessage("a name is required"))
	assert.Contains(t, term.plainOutput(), "# a name is required")
}

func TestRendererOptionMarkers(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	// A window in the middle of the list gets both continuation markers.
	page := paginate(5, listOptions(12), 6)
	require.NoError(t, r.printOptions(page))

	lines := strings.Split(strings.ReplaceAll(term.plainOutput(), "\r", ""), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "^ e", lines[0], "window does not start at the first option")
	assert.Equal(t, "  f", lines[1])
	assert.Equal(t, "> g", lines[2], "cursor row")
	assert.Equal(t, "  h", lines[3])
	assert.Equal(t, "v i", lines[4], "window does not end at the last option")
	assert.Equal(t, 5, r.curLine)
}

func TestRendererOptionMarkersAtEnds(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	require.NoError(t, r.printOptions(paginate(5, listOptions(3), 0)))

	out := term.plainOutput()
	assert.NotContains(t, out, "^", "no marker when the window touches the start")
	assert.NotContains(t, out, "v", "no marker when the window touches the end")
	assert.Contains(t, out, "> a")
}

func TestRendererMultiOptions(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	page := paginate(5, listOptions(3), 1)
	require.NoError(t, r.printMultiOptions(page, map[int]bool{0: true, 2: true}))

	lines := strings.Split(strings.ReplaceAll(term.plainOutput(), "\r", ""), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "  [x] a", lines[0])
	assert.Equal(t, "> [ ] b", lines[1], "cursor row is independent of the checkbox")
	assert.Equal(t, "  [x] c", lines[2])
}

func TestRendererCalendarMonth(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	selected := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)
	today := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, r.printCalendarMonth(selected, today, time.Sunday, nil, nil))

	assert.Equal(t, 8, r.curLine, "header, week header and six week rows")
	out := term.plainOutput()
	assert.Contains(t, out, "february 2026")
	assert.Contains(t, out, "su mo tu we th fr sa")
}

func TestRendererFit(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	term.width = 10
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	assert.Equal(t, "abc", r.fit("abc"))
	assert.Equal(t, "aaaaaaaa…", r.fit(strings.Repeat("a", 40)), "long lines must not wrap")
}

func TestRendererPromptLinesFitWidth(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	term.width = 10
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	require.NoError(t, r.printPromptInput("Q:", "", newInput(strings.Repeat("a", 50))))
	require.NoError(t, r.printPrompt(strings.Repeat("m", 30), "hint", "content"))
	require.NoError(t, r.printPromptAnswer(strings.Repeat("m", 30), strings.Repeat("b", 30)))
	require.NoError(t, r.printPromptAnswer("Q:", strings.Repeat("b", 30)))
	assert.Equal(t, 4, r.curLine)

	for _, line := range strings.Split(strings.ReplaceAll(term.plainOutput(), "\r", ""), "\n") {
		assert.Less(t, runewidth.StringWidth(line), term.width,
			"line %q would wrap and corrupt the frame line count", line)
	}
}

func TestRendererInputOverflowKeepsCursorVisible(t *testing.T) {
	t.Parallel()

	term := newMockTerminal()
	term.width = 20
	r, err := newRenderer(term, RenderConfigEmpty)
	require.NoError(t, err)

	// Cursor at the end of a buffer five times the terminal width: the
	// text is trimmed from its left end, keeping the tail on screen.
	require.NoError(t, r.printPromptInput("Q:", "", newInput(strings.Repeat("a", 50))))
	out := strings.ReplaceAll(term.plainOutput(), "\r", "")
	assert.Contains(t, out, "…aaaa")
	assert.Less(t, runewidth.StringWidth(strings.TrimSuffix(out, "\n")), term.width)
}

func TestCenterPad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  abc  ", centerPad("abc", 7))
	assert.Equal(t, " abc  ", centerPad("abc", 6), "extra cell goes to the right")
	assert.Equal(t, "abcdef", centerPad("abcdef", 4), "never truncates")
}

func TestWeekHeader(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "su mo tu we th fr sa", weekHeader(time.Sunday))
	assert.Equal(t, "mo tu we th fr sa su", weekHeader(time.Monday))
	assert.Equal(t, "sa su mo tu we th fr", weekHeader(time.Saturday))
}

func TestCalendarStart(t *testing.T) {
	t.Parallel()

	// February 2026 starts on a Sunday.
	selected := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)

	start := calendarStart(selected, time.Sunday)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)

	start = calendarStart(selected, time.Monday)
	assert.Equal(t, time.Date(2026, time.January, 26, 0, 0, 0, 0, time.UTC), start)
}

func TestMonthName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "january", monthName(time.January))
	assert.Equal(t, "december", monthName(time.December))
}

func TestSameDate(t *testing.T) {
	t.Parallel()

	a := time.Date(2026, time.August, 23, 9, 30, 0, 0, time.UTC)
	b := time.Date(2026, time.August, 23, 23, 59, 0, 0, time.UTC)
	assert.True(t, sameDate(a, b), "time of day must not matter")
	assert.False(t, sameDate(a, b.AddDate(0, 0, 1)))
}
