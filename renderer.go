package ask

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// token is the styled-text primitive every layout is built from: a piece
// of text with an optional foreground and background color.
type token struct {
	content string
	fg      *Color
	bg      *Color
}

func text(content string) token {
	return token{content: content}
}

func (t token) withFG(c Color) token {
	t.fg = &c
	return t
}

func (t token) withBG(c Color) token {
	t.bg = &c
	return t
}

// renderer owns the prompt's terminal rows between frames. curLine counts
// the lines the previous frame occupied; resetPrompt clears exactly that
// many before the next frame is drawn, so the terminal never accumulates
// stale output and never loses unrelated rows. Every print method must
// increment curLine by exactly the newlines it emits or the bookkeeping
// corrupts the screen.
//
// The renderer hides the terminal cursor for its whole lifetime; close
// restores it and must run on every exit path.
type renderer struct {
	term      terminal
	config    *RenderConfig
	curLine   int
	termWidth int
}

func newRenderer(term terminal, config *RenderConfig) (*renderer, error) {
	if config == nil {
		config = defaultRenderConfig()
	}
	w, _, err := term.Size()
	if err != nil || w <= 0 {
		w = 80
	}
	r := &renderer{
		term:      term,
		config:    config,
		termWidth: w,
	}
	if err := term.CursorHide(); err != nil {
		return nil, err
	}
	return r, nil
}

// close restores cursor visibility. Safe to call on every exit path.
func (r *renderer) close() {
	_ = r.term.CursorShow()
	_ = r.term.Flush()
}

func (r *renderer) flush() error {
	return r.term.Flush()
}

// resetPrompt erases the previous frame: move up, reset the column and
// clear, once per line drawn last time, then zero the counter.
func (r *renderer) resetPrompt() error {
	for n := 0; n < r.curLine; n++ {
		if err := r.term.CursorUp(); err != nil {
			return err
		}
		if err := r.term.CursorHorizontalReset(); err != nil {
			return err
		}
		if err := r.term.ClearLine(); err != nil {
			return err
		}
	}
	r.curLine = 0
	return nil
}

// newLine terminates the current display line. This is the only place
// curLine grows.
func (r *renderer) newLine() error {
	if err := r.term.CursorHorizontalReset(); err != nil {
		return err
	}
	if err := r.term.Write("\n"); err != nil {
		return err
	}
	r.curLine++
	return nil
}

func (r *renderer) printToken(t token) error {
	if t.content == "" {
		return nil
	}
	styled := !r.config.DisableColors && (t.fg != nil || t.bg != nil)
	if styled {
		if t.fg != nil {
			if err := r.term.SetFG(*t.fg); err != nil {
				return err
			}
		}
		if t.bg != nil {
			if err := r.term.SetBG(*t.bg); err != nil {
				return err
			}
		}
	}
	if err := r.term.Write(t.content); err != nil {
		return err
	}
	if styled {
		return r.term.ResetColors()
	}
	return nil
}

func (r *renderer) printTokens(tokens ...token) error {
	for _, t := range tokens {
		if err := r.printToken(t); err != nil {
			return err
		}
	}
	return nil
}

// fit truncates s to the terminal width so one logical line never wraps,
// which would break the line count resetPrompt relies on.
func (r *renderer) fit(s string) string {
	return fitTo(s, r.termWidth-1)
}

// fitTo truncates s to a display width of at most w cells.
func fitTo(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "…")
}

// printErrorMessage renders a validation error line.
func (r *renderer) printErrorMessage(message string) error {
	if err := r.printToken(text(r.fit("# " + message)).withFG(r.config.Error)); err != nil {
		return err
	}
	return r.newLine()
}

// printPromptAnswer writes the permanent "? message answer" line shown
// after submission. The line shares one width budget between message and
// answer so it never wraps.
func (r *renderer) printPromptAnswer(message, answer string) error {
	msg := fitTo(message, r.termWidth-3)
	if err := r.printTokens(
		text("? ").withFG(r.config.Prefix),
		text(msg),
	); err != nil {
		return err
	}
	if avail := r.termWidth - 4 - runewidth.StringWidth(msg); avail > 0 {
		if err := r.printToken(text(" " + fitTo(answer, avail)).withFG(r.config.Answer)); err != nil {
			return err
		}
	}
	return r.newLine()
}

// printPrompt renders a prompt line without an editable buffer: the
// message, an optional default hint and optional static content,
// truncated as one line to the terminal width.
func (r *renderer) printPrompt(message, defaultHint, content string) error {
	line := message
	if defaultHint != "" {
		line += " (" + defaultHint + ")"
	}
	if content != "" {
		line += " " + content
	}
	if err := r.printTokens(
		text("? ").withFG(r.config.Prefix),
		text(fitTo(line, r.termWidth-3)),
	); err != nil {
		return err
	}
	return r.newLine()
}

// printPromptInput renders a prompt line with the input buffer, drawing
// the cell under the cursor in inverse colors so the hidden terminal
// cursor stays visible to the user. The line shares one width budget:
// when the buffer overflows it, the text left of the cursor is trimmed
// from its left end so the cursor cell stays on screen.
func (r *renderer) printPromptInput(message, defaultHint string, in *input) error {
	head := message
	if defaultHint != "" {
		head += " (" + defaultHint + ")"
	}
	head = fitTo(head, r.termWidth-5)
	if err := r.printTokens(
		text("? ").withFG(r.config.Prefix),
		text(head),
	); err != nil {
		return err
	}

	before, at, after := in.split()
	avail := r.termWidth - 4 - runewidth.StringWidth(head)
	atWidth := runewidth.StringWidth(at)
	if overflow := runewidth.StringWidth(before) + atWidth - avail; overflow > 0 {
		before = runewidth.TruncateLeft(before, overflow+1, "…")
	}
	if rest := avail - runewidth.StringWidth(before) - atWidth; rest > 0 {
		after = fitTo(after, rest)
	} else {
		after = ""
	}
	if err := r.printTokens(
		text(" "),
		text(before),
		text(at).withFG(r.config.CursorFG).withBG(r.config.CursorBG),
		text(after),
	); err != nil {
		return err
	}
	return r.newLine()
}

// printHelp renders a bracketed help line.
func (r *renderer) printHelp(message string) error {
	if err := r.printToken(text(r.fit("[" + message + "]")).withFG(r.config.Help)); err != nil {
		return err
	}
	return r.newLine()
}

// printOptions renders one page of a single-select list. The first and
// last rows become "^" / "v" continuation markers when the page does not
// touch the corresponding end of the full list.
func (r *renderer) printOptions(page Page[ListOption]) error {
	length := len(page.Content)
	for idx, option := range page.Content {
		line := r.fit(option.Value)
		switch {
		case idx == 0 && !page.First:
			if err := r.printToken(text("^ " + line)); err != nil {
				return err
			}
		case idx == length-1 && !page.Last:
			if err := r.printToken(text("v " + line)); err != nil {
				return err
			}
		case idx == page.Selection:
			if err := r.printToken(text("> " + line).withFG(r.config.Selected)); err != nil {
				return err
			}
		default:
			if err := r.printToken(text("  " + line)); err != nil {
				return err
			}
		}
		if err := r.newLine(); err != nil {
			return err
		}
	}
	return nil
}

// printMultiOptions renders one page of a multi-select list with checkbox
// markers. checked is keyed by the option's index in the full list.
func (r *renderer) printMultiOptions(page Page[ListOption], checked map[int]bool) error {
	for idx, option := range page.Content {
		cursor := text("  ")
		if idx == page.Selection {
			cursor = text("> ").withFG(r.config.Selected)
		}
		box := text("[ ] ")
		if checked[option.Index] {
			box = text("[x] ").withFG(r.config.Checked)
		}
		if err := r.printTokens(cursor, box, text(r.fit(option.Value))); err != nil {
			return err
		}
		if err := r.newLine(); err != nil {
			return err
		}
	}
	return nil
}

// printCalendarMonth renders the month grid of the date prompt: a
// centered "month year" header, a week-day header and six week rows.
// Dates outside the displayed month or outside the [min, max] range are
// dimmed; today and the selected date get their own styles.
func (r *renderer) printCalendarMonth(selected, today time.Time, weekStart time.Weekday, minDate, maxDate *time.Time) error {
	header := fmt.Sprintf("%s %d", monthName(selected.Month()), selected.Year())
	if err := r.printTokens(
		text("> ").withFG(r.config.Prefix),
		text(centerPad(header, 20)),
	); err != nil {
		return err
	}
	if err := r.newLine(); err != nil {
		return err
	}

	if err := r.printTokens(
		text("> ").withFG(r.config.Prefix),
		text(weekHeader(weekStart)),
	); err != nil {
		return err
	}
	if err := r.newLine(); err != nil {
		return err
	}

	day := calendarStart(selected, weekStart)
	for row := 0; row < 6; row++ {
		if err := r.printToken(text("> ").withFG(r.config.Prefix)); err != nil {
			return err
		}
		for i := 0; i < 7; i++ {
			if i > 0 {
				if err := r.term.Write(" "); err != nil {
					return err
				}
			}
			cell := text(fmt.Sprintf("%2d", day.Day()))
			switch {
			case sameDate(day, selected):
				cell = cell.withFG(r.config.CursorFG).withBG(r.config.CursorBG)
			case sameDate(day, today):
				cell = cell.withFG(r.config.Today)
			case day.Month() != selected.Month(),
				minDate != nil && day.Before(*minDate),
				maxDate != nil && day.After(*maxDate):
				cell = cell.withFG(r.config.Disabled)
			}
			if err := r.printToken(cell); err != nil {
				return err
			}
			day = day.AddDate(0, 0, 1)
		}
		if err := r.newLine(); err != nil {
			return err
		}
	}
	return nil
}

// cleanup replaces the prompt area with the final answer line. After it
// returns the renderer no longer owns those terminal rows.
func (r *renderer) cleanup(message, answer string) error {
	if err := r.resetPrompt(); err != nil {
		return err
	}
	return r.printPromptAnswer(message, answer)
}

func centerPad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, gap-left, "")
}

func monthName(m time.Month) string {
	names := [...]string{
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	}
	return names[m-1]
}

// weekHeader builds the "su mo tu ..." line starting from weekStart.
func weekHeader(weekStart time.Weekday) string {
	names := [...]string{"su", "mo", "tu", "we", "th", "fr", "sa"}
	out := ""
	for i := 0; i < 7; i++ {
		if i > 0 {
			out += " "
		}
		out += names[(int(weekStart)+i)%7]
	}
	return out
}

// calendarStart returns the first cell of the month grid: the weekStart
// day on or before the first of the selected month.
func calendarStart(selected time.Time, weekStart time.Weekday) time.Time {
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	for first.Weekday() != weekStart {
		first = first.AddDate(0, 0, -1)
	}
	return first
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
