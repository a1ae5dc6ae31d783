package ask

import (
	"fmt"
	"time"
)

// DateValidator checks a candidate date. A nil return accepts it.
type DateValidator func(value time.Time) error

// DateFormatter turns the chosen date into the string shown on the
// permanent answer line.
type DateFormatter func(value time.Time) string

// DateSelect prompts for a calendar date on a month grid. The arrows
// move by day and week, PageUp/PageDown by month and Shift+PageUp/
// PageDown by year; movement clamps to the configured date range.
//
// Example:
//
//	when, err := ask.NewDateSelect("When do you want to travel?").
//		WithMinDate(time.Now()).
//		Prompt()
type DateSelect struct {
	msg          string
	help         string
	startingDate time.Time
	minDate      *time.Time
	maxDate      *time.Time
	weekStart    time.Weekday
	vimMode      bool
	validator    DateValidator
	formatter    DateFormatter
	renderConfig *RenderConfig
}

// NewDateSelect creates a date prompt starting at today's date.
func NewDateSelect(message string) *DateSelect {
	return &DateSelect{
		msg:          message,
		help:         "arrows to move, with page up/down for months, enter to select",
		startingDate: truncateDate(time.Now()),
		weekStart:    time.Sunday,
		formatter:    func(v time.Time) string { return v.Format(time.DateOnly) },
		renderConfig: defaultRenderConfig(),
	}
}

// WithHelp sets the help line shown below the calendar.
func (d *DateSelect) WithHelp(message string) *DateSelect {
	d.help = message
	return d
}

// WithStartingDate sets the date highlighted when the prompt opens.
func (d *DateSelect) WithStartingDate(date time.Time) *DateSelect {
	d.startingDate = truncateDate(date)
	return d
}

// WithMinDate sets the earliest selectable date.
func (d *DateSelect) WithMinDate(date time.Time) *DateSelect {
	t := truncateDate(date)
	d.minDate = &t
	return d
}

// WithMaxDate sets the latest selectable date.
func (d *DateSelect) WithMaxDate(date time.Time) *DateSelect {
	t := truncateDate(date)
	d.maxDate = &t
	return d
}

// WithWeekStart sets the weekday the calendar columns start on.
func (d *DateSelect) WithWeekStart(day time.Weekday) *DateSelect {
	d.weekStart = day
	return d
}

// WithVimMode enables h/j/k/l navigation.
func (d *DateSelect) WithVimMode(enabled bool) *DateSelect {
	d.vimMode = enabled
	return d
}

// WithValidator sets the date validator.
func (d *DateSelect) WithValidator(v DateValidator) *DateSelect {
	d.validator = v
	return d
}

// WithFormatter sets the formatter for the permanent answer line.
func (d *DateSelect) WithFormatter(f DateFormatter) *DateSelect {
	d.formatter = f
	return d
}

// WithRenderConfig sets the color scheme for this prompt.
func (d *DateSelect) WithRenderConfig(rc *RenderConfig) *DateSelect {
	d.renderConfig = rc
	return d
}

// Prompt runs the prompt and returns the selected date.
func (d *DateSelect) Prompt() (time.Time, error) {
	term, err := newRealTerminal()
	if err != nil {
		return time.Time{}, err
	}
	defer term.Close()
	return d.promptWithTerminal(term)
}

func (d *DateSelect) validate() error {
	if d.minDate != nil && d.maxDate != nil && d.minDate.After(*d.maxDate) {
		return fmt.Errorf("%w: min date is after max date", ErrInvalidConfiguration)
	}
	if d.minDate != nil && d.startingDate.Before(*d.minDate) {
		return fmt.Errorf("%w: starting date is before min date", ErrInvalidConfiguration)
	}
	if d.maxDate != nil && d.startingDate.After(*d.maxDate) {
		return fmt.Errorf("%w: starting date is after max date", ErrInvalidConfiguration)
	}
	return nil
}

func (d *DateSelect) promptWithTerminal(term terminal) (time.Time, error) {
	if err := d.validate(); err != nil {
		return time.Time{}, err
	}
	m := &dateModel{prompt: d, current: d.startingDate, today: truncateDate(time.Now())}
	if _, err := runPrompt(term, d.renderConfig, m); err != nil {
		return time.Time{}, err
	}
	return m.result, nil
}

// dateModel is the driver state for a DateSelect prompt: the currently
// highlighted date.
type dateModel struct {
	prompt  *DateSelect
	current time.Time
	today   time.Time
	result  time.Time
}

func (m *dateModel) message() string {
	return m.prompt.msg
}

func (m *dateModel) mapKey(k Key) action {
	return dateActionFromKey(k, m.prompt.vimMode)
}

func (m *dateModel) apply(a action) {
	next := m.current
	switch a.kind {
	case actionPrevDay:
		next = next.AddDate(0, 0, -1)
	case actionNextDay:
		next = next.AddDate(0, 0, 1)
	case actionPrevWeek:
		next = next.AddDate(0, 0, -7)
	case actionNextWeek:
		next = next.AddDate(0, 0, 7)
	case actionPrevMonth:
		next = addMonths(next, -1)
	case actionNextMonth:
		next = addMonths(next, 1)
	case actionPrevYear:
		next = addMonths(next, -12)
	case actionNextYear:
		next = addMonths(next, 12)
	default:
		return
	}
	m.current = m.clamp(next)
}

func (m *dateModel) clamp(t time.Time) time.Time {
	if m.prompt.minDate != nil && t.Before(*m.prompt.minDate) {
		return *m.prompt.minDate
	}
	if m.prompt.maxDate != nil && t.After(*m.prompt.maxDate) {
		return *m.prompt.maxDate
	}
	return t
}

func (m *dateModel) render(r *renderer) error {
	if err := r.printPrompt(m.prompt.msg, "", m.prompt.formatter(m.current)); err != nil {
		return err
	}
	if err := r.printCalendarMonth(m.current, m.today, m.prompt.weekStart, m.prompt.minDate, m.prompt.maxDate); err != nil {
		return err
	}
	if m.prompt.help != "" {
		return r.printHelp(m.prompt.help)
	}
	return nil
}

func (m *dateModel) submit() (answer, display string, err error) {
	if m.prompt.validator != nil {
		if verr := m.prompt.validator(m.current); verr != nil {
			return "", "", retry(verr.Error())
		}
	}
	m.result = m.current
	return m.current.Format(time.DateOnly), m.prompt.formatter(m.current), nil
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// addMonths shifts by whole months, clamping the day to the length of the
// target month instead of letting the excess spill into the next one.
func addMonths(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	day := min(t.Day(), daysInMonth(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}
