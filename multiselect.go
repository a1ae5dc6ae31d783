package ask

import (
	"fmt"
	"sort"
	"strings"
)

// MultiSelect prompts the user to pick any number of options from a
// list. Space toggles the highlighted option, the right arrow selects
// every visible option and the left arrow clears the selection; typing
// filters the list like Select does.
//
// Example:
//
//	toppings, err := ask.NewMultiSelect("Pick your toppings:", []string{
//		"Cheese", "Mushrooms", "Olives", "Pepperoni", "Onions",
//	}).Prompt()
type MultiSelect struct {
	msg            string
	options        []string
	help           string
	pageSize       int
	vimMode        bool
	startingCursor int
	filter         Filter
	validator      MultiValidator
	formatter      func([]ListOption) string
	renderConfig   *RenderConfig
}

// NewMultiSelect creates a multi-select prompt over the given options.
func NewMultiSelect(message string, options []string) *MultiSelect {
	return &MultiSelect{
		msg:      message,
		options:  options,
		help:     "↑↓ to move, space to select one, → to all, ← to none, type to filter",
		pageSize: defaultPageSize,
		formatter: func(selection []ListOption) string {
			values := make([]string, len(selection))
			for i, op := range selection {
				values[i] = op.Value
			}
			return strings.Join(values, ", ")
		},
		renderConfig: defaultRenderConfig(),
	}
}

// WithHelp sets the help line shown below the options.
func (s *MultiSelect) WithHelp(message string) *MultiSelect {
	s.help = message
	return s
}

// WithoutHelp removes the default help line.
func (s *MultiSelect) WithoutHelp() *MultiSelect {
	s.help = ""
	return s
}

// WithPageSize sets how many options are shown at once.
func (s *MultiSelect) WithPageSize(size int) *MultiSelect {
	s.pageSize = size
	return s
}

// WithVimMode enables j/k navigation.
func (s *MultiSelect) WithVimMode(enabled bool) *MultiSelect {
	s.vimMode = enabled
	return s
}

// WithStartingCursor sets the option highlighted when the prompt opens.
func (s *MultiSelect) WithStartingCursor(index int) *MultiSelect {
	s.startingCursor = index
	return s
}

// WithFilter replaces the default fuzzy filter with a predicate.
func (s *MultiSelect) WithFilter(f Filter) *MultiSelect {
	s.filter = f
	return s
}

// WithValidator sets the validator run against the selected set.
func (s *MultiSelect) WithValidator(v MultiValidator) *MultiSelect {
	s.validator = v
	return s
}

// WithFormatter sets the formatter for the permanent answer line.
func (s *MultiSelect) WithFormatter(f func([]ListOption) string) *MultiSelect {
	s.formatter = f
	return s
}

// WithRenderConfig sets the color scheme for this prompt.
func (s *MultiSelect) WithRenderConfig(rc *RenderConfig) *MultiSelect {
	s.renderConfig = rc
	return s
}

// Prompt runs the prompt and returns the selected option values in
// option-list order.
func (s *MultiSelect) Prompt() ([]string, error) {
	selection, err := s.RawPrompt()
	if err != nil {
		return nil, err
	}
	values := make([]string, len(selection))
	for i, op := range selection {
		values[i] = op.Value
	}
	return values, nil
}

// RawPrompt runs the prompt and returns the selected options with their
// indexes in the original option list.
func (s *MultiSelect) RawPrompt() ([]ListOption, error) {
	term, err := newRealTerminal()
	if err != nil {
		return nil, err
	}
	defer term.Close()
	return s.rawPromptWithTerminal(term)
}

func (s *MultiSelect) validate() error {
	if len(s.options) == 0 {
		return fmt.Errorf("%w: options list is empty", ErrInvalidConfiguration)
	}
	if s.startingCursor < 0 || s.startingCursor >= len(s.options) {
		return fmt.Errorf("%w: starting cursor %d is out of range", ErrInvalidConfiguration, s.startingCursor)
	}
	if s.pageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidConfiguration)
	}
	return nil
}

func (s *MultiSelect) rawPromptWithTerminal(term terminal) ([]ListOption, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	m := &multiSelectModel{
		prompt:  s,
		in:      newInput(""),
		cursor:  s.startingCursor,
		checked: make(map[int]bool),
	}
	m.refilter()
	if _, err := runPrompt(term, s.renderConfig, m); err != nil {
		return nil, err
	}
	return m.result, nil
}

// multiSelectModel is the driver state for a MultiSelect prompt. checked
// is keyed by the option's index in the full list so toggles survive
// filter changes.
type multiSelectModel struct {
	prompt   *MultiSelect
	in       *input
	filtered []ListOption
	cursor   int
	checked  map[int]bool
	result   []ListOption
}

func (m *multiSelectModel) message() string {
	return m.prompt.msg
}

func (m *multiSelectModel) mapKey(k Key) action {
	return multiSelectActionFromKey(k, m.prompt.vimMode)
}

func (m *multiSelectModel) refilter() {
	m.filtered = filterOptions(m.prompt.options, m.in.String(), m.prompt.filter)
}

func (m *multiSelectModel) apply(a action) {
	n := len(m.filtered)
	switch a.kind {
	case actionMoveUp:
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case actionMoveDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case actionPageUp:
		m.cursor = max(m.cursor-m.prompt.pageSize, 0)
	case actionPageDown:
		if n > 0 {
			m.cursor = min(m.cursor+m.prompt.pageSize, n-1)
		}
	case actionToggle:
		if n > 0 {
			idx := m.filtered[m.cursor].Index
			m.checked[idx] = !m.checked[idx]
		}
	case actionToggleAll:
		for _, op := range m.filtered {
			m.checked[op.Index] = true
		}
	case actionToggleNone:
		clear(m.checked)
	default:
		applyInputAction(m.in, a)
		if editsBuffer(a) {
			m.refilter()
			m.cursor = 0
		}
	}
}

func (m *multiSelectModel) render(r *renderer) error {
	if err := r.printPromptInput(m.prompt.msg, "", m.in); err != nil {
		return err
	}
	if len(m.filtered) > 0 {
		page := paginate(m.prompt.pageSize, m.filtered, m.cursor)
		if err := r.printMultiOptions(page, m.checked); err != nil {
			return err
		}
	}
	if m.prompt.help != "" {
		return r.printHelp(m.prompt.help)
	}
	return nil
}

// selection returns the checked options in option-list order.
func (m *multiSelectModel) selection() []ListOption {
	indexes := make([]int, 0, len(m.checked))
	for idx, on := range m.checked {
		if on {
			indexes = append(indexes, idx)
		}
	}
	sort.Ints(indexes)
	selection := make([]ListOption, len(indexes))
	for i, idx := range indexes {
		selection[i] = ListOption{Index: idx, Value: m.prompt.options[idx]}
	}
	return selection
}

func (m *multiSelectModel) submit() (answer, display string, err error) {
	selection := m.selection()
	if m.prompt.validator != nil {
		if verr := m.prompt.validator(selection); verr != nil {
			return "", "", retry(verr.Error())
		}
	}
	m.result = selection
	display = m.prompt.formatter(selection)
	values := make([]string, len(selection))
	for i, op := range selection {
		values[i] = op.Value
	}
	return strings.Join(values, ", "), display, nil
}
