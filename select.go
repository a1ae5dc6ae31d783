package ask

import (
	"fmt"

	"github.com/sahilm/fuzzy"
)

// Filter decides whether an option stays visible for the typed filter
// value. When no custom filter is set, options are fuzzy-matched and
// ordered by match score.
type Filter func(filterValue, optionValue string, index int) bool

// Select prompts the user to pick one option from a list. Typing filters
// the list while the arrow keys (and j/k in vim mode) move the cursor,
// wrapping around at both ends. The option list must be non-empty.
//
// Example:
//
//	fruit, err := ask.NewSelect("What's your favorite fruit?", []string{
//		"Banana", "Apple", "Strawberry", "Grapes", "Lemon",
//		"Tangerine", "Watermelon", "Orange", "Pear", "Avocado",
//	}).Prompt()
type Select struct {
	msg            string
	options        []string
	help           string
	pageSize       int
	vimMode        bool
	startingCursor int
	filter         Filter
	formatter      OptionFormatter
	renderConfig   *RenderConfig
}

// NewSelect creates a select prompt over the given options.
func NewSelect(message string, options []string) *Select {
	return &Select{
		msg:          message,
		options:      options,
		help:         "↑↓ to move, enter to select, type to filter",
		pageSize:     defaultPageSize,
		formatter:    func(o ListOption) string { return o.Value },
		renderConfig: defaultRenderConfig(),
	}
}

// WithHelp sets the help line shown below the options.
func (s *Select) WithHelp(message string) *Select {
	s.help = message
	return s
}

// WithoutHelp removes the default help line.
func (s *Select) WithoutHelp() *Select {
	s.help = ""
	return s
}

// WithPageSize sets how many options are shown at once.
func (s *Select) WithPageSize(size int) *Select {
	s.pageSize = size
	return s
}

// WithVimMode enables j/k navigation.
func (s *Select) WithVimMode(enabled bool) *Select {
	s.vimMode = enabled
	return s
}

// WithStartingCursor sets the option highlighted when the prompt opens.
func (s *Select) WithStartingCursor(index int) *Select {
	s.startingCursor = index
	return s
}

// WithFilter replaces the default fuzzy filter with a predicate.
func (s *Select) WithFilter(f Filter) *Select {
	s.filter = f
	return s
}

// WithFormatter sets the formatter for the permanent answer line.
func (s *Select) WithFormatter(f OptionFormatter) *Select {
	s.formatter = f
	return s
}

// WithRenderConfig sets the color scheme for this prompt.
func (s *Select) WithRenderConfig(rc *RenderConfig) *Select {
	s.renderConfig = rc
	return s
}

// Prompt runs the prompt and returns the selected option value.
func (s *Select) Prompt() (string, error) {
	op, err := s.RawPrompt()
	if err != nil {
		return "", err
	}
	return op.Value, nil
}

// RawPrompt runs the prompt and returns the selected option along with
// its index in the original option list.
func (s *Select) RawPrompt() (ListOption, error) {
	term, err := newRealTerminal()
	if err != nil {
		return ListOption{}, err
	}
	defer term.Close()
	return s.rawPromptWithTerminal(term)
}

func (s *Select) validate() error {
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

func (s *Select) rawPromptWithTerminal(term terminal) (ListOption, error) {
	if err := s.validate(); err != nil {
		return ListOption{}, err
	}
	m := &selectModel{prompt: s, in: newInput(""), cursor: s.startingCursor}
	m.refilter()
	if _, err := runPrompt(term, s.renderConfig, m); err != nil {
		return ListOption{}, err
	}
	return m.result, nil
}

// filterOptions computes the visible options for the typed filter value,
// preserving original indexes so the selection survives filtering.
func filterOptions(options []string, filterValue string, custom Filter) []ListOption {
	if filterValue == "" {
		all := make([]ListOption, len(options))
		for i, v := range options {
			all[i] = ListOption{Index: i, Value: v}
		}
		return all
	}

	if custom != nil {
		var kept []ListOption
		for i, v := range options {
			if custom(filterValue, v, i) {
				kept = append(kept, ListOption{Index: i, Value: v})
			}
		}
		return kept
	}

	matches := fuzzy.Find(filterValue, options)
	kept := make([]ListOption, 0, len(matches))
	for _, m := range matches {
		kept = append(kept, ListOption{Index: m.Index, Value: m.Str})
	}
	return kept
}

// selectModel is the driver state for a Select prompt: the filter buffer,
// the filtered view and the cursor within it.
type selectModel struct {
	prompt   *Select
	in       *input
	filtered []ListOption
	cursor   int
	result   ListOption
}

func (m *selectModel) message() string {
	return m.prompt.msg
}

func (m *selectModel) mapKey(k Key) action {
	return selectActionFromKey(k, m.prompt.vimMode)
}

func (m *selectModel) refilter() {
	m.filtered = filterOptions(m.prompt.options, m.in.String(), m.prompt.filter)
}

func (m *selectModel) apply(a action) {
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
	default:
		applyInputAction(m.in, a)
		if editsBuffer(a) {
			m.refilter()
			m.cursor = 0
		}
	}
}

func (m *selectModel) render(r *renderer) error {
	if err := r.printPromptInput(m.prompt.msg, "", m.in); err != nil {
		return err
	}
	if len(m.filtered) > 0 {
		page := paginate(m.prompt.pageSize, m.filtered, m.cursor)
		if err := r.printOptions(page); err != nil {
			return err
		}
	}
	if m.prompt.help != "" {
		return r.printHelp(m.prompt.help)
	}
	return nil
}

func (m *selectModel) submit() (answer, display string, err error) {
	if len(m.filtered) == 0 {
		// Nothing highlighted to select; ignore the submit.
		return "", "", errContinue
	}
	m.result = m.filtered[m.cursor]
	return m.result.Value, m.prompt.formatter(m.result), nil
}
