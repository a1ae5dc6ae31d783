package ask

// Suggester proposes completion candidates for the current input value.
// It is called when the user presses Tab.
type Suggester func(value string) []string

// Text prompts for a single line of free text.
//
// Example:
//
//	name, err := ask.NewText("What is your name?").
//		WithDefault("anonymous").
//		WithValidator(func(v string) error {
//			if v == "" {
//				return errors.New("a name is required")
//			}
//			return nil
//		}).
//		Prompt()
type Text struct {
	msg          string
	defaultValue string
	help         string
	validator    Validator
	formatter    Formatter
	suggester    Suggester
	pageSize     int
	renderConfig *RenderConfig
}

// NewText creates a text prompt with the given message.
func NewText(message string) *Text {
	return &Text{
		msg:          message,
		pageSize:     defaultPageSize,
		formatter:    func(v string) string { return v },
		renderConfig: defaultRenderConfig(),
	}
}

// WithDefault sets the value used when the user submits an empty buffer.
func (t *Text) WithDefault(value string) *Text {
	t.defaultValue = value
	return t
}

// WithHelp sets the help line shown below the prompt.
func (t *Text) WithHelp(message string) *Text {
	t.help = message
	return t
}

// WithValidator sets the answer validator.
func (t *Text) WithValidator(v Validator) *Text {
	t.validator = v
	return t
}

// WithFormatter sets the formatter for the permanent answer line.
func (t *Text) WithFormatter(f Formatter) *Text {
	t.formatter = f
	return t
}

// WithSuggester enables Tab completion backed by the given function.
func (t *Text) WithSuggester(s Suggester) *Text {
	t.suggester = s
	return t
}

// WithPageSize sets how many suggestions are shown at once.
func (t *Text) WithPageSize(size int) *Text {
	t.pageSize = size
	return t
}

// WithRenderConfig sets the color scheme for this prompt.
func (t *Text) WithRenderConfig(rc *RenderConfig) *Text {
	t.renderConfig = rc
	return t
}

// Prompt runs the prompt against the real terminal.
func (t *Text) Prompt() (string, error) {
	term, err := newRealTerminal()
	if err != nil {
		return "", err
	}
	defer term.Close()
	return t.promptWithTerminal(term)
}

func (t *Text) promptWithTerminal(term terminal) (string, error) {
	m := &textModel{prompt: t, in: newInput("")}
	return runPrompt(term, t.renderConfig, m)
}

// textModel is the driver state for a Text prompt: the buffer plus the
// suggestion list when one is displayed.
type textModel struct {
	prompt      *Text
	in          *input
	suggestions []ListOption
	cursor      int
	showing     bool
}

func (m *textModel) message() string {
	return m.prompt.msg
}

func (m *textModel) mapKey(k Key) action {
	return textActionFromKey(k, m.showing)
}

func (m *textModel) apply(a action) {
	switch a.kind {
	case actionMoveUp:
		if n := len(m.suggestions); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case actionMoveDown:
		if n := len(m.suggestions); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case actionPageUp:
		m.cursor = max(m.cursor-m.prompt.pageSize, 0)
	case actionPageDown:
		if n := len(m.suggestions); n > 0 {
			m.cursor = min(m.cursor+m.prompt.pageSize, n-1)
		}
	case actionUseSuggestion:
		m.useSuggestion()
	default:
		applyInputAction(m.in, a)
		if editsBuffer(a) {
			m.hideSuggestions()
		}
	}
}

// useSuggestion either opens the suggestion list or accepts the
// highlighted entry into the buffer.
func (m *textModel) useSuggestion() {
	if m.showing {
		m.in.setValue(m.suggestions[m.cursor].Value)
		m.hideSuggestions()
		return
	}
	if m.prompt.suggester == nil {
		return
	}
	values := m.prompt.suggester(m.in.String())
	if len(values) == 0 {
		return
	}
	m.suggestions = m.suggestions[:0]
	for i, v := range values {
		m.suggestions = append(m.suggestions, ListOption{Index: i, Value: v})
	}
	m.cursor = 0
	m.showing = true
}

func (m *textModel) hideSuggestions() {
	m.suggestions = m.suggestions[:0]
	m.cursor = 0
	m.showing = false
}

func (m *textModel) render(r *renderer) error {
	if err := r.printPromptInput(m.prompt.msg, m.prompt.defaultValue, m.in); err != nil {
		return err
	}
	if m.showing {
		page := paginate(m.prompt.pageSize, m.suggestions, m.cursor)
		if err := r.printOptions(page); err != nil {
			return err
		}
	}
	if m.prompt.help != "" {
		return r.printHelp(m.prompt.help)
	}
	return nil
}

func (m *textModel) submit() (answer, display string, err error) {
	value := m.in.String()
	if value == "" && m.prompt.defaultValue != "" {
		value = m.prompt.defaultValue
	}
	if m.prompt.validator != nil {
		if verr := m.prompt.validator(value); verr != nil {
			return "", "", retry(verr.Error())
		}
	}
	return value, m.prompt.formatter(value), nil
}
