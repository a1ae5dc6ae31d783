package ask

import "strings"

// Confirm prompts for a yes/no answer. The user types y/yes or n/no; an
// empty submission resolves to the default when one is set. Anything
// else renders an error and keeps the prompt running with the typed
// input intact.
//
// Example:
//
//	ok, err := ask.NewConfirm("Proceed with the installation?").
//		WithDefault(true).
//		Prompt()
type Confirm struct {
	msg          string
	help         string
	defaultValue *bool
	formatter    func(bool) string
	renderConfig *RenderConfig
}

// NewConfirm creates a confirmation prompt with no default answer.
func NewConfirm(message string) *Confirm {
	return &Confirm{
		msg: message,
		formatter: func(v bool) string {
			if v {
				return "Yes"
			}
			return "No"
		},
		renderConfig: defaultRenderConfig(),
	}
}

// WithDefault sets the answer used when the user submits empty input.
func (c *Confirm) WithDefault(value bool) *Confirm {
	c.defaultValue = &value
	return c
}

// WithHelp sets the help line shown below the prompt.
func (c *Confirm) WithHelp(message string) *Confirm {
	c.help = message
	return c
}

// WithFormatter sets the formatter for the permanent answer line.
func (c *Confirm) WithFormatter(f func(bool) string) *Confirm {
	c.formatter = f
	return c
}

// WithRenderConfig sets the color scheme for this prompt.
func (c *Confirm) WithRenderConfig(rc *RenderConfig) *Confirm {
	c.renderConfig = rc
	return c
}

// Prompt runs the prompt against the real terminal.
func (c *Confirm) Prompt() (bool, error) {
	term, err := newRealTerminal()
	if err != nil {
		return false, err
	}
	defer term.Close()
	return c.promptWithTerminal(term)
}

func (c *Confirm) promptWithTerminal(term terminal) (bool, error) {
	m := &confirmModel{prompt: c, in: newInput("")}
	if _, err := runPrompt(term, c.renderConfig, m); err != nil {
		return false, err
	}
	return m.result, nil
}

type confirmModel struct {
	prompt *Confirm
	in     *input
	result bool
}

func (m *confirmModel) message() string {
	return m.prompt.msg
}

func (m *confirmModel) mapKey(k Key) action {
	return inputActionFromKey(k)
}

func (m *confirmModel) apply(a action) {
	applyInputAction(m.in, a)
}

// defaultHint renders the y/n indicator, capitalizing the default.
func (m *confirmModel) defaultHint() string {
	switch {
	case m.prompt.defaultValue == nil:
		return "y/n"
	case *m.prompt.defaultValue:
		return "Y/n"
	default:
		return "y/N"
	}
}

func (m *confirmModel) render(r *renderer) error {
	if err := r.printPromptInput(m.prompt.msg, m.defaultHint(), m.in); err != nil {
		return err
	}
	if m.prompt.help != "" {
		return r.printHelp(m.prompt.help)
	}
	return nil
}

func (m *confirmModel) submit() (answer, display string, err error) {
	value := strings.ToLower(strings.TrimSpace(m.in.String()))

	var result bool
	switch value {
	case "":
		if m.prompt.defaultValue == nil {
			return "", "", retry("invalid answer, try typing 'y' for yes or 'n' for no")
		}
		result = *m.prompt.defaultValue
	case "y", "yes":
		result = true
	case "n", "no":
		result = false
	default:
		return "", "", retry("invalid answer, try typing 'y' for yes or 'n' for no")
	}

	m.result = result
	return value, m.prompt.formatter(result), nil
}
