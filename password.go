package ask

// Password prompts for masked input: nothing is echoed while typing. By
// default the user must confirm the entry by typing it a second time;
// the prompt fails with ErrConfirmationMismatch on the first mismatch
// instead of offering another attempt.
//
// Example:
//
//	secret, err := ask.NewPassword("New passphrase:").
//		WithValidator(func(v string) error {
//			if len(v) < 8 {
//				return errors.New("at least 8 characters")
//			}
//			return nil
//		}).
//		Prompt()
type Password struct {
	msg            string
	help           string
	validator      Validator
	formatter      Formatter
	confirmation   bool
	confirmMessage string
	renderConfig   *RenderConfig
}

// NewPassword creates a password prompt with confirmation enabled.
func NewPassword(message string) *Password {
	return &Password{
		msg:            message,
		confirmation:   true,
		confirmMessage: message,
		formatter:      func(string) string { return "********" },
		renderConfig:   defaultRenderConfig(),
	}
}

// WithoutConfirmation disables the confirmation stage.
func (p *Password) WithoutConfirmation() *Password {
	p.confirmation = false
	return p
}

// WithConfirmMessage sets the message shown during the confirmation
// stage. It defaults to the prompt message.
func (p *Password) WithConfirmMessage(message string) *Password {
	p.confirmMessage = message
	return p
}

// WithHelp sets the help line shown below the prompt.
func (p *Password) WithHelp(message string) *Password {
	p.help = message
	return p
}

// WithValidator sets the validator run against the first entry.
func (p *Password) WithValidator(v Validator) *Password {
	p.validator = v
	return p
}

// WithFormatter sets the formatter for the permanent answer line. The
// default masks the answer entirely.
func (p *Password) WithFormatter(f Formatter) *Password {
	p.formatter = f
	return p
}

// WithRenderConfig sets the color scheme for this prompt.
func (p *Password) WithRenderConfig(rc *RenderConfig) *Password {
	p.renderConfig = rc
	return p
}

// Prompt runs the prompt against the real terminal.
func (p *Password) Prompt() (string, error) {
	term, err := newRealTerminal()
	if err != nil {
		return "", err
	}
	defer term.Close()
	return p.promptWithTerminal(term)
}

func (p *Password) promptWithTerminal(term terminal) (string, error) {
	m := &passwordModel{prompt: p, in: newInput("")}
	return runPrompt(term, p.renderConfig, m)
}

const (
	stageInitial = iota
	stageConfirm
)

// passwordModel holds the buffer plus the confirmation-stage state: once
// the first entry validates, it is stored, the buffer is cleared and the
// loop re-enters in the confirmation stage.
type passwordModel struct {
	prompt *Password
	in     *input
	stage  int
	first  string
}

func (m *passwordModel) message() string {
	return m.prompt.msg
}

func (m *passwordModel) mapKey(k Key) action {
	return inputActionFromKey(k)
}

func (m *passwordModel) apply(a action) {
	applyInputAction(m.in, a)
}

func (m *passwordModel) render(r *renderer) error {
	msg := m.prompt.msg
	if m.stage == stageConfirm {
		msg = m.prompt.confirmMessage
	}
	if err := r.printPrompt(msg, "", ""); err != nil {
		return err
	}
	if m.prompt.help != "" {
		return r.printHelp(m.prompt.help)
	}
	return nil
}

func (m *passwordModel) submit() (answer, display string, err error) {
	value := m.in.String()

	if m.stage == stageInitial {
		if m.prompt.validator != nil {
			if verr := m.prompt.validator(value); verr != nil {
				return "", "", retry(verr.Error())
			}
		}
		if !m.prompt.confirmation {
			return value, m.prompt.formatter(value), nil
		}
		m.first = value
		m.in.clear()
		m.stage = stageConfirm
		return "", "", errContinue
	}

	if value != m.first {
		return "", "", ErrConfirmationMismatch
	}
	return m.first, m.prompt.formatter(m.first), nil
}
