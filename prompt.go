package ask

import (
	"errors"
	"fmt"
	"io"
)

// defaultPageSize is the number of options list prompts show at once.
const defaultPageSize = 7

// Validator checks a candidate answer. A nil return accepts the value; a
// non-nil error keeps the prompt running and renders the error text.
// Validators must be side-effect-free over their input: they may be
// called any number of times with the same value.
type Validator func(value string) error

// MultiValidator checks the selected set of a multi-select prompt.
type MultiValidator func(selection []ListOption) error

// Formatter turns the final answer into the string shown on the
// permanent answer line. It is invoked exactly once, at submission.
type Formatter func(value string) string

// OptionFormatter formats the chosen option of a select prompt.
type OptionFormatter func(option ListOption) string

// model is the per-prompt state machine driven by runPrompt: it maps raw
// keys to its own action set, applies non-terminal actions, renders the
// current state, and decides what a submit means.
type model interface {
	// message is the prompt text, used for the final answer line.
	message() string
	// mapKey decodes one key event into the prompt's action set.
	mapKey(k Key) action
	// apply mutates prompt state for a non-submit action.
	apply(a action)
	// render draws the current frame. The driver has already cleared the
	// previous one and printed any pending error line.
	render(r *renderer) error
	// submit attempts to produce the final answer. It returns the raw
	// answer and its display form, or an error: a retryError keeps the
	// loop running with the message rendered, errContinue keeps it
	// running silently (confirmation stage), anything else is fatal.
	submit() (answer, display string, err error)
}

// runPrompt is the control loop every prompt type runs: render, block for
// one key, map it, apply or submit, repeat. Raw mode and the hidden
// cursor are scoped here and released on every exit path.
func runPrompt(t terminal, config *RenderConfig, m model) (answer string, err error) {
	if err := t.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("failed to restore terminal: %w", rerr)
		}
	}()

	r, err := newRenderer(t, config)
	if err != nil {
		return "", fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer r.close()

	// Validation failure from the last submit, redrawn until the next one.
	pending := ""

	for {
		if err := r.resetPrompt(); err != nil {
			return "", err
		}
		if pending != "" {
			if err := r.printErrorMessage(pending); err != nil {
				return "", err
			}
		}
		if err := m.render(r); err != nil {
			return "", err
		}
		if err := r.flush(); err != nil {
			return "", err
		}

		k, err := t.ReadKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", fmt.Errorf("failed to read key: %w", err)
		}

		act := m.mapKey(k)
		switch act.kind {
		case actionNone:
			continue

		case actionCancel:
			if err := r.resetPrompt(); err != nil {
				return "", err
			}
			if err := r.flush(); err != nil {
				return "", err
			}
			return "", ErrCanceled

		case actionInterrupt:
			return "", ErrInterrupted

		case actionEndOfInput:
			return "", ErrEOF

		case actionSubmit:
			answer, display, serr := m.submit()
			if serr == nil {
				if err := r.cleanup(m.message(), display); err != nil {
					return "", err
				}
				if err := r.flush(); err != nil {
					return "", err
				}
				return answer, nil
			}
			if errors.Is(serr, errContinue) {
				pending = ""
				continue
			}
			var rerr *retryError
			if errors.As(serr, &rerr) {
				pending = rerr.msg
				continue
			}
			return "", serr

		default:
			m.apply(act)
		}
	}
}

// applyInputAction routes a shared text-editing action to the buffer.
// Prompt models call this for the subset they delegate.
func applyInputAction(in *input, a action) {
	switch a.kind {
	case actionInsert:
		in.insert(a.r)
	case actionMoveLeft:
		in.moveLeft()
	case actionMoveRight:
		in.moveRight()
	case actionMoveWordLeft:
		in.moveWordLeft()
	case actionMoveWordRight:
		in.moveWordRight()
	case actionMoveToStart:
		in.moveToStart()
	case actionMoveToEnd:
		in.moveToEnd()
	case actionDeleteLeft:
		in.deleteLeft()
	case actionDeleteRight:
		in.deleteRight()
	case actionDeleteWordLeft:
		in.deleteWordLeft()
	case actionDeleteLine:
		in.deleteLine()
	case actionDeleteToEnd:
		in.deleteToEnd()
	}
}

// editsBuffer reports whether the action changes the buffer contents, as
// opposed to only moving the cursor. List prompts use it to know when to
// recompute their filtered options.
func editsBuffer(a action) bool {
	switch a.kind {
	case actionInsert, actionDeleteLeft, actionDeleteRight,
		actionDeleteWordLeft, actionDeleteLine, actionDeleteToEnd:
		return true
	}
	return false
}
