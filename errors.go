package ask

import "errors"

// Common errors returned by prompts.
var (
	// ErrCanceled is returned when the user cancels the prompt with Esc.
	// It is an expected outcome, not a failure: callers may treat it as
	// "no answer was given".
	ErrCanceled = errors.New("prompt canceled by user")
	// ErrInterrupted is returned when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrEOF is returned when the input stream ends before an answer is
	// submitted (Ctrl+D or the backend reporting end of input).
	ErrEOF = errors.New("EOF")
	// ErrConfirmationMismatch is returned by confirmable prompts when the
	// confirmation entry does not match the first entry. The prompt does
	// not offer a retry after a mismatch.
	ErrConfirmationMismatch = errors.New("confirmation entries do not match")
	// ErrInvalidConfiguration is returned before the prompt loop starts
	// when the prompt was built with unusable settings, such as an empty
	// option list or an out-of-range starting cursor.
	ErrInvalidConfiguration = errors.New("invalid prompt configuration")
)

// retryError carries a validator message back to the prompt loop. It is
// rendered as an error line and the loop continues with the buffer intact.
type retryError struct {
	msg string
}

func (e *retryError) Error() string {
	return e.msg
}

func retry(msg string) error {
	return &retryError{msg: msg}
}

// errContinue tells the prompt loop that a submit was consumed without
// producing an answer, e.g. entering the confirmation stage.
var errContinue = errors.New("continue prompt loop")
