// Package ask provides interactive terminal prompts for Go programs:
// free text, masked passwords with confirmation, yes/no confirmation,
// single- and multi-select lists, and a calendar date picker.
//
// Every prompt runs the same synchronous control loop: render the current
// state, block for one key, apply it, and on Enter run the prompt's
// validator. Invalid answers render an error line in place and keep the
// typed input intact; the prompt area is redrawn by clearing exactly the
// lines of the previous frame, so nothing leaks into scrollback.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/willoughby/ask"
//	)
//
//	func main() {
//		name, err := ask.NewText("What is your name?").Prompt()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s!\n", name)
//	}
//
// List prompts:
//
//	fruit, err := ask.NewSelect("Favorite fruit?", []string{
//		"Banana", "Apple", "Strawberry", "Grapes",
//	}).WithPageSize(4).Prompt()
//
// Typing filters the option list (fuzzy matched); arrows move the
// highlight and wrap around at both ends. MultiSelect adds Space to
// toggle, the right arrow to select everything visible and the left
// arrow to clear the selection.
//
// Passwords:
//
//	secret, err := ask.NewPassword("New passphrase:").Prompt()
//
// Password prompts ask for the value twice by default. The entries must
// match exactly; a mismatch fails with ErrConfirmationMismatch rather
// than prompting a third time. Use WithoutConfirmation to skip the
// second entry.
//
// Error Handling:
//
// Prompts report distinct outcomes:
//
//   - ask.ErrCanceled: the user pressed Esc (an expected outcome)
//   - ask.ErrInterrupted: the user pressed Ctrl+C
//   - ask.ErrEOF: the input stream ended (Ctrl+D)
//   - ask.ErrConfirmationMismatch: password confirmation did not match
//   - ask.ErrInvalidConfiguration: the prompt was misconfigured, e.g. an
//     empty option list; detected before the prompt starts
//
// Colors:
//
// Prompts use a built-in color scheme by default and fall back to plain
// output when the NO_COLOR environment variable is set. Pass a custom
// RenderConfig with WithRenderConfig to override either decision per
// prompt.
//
// Prompt values are not safe for concurrent use; run one prompt at a
// time from a single goroutine. The terminal's raw mode and cursor
// visibility are restored on every exit path, including cancellation
// and errors.
package ask
