package ask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y", "y\n", true},
		{"yes", "yes\n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"case insensitive", "YES\n", true},
		{"surrounding spaces", " y \n", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewConfirm("Proceed?").promptWithTerminal(
				newMockTerminal(keysFromString(tt.input)...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmDefault(t *testing.T) {
	t.Parallel()

	got, err := NewConfirm("Proceed?").
		WithDefault(true).
		promptWithTerminal(newMockTerminal(Key{Code: KeyEnter}))
	require.NoError(t, err)
	assert.True(t, got, "empty submission resolves to the default")

	got, err = NewConfirm("Proceed?").
		WithDefault(false).
		promptWithTerminal(newMockTerminal(Key{Code: KeyEnter}))
	require.NoError(t, err)
	assert.False(t, got)

	got, err = NewConfirm("Proceed?").
		WithDefault(true).
		promptWithTerminal(newMockTerminal(keysFromString("n\n")...))
	require.NoError(t, err)
	assert.False(t, got, "typed input wins over the default")
}

func TestConfirmDefaultHint(t *testing.T) {
	t.Parallel()

	term := newMockTerminal(keysFromString("y\n")...)
	_, err := NewConfirm("Proceed?").promptWithTerminal(term)
	require.NoError(t, err)
	assert.Contains(t, term.plainOutput(), "(y/n)")

	term = newMockTerminal(keysFromString("y\n")...)
	_, err = NewConfirm("Proceed?").WithDefault(true).promptWithTerminal(term)
	require.NoError(t, err)
	assert.Contains(t, term.plainOutput(), "(Y/n)")

	term = newMockTerminal(keysFromString("y\n")...)
	_, err = NewConfirm("Proceed?").WithDefault(false).promptWithTerminal(term)
	require.NoError(t, err)
	assert.Contains(t, term.plainOutput(), "(y/N)")
}

func TestConfirmInvalidAnswerRetry(t *testing.T) {
	t.Parallel()

	// An unparseable answer keeps the prompt running with the buffer
	// intact, so the user clears it before typing a valid one.
	term := newMockTerminal(keysFromString("x\n\x7fy\n")...)
	got, err := NewConfirm("Proceed?").promptWithTerminal(term)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Contains(t, term.plainOutput(), "# invalid answer, try typing 'y' for yes or 'n' for no")
}

func TestConfirmEmptyWithoutDefaultRetry(t *testing.T) {
	t.Parallel()

	term := newMockTerminal(keysFromString("\ny\n")...)
	got, err := NewConfirm("Proceed?").promptWithTerminal(term)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Contains(t, term.plainOutput(), "# invalid answer")
}

func TestConfirmOutcomes(t *testing.T) {
	t.Parallel()

	term := newMockTerminal(Key{Code: KeyEscape})
	_, err := NewConfirm("Proceed?").promptWithTerminal(term)
	assert.ErrorIs(t, err, ErrCanceled)

	term = newMockTerminal(ctrlKey('c'))
	_, err = NewConfirm("Proceed?").promptWithTerminal(term)
	assert.ErrorIs(t, err, ErrInterrupted)

	term = newMockTerminal()
	_, err = NewConfirm("Proceed?").promptWithTerminal(term)
	assert.ErrorIs(t, err, ErrEOF)
}

func TestConfirmFormatter(t *testing.T) {
	t.Parallel()

	term := newMockTerminal(keysFromString("y\n")...)
	_, err := NewConfirm("Proceed?").
		WithFormatter(func(v bool) string {
			if v {
				return "sure"
			}
			return "nope"
		}).
		promptWithTerminal(term)
	require.NoError(t, err)
	assert.Contains(t, term.plainOutput(), "? Proceed? sure")
}
