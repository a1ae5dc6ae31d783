package ask

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruitOptions = []string{
	"Banana", "Apple", "Strawberry", "Grapes", "Lemon",
	"Tangerine", "Watermelon", "Orange", "Pear", "Avocado",
}

func TestSelectPrompt(t *testing.T) {
	t.Parallel()

	keys := []Key{
		{Code: KeyDown},
		{Code: KeyDown},
		{Code: KeyEnter},
	}
	got, err := NewSelect("Favorite fruit?", fruitOptions).
		rawPromptWithTerminal(newMockTerminal(keys...))
	require.NoError(t, err)
	assert.Equal(t, ListOption{Index: 2, Value: "Strawberry"}, got)
}

func TestSelectWrapAround(t *testing.T) {
	t.Parallel()

	got, err := NewSelect("Favorite fruit?", fruitOptions).
		rawPromptWithTerminal(newMockTerminal(Key{Code: KeyUp}, Key{Code: KeyEnter}))
	require.NoError(t, err)
	assert.Equal(t, len(fruitOptions)-1, got.Index, "moving up from the first option wraps to the last")

	keys := make([]Key, 0, len(fruitOptions)+1)
	for range fruitOptions {
		keys = append(keys, Key{Code: KeyDown})
	}
	keys = append(keys, Key{Code: KeyEnter})
	got, err = NewSelect("Favorite fruit?", fruitOptions).
		rawPromptWithTerminal(newMockTerminal(keys...))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Index, "one full lap lands back on the first option")
}

func TestSelectPageNavigation(t *testing.T) {
	t.Parallel()

	got, err := NewSelect("Favorite fruit?", fruitOptions).
		WithPageSize(3).
		rawPromptWithTerminal(newMockTerminal(Key{Code: KeyPageDown}, Key{Code: KeyEnter}))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Index, "page down jumps a full page")

	got, err = NewSelect("Favorite fruit?", fruitOptions).
		WithPageSize(3).
		WithStartingCursor(1).
		rawPromptWithTerminal(newMockTerminal(Key{Code: KeyPageUp}, Key{Code: KeyEnter}))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Index, "page up clamps at the first option")
}

func TestSelectVimMode(t *testing.T) {
	t.Parallel()

	got, err := NewSelect("Favorite fruit?", fruitOptions).
		WithVimMode(true).
		rawPromptWithTerminal(newMockTerminal(charKey('j'), charKey('j'), charKey('k'), Key{Code: KeyEnter}))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Index)

	// Without vim mode the same letters feed the filter instead.
	got, err = NewSelect("Favorite fruit?", fruitOptions).
		rawPromptWithTerminal(newMockTerminal(append(keysFromString("grape"), Key{Code: KeyEnter})...))
	require.NoError(t, err)
	assert.Equal(t, "Grapes", got.Value)
}

func TestSelectFuzzyFilter(t *testing.T) {
	t.Parallel()

	term := newMockTerminal(append(keysFromString("appl"), Key{Code: KeyEnter})...)
	got, err := NewSelect("Favorite fruit?", fruitOptions).rawPromptWithTerminal(term)
	require.NoError(t, err)
	assert.Equal(t, ListOption{Index: 1, Value: "Apple"}, got, "original index survives filtering")
}

func TestSelectFilterResetOnEdit(t *testing.T) {
	t.Parallel()

	// Narrow the list, move the cursor, then edit: the cursor must go
	// back to the top of the recomputed view.
	keys := append(keysFromString("an"), Key{Code: KeyDown}, Key{Code: KeyBackspace}, Key{Code: KeyBackspace}, Key{Code: KeyEnter})
	got, err := NewSelect("Favorite fruit?", fruitOptions).rawPromptWithTerminal(newMockTerminal(keys...))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Index)
}

func TestSelectSubmitIgnoredWithoutMatches(t *testing.T) {
	t.Parallel()

	// Enter with an empty view does nothing; clearing the filter makes
	// the list selectable again.
	keys := append(keysFromString("zzzz"), Key{Code: KeyEnter})
	keys = append(keys, keysFromString("\x7f\x7f\x7f\x7f")...)
	keys = append(keys, Key{Code: KeyEnter})
	got, err := NewSelect("Favorite fruit?", fruitOptions).rawPromptWithTerminal(newMockTerminal(keys...))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Index)
}

func TestSelectCustomFilter(t *testing.T) {
	t.Parallel()

	contains := func(filterValue, optionValue string, _ int) bool {
		return strings.Contains(strings.ToLower(optionValue), strings.ToLower(filterValue))
	}
	keys := append(keysFromString("water"), Key{Code: KeyEnter})
	got, err := NewSelect("Favorite fruit?", fruitOptions).
		WithFilter(contains).
		rawPromptWithTerminal(newMockTerminal(keys...))
	require.NoError(t, err)
	assert.Equal(t, "Watermelon", got.Value)
}

func TestSelectStartingCursor(t *testing.T) {
	t.Parallel()

	got, err := NewSelect("Favorite fruit?", fruitOptions).
		WithStartingCursor(4).
		rawPromptWithTerminal(newMockTerminal(Key{Code: KeyEnter}))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Index)
}

func TestSelectInvalidConfiguration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prompt *Select
	}{
		{"empty options", NewSelect("Pick:", nil)},
		{"cursor out of range", NewSelect("Pick:", fruitOptions).WithStartingCursor(99)},
		{"negative cursor", NewSelect("Pick:", fruitOptions).WithStartingCursor(-1)},
		{"zero page size", NewSelect("Pick:", fruitOptions).WithPageSize(0)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.prompt.rawPromptWithTerminal(newMockTerminal())
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestSelectOutcomes(t *testing.T) {
	t.Parallel()

	term := newMockTerminal(Key{Code: KeyEscape})
	_, err := NewSelect("Pick:", fruitOptions).rawPromptWithTerminal(term)
	assert.ErrorIs(t, err, ErrCanceled)
	assert.False(t, term.rawMode)

	_, err = NewSelect("Pick:", fruitOptions).rawPromptWithTerminal(newMockTerminal(ctrlKey('c')))
	assert.ErrorIs(t, err, ErrInterrupted)

	_, err = NewSelect("Pick:", fruitOptions).rawPromptWithTerminal(newMockTerminal())
	assert.ErrorIs(t, err, ErrEOF)
}

func TestFilterOptions(t *testing.T) {
	t.Parallel()

	all := filterOptions(fruitOptions, "", nil)
	require.Len(t, all, len(fruitOptions))
	assert.Equal(t, ListOption{Index: 0, Value: "Banana"}, all[0], "empty filter keeps everything in order")

	matched := filterOptions(fruitOptions, "appl", nil)
	require.Len(t, matched, 1)
	assert.Equal(t, ListOption{Index: 1, Value: "Apple"}, matched[0])

	assert.Empty(t, filterOptions(fruitOptions, "zzzz", nil))
}
