package ask

// actionKind is the semantic meaning of a key press, decoded per prompt
// type. The shared text-editing subset is produced by inputActionFromKey;
// each prompt's mapper intercepts its own navigation keys first and
// delegates the rest, so list prompts can reuse the text buffer as a
// filter field while reserving arrows for list movement.
type actionKind int

const (
	actionNone actionKind = iota

	// Shared text-editing subset.
	actionInsert
	actionMoveLeft
	actionMoveRight
	actionMoveWordLeft
	actionMoveWordRight
	actionMoveToStart
	actionMoveToEnd
	actionDeleteLeft
	actionDeleteRight
	actionDeleteWordLeft
	actionDeleteLine
	actionDeleteToEnd
	actionSubmit
	actionCancel
	actionInterrupt
	actionEndOfInput

	// List-prompt extensions.
	actionMoveUp
	actionMoveDown
	actionPageUp
	actionPageDown
	actionToggle
	actionToggleAll
	actionToggleNone
	actionUseSuggestion

	// Date-prompt extensions.
	actionPrevDay
	actionNextDay
	actionPrevWeek
	actionNextWeek
	actionPrevMonth
	actionNextMonth
	actionPrevYear
	actionNextYear
)

// action pairs a kind with its payload. Only actionInsert carries a rune.
type action struct {
	kind actionKind
	r    rune
}

// inputActionFromKey maps a key event to the shared text-editing action
// set. It is a pure, total function: unmapped keys yield actionNone.
func inputActionFromKey(k Key) action {
	switch k.Code {
	case KeyEnter:
		return action{kind: actionSubmit}
	case KeyEscape:
		return action{kind: actionCancel}
	case KeyLeft:
		if k.Mod&ModCtrl != 0 {
			return action{kind: actionMoveWordLeft}
		}
		return action{kind: actionMoveLeft}
	case KeyRight:
		if k.Mod&ModCtrl != 0 {
			return action{kind: actionMoveWordRight}
		}
		return action{kind: actionMoveRight}
	case KeyHome:
		return action{kind: actionMoveToStart}
	case KeyEnd:
		return action{kind: actionMoveToEnd}
	case KeyBackspace:
		if k.Mod&(ModCtrl|ModAlt) != 0 {
			return action{kind: actionDeleteWordLeft}
		}
		return action{kind: actionDeleteLeft}
	case KeyDelete:
		return action{kind: actionDeleteRight}
	case KeyChar:
		return charActionFromKey(k)
	}
	return action{kind: actionNone}
}

// charActionFromKey handles character keys, including the Ctrl+letter
// shortcuts inherited from readline.
func charActionFromKey(k Key) action {
	if k.Mod&ModCtrl != 0 {
		switch k.Rune {
		case 'a':
			return action{kind: actionMoveToStart}
		case 'e':
			return action{kind: actionMoveToEnd}
		case 'b':
			return action{kind: actionMoveLeft}
		case 'f':
			return action{kind: actionMoveRight}
		case 'w':
			return action{kind: actionDeleteWordLeft}
		case 'u':
			return action{kind: actionDeleteLine}
		case 'k':
			return action{kind: actionDeleteToEnd}
		case 'h':
			return action{kind: actionDeleteLeft}
		case 'c':
			return action{kind: actionInterrupt}
		case 'd':
			return action{kind: actionEndOfInput}
		}
		return action{kind: actionNone}
	}
	if k.Mod&ModAlt != 0 {
		return action{kind: actionNone}
	}
	if k.Rune >= ' ' {
		return action{kind: actionInsert, r: k.Rune}
	}
	return action{kind: actionNone}
}

// textActionFromKey maps keys for the text prompt. Suggestion navigation
// is only live while a suggestion list is displayed; Tab always routes to
// the suggestion machinery.
func textActionFromKey(k Key, showingSuggestions bool) action {
	if k.Code == KeyTab {
		return action{kind: actionUseSuggestion}
	}
	if showingSuggestions {
		switch k.Code {
		case KeyUp:
			return action{kind: actionMoveUp}
		case KeyDown:
			return action{kind: actionMoveDown}
		case KeyPageUp:
			return action{kind: actionPageUp}
		case KeyPageDown:
			return action{kind: actionPageDown}
		}
	}
	return inputActionFromKey(k)
}

// selectActionFromKey maps keys for the single-select prompt. Navigation
// keys are intercepted before the shared mapping so the buffer stays
// usable as a filter field. Vim mode adds j/k as an extra source for the
// same navigation actions.
func selectActionFromKey(k Key, vimMode bool) action {
	switch k.Code {
	case KeyUp:
		return action{kind: actionMoveUp}
	case KeyDown:
		return action{kind: actionMoveDown}
	case KeyPageUp:
		return action{kind: actionPageUp}
	case KeyPageDown:
		return action{kind: actionPageDown}
	}
	if vimMode && k.Code == KeyChar && k.Mod == 0 {
		switch k.Rune {
		case 'k':
			return action{kind: actionMoveUp}
		case 'j':
			return action{kind: actionMoveDown}
		}
	}
	return inputActionFromKey(k)
}

// multiSelectActionFromKey maps keys for the multi-select prompt. Space
// toggles the highlighted option and the horizontal arrows select all or
// none, so neither reaches the filter buffer.
func multiSelectActionFromKey(k Key, vimMode bool) action {
	switch k.Code {
	case KeyUp:
		return action{kind: actionMoveUp}
	case KeyDown:
		return action{kind: actionMoveDown}
	case KeyPageUp:
		return action{kind: actionPageUp}
	case KeyPageDown:
		return action{kind: actionPageDown}
	case KeyRight:
		return action{kind: actionToggleAll}
	case KeyLeft:
		return action{kind: actionToggleNone}
	}
	if k.Code == KeyChar && k.Mod == 0 {
		if k.Rune == ' ' {
			return action{kind: actionToggle}
		}
		if vimMode {
			switch k.Rune {
			case 'k':
				return action{kind: actionMoveUp}
			case 'j':
				return action{kind: actionMoveDown}
			}
		}
	}
	return inputActionFromKey(k)
}

// dateActionFromKey maps keys for the date prompt. The set is closed:
// there is no text buffer to delegate to, so anything outside navigation,
// submit and cancel is ignored.
func dateActionFromKey(k Key, vimMode bool) action {
	switch k.Code {
	case KeyEnter:
		return action{kind: actionSubmit}
	case KeyEscape:
		return action{kind: actionCancel}
	case KeyLeft:
		return action{kind: actionPrevDay}
	case KeyRight:
		return action{kind: actionNextDay}
	case KeyUp:
		return action{kind: actionPrevWeek}
	case KeyDown:
		return action{kind: actionNextWeek}
	case KeyPageUp:
		if k.Mod&ModShift != 0 {
			return action{kind: actionPrevYear}
		}
		return action{kind: actionPrevMonth}
	case KeyPageDown:
		if k.Mod&ModShift != 0 {
			return action{kind: actionNextYear}
		}
		return action{kind: actionNextMonth}
	case KeyChar:
		if k.Mod&ModCtrl != 0 {
			switch k.Rune {
			case 'c':
				return action{kind: actionInterrupt}
			case 'd':
				return action{kind: actionEndOfInput}
			}
			return action{kind: actionNone}
		}
		if vimMode {
			switch k.Rune {
			case 'h':
				return action{kind: actionPrevDay}
			case 'l':
				return action{kind: actionNextDay}
			case 'k':
				return action{kind: actionPrevWeek}
			case 'j':
				return action{kind: actionNextWeek}
			}
		}
	}
	return action{kind: actionNone}
}
