package ask

// KeyCode identifies which key was pressed. Character keys use KeyChar
// with the Rune field set; every other code is a special key.
type KeyCode int

// Key codes produced by the terminal backend.
const (
	KeyChar KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTab
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// Modifier is a bitmask of modifier keys held during a key press.
type Modifier uint8

// Modifier flags.
const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Key is one decoded key event: a key code plus the modifiers held with
// it. For KeyChar, Rune holds the character.
type Key struct {
	Code KeyCode
	Rune rune
	Mod  Modifier
}

// charKey builds a plain character key event.
func charKey(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

// ctrlKey builds a Ctrl+letter key event.
func ctrlKey(r rune) Key {
	return Key{Code: KeyChar, Rune: r, Mod: ModCtrl}
}
