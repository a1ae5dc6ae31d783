package ask

import (
	"bytes"
	"io"
	"strings"
)

// mockTerminal implements terminal for tests: it replays a scripted key
// sequence and captures everything written, including the escape
// sequences the renderer emits, so tests can assert on both the answer
// and the rendered output without a real terminal.
type mockTerminal struct {
	keys         []Key
	pos          int
	out          bytes.Buffer
	rawMode      bool
	cursorHidden bool
	width        int
	height       int
}

func newMockTerminal(keys ...Key) *mockTerminal {
	return &mockTerminal{
		keys:   keys,
		width:  80,
		height: 24,
	}
}

// keysFromString turns plain text into the key events that would type it.
// '\n' becomes Enter and '\x7f' Backspace, mirroring how test input was
// scripted against the raw rune reader before keys were decoded at the
// terminal boundary.
func keysFromString(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		switch r {
		case '\n', '\r':
			keys = append(keys, Key{Code: KeyEnter})
		case '\x7f':
			keys = append(keys, Key{Code: KeyBackspace})
		case '\x1b':
			keys = append(keys, Key{Code: KeyEscape})
		case '\t':
			keys = append(keys, Key{Code: KeyTab})
		default:
			keys = append(keys, charKey(r))
		}
	}
	return keys
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.width, m.height, nil
}

func (m *mockTerminal) ReadKey() (Key, error) {
	if m.pos >= len(m.keys) {
		return Key{}, io.EOF
	}
	k := m.keys[m.pos]
	m.pos++
	return k, nil
}

func (m *mockTerminal) Write(s string) error {
	m.out.WriteString(s)
	return nil
}

func (m *mockTerminal) SetFG(c Color) error {
	return m.Write(c.fg())
}

func (m *mockTerminal) SetBG(c Color) error {
	return m.Write(c.bg())
}

func (m *mockTerminal) ResetColors() error {
	return m.Write(ansiReset())
}

func (m *mockTerminal) CursorUp() error {
	return m.Write("\x1b[1A")
}

func (m *mockTerminal) CursorHorizontalReset() error {
	return m.Write("\r")
}

func (m *mockTerminal) ClearLine() error {
	return m.Write("\x1b[2K")
}

func (m *mockTerminal) CursorHide() error {
	m.cursorHidden = true
	return nil
}

func (m *mockTerminal) CursorShow() error {
	m.cursorHidden = false
	return nil
}

func (m *mockTerminal) Flush() error {
	return nil
}

func (m *mockTerminal) Close() error {
	return nil
}

// plainOutput strips the ANSI sequences from the captured output, leaving
// the text a user would see.
func (m *mockTerminal) plainOutput() string {
	s := m.out.String()
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\x1b' {
			b.WriteByte(s[i])
			continue
		}
		for i++; i < len(s); i++ {
			c := s[i]
			if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
				break
			}
		}
	}
	return b.String()
}
