package ask

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminal abstracts the raw terminal driver behind the capability set the
// prompt engine needs: raw-mode switching, decoded key input, styled
// output and the cursor motions used for diff-minimal redraw.
//
// Implementations:
//   - realTerminal: go-tty plus golang.org/x/term for production use
//   - mockTerminal: scripted keys and captured output for tests
type terminal interface {
	SetRaw() error
	Restore() error
	Size() (width, height int, err error)
	ReadKey() (Key, error)
	Write(s string) error
	SetFG(c Color) error
	SetBG(c Color) error
	ResetColors() error
	CursorUp() error
	CursorHorizontalReset() error
	ClearLine() error
	CursorHide() error
	CursorShow() error
	Flush() error
	Close() error
}

// realTerminal implements terminal on top of go-tty for input and a
// buffered, color-capable writer for output. Raw-mode state is captured
// and restored with golang.org/x/term so the terminal comes back intact
// no matter how the prompt exits. The closed flag guards against the
// double-close panic go-tty exhibits on Windows.
type realTerminal struct {
	tty           *tty.TTY
	out           *bufio.Writer
	closed        bool
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &realTerminal{
		tty:     t,
		out:     bufio.NewWriter(output),
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	if !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.GetState(t.stdinFd)
	if err != nil {
		return err
	}
	t.originalState = state
	_, err = term.MakeRaw(t.stdinFd)
	return err
}

func (t *realTerminal) Restore() error {
	if t.originalState == nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	err := term.Restore(t.stdinFd, t.originalState)
	t.originalState = nil
	return err
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so layout math never divides by zero.
		return 80, 24, err
	}
	return w, h, nil
}

// escapeKeys maps the escape sequences emitted by common terminals to key
// events. The sequence excludes the leading ESC byte.
var escapeKeys = map[string]Key{
	"[A":    {Code: KeyUp},
	"[B":    {Code: KeyDown},
	"[C":    {Code: KeyRight},
	"[D":    {Code: KeyLeft},
	"[H":    {Code: KeyHome},
	"[F":    {Code: KeyEnd},
	"[1~":   {Code: KeyHome},
	"[4~":   {Code: KeyEnd},
	"[3~":   {Code: KeyDelete},
	"[5~":   {Code: KeyPageUp},
	"[6~":   {Code: KeyPageDown},
	"[Z":    {Code: KeyTab, Mod: ModShift},
	"[1;2A": {Code: KeyUp, Mod: ModShift},
	"[1;2B": {Code: KeyDown, Mod: ModShift},
	"[1;5C": {Code: KeyRight, Mod: ModCtrl},
	"[1;5D": {Code: KeyLeft, Mod: ModCtrl},
	"[5;2~": {Code: KeyPageUp, Mod: ModShift},
	"[6;2~": {Code: KeyPageDown, Mod: ModShift},
	"OH":    {Code: KeyHome},
	"OF":    {Code: KeyEnd},
}

// ReadKey blocks for one key press and decodes it into the closed Key
// variant set. Control characters become Ctrl+letter events; ESC starts
// an escape sequence unless no further bytes are pending, in which case
// it is the Escape key itself.
func (t *realTerminal) ReadKey() (Key, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return Key{}, err
	}

	switch r {
	case '\r', '\n':
		return Key{Code: KeyEnter}, nil
	case '\t':
		return Key{Code: KeyTab}, nil
	case '\x7f', '\b':
		return Key{Code: KeyBackspace}, nil
	case '\x1b':
		return t.readEscapeKey()
	}
	if r < 0x20 {
		return Key{Code: KeyChar, Rune: r + 0x60, Mod: ModCtrl}, nil
	}
	return Key{Code: KeyChar, Rune: r}, nil
}

// readEscapeKey consumes the rest of an escape sequence. A lone ESC with
// nothing buffered is the Escape key; ESC followed by a plain character
// is Alt+character; unrecognized sequences decode to a zero Key, which no
// mapper turns into an action.
func (t *realTerminal) readEscapeKey() (Key, error) {
	if !t.tty.Buffered() {
		return Key{Code: KeyEscape}, nil
	}

	first, err := t.tty.ReadRune()
	if err != nil {
		return Key{}, err
	}
	if first != '[' && first != 'O' {
		return Key{Code: KeyChar, Rune: first, Mod: ModAlt}, nil
	}

	seq := []rune{first}
	for n := 0; n < 8; n++ {
		s := string(seq)
		if k, ok := escapeKeys[s]; ok {
			return k, nil
		}
		// Sequences of the form "[<digits>~" or three-plus characters
		// ending in a letter are complete even when unrecognized.
		if strings.HasSuffix(s, "~") && len(s) >= 3 {
			return Key{}, nil
		}
		last := seq[len(seq)-1]
		if len(seq) >= 3 && (last < '0' || last > '9') && last != ';' {
			return Key{}, nil
		}
		if !t.tty.Buffered() {
			return Key{}, nil
		}
		r, err := t.tty.ReadRune()
		if err != nil {
			return Key{}, err
		}
		seq = append(seq, r)
	}
	return Key{}, nil
}

func (t *realTerminal) Write(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

func (t *realTerminal) SetFG(c Color) error {
	return t.Write(c.fg())
}

func (t *realTerminal) SetBG(c Color) error {
	return t.Write(c.bg())
}

func (t *realTerminal) ResetColors() error {
	return t.Write(ansiReset())
}

func (t *realTerminal) CursorUp() error {
	return t.Write("\x1b[1A")
}

func (t *realTerminal) CursorHorizontalReset() error {
	return t.Write("\r")
}

func (t *realTerminal) ClearLine() error {
	return t.Write("\x1b[2K")
}

func (t *realTerminal) CursorHide() error {
	return t.Write("\x1b[?25l")
}

func (t *realTerminal) CursorShow() error {
	return t.Write("\x1b[?25h")
}

func (t *realTerminal) Flush() error {
	return t.out.Flush()
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if err := t.out.Flush(); err != nil {
		return err
	}
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}
