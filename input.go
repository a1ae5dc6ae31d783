package ask

import "unicode"

// input is the text buffer behind every editable prompt. The cursor is a
// scalar index into content, so multi-byte characters move it by one
// logical unit, not one byte. Every operation keeps the invariant
// 0 <= cursor <= len(content); edge conditions are absorbed as no-ops.
type input struct {
	content []rune
	cursor  int
}

func newInput(value string) *input {
	in := &input{}
	in.setValue(value)
	return in
}

func (in *input) String() string {
	return string(in.content)
}

func (in *input) length() int {
	return len(in.content)
}

// setValue replaces the buffer contents and moves the cursor to the end.
func (in *input) setValue(value string) {
	in.content = []rune(value)
	in.cursor = len(in.content)
}

func (in *input) clear() {
	in.content = in.content[:0]
	in.cursor = 0
}

// insert places r at the cursor and advances the cursor past it.
func (in *input) insert(r rune) {
	in.content = append(in.content[:in.cursor], append([]rune{r}, in.content[in.cursor:]...)...)
	in.cursor++
}

// deleteLeft removes the rune before the cursor. No-op at the start.
func (in *input) deleteLeft() {
	if in.cursor == 0 {
		return
	}
	in.content = append(in.content[:in.cursor-1], in.content[in.cursor:]...)
	in.cursor--
}

// deleteRight removes the rune at the cursor. No-op at the end.
func (in *input) deleteRight() {
	if in.cursor == len(in.content) {
		return
	}
	in.content = append(in.content[:in.cursor], in.content[in.cursor+1:]...)
}

// deleteWordLeft removes from the previous word boundary to the cursor.
func (in *input) deleteWordLeft() {
	start := in.wordLeft()
	in.content = append(in.content[:start], in.content[in.cursor:]...)
	in.cursor = start
}

// deleteLine clears the whole buffer.
func (in *input) deleteLine() {
	in.clear()
}

// deleteToEnd removes everything from the cursor to the end.
func (in *input) deleteToEnd() {
	in.content = in.content[:in.cursor]
}

func (in *input) moveLeft() {
	if in.cursor > 0 {
		in.cursor--
	}
}

func (in *input) moveRight() {
	if in.cursor < len(in.content) {
		in.cursor++
	}
}

func (in *input) moveToStart() {
	in.cursor = 0
}

func (in *input) moveToEnd() {
	in.cursor = len(in.content)
}

func (in *input) moveWordLeft() {
	in.cursor = in.wordLeft()
}

func (in *input) moveWordRight() {
	in.cursor = in.wordRight()
}

// wordLeft finds the start of the word before the cursor: skip whitespace
// backwards, then skip the word itself.
func (in *input) wordLeft() int {
	pos := in.cursor
	for pos > 0 && unicode.IsSpace(in.content[pos-1]) {
		pos--
	}
	for pos > 0 && !unicode.IsSpace(in.content[pos-1]) {
		pos--
	}
	return pos
}

// wordRight finds the position after the word at the cursor: skip
// whitespace forwards, then skip the word itself.
func (in *input) wordRight() int {
	pos := in.cursor
	for pos < len(in.content) && unicode.IsSpace(in.content[pos]) {
		pos++
	}
	for pos < len(in.content) && !unicode.IsSpace(in.content[pos]) {
		pos++
	}
	return pos
}

// split carves the buffer into the text before the cursor, the rune under
// the cursor, and the text after it. When the cursor sits at the end of
// the buffer the middle part is a placeholder space so the renderer still
// has a cell to highlight.
func (in *input) split() (before, at, after string) {
	before = string(in.content[:in.cursor])
	if in.cursor == len(in.content) {
		return before, " ", ""
	}
	at = string(in.content[in.cursor : in.cursor+1])
	after = string(in.content[in.cursor+1:])
	return before, at, after
}
