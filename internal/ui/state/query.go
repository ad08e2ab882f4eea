package state

import (
	"strings"
	"unicode"
)

// Query is the search box: its text and a rune-offset caret.
type Query struct {
	Text   string
	Cursor int
}

// Trimmed returns the text without surrounding whitespace.
func (q *Query) Trimmed() string {
	return strings.TrimSpace(q.Text)
}

// Active reports whether the query filters anything.
func (q *Query) Active() bool {
	return q.Trimmed() != ""
}

// Set replaces the text and clamps the caret into it.
func (q *Query) Set(text string, cursor int) {
	q.Text = text
	q.Cursor = clamp(cursor, 0, len([]rune(text)))
}

// Clear empties the query. It reports whether anything changed.
func (q *Query) Clear() bool {
	if q.Text == "" && q.Cursor == 0 {
		return false
	}
	q.Text = ""
	q.Cursor = 0
	return true
}

// Pos returns the caret clamped to the current text.
func (q *Query) Pos() int {
	return clamp(q.Cursor, 0, len([]rune(q.Text)))
}

// Insert places text at the caret.
func (q *Query) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(q.Text)
	pos := q.Pos()
	out := make([]rune, 0, len(runes)+len(insert))
	out = append(out, runes[:pos]...)
	out = append(out, insert...)
	out = append(out, runes[pos:]...)
	q.Set(string(out), pos+len(insert))
	return true
}

// DeleteRuneBackward removes the rune before the caret.
func (q *Query) DeleteRuneBackward() bool {
	runes := []rune(q.Text)
	pos := q.Pos()
	if pos == 0 {
		return false
	}
	q.Set(string(append(runes[:pos-1:pos-1], runes[pos:]...)), pos-1)
	return true
}

// DeleteWordBackward removes the word before the caret along with any
// whitespace between it and the caret.
func (q *Query) DeleteWordBackward() bool {
	runes := []rune(q.Text)
	pos := q.Pos()
	if pos == 0 {
		return false
	}
	start := wordStart(runes, pos)
	q.Set(string(append(runes[:start:start], runes[pos:]...)), start)
	return true
}

// DeleteToStart removes everything before the caret.
func (q *Query) DeleteToStart() bool {
	runes := []rune(q.Text)
	pos := q.Pos()
	if pos == 0 {
		return false
	}
	q.Set(string(runes[pos:]), 0)
	return true
}

// MoveStart puts the caret at the beginning.
func (q *Query) MoveStart() bool {
	return q.moveTo(0)
}

// MoveEnd puts the caret after the last rune.
func (q *Query) MoveEnd() bool {
	return q.moveTo(len([]rune(q.Text)))
}

// MoveRuneBackward moves the caret left by one rune.
func (q *Query) MoveRuneBackward() bool {
	return q.moveTo(q.Pos() - 1)
}

// MoveRuneForward moves the caret right by one rune.
func (q *Query) MoveRuneForward() bool {
	return q.moveTo(q.Pos() + 1)
}

// MoveWordBackward moves the caret to the start of the previous word.
func (q *Query) MoveWordBackward() bool {
	return q.moveTo(wordStart([]rune(q.Text), q.Pos()))
}

// MoveWordForward moves the caret past the next word and its trailing
// whitespace.
func (q *Query) MoveWordForward() bool {
	runes := []rune(q.Text)
	i := q.Pos()
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return q.moveTo(i)
}

func (q *Query) moveTo(pos int) bool {
	pos = clamp(pos, 0, len([]rune(q.Text)))
	if pos == q.Pos() {
		return false
	}
	q.Cursor = pos
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
