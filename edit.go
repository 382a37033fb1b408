//-----------------------------------------------------------------------------
/*

Line Editing

In-place editing of the line being composed. There is no terminal query:
the cursor position is tracked purely by buffer bookkeeping, and every
operation emits the exact control output needed to keep the real terminal
in sync. Redraw loops use the single-step cursor sequences, bulk movement
uses the count-parameterized forms.

*/
//-----------------------------------------------------------------------------

package tokenline

import "strconv"

//-----------------------------------------------------------------------------
// emitted terminal controls

const (
	seqLeft  = "\x1b[D" // cursor left one, used during redraw loops
	seqRight = "\x1b[C" // cursor right one, used during redraw loops
	seqClear = "\x1b[2J\x1b[H"
)

func seqLeftN(n int) string {
	return "\x1b[" + strconv.Itoa(n) + "D"
}

func seqRightN(n int) string {
	return "\x1b[" + strconv.Itoa(n) + "C"
}

//-----------------------------------------------------------------------------

// addChar inserts a printable character at the cursor. A full line is a
// silent no-op.
func (s *Session) addChar(c byte) {
	if s.bufLen == MaxLineLen-1 {
		return
	}
	if s.pos == s.bufLen {
		// append and echo
		s.buf[s.bufLen] = c
		s.bufLen++
		s.pos++
		s.put(string(c))
	} else {
		// shift the tail right, echo it, move the cursor back
		copy(s.buf[s.pos+1:s.bufLen+1], s.buf[s.pos:s.bufLen])
		s.buf[s.pos] = c
		s.put(string(s.buf[s.pos : s.bufLen+1]))
		for i := 0; i < s.bufLen-s.pos; i++ {
			s.put(seqLeft)
		}
		s.bufLen++
		s.pos++
	}
}

// backspace removes the character to the left of the cursor. The caller
// guards pos > 0.
func (s *Session) backspace() {
	if s.pos == s.bufLen {
		s.bufLen--
		s.pos--
		s.put(seqLeft + " " + seqLeft)
	} else {
		// shift the tail left, re-render it with a space to erase the
		// last visual character, move the cursor back
		copy(s.buf[s.pos-1:s.bufLen-1], s.buf[s.pos:s.bufLen])
		s.bufLen--
		s.pos--
		s.put(seqLeft)
		s.put(string(s.buf[s.pos:s.bufLen]))
		s.put(" ")
		for i := 0; i < s.bufLen-s.pos+1; i++ {
			s.put(seqLeft)
		}
	}
}

// deleteForward removes the character at the cursor (terminal Delete key).
func (s *Session) deleteForward() {
	if s.pos >= s.bufLen {
		return
	}
	copy(s.buf[s.pos:s.bufLen-1], s.buf[s.pos+1:s.bufLen])
	s.bufLen--
	s.put(string(s.buf[s.pos:s.bufLen]))
	s.put(" ")
	for i := 0; i < s.bufLen-s.pos+1; i++ {
		s.put(seqLeft)
	}
}

// deleteToEnd removes everything from the cursor to the end of the line.
func (s *Session) deleteToEnd() {
	if s.bufLen <= s.pos {
		return
	}
	n := s.bufLen - s.pos
	for i := 0; i < n; i++ {
		s.put(" ")
	}
	for i := 0; i < n; i++ {
		s.put(seqLeft)
	}
	s.bufLen = s.pos
}

// deletePrevWord removes the space-delimited word to the left of the
// cursor, plus any spaces between it and the cursor.
func (s *Session) deletePrevWord() {
	for s.pos > 0 && s.buf[s.pos-1] == ' ' {
		s.backspace()
	}
	for s.pos > 0 && s.buf[s.pos-1] != ' ' {
		s.backspace()
	}
}

// deleteLine erases the whole line: cursor to the end, then backspace all
// the way. Used before recalling a history entry.
func (s *Session) deleteLine() {
	s.cursorMove(s.bufLen - s.pos)
	for s.pos > 0 {
		s.backspace()
	}
}

// setLine appends a line to the buffer, echoing it. Only defined with the
// cursor at end-of-line. An over-long line is marked with a '!' instead of
// corrupting the buffer.
func (s *Session) setLine(line string) {
	if len(line) > MaxLineLen-1 {
		s.addChar('!')
		return
	}
	if s.pos == s.bufLen {
		s.put(line)
		copy(s.buf[s.bufLen:], line)
		s.bufLen += len(line)
		s.pos += len(line)
	}
}

// cursorMove moves the cursor by delta columns, clamped to [0, bufLen],
// emitting one count-parameterized sequence.
func (s *Session) cursorMove(delta int) {
	if delta < -s.pos {
		delta = -s.pos
	}
	if delta > s.bufLen-s.pos {
		delta = s.bufLen - s.pos
	}
	if delta == 0 {
		return
	}
	s.pos += delta
	if delta < 0 {
		s.put(seqLeftN(-delta))
	} else {
		s.put(seqRightN(delta))
	}
}

//-----------------------------------------------------------------------------
