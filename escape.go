//-----------------------------------------------------------------------------
/*

Escape Sequence Decoding

Bytes of an in-progress terminal control sequence accumulate in a small
fixed buffer. After each byte the accumulated sequence is checked against
the table of recognized sequences. A match fires its effect and resets the
decoder; an unrecognized sequence that fills the buffer is discarded.

*/
//-----------------------------------------------------------------------------

package tokenline

//-----------------------------------------------------------------------------
// recognized input sequences

const (
	seqKeyUp     = "\x1b[A"
	seqKeyDown   = "\x1b[B"
	seqKeyRight  = "\x1b[C"
	seqKeyLeft   = "\x1b[D"
	seqKeyHome   = "\x1bOH"
	seqKeyEnd    = "\x1bOF"
	seqKeyDelete = "\x1b[3~"
)

// processEscape checks the accumulated bytes against the recognized
// sequences. It returns true when a sequence fired, false when more bytes
// are needed (or the sequence is not one we know).
func (s *Session) processEscape() bool {
	switch string(s.escape[:s.escapeLen]) {
	case seqKeyUp:
		s.historyUp()
	case seqKeyDown:
		s.historyDown()
	case seqKeyLeft:
		if s.pos > 0 {
			s.cursorMove(-1)
		}
	case seqKeyRight:
		if s.pos < s.bufLen {
			s.cursorMove(1)
		}
	case seqKeyHome:
		s.cursorMove(-s.pos)
	case seqKeyEnd:
		s.cursorMove(s.bufLen - s.pos)
	case seqKeyDelete:
		s.deleteForward()
	default:
		return false
	}
	return true
}

//-----------------------------------------------------------------------------
