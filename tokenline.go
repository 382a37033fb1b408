//-----------------------------------------------------------------------------
/*

Tokenline

Implements an embeddable interactive command line engine with:

* a static tree-shaped command grammar with typed arguments
* shortest unambiguous prefix matching
* command tab completion
* context sensitive help
* command history in a fixed circular store
* line editing over a raw byte stream

The engine performs no I/O of its own: the embedding application feeds it
one input byte at a time and supplies a sink for all output, making it
usable over a serial port or socket with no terminal library underneath.

*/
//-----------------------------------------------------------------------------

package tokenline

//-----------------------------------------------------------------------------
// limits

const (
	MaxLineLen     = 128 // maximum line length, including room for the terminator
	MaxWords       = 64  // maximum words per line
	MaxHistorySize = 512 // history ring capacity in bytes
	MaxEscapeLen   = 8   // maximum escape sequence length
	MaxTokenLevels = 8   // maximum grammar nesting depth
)

//-----------------------------------------------------------------------------

// USER is an interface for low-level output operations. The user provided
// object receives all engine output and is passed back to the dispatch
// callback as the opaque session context.
type USER interface {
	Put(s string)
}

// Callback is invoked with the user object and the decoded command on
// every successfully parsed, non-builtin command line.
type Callback func(user USER, cmd *ParsedCommand)

// Session holds all state for one command line session.
type Session struct {
	user     USER
	grammar  []Token // top-level token set
	dict     Dict
	callback Callback
	prompt   string

	buf    [MaxLineLen]byte // line being composed
	bufLen int
	pos    int // cursor position, 0 <= pos <= bufLen

	escape    [MaxEscapeLen]byte // in-progress escape sequence
	escapeLen int

	hist     historyRing
	histStep int // ring offset of the recalled entry, -1 when not navigating

	parsed ParsedCommand
}

// NewSession returns a session for the given grammar and dictionary. The
// grammar is not validated: every token identifier it references must have
// a dictionary entry.
func NewSession(grammar []Token, dict Dict, user USER) *Session {
	s := Session{}
	s.user = user
	s.grammar = grammar
	s.dict = dict
	s.histStep = -1
	s.parsed.Items = make([]Item, 0, MaxWords)
	return &s
}

// SetPrompt sets the prompt string and emits it.
func (s *Session) SetPrompt(prompt string) {
	s.prompt = prompt
	s.put(s.prompt)
}

// SetCallback sets the command dispatch callback.
func (s *Session) SetCallback(fn Callback) {
	s.callback = fn
}

func (s *Session) put(str string) {
	s.user.Put(str)
}

//-----------------------------------------------------------------------------
// keycodes handled in normal mode

const (
	keyCtrlA = 0x01
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyCtrlE = 0x05
	keyTab   = 0x09
	keyLF    = 0x0a
	keyCtrlK = 0x0b
	keyCtrlL = 0x0c
	keyCR    = 0x0d
	keyCtrlN = 0x0e
	keyCtrlP = 0x10
	keyCtrlW = 0x17
	keyEsc   = 0x1b
	keyBS    = 0x7f
)

// Input feeds one byte to the session. It returns false only when the
// session should end: Ctrl-D on an empty line.
func (s *Session) Input(c byte) bool {
	if s.escapeLen != 0 {
		s.escape[s.escapeLen] = c
		s.escapeLen++
		if s.processEscape() {
			s.escapeLen = 0
		} else if s.escapeLen == MaxEscapeLen {
			// not a sequence we recognize, and the buffer is full
			s.escapeLen = 0
		}
		return true
	}

	switch c {
	case keyEsc:
		s.escape[0] = c
		s.escapeLen = 1
	case keyCR, keyLF:
		s.processLine()
	case keyTab:
		if s.bufLen == s.pos {
			s.complete()
		}
	case keyBS:
		if s.pos > 0 {
			s.backspace()
		}
	case keyCtrlA:
		s.cursorMove(-s.pos)
	case keyCtrlC:
		s.put("^C")
		s.bufLen = 0
		s.processLine()
	case keyCtrlE:
		s.cursorMove(s.bufLen - s.pos)
	case keyCtrlK:
		s.deleteToEnd()
	case keyCtrlL:
		s.put(seqClear)
		s.put(s.prompt)
		s.put(string(s.buf[:s.bufLen]))
	case keyCtrlP:
		s.historyUp()
	case keyCtrlN:
		s.historyDown()
	case keyCtrlW:
		s.deletePrevWord()
	case keyCtrlD:
		if s.bufLen == 0 {
			return false
		}
	default:
		if c >= 0x20 && c <= 0x7e {
			s.addChar(c)
			// typing cancels history navigation
			s.histStep = -1
		}
	}
	return true
}

//-----------------------------------------------------------------------------
// line submission

// processLine handles a submitted line: record it in history, run the help
// or history builtins, or tokenize it and dispatch. The line buffer, cursor
// and escape state are reset regardless of the outcome.
func (s *Session) processLine() {
	s.put("\n")
	if s.bufLen != 0 {
		line := string(s.buf[:s.bufLen])
		s.hist.add(line)
		words, err := splitLine(line)
		if err != nil {
			s.put(err.Error() + "\n")
		} else if len(words) != 0 {
			switch words[0] {
			case "help":
				// tokenize with errors turned off
				s.tokenize(words, true)
				if s.parsed.Last != nil {
					s.showHelp(len(words))
				}
			case "history":
				s.showHistory()
			default:
				ok, _, _ := s.tokenize(words, false)
				if ok && s.callback != nil {
					s.callback(s.user, &s.parsed)
				}
			}
		}
	}
	s.bufLen = 0
	s.pos = 0
	s.escapeLen = 0
	s.histStep = -1
	s.put(s.prompt)
}

//-----------------------------------------------------------------------------
// history navigation and display

// historyUp recalls the entry before the one currently recalled (or the
// most recent entry when not navigating) into the line buffer.
func (s *Session) historyUp() {
	var entry int
	if s.histStep == -1 {
		entry = s.hist.newest()
	} else {
		entry = s.hist.previous(s.histStep)
	}
	if entry == -1 {
		return
	}
	s.deleteLine()
	s.setLine(s.hist.get(entry))
	s.histStep = entry
}

// historyDown recalls the entry after the one currently recalled. Walking
// past the newest entry leaves an empty line and ends navigation.
func (s *Session) historyDown() {
	if s.histStep == -1 {
		return
	}
	s.deleteLine()
	next := s.hist.next(s.histStep)
	if next == s.hist.end {
		s.histStep = -1
		return
	}
	s.setLine(s.hist.get(next))
	s.histStep = next
}

// showHistory prints all history entries, most recent first, skipping the
// "history" command line itself.
func (s *Session) showHistory() {
	first := true
	s.hist.eachEntry(func(entry string) bool {
		if first {
			first = false
			return true
		}
		s.put(entry)
		s.put("\n")
		return true
	})
}

//-----------------------------------------------------------------------------
