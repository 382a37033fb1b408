//-----------------------------------------------------------------------------
/*

Help Display

*/
//-----------------------------------------------------------------------------

package tokenline

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

//-----------------------------------------------------------------------------

const indent = "   "
const helpColumn = 15 // column where inline help text starts
const noHelp = "No help available.\n"

// listTokens prints one token per line, indented, with column-aligned help
// text when withHelp is set.
func (s *Session) listTokens(tokens []Token, withHelp bool) {
	for i := range tokens {
		name := s.dict.str(tokens[i].ID)
		s.put(indent)
		s.put(name)
		if withHelp && tokens[i].Help != "" {
			pad := helpColumn - runewidth.StringWidth(name)
			if pad < 1 {
				pad = 1
			}
			s.put(strings.Repeat(" ", pad))
			s.put(tokens[i].Help)
		}
		s.put("\n")
	}
}

// showHelp prints help for the most specifically matched token of a "help"
// command line, then lists the legal next tokens. With a bare "help" the
// top-level command list is shown.
func (s *Session) showHelp(numWords int) {
	last := s.parsed.Last
	if last.Help != "" {
		s.put(last.Help)
		s.put("\n")
	}
	var tokens []Token
	if numWords == 1 {
		// just "help", global command overview
		tokens = s.grammar
	} else {
		tokens = last.Sub
	}
	if tokens != nil {
		s.listTokens(tokens, true)
	}
	if last.Help == "" && tokens == nil {
		s.put(noHelp)
	}
}

//-----------------------------------------------------------------------------
