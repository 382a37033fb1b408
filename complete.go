//-----------------------------------------------------------------------------
/*

Tab Completion

Completion re-tokenizes the line in silent mode to recover the token list
valid at the cursor, then either completes a unique match in place or
lists the alternatives and re-issues the prompt.

*/
//-----------------------------------------------------------------------------

package tokenline

import "strings"

//-----------------------------------------------------------------------------

// complete handles a Tab press with the cursor at end-of-line.
func (s *Session) complete() {
	reprompt := false
	if s.bufLen == 0 {
		// tab on an empty line: show all top-level commands
		s.put("\n")
		s.listTokens(s.grammar, false)
		reprompt = true
	} else if s.buf[s.bufLen-1] != ' ' {
		// try to complete the current word
		words, err := splitLine(string(s.buf[:s.bufLen]))
		if err != nil || len(words) == 0 {
			return
		}
		ok, tokens, _ := s.tokenize(words[:len(words)-1], true)
		if ok && tokens != nil {
			word := words[len(words)-1]
			matches := make([]Token, 0, len(tokens))
			for i := range tokens {
				if strings.HasPrefix(s.dict.str(tokens[i].ID), word) {
					matches = append(matches, tokens[i])
				}
			}
			if len(matches) == 1 {
				// unique: insert the missing suffix and a space
				name := s.dict.str(matches[0].ID)
				for i := len(word); i < len(name); i++ {
					s.addChar(name[i])
				}
				s.addChar(' ')
			} else if len(matches) > 1 {
				// ambiguous: list the alternatives
				s.put("\n")
				s.listTokens(matches, false)
				reprompt = true
			}
		}
	} else {
		// list all possible tokens from this point
		words, err := splitLine(string(s.buf[:s.bufLen]))
		if err != nil || len(words) == 0 {
			return
		}
		ok, tokens, argNeeded := s.tokenize(words, true)
		if !ok {
			return
		}
		if argNeeded != ArgNone && argNeeded != ArgToken {
			switch argNeeded {
			case ArgInt:
				s.put("\n" + indent + "<integer>\n")
			case ArgFloat:
				s.put("\n" + indent + "<float>\n")
			case ArgString:
				s.put("\n" + indent + "<string>\n")
			}
			reprompt = true
		} else if tokens != nil {
			s.put("\n")
			s.listTokens(tokens, false)
			reprompt = true
		}
	}
	if reprompt {
		s.put(s.prompt)
		s.put(string(s.buf[:s.bufLen]))
	}
}

//-----------------------------------------------------------------------------
