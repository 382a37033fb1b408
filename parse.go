//-----------------------------------------------------------------------------
/*

Line Parsing

Splits a submitted line into words (honoring double-quoted substrings) and
walks the grammar tree one word at a time, producing a ParsedCommand. The
same walk runs in a silent mode for completion and help: no errors are
printed and the token list and pending argument type valid at the stopping
point are reported instead.

*/
//-----------------------------------------------------------------------------

package tokenline

import (
	"errors"
	"strconv"
	"strings"
)

//-----------------------------------------------------------------------------

// Item is one decoded element of a ParsedCommand: either a matched token
// identifier (Type == ArgNone) or a typed argument value.
type Item struct {
	Token int     // matched token identifier
	Type  ArgType // ArgInt, ArgFloat or ArgString for argument values
	Int   int     // value when Type == ArgInt
	Float float64 // value when Type == ArgFloat
	Str   string  // value when Type == ArgString
}

// ParsedCommand is the decoded result of a successful tokenization. It is
// rebuilt on every parse: the embedding application must copy out anything
// it needs before the next line is processed.
type ParsedCommand struct {
	Items []Item
	Last  *Token // last grammar node matched, used for help lookup
}

//-----------------------------------------------------------------------------
// word splitting

var (
	errUnmatchedQuote = errors.New("Unmatched quote.")
	errTooManyWords   = errors.New("Too many words.")
)

// splitLine splits a line into words on spaces. A double-quoted substring
// forms a single word with the quotes stripped.
func splitLine(line string) ([]string, error) {
	words := make([]string, 0, 8)
	inWord := false
	quoted := false
	var start int
	for i := 0; i < len(line) && len(words) < MaxWords; i++ {
		c := line[i]
		if !inWord {
			// looking for a new word
			if c == ' ' {
				continue
			}
			start = i
			if c == '"' {
				quoted = true
				start = i + 1
			}
			inWord = true
		} else {
			// in a word
			if quoted && c == '"' {
				words = append(words, line[start:i])
				quoted = false
				inWord = false
			} else if !quoted && c == ' ' {
				words = append(words, line[start:i])
				inWord = false
			}
		}
	}
	if quoted {
		return nil, errUnmatchedQuote
	}
	if inWord {
		words = append(words, line[start:])
	}
	if len(words) >= MaxWords {
		return nil, errTooManyWords
	}
	return words, nil
}

// lineString rebuilds the typed form of a parsed command. Words with
// embedded spaces are re-quoted. Used by tests and by applications that
// want to echo a normalized command.
func (s *Session) lineString(p *ParsedCommand) string {
	words := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		switch it.Type {
		case ArgInt:
			words = append(words, strconv.Itoa(it.Int))
		case ArgFloat:
			words = append(words, strconv.FormatFloat(it.Float, 'g', -1, 64))
		case ArgString:
			word := it.Str
			if word == "" || strings.ContainsRune(word, ' ') {
				word = `"` + word + `"`
			}
			words = append(words, word)
		default:
			words = append(words, s.dict.str(it.Token))
		}
	}
	return strings.Join(words, " ")
}

//-----------------------------------------------------------------------------
// tokenizing

// tokenize walks the grammar consuming one token (or one typed argument)
// per word, filling in s.parsed. In silent mode nothing is printed and the
// token list and argument type valid at the stopping point are returned
// for completion and help.
func (s *Session) tokenize(words []string, silent bool) (bool, []Token, ArgType) {
	p := &s.parsed
	p.Items = p.Items[:0]
	p.Last = nil

	var stack [MaxTokenLevels][]Token
	stack[0] = s.grammar
	cur := 0
	done := false
	argNeeded := ArgNone
	var argTokens []Token

	for _, word := range words {
		if done {
			// not expecting any more tokens or arguments
			if !silent {
				s.put("Too many arguments.\n")
			}
			return false, nil, ArgNone
		}
		if argNeeded == ArgNone {
			// token needed
			idx, ambiguous := findToken(stack[cur], s.dict, word)
			if idx < 0 {
				if !silent {
					if ambiguous {
						s.put("Ambiguous command.\n")
					} else {
						s.put("Invalid command.\n")
					}
				}
				return false, stack[cur], ArgNone
			}
			t := &stack[cur][idx]
			p.Items = append(p.Items, Item{Token: t.ID})
			p.Last = t
			switch {
			case t.Arg == ArgHelp:
				// terminal, stays at this level
			case t.Arg != ArgNone:
				// token needs an argument
				argNeeded = t.Arg
				if argNeeded == ArgToken {
					// argument is one of these subtokens
					argTokens = t.Sub
				}
			case t.Sub != nil:
				// descend into the subcommands
				if cur+1 == MaxTokenLevels {
					if !silent {
						s.put("Invalid command.\n")
					}
					return false, nil, ArgNone
				}
				cur++
				stack[cur] = t.Sub
			default:
				done = true
			}
		} else {
			// parse the word as the pending argument type
			switch argNeeded {
			case ArgInt:
				v, err := strconv.ParseInt(word, 0, 64)
				if err != nil {
					if !silent {
						s.put("Invalid value.\n")
					}
					return false, nil, argNeeded
				}
				p.Items = append(p.Items, Item{Type: ArgInt, Int: int(v)})
			case ArgFloat:
				v, err := strconv.ParseFloat(word, 64)
				if err != nil {
					if !silent {
						s.put("Invalid value.\n")
					}
					return false, nil, argNeeded
				}
				p.Items = append(p.Items, Item{Type: ArgFloat, Float: v})
			case ArgString:
				p.Items = append(p.Items, Item{Type: ArgString, Str: word})
			case ArgToken:
				idx, _ := findToken(argTokens, s.dict, word)
				if idx < 0 {
					if !silent {
						s.put("Invalid value.\n")
					}
					return false, argTokens, argNeeded
				}
				t := &argTokens[idx]
				p.Items = append(p.Items, Item{Token: t.ID})
				p.Last = t
			}
			argNeeded = ArgNone
		}
	}

	if argNeeded != ArgNone && !silent {
		s.put("Missing argument.\n")
		return false, nil, ArgNone
	}

	// completion context at the stopping point
	var ctokens []Token
	if !done {
		if argNeeded == ArgToken {
			ctokens = argTokens
		} else {
			ctokens = stack[cur]
		}
	}
	return true, ctokens, argNeeded
}

//-----------------------------------------------------------------------------
