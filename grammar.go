//-----------------------------------------------------------------------------
/*

Command Grammar

The embedding application describes its command set as a static tree of
tokens. Each token names one word the user can type, optionally followed by
a typed argument or a set of subcommands. The tree is supplied once at
session creation and never modified.

*/
//-----------------------------------------------------------------------------

package tokenline

import "strings"

//-----------------------------------------------------------------------------

// ArgType is the kind of argument a token expects.
type ArgType int

const (
	ArgNone   ArgType = iota // no argument
	ArgHelp                  // token is terminal, used for the help command
	ArgInt                   // integer argument
	ArgFloat                 // float argument
	ArgString                // free-form string argument
	ArgToken                 // argument drawn from the token's Sub set
)

// Token is one node in the command grammar tree.
type Token struct {
	ID   int     // token identifier, > 0
	Arg  ArgType // argument expected after this token
	Sub  []Token // subcommands, or the value set when Arg is ArgToken
	Help string  // help text
}

// Dict maps token identifiers to display strings, indexed by identifier.
// Identifier 0 is reserved and its entry must be empty.
type Dict []string

func (d Dict) str(id int) string {
	if id <= 0 || id >= len(d) {
		return ""
	}
	return d[id]
}

//-----------------------------------------------------------------------------

// findToken matches a word against a token set: exact match first, then
// shortest unambiguous prefix. Returns the token index, or -1 with the
// ambiguity flag set if the word prefixes more than one sibling.
func findToken(tokens []Token, dict Dict, word string) (int, bool) {
	// exact match
	for i := range tokens {
		if word == dict.str(tokens[i].ID) {
			return i, false
		}
	}
	// unique prefix match
	partial := -1
	for i := range tokens {
		name := dict.str(tokens[i].ID)
		if len(word) >= len(name) {
			continue
		}
		if strings.HasPrefix(name, word) {
			if partial != -1 {
				// not unique
				return -1, true
			}
			partial = i
		}
	}
	return partial, false
}

//-----------------------------------------------------------------------------
