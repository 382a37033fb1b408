package tokenline

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

//-----------------------------------------------------------------------------
// shared test fixtures

const (
	tSet = iota + 1
	tSend
	tShow
	tInterface
	tSpeed
	tPower
	tOn
	tOff
	tDelay
	tHelp
	tVersion
)

var testDict = Dict{
	"",
	"set",
	"send",
	"show",
	"interface",
	"speed",
	"power",
	"on",
	"off",
	"delay",
	"help",
	"version",
}

var testPowerSet = []Token{
	{ID: tOn},
	{ID: tOff},
}

var testSetMenu = []Token{
	{ID: tInterface, Arg: ArgString, Help: "interface name"},
	{ID: tSpeed, Arg: ArgInt, Help: "link speed"},
	{ID: tPower, Arg: ArgToken, Sub: testPowerSet, Help: "power state"},
	{ID: tDelay, Arg: ArgFloat},
}

var testShowMenu = []Token{
	{ID: tVersion, Help: "firmware version"},
}

var testGrammar = []Token{
	{ID: tHelp, Arg: ArgHelp, Help: "show command help"},
	{ID: tSet, Sub: testSetMenu, Help: "set a parameter"},
	{ID: tSend, Arg: ArgString, Help: "send a string"},
	{ID: tShow, Sub: testShowMenu, Help: "show a parameter"},
}

// testUser records all engine output.
type testUser struct {
	out strings.Builder
}

func (u *testUser) Put(s string) {
	u.out.WriteString(s)
}

func (u *testUser) drain() string {
	s := u.out.String()
	u.out.Reset()
	return s
}

func newTestSession() (*Session, *testUser) {
	u := &testUser{}
	s := NewSession(testGrammar, testDict, u)
	return s, u
}

// feed pushes a string of raw input bytes into the session.
func feed(s *Session, str string) bool {
	for i := 0; i < len(str); i++ {
		if !s.Input(str[i]) {
			return false
		}
	}
	return true
}

//-----------------------------------------------------------------------------

func TestSplitLine(t *testing.T) {
	tests := []struct {
		line  string
		words []string
		err   error
	}{
		{"", nil, nil},
		{"   ", nil, nil},
		{"set", []string{"set"}, nil},
		{"set speed 100", []string{"set", "speed", "100"}, nil},
		{"  set   speed  100  ", []string{"set", "speed", "100"}, nil},
		{`cmd "two words" 3`, []string{"cmd", "two words", "3"}, nil},
		{`cmd ""`, []string{"cmd", ""}, nil},
		{`cmd "tail`, nil, errUnmatchedQuote},
		{`say it"isnt"so`, []string{"say", `it"isnt"so`}, nil},
		{strings.Repeat("w ", MaxWords), nil, errTooManyWords},
	}
	for i, v := range tests {
		words, err := splitLine(v.line)
		if err != v.err {
			t.Errorf("%d: error %v, want %v", i, err, v.err)
			continue
		}
		if err != nil {
			continue
		}
		if len(words) != len(v.words) {
			t.Errorf("%d: words %q, want %q", i, words, v.words)
			continue
		}
		for k := range words {
			if words[k] != v.words[k] {
				t.Errorf("%d: word %d is %q, want %q", i, k, words[k], v.words[k])
			}
		}
	}
}

func TestFindToken(t *testing.T) {
	tests := []struct {
		word      string
		idx       int
		ambiguous bool
	}{
		{"set", 1, false},
		{"send", 2, false},
		{"show", 3, false},
		{"sh", 3, false},
		{"se", -1, true},
		{"s", -1, true},
		{"help", 0, false},
		{"h", 0, false},
		{"sets", -1, false},
		{"bogus", -1, false},
		{"", -1, true},
	}
	for i, v := range tests {
		idx, ambiguous := findToken(testGrammar, testDict, v.word)
		if idx != v.idx || ambiguous != v.ambiguous {
			t.Errorf("%d: findToken(%q) = (%d, %v), want (%d, %v)",
				i, v.word, idx, ambiguous, v.idx, v.ambiguous)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		line  string
		items []Item
		errs  string // expected error output, empty for success
	}{
		{
			line: "set interface eth0 speed 100",
			items: []Item{
				{Token: tSet},
				{Token: tInterface},
				{Type: ArgString, Str: "eth0"},
				{Token: tSpeed},
				{Type: ArgInt, Int: 100},
			},
		},
		{
			// unique prefixes resolve to the same command
			line: "set int eth0 sp 100",
			items: []Item{
				{Token: tSet},
				{Token: tInterface},
				{Type: ArgString, Str: "eth0"},
				{Token: tSpeed},
				{Type: ArgInt, Int: 100},
			},
		},
		{
			line:  "set power on",
			items: []Item{{Token: tSet}, {Token: tPower}, {Token: tOn}},
		},
		{
			line:  "set delay 1.5",
			items: []Item{{Token: tSet}, {Token: tDelay}, {Type: ArgFloat, Float: 1.5}},
		},
		{
			// base detection
			line:  "set speed 0x20",
			items: []Item{{Token: tSet}, {Token: tSpeed}, {Type: ArgInt, Int: 32}},
		},
		{
			line:  `send "two words"`,
			items: []Item{{Token: tSend}, {Type: ArgString, Str: "two words"}},
		},
		{line: "se interface eth0 speed 100", errs: "Ambiguous command.\n"},
		{line: "bogus", errs: "Invalid command.\n"},
		{line: "set bogus", errs: "Invalid command.\n"},
		{line: "set speed 12x", errs: "Invalid value.\n"},
		{line: "set delay fast", errs: "Invalid value.\n"},
		{line: "set power maybe", errs: "Invalid value.\n"},
		{line: "set speed", errs: "Missing argument.\n"},
		{line: "show version extra", errs: "Too many arguments.\n"},
	}
	for i, v := range tests {
		s, u := newTestSession()
		words, err := splitLine(v.line)
		if err != nil {
			t.Fatalf("%d: split error %v", i, err)
		}
		ok, _, _ := s.tokenize(words, false)
		if v.errs != "" {
			if ok {
				t.Errorf("%d: %q parsed, want error %q", i, v.line, v.errs)
			}
			if got := u.drain(); got != v.errs {
				t.Errorf("%d: error output %q, want %q", i, got, v.errs)
			}
			continue
		}
		if !ok {
			t.Errorf("%d: %q failed: %q", i, v.line, u.drain())
			continue
		}
		if diff := cmp.Diff(v.items, s.parsed.Items); diff != "" {
			t.Errorf("%d: %q items mismatch (-want +got):\n%s", i, v.line, diff)
		}
	}
}

func TestTokenizeSilent(t *testing.T) {
	s, u := newTestSession()

	// stopping inside a submenu reports the submenu token list
	words, _ := splitLine("set")
	ok, ctokens, argNeeded := s.tokenize(words, true)
	if !ok || argNeeded != ArgNone {
		t.Fatalf("silent \"set\": ok %v argNeeded %v", ok, argNeeded)
	}
	if diff := cmp.Diff(testSetMenu, ctokens); diff != "" {
		t.Errorf("completion tokens mismatch (-want +got):\n%s", diff)
	}

	// a pending typed argument is reported, not an error
	words, _ = splitLine("set speed")
	ok, _, argNeeded = s.tokenize(words, true)
	if !ok || argNeeded != ArgInt {
		t.Errorf("silent \"set speed\": ok %v argNeeded %v, want true ArgInt", ok, argNeeded)
	}

	// a pending token-set argument reports the value set
	words, _ = splitLine("set power")
	ok, ctokens, argNeeded = s.tokenize(words, true)
	if !ok || argNeeded != ArgToken {
		t.Fatalf("silent \"set power\": ok %v argNeeded %v", ok, argNeeded)
	}
	if diff := cmp.Diff(testPowerSet, ctokens); diff != "" {
		t.Errorf("value set mismatch (-want +got):\n%s", diff)
	}

	// failures stay silent and still report the context
	words, _ = splitLine("set bogus extra")
	ok, ctokens, _ = s.tokenize(words, true)
	if ok {
		t.Errorf("silent \"set bogus extra\": parsed, want failure")
	}
	if diff := cmp.Diff(testSetMenu, ctokens); diff != "" {
		t.Errorf("failure context mismatch (-want +got):\n%s", diff)
	}
	if got := u.drain(); got != "" {
		t.Errorf("silent mode produced output %q", got)
	}
}

// Any accepted line, rebuilt from its parsed items, must parse to the same
// items again.
func TestRoundTrip(t *testing.T) {
	lines := []string{
		"set interface eth0 speed 100",
		"set int eth0",
		"set power off",
		"set delay 0.25",
		`send "two words"`,
		`send ""`,
		"show version",
	}
	for _, line := range lines {
		s, u := newTestSession()
		words, err := splitLine(line)
		if err != nil {
			t.Fatalf("%q: split error %v", line, err)
		}
		ok, _, _ := s.tokenize(words, false)
		if !ok {
			t.Fatalf("%q: parse failed: %q", line, u.drain())
		}
		first := append([]Item(nil), s.parsed.Items...)

		rebuilt := s.lineString(&s.parsed)
		words, err = splitLine(rebuilt)
		if err != nil {
			t.Fatalf("%q: rebuilt %q split error %v", line, rebuilt, err)
		}
		ok, _, _ = s.tokenize(words, false)
		if !ok {
			t.Fatalf("%q: rebuilt %q parse failed: %q", line, rebuilt, u.drain())
		}
		if diff := cmp.Diff(first, s.parsed.Items); diff != "" {
			t.Errorf("%q: round trip mismatch (-want +got):\n%s", line, diff)
		}
	}
}
