package icedlookup

import (
	"github.com/asuradoll/iced"
)

const maxNameLength = 16

var codeMap map[string]iced.Code

func init() {
	codes := iced.AllCodes()
	codeMap = make(map[string]iced.Code, len(codes))
	for _, c := range codes {
		codeMap[c.Name()] = c
	}
}

// Lookup the instruction form for a name, e.g. "add" or "JMP_RM". The name will be converted
// to uppercase if necessary.
func Code(name string) (iced.Code, bool) {
	if len(name) > 0 && len(name) < maxNameLength {
		c, ok := codeMap[upperCase(name)]
		return c, ok
	}
	return iced.INVALID, false
}

// Lookup the instruction form for a name, panicking if it is unknown.
func MustCode(name string) iced.Code {
	c, ok := Code(name)
	if !ok {
		panic("icedlookup: unknown instruction form " + name)
	}
	return c
}

func upperCase(s string) string {
	var b [maxNameLength]byte
	var ch byte
	_ = b[len(s)] // lift bounds-checks out of the loop below (golang.org/issue/14808)
	i, changed := 0, false
loop: // functions containing for-loops cannot currently be inlined (golang.org/issue/14768)
	ch = s[i]
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	b[i] = ch
	changed = changed || b[i] != s[i]
	i++
	if i < len(s) {
		goto loop
	}
	if !changed {
		return s
	}
	return string(b[:len(s)])
}
