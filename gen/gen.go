package main

// go run ./gen/gen.go < ./gen/codes.txt | gofmt > ./code.generated.go

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/template"

	. "github.com/asuradoll/iced/internal/flags"
)

var flowNames = map[string]string{
	"next":            "FlowNext",
	"branch":          "FlowUnconditionalBranch",
	"indirect_branch": "FlowIndirectBranch",
	"cond_branch":     "FlowConditionalBranch",
	"return":          "FlowReturn",
	"call":            "FlowCall",
	"indirect_call":   "FlowIndirectCall",
	"interrupt":       "FlowInterrupt",
	"xbegin":          "FlowXbeginXabortXend",
	"exception":       "FlowException",
}

var flagValues = map[string]uint32{
	"LOCK":         LOCK,
	"REP":          REP,
	"REPE":         REPE,
	"BND":          BND,
	"JCC_HINT":     JCC_HINT,
	"STACK64":      STACK64,
	"INDIRECT":     INDIRECT,
	"IGNORE_INDEX": IGNORE_INDEX,
	"OPSIZE_BYTE":  OPSIZE_BYTE,
	"SAE":          SAE,
	"ER":           ER,
}

type code struct {
	Name  string
	Flow  string
	Flags string
}

// Listing format, one code per line:
//
//	NAME flow [FLAG...]
//
// Blank lines and lines starting with '#' are ignored. Codes are numbered in listing order;
// the first code must be INVALID.
func main() {
	var codes []code
	seen := make(map[string]bool)
	sc := bufio.NewScanner(os.Stdin)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			fail("line %d: missing flow control", line)
		}
		c := code{Name: fields[0]}
		if seen[c.Name] {
			fail("line %d: duplicate code %s", line, c.Name)
		}
		seen[c.Name] = true
		flow, ok := flowNames[fields[1]]
		if !ok {
			fail("line %d: unknown flow control %q", line, fields[1])
		}
		c.Flow = flow
		var f uint32
		for _, name := range fields[2:] {
			v, ok := flagValues[name]
			if !ok {
				fail("line %d: unknown flag %q", line, name)
			}
			f |= v
		}
		c.Flags = flagList(f)
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		fail("%v", err)
	}
	if len(codes) == 0 || codes[0].Name != "INVALID" {
		fail("the first code must be INVALID")
	}

	flat := ""
	offsets := ""
	for i, c := range codes {
		if i > 0 {
			offsets += ", "
		}
		offsets += fmt.Sprintf("%d", len(flat))
		flat += c.Name
	}
	offsets += fmt.Sprintf(", %d", len(flat))

	t := template.Must(template.New("codes").Parse(codesTemplate))
	err := t.Execute(os.Stdout, struct {
		Codes       []code
		NamesFlat   string
		NameOffsets string
	}{codes, flat, offsets})
	if err != nil {
		fail("%v", err)
	}
}

func flagList(f uint32) string {
	if f == 0 {
		return "0"
	}
	return strings.Join(Names(f), " | ")
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

const codesTemplate = `package iced

// THIS FILE IS AUTOMATICALLY GENERATED. DO NOT EDIT!
// go run ./gen/gen.go < ./gen/codes.txt | gofmt > ./code.generated.go

import . "github.com/asuradoll/iced/internal/flags"

// Instruction-form constants:
const (
	{{ range $i, $c := .Codes }}{{ $c.Name }}{{ if (eq $i 0) }} Code = iota{{ end }}
	{{ end }}
	codeCount = iota
)

// Instruction-form names:

const codeNames = "{{ .NamesFlat }}"

var codeNameOffsets = [...]uint16{ {{ .NameOffsets }} }

var codeTable = [...]codeData{
	{{ range $c := .Codes }}{ {{ $c.Flow }}, {{ $c.Flags }} }, // {{ $c.Name }}
	{{ end }}
}
`
