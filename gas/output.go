package gas

import (
	"strings"
)

// TextKind classifies a piece of formatted text.
type TextKind uint8

const (
	Text TextKind = iota
	Directive
	Prefix
	Mnemonic
	Keyword
	Operator
	Punctuation
	Number
	Register
	SelectorValue
	LabelAddress
	FunctionAddress
	Data
	Label
	Function
)

var textKindNames = [...]string{
	"Text", "Directive", "Prefix", "Mnemonic", "Keyword", "Operator", "Punctuation", "Number",
	"Register", "SelectorValue", "LabelAddress", "FunctionAddress", "Data", "Label", "Function",
}

func (k TextKind) String() string {
	if int(k) < len(textKindNames) {
		return textKindNames[k]
	}
	return "TextKind(?)"
}

// Output receives formatted text. Each formatted operand is bracketed by OnOperand calls.
type Output interface {
	Write(text string, kind TextKind)
	OnOperand(operand int, begin bool)
}

// StringOutput accumulates formatted text.
type StringOutput struct {
	sb strings.Builder
}

func (o *StringOutput) Write(text string, kind TextKind)  { o.sb.WriteString(text) }
func (o *StringOutput) OnOperand(operand int, begin bool) {}
func (o *StringOutput) String() string                    { return o.sb.String() }
func (o *StringOutput) Len() int                          { return o.sb.Len() }
func (o *StringOutput) Reset()                            { o.sb.Reset() }

// Token is one piece of text written to a TokenOutput.
type Token struct {
	Text string
	Kind TextKind
}

// Operand boundary recorded by a TokenOutput.
type Boundary struct {
	Operand int
	Begin   bool
	Pos     int // index of the next token
}

// TokenOutput records every token and operand boundary, for highlighting or inspection.
type TokenOutput struct {
	Tokens     []Token
	Boundaries []Boundary
}

func (o *TokenOutput) Write(text string, kind TextKind) {
	o.Tokens = append(o.Tokens, Token{text, kind})
}

func (o *TokenOutput) OnOperand(operand int, begin bool) {
	o.Boundaries = append(o.Boundaries, Boundary{operand, begin, len(o.Tokens)})
}

// Operand returns the tokens written for a formatted operand.
func (o *TokenOutput) Operand(operand int) []Token {
	start := -1
	for _, b := range o.Boundaries {
		if b.Operand != operand {
			continue
		}
		if b.Begin {
			start = b.Pos
		} else if start >= 0 {
			return o.Tokens[start:b.Pos]
		}
	}
	return nil
}

func (o *TokenOutput) String() string {
	var sb strings.Builder
	for _, t := range o.Tokens {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

func (o *TokenOutput) Reset() {
	o.Tokens = o.Tokens[:0]
	o.Boundaries = o.Boundaries[:0]
}
