package gas

import (
	"github.com/asuradoll/iced"
)

// TextPart is one piece of a symbol's text.
type TextPart struct {
	Text string
	Kind TextKind
}

// SymbolResult replaces a number with symbolic text.
type SymbolResult struct {
	Address uint64
	Parts   []TextPart
}

// Symbol returns a result with a single text part.
func Symbol(address uint64, text string, kind TextKind) *SymbolResult {
	return &SymbolResult{Address: address, Parts: []TextPart{{text, kind}}}
}

func (s *SymbolResult) String() string {
	if len(s.Parts) == 1 {
		return s.Parts[0].Text
	}
	var text string
	for _, p := range s.Parts {
		text += p.Text
	}
	return text
}

func writeSymbol(out Output, s *SymbolResult) {
	for _, p := range s.Parts {
		out.Write(p.Text, p.Kind)
	}
}

// Hints are style decisions a resolver may override for the operand it resolves.
type Hints struct {
	ShowBranchSize       bool
	RipRelativeAddresses bool
}

// SymbolResolver may replace addresses and immediates with symbols. Each method returns nil
// to keep the number. The returned Hints apply to the operand being formatted, whether or
// not a symbol was returned.
type SymbolResolver interface {
	Branch(operand int, inst *iced.Instruction, address uint64, size int, hints Hints) (*SymbolResult, Hints)
	// FarBranch may resolve the selector, the offset or both. A nil half is written as a number.
	FarBranch(operand int, inst *iced.Instruction, selector uint16, offset uint32, size int, hints Hints) (sel, off *SymbolResult, h Hints)
	Immediate(operand int, inst *iced.Instruction, value uint64, size int) *SymbolResult
	Displacement(operand int, inst *iced.Instruction, address uint64, size int, hints Hints) (*SymbolResult, Hints)
}

// MapResolver resolves branch targets, far branch offsets and memory addresses found in the
// map. Immediates are resolved only when they are at least 4 bytes wide.
type MapResolver map[uint64]string

func (m MapResolver) Branch(operand int, inst *iced.Instruction, address uint64, size int, hints Hints) (*SymbolResult, Hints) {
	name, ok := m[address]
	if !ok {
		return nil, hints
	}
	if inst.FlowControl().IsCall() {
		return Symbol(address, name, Function), hints
	}
	return Symbol(address, name, Label), hints
}

func (m MapResolver) FarBranch(operand int, inst *iced.Instruction, selector uint16, offset uint32, size int, hints Hints) (*SymbolResult, *SymbolResult, Hints) {
	sym, h := m.Branch(operand, inst, uint64(offset), size, hints)
	return nil, sym, h
}

func (m MapResolver) Immediate(operand int, inst *iced.Instruction, value uint64, size int) *SymbolResult {
	if size < 4 {
		return nil
	}
	if name, ok := m[value]; ok {
		return Symbol(value, name, Data)
	}
	return nil
}

func (m MapResolver) Displacement(operand int, inst *iced.Instruction, address uint64, size int, hints Hints) (*SymbolResult, Hints) {
	name, ok := m[address]
	if !ok {
		return nil, hints
	}
	return Symbol(address, name, Data), hints
}
