package iced

import (
	"strconv"

	"github.com/asuradoll/iced/internal/flags"
)

// Code identifies an instruction form. The zero value is INVALID.
type Code uint16

type codeData struct {
	flow  FlowControl
	flags uint32
}

// CodeCount is the number of known instruction forms, including INVALID.
const CodeCount = codeCount

func (c Code) data() *codeData {
	if int(c) >= len(codeTable) {
		panic("iced: code out of range: " + strconv.Itoa(int(c)))
	}
	return &codeTable[c]
}

// Name returns the identifier of the instruction form, e.g. "JMP_RM".
func (c Code) Name() string {
	if int(c) >= len(codeTable) {
		return "Code(" + strconv.Itoa(int(c)) + ")"
	}
	return codeNames[codeNameOffsets[c]:codeNameOffsets[c+1]]
}

func (c Code) String() string { return c.Name() }

// FlowControl returns how the instruction affects the flow of execution.
func (c Code) FlowControl() FlowControl { return c.data().flow }

// Flags returns the metadata bits (see package internal/flags) of the instruction form.
func (c Code) Flags() uint32 { return c.data().flags }

// FlagNames returns the names of the metadata bits set for the instruction form.
func (c Code) FlagNames() []string { return flags.Names(c.data().flags) }

// IsValid reports whether c names a known instruction form other than INVALID.
func (c Code) IsValid() bool { return c != INVALID && int(c) < len(codeTable) }

// IsStringOp reports whether the instruction form accepts a rep prefix.
func (c Code) IsStringOp() bool { return c.data().flags&(flags.REP|flags.REPE) != 0 }

// IsRepeOrRepne reports whether rep prefixes on the instruction form are spelled repe/repne.
func (c Code) IsRepeOrRepne() bool { return c.data().flags&flags.REPE != 0 }

// IsJcc reports whether the instruction form is a conditional jump on a condition code.
func (c Code) IsJcc() bool { return c >= JO && c <= JG }

// ConditionCode returns the condition tested by a Jcc, SETcc or CMOVcc form.
func (c Code) ConditionCode() (ConditionCode, bool) {
	switch {
	case c >= JO && c <= JG:
		return ConditionCode(c - JO), true
	case c >= SETO && c <= SETG:
		return ConditionCode(c - SETO), true
	case c >= CMOVO && c <= CMOVG:
		return ConditionCode(c - CMOVO), true
	}
	return 0, false
}

// AllCodes returns every valid instruction form in table order.
func AllCodes() []Code {
	codes := make([]Code, 0, len(codeTable)-1)
	for c := Code(1); int(c) < len(codeTable); c++ {
		codes = append(codes, c)
	}
	return codes
}
