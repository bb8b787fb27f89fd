package iced

// OpKind describes how an instruction operand is encoded and which fields of Instruction hold its value.
type OpKind uint8

const (
	OpRegister OpKind = iota
	OpNearBranch16
	OpNearBranch32
	OpNearBranch64
	OpFarBranch16
	OpFarBranch32
	OpImmediate8
	OpImmediate8_2nd
	OpImmediate16
	OpImmediate32
	OpImmediate64
	OpImmediate8to16
	OpImmediate8to32
	OpImmediate8to64
	OpImmediate32to64
	OpMemorySegSI
	OpMemorySegESI
	OpMemorySegRSI
	OpMemorySegDI
	OpMemorySegEDI
	OpMemorySegRDI
	OpMemoryESDI
	OpMemoryESEDI
	OpMemoryESRDI
	OpMemory64
	OpMemory

	opKindCount
)

var opKindNames = [...]string{
	"Register",
	"NearBranch16", "NearBranch32", "NearBranch64",
	"FarBranch16", "FarBranch32",
	"Immediate8", "Immediate8_2nd", "Immediate16", "Immediate32", "Immediate64",
	"Immediate8to16", "Immediate8to32", "Immediate8to64", "Immediate32to64",
	"MemorySegSI", "MemorySegESI", "MemorySegRSI",
	"MemorySegDI", "MemorySegEDI", "MemorySegRDI",
	"MemoryESDI", "MemoryESEDI", "MemoryESRDI",
	"Memory64", "Memory",
}

func (k OpKind) String() string {
	if k < opKindCount {
		return opKindNames[k]
	}
	return "OpKind(?)"
}

// IsMemory reports whether the operand references memory.
func (k OpKind) IsMemory() bool { return k >= OpMemorySegSI && k <= OpMemory }

// IsImmediate reports whether the operand is an immediate value.
func (k OpKind) IsImmediate() bool { return k >= OpImmediate8 && k <= OpImmediate32to64 }

// ImmediateSize returns the displayed width in bytes of an immediate operand, or 0.
func (k OpKind) ImmediateSize() int {
	switch k {
	case OpImmediate8, OpImmediate8_2nd:
		return 1
	case OpImmediate16, OpImmediate8to16:
		return 2
	case OpImmediate32, OpImmediate8to32:
		return 4
	case OpImmediate64, OpImmediate8to64, OpImmediate32to64:
		return 8
	}
	return 0
}

// BranchSize returns the width in bytes of a near or far branch target, or 0.
func (k OpKind) BranchSize() int {
	switch k {
	case OpNearBranch16, OpFarBranch16:
		return 2
	case OpNearBranch32, OpFarBranch32:
		return 4
	case OpNearBranch64:
		return 8
	}
	return 0
}

// CodeSize is the default operand and address size of the code an instruction was decoded from.
type CodeSize uint8

const (
	CodeSizeUnknown CodeSize = iota
	Code16
	Code32
	Code64
)

// Bits returns 16, 32 or 64, or 0 for CodeSizeUnknown.
func (s CodeSize) Bits() int {
	switch s {
	case Code16:
		return 16
	case Code32:
		return 32
	case Code64:
		return 64
	}
	return 0
}

// RoundingControl is the EVEX embedded rounding mode.
type RoundingControl uint8

const (
	RoundNone RoundingControl = iota
	RoundToNearest
	RoundDown
	RoundUp
	RoundTowardZero
)
