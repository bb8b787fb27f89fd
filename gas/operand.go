package gas

import (
	"strconv"
	"strings"

	"github.com/asuradoll/iced"
)

const immediatePrefix = "$"

var registerNames map[iced.Reg]string // with the % sigil

func init() {
	registerNames = make(map[iced.Reg]string, len(iced.AllRegisters))
	for _, r := range iced.AllRegisters {
		registerNames[r] = "%" + r.Name()
	}
}

func (f *Formatter) formatRegister(out Output, reg iced.Reg) {
	var name string
	if f.opts.NakedRegisters {
		name = reg.Name()
	} else {
		name = registerNames[reg]
	}
	if name == "" {
		panic("gas: unknown register " + reg.String())
	}
	if f.opts.UpperCaseRegisters || f.opts.UpperCaseAll {
		name = strings.ToUpper(name)
	}
	out.Write(name, Register)
}

func (f *Formatter) formatEvexMisc(out Output, text string) {
	if f.opts.UpperCaseOther || f.opts.UpperCaseAll {
		text = strings.ToUpper(text)
	}
	out.Write("{", Punctuation)
	out.Write(text, Text)
	out.Write("}", Punctuation)
}

func (f *Formatter) hints() Hints {
	return Hints{ShowBranchSize: f.opts.ShowBranchSize, RipRelativeAddresses: f.opts.RipRelativeAddresses}
}

func branchKind(inst *iced.Instruction) TextKind {
	if inst.FlowControl().IsCall() {
		return FunctionAddress
	}
	return LabelAddress
}

func (f *Formatter) formatOperand(inst *iced.Instruction, out Output, info *instrOpInfo, operand int) {
	opts := f.opts
	out.OnOperand(operand, true)

	if info.flags&indirectOperand != 0 {
		out.Write("*", Operator)
	}

	switch kind := info.opKinds[operand]; kind {
	case instrOpKind(iced.OpRegister):
		f.formatRegister(out, info.opRegs[operand])

	case instrOpKind(iced.OpNearBranch16), instrOpKind(iced.OpNearBranch32), instrOpKind(iced.OpNearBranch64):
		size := iced.OpKind(kind).BranchSize()
		target := inst.NearBranchTarget
		switch size {
		case 2:
			target = uint64(inst.NearBranch16())
		case 4:
			target = uint64(inst.NearBranch32())
		}
		var sym *SymbolResult
		if f.resolver != nil {
			sym, _ = f.resolver.Branch(operand, inst, target, size, f.hints())
		}
		if sym != nil {
			writeSymbol(out, sym)
		} else {
			out.Write(f.numbers.FormatUint(target, size, opts.ShortBranchNumbers), branchKind(inst))
		}

	case instrOpKind(iced.OpFarBranch16), instrOpKind(iced.OpFarBranch32):
		size := iced.OpKind(kind).BranchSize()
		offset := inst.FarBranch32()
		if size == 2 {
			offset = uint32(inst.FarBranch16())
		}
		var sel, off *SymbolResult
		if f.resolver != nil {
			sel, off, _ = f.resolver.FarBranch(operand, inst, inst.FarBranchSelector, offset, size, f.hints())
		}
		out.Write(immediatePrefix, Operator)
		if sel != nil {
			writeSymbol(out, sel)
		} else {
			out.Write(f.numbers.FormatUint(uint64(inst.FarBranchSelector), 2, opts.ShortBranchNumbers), SelectorValue)
		}
		f.FormatOperandSeparator(inst, out)
		out.Write(immediatePrefix, Operator)
		if off != nil {
			writeSymbol(out, off)
		} else {
			out.Write(f.numbers.FormatUint(uint64(offset), size, opts.ShortBranchNumbers), branchKind(inst))
		}

	case instrOpKind(iced.OpImmediate8), instrOpKind(iced.OpImmediate8_2nd),
		instrOpKind(iced.OpImmediate16), instrOpKind(iced.OpImmediate8to16),
		instrOpKind(iced.OpImmediate32), instrOpKind(iced.OpImmediate8to32),
		instrOpKind(iced.OpImmediate64), instrOpKind(iced.OpImmediate8to64), instrOpKind(iced.OpImmediate32to64):
		out.Write(immediatePrefix, Operator)
		value, size := immediate(inst, iced.OpKind(kind))
		var sym *SymbolResult
		if f.resolver != nil {
			sym = f.resolver.Immediate(operand, inst, value, size)
		}
		if sym != nil {
			writeSymbol(out, sym)
			break
		}
		if opts.SignedImmediateOperands && isNegative(value, size) {
			out.Write("-", Operator)
			value = negate(value, size)
		}
		out.Write(f.numbers.FormatUint(value, size, opts.ShortNumbers), Number)

	case instrOpKind(iced.OpMemorySegSI):
		f.formatMemory(out, inst, operand, inst.MemorySegment(), iced.SI, 0, 0, 0, 0, 2)
	case instrOpKind(iced.OpMemorySegESI):
		f.formatMemory(out, inst, operand, inst.MemorySegment(), iced.ESI, 0, 0, 0, 0, 4)
	case instrOpKind(iced.OpMemorySegRSI):
		f.formatMemory(out, inst, operand, inst.MemorySegment(), iced.RSI, 0, 0, 0, 0, 8)
	case instrOpKind(iced.OpMemorySegDI):
		f.formatMemory(out, inst, operand, inst.MemorySegment(), iced.DI, 0, 0, 0, 0, 2)
	case instrOpKind(iced.OpMemorySegEDI):
		f.formatMemory(out, inst, operand, inst.MemorySegment(), iced.EDI, 0, 0, 0, 0, 4)
	case instrOpKind(iced.OpMemorySegRDI):
		f.formatMemory(out, inst, operand, inst.MemorySegment(), iced.RDI, 0, 0, 0, 0, 8)
	case instrOpKind(iced.OpMemoryESDI):
		f.formatMemory(out, inst, operand, iced.ES, iced.DI, 0, 0, 0, 0, 2)
	case instrOpKind(iced.OpMemoryESEDI):
		f.formatMemory(out, inst, operand, iced.ES, iced.EDI, 0, 0, 0, 0, 4)
	case instrOpKind(iced.OpMemoryESRDI):
		f.formatMemory(out, inst, operand, iced.ES, iced.RDI, 0, 0, 0, 0, 8)

	case instrOpKind(iced.OpMemory64):
		f.formatMemory(out, inst, operand, inst.MemorySegment(), 0, 0, 0, 8, inst.MemoryAddress64, 8)

	case instrOpKind(iced.OpMemory):
		base, index := inst.MemoryBase, inst.MemoryIndex
		displSize := int(inst.MemoryDisplSize)
		addrSize := addressSize(base, index, displSize, inst.CodeSize)
		displ := uint64(inst.MemoryDisplacement)
		if addrSize == 8 {
			displ = inst.MemoryDisplacement64()
		}
		if displSize == 0 && opts.ShowZeroDisplacements {
			displSize = 1
		}
		if info.flags&ignoreIndexReg != 0 {
			index = 0
		}
		f.formatMemory(out, inst, operand, inst.MemorySegment(), base, index, int(inst.MemoryScale), displSize, displ, addrSize)

	case opSae:
		f.formatEvexMisc(out, "sae")
	case opRnSae:
		f.formatEvexMisc(out, "rn-sae")
	case opRdSae:
		f.formatEvexMisc(out, "rd-sae")
	case opRuSae:
		f.formatEvexMisc(out, "ru-sae")
	case opRzSae:
		f.formatEvexMisc(out, "rz-sae")

	default:
		panic("gas: unknown operand kind " + strconv.Itoa(int(kind)))
	}

	if operand+1 == info.opCount && inst.HasOpMask() {
		out.Write("{", Punctuation)
		f.formatRegister(out, inst.OpMask)
		out.Write("}", Punctuation)
		if inst.ZeroingMasking {
			f.formatEvexMisc(out, "z")
		}
	}

	out.OnOperand(operand, false)
}

// immediate returns the displayed value of an immediate operand and its width in bytes.
func immediate(inst *iced.Instruction, kind iced.OpKind) (uint64, int) {
	switch kind {
	case iced.OpImmediate8:
		return uint64(inst.Immediate8()), 1
	case iced.OpImmediate8_2nd:
		return uint64(inst.Immediate8_2nd), 1
	case iced.OpImmediate16:
		return uint64(inst.Immediate16()), 2
	case iced.OpImmediate8to16:
		return uint64(uint16(inst.Immediate8to16())), 2
	case iced.OpImmediate32:
		return uint64(inst.Immediate32()), 4
	case iced.OpImmediate8to32:
		return uint64(uint32(inst.Immediate8to32())), 4
	case iced.OpImmediate64:
		return inst.Immediate64(), 8
	case iced.OpImmediate8to64:
		return uint64(inst.Immediate8to64()), 8
	case iced.OpImmediate32to64:
		return uint64(inst.Immediate32to64()), 8
	}
	panic("gas: not an immediate: " + kind.String())
}

// isNegative reports whether the low size bytes of v are negative as a signed integer.
func isNegative(v uint64, size int) bool {
	return v>>(uint(size)*8-1)&1 != 0
}

// negate returns the magnitude of the negative size-byte integer v.
func negate(v uint64, size int) uint64 {
	v = -v
	if size < 8 {
		v &= 1<<(uint(size)*8) - 1
	}
	return v
}

// addressSize returns the address size in bytes implied by the registers of a memory operand,
// falling back to the displacement size and then the code size.
func addressSize(base, index iced.Reg, displSize int, codeSize iced.CodeSize) int {
	if base != 0 {
		return int(base.Width())
	}
	if index != 0 && !index.IsVector() {
		return int(index.Width())
	}
	if displSize >= 2 {
		return displSize
	}
	switch codeSize {
	case iced.Code16:
		return 2
	case iced.Code32:
		return 4
	}
	return 8
}
