package gas

import (
	"github.com/asuradoll/iced"
)

var scaleNumbers = [4]string{"1", "2", "4", "8"}

// formatMemory writes seg:displ(base,index,scale). addrSize is in bytes; displ holds the
// displacement zero- or sign-extended as the address size requires.
func (f *Formatter) formatMemory(out Output, inst *iced.Instruction, operand int, seg, base, index iced.Reg, scale, displSize int, displ uint64, addrSize int) {
	opts := f.opts
	if scale < 0 || scale >= len(scaleNumbers) {
		panic("gas: invalid memory scale")
	}

	var absAddr uint64
	hints := f.hints()
	switch base {
	case iced.RIP:
		absAddr = inst.NextIP() + uint64(int64(int32(displ)))
	case iced.EIP:
		absAddr = uint64(inst.NextIP32() + uint32(displ))
	default:
		absAddr = displ
		hints.RipRelativeAddresses = true
	}

	var sym *SymbolResult
	if f.resolver != nil {
		sym, hints = f.resolver.Displacement(operand, inst, absAddr, addrSize, hints)
	}

	if !hints.RipRelativeAddresses {
		switch base {
		case iced.RIP:
			base, displ, displSize = 0, absAddr, 8
		case iced.EIP:
			base, displ, displSize = 0, absAddr, 4
		}
	}

	useScale := (scale != 0 || opts.AlwaysShowScale) && addrSize != 2
	hasBaseOrIndex := base != 0 || index != 0

	if opts.AlwaysShowSegmentRegister || inst.SegmentPrefix != 0 {
		f.formatRegister(out, seg)
		out.Write(":", Punctuation)
	}

	if sym != nil {
		writeSymbol(out, sym)
	} else if !hasBaseOrIndex || (displSize != 0 && (opts.ShowZeroDisplacements || displ != 0)) {
		if hasBaseOrIndex {
			if opts.SignedMemoryDisplacements && isNegative(displ, addrSize) {
				out.Write("-", Operator)
				displ = negate(displ, addrSize)
			}
			if opts.SignExtendMemoryDisplacements {
				displSize = addrSize
			}
		}
		out.Write(f.formatDisplacement(displ, displSize), Number)
	}

	if hasBaseOrIndex {
		out.Write("(", Punctuation)
		if opts.SpaceAfterMemoryBracket {
			out.Write(" ", Text)
		}
		if base != 0 && index == 0 && !useScale {
			f.formatRegister(out, base)
		} else {
			if base != 0 {
				f.formatRegister(out, base)
			}
			f.formatMemoryComma(out)
			if index != 0 {
				f.formatRegister(out, index)
			}
			if useScale {
				f.formatMemoryComma(out)
				out.Write(scaleNumbers[scale], Number)
			}
		}
		if opts.SpaceBeforeMemoryCloseBracket {
			out.Write(" ", Text)
		}
		out.Write(")", Punctuation)
	}

	if bcst := inst.MemorySize.BroadcastSuffix(); bcst != "" {
		f.formatEvexMisc(out, bcst)
	}
}

func (f *Formatter) formatMemoryComma(out Output) {
	out.Write(",", Punctuation)
	if f.opts.SpaceAfterMemoryOperandComma {
		out.Write(" ", Text)
	}
}

// formatDisplacement writes displ at the smallest width of at least displSize bytes that holds it.
func (f *Formatter) formatDisplacement(displ uint64, displSize int) string {
	short := f.opts.ShortNumbers
	switch {
	case displSize <= 1 && displ <= 0xff:
		return f.numbers.FormatUint(displ, 1, short)
	case displSize <= 2 && displ <= 0xffff:
		return f.numbers.FormatUint(displ, 2, short)
	case displSize <= 4 && displ <= 0xffffffff:
		return f.numbers.FormatUint(displ, 4, short)
	case displSize <= 8:
		return f.numbers.FormatUint(displ, 8, short)
	}
	panic("gas: invalid displacement size")
}
