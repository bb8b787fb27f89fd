package gas

import (
	"github.com/asuradoll/iced"
	"github.com/asuradoll/iced/internal/flags"
)

// instrOpKind is an iced.OpKind or one of the formatter's pseudo operands.
type instrOpKind uint8

const (
	opSae instrOpKind = instrOpKind(iced.OpMemory) + 1 + iota
	opRnSae
	opRdSae
	opRuSae
	opRzSae
)

const maxOps = 5

type sizeOverride uint8

const (
	sizeNone sizeOverride = iota
	size16
	size32
	size64
)

type opInfoFlags uint16

const addrSizeShift = 2

const (
	opSizeMask   opInfoFlags = 3 // sizeOverride of the operand size
	addrSizeMask opInfoFlags = 3 << addrSizeShift

	opSizeIsByteDirective opInfoFlags = 1 << (4 + iota)
	indirectOperand
	jccTaken
	jccNotTaken
	bndPrefix
	ignoreIndexReg
)

// instrOpInfo is what the formatter writes for one instruction: the mnemonic, the operands
// in AT&T order and the prefixes implied by the form.
type instrOpInfo struct {
	mnemonic string
	flags    opInfoFlags
	opCount  int
	opKinds  [maxOps]instrOpKind
	opRegs   [maxOps]iced.Reg
}

func (o *instrOpInfo) opSize() sizeOverride { return sizeOverride(o.flags & opSizeMask) }

func (o *instrOpInfo) addrSize() sizeOverride {
	return sizeOverride((o.flags & addrSizeMask) >> addrSizeShift)
}

func (o *instrOpInfo) setOpSize(bits int) {
	o.flags = o.flags&^opSizeMask | opInfoFlags(sizeFor(bits))
}

func (o *instrOpInfo) setAddrSize(bits int) {
	o.flags = o.flags&^addrSizeMask | opInfoFlags(sizeFor(bits))<<addrSizeShift
}

func sizeFor(bits int) sizeOverride {
	switch bits {
	case 16:
		return size16
	case 32:
		return size32
	case 64:
		return size64
	}
	return sizeNone
}

var sizeSuffixes = [...]string{1: "b", 2: "w", 4: "l", 8: "q"}

// sizeSuffix returns the mnemonic suffix for an operand of size bytes, or "".
func sizeSuffix(size int) string {
	if size <= 0 || size >= len(sizeSuffixes) {
		return ""
	}
	return sizeSuffixes[size]
}

// defaultOpSize returns the operand size in bits an instruction form has without prefixes.
func defaultOpSize(inst *iced.Instruction) int {
	switch inst.CodeSize {
	case iced.Code16:
		return 16
	case iced.Code32:
		return 32
	case iced.Code64:
		if inst.Code.Flags()&flags.STACK64 != 0 {
			return 64
		}
		return 32
	}
	return 0
}

// opInfo builds the operand info of inst. It depends only on inst and the options.
func (ci *codeInfo) opInfo(opts *Options, inst *iced.Instruction) instrOpInfo {
	var info instrOpInfo
	info.mnemonic = ci.mnemonic
	if ci.kind == infoNoReverse {
		info.opCount = inst.OpCount
		for i := 0; i < inst.OpCount; i++ {
			info.opKinds[i] = instrOpKind(inst.OpKinds[i])
			info.opRegs[i] = inst.OpRegs[i]
		}
	} else {
		reverse(&info, inst)
	}
	codeFlags := inst.Code.Flags()
	if codeFlags&flags.IGNORE_INDEX != 0 {
		info.flags |= ignoreIndexReg
	}

	switch ci.kind {
	case infoSimple, infoNoReverse, infoMib:

	case infoSized:
		size, forced := ci.operandSize(inst)
		if s := sizeSuffix(size); s != "" && (forced || opts.ShowMnemonicSizeSuffix) {
			info.mnemonic += s
		}

	case infoOpSize:
		def := defaultOpSize(inst)
		mismatch := def != 0 && int(ci.size) != def
		if mismatch || opts.ShowMnemonicSizeSuffix {
			if ci.suffixed != "" {
				info.mnemonic = ci.suffixed
			} else if mismatch {
				info.setOpSize(int(ci.size))
				if codeFlags&flags.OPSIZE_BYTE != 0 {
					info.flags |= opSizeIsByteDirective
				}
			}
		}

	case infoBranch:
		ci.branchInfo(&info, opts, inst, codeFlags)

	case infoIndirect:
		info.flags |= indirectOperand
		size := 0
		if k := inst.OpKinds[0]; k == iced.OpRegister {
			size = int(inst.OpRegs[0].Width())
		} else if k.IsMemory() {
			size = inst.MemorySize.Size()
		}
		def := inst.CodeSize.Bits()
		mismatch := def != 0 && size != 0 && size*8 != def
		if s := sizeSuffix(size); s != "" && (mismatch || opts.ShowMnemonicSizeSuffix) {
			info.mnemonic += s
		}
		if inst.Repne && codeFlags&flags.BND != 0 {
			info.flags |= bndPrefix
		}

	case infoFar:
		bits := 0
		switch inst.OpKinds[0] {
		case iced.OpFarBranch16:
			bits = 16
		case iced.OpFarBranch32:
			bits = 32
		default:
			info.flags |= indirectOperand
			switch inst.MemorySize {
			case iced.MemFarPtr16_16:
				bits = 16
			case iced.MemFarPtr16_32:
				bits = 32
			case iced.MemFarPtr16_64:
				bits = 64
			}
		}
		def := inst.CodeSize.Bits()
		if def == 64 {
			def = 32
		}
		mismatch := def != 0 && bits != 0 && bits != def
		if s := sizeSuffix(bits / 8); s != "" && (mismatch || opts.ShowMnemonicSizeSuffix) {
			info.mnemonic += s
		}

	case infoMovx:
		src, dst := 0, 0
		if inst.OpCount == 2 {
			dst = int(inst.OpRegs[0].Width())
			if inst.OpKinds[1] == iced.OpRegister {
				src = int(inst.OpRegs[1].Width())
			} else {
				src = inst.MemorySize.Size()
			}
		}
		if s, d := sizeSuffix(src), sizeSuffix(dst); s != "" && d != "" && src < dst {
			info.mnemonic += s + d
		} else {
			info.mnemonic += "x"
			if inst.Code == iced.MOVSXD {
				info.mnemonic += "d"
			}
		}

	case infoEvex:
		if rc := inst.RoundingControl; rc != iced.RoundNone && codeFlags&flags.ER != 0 {
			insertOp(&info, 0, opRnSae+instrOpKind(rc-iced.RoundToNearest))
		} else if inst.SuppressAllExceptions && codeFlags&(flags.SAE|flags.ER) != 0 {
			insertOp(&info, int(ci.saeIndex), opSae)
		}

	default:
		panic("gas: unknown info kind")
	}
	return info
}

func reverse(info *instrOpInfo, inst *iced.Instruction) {
	n := inst.OpCount
	if n < 0 || n > len(inst.OpKinds) {
		panic("gas: invalid operand count")
	}
	info.opCount = n
	for i := 0; i < n; i++ {
		info.opKinds[i] = instrOpKind(inst.OpKinds[n-1-i])
		info.opRegs[i] = inst.OpRegs[n-1-i]
	}
}

func insertOp(info *instrOpInfo, at int, kind instrOpKind) {
	if at > info.opCount {
		at = info.opCount
	}
	copy(info.opKinds[at+1:], info.opKinds[at:info.opCount])
	copy(info.opRegs[at+1:], info.opRegs[at:info.opCount])
	info.opKinds[at] = kind
	info.opRegs[at] = 0
	info.opCount++
}

// operandSize returns the operand size in bytes of a sized form and whether the size must be
// spelled out because no register operand fixes it.
func (ci *codeInfo) operandSize(inst *iced.Instruction) (size int, forced bool) {
	n := inst.OpCount
	if ci.dstOnly && n > 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if inst.OpKinds[i] != iced.OpRegister {
			continue
		}
		if r := inst.OpRegs[i]; r.IsGPR() || r.Family() == iced.REG_SEGMENT {
			return int(r.Width()), false
		}
	}
	for i := 0; i < n; i++ {
		if inst.OpKinds[i].IsMemory() {
			return inst.MemorySize.Size(), true
		}
	}
	for i := 0; i < inst.OpCount; i++ {
		if size := inst.OpKinds[i].ImmediateSize(); size != 0 {
			def := defaultOpSize(inst)
			return size, def != 0 && size*8 != def
		}
	}
	return 0, false
}

func (ci *codeInfo) branchInfo(info *instrOpInfo, opts *Options, inst *iced.Instruction, codeFlags uint32) {
	bits := 0
	for i := 0; i < inst.OpCount; i++ {
		if b := inst.OpKinds[i].BranchSize(); b != 0 {
			bits = b * 8
			break
		}
	}
	def := inst.CodeSize.Bits()
	mismatch := def != 0 && bits != 0 && bits != def
	suffix := codeFlags&flags.OPSIZE_BYTE == 0 && inst.Code.FlowControl() != iced.FlowXbeginXabortXend
	switch {
	case suffix && (mismatch || opts.ShowMnemonicSizeSuffix):
		info.mnemonic += sizeSuffix(bits / 8)
	case mismatch:
		info.setOpSize(bits)
		if codeFlags&flags.OPSIZE_BYTE != 0 && bits != 64 {
			info.flags |= opSizeIsByteDirective
		}
	}
	if ci.size != 0 && def != 0 && int(ci.size) != def {
		info.setAddrSize(int(ci.size))
	}
	if inst.Repne && codeFlags&flags.BND != 0 {
		info.flags |= bndPrefix
	}
	if codeFlags&flags.JCC_HINT != 0 {
		switch inst.SegmentPrefix {
		case iced.CS:
			info.flags |= jccNotTaken
		case iced.DS:
			info.flags |= jccTaken
		}
	}
}
