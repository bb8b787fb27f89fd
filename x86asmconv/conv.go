// Package x86asmconv converts instructions decoded by golang.org/x/arch/x86/x86asm into
// iced.Instruction records.
//
// Only instruction forms known to package iced are converted; anything else returns an error
// wrapping ErrUnsupported so callers can fall back to raw bytes.
package x86asmconv

import (
	"github.com/samber/lo"
	"golang.org/x/arch/x86/x86asm"
	"golang.org/x/xerrors"

	"github.com/asuradoll/iced"
	"github.com/asuradoll/iced/internal/flags"
	icedlookup "github.com/asuradoll/iced/lookup"
)

// ErrUnsupported is wrapped by errors for instructions that have no iced form.
var ErrUnsupported = xerrors.New("unsupported instruction")

// Decode decodes one instruction of code in the given mode (16, 32 or 64) located at ip.
func Decode(code []byte, mode int, ip uint64) (iced.Instruction, x86asm.Inst, error) {
	src, err := x86asm.Decode(code, mode)
	if err != nil {
		return iced.Instruction{}, src, xerrors.Errorf("decoding at %#x: %w", ip, err)
	}
	inst, err := Convert(src, ip)
	return inst, src, err
}

// Convert converts src, decoded at address ip.
func Convert(src x86asm.Inst, ip uint64) (iced.Instruction, error) {
	var inst iced.Instruction
	switch src.Mode {
	case 16:
		inst.CodeSize = iced.Code16
	case 32:
		inst.CodeSize = iced.Code32
	case 64:
		inst.CodeSize = iced.Code64
	default:
		return inst, xerrors.Errorf("invalid mode %d: %w", src.Mode, ErrUnsupported)
	}
	inst.IP = ip
	inst.Len = src.Len

	args := lo.Filter(src.Args[:], func(a x86asm.Arg, _ int) bool { return a != nil })

	code, args, err := codeFor(&src, args)
	if err != nil {
		return inst, err
	}
	inst.Code = code
	if len(args) > len(inst.OpKinds) {
		return inst, xerrors.Errorf("%v: too many operands: %w", src.Op, ErrUnsupported)
	}

	if err := convertPrefixes(&inst, &src); err != nil {
		return inst, err
	}

	nimm := 0
	for i, a := range args {
		switch a := a.(type) {
		case x86asm.Reg:
			r, err := register(a)
			if err != nil {
				return inst, xerrors.Errorf("%v: %w", src.Op, err)
			}
			inst.OpKinds[i] = iced.OpRegister
			inst.OpRegs[i] = r

		case x86asm.Mem:
			kind, err := convertMem(&inst, &src, a)
			if err != nil {
				return inst, xerrors.Errorf("%v: %w", src.Op, err)
			}
			inst.OpKinds[i] = kind

		case x86asm.Imm:
			if code == iced.LCALL || code == iced.LJMP {
				// ptr16:16 and ptr16:32 decode as selector then offset.
				inst.FarBranchSelector = uint16(a)
				inst.FarBranchOffset = uint32(args[1].(x86asm.Imm))
				inst.OpKinds[i] = iced.OpFarBranch32
				if src.DataSize == 16 {
					inst.OpKinds[i] = iced.OpFarBranch16
				}
				inst.OpCount = i + 1
				return inst, nil
			}
			kind := immediateKind(&src, code, nimm)
			if kind == iced.OpImmediate8_2nd {
				inst.Immediate8_2nd = uint8(a)
			} else {
				inst.Immediate = uint64(a)
			}
			inst.OpKinds[i] = kind
			nimm++

		case x86asm.Rel:
			kind, target := nearBranch(&src, ip, a)
			inst.OpKinds[i] = kind
			inst.NearBranchTarget = target

		default:
			return inst, xerrors.Errorf("%v: operand %T: %w", src.Op, a, ErrUnsupported)
		}
	}
	inst.OpCount = len(args)
	inst.MemorySize = memorySize(code, &src)
	return inst, nil
}

// codeFor picks the instruction form, dropping operands the form encodes implicitly.
func codeFor(src *x86asm.Inst, args []x86asm.Arg) (iced.Code, []x86asm.Arg, error) {
	op := byte(src.Opcode >> 24)
	first := x86asm.Arg(nil)
	if len(args) > 0 {
		first = args[0]
	}
	_, firstIsRel := first.(x86asm.Rel)
	_, firstIsImm := first.(x86asm.Imm)

	switch src.Op {
	case x86asm.INT:
		if op == 0xCC {
			return iced.INT3, nil, nil
		}
		return iced.INT, args, nil
	case x86asm.MOV:
		switch {
		case src.Mode == 64 && op >= 0xA0 && op <= 0xA3:
			return iced.MOVABS, args, nil
		case op >= 0xB8 && op <= 0xBF && src.DataSize == 64:
			return iced.MOVABS, args, nil
		}
		return iced.MOV, args, nil
	case x86asm.NOP:
		if len(args) != 0 {
			return iced.NOP_RM, args, nil
		}
		return iced.NOP, args, nil
	case x86asm.ROL, x86asm.ROR, x86asm.RCL, x86asm.RCR, x86asm.SHL, x86asm.SHR, x86asm.SAR:
		if (op == 0xD0 || op == 0xD1) && len(args) == 2 {
			args = args[:1]
		}
	case x86asm.CALL:
		if firstIsRel {
			return iced.CALL, args, nil
		}
		return iced.CALL_RM, args, nil
	case x86asm.JMP:
		if firstIsRel {
			return iced.JMP, args, nil
		}
		return iced.JMP_RM, args, nil
	case x86asm.LCALL:
		if firstIsImm {
			return iced.LCALL, args, nil
		}
		return iced.LCALL_M, args, nil
	case x86asm.LJMP:
		if firstIsImm {
			return iced.LJMP, args, nil
		}
		return iced.LJMP_M, args, nil
	case x86asm.RET:
		return bySize(stackBits(src), iced.RETW, iced.RETD, iced.RETQ), args, nil
	case x86asm.LRET:
		return bySize(src.DataSize, iced.LRETW, iced.LRETD, iced.LRETQ), args, nil
	case x86asm.IRET:
		return iced.IRETW, args, nil
	case x86asm.PUSHF:
		return iced.PUSHFW, args, nil
	case x86asm.POPF:
		return iced.POPFW, args, nil
	case x86asm.LOOP:
		return bySize(src.AddrSize, iced.LOOP16, iced.LOOP32, iced.LOOP64), args, nil
	case x86asm.LOOPE:
		return bySize(src.AddrSize, iced.LOOPE16, iced.LOOPE32, iced.LOOPE64), args, nil
	case x86asm.LOOPNE:
		return bySize(src.AddrSize, iced.LOOPNE16, iced.LOOPNE32, iced.LOOPNE64), args, nil
	case x86asm.MOVSD_XMM:
		return iced.MOVSD_X, args, nil
	}

	code, ok := icedlookup.Code(src.Op.String())
	if !ok {
		return iced.INVALID, nil, xerrors.Errorf("%v: %w", src.Op, ErrUnsupported)
	}
	return code, args, nil
}

func bySize(bits int, c16, c32, c64 iced.Code) iced.Code {
	switch bits {
	case 16:
		return c16
	case 64:
		return c64
	}
	return c32
}

// stackBits is the operand size of instructions that default to 64 bits in 64-bit mode.
func stackBits(src *x86asm.Inst) int {
	if src.Mode == 64 && src.DataSize != 16 {
		return 64
	}
	return src.DataSize
}

var segmentRegs = map[x86asm.Prefix]iced.Reg{
	x86asm.PrefixES: iced.ES,
	x86asm.PrefixCS: iced.CS,
	x86asm.PrefixSS: iced.SS,
	x86asm.PrefixDS: iced.DS,
	x86asm.PrefixFS: iced.FS,
	x86asm.PrefixGS: iced.GS,
}

func convertPrefixes(inst *iced.Instruction, src *x86asm.Inst) error {
	for _, p := range src.Prefix {
		if p == 0 || p.IsVEX() {
			// VEX payload bytes follow the VEX prefix; nothing after it is a legacy prefix.
			break
		}
		if p&x86asm.PrefixInvalid != 0 {
			return xerrors.Errorf("%v: invalid prefix %v: %w", src.Op, p, ErrUnsupported)
		}
		if p.IsREX() {
			continue
		}
		// Implicit prefixes are part of the opcode or shown inside an operand. Segment
		// overrides are still needed by memory operands.
		implicit := p&x86asm.PrefixImplicit != 0
		ignored := p&x86asm.PrefixIgnored != 0
		base := p &^ (x86asm.PrefixImplicit | x86asm.PrefixIgnored)

		if seg, ok := segmentRegs[base]; ok {
			if !ignored {
				inst.SegmentPrefix = seg
			}
			continue
		}
		if ignored || implicit {
			continue
		}
		switch base {
		case x86asm.PrefixPN:
			inst.SegmentPrefix = iced.CS
		case x86asm.PrefixPT:
			inst.SegmentPrefix = iced.DS
		case x86asm.PrefixLOCK:
			inst.Lock = true
		case x86asm.PrefixREP:
			inst.Repe = true
		case x86asm.PrefixREPN, x86asm.PrefixBND:
			inst.Repne = true
		case x86asm.PrefixXACQUIRE:
			inst.Xacquire = true
		case x86asm.PrefixXRELEASE:
			inst.Xrelease = true
		}
	}
	return nil
}

func convertMem(inst *iced.Instruction, src *x86asm.Inst, m x86asm.Mem) (iced.OpKind, error) {
	if inst.Code.IsStringOp() {
		if kind, ok := stringMemKind(m); ok {
			return kind, nil
		}
	}

	base, err := register(m.Base)
	if err != nil {
		return 0, err
	}
	index, err := register(m.Index)
	if err != nil {
		return 0, err
	}

	if inst.Code == iced.MOVABS && base == 0 && index == 0 && src.AddrSize == 64 {
		inst.MemoryAddress64 = uint64(m.Disp)
		return iced.OpMemory64, nil
	}

	inst.MemoryBase = base
	inst.MemoryIndex = index
	if index != 0 {
		switch m.Scale {
		case 1:
		case 2:
			inst.MemoryScale = 1
		case 4:
			inst.MemoryScale = 2
		case 8:
			inst.MemoryScale = 3
		default:
			return 0, xerrors.Errorf("scale %d: %w", m.Scale, ErrUnsupported)
		}
	}
	inst.MemoryDisplacement = uint32(m.Disp)
	inst.MemoryDisplSize = displSize(src, base, index, m.Disp)
	return iced.OpMemory, nil
}

// displSize guesses the encoded displacement width, which x86asm does not report.
func displSize(src *x86asm.Inst, base, index iced.Reg, disp int64) uint8 {
	addr := uint8(src.AddrSize / 8)
	switch {
	case base.IsIP():
		return 4
	case base == 0 && index == 0:
		// An absolute address is shown at the full address width.
		return addr
	case base == 0:
		if addr == 2 {
			return 2
		}
		return 4
	case disp == 0:
		return 0
	case disp >= -128 && disp <= 127:
		return 1
	case addr == 2:
		return 2
	}
	return 4
}

func stringMemKind(m x86asm.Mem) (iced.OpKind, bool) {
	if m.Index != 0 || m.Disp != 0 {
		return 0, false
	}
	es := m.Segment == x86asm.ES
	switch m.Base {
	case x86asm.SI:
		return iced.OpMemorySegSI, true
	case x86asm.ESI:
		return iced.OpMemorySegESI, true
	case x86asm.RSI:
		return iced.OpMemorySegRSI, true
	case x86asm.DI:
		return lo.Ternary(es, iced.OpMemoryESDI, iced.OpMemorySegDI), true
	case x86asm.EDI:
		return lo.Ternary(es, iced.OpMemoryESEDI, iced.OpMemorySegEDI), true
	case x86asm.RDI:
		return lo.Ternary(es, iced.OpMemoryESRDI, iced.OpMemorySegRDI), true
	}
	return 0, false
}

// Opcodes whose only immediate is one byte, regardless of operand size.
var imm8Opcodes = []byte{
	0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C, // alu al, imm8
	0x80, 0x82, 0xA8, 0xC0, 0xC1, 0xC6, 0xCD, 0xD4, 0xD5,
	0xE4, 0xE5, 0xE6, 0xE7, 0xF6,
}

func immediateKind(src *x86asm.Inst, code iced.Code, nth int) iced.OpKind {
	op := byte(src.Opcode >> 24)
	switch {
	case nth > 0:
		return iced.OpImmediate8_2nd
	case code == iced.ENTER, op == 0xC2, op == 0xCA:
		return iced.OpImmediate16
	case op == 0x6A:
		return bySizeKind(stackBits(src), iced.OpImmediate8to16, iced.OpImmediate8to32, iced.OpImmediate8to64)
	case op == 0x6B, op == 0x83:
		return bySizeKind(src.DataSize, iced.OpImmediate8to16, iced.OpImmediate8to32, iced.OpImmediate8to64)
	case op == 0x68:
		return bySizeKind(stackBits(src), iced.OpImmediate16, iced.OpImmediate32, iced.OpImmediate32to64)
	case op == 0x0F, op >= 0xB0 && op <= 0xB7, lo.Contains(imm8Opcodes, op):
		return iced.OpImmediate8
	case code == iced.MOVABS:
		return iced.OpImmediate64
	}
	return bySizeKind(src.DataSize, iced.OpImmediate16, iced.OpImmediate32, iced.OpImmediate32to64)
}

func bySizeKind(bits int, k16, k32, k64 iced.OpKind) iced.OpKind {
	switch bits {
	case 16:
		return k16
	case 64:
		return k64
	}
	return k32
}

func nearBranch(src *x86asm.Inst, ip uint64, rel x86asm.Rel) (iced.OpKind, uint64) {
	target := ip + uint64(src.Len) + uint64(int64(rel))
	switch {
	case src.Mode == 64:
		return iced.OpNearBranch64, target
	case src.DataSize == 16:
		return iced.OpNearBranch16, target & 0xFFFF
	}
	return iced.OpNearBranch32, target & 0xFFFFFFFF
}

func memorySize(code iced.Code, src *x86asm.Inst) iced.MemorySize {
	switch code {
	case iced.LCALL_M, iced.LJMP_M:
		switch src.DataSize {
		case 16:
			return iced.MemFarPtr16_16
		case 64:
			return iced.MemFarPtr16_64
		}
		return iced.MemFarPtr16_32
	}
	if code.Flags()&flags.IGNORE_INDEX != 0 {
		return lo.Ternary(src.Mode == 64, iced.MemBound64, iced.MemBound32)
	}
	switch src.MemBytes {
	case 1:
		return iced.MemUInt8
	case 2:
		return iced.MemUInt16
	case 4:
		return iced.MemUInt32
	case 8:
		return iced.MemUInt64
	case 10:
		return iced.MemFloat80
	case 16:
		return iced.MemUInt128
	case 32:
		return iced.MemUInt256
	case 64:
		return iced.MemUInt512
	}
	return iced.MemUnknown
}

// register maps an x86asm register; the zero Reg maps to no register.
func register(r x86asm.Reg) (iced.Reg, error) {
	switch {
	case r == 0:
		return 0, nil
	case r >= x86asm.AL && r <= x86asm.BL:
		return iced.AL + iced.Reg(r-x86asm.AL), nil
	case r >= x86asm.AH && r <= x86asm.BH:
		return iced.AH + iced.Reg(r-x86asm.AH), nil
	case r >= x86asm.SPB && r <= x86asm.R15B:
		return iced.SPL + iced.Reg(r-x86asm.SPB), nil
	case r >= x86asm.AX && r <= x86asm.R15W:
		return iced.AX + iced.Reg(r-x86asm.AX), nil
	case r >= x86asm.EAX && r <= x86asm.R15L:
		return iced.EAX + iced.Reg(r-x86asm.EAX), nil
	case r >= x86asm.RAX && r <= x86asm.R15:
		return iced.RAX + iced.Reg(r-x86asm.RAX), nil
	case r == x86asm.IP:
		return iced.IP, nil
	case r == x86asm.EIP:
		return iced.EIP, nil
	case r == x86asm.RIP:
		return iced.RIP, nil
	case r >= x86asm.F0 && r <= x86asm.F7:
		return iced.ST0 + iced.Reg(r-x86asm.F0), nil
	case r >= x86asm.M0 && r <= x86asm.M7:
		return iced.MM0 + iced.Reg(r-x86asm.M0), nil
	case r >= x86asm.X0 && r <= x86asm.X15:
		return iced.XMM0 + iced.Reg(r-x86asm.X0), nil
	case r >= x86asm.ES && r <= x86asm.GS:
		return iced.ES + iced.Reg(r-x86asm.ES), nil
	case r >= x86asm.CR0 && r <= x86asm.CR15:
		return iced.CR0 + iced.Reg(r-x86asm.CR0), nil
	case r >= x86asm.DR0 && r <= x86asm.DR15:
		return iced.DR0 + iced.Reg(r-x86asm.DR0), nil
	}
	return 0, xerrors.Errorf("register %v: %w", r, ErrUnsupported)
}
