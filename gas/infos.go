package gas

import (
	"github.com/asuradoll/iced"
)

// infoKind selects how an instrOpInfo is built for a code.
type infoKind uint8

const (
	infoSimple    infoKind = iota // AT&T order; suffixed mnemonic only when asked for
	infoSized                     // suffix derived from the operand size, forced when ambiguous
	infoOpSize                    // form with a fixed operand size
	infoBranch                    // near branch; loops also carry an address size
	infoIndirect                  // *operand branches
	infoFar                       // ljmp/lcall with $sel,$off or *mem
	infoNoReverse                 // Intel operand order (enter)
	infoMovx                      // movz/movs with source and destination size letters
	infoEvex                      // {er}/{sae} pseudo operand
	infoMib                       // MPX mib addressing
)

type codeInfo struct {
	kind     infoKind
	mnemonic string
	suffixed string // infoOpSize: mnemonic with size suffix
	size     uint8  // infoOpSize: operand size; infoBranch: address size of loop forms
	saeIndex uint8  // infoEvex: AT&T position of {sae}
	dstOnly  bool   // infoSized: only the destination sets the size
}

func simple(m string) codeInfo   { return codeInfo{kind: infoSimple, mnemonic: m} }
func sized(m string) codeInfo    { return codeInfo{kind: infoSized, mnemonic: m} }
func shift(m string) codeInfo    { return codeInfo{kind: infoSized, mnemonic: m, dstOnly: true} }
func branch(m string) codeInfo   { return codeInfo{kind: infoBranch, mnemonic: m} }
func indirect(m string) codeInfo { return codeInfo{kind: infoIndirect, mnemonic: m} }
func far(m string) codeInfo      { return codeInfo{kind: infoFar, mnemonic: m} }
func movx(m string) codeInfo     { return codeInfo{kind: infoMovx, mnemonic: m} }
func evex(m string) codeInfo     { return codeInfo{kind: infoEvex, mnemonic: m} }
func mib(m string) codeInfo      { return codeInfo{kind: infoMib, mnemonic: m} }

func loop(m string, addrSize uint8) codeInfo {
	return codeInfo{kind: infoBranch, mnemonic: m, size: addrSize}
}

func opSize(m, suffixed string, size uint8) codeInfo {
	return codeInfo{kind: infoOpSize, mnemonic: m, suffixed: suffixed, size: size}
}

func evexSae(m string, saeIndex uint8) codeInfo {
	return codeInfo{kind: infoEvex, mnemonic: m, saeIndex: saeIndex}
}

var codeInfos = [iced.CodeCount]codeInfo{
	iced.ADD:        sized("add"),
	iced.OR:         sized("or"),
	iced.ADC:        sized("adc"),
	iced.SBB:        sized("sbb"),
	iced.AND:        sized("and"),
	iced.SUB:        sized("sub"),
	iced.XOR:        sized("xor"),
	iced.CMP:        sized("cmp"),
	iced.TEST:       sized("test"),
	iced.MOV:        sized("mov"),
	iced.MOVABS:     sized("movabs"),
	iced.XCHG:       sized("xchg"),
	iced.LEA:        sized("lea"),
	iced.INC:        sized("inc"),
	iced.DEC:        sized("dec"),
	iced.NEG:        sized("neg"),
	iced.NOT:        sized("not"),
	iced.MUL:        sized("mul"),
	iced.IMUL:       sized("imul"),
	iced.DIV:        sized("div"),
	iced.IDIV:       sized("idiv"),
	iced.ROL:        shift("rol"),
	iced.ROR:        shift("ror"),
	iced.RCL:        shift("rcl"),
	iced.RCR:        shift("rcr"),
	iced.SHL:        shift("shl"),
	iced.SHR:        shift("shr"),
	iced.SAR:        shift("sar"),
	iced.SHLD:       sized("shld"),
	iced.SHRD:       sized("shrd"),
	iced.BT:         sized("bt"),
	iced.BTS:        sized("bts"),
	iced.BTR:        sized("btr"),
	iced.BTC:        sized("btc"),
	iced.BSF:        sized("bsf"),
	iced.BSR:        sized("bsr"),
	iced.POPCNT:     sized("popcnt"),
	iced.LZCNT:      sized("lzcnt"),
	iced.TZCNT:      sized("tzcnt"),
	iced.BSWAP:      simple("bswap"),
	iced.CMPXCHG:    sized("cmpxchg"),
	iced.XADD:       sized("xadd"),
	iced.CMPXCHG8B:  simple("cmpxchg8b"),
	iced.CMPXCHG16B: simple("cmpxchg16b"),
	iced.MOVZX:      movx("movz"),
	iced.MOVSX:      movx("movs"),
	iced.MOVSXD:     movx("movs"),
	iced.CBW:        simple("cbtw"),
	iced.CWDE:       simple("cwtl"),
	iced.CDQE:       simple("cltq"),
	iced.CWD:        simple("cwtd"),
	iced.CDQ:        simple("cltd"),
	iced.CQO:        simple("cqto"),
	iced.PUSH:       sized("push"),
	iced.POP:        sized("pop"),
	iced.PUSHFW:     opSize("pushf", "pushfw", 16),
	iced.PUSHFD:     opSize("pushf", "pushfl", 32),
	iced.PUSHFQ:     opSize("pushf", "pushfq", 64),
	iced.POPFW:      opSize("popf", "popfw", 16),
	iced.POPFD:      opSize("popf", "popfl", 32),
	iced.POPFQ:      opSize("popf", "popfq", 64),
	iced.ENTER:      {kind: infoNoReverse, mnemonic: "enter"},
	iced.LEAVE:      simple("leave"),

	iced.MOVSB: simple("movsb"),
	iced.MOVSW: simple("movsw"),
	iced.MOVSD: simple("movsl"),
	iced.MOVSQ: simple("movsq"),
	iced.LODSB: simple("lodsb"),
	iced.LODSW: simple("lodsw"),
	iced.LODSD: simple("lodsl"),
	iced.LODSQ: simple("lodsq"),
	iced.STOSB: simple("stosb"),
	iced.STOSW: simple("stosw"),
	iced.STOSD: simple("stosl"),
	iced.STOSQ: simple("stosq"),
	iced.SCASB: simple("scasb"),
	iced.SCASW: simple("scasw"),
	iced.SCASD: simple("scasl"),
	iced.SCASQ: simple("scasq"),
	iced.CMPSB: simple("cmpsb"),
	iced.CMPSW: simple("cmpsw"),
	iced.CMPSD: simple("cmpsl"),
	iced.CMPSQ: simple("cmpsq"),
	iced.XLATB: simple("xlat"),

	iced.JMP:     branch("jmp"),
	iced.JMP_RM:  indirect("jmp"),
	iced.CALL:    branch("call"),
	iced.CALL_RM: indirect("call"),
	iced.LJMP:    far("ljmp"),
	iced.LJMP_M:  far("ljmp"),
	iced.LCALL:   far("lcall"),
	iced.LCALL_M: far("lcall"),
	iced.RETW:    opSize("ret", "retw", 16),
	iced.RETD:    opSize("ret", "retl", 32),
	iced.RETQ:    opSize("ret", "retq", 64),
	iced.LRETW:   opSize("lret", "lretw", 16),
	iced.LRETD:   opSize("lret", "lretl", 32),
	iced.LRETQ:   opSize("lret", "lretq", 64),
	iced.IRETW:   opSize("iret", "iretw", 16),
	iced.IRETD:   opSize("iret", "iretl", 32),
	iced.IRETQ:   opSize("iret", "iretq", 64),

	iced.LOOP16:   loop("loop", 16),
	iced.LOOP32:   loop("loop", 32),
	iced.LOOP64:   loop("loop", 64),
	iced.LOOPE16:  loop("loope", 16),
	iced.LOOPE32:  loop("loope", 32),
	iced.LOOPE64:  loop("loope", 64),
	iced.LOOPNE16: loop("loopne", 16),
	iced.LOOPNE32: loop("loopne", 32),
	iced.LOOPNE64: loop("loopne", 64),
	iced.JCXZ:     branch("jcxz"),
	iced.JECXZ:    branch("jecxz"),
	iced.JRCXZ:    branch("jrcxz"),
	iced.XBEGIN:   branch("xbegin"),
	iced.XABORT:   simple("xabort"),
	iced.XEND:     simple("xend"),
	iced.XTEST:    simple("xtest"),

	iced.NOP:      simple("nop"),
	iced.NOP_RM:   sized("nop"),
	iced.HLT:      simple("hlt"),
	iced.CLC:      simple("clc"),
	iced.STC:      simple("stc"),
	iced.CMC:      simple("cmc"),
	iced.CLD:      simple("cld"),
	iced.STD:      simple("std"),
	iced.CLI:      simple("cli"),
	iced.STI:      simple("sti"),
	iced.LAHF:     simple("lahf"),
	iced.SAHF:     simple("sahf"),
	iced.CPUID:    simple("cpuid"),
	iced.RDTSC:    simple("rdtsc"),
	iced.RDTSCP:   simple("rdtscp"),
	iced.SYSCALL:  simple("syscall"),
	iced.SYSENTER: simple("sysenter"),
	iced.SWAPGS:   simple("swapgs"),
	iced.WBINVD:   simple("wbinvd"),
	iced.INT3:     simple("int3"),
	iced.INT:      simple("int"),
	iced.INTO:     simple("into"),
	iced.UD2:      simple("ud2"),
	iced.PAUSE:    simple("pause"),
	iced.LFENCE:   simple("lfence"),
	iced.MFENCE:   simple("mfence"),
	iced.SFENCE:   simple("sfence"),
	iced.ENDBR32:  simple("endbr32"),
	iced.ENDBR64:  simple("endbr64"),
	iced.IN:       simple("in"),
	iced.OUT:      simple("out"),

	iced.MOVAPS:    simple("movaps"),
	iced.MOVUPS:    simple("movups"),
	iced.MOVAPD:    simple("movapd"),
	iced.MOVUPD:    simple("movupd"),
	iced.MOVDQA:    simple("movdqa"),
	iced.MOVDQU:    simple("movdqu"),
	iced.MOVD:      simple("movd"),
	iced.MOVQ:      simple("movq"),
	iced.MOVSS:     simple("movss"),
	iced.MOVSD_X:   simple("movsd"),
	iced.ADDPS:     simple("addps"),
	iced.ADDPD:     simple("addpd"),
	iced.ADDSS:     simple("addss"),
	iced.ADDSD:     simple("addsd"),
	iced.SUBPS:     simple("subps"),
	iced.SUBPD:     simple("subpd"),
	iced.MULPS:     simple("mulps"),
	iced.MULPD:     simple("mulpd"),
	iced.DIVPS:     simple("divps"),
	iced.DIVPD:     simple("divpd"),
	iced.SQRTSD:    simple("sqrtsd"),
	iced.ANDPS:     simple("andps"),
	iced.ANDPD:     simple("andpd"),
	iced.XORPS:     simple("xorps"),
	iced.XORPD:     simple("xorpd"),
	iced.PAND:      simple("pand"),
	iced.POR:       simple("por"),
	iced.PXOR:      simple("pxor"),
	iced.PADDB:     simple("paddb"),
	iced.PADDD:     simple("paddd"),
	iced.PADDQ:     simple("paddq"),
	iced.PSUBD:     simple("psubd"),
	iced.PCMPEQB:   simple("pcmpeqb"),
	iced.PMOVMSKB:  simple("pmovmskb"),
	iced.PSHUFD:    simple("pshufd"),
	iced.PUNPCKLBW: simple("punpcklbw"),
	iced.UCOMISS:   simple("ucomiss"),
	iced.UCOMISD:   simple("ucomisd"),
	iced.COMISS:    simple("comiss"),
	iced.COMISD:    simple("comisd"),
	iced.CVTSI2SS:  sized("cvtsi2ss"),
	iced.CVTSI2SD:  sized("cvtsi2sd"),
	iced.CVTTSD2SI: simple("cvttsd2si"),

	iced.VZEROUPPER:   simple("vzeroupper"),
	iced.VMOVUPS:      evex("vmovups"),
	iced.VMOVAPS:      evex("vmovaps"),
	iced.VMOVDQU:      evex("vmovdqu"),
	iced.VMOVDQA:      evex("vmovdqa"),
	iced.VMOVDQU32:    evex("vmovdqu32"),
	iced.VMOVDQU64:    evex("vmovdqu64"),
	iced.VADDPS:       evex("vaddps"),
	iced.VADDPD:       evex("vaddpd"),
	iced.VSUBPS:       evex("vsubps"),
	iced.VMULPS:       evex("vmulps"),
	iced.VDIVPS:       evex("vdivps"),
	iced.VSQRTSD:      evex("vsqrtsd"),
	iced.VFMADD231PS:  evex("vfmadd231ps"),
	iced.VCVTSI2SD:    evex("vcvtsi2sd"),
	iced.VCMPPS:       evexSae("vcmpps", 1),
	iced.VXORPS:       evex("vxorps"),
	iced.VPXOR:        evex("vpxor"),
	iced.VPXORD:       evex("vpxord"),
	iced.VPADDD:       evex("vpaddd"),
	iced.VPBROADCASTD: evex("vpbroadcastd"),
	iced.VPTERNLOGD:   evex("vpternlogd"),

	iced.BNDMK:  simple("bndmk"),
	iced.BNDCL:  simple("bndcl"),
	iced.BNDCU:  simple("bndcu"),
	iced.BNDCN:  simple("bndcn"),
	iced.BNDMOV: simple("bndmov"),
	iced.BNDLDX: mib("bndldx"),
	iced.BNDSTX: mib("bndstx"),
}

func init() {
	for cc := iced.ConditionCode(0); cc < 16; cc++ {
		codeInfos[iced.Jcc(cc)] = branch("j" + cc.Suffix())
		codeInfos[iced.Setcc(cc)] = simple("set" + cc.Suffix())
		codeInfos[iced.Cmovcc(cc)] = sized("cmov" + cc.Suffix())
	}
	for _, c := range iced.AllCodes() {
		if codeInfos[c].mnemonic == "" {
			panic("gas: no mnemonic for " + c.Name())
		}
	}
}

func infoFor(c iced.Code) *codeInfo {
	if !c.IsValid() {
		panic("gas: invalid code " + c.Name())
	}
	return &codeInfos[c]
}
