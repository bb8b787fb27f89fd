package gas

import (
	"strconv"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/asuradoll/iced"
	"github.com/asuradoll/iced/numfmt"
)

func ops(kinds ...iced.OpKind) (n int, k [4]iced.OpKind) {
	copy(k[:], kinds)
	return len(kinds), k
}

func regInst(code iced.Code, size iced.CodeSize, regs ...iced.Reg) iced.Instruction {
	inst := iced.Instruction{Code: code, CodeSize: size, OpCount: len(regs)}
	for i, r := range regs {
		inst.OpKinds[i] = iced.OpRegister
		inst.OpRegs[i] = r
	}
	return inst
}

// memInst returns code reg, [base+index*scale+displ] in Intel operand order.
func memInst(code iced.Code, size iced.CodeSize, reg, base, index iced.Reg, scale uint8, displ uint32, displSize uint8) iced.Instruction {
	inst := iced.Instruction{
		Code:               code,
		CodeSize:           size,
		OpCount:            2,
		OpKinds:            [4]iced.OpKind{iced.OpRegister, iced.OpMemory},
		OpRegs:             [4]iced.Reg{reg},
		MemoryBase:         base,
		MemoryIndex:        index,
		MemoryScale:        scale,
		MemoryDisplacement: displ,
		MemoryDisplSize:    displSize,
		MemorySize:         iced.MemUInt32,
	}
	return inst
}

func branchInst(code iced.Code, size iced.CodeSize, kind iced.OpKind, target uint64) iced.Instruction {
	return iced.Instruction{Code: code, CodeSize: size, OpCount: 1, OpKinds: [4]iced.OpKind{kind}, NearBranchTarget: target}
}

type formatTest struct {
	name     string
	opts     func(o *Options)
	resolver SymbolResolver
	inst     iced.Instruction
	want     string
}

func formatTests() []formatTest {
	lockAdd := memInst(iced.ADD, iced.Code64, iced.ECX, iced.RAX, 0, 0, 0, 0)
	lockAdd.OpKinds = [4]iced.OpKind{iced.OpMemory, iced.OpRegister}
	lockAdd.OpRegs = [4]iced.Reg{0, iced.ECX}
	lockAdd.Lock = true
	lockAdd.SegmentPrefix = iced.FS

	movImm := iced.Instruction{Code: iced.MOV, CodeSize: iced.Code64, MemoryBase: iced.RAX, MemorySize: iced.MemUInt32, Immediate: 1}
	movImm.OpCount, movImm.OpKinds = ops(iced.OpMemory, iced.OpImmediate32)

	addImm := iced.Instruction{Code: iced.ADD, CodeSize: iced.Code32, OpRegs: [4]iced.Reg{iced.EAX}, Immediate: 0xf0}
	addImm.OpCount, addImm.OpKinds = ops(iced.OpRegister, iced.OpImmediate8to32)

	ripMov := memInst(iced.MOV, iced.Code64, iced.RAX, iced.RIP, 0, 0, 0x10, 4)
	ripMov.IP, ripMov.Len, ripMov.MemorySize = 0x1000, 7, iced.MemUInt64
	eipMov := memInst(iced.MOV, iced.Code64, iced.EAX, iced.EIP, 0, 0, 0xfffffff0, 4)
	eipMov.IP, eipMov.Len = 0x1000, 6

	hinted := branchInst(iced.JE, iced.Code64, iced.OpNearBranch64, 0x1003)
	hinted.SegmentPrefix = iced.DS
	notTaken := branchInst(iced.JE, iced.Code64, iced.OpNearBranch64, 0x1003)
	notTaken.SegmentPrefix = iced.CS
	bnd := branchInst(iced.JMP, iced.Code64, iced.OpNearBranch64, 0x1000)
	bnd.Repne = true

	movsb := iced.Instruction{Code: iced.MOVSB, CodeSize: iced.Code64, Repe: true, MemorySize: iced.MemUInt8}
	movsb.OpCount, movsb.OpKinds = ops(iced.OpMemoryESRDI, iced.OpMemorySegRSI)
	movsbFS := movsb
	movsbFS.SegmentPrefix = iced.FS

	csNop := iced.Instruction{Code: iced.NOP, CodeSize: iced.Code64, SegmentPrefix: iced.CS}

	ljmp := iced.Instruction{Code: iced.LJMP, CodeSize: iced.Code32, FarBranchSelector: 8, FarBranchOffset: 0x12345678}
	ljmp.OpCount, ljmp.OpKinds = ops(iced.OpFarBranch32)

	jmpMem := iced.Instruction{Code: iced.JMP_RM, CodeSize: iced.Code64, MemoryBase: iced.RAX, MemorySize: iced.MemUInt64}
	jmpMem.OpCount, jmpMem.OpKinds = ops(iced.OpMemory)

	movzx := memInst(iced.MOVZX, iced.Code32, iced.EAX, iced.EBX, 0, 0, 0, 0)
	movzx.MemorySize = iced.MemUInt8

	vaddRound := regInst(iced.VADDPS, iced.Code64, iced.ZMM0, iced.ZMM1, iced.ZMM2)
	vaddRound.RoundingControl = iced.RoundUp
	vaddMask := regInst(iced.VADDPS, iced.Code64, iced.ZMM0, iced.ZMM1, iced.ZMM2)
	vaddMask.OpMask, vaddMask.ZeroingMasking = iced.K1, true
	vaddBcst := iced.Instruction{Code: iced.VADDPS, CodeSize: iced.Code64, OpRegs: [4]iced.Reg{iced.ZMM0, iced.ZMM1}, MemoryBase: iced.RAX, MemorySize: iced.MemBroadcast512Float32}
	vaddBcst.OpCount, vaddBcst.OpKinds = ops(iced.OpRegister, iced.OpRegister, iced.OpMemory)
	vcmp := iced.Instruction{Code: iced.VCMPPS, CodeSize: iced.Code64, OpRegs: [4]iced.Reg{iced.K1, iced.ZMM1, iced.ZMM2}, Immediate: 1, SuppressAllExceptions: true}
	vcmp.OpCount, vcmp.OpKinds = ops(iced.OpRegister, iced.OpRegister, iced.OpRegister, iced.OpImmediate8)

	bndldx := memInst(iced.BNDLDX, iced.Code64, iced.BND0, iced.RAX, iced.RCX, 0, 0, 0)
	bndldx.MemorySize = iced.MemUInt64

	callHelper := branchInst(iced.CALL, iced.Code64, iced.OpNearBranch64, 0x1005)
	movData := memInst(iced.MOV, iced.Code32, iced.EAX, 0, 0, 0, 0x2000, 4)
	movTbl := iced.Instruction{Code: iced.MOV, CodeSize: iced.Code32, OpRegs: [4]iced.Reg{iced.EAX}, Immediate: 0x3000}
	movTbl.OpCount, movTbl.OpKinds = ops(iced.OpRegister, iced.OpImmediate32)
	ljmpHelper := ljmp
	ljmpHelper.FarBranchOffset = 0x1005

	symbols := MapResolver{0x1005: "helper", 0x1017: "counter", 0x2000: "data", 0x3000: "table"}

	movabs := iced.Instruction{Code: iced.MOVABS, CodeSize: iced.Code64, OpRegs: [4]iced.Reg{iced.AL}, MemoryAddress64: 0x1122334455667788, MemorySize: iced.MemUInt8}
	movabs.OpCount, movabs.OpKinds = ops(iced.OpRegister, iced.OpMemory64)
	movabsFS := movabs
	movabsFS.SegmentPrefix = iced.FS

	xacquire := lockAdd
	xacquire.Xacquire = true
	xrelease := lockAdd
	xrelease.Xrelease = true

	ljmp16 := iced.Instruction{Code: iced.LJMP, CodeSize: iced.Code32, FarBranchSelector: 8, FarBranchOffset: 0x51234}
	ljmp16.OpCount, ljmp16.OpKinds = ops(iced.OpFarBranch16)
	lcall16 := ljmp16
	lcall16.Code, lcall16.CodeSize = iced.LCALL, iced.Code16

	movSeg := iced.Instruction{Code: iced.MOV, CodeSize: iced.Code64, OpRegs: [4]iced.Reg{0, iced.DS}, MemoryBase: iced.RAX, MemorySize: iced.MemUInt16}
	movSeg.OpCount, movSeg.OpKinds = ops(iced.OpMemory, iced.OpRegister)

	movsw := iced.Instruction{Code: iced.MOVSW, CodeSize: iced.Code16, MemorySize: iced.MemUInt16}
	movsw.OpCount, movsw.OpKinds = ops(iced.OpMemoryESDI, iced.OpMemorySegSI)
	lodsb := iced.Instruction{Code: iced.LODSB, CodeSize: iced.Code32, OpRegs: [4]iced.Reg{iced.AL}, MemorySize: iced.MemUInt8}
	lodsb.OpCount, lodsb.OpKinds = ops(iced.OpRegister, iced.OpMemorySegESI)

	return []formatTest{
		{name: "register", inst: regInst(iced.MOV, iced.Code32, iced.EAX, iced.ECX), want: "mov %ecx,%eax"},
		{name: "scaled index", inst: memInst(iced.MOV, iced.Code32, iced.EBX, iced.EAX, iced.ECX, 2, 0, 0), want: "mov (%eax,%ecx,4),%ebx"},
		{name: "lock before segment", inst: lockAdd, want: "lock add %ecx,%fs:(%rax)"},
		{name: "negative displacement", inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RBP, 0, 0, 0xfffffff8, 1), want: "mov -8(%rbp),%eax"},
		{
			name: "unsigned displacement",
			opts: func(o *Options) { o.SignedMemoryDisplacements = false },
			inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RBP, 0, 0, 0xfffffff8, 1),
			want: "mov 0xFFFFFFFFFFFFFFF8(%rbp),%eax",
		},
		{name: "zero displacement", inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RAX, 0, 0, 0, 1), want: "mov (%rax),%eax"},
		{
			name: "show zero displacement",
			opts: func(o *Options) { o.ShowZeroDisplacements = true },
			inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RAX, 0, 0, 0, 0),
			want: "mov 0(%rax),%eax",
		},
		{name: "absolute zero", inst: memInst(iced.MOV, iced.Code32, iced.EAX, 0, 0, 0, 0, 4), want: "mov 0,%eax"},
		{name: "rip relative", inst: ripMov, want: "mov 0x10(%rip),%rax"},
		{name: "rip absolute", opts: func(o *Options) { o.RipRelativeAddresses = false }, inst: ripMov, want: "mov 0x1017,%rax"},
		{name: "eip absolute", opts: func(o *Options) { o.RipRelativeAddresses = false }, inst: eipMov, want: "mov 0xFF6,%eax"},
		{name: "scale one", inst: memInst(iced.MOV, iced.Code32, iced.EBX, iced.EAX, iced.ECX, 0, 0, 0), want: "mov (%eax,%ecx),%ebx"},
		{
			name: "always show scale",
			opts: func(o *Options) { o.AlwaysShowScale = true },
			inst: memInst(iced.MOV, iced.Code32, iced.EBX, iced.EAX, iced.ECX, 0, 0, 0),
			want: "mov (%eax,%ecx,1),%ebx",
		},
		{
			name: "16-bit scale",
			opts: func(o *Options) { o.AlwaysShowScale = true },
			inst: memInst(iced.MOV, iced.Code16, iced.AX, iced.BX, iced.SI, 0, 0, 0),
			want: "mov (%bx,%si),%ax",
		},
		{
			name: "memory spacing",
			opts: func(o *Options) {
				o.SpaceAfterMemoryBracket = true
				o.SpaceBeforeMemoryCloseBracket = true
				o.SpaceAfterMemoryOperandComma = true
				o.SpaceAfterOperandSeparator = true
			},
			inst: memInst(iced.MOV, iced.Code32, iced.EBX, iced.EAX, iced.ECX, 2, 0, 0),
			want: "mov ( %eax, %ecx, 4 ), %ebx",
		},
		{name: "unsigned immediate", inst: addImm, want: "add $0xFFFFFFF0,%eax"},
		{name: "signed immediate", opts: func(o *Options) { o.SignedImmediateOperands = true }, inst: addImm, want: "add $-0x10,%eax"},
		{name: "decimal", opts: func(o *Options) { o.Number.Base = numfmt.Dec }, inst: addImm, want: "add $4294967280,%eax"},
		{name: "forced suffix", inst: movImm, want: "movl $1,(%rax)"},
		{
			name: "size suffix",
			opts: func(o *Options) { o.ShowMnemonicSizeSuffix = true },
			inst: regInst(iced.MOV, iced.Code32, iced.EAX, iced.ECX),
			want: "movl %ecx,%eax",
		},
		{name: "movzx", inst: movzx, want: "movzbl (%ebx),%eax"},
		{name: "upper case", opts: func(o *Options) { o.UpperCaseAll = true }, inst: lockAdd, want: "LOCK ADD %ECX,%FS:(%RAX)"},
		{
			name: "naked registers",
			opts: func(o *Options) { o.NakedRegisters = true },
			inst: regInst(iced.MOV, iced.Code32, iced.EAX, iced.ECX),
			want: "mov ecx,eax",
		},
		{
			name: "first operand column",
			opts: func(o *Options) { o.FirstOperandCharIndex = 8 },
			inst: regInst(iced.MOV, iced.Code32, iced.EAX, iced.ECX),
			want: "mov     %ecx,%eax",
		},
		{
			name: "tabs",
			opts: func(o *Options) { o.FirstOperandCharIndex, o.TabSize = 8, 4 },
			inst: regInst(iced.MOV, iced.Code32, iced.EAX, iced.ECX),
			want: "mov\t\t%ecx,%eax",
		},
		{name: "hint taken", inst: hinted, want: "je,pt 0x1003"},
		{name: "hint not taken", inst: notTaken, want: "je,pn 0x1003"},
		{name: "bnd", inst: bnd, want: "bnd jmp 0x1000"},
		{name: "jcc16", inst: branchInst(iced.JE, iced.Code32, iced.OpNearBranch16, 0x51234), want: ".byte 0x66; je 0x1234"},
		{name: "loop addr32", inst: branchInst(iced.LOOP32, iced.Code64, iced.OpNearBranch64, 0x1000), want: "addr32 loop 0x1000"},
		{name: "ret", inst: iced.Instruction{Code: iced.RETQ, CodeSize: iced.Code64}, want: "ret"},
		{name: "retw", inst: iced.Instruction{Code: iced.RETW, CodeSize: iced.Code64}, want: "retw"},
		{name: "string", inst: movsb, want: "rep movsb (%rsi),(%rdi)"},
		{name: "string override", inst: movsbFS, want: "rep movsb %fs:(%rsi),%es:(%rdi)"},
		{name: "segment prefix", inst: csNop, want: "cs nop"},
		{name: "far", inst: ljmp, want: "ljmp $8,$0x12345678"},
		{name: "indirect register", inst: regInst(iced.JMP_RM, iced.Code64, iced.RAX), want: "jmp *%rax"},
		{name: "indirect memory", inst: jmpMem, want: "jmp *(%rax)"},
		{name: "rounding", inst: vaddRound, want: "vaddps {ru-sae},%zmm2,%zmm1,%zmm0"},
		{name: "opmask", inst: vaddMask, want: "vaddps %zmm2,%zmm1,%zmm0{%k1}{z}"},
		{name: "broadcast", inst: vaddBcst, want: "vaddps (%rax){1to16},%zmm1,%zmm0"},
		{name: "sae", inst: vcmp, want: "vcmpps $1,{sae},%zmm2,%zmm1,%k1"},
		{name: "mib", inst: bndldx, want: "bndldx (%rax),%bnd0"},
		{name: "call symbol", resolver: symbols, inst: callHelper, want: "call helper"},
		{name: "displacement symbol", resolver: symbols, inst: movData, want: "mov data,%eax"},
		{name: "rip symbol", resolver: symbols, inst: ripMov, want: "mov counter(%rip),%rax"},
		{name: "immediate symbol", resolver: symbols, inst: movTbl, want: "mov $table,%eax"},
		{name: "far symbol", resolver: symbols, inst: ljmpHelper, want: "ljmp $8,$helper"},
		{name: "moffs", inst: movabs, want: "movabs 0x1122334455667788,%al"},
		{name: "moffs segment", inst: movabsFS, want: "movabs %fs:0x1122334455667788,%al"},
		{name: "xacquire", inst: xacquire, want: "xacquire lock add %ecx,%fs:(%rax)"},
		{name: "xrelease", inst: xrelease, want: "xrelease lock add %ecx,%fs:(%rax)"},
		{
			name: "always show ds",
			opts: func(o *Options) { o.AlwaysShowSegmentRegister = true },
			inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RAX, 0, 0, 0, 0),
			want: "mov %ds:(%rax),%eax",
		},
		{
			name: "always show ss",
			opts: func(o *Options) { o.AlwaysShowSegmentRegister = true },
			inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RBP, 0, 0, 0xfffffff8, 1),
			want: "mov %ss:-8(%rbp),%eax",
		},
		{
			name: "always show override",
			opts: func(o *Options) { o.AlwaysShowSegmentRegister = true },
			inst: lockAdd,
			want: "lock add %ecx,%fs:(%rax)",
		},
		{
			name: "full width displacement",
			opts: func(o *Options) { o.ShortNumbers = false },
			inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RBP, 0, 0, 0x10, 1),
			want: "mov 0x10(%rbp),%eax",
		},
		{
			name: "sign extended displacement",
			opts: func(o *Options) { o.ShortNumbers, o.SignExtendMemoryDisplacements = false, true },
			inst: memInst(iced.MOV, iced.Code64, iced.EAX, iced.RBP, 0, 0, 0x10, 1),
			want: "mov 0x0000000000000010(%rbp),%eax",
		},
		{
			name: "sign extended displacement 32",
			opts: func(o *Options) { o.ShortNumbers, o.SignExtendMemoryDisplacements = false, true },
			inst: memInst(iced.MOV, iced.Code32, iced.EAX, iced.EBP, 0, 0, 0x10, 1),
			want: "mov 0x00000010(%ebp),%eax",
		},
		{name: "far16", inst: ljmp16, want: "ljmpw $8,$0x1234"},
		{name: "far16 call", inst: lcall16, want: "lcall $8,$0x1234"},
		{name: "segment register size", inst: movSeg, want: "mov %ds,(%rax)"},
		{name: "string si", inst: movsw, want: "movsw (%si),(%di)"},
		{
			name: "string si ds",
			opts: func(o *Options) { o.AlwaysShowSegmentRegister = true },
			inst: movsw,
			want: "movsw %ds:(%si),%es:(%di)",
		},
		{name: "string esi", inst: lodsb, want: "lodsb (%esi),%al"},
		{name: "upper case other mask", opts: func(o *Options) { o.UpperCaseOther = true }, inst: vaddMask, want: "vaddps %zmm2,%zmm1,%zmm0{%k1}{Z}"},
		{name: "upper case other rounding", opts: func(o *Options) { o.UpperCaseOther = true }, inst: vaddRound, want: "vaddps {RU-SAE},%zmm2,%zmm1,%zmm0"},
		{name: "upper case other broadcast", opts: func(o *Options) { o.UpperCaseOther = true }, inst: vaddBcst, want: "vaddps (%rax){1TO16},%zmm1,%zmm0"},
	}
}

func newFormatter(test formatTest) *Formatter {
	opts := DefaultOptions()
	if test.opts != nil {
		test.opts(&opts)
	}
	return New(&opts, test.resolver)
}

func TestFormat(t *testing.T) {
	for _, test := range formatTests() {
		t.Run(test.name, func(t *testing.T) {
			f := newFormatter(test)
			inst := test.inst
			if got := f.FormatToString(&inst); got != test.want {
				t.Fatalf("expected %q, found %q\n%s", test.want, got, spew.Sdump(test.inst))
			}
			if diff := cmp.Diff(test.inst, inst); diff != "" {
				t.Fatalf("formatting modified the instruction (-before +after):\n%s", diff)
			}
		})
	}
}

func TestFormatDeterministic(t *testing.T) {
	for _, test := range formatTests() {
		f := newFormatter(test)
		var first, second TokenOutput
		f.Format(&test.inst, &first)
		f.Format(&test.inst, &second)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("%s: output differs between calls:\n%s", test.name, diff)
		}
	}
}

func TestOperandBoundaries(t *testing.T) {
	for _, test := range formatTests() {
		f := newFormatter(test)
		var out TokenOutput
		f.Format(&test.inst, &out)
		n := f.OperandCount(&test.inst)
		begins, ends := 0, 0
		for _, b := range out.Boundaries {
			if b.Begin {
				begins++
			} else {
				ends++
			}
		}
		if begins != n || ends != n {
			t.Fatalf("%s: %d operands, found %d begins and %d ends", test.name, n, begins, ends)
		}

		// Formatting operand by operand gives the same text as the whole instruction.
		var parts StringOutput
		f.FormatMnemonic(&test.inst, &parts)
		for i := 0; i < n; i++ {
			if i == 0 {
				parts.Write(" ", Text)
			} else {
				f.FormatOperandSeparator(&test.inst, &parts)
			}
			f.FormatOperand(&test.inst, &parts, i)
		}
		if test.opts == nil && parts.String() != test.want {
			t.Fatalf("%s: piecewise formatting gave %q", test.name, parts.String())
		}
	}
}

func TestTokens(t *testing.T) {
	f := New(nil, nil)

	add := iced.Instruction{Code: iced.ADD, CodeSize: iced.Code32, OpRegs: [4]iced.Reg{iced.EAX}, Immediate: 0xf0}
	add.OpCount, add.OpKinds = ops(iced.OpRegister, iced.OpImmediate8to32)
	f.Options().SignedImmediateOperands = true
	var out TokenOutput
	f.Format(&add, &out)
	want := []Token{
		{"add", Mnemonic}, {" ", Text},
		{"$", Operator}, {"-", Operator}, {"0x10", Number},
		{",", Punctuation},
		{"%eax", Register},
	}
	if diff := cmp.Diff(want, out.Tokens); diff != "" {
		t.Fatalf("tokens (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Token{{"%eax", Register}}, out.Operand(1)); diff != "" {
		t.Fatalf("operand 1 (-want +got):\n%s", diff)
	}

	f.Options().SignedImmediateOperands = false
	out.Reset()
	f.Format(&add, &out)
	for _, tok := range out.Tokens {
		if tok.Text == "-" {
			t.Fatalf("unexpected minus token in %q", out.String())
		}
	}

	je := branchInst(iced.JE, iced.Code64, iced.OpNearBranch64, 0x1003)
	je.SegmentPrefix = iced.DS
	out.Reset()
	f.Format(&je, &out)
	want = []Token{
		{"je", Mnemonic}, {",", Text}, {"pt", Keyword}, {" ", Text}, {"0x1003", LabelAddress},
	}
	if diff := cmp.Diff(want, out.Tokens); diff != "" {
		t.Fatalf("hinted branch tokens (-want +got):\n%s", diff)
	}
}

func TestBranchTokens(t *testing.T) {
	f := New(nil, nil)
	far := iced.Instruction{Code: iced.LCALL, CodeSize: iced.Code16, FarBranchSelector: 8, FarBranchOffset: 0x1234}
	far.OpCount, far.OpKinds = ops(iced.OpFarBranch16)
	farJmp := far
	farJmp.Code = iced.LJMP

	tests := []struct {
		name string
		inst iced.Instruction
		want []Token
	}{
		{
			name: "call",
			inst: branchInst(iced.CALL, iced.Code64, iced.OpNearBranch64, 0x1005),
			want: []Token{{"call", Mnemonic}, {" ", Text}, {"0x1005", FunctionAddress}},
		},
		{
			name: "jmp",
			inst: branchInst(iced.JMP, iced.Code64, iced.OpNearBranch64, 0x1005),
			want: []Token{{"jmp", Mnemonic}, {" ", Text}, {"0x1005", LabelAddress}},
		},
		{
			name: "lcall",
			inst: far,
			want: []Token{
				{"lcall", Mnemonic}, {" ", Text},
				{"$", Operator}, {"8", SelectorValue}, {",", Punctuation}, {"$", Operator}, {"0x1234", FunctionAddress},
			},
		},
		{
			name: "ljmp",
			inst: farJmp,
			want: []Token{
				{"ljmp", Mnemonic}, {" ", Text},
				{"$", Operator}, {"8", SelectorValue}, {",", Punctuation}, {"$", Operator}, {"0x1234", LabelAddress},
			},
		},
	}
	for _, test := range tests {
		var out TokenOutput
		f.Format(&test.inst, &out)
		if diff := cmp.Diff(test.want, out.Tokens); diff != "" {
			t.Fatalf("%s tokens (-want +got):\n%s", test.name, diff)
		}
	}
}

// Every form has a mnemonic, written as a single Mnemonic token after any prefixes.
func TestMnemonics(t *testing.T) {
	f := New(nil, nil)
	for _, c := range iced.AllCodes() {
		inst := iced.Instruction{Code: c, CodeSize: iced.Code64}
		var out TokenOutput
		f.FormatMnemonic(&inst, &out)
		n := len(out.Tokens)
		if n == 0 || out.Tokens[n-1].Kind != Mnemonic || out.Tokens[n-1].Text == "" {
			t.Fatalf("%v: expected a trailing mnemonic, found %v", c, out.Tokens)
		}
		for _, tok := range out.Tokens[:n-1] {
			if tok.Kind == Mnemonic {
				t.Fatalf("%v: more than one mnemonic in %q", c, out.String())
			}
		}
	}
}

func TestPrefixOrder(t *testing.T) {
	inst := memInst(iced.ADD, iced.Code64, 0, iced.RAX, 0, 0, 0, 0)
	inst.OpKinds = [4]iced.OpKind{iced.OpMemory, iced.OpRegister}
	inst.OpRegs = [4]iced.Reg{0, iced.ECX}
	inst.Lock = true

	for _, hle := range []string{"xacquire", "xrelease"} {
		inst.Xacquire, inst.Xrelease = hle == "xacquire", hle == "xrelease"
		var out TokenOutput
		New(nil, nil).Format(&inst, &out)
		var prefixes []string
		for _, tok := range out.Tokens {
			if tok.Kind == Prefix {
				prefixes = append(prefixes, tok.Text)
			}
		}
		if diff := cmp.Diff([]string{hle, "lock"}, prefixes); diff != "" {
			t.Fatalf("%s prefixes (-want +got):\n%s", hle, diff)
		}
	}
}

func TestLockBeforeSegment(t *testing.T) {
	inst := memInst(iced.ADD, iced.Code64, 0, iced.RAX, 0, 0, 0, 0)
	inst.OpKinds = [4]iced.OpKind{iced.OpMemory, iced.OpRegister}
	inst.OpRegs = [4]iced.Reg{0, iced.ECX}
	inst.Lock, inst.SegmentPrefix = true, iced.FS

	var out TokenOutput
	New(nil, nil).Format(&inst, &out)
	lock, seg := -1, -1
	for i, tok := range out.Tokens {
		switch {
		case tok.Kind == Prefix && tok.Text == "lock":
			lock = i
		case tok.Kind == Register && tok.Text == "%fs":
			seg = i
		}
	}
	if lock < 0 || seg < 0 || lock > seg {
		t.Fatalf("expected lock before the segment register, found %q", out.String())
	}
}

func TestFormatPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected a panic", name)
			}
		}()
		fn()
	}
	f := New(nil, nil)
	inst := regInst(iced.MOV, iced.Code32, iced.EAX, iced.ECX)
	mustPanic("operand index", func() { f.FormatOperand(&inst, &StringOutput{}, 2) })
	mustPanic("negative operand index", func() { f.FormatOperand(&inst, &StringOutput{}, -1) })

	bad := memInst(iced.MOV, iced.Code32, iced.EAX, iced.EBX, iced.ECX, 4, 0, 0)
	mustPanic("scale", func() { f.FormatToString(&bad) })

	mustPanic("nil numbers", func() { NewWithNumbers(nil, nil, nil) })

	invalid := iced.Instruction{Code: iced.Code(iced.CodeCount), CodeSize: iced.Code64}
	if r, want := recovered(func() { f.FormatToString(&invalid) }), "gas: invalid code Code("+strconv.Itoa(iced.CodeCount)+")"; r != want {
		t.Fatalf("expected panic %q, found %v", want, r)
	}

	unknown := iced.Instruction{Code: iced.NOP, CodeSize: iced.Code64, OpCount: 1, OpKinds: [4]iced.OpKind{200}}
	if r, want := recovered(func() { f.FormatToString(&unknown) }), "gas: unknown operand kind 200"; r != want {
		t.Fatalf("expected panic %q, found %v", want, r)
	}
	unknown.SegmentPrefix = iced.FS
	if r, want := recovered(func() { f.FormatToString(&unknown) }), "gas: unknown operand kind"; r != want {
		t.Fatalf("expected panic %q, found %v", want, r)
	}
}

// recovered runs fn and returns the value it panicked with, or nil.
func recovered(fn func()) (r interface{}) {
	defer func() { r = recover() }()
	fn()
	return nil
}

type widthNumbers struct{}

func (widthNumbers) FormatUint(value uint64, size int, short bool) string {
	return "#" + strings.Repeat("x", size)
}

func TestNumberFormatter(t *testing.T) {
	f := NewWithNumbers(nil, nil, widthNumbers{})
	inst := memInst(iced.MOV, iced.Code64, iced.EAX, iced.RBP, 0, 0, 8, 1)
	if got, want := f.FormatToString(&inst), "mov #x(%rbp),%eax"; got != want {
		t.Fatalf("expected %q, found %q", want, got)
	}
}

func TestInstructionString(t *testing.T) {
	inst := regInst(iced.MOV, iced.Code64, iced.RAX, iced.RCX)
	if got, want := inst.String(), "mov %rcx,%rax"; got != want {
		t.Fatalf("expected %q, found %q", want, got)
	}
}
