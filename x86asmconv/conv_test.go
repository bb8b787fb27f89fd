package x86asmconv

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/xerrors"

	"github.com/asuradoll/iced"
	"github.com/asuradoll/iced/gas"
)

func TestConvertFormat(t *testing.T) {
	const ip = 0x1000
	tests := []struct {
		mode   int
		code   []byte
		expect string
	}{
		{64, []byte{0x89, 0xc8}, "mov %ecx,%eax"},
		{64, []byte{0x48, 0x8d, 0x04, 0x88}, "lea (%rax,%rcx,4),%rax"},
		{64, []byte{0xf0, 0x01, 0x08}, "lock add %ecx,(%rax)"},
		{64, []byte{0x8b, 0x45, 0xf8}, "mov -8(%rbp),%eax"},
		{64, []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}, "mov 0x10(%rip),%rax"},
		{64, []byte{0xc7, 0x00, 0x01, 0x00, 0x00, 0x00}, "movl $1,(%rax)"},
		{64, []byte{0x83, 0xc0, 0xf0}, "add $0xFFFFFFF0,%eax"},
		{64, []byte{0xc1, 0xe0, 0x04}, "shl $4,%eax"},
		{64, []byte{0xd1, 0xe0}, "shl %eax"},
		{64, []byte{0x48, 0xb8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, "movabs $0x1122334455667788,%rax"},
		{64, []byte{0x48, 0xa1, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}, "movabs 0x1122334455667788,%rax"},
		{64, []byte{0xc8, 0x10, 0x00, 0x01}, "enter $0x10,$1"},
		{64, []byte{0xcc}, "int3"},
		{64, []byte{0xc3}, "ret"},
		{64, []byte{0xeb, 0xfe}, "jmp 0x1000"},
		{64, []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, "call 0x1005"},
		{64, []byte{0xff, 0xe0}, "jmp *%rax"},
		{64, []byte{0xf2, 0xeb, 0x00}, "bnd jmp 0x1003"},
		{64, []byte{0x2e, 0x74, 0x00}, "je,pn 0x1003"},
		{64, []byte{0x3e, 0x74, 0x00}, "je,pt 0x1003"},
		{64, []byte{0xf3, 0xa4}, "rep movsb (%rsi),(%rdi)"},
		{64, []byte{0xd7}, "xlat (%rbx)"},
		{32, []byte{0xd7}, "xlat (%ebx)"},
		{64, []byte{0x8c, 0x18}, "mov %ds,(%rax)"},
		{32, []byte{0x8b, 0x04, 0x8d, 0x00, 0x10, 0x00, 0x00}, "mov 0x1000(,%ecx,4),%eax"},
		{32, []byte{0x64, 0x8b, 0x00}, "mov %fs:(%eax),%eax"},
		{16, []byte{0x8b, 0x00}, "mov (%bx,%si),%ax"},
	}

	f := gas.New(nil, nil)
	for _, test := range tests {
		inst, src, err := Decode(test.code, test.mode, ip)
		if err != nil {
			t.Fatalf("% x: %v", test.code, err)
		}
		if inst.Len != len(test.code) {
			t.Fatalf("% x: decoded %d bytes, expected %d", test.code, inst.Len, len(test.code))
		}
		if got := f.FormatToString(&inst); got != test.expect {
			t.Fatalf("% x: expected %q, found %q\n%s%s", test.code, test.expect, got, spew.Sdump(src), spew.Sdump(inst))
		}
	}
}

func TestConvertFields(t *testing.T) {
	inst, _, err := Decode([]byte{0x6a, 0xff}, 64, 0)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Code != iced.PUSH || inst.OpKinds[0] != iced.OpImmediate8to64 || inst.Immediate8to64() != -1 {
		t.Fatalf("push imm8 converted to:\n%s", spew.Sdump(inst))
	}

	inst, _, err = Decode([]byte{0x48, 0xcf}, 64, 0)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Code != iced.IRETQ {
		t.Fatalf("expected IRETQ, found %v", inst.Code)
	}

	inst, _, err = Decode([]byte{0xe2, 0xfe}, 32, 0x400)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Code != iced.LOOP32 || inst.NearBranch32() != 0x400 {
		t.Fatalf("loop converted to:\n%s", spew.Sdump(inst))
	}

	inst, _, err = Decode([]byte{0xea, 0x78, 0x56, 0x34, 0x12, 0x08, 0x00}, 32, 0)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Code != iced.LJMP || inst.OpCount != 1 || inst.FarBranchSelector != 8 || inst.FarBranch32() != 0x12345678 {
		t.Fatalf("far jump converted to:\n%s", spew.Sdump(inst))
	}
}

func TestConvertUnsupported(t *testing.T) {
	_, _, err := Decode([]byte{0x9b}, 64, 0) // fwait
	if err == nil {
		t.Fatal("expected an error for fwait")
	}
	if !xerrors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, found %v", err)
	}
}
