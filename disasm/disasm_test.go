package disasm

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"rsc.io/diff"

	"github.com/asuradoll/iced"
	"github.com/asuradoll/iced/gas"
)

func TestBytes(t *testing.T) {
	code := []byte{
		0x55,             // push %rbp
		0x48, 0x89, 0xe5, // mov %rsp,%rbp
		0x9b,             // fwait, no instruction form
		0x8b, 0x45, 0xf8, // mov -8(%rbp),%eax
		0x5d, // pop %rbp
		0xc3, // ret
	}
	lines := New(64, nil).Bytes(code, 0x401000)
	var buf bytes.Buffer
	if err := Fprint(&buf, lines); err != nil {
		t.Fatal(err)
	}
	want := "" +
		"  401000:\t55                   \tpush %rbp\n" +
		"  401001:\t48 89 e5             \tmov %rsp,%rbp\n" +
		"  401004:\t9b                   \t.byte 0x9B\n" +
		"  401005:\t8b 45 f8             \tmov -8(%rbp),%eax\n" +
		"  401008:\t5d                   \tpop %rbp\n" +
		"  401009:\tc3                   \tret\n"
	if got := buf.String(); got != want {
		t.Fatalf("Fprint():\n%s", diff.Format(got, want))
	}
	if lines[2].Err == nil {
		t.Fatal("expected an error for the .byte line")
	}
}

func TestTruncated(t *testing.T) {
	opts := gas.DefaultOptions()
	opts.UpperCaseAll = true
	lines := New(64, gas.New(&opts, nil)).Bytes([]byte{0x90, 0x48, 0x8b}, 0)
	var texts []string
	for _, l := range lines {
		texts = append(texts, l.Text)
	}
	want := []string{"NOP", ".BYTE 0x48", ".BYTE 0x8B"}
	if len(texts) != len(want) {
		t.Fatalf("expected %q, found %q", want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Fatalf("expected %q, found %q", want, texts)
		}
	}
}

func TestMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.bin")
	code := []byte{0x89, 0xc8, 0xc3}
	if err := os.WriteFile(path, code, 0o644); err != nil {
		t.Fatal(err)
	}
	data, unmap, err := MapFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer unmap()
	if !bytes.Equal(data, code) {
		t.Fatalf("mapped % x, expected % x", data, code)
	}

	empty := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	data, unmapEmpty, err := MapFile(empty)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 0 || unmapEmpty() != nil {
		t.Fatalf("empty file mapped to % x", data)
	}
}

func TestFunc(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("executes amd64 code")
	}

	// Arguments and results use the register ABI: a in RAX, b in RBX, the result in RAX.
	sum := (func(a, b int) int)(nil)
	release, err := MakeFunc(&sum, []byte{
		0x48, 0x8d, 0x04, 0x18, // lea (%rax,%rbx),%rax
		0xc3, // ret
	})
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	for i := -5; i <= 5; i++ {
		for j := -5; j <= 5; j++ {
			if s := sum(i, j); s != i+j {
				t.Fatalf("sum(%v, %v) = %v", i, j, s)
			}
		}
	}

	var codes []iced.Code
	takeWhile := func(inst *iced.Instruction) bool {
		codes = append(codes, inst.Code)
		return true // RET + padding should be automatically detected
	}
	lines, err := New(64, nil).Func(sum, takeWhile)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 || len(codes) != 2 {
		t.Fatalf("expected 2 instructions, found %v", len(lines))
	}
	check := func(expect string, line Line) {
		if line.Text != expect {
			t.Fatalf("Expected instruction: %s --- found %s", expect, line.Text)
		}
	}
	check("lea (%rax,%rbx),%rax", lines[0])
	check("ret", lines[1])
}

func TestMakeFuncErrors(t *testing.T) {
	var notFunc int
	if _, err := MakeFunc(&notFunc, []byte{0xc3}); err == nil {
		t.Fatal("expected an error for a non-function destination")
	}
	f := (func())(nil)
	if _, err := MakeFunc(&f, nil); err == nil {
		t.Fatal("expected an error for empty code")
	}
}
