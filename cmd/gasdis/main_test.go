package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rsc.io/diff"
)

const testStyle = `
[format]
space_after_operand_separator = true

[symbols]
0x401005 = "helper"
`

func writeInputs(t *testing.T) (code, style string) {
	dir := t.TempDir()
	code = filepath.Join(dir, "code.bin")
	style = filepath.Join(dir, "style.toml")
	bin := []byte{
		0xe8, 0x00, 0x00, 0x00, 0x00, // call helper
		0x89, 0xc8, // mov %ecx,%eax
		0xc3, // ret
	}
	if err := os.WriteFile(code, bin, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(style, []byte(testStyle), 0o644); err != nil {
		t.Fatal(err)
	}
	return code, style
}

func TestRun(t *testing.T) {
	code, style := writeInputs(t)
	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{
			name: "listing",
			args: []string{"-addr", "0x401000", "-style", style, code},
			want: "" +
				"  401000:\te8 00 00 00 00       \tcall helper\n" +
				"  401005:\t89 c8                \tmov %ecx, %eax\n" +
				"  401007:\tc3                   \tret\n",
		},
		{
			name: "env",
			env:  "true",
			args: []string{"-text", "-addr", "0x401000", "-style", style, code},
			want: "CALL helper\nMOV %ECX, %EAX\nRET\n",
		},
		{
			name: "flag over env",
			env:  "true",
			args: []string{"-text", "-upper=false", "-naked", "-style", style, code},
			want: "call 5\nmov ecx, eax\nret\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.env != "" {
				t.Setenv("GASDIS_UPPER", test.env)
			}
			var out bytes.Buffer
			if err := run(test.args, &out); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != test.want {
				t.Fatalf("run(%q):\n%s", test.args, diff.Format(got, test.want))
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	code, _ := writeInputs(t)
	for _, args := range [][]string{
		{},
		{"-mode", "8", code},
		{"-addr", "zz", code},
		{"-base", "hex2", code},
		{"-offset", "100", code},
		{filepath.Join(t.TempDir(), "missing.bin")},
	} {
		var out bytes.Buffer
		if err := run(args, &out); err == nil {
			t.Fatalf("run(%q): expected an error", args)
		}
	}
}
