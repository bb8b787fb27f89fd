// Package disasm disassembles machine code into GNU assembler (AT&T) listings.
//
// Instructions are decoded with golang.org/x/arch/x86/x86asm, converted by package x86asmconv
// and written by a gas.Formatter. Bytes that cannot be decoded are listed as .byte directives.
//
// example usage:
//
// 	d := disasm.New(64, nil)
// 	lines := d.Bytes([]byte{0x89, 0xc8, 0xc3}, 0x1000)
// 	disasm.Fprint(os.Stdout, lines)
// 	// Outputs:
// 	//
// 	//     1000:	89 c8                	mov %ecx,%eax
// 	//     1002:	c3                   	ret
//
// On amd64, Func lists a Go function-value at runtime and MakeFunc turns machine code into a
// callable function-value:
//
// 	sum := (func(a, b int) int)(nil)
// 	release, err := disasm.MakeFunc(&sum, []byte{
// 		0x48, 0x8d, 0x04, 0x18, // lea (%rax,%rbx),%rax
// 		0xc3,                   // ret
// 	})
// 	if err != nil {
// 		return err
// 	}
// 	defer release()
//
// 	lines, err := d.Func(sum, func(*iced.Instruction) bool { return true })
package disasm
