// package iced holds the decoded-instruction model shared by the formatter packages:
// instruction records, registers, instruction forms (Code) with their metadata table,
// operand kinds, memory sizes and EVEX tuple types.
//
// An Instruction is usually produced by a decoder adapter (see package x86asmconv) and
// rendered by a formatter (see package gas):
//
// 	inst := iced.Instruction{
// 		Code:     iced.MOV,
// 		CodeSize: iced.Code32,
// 		OpCount:  2,
// 		OpKinds:  [4]iced.OpKind{iced.OpRegister, iced.OpRegister},
// 		OpRegs:   [4]iced.Reg{iced.EAX, iced.ECX},
// 	}
// 	fmt.Println(gas.New(nil, nil).FormatToString(&inst)) // mov %ecx,%eax
package iced
