package disasm

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unsafe"

	"golang.org/x/xerrors"

	"github.com/asuradoll/iced"
	"github.com/asuradoll/iced/gas"
	"github.com/asuradoll/iced/numfmt"
	"github.com/asuradoll/iced/x86asmconv"
)

// maxInstLen is the longest legal x86 instruction.
const maxInstLen = 15

// Line is one instruction of a listing.
type Line struct {
	Addr  uint64
	Bytes []byte
	Inst  iced.Instruction // valid only if Err is nil
	Text  string
	Err   error // why Bytes is written as a .byte directive
}

// Disassembler formats machine code in GNU assembler syntax.
type Disassembler struct {
	Mode      int // 16, 32 or 64
	Formatter *gas.Formatter
}

// New returns a disassembler for mode using f, or a formatter with default options if f is nil.
func New(mode int, f *gas.Formatter) *Disassembler {
	if f == nil {
		f = gas.New(nil, nil)
	}
	return &Disassembler{Mode: mode, Formatter: f}
}

// Next decodes and formats the instruction at the start of code, located at addr. Bytes that
// cannot be decoded or have no instruction form are returned one at a time as a .byte line.
func (d *Disassembler) Next(code []byte, addr uint64) Line {
	if len(code) > maxInstLen {
		code = code[:maxInstLen]
	}
	inst, _, err := x86asmconv.Decode(code, d.Mode, addr)
	if err != nil || inst.Len <= 0 {
		if err == nil {
			err = xerrors.New("empty instruction")
		}
		return Line{Addr: addr, Bytes: code[:1], Text: d.byteDirective(code[:1]), Err: err}
	}
	return Line{Addr: addr, Bytes: code[:inst.Len], Inst: inst, Text: d.Formatter.FormatToString(&inst)}
}

// Bytes disassembles all of code, located at addr.
func (d *Disassembler) Bytes(code []byte, addr uint64) []Line {
	var lines []Line
	for n := 0; n < len(code); {
		line := d.Next(code[n:], addr+uint64(n))
		lines = append(lines, line)
		n += len(line.Bytes)
	}
	return lines
}

func (d *Disassembler) byteDirective(data []byte) string {
	opts := d.Formatter.Options()
	directive := ".byte"
	if opts.UpperCaseKeywords || opts.UpperCaseAll {
		directive = ".BYTE"
	}
	var sb strings.Builder
	sb.WriteString(directive)
	for i, b := range data {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(',')
		}
		sb.WriteString(numfmt.Format(&opts.Number, uint64(b), 1, opts.ShortNumbers))
	}
	return sb.String()
}

// Fprint writes lines as an address, hex bytes and instruction listing.
func Fprint(w io.Writer, lines []Line) error {
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%8x:\t%-21s\t%s\n", l.Addr, fmt.Sprintf("% x", l.Bytes), l.Text); err != nil {
			return err
		}
	}
	return nil
}

// Func disassembles amd64 instructions from funcValue until while returns false or the end of
// the function is found. A maximum of 4096 bytes may be decoded. This function is entirely
// unsafe.
//
// funcValue must be a non-nil Go function-value.
func (d *Disassembler) Func(funcValue interface{}, while func(*iced.Instruction) bool) ([]Line, error) {
	// See "Go 1.1 Function Calls":
	// https://docs.google.com/document/d/1bMwCey-gmqZVTpRax-ESeVuZGmjwbocYs1iHplK-cjo/pub
	type interfaceHeader struct {
		typ  uintptr
		addr **[]byte
	}
	v := reflect.ValueOf(funcValue)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, xerrors.New("argument for Func must be a non-nil function-value")
	}
	header := *(*interfaceHeader)(unsafe.Pointer(&funcValue))
	code := (*[4096]byte)(unsafe.Pointer(*header.addr))
	addr := uint64(uintptr(unsafe.Pointer(code)))

	var lines []Line
	n := 0
	for n < len(code)-maxInstLen {
		line := d.Next(code[n:n+maxInstLen], addr+uint64(n))
		if line.Err != nil {
			return lines, xerrors.Errorf("at %#x: %w", line.Addr, line.Err)
		}
		lines = append(lines, line)
		if !while(&line.Inst) {
			return lines, nil
		}
		if code[n] == 0xc3 { // find RET + padding (end of function)
			if n&15 == 0 {
				return lines, nil
			}
			pad := 16 - (n & 15) // functions are typically aligned to a 16-byte boundary
			if bytes.Equal(code[n+1:n+1+pad], pad00[:pad]) || bytes.Equal(code[n+1:n+1+pad], padcc[:pad]) {
				return lines, nil
			}
		}
		n += len(line.Bytes)
	}
	return lines, nil
}

// Manually allocated memory is typically zeroed
var pad00 = [...]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// The Go compiler seems to pad functions with 0xCC bytes to a 16-byte alignment boundary
var padcc = [...]byte{0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc}
