package gas

import (
	"strconv"
	"strings"

	"github.com/asuradoll/iced"
	"github.com/asuradoll/iced/numfmt"
)

// NumberFormatter writes an unsigned integer of size bytes (1, 2, 4 or 8). Unless short is set,
// numbers are written at the full width of size.
type NumberFormatter interface {
	FormatUint(value uint64, size int, short bool) string
}

// Formatter writes instructions in GNU assembler (AT&T) syntax.
type Formatter struct {
	opts     *Options
	resolver SymbolResolver
	numbers  NumberFormatter
}

// New returns a formatter using opts, or DefaultOptions if opts is nil. resolver may be nil.
// Numbers are written by a numfmt.Formatter reading opts.Number.
func New(opts *Options, resolver SymbolResolver) *Formatter {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	return &Formatter{opts: opts, resolver: resolver, numbers: numfmt.New(&opts.Number)}
}

// NewWithNumbers returns a formatter writing numbers with numbers instead of opts.Number.
func NewWithNumbers(opts *Options, resolver SymbolResolver, numbers NumberFormatter) *Formatter {
	f := New(opts, resolver)
	if numbers == nil {
		panic("gas: nil number formatter")
	}
	f.numbers = numbers
	return f
}

// Options returns the options read by the formatter.
func (f *Formatter) Options() *Options { return f.opts }

func (f *Formatter) opInfo(inst *iced.Instruction) instrOpInfo {
	return infoFor(inst.Code).opInfo(f.opts, inst)
}

// Format writes prefixes, mnemonic and operands.
func (f *Formatter) Format(inst *iced.Instruction, out Output) {
	info := f.opInfo(inst)
	column := f.formatMnemonic(inst, out, &info)
	if info.opCount != 0 {
		addTabs(out, column, f.opts.FirstOperandCharIndex, f.opts.TabSize)
		f.formatOperands(inst, out, &info)
	}
}

// FormatToString returns the formatted instruction.
func (f *Formatter) FormatToString(inst *iced.Instruction) string {
	var out StringOutput
	f.Format(inst, &out)
	return out.String()
}

// FormatMnemonic writes the prefixes and the mnemonic.
func (f *Formatter) FormatMnemonic(inst *iced.Instruction, out Output) {
	info := f.opInfo(inst)
	f.formatMnemonic(inst, out, &info)
}

// OperandCount returns the number of operands Format writes. It can differ from the
// instruction's operand count.
func (f *Formatter) OperandCount(inst *iced.Instruction) int {
	info := f.opInfo(inst)
	return info.opCount
}

// FormatOperand writes one formatted operand. It panics if operand is not less than
// OperandCount.
func (f *Formatter) FormatOperand(inst *iced.Instruction, out Output, operand int) {
	info := f.opInfo(inst)
	if operand < 0 || operand >= info.opCount {
		panic("gas: operand index out of range: " + strconv.Itoa(operand))
	}
	f.formatOperand(inst, out, &info, operand)
}

// FormatOperandSeparator writes the text between two operands.
func (f *Formatter) FormatOperandSeparator(inst *iced.Instruction, out Output) {
	out.Write(",", Punctuation)
	if f.opts.SpaceAfterOperandSeparator {
		out.Write(" ", Text)
	}
}

// FormatAllOperands writes the operands and their separators.
func (f *Formatter) FormatAllOperands(inst *iced.Instruction, out Output) {
	info := f.opInfo(inst)
	f.formatOperands(inst, out, &info)
}

func (f *Formatter) formatOperands(inst *iced.Instruction, out Output, info *instrOpInfo) {
	for i := 0; i < info.opCount; i++ {
		if i > 0 {
			f.FormatOperandSeparator(inst, out)
		}
		f.formatOperand(inst, out, info, i)
	}
}

var (
	opSizeStrings   = [...]string{sizeNone: "", size16: "data16", size32: "data32", size64: "rex.w"}
	addrSizeStrings = [...]string{sizeNone: "", size16: "addr16", size32: "addr32", size64: "addr64"}
)

// formatMnemonic writes the prefixes and mnemonic and returns the column after them.
func (f *Formatter) formatMnemonic(inst *iced.Instruction, out Output, info *instrOpInfo) int {
	column := 0
	opts := f.opts

	if info.flags&opSizeIsByteDirective != 0 {
		switch info.opSize() {
		case sizeNone:
		case size16, size32:
			directive := ".byte"
			if opts.UpperCaseKeywords || opts.UpperCaseAll {
				directive = strings.ToUpper(directive)
			}
			out.Write(directive, Directive)
			out.Write(" ", Text)
			s := f.numbers.FormatUint(0x66, 1, opts.ShortNumbers)
			out.Write(s, Number)
			out.Write(";", Punctuation)
			out.Write(" ", Text)
			column += len(directive) + 1 + len(s) + 1 + 1
		case size64:
			column += f.formatPrefix(out, "rex.w")
		}
	} else if p := opSizeStrings[info.opSize()]; p != "" {
		column += f.formatPrefix(out, p)
	}

	if p := addrSizeStrings[info.addrSize()]; p != "" {
		column += f.formatPrefix(out, p)
	}

	if seg := inst.SegmentPrefix; seg != 0 && showSegmentOverridePrefix(info) {
		column += f.formatPrefix(out, seg.Name())
	}

	if inst.Xacquire {
		column += f.formatPrefix(out, "xacquire")
	}
	if inst.Xrelease {
		column += f.formatPrefix(out, "xrelease")
	}
	if inst.Lock {
		column += f.formatPrefix(out, "lock")
	}

	hasBnd := info.flags&bndPrefix != 0
	if inst.Repe {
		if inst.Code.IsRepeOrRepne() {
			column += f.formatPrefix(out, "repe")
		} else {
			column += f.formatPrefix(out, "rep")
		}
	}
	if inst.Repne && !hasBnd {
		column += f.formatPrefix(out, "repne")
	}
	if hasBnd {
		column += f.formatPrefix(out, "bnd")
	}

	mnemonic := info.mnemonic
	if opts.UpperCaseMnemonics || opts.UpperCaseAll {
		mnemonic = strings.ToUpper(mnemonic)
	}
	out.Write(mnemonic, Mnemonic)
	column += len(mnemonic)

	if info.flags&jccNotTaken != 0 {
		column += f.formatBranchHint(out, "pn")
	} else if info.flags&jccTaken != 0 {
		column += f.formatBranchHint(out, "pt")
	}
	return column
}

// A segment override is shown inside memory operands, not as a prefix. Hinted branches use
// it as the hint.
func showSegmentOverridePrefix(info *instrOpInfo) bool {
	if info.flags&(jccNotTaken|jccTaken) != 0 {
		return false
	}
	for i := 0; i < info.opCount; i++ {
		switch k := info.opKinds[i]; {
		case k <= instrOpKind(iced.OpImmediate32to64):
		case k == instrOpKind(iced.OpMemoryESDI), k == instrOpKind(iced.OpMemoryESEDI), k == instrOpKind(iced.OpMemoryESRDI):
		case k >= opSae && k <= opRzSae:
		case k <= instrOpKind(iced.OpMemory):
			return false
		default:
			panic("gas: unknown operand kind")
		}
	}
	return true
}

func (f *Formatter) formatPrefix(out Output, prefix string) int {
	if f.opts.UpperCasePrefixes || f.opts.UpperCaseAll {
		prefix = strings.ToUpper(prefix)
	}
	out.Write(prefix, Prefix)
	out.Write(" ", Text)
	return len(prefix) + 1
}

func (f *Formatter) formatBranchHint(out Output, keyword string) int {
	out.Write(",", Text)
	if f.opts.UpperCaseKeywords || f.opts.UpperCaseAll {
		keyword = strings.ToUpper(keyword)
	}
	out.Write(keyword, Keyword)
	return 1 + len(keyword)
}

const (
	spaces = "                                        "
	tabs   = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"
)

// addTabs pads from column to the first operand column, or writes one space if there is none.
func addTabs(out Output, column, firstOperandCharIndex, tabSize int) {
	if tabSize < 0 {
		tabSize = 0
	}
	if firstOperandCharIndex < 0 {
		firstOperandCharIndex = 0
	}
	if tabSize == 0 {
		n := firstOperandCharIndex - column
		if n <= 0 {
			n = 1
		}
		writeRepeated(out, spaces, n)
		return
	}
	end := firstOperandCharIndex
	if end <= column {
		end = column + 1
	}
	endRounded := end / tabSize * tabSize
	if endRounded > column {
		writeRepeated(out, tabs, (endRounded-column/tabSize*tabSize)/tabSize)
		column = endRounded
	}
	if end > column {
		writeRepeated(out, spaces, end-column)
	}
}

func writeRepeated(out Output, s string, n int) {
	for n > 0 {
		k := n
		if k > len(s) {
			k = len(s)
		}
		out.Write(s[:k], Text)
		n -= k
	}
}

func init() {
	std := New(nil, nil)
	iced.SetStringFormatter(std.FormatToString)
}
