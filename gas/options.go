package gas

import "github.com/asuradoll/iced/numfmt"

// Options controls the text the formatter produces. A Formatter reads its options on every
// call: they may be changed between calls but not while a call is running on another goroutine.
// Use Clone to give each goroutine its own copy.
type Options struct {
	UpperCasePrefixes  bool `toml:"upper_case_prefixes"`
	UpperCaseMnemonics bool `toml:"upper_case_mnemonics"`
	UpperCaseRegisters bool `toml:"upper_case_registers"`
	UpperCaseKeywords  bool `toml:"upper_case_keywords"`
	UpperCaseOther     bool `toml:"upper_case_other"` // {sae}, {z}, {1to16}
	UpperCaseAll       bool `toml:"upper_case_all"`

	// Column of the first operand, counted from the start of the prefixes. 0 means a single space.
	FirstOperandCharIndex int `toml:"first_operand_char_index"`
	// Pad with tabs of this width before spaces; 0 pads with spaces only.
	TabSize int `toml:"tab_size"`

	SpaceAfterOperandSeparator    bool `toml:"space_after_operand_separator"`     // mov %eax, %ecx
	SpaceAfterMemoryBracket       bool `toml:"space_after_memory_bracket"`        // ( %eax)
	SpaceBeforeMemoryCloseBracket bool `toml:"space_before_memory_close_bracket"` // (%eax )
	SpaceAfterMemoryOperandComma  bool `toml:"space_after_memory_operand_comma"`  // (%eax, %ecx, 2)

	Number numfmt.Options `toml:"number"`

	ShortNumbers       bool `toml:"short_numbers"`        // 0x12 vs 0x00000012
	ShortBranchNumbers bool `toml:"short_branch_numbers"` // branch targets

	SignedImmediateOperands       bool `toml:"signed_immediate_operands"`        // $-1 vs $0xFFFFFFFF
	SignedMemoryDisplacements     bool `toml:"signed_memory_displacements"`      // -0x10(%eax) vs 0xFFFFFFF0(%eax)
	SignExtendMemoryDisplacements bool `toml:"sign_extend_memory_displacements"` // widen displacements to the address size

	AlwaysShowSegmentRegister bool `toml:"always_show_segment_register"`
	AlwaysShowScale           bool `toml:"always_show_scale"`
	ShowZeroDisplacements     bool `toml:"show_zero_displacements"`

	// Keep RIP/EIP-relative operands relative (0x10(%rip)) instead of showing the absolute address.
	RipRelativeAddresses bool `toml:"rip_relative_addresses"`
	ShowBranchSize       bool `toml:"show_branch_size"`

	NakedRegisters         bool `toml:"naked_registers"`           // eax vs %eax
	ShowMnemonicSizeSuffix bool `toml:"show_mnemonic_size_suffix"` // movl %eax,%ecx
}

// DefaultOptions returns the default GNU assembler style.
func DefaultOptions() Options {
	return Options{
		Number:                    numfmt.DefaultOptions(),
		ShortNumbers:              true,
		ShortBranchNumbers:        true,
		SignedMemoryDisplacements: true,
		RipRelativeAddresses:      true,
		ShowBranchSize:            true,
	}
}

// Clone returns a copy of the options.
func (o *Options) Clone() *Options {
	c := *o
	return &c
}
