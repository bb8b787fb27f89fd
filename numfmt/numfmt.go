// Package numfmt renders unsigned integers as assembler number literals.
package numfmt

import (
	"strconv"
	"strings"
)

// Base is the radix numbers are written in.
type Base int

const (
	Hex Base = 16
	Dec Base = 10
	Oct Base = 8
	Bin Base = 2
)

func (b Base) String() string {
	switch b {
	case Hex:
		return "hex"
	case Dec:
		return "dec"
	case Oct:
		return "oct"
	case Bin:
		return "bin"
	}
	return "Base(" + strconv.Itoa(int(b)) + ")"
}

// ParseBase parses "hex", "dec", "oct" or "bin", or a radix written as a number.
func ParseBase(s string) (Base, bool) {
	switch strings.ToLower(s) {
	case "hex", "16", "hexadecimal":
		return Hex, true
	case "dec", "10", "decimal":
		return Dec, true
	case "oct", "8", "octal":
		return Oct, true
	case "bin", "2", "binary":
		return Bin, true
	}
	return 0, false
}

// UnmarshalText lets a Base be read from configuration files.
func (b *Base) UnmarshalText(text []byte) error {
	v, ok := ParseBase(string(text))
	if !ok {
		return &strconv.NumError{Func: "ParseBase", Num: string(text), Err: strconv.ErrSyntax}
	}
	*b = v
	return nil
}

func (b Base) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// Options controls how numbers are written.
type Options struct {
	Base Base `toml:"base"`

	HexPrefix     string `toml:"hex_prefix"`
	HexSuffix     string `toml:"hex_suffix"`
	DecimalPrefix string `toml:"decimal_prefix"`
	DecimalSuffix string `toml:"decimal_suffix"`
	OctalPrefix   string `toml:"octal_prefix"`
	OctalSuffix   string `toml:"octal_suffix"`
	BinaryPrefix  string `toml:"binary_prefix"`
	BinarySuffix  string `toml:"binary_suffix"`

	// Digits between separators; 0 disables grouping for the base.
	HexDigitGroupSize     int    `toml:"hex_digit_group_size"`
	DecimalDigitGroupSize int    `toml:"decimal_digit_group_size"`
	OctalDigitGroupSize   int    `toml:"octal_digit_group_size"`
	BinaryDigitGroupSize  int    `toml:"binary_digit_group_size"`
	DigitSeparator        string `toml:"digit_separator"`

	UpperCaseHex bool `toml:"upper_case_hex"`

	// Hex values 0..9 are written as plain decimal digits.
	SmallHexNumbersInDecimal bool `toml:"small_hex_numbers_in_decimal"`

	// A hex value starting with A-F gets a leading 0 when HexPrefix is empty (0FFh).
	AddLeadingZeroToHexNumbers bool `toml:"add_leading_zero_to_hex_numbers"`
}

// DefaultOptions returns the GNU assembler number style: 0x-prefixed hex.
func DefaultOptions() Options {
	return Options{
		Base:                       Hex,
		HexPrefix:                  "0x",
		OctalPrefix:                "0",
		BinaryPrefix:               "0b",
		HexDigitGroupSize:          4,
		DecimalDigitGroupSize:      3,
		OctalDigitGroupSize:        4,
		BinaryDigitGroupSize:       4,
		UpperCaseHex:               true,
		SmallHexNumbersInDecimal:   true,
		AddLeadingZeroToHexNumbers: true,
	}
}

// Formatter writes numbers using the options it points to. Changes to the options are
// seen by the next call.
type Formatter struct {
	Options *Options
}

// New returns a Formatter reading opts. A nil opts uses DefaultOptions.
func New(opts *Options) *Formatter {
	if opts == nil {
		o := DefaultOptions()
		opts = &o
	}
	return &Formatter{Options: opts}
}

// FormatUint writes value, an integer of size bytes (1, 2, 4 or 8). Unless short is set,
// hex, octal and binary numbers are zero-padded to the full width of size.
func (f *Formatter) FormatUint(value uint64, size int, short bool) string {
	return Format(f.Options, value, size, short)
}

// Format writes value as FormatUint does, using opts.
func Format(opts *Options, value uint64, size int, short bool) string {
	switch opts.Base {
	case Hex:
		if opts.SmallHexNumbersInDecimal && value <= 9 {
			return decimal(opts, value)
		}
		digits := strconv.FormatUint(value, 16)
		if opts.UpperCaseHex {
			digits = strings.ToUpper(digits)
		}
		if !short {
			digits = pad(digits, size*2)
		}
		if opts.AddLeadingZeroToHexNumbers && opts.HexPrefix == "" && isHexLetter(digits[0]) {
			digits = "0" + digits
		}
		return opts.HexPrefix + group(digits, opts.HexDigitGroupSize, opts.DigitSeparator) + opts.HexSuffix
	case Dec:
		return decimal(opts, value)
	case Oct:
		digits := strconv.FormatUint(value, 8)
		if !short {
			digits = pad(digits, (size*8+2)/3)
		}
		if opts.OctalPrefix == "0" && digits[0] == '0' {
			// the prefix would double the leading zero
			return group(digits, opts.OctalDigitGroupSize, opts.DigitSeparator) + opts.OctalSuffix
		}
		return opts.OctalPrefix + group(digits, opts.OctalDigitGroupSize, opts.DigitSeparator) + opts.OctalSuffix
	case Bin:
		digits := strconv.FormatUint(value, 2)
		if !short {
			digits = pad(digits, size*8)
		}
		return opts.BinaryPrefix + group(digits, opts.BinaryDigitGroupSize, opts.DigitSeparator) + opts.BinarySuffix
	}
	panic("numfmt: invalid base " + opts.Base.String())
}

func decimal(opts *Options, value uint64) string {
	digits := strconv.FormatUint(value, 10)
	return opts.DecimalPrefix + group(digits, opts.DecimalDigitGroupSize, opts.DigitSeparator) + opts.DecimalSuffix
}

func pad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

// group inserts sep between groups of size digits, counting from the right.
func group(digits string, size int, sep string) string {
	if sep == "" || size <= 0 || len(digits) <= size {
		return digits
	}
	var sb strings.Builder
	sb.Grow(len(digits) + len(digits)/size*len(sep))
	first := len(digits) % size
	if first == 0 {
		first = size
	}
	sb.WriteString(digits[:first])
	for i := first; i < len(digits); i += size {
		sb.WriteString(sep)
		sb.WriteString(digits[i : i+size])
	}
	return sb.String()
}

func isHexLetter(c byte) bool {
	return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
