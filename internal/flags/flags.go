// Package flags holds the metadata bits attached to every entry of the code table.
package flags

// Flags
const (
	DEFAULT uint32 = 0         // no special prefix or formatting behavior
	LOCK    uint32 = 1 << iota // lock prefix is valid with this instruction
	REP                        // rep prefix is valid with this instruction
	REPE                       // repe/repne prefixes are valid (cmps, scas)
	BND                        // bnd prefix (encoded as repne) is valid with this branch
	JCC_HINT                   // cs/ds prefixes are branch hints (,pn / ,pt)
	STACK64                    // default operand size is 64-bit in long mode
	INDIRECT                   // the branch target operand is indirect
	IGNORE_INDEX               // the index field of the memory operand is not part of the address
	OPSIZE_BYTE                // a 16/32-bit operand size override has no prefix keyword
	SAE                        // suppress-all-exceptions is encodable
	ER                         // embedded rounding is encodable
)

// Name returns the name of a single flag bit.
func Name(f uint32) string { return flagNames[f] }

// Names returns the names of all bits set in f, in bit order.
func Names(f uint32) []string {
	var names []string
	for bit := uint32(1); bit != 0 && bit <= f; bit <<= 1 {
		if f&bit != 0 {
			names = append(names, flagNames[bit])
		}
	}
	return names
}

var flagNames = map[uint32]string{
	DEFAULT:      "DEFAULT",
	LOCK:         "LOCK",
	REP:          "REP",
	REPE:         "REPE",
	BND:          "BND",
	JCC_HINT:     "JCC_HINT",
	STACK64:      "STACK64",
	INDIRECT:     "INDIRECT",
	IGNORE_INDEX: "IGNORE_INDEX",
	OPSIZE_BYTE:  "OPSIZE_BYTE",
	SAE:          "SAE",
	ER:           "ER",
}
