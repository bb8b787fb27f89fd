package iced

// ConditionCode is the 4-bit condition encoded in Jcc, SETcc and CMOVcc instructions.
type ConditionCode byte

const (
	CCOverflow    ConditionCode = 0
	CCNoOverflow  ConditionCode = 1
	CCUnsignedLT  ConditionCode = 2
	CCUnsignedGTE ConditionCode = 3
	CCEq          ConditionCode = 4
	CCNeq         ConditionCode = 5
	CCUnsignedLTE ConditionCode = 6
	CCUnsignedGT  ConditionCode = 7
	CCSign        ConditionCode = 8
	CCNoSign      ConditionCode = 9
	CCParity      ConditionCode = 0xA
	CCNoParity    ConditionCode = 0xB
	CCSignedLT    ConditionCode = 0xC
	CCSignedGTE   ConditionCode = 0xD
	CCSignedLTE   ConditionCode = 0xE
	CCSignedGT    ConditionCode = 0xF
)

// Mnemonic suffixes used by the GNU assembler, in encoding order.
var ccSuffixes = [...]string{
	"o",  // CCOverflow
	"no", // CCNoOverflow
	"b",  // CCUnsignedLT
	"ae", // CCUnsignedGTE
	"e",  // CCEq
	"ne", // CCNeq
	"be", // CCUnsignedLTE
	"a",  // CCUnsignedGT
	"s",  // CCSign
	"ns", // CCNoSign
	"p",  // CCParity
	"np", // CCNoParity
	"l",  // CCSignedLT
	"ge", // CCSignedGTE
	"le", // CCSignedLTE
	"g",  // CCSignedGT
}

// Suffix returns the mnemonic suffix for the condition, e.g. "ae" for CCUnsignedGTE.
func (cc ConditionCode) Suffix() string { return ccSuffixes[cc&0xF] }

func (cc ConditionCode) String() string { return ccSuffixes[cc&0xF] }

// Get the inverse of a condition code.
func Invcc(cc ConditionCode) ConditionCode { return cc ^ 1 }

// Get the conditional-jump instruction for a condition code.
func Jcc(cc ConditionCode) Code { return JO + Code(cc&0xF) }

// Get the conditional-set instruction for a condition code.
func Setcc(cc ConditionCode) Code { return SETO + Code(cc&0xF) }

// Get the conditional-move instruction for a condition code.
func Cmovcc(cc ConditionCode) Code { return CMOVO + Code(cc&0xF) }
