package iced

// Register families
const (
	REG_LEGACY   = iota
	REG_RIP      // IP, EIP, RIP
	REG_HIGHBYTE // AH, CH, DH, BH
	REG_FP       // ST(0) ... ST(7)
	REG_MMX
	REG_XMM
	REG_YMM
	REG_ZMM
	REG_SEGMENT
	REG_CONTROL
	REG_DEBUG
	REG_OPMASK // K0 ... K7
	REG_BOUND  // BND0 ... BND3
)

// Reg is a register with a specific width and family. All registers have a number
// which distinguishes them within their family, with the exception of the IP/EIP/RIP registers.
//
// 	[0..4] bits are the number of the register within its family
// 	[8..15] bits identify the family
// 	[16..23] bits are the width of the register in bytes
//
// The zero Reg means no register.
type Reg uint32

// Get the family for the register.
func (r Reg) Family() uint8 { return uint8(r >> 8) }

// Get the number which distinguishes the register within its family. The IP/EIP/RIP registers
// have no meaningful number, so they will return 0.
func (r Reg) Num() uint8 { return uint8(r) & 0x1f }

// Get the width of the register in bytes.
func (r Reg) Width() uint8 { return uint8(r >> 16) }

// Check if the register is numbered 8 or higher.
func (r Reg) IsExtended() bool { return r.Num() > 7 }

// Check if the register is a general purpose register, including the high-byte registers.
func (r Reg) IsGPR() bool {
	return r != 0 && (r.Family() == REG_LEGACY || r.Family() == REG_HIGHBYTE)
}

// Check if the register is IP, EIP or RIP.
func (r Reg) IsIP() bool { return r != 0 && r.Family() == REG_RIP }

// Check if the register is an XMM, YMM or ZMM register (VSIB index registers).
func (r Reg) IsVector() bool {
	f := r.Family()
	return r != 0 && (f == REG_XMM || f == REG_YMM || f == REG_ZMM)
}

// Registers
const (
	// 8-bit
	AL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 0)
	CL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 1)
	DL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 2)
	BL   Reg = Reg(1<<16 | REG_LEGACY<<8 | 3)
	SPL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 4)
	BPL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 5)
	SIL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 6)
	DIL  Reg = Reg(1<<16 | REG_LEGACY<<8 | 7)
	R8B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 8)
	R9B  Reg = Reg(1<<16 | REG_LEGACY<<8 | 9)
	R10B Reg = Reg(1<<16 | REG_LEGACY<<8 | 10)
	R11B Reg = Reg(1<<16 | REG_LEGACY<<8 | 11)
	R12B Reg = Reg(1<<16 | REG_LEGACY<<8 | 12)
	R13B Reg = Reg(1<<16 | REG_LEGACY<<8 | 13)
	R14B Reg = Reg(1<<16 | REG_LEGACY<<8 | 14)
	R15B Reg = Reg(1<<16 | REG_LEGACY<<8 | 15)

	// 8-bit high bytes
	AH Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 4)
	CH Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 5)
	DH Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 6)
	BH Reg = Reg(1<<16 | REG_HIGHBYTE<<8 | 7)

	// 16-bit
	AX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 0)
	CX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 1)
	DX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 2)
	BX   Reg = Reg(2<<16 | REG_LEGACY<<8 | 3)
	SP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 4)
	BP   Reg = Reg(2<<16 | REG_LEGACY<<8 | 5)
	SI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 6)
	DI   Reg = Reg(2<<16 | REG_LEGACY<<8 | 7)
	R8W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 8)
	R9W  Reg = Reg(2<<16 | REG_LEGACY<<8 | 9)
	R10W Reg = Reg(2<<16 | REG_LEGACY<<8 | 10)
	R11W Reg = Reg(2<<16 | REG_LEGACY<<8 | 11)
	R12W Reg = Reg(2<<16 | REG_LEGACY<<8 | 12)
	R13W Reg = Reg(2<<16 | REG_LEGACY<<8 | 13)
	R14W Reg = Reg(2<<16 | REG_LEGACY<<8 | 14)
	R15W Reg = Reg(2<<16 | REG_LEGACY<<8 | 15)

	// 32-bit
	EAX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 0)
	ECX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 1)
	EDX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 2)
	EBX  Reg = Reg(4<<16 | REG_LEGACY<<8 | 3)
	ESP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 4)
	EBP  Reg = Reg(4<<16 | REG_LEGACY<<8 | 5)
	ESI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 6)
	EDI  Reg = Reg(4<<16 | REG_LEGACY<<8 | 7)
	R8D  Reg = Reg(4<<16 | REG_LEGACY<<8 | 8)
	R9D  Reg = Reg(4<<16 | REG_LEGACY<<8 | 9)
	R10D Reg = Reg(4<<16 | REG_LEGACY<<8 | 10)
	R11D Reg = Reg(4<<16 | REG_LEGACY<<8 | 11)
	R12D Reg = Reg(4<<16 | REG_LEGACY<<8 | 12)
	R13D Reg = Reg(4<<16 | REG_LEGACY<<8 | 13)
	R14D Reg = Reg(4<<16 | REG_LEGACY<<8 | 14)
	R15D Reg = Reg(4<<16 | REG_LEGACY<<8 | 15)

	// 64-bit
	RAX Reg = Reg(8<<16 | REG_LEGACY<<8 | 0)
	RCX Reg = Reg(8<<16 | REG_LEGACY<<8 | 1)
	RDX Reg = Reg(8<<16 | REG_LEGACY<<8 | 2)
	RBX Reg = Reg(8<<16 | REG_LEGACY<<8 | 3)
	RSP Reg = Reg(8<<16 | REG_LEGACY<<8 | 4)
	RBP Reg = Reg(8<<16 | REG_LEGACY<<8 | 5)
	RSI Reg = Reg(8<<16 | REG_LEGACY<<8 | 6)
	RDI Reg = Reg(8<<16 | REG_LEGACY<<8 | 7)
	R8  Reg = Reg(8<<16 | REG_LEGACY<<8 | 8)
	R9  Reg = Reg(8<<16 | REG_LEGACY<<8 | 9)
	R10 Reg = Reg(8<<16 | REG_LEGACY<<8 | 10)
	R11 Reg = Reg(8<<16 | REG_LEGACY<<8 | 11)
	R12 Reg = Reg(8<<16 | REG_LEGACY<<8 | 12)
	R13 Reg = Reg(8<<16 | REG_LEGACY<<8 | 13)
	R14 Reg = Reg(8<<16 | REG_LEGACY<<8 | 14)
	R15 Reg = Reg(8<<16 | REG_LEGACY<<8 | 15)

	// Instruction pointer.
	IP  Reg = Reg(2<<16 | REG_RIP<<8 | 0) // 16-bit
	EIP Reg = Reg(4<<16 | REG_RIP<<8 | 0) // 32-bit
	RIP Reg = Reg(8<<16 | REG_RIP<<8 | 0) // 64-bit

	// 387 floating point registers.
	ST0 Reg = Reg(10<<16 | REG_FP<<8 | 0)
	ST1 Reg = Reg(10<<16 | REG_FP<<8 | 1)
	ST2 Reg = Reg(10<<16 | REG_FP<<8 | 2)
	ST3 Reg = Reg(10<<16 | REG_FP<<8 | 3)
	ST4 Reg = Reg(10<<16 | REG_FP<<8 | 4)
	ST5 Reg = Reg(10<<16 | REG_FP<<8 | 5)
	ST6 Reg = Reg(10<<16 | REG_FP<<8 | 6)
	ST7 Reg = Reg(10<<16 | REG_FP<<8 | 7)

	// MMX registers.
	MM0 Reg = Reg(8<<16 | REG_MMX<<8 | 0)
	MM1 Reg = Reg(8<<16 | REG_MMX<<8 | 1)
	MM2 Reg = Reg(8<<16 | REG_MMX<<8 | 2)
	MM3 Reg = Reg(8<<16 | REG_MMX<<8 | 3)
	MM4 Reg = Reg(8<<16 | REG_MMX<<8 | 4)
	MM5 Reg = Reg(8<<16 | REG_MMX<<8 | 5)
	MM6 Reg = Reg(8<<16 | REG_MMX<<8 | 6)
	MM7 Reg = Reg(8<<16 | REG_MMX<<8 | 7)

	// XMM registers.
	XMM0  Reg = Reg(16<<16 | REG_XMM<<8 | 0)
	XMM1  Reg = Reg(16<<16 | REG_XMM<<8 | 1)
	XMM2  Reg = Reg(16<<16 | REG_XMM<<8 | 2)
	XMM3  Reg = Reg(16<<16 | REG_XMM<<8 | 3)
	XMM4  Reg = Reg(16<<16 | REG_XMM<<8 | 4)
	XMM5  Reg = Reg(16<<16 | REG_XMM<<8 | 5)
	XMM6  Reg = Reg(16<<16 | REG_XMM<<8 | 6)
	XMM7  Reg = Reg(16<<16 | REG_XMM<<8 | 7)
	XMM8  Reg = Reg(16<<16 | REG_XMM<<8 | 8)
	XMM9  Reg = Reg(16<<16 | REG_XMM<<8 | 9)
	XMM10 Reg = Reg(16<<16 | REG_XMM<<8 | 10)
	XMM11 Reg = Reg(16<<16 | REG_XMM<<8 | 11)
	XMM12 Reg = Reg(16<<16 | REG_XMM<<8 | 12)
	XMM13 Reg = Reg(16<<16 | REG_XMM<<8 | 13)
	XMM14 Reg = Reg(16<<16 | REG_XMM<<8 | 14)
	XMM15 Reg = Reg(16<<16 | REG_XMM<<8 | 15)
	XMM16 Reg = Reg(16<<16 | REG_XMM<<8 | 16)
	XMM17 Reg = Reg(16<<16 | REG_XMM<<8 | 17)
	XMM18 Reg = Reg(16<<16 | REG_XMM<<8 | 18)
	XMM19 Reg = Reg(16<<16 | REG_XMM<<8 | 19)
	XMM20 Reg = Reg(16<<16 | REG_XMM<<8 | 20)
	XMM21 Reg = Reg(16<<16 | REG_XMM<<8 | 21)
	XMM22 Reg = Reg(16<<16 | REG_XMM<<8 | 22)
	XMM23 Reg = Reg(16<<16 | REG_XMM<<8 | 23)
	XMM24 Reg = Reg(16<<16 | REG_XMM<<8 | 24)
	XMM25 Reg = Reg(16<<16 | REG_XMM<<8 | 25)
	XMM26 Reg = Reg(16<<16 | REG_XMM<<8 | 26)
	XMM27 Reg = Reg(16<<16 | REG_XMM<<8 | 27)
	XMM28 Reg = Reg(16<<16 | REG_XMM<<8 | 28)
	XMM29 Reg = Reg(16<<16 | REG_XMM<<8 | 29)
	XMM30 Reg = Reg(16<<16 | REG_XMM<<8 | 30)
	XMM31 Reg = Reg(16<<16 | REG_XMM<<8 | 31)

	// YMM registers.
	YMM0  Reg = Reg(32<<16 | REG_YMM<<8 | 0)
	YMM1  Reg = Reg(32<<16 | REG_YMM<<8 | 1)
	YMM2  Reg = Reg(32<<16 | REG_YMM<<8 | 2)
	YMM3  Reg = Reg(32<<16 | REG_YMM<<8 | 3)
	YMM4  Reg = Reg(32<<16 | REG_YMM<<8 | 4)
	YMM5  Reg = Reg(32<<16 | REG_YMM<<8 | 5)
	YMM6  Reg = Reg(32<<16 | REG_YMM<<8 | 6)
	YMM7  Reg = Reg(32<<16 | REG_YMM<<8 | 7)
	YMM8  Reg = Reg(32<<16 | REG_YMM<<8 | 8)
	YMM9  Reg = Reg(32<<16 | REG_YMM<<8 | 9)
	YMM10 Reg = Reg(32<<16 | REG_YMM<<8 | 10)
	YMM11 Reg = Reg(32<<16 | REG_YMM<<8 | 11)
	YMM12 Reg = Reg(32<<16 | REG_YMM<<8 | 12)
	YMM13 Reg = Reg(32<<16 | REG_YMM<<8 | 13)
	YMM14 Reg = Reg(32<<16 | REG_YMM<<8 | 14)
	YMM15 Reg = Reg(32<<16 | REG_YMM<<8 | 15)
	YMM16 Reg = Reg(32<<16 | REG_YMM<<8 | 16)
	YMM17 Reg = Reg(32<<16 | REG_YMM<<8 | 17)
	YMM18 Reg = Reg(32<<16 | REG_YMM<<8 | 18)
	YMM19 Reg = Reg(32<<16 | REG_YMM<<8 | 19)
	YMM20 Reg = Reg(32<<16 | REG_YMM<<8 | 20)
	YMM21 Reg = Reg(32<<16 | REG_YMM<<8 | 21)
	YMM22 Reg = Reg(32<<16 | REG_YMM<<8 | 22)
	YMM23 Reg = Reg(32<<16 | REG_YMM<<8 | 23)
	YMM24 Reg = Reg(32<<16 | REG_YMM<<8 | 24)
	YMM25 Reg = Reg(32<<16 | REG_YMM<<8 | 25)
	YMM26 Reg = Reg(32<<16 | REG_YMM<<8 | 26)
	YMM27 Reg = Reg(32<<16 | REG_YMM<<8 | 27)
	YMM28 Reg = Reg(32<<16 | REG_YMM<<8 | 28)
	YMM29 Reg = Reg(32<<16 | REG_YMM<<8 | 29)
	YMM30 Reg = Reg(32<<16 | REG_YMM<<8 | 30)
	YMM31 Reg = Reg(32<<16 | REG_YMM<<8 | 31)

	// ZMM registers.
	ZMM0  Reg = Reg(64<<16 | REG_ZMM<<8 | 0)
	ZMM1  Reg = Reg(64<<16 | REG_ZMM<<8 | 1)
	ZMM2  Reg = Reg(64<<16 | REG_ZMM<<8 | 2)
	ZMM3  Reg = Reg(64<<16 | REG_ZMM<<8 | 3)
	ZMM4  Reg = Reg(64<<16 | REG_ZMM<<8 | 4)
	ZMM5  Reg = Reg(64<<16 | REG_ZMM<<8 | 5)
	ZMM6  Reg = Reg(64<<16 | REG_ZMM<<8 | 6)
	ZMM7  Reg = Reg(64<<16 | REG_ZMM<<8 | 7)
	ZMM8  Reg = Reg(64<<16 | REG_ZMM<<8 | 8)
	ZMM9  Reg = Reg(64<<16 | REG_ZMM<<8 | 9)
	ZMM10 Reg = Reg(64<<16 | REG_ZMM<<8 | 10)
	ZMM11 Reg = Reg(64<<16 | REG_ZMM<<8 | 11)
	ZMM12 Reg = Reg(64<<16 | REG_ZMM<<8 | 12)
	ZMM13 Reg = Reg(64<<16 | REG_ZMM<<8 | 13)
	ZMM14 Reg = Reg(64<<16 | REG_ZMM<<8 | 14)
	ZMM15 Reg = Reg(64<<16 | REG_ZMM<<8 | 15)
	ZMM16 Reg = Reg(64<<16 | REG_ZMM<<8 | 16)
	ZMM17 Reg = Reg(64<<16 | REG_ZMM<<8 | 17)
	ZMM18 Reg = Reg(64<<16 | REG_ZMM<<8 | 18)
	ZMM19 Reg = Reg(64<<16 | REG_ZMM<<8 | 19)
	ZMM20 Reg = Reg(64<<16 | REG_ZMM<<8 | 20)
	ZMM21 Reg = Reg(64<<16 | REG_ZMM<<8 | 21)
	ZMM22 Reg = Reg(64<<16 | REG_ZMM<<8 | 22)
	ZMM23 Reg = Reg(64<<16 | REG_ZMM<<8 | 23)
	ZMM24 Reg = Reg(64<<16 | REG_ZMM<<8 | 24)
	ZMM25 Reg = Reg(64<<16 | REG_ZMM<<8 | 25)
	ZMM26 Reg = Reg(64<<16 | REG_ZMM<<8 | 26)
	ZMM27 Reg = Reg(64<<16 | REG_ZMM<<8 | 27)
	ZMM28 Reg = Reg(64<<16 | REG_ZMM<<8 | 28)
	ZMM29 Reg = Reg(64<<16 | REG_ZMM<<8 | 29)
	ZMM30 Reg = Reg(64<<16 | REG_ZMM<<8 | 30)
	ZMM31 Reg = Reg(64<<16 | REG_ZMM<<8 | 31)

	// Segment registers.
	ES Reg = Reg(2<<16 | REG_SEGMENT<<8 | 0)
	CS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 1)
	SS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 2)
	DS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 3)
	FS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 4)
	GS Reg = Reg(2<<16 | REG_SEGMENT<<8 | 5)

	// Control registers.
	CR0  Reg = Reg(8<<16 | REG_CONTROL<<8 | 0)
	CR1  Reg = Reg(8<<16 | REG_CONTROL<<8 | 1)
	CR2  Reg = Reg(8<<16 | REG_CONTROL<<8 | 2)
	CR3  Reg = Reg(8<<16 | REG_CONTROL<<8 | 3)
	CR4  Reg = Reg(8<<16 | REG_CONTROL<<8 | 4)
	CR5  Reg = Reg(8<<16 | REG_CONTROL<<8 | 5)
	CR6  Reg = Reg(8<<16 | REG_CONTROL<<8 | 6)
	CR7  Reg = Reg(8<<16 | REG_CONTROL<<8 | 7)
	CR8  Reg = Reg(8<<16 | REG_CONTROL<<8 | 8)
	CR9  Reg = Reg(8<<16 | REG_CONTROL<<8 | 9)
	CR10 Reg = Reg(8<<16 | REG_CONTROL<<8 | 10)
	CR11 Reg = Reg(8<<16 | REG_CONTROL<<8 | 11)
	CR12 Reg = Reg(8<<16 | REG_CONTROL<<8 | 12)
	CR13 Reg = Reg(8<<16 | REG_CONTROL<<8 | 13)
	CR14 Reg = Reg(8<<16 | REG_CONTROL<<8 | 14)
	CR15 Reg = Reg(8<<16 | REG_CONTROL<<8 | 15)

	// Debug registers.
	DR0  Reg = Reg(8<<16 | REG_DEBUG<<8 | 0)
	DR1  Reg = Reg(8<<16 | REG_DEBUG<<8 | 1)
	DR2  Reg = Reg(8<<16 | REG_DEBUG<<8 | 2)
	DR3  Reg = Reg(8<<16 | REG_DEBUG<<8 | 3)
	DR4  Reg = Reg(8<<16 | REG_DEBUG<<8 | 4)
	DR5  Reg = Reg(8<<16 | REG_DEBUG<<8 | 5)
	DR6  Reg = Reg(8<<16 | REG_DEBUG<<8 | 6)
	DR7  Reg = Reg(8<<16 | REG_DEBUG<<8 | 7)
	DR8  Reg = Reg(8<<16 | REG_DEBUG<<8 | 8)
	DR9  Reg = Reg(8<<16 | REG_DEBUG<<8 | 9)
	DR10 Reg = Reg(8<<16 | REG_DEBUG<<8 | 10)
	DR11 Reg = Reg(8<<16 | REG_DEBUG<<8 | 11)
	DR12 Reg = Reg(8<<16 | REG_DEBUG<<8 | 12)
	DR13 Reg = Reg(8<<16 | REG_DEBUG<<8 | 13)
	DR14 Reg = Reg(8<<16 | REG_DEBUG<<8 | 14)
	DR15 Reg = Reg(8<<16 | REG_DEBUG<<8 | 15)

	// Opmask registers.
	K0 Reg = Reg(8<<16 | REG_OPMASK<<8 | 0)
	K1 Reg = Reg(8<<16 | REG_OPMASK<<8 | 1)
	K2 Reg = Reg(8<<16 | REG_OPMASK<<8 | 2)
	K3 Reg = Reg(8<<16 | REG_OPMASK<<8 | 3)
	K4 Reg = Reg(8<<16 | REG_OPMASK<<8 | 4)
	K5 Reg = Reg(8<<16 | REG_OPMASK<<8 | 5)
	K6 Reg = Reg(8<<16 | REG_OPMASK<<8 | 6)
	K7 Reg = Reg(8<<16 | REG_OPMASK<<8 | 7)

	// Bound registers.
	BND0 Reg = Reg(16<<16 | REG_BOUND<<8 | 0)
	BND1 Reg = Reg(16<<16 | REG_BOUND<<8 | 1)
	BND2 Reg = Reg(16<<16 | REG_BOUND<<8 | 2)
	BND3 Reg = Reg(16<<16 | REG_BOUND<<8 | 3)
)
