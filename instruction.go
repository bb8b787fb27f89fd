package iced

// Instruction is a decoded instruction. Operands are stored in Intel order; formatters
// reorder them as their syntax requires but never modify the record.
type Instruction struct {
	Code     Code
	CodeSize CodeSize
	IP       uint64
	Len      int

	OpCount int
	OpKinds [4]OpKind
	OpRegs  [4]Reg // register of each OpRegister operand

	// Raw bits of the first immediate. Sign-extending kinds read the low bits.
	Immediate      uint64
	Immediate8_2nd uint8

	NearBranchTarget  uint64
	FarBranchSelector uint16
	FarBranchOffset   uint32

	SegmentPrefix      Reg // explicit segment override, or 0
	MemoryBase         Reg
	MemoryIndex        Reg
	MemoryScale        uint8 // 0..3: 1, 2, 4 or 8
	MemoryDisplacement uint32
	MemoryDisplSize    uint8 // 0, 1, 2, 4 or 8 bytes
	MemoryAddress64    uint64
	MemorySize         MemorySize

	Lock     bool
	Repe     bool
	Repne    bool
	Xacquire bool
	Xrelease bool

	OpMask                Reg
	ZeroingMasking        bool
	SuppressAllExceptions bool
	RoundingControl       RoundingControl
}

// NextIP returns the address of the following instruction.
func (i *Instruction) NextIP() uint64 { return i.IP + uint64(i.Len) }

// NextIP32 returns the address of the following instruction truncated to 32 bits.
func (i *Instruction) NextIP32() uint32 { return uint32(i.IP) + uint32(i.Len) }

func (i *Instruction) Immediate8() uint8          { return uint8(i.Immediate) }
func (i *Instruction) Immediate16() uint16        { return uint16(i.Immediate) }
func (i *Instruction) Immediate32() uint32        { return uint32(i.Immediate) }
func (i *Instruction) Immediate64() uint64        { return i.Immediate }
func (i *Instruction) Immediate8to16() int16      { return int16(int8(i.Immediate)) }
func (i *Instruction) Immediate8to32() int32      { return int32(int8(i.Immediate)) }
func (i *Instruction) Immediate8to64() int64      { return int64(int8(i.Immediate)) }
func (i *Instruction) Immediate32to64() int64     { return int64(int32(i.Immediate)) }
func (i *Instruction) NearBranch16() uint16       { return uint16(i.NearBranchTarget) }
func (i *Instruction) NearBranch32() uint32       { return uint32(i.NearBranchTarget) }
func (i *Instruction) NearBranch64() uint64       { return i.NearBranchTarget }
func (i *Instruction) FarBranch16() uint16        { return uint16(i.FarBranchOffset) }
func (i *Instruction) FarBranch32() uint32        { return i.FarBranchOffset }
func (i *Instruction) HasOpMask() bool            { return i.OpMask != 0 }
func (i *Instruction) FlowControl() FlowControl   { return i.Code.FlowControl() }
func (i *Instruction) OpKind(operand int) OpKind  { return i.OpKinds[operand] }
func (i *Instruction) OpRegister(operand int) Reg { return i.OpRegs[operand] }

// MemorySegment returns the segment used by memory operands: the override if present,
// else SS for stack-based addressing, else DS.
func (i *Instruction) MemorySegment() Reg {
	if i.SegmentPrefix != 0 {
		return i.SegmentPrefix
	}
	switch i.MemoryBase {
	case SP, ESP, RSP, BP, EBP, RBP:
		return SS
	}
	return DS
}

// MemoryDisplacement64 returns the displacement sign-extended to 64 bits.
func (i *Instruction) MemoryDisplacement64() uint64 {
	return uint64(int64(int32(i.MemoryDisplacement)))
}

// HasMemoryOperand reports whether any operand references memory.
func (i *Instruction) HasMemoryOperand() bool {
	for _, k := range i.OpKinds[:i.OpCount] {
		if k.IsMemory() {
			return true
		}
	}
	return false
}

var stringFormatter func(*Instruction) string

// SetStringFormatter installs the function used by Instruction.String. Formatter packages
// install themselves when imported.
func SetStringFormatter(f func(*Instruction) string) { stringFormatter = f }

func (i Instruction) String() string {
	if stringFormatter == nil {
		return i.Code.Name()
	}
	return stringFormatter(&i)
}
