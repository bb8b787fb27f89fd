package iced

import "strconv"

var (
	gpr8Names  = [...]string{"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil"}
	gpr16Names = [...]string{"ax", "cx", "dx", "bx", "sp", "bp", "si", "di"}
	highNames  = [...]string{"ah", "ch", "dh", "bh"}
	segNames   = [...]string{"es", "cs", "ss", "ds", "fs", "gs"}
)

// AllRegisters lists every register known to the package, in family order.
var AllRegisters []Reg

var regNames map[Reg]string

func init() {
	add := func(r Reg, name string) {
		AllRegisters = append(AllRegisters, r)
		regNames[r] = name
	}
	regNames = make(map[Reg]string, 256)
	for i := Reg(0); i < 16; i++ {
		var b, w, d, q string
		if i < 8 {
			b, w, d, q = gpr8Names[i], gpr16Names[i], "e"+gpr16Names[i], "r"+gpr16Names[i]
		} else {
			n := "r" + strconv.Itoa(int(i))
			b, w, d, q = n+"b", n+"w", n+"d", n
		}
		add(AL+i, b)
		add(AX+i, w)
		add(EAX+i, d)
		add(RAX+i, q)
	}
	for i, n := range highNames {
		add(AH+Reg(i), n)
	}
	add(IP, "ip")
	add(EIP, "eip")
	add(RIP, "rip")
	add(ST0, "st")
	for i := Reg(1); i < 8; i++ {
		add(ST0+i, "st("+strconv.Itoa(int(i))+")")
	}
	for i := Reg(0); i < 8; i++ {
		add(MM0+i, "mm"+strconv.Itoa(int(i)))
		add(K0+i, "k"+strconv.Itoa(int(i)))
	}
	for i := Reg(0); i < 32; i++ {
		add(XMM0+i, "xmm"+strconv.Itoa(int(i)))
		add(YMM0+i, "ymm"+strconv.Itoa(int(i)))
		add(ZMM0+i, "zmm"+strconv.Itoa(int(i)))
	}
	for i, n := range segNames {
		add(ES+Reg(i), n)
	}
	for i := Reg(0); i < 16; i++ {
		add(CR0+i, "cr"+strconv.Itoa(int(i)))
		add(DR0+i, "db"+strconv.Itoa(int(i)))
	}
	for i := Reg(0); i < 4; i++ {
		add(BND0+i, "bnd"+strconv.Itoa(int(i)))
	}
}

// Name returns the lower-case name of the register without the AT&T '%' sigil,
// or the empty string for an unknown register.
func (r Reg) Name() string { return regNames[r] }

func (r Reg) String() string {
	if n, ok := regNames[r]; ok {
		return n
	}
	if r == 0 {
		return "none"
	}
	return "Reg(" + strconv.FormatUint(uint64(r), 16) + ")"
}
