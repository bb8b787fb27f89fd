package iced

// TupleType is an EVEX tuple type. It scales 8-bit compressed displacements (disp8*N).
type TupleType uint8

const (
	TupleN1 TupleType = iota
	TupleN2
	TupleN4
	TupleN8
	TupleN16
	TupleN32
	TupleN64
	TupleN8b4
	TupleN16b4
	TupleN32b4
	TupleN64b4
	TupleN16b8
	TupleN32b8
	TupleN64b8
)

// N and Nbcst pairs, indexed by tuple type.
var tupleTypeData = [...][2]uint8{
	{1, 1},   // N1
	{2, 2},   // N2
	{4, 4},   // N4
	{8, 8},   // N8
	{16, 16}, // N16
	{32, 32}, // N32
	{64, 64}, // N64
	{8, 4},   // N8b4
	{16, 4},  // N16b4
	{32, 4},  // N32b4
	{64, 4},  // N64b4
	{16, 8},  // N16b8
	{32, 8},  // N32b8
	{64, 8},  // N64b8
}

// Disp8N returns the compressed displacement scale of the tuple type.
// bcst selects the scale used when the memory operand is broadcast.
func (t TupleType) Disp8N(bcst bool) uint32 {
	if bcst {
		return uint32(tupleTypeData[t][1])
	}
	return uint32(tupleTypeData[t][0])
}

// Elements returns the number of broadcast elements that fill the full vector (N / Nbcst).
func (t TupleType) Elements() int {
	return int(tupleTypeData[t][0] / tupleTypeData[t][1])
}

// CompressedDisplacement converts an 8-bit EVEX compressed displacement to its byte displacement.
func (t TupleType) CompressedDisplacement(disp8 int8, bcst bool) int32 {
	return int32(disp8) * int32(t.Disp8N(bcst))
}

// tupleTypeFor returns the tuple type whose full-vector and broadcast sizes are n and nbcst.
func tupleTypeFor(n, nbcst uint8) (TupleType, bool) {
	for t, d := range tupleTypeData {
		if d[0] == n && d[1] == nbcst {
			return TupleType(t), true
		}
	}
	return 0, false
}
