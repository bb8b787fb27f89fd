package iced

import "strconv"

// MemorySize is the size and element layout of a memory operand.
type MemorySize uint8

const (
	MemUnknown MemorySize = iota
	MemUInt8
	MemUInt16
	MemUInt32
	MemUInt64
	MemUInt128
	MemUInt256
	MemUInt512
	MemInt8
	MemInt16
	MemInt32
	MemInt64
	MemFloat32
	MemFloat64
	MemFloat80
	MemPacked128Float32
	MemPacked128Float64
	MemPacked256Float32
	MemPacked256Float64
	MemPacked512Float32
	MemPacked512Float64
	MemFarPtr16_16
	MemFarPtr16_32
	MemFarPtr16_64
	MemBound32
	MemBound64
	MemBroadcast64Int32
	MemBroadcast64Float32
	MemBroadcast128Int32
	MemBroadcast128Float32
	MemBroadcast128Int64
	MemBroadcast128Float64
	MemBroadcast256Int32
	MemBroadcast256Float32
	MemBroadcast256Int64
	MemBroadcast256Float64
	MemBroadcast512Int32
	MemBroadcast512Float32
	MemBroadcast512Int64
	MemBroadcast512Float64

	memorySizeCount
)

type memorySizeInfo struct {
	name    string
	size    uint16 // total bytes read, or one element for broadcasts
	vector  uint8  // full vector bytes of a broadcast, else 0
	bcstTo  string // e.g. "1to16"
	element uint8
}

var memorySizes = [memorySizeCount]memorySizeInfo{
	MemUnknown:             {name: "Unknown"},
	MemUInt8:               {name: "UInt8", size: 1},
	MemUInt16:              {name: "UInt16", size: 2},
	MemUInt32:              {name: "UInt32", size: 4},
	MemUInt64:              {name: "UInt64", size: 8},
	MemUInt128:             {name: "UInt128", size: 16},
	MemUInt256:             {name: "UInt256", size: 32},
	MemUInt512:             {name: "UInt512", size: 64},
	MemInt8:                {name: "Int8", size: 1},
	MemInt16:               {name: "Int16", size: 2},
	MemInt32:               {name: "Int32", size: 4},
	MemInt64:               {name: "Int64", size: 8},
	MemFloat32:             {name: "Float32", size: 4},
	MemFloat64:             {name: "Float64", size: 8},
	MemFloat80:             {name: "Float80", size: 10},
	MemPacked128Float32:    {name: "Packed128_Float32", size: 16, element: 4},
	MemPacked128Float64:    {name: "Packed128_Float64", size: 16, element: 8},
	MemPacked256Float32:    {name: "Packed256_Float32", size: 32, element: 4},
	MemPacked256Float64:    {name: "Packed256_Float64", size: 32, element: 8},
	MemPacked512Float32:    {name: "Packed512_Float32", size: 64, element: 4},
	MemPacked512Float64:    {name: "Packed512_Float64", size: 64, element: 8},
	MemFarPtr16_16:         {name: "FarPtr16_16", size: 4},
	MemFarPtr16_32:         {name: "FarPtr16_32", size: 6},
	MemFarPtr16_64:         {name: "FarPtr16_64", size: 10},
	MemBound32:             {name: "Bound32_DwordDword", size: 8},
	MemBound64:             {name: "Bound64_QwordQword", size: 16},
	MemBroadcast64Int32:    {name: "Broadcast64_Int32", size: 4, vector: 8},
	MemBroadcast64Float32:  {name: "Broadcast64_Float32", size: 4, vector: 8},
	MemBroadcast128Int32:   {name: "Broadcast128_Int32", size: 4, vector: 16},
	MemBroadcast128Float32: {name: "Broadcast128_Float32", size: 4, vector: 16},
	MemBroadcast128Int64:   {name: "Broadcast128_Int64", size: 8, vector: 16},
	MemBroadcast128Float64: {name: "Broadcast128_Float64", size: 8, vector: 16},
	MemBroadcast256Int32:   {name: "Broadcast256_Int32", size: 4, vector: 32},
	MemBroadcast256Float32: {name: "Broadcast256_Float32", size: 4, vector: 32},
	MemBroadcast256Int64:   {name: "Broadcast256_Int64", size: 8, vector: 32},
	MemBroadcast256Float64: {name: "Broadcast256_Float64", size: 8, vector: 32},
	MemBroadcast512Int32:   {name: "Broadcast512_Int32", size: 4, vector: 64},
	MemBroadcast512Float32: {name: "Broadcast512_Float32", size: 4, vector: 64},
	MemBroadcast512Int64:   {name: "Broadcast512_Int64", size: 8, vector: 64},
	MemBroadcast512Float64: {name: "Broadcast512_Float64", size: 8, vector: 64},
}

func init() {
	for i := range memorySizes {
		m := &memorySizes[i]
		if m.vector == 0 {
			continue
		}
		m.element = uint8(m.size)
		t, ok := tupleTypeFor(m.vector, uint8(m.size))
		if !ok {
			panic("iced: no tuple type for " + m.name)
		}
		m.bcstTo = "1to" + strconv.Itoa(t.Elements())
	}
}

func (m MemorySize) info() *memorySizeInfo {
	if m >= memorySizeCount {
		panic("iced: memory size out of range: " + strconv.Itoa(int(m)))
	}
	return &memorySizes[m]
}

func (m MemorySize) String() string {
	if m >= memorySizeCount {
		return "MemorySize(" + strconv.Itoa(int(m)) + ")"
	}
	return memorySizes[m].name
}

// Size returns the number of bytes accessed. For broadcasts it is the size of one element.
func (m MemorySize) Size() int { return int(m.info().size) }

// ElementSize returns the size of one vector element, or the whole size for scalars.
func (m MemorySize) ElementSize() int {
	if e := m.info().element; e != 0 {
		return int(e)
	}
	return int(m.info().size)
}

// IsBroadcast reports whether the memory operand is a single element broadcast to a vector.
func (m MemorySize) IsBroadcast() bool { return m.info().vector != 0 }

// BroadcastSuffix returns the broadcast decoration without braces, e.g. "1to16", or "".
func (m MemorySize) BroadcastSuffix() string { return m.info().bcstTo }

// TupleType returns the EVEX tuple type of a broadcast memory size.
func (m MemorySize) TupleType() (TupleType, bool) {
	i := m.info()
	if i.vector == 0 {
		return 0, false
	}
	return tupleTypeFor(i.vector, uint8(i.size))
}
