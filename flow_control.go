package iced

// FlowControl classifies how an instruction changes the flow of execution.
type FlowControl uint8

const (
	FlowNext FlowControl = iota
	FlowUnconditionalBranch
	FlowIndirectBranch
	FlowConditionalBranch
	FlowReturn
	FlowCall
	FlowIndirectCall
	FlowInterrupt
	FlowXbeginXabortXend
	FlowException
)

var flowNames = [...]string{
	FlowNext:                "Next",
	FlowUnconditionalBranch: "UnconditionalBranch",
	FlowIndirectBranch:      "IndirectBranch",
	FlowConditionalBranch:   "ConditionalBranch",
	FlowReturn:              "Return",
	FlowCall:                "Call",
	FlowIndirectCall:        "IndirectCall",
	FlowInterrupt:           "Interrupt",
	FlowXbeginXabortXend:    "XbeginXabortXend",
	FlowException:           "Exception",
}

func (f FlowControl) String() string {
	if int(f) < len(flowNames) {
		return flowNames[f]
	}
	return "FlowControl(?)"
}

// IsCall reports whether the flow control transfers to a function.
func (f FlowControl) IsCall() bool { return f == FlowCall || f == FlowIndirectCall }
