package riscv

// RoundingMode is the 3-bit rm field of floating point instructions.
type RoundingMode uint8

const (
	RNE RoundingMode = iota // round to nearest, ties to even
	RTZ                     // round towards zero
	RDN                     // round down
	RUP                     // round up
	RMM                     // round to nearest, ties to max magnitude
	rmReserved5
	rmReserved6
	DYN // dynamic, taken from frm
)

// Codes 5 and 6 are reserved by the ISA. They are still rendered, as the
// placeholder tokens below, rather than being rejected.
var roundingModeNames = [8]string{
	RNE:         "rne",
	RTZ:         "rtz",
	RDN:         "rdn",
	RUP:         "rup",
	RMM:         "rmm",
	rmReserved5: "inv1",
	rmReserved6: "inv2",
	DYN:         "dyn",
}

// RoundingModeOf extracts the rounding mode from an instruction modifier.
func RoundingModeOf(mod uint8) RoundingMode {
	return RoundingMode(mod & 0b111)
}

func (rm RoundingMode) String() string {
	return roundingModeNames[rm&0b111]
}

// RoundingModeName returns the token for the low three bits of code.
func RoundingModeName(code uint8) string {
	return RoundingModeOf(code).String()
}

// Ordering is the aq/rl pair of LR, SC and AMO instructions.
type Ordering uint8

const (
	Relaxed Ordering = iota
	Release
	Acquire
	AcquireRelease
)

var orderingSuffixes = [4]string{
	Relaxed:        "",
	Release:        ".rl",
	Acquire:        ".aq",
	AcquireRelease: ".aq.rl",
}

// OrderingOf extracts the aq/rl bits from an instruction modifier.
func OrderingOf(mod uint8) Ordering {
	return Ordering(mod & 0b11)
}

// Suffix is appended to the mnemonic name, e.g. "lr.w" + ".aq".
func (o Ordering) Suffix() string {
	return orderingSuffixes[o&0b11]
}

// OrderingSuffix returns the name suffix selected by the low two bits of mod.
func OrderingSuffix(mod uint8) string {
	return OrderingOf(mod).Suffix()
}
