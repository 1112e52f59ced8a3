package riscv

import (
	"fmt"
	"strconv"
	"strings"
)

// NumRegs is the size of both the integer and the floating point register files.
const NumRegs = 32

// Reg is a register index as produced by the decoder. The same type is used
// for integer and floating point registers; the opcode decides which file it
// refers to.
type Reg uint8

// Integer registers by ABI name.
const (
	ZERO Reg = iota
	RA
	SP
	GP
	TP
	T0
	T1
	T2
	S0
	S1
	A0
	A1
	A2
	A3
	A4
	A5
	A6
	A7
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	S10
	S11
	T3
	T4
	T5
	T6
)

var intRegNames = [NumRegs]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

var floatRegNames = [NumRegs]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// String returns the integer ABI name of the register.
func (r Reg) String() string {
	return RegisterName(r, ABINames)
}

// DisplayMode selects how register operands are spelled.
type DisplayMode uint8

const (
	// ABINames spells registers by their calling convention alias (a0, ft1).
	ABINames DisplayMode = iota
	// NumericNames spells registers by index (x10, f1).
	NumericNames
)

// ErrInvalidDisplayMode is returned when a display mode name is not recognised.
var ErrInvalidDisplayMode = fmt.Errorf("invalid display mode")

func (m DisplayMode) String() string {
	switch m {
	case ABINames:
		return "abi"
	case NumericNames:
		return "numeric"
	default:
		return fmt.Sprintf("DisplayMode(%d)", uint8(m))
	}
}

// ParseDisplayMode accepts "abi" or "numeric", ignoring case and surrounding space.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "abi":
		return ABINames, nil
	case "numeric":
		return NumericNames, nil
	default:
		return ABINames, fmt.Errorf("%w: %q", ErrInvalidDisplayMode, s)
	}
}

// RegisterName resolves an integer register. Indices outside the register
// file are a decoder bug; they are spelled numerically instead of panicking.
func RegisterName(r Reg, mode DisplayMode) string {
	if mode == ABINames && r < NumRegs {
		return intRegNames[r]
	}
	return "x" + strconv.Itoa(int(r))
}

// FloatRegisterName resolves a floating point register.
func FloatRegisterName(r Reg, mode DisplayMode) string {
	if mode == ABINames && r < NumRegs {
		return floatRegNames[r]
	}
	return "f" + strconv.Itoa(int(r))
}
