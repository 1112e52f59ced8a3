package riscv

// Immediate is the raw immediate of a decoded instruction. Whether it is
// read as signed or unsigned is a property of the opcode.
type Immediate int64

// Int is the signed view of the immediate.
func (i Immediate) Int() int64 {
	return int64(i)
}

// Uint is the unsigned view of the immediate.
func (i Immediate) Uint() uint64 {
	return uint64(i)
}

// Instruction is one decoded instruction as handed over by the decoder.
type Instruction struct {
	Op   Opcode
	Rd   Reg
	Rs1  Reg
	Rs2  Reg
	Rs3  Reg
	Imm  Immediate
	UImm uint64 // zimm of csrrwi, csrrsi and csrrci
	Mod  uint8  // rm for floating point, aq/rl for atomics
	PC   uint64
}

// Target is the absolute address of a pc-relative branch or jump.
func (in Instruction) Target() uint64 {
	return in.PC + in.Imm.Uint()
}
