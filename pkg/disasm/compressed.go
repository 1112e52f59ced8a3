package disasm

import (
	"github.com/eigerco/rvdis/pkg/riscv"
)

// Compressed instructions are rendered under their own c. names. The decoder
// has already expanded the 3-bit register fields, so Rd, Rs1 and Rs2 are full
// register indices. Stack pointer relative forms always address sp.

var (
	// Instructions with args: rd, offset(rs1)
	instrCompressedLoad = []riscv.Opcode{riscv.C_LW, riscv.C_LD, riscv.C_LQ}
	// Instructions with args: frd, offset(rs1)
	instrCompressedFloatLoad = []riscv.Opcode{riscv.C_FLW, riscv.C_FLD}
	// Instructions with args: rs2, offset(rs1)
	instrCompressedStore = []riscv.Opcode{riscv.C_SW, riscv.C_SD, riscv.C_SQ}
	// Instructions with args: frs2, offset(rs1)
	instrCompressedFloatStore = []riscv.Opcode{riscv.C_FSW, riscv.C_FSD}
	// Instructions with args: rd, offset(sp)
	instrCompressedLoadSP = []riscv.Opcode{riscv.C_LWSP, riscv.C_LDSP, riscv.C_LQSP}
	// Instructions with args: frd, offset(sp)
	instrCompressedFloatLoadSP = []riscv.Opcode{riscv.C_FLWSP, riscv.C_FLDSP}
	// Instructions with args: rs2, offset(sp)
	instrCompressedStoreSP = []riscv.Opcode{riscv.C_SWSP, riscv.C_SDSP, riscv.C_SQSP}
	// Instructions with args: frs2, offset(sp)
	instrCompressedFloatStoreSP = []riscv.Opcode{riscv.C_FSWSP, riscv.C_FSDSP}
	// Instructions with args: rd, imm
	instrCompressedRegImm = []riscv.Opcode{riscv.C_ADDI, riscv.C_ADDIW, riscv.C_LI, riscv.C_ANDI,
		riscv.C_SLLI, riscv.C_SRLI, riscv.C_SRAI}
	// Instructions with args: rd
	instrCompressedShift64 = []riscv.Opcode{riscv.C_SLLI64, riscv.C_SRLI64, riscv.C_SRAI64}
	// Instructions with args: rd, rs2
	instrCompressedRegReg = []riscv.Opcode{riscv.C_SUB, riscv.C_XOR, riscv.C_OR, riscv.C_AND,
		riscv.C_SUBW, riscv.C_ADDW, riscv.C_MV, riscv.C_ADD}
	// Instructions with args: target
	instrCompressedJump = []riscv.Opcode{riscv.C_J, riscv.C_JAL}
	// Instructions with args: rs1, target
	instrCompressedBranch = []riscv.Opcode{riscv.C_BEQZ, riscv.C_BNEZ}
	// Instructions with args: rs1
	instrCompressedJumpReg = []riscv.Opcode{riscv.C_JR, riscv.C_JALR}
	// Instructions with args: none
	instrCompressedNone = []riscv.Opcode{riscv.C_UNIMP, riscv.C_EBREAK}
)

func registerCompressed() {
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xm(in.Op.String(), in.Rd, in.Rs1, in.Imm.Int())
	}, instrCompressedLoad...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fm(in.Op.String(), in.Rd, in.Rs1, in.Imm.Int())
	}, instrCompressedFloatLoad...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xm(in.Op.String(), in.Rs2, in.Rs1, in.Imm.Int())
	}, instrCompressedStore...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fm(in.Op.String(), in.Rs2, in.Rs1, in.Imm.Int())
	}, instrCompressedFloatStore...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xm(in.Op.String(), in.Rd, riscv.SP, in.Imm.Int())
	}, instrCompressedLoadSP...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fm(in.Op.String(), in.Rd, riscv.SP, in.Imm.Int())
	}, instrCompressedFloatLoadSP...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xm(in.Op.String(), in.Rs2, riscv.SP, in.Imm.Int())
	}, instrCompressedStoreSP...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fm(in.Op.String(), in.Rs2, riscv.SP, in.Imm.Int())
	}, instrCompressedFloatStoreSP...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xi(in.Op.String(), in.Rd, in.Imm.Int())
	}, instrCompressedRegImm...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.x(in.Op.String(), in.Rd)
	}, instrCompressedShift64...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xx(in.Op.String(), in.Rd, in.Rs2)
	}, instrCompressedRegReg...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.a(in.Op.String(), in.Target())
	}, instrCompressedJump...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xa(in.Op.String(), in.Rs1, in.Target())
	}, instrCompressedBranch...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.x(in.Op.String(), in.Rs1)
	}, instrCompressedJumpReg...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.nullary(in.Op.String())
	}, instrCompressedNone...)

	register(renderCADDI4SPN, riscv.C_ADDI4SPN)
	register(renderCADDI16SP, riscv.C_ADDI16SP)
	register(renderCLUI, riscv.C_LUI)
	register(renderCNOP, riscv.C_NOP)
}

func renderCADDI4SPN(f formatter, in riscv.Instruction) Mnemonic {
	return f.xxi("c.addi4spn", in.Rd, riscv.SP, in.Imm.Int())
}

func renderCADDI16SP(f formatter, in riscv.Instruction) Mnemonic {
	return f.xi("c.addi16sp", riscv.SP, in.Imm.Int())
}

func renderCLUI(f formatter, in riscv.Instruction) Mnemonic {
	return f.xa("c.lui", in.Rd, in.Imm.Uint())
}

// renderCNOP shows the immediate only for the hint encodings where it is set.
func renderCNOP(f formatter, in riscv.Instruction) Mnemonic {
	if in.Imm == 0 {
		return f.nullary("c.nop")
	}
	return f.i("c.nop", in.Imm.Int())
}
