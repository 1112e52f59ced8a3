package disasm

import (
	"strings"

	"github.com/eigerco/rvdis/pkg/riscv"
)

func registerRules() {
	register(renderADDI, riscv.ADDI)
	register(renderADDIW, riscv.ADDIW)
	register(renderSUB, riscv.SUB)
	register(renderSUBW, riscv.SUBW)
	register(renderSLT, riscv.SLT)
	register(renderSLTU, riscv.SLTU)
	register(renderSLTIU, riscv.SLTIU)
	register(renderXORI, riscv.XORI)
	register(renderJAL, riscv.JAL)
	register(renderJALR, riscv.JALR)
	register(renderBEQ, riscv.BEQ)
	register(renderBNE, riscv.BNE)
	register(renderBGE, riscv.BGE)
	register(renderBLT, riscv.BLT)
	register(renderCSRReg, riscv.CSRRW, riscv.CSRRS, riscv.CSRRC)
	register(renderCSRImm, riscv.CSRRWI, riscv.CSRRSI, riscv.CSRRCI)
	register(renderFSGNJ, riscv.FSGNJ_S, riscv.FSGNJ_D, riscv.FSGNJ_H, riscv.FSGNJ_Q)
	register(renderFSGNJN, riscv.FSGNJN_S, riscv.FSGNJN_D, riscv.FSGNJN_H, riscv.FSGNJN_Q)
	register(renderFSGNJX, riscv.FSGNJX_S, riscv.FSGNJX_D, riscv.FSGNJX_H, riscv.FSGNJX_Q)
	register(renderFENCE, riscv.FENCE)
}

func renderADDI(f formatter, in riscv.Instruction) Mnemonic {
	switch {
	case in.Rd == riscv.ZERO && in.Rs1 == riscv.ZERO && in.Imm == 0:
		return f.nullary("nop")
	case in.Rs1 == riscv.ZERO:
		return f.xi("li", in.Rd, in.Imm.Int())
	case in.Imm == 0:
		return f.xx("mv", in.Rd, in.Rs1)
	}
	return f.xxi("addi", in.Rd, in.Rs1, in.Imm.Int())
}

func renderADDIW(f formatter, in riscv.Instruction) Mnemonic {
	if in.Imm == 0 {
		return f.xx("sext.w", in.Rd, in.Rs1)
	}
	return f.xxi("addiw", in.Rd, in.Rs1, in.Imm.Int())
}

func renderSUB(f formatter, in riscv.Instruction) Mnemonic {
	if in.Rs1 == riscv.ZERO {
		return f.xx("neg", in.Rd, in.Rs2)
	}
	return f.xxx("sub", in.Rd, in.Rs1, in.Rs2)
}

func renderSUBW(f formatter, in riscv.Instruction) Mnemonic {
	if in.Rs1 == riscv.ZERO {
		return f.xx("negw", in.Rd, in.Rs2)
	}
	return f.xxx("subw", in.Rd, in.Rs1, in.Rs2)
}

func renderSLT(f formatter, in riscv.Instruction) Mnemonic {
	switch {
	case in.Rs2 == riscv.ZERO:
		return f.xx("sltz", in.Rd, in.Rs1)
	case in.Rs1 == riscv.ZERO:
		return f.xx("sgtz", in.Rd, in.Rs2)
	}
	return f.xxx("slt", in.Rd, in.Rs1, in.Rs2)
}

func renderSLTU(f formatter, in riscv.Instruction) Mnemonic {
	if in.Rs1 == riscv.ZERO {
		return f.xx("snez", in.Rd, in.Rs2)
	}
	return f.xxx("sltu", in.Rd, in.Rs1, in.Rs2)
}

func renderSLTIU(f formatter, in riscv.Instruction) Mnemonic {
	if in.Imm == 1 {
		return f.xx("seqz", in.Rd, in.Rs1)
	}
	return f.xxi("sltiu", in.Rd, in.Rs1, in.Imm.Int())
}

func renderXORI(f formatter, in riscv.Instruction) Mnemonic {
	if in.Imm == -1 {
		return f.xx("not", in.Rd, in.Rs1)
	}
	return f.xxi("xori", in.Rd, in.Rs1, in.Imm.Int())
}

func renderJAL(f formatter, in riscv.Instruction) Mnemonic {
	switch in.Rd {
	case riscv.ZERO:
		return f.a("j", in.Target())
	case riscv.RA:
		return f.a("jal", in.Target())
	}
	return f.xa("jal", in.Rd, in.Target())
}

// renderJALR only reports ret for the exact encoding jalr zero, 0(ra).
func renderJALR(f formatter, in riscv.Instruction) Mnemonic {
	switch {
	case in.Rd == riscv.ZERO && in.Rs1 == riscv.RA && in.Imm == 0:
		return f.nullary("ret")
	case in.Rd == riscv.ZERO:
		return f.m("jr", in.Rs1, in.Imm.Int())
	case in.Rd == riscv.RA:
		return f.m("jalr", in.Rs1, in.Imm.Int())
	}
	return f.xm("jalr", in.Rd, in.Rs1, in.Imm.Int())
}

func renderBEQ(f formatter, in riscv.Instruction) Mnemonic {
	if in.Rs2 == riscv.ZERO {
		return f.xa("beqz", in.Rs1, in.Target())
	}
	return f.xxa("beq", in.Rs1, in.Rs2, in.Target())
}

func renderBNE(f formatter, in riscv.Instruction) Mnemonic {
	if in.Rs2 == riscv.ZERO {
		return f.xa("bnez", in.Rs1, in.Target())
	}
	return f.xxa("bne", in.Rs1, in.Rs2, in.Target())
}

func renderBGE(f formatter, in riscv.Instruction) Mnemonic {
	switch {
	case in.Rs1 == riscv.ZERO:
		return f.xa("blez", in.Rs2, in.Target())
	case in.Rs2 == riscv.ZERO:
		return f.xa("bgez", in.Rs1, in.Target())
	}
	return f.xxa("bge", in.Rs1, in.Rs2, in.Target())
}

func renderBLT(f formatter, in riscv.Instruction) Mnemonic {
	switch {
	case in.Rs2 == riscv.ZERO:
		return f.xa("bltz", in.Rs1, in.Target())
	case in.Rs1 == riscv.ZERO:
		return f.xa("bgtz", in.Rs2, in.Target())
	}
	return f.xxa("blt", in.Rs1, in.Rs2, in.Target())
}

// csrAlias maps the register and immediate CSR opcodes to the pseudo
// instruction used when the old value is discarded (rd is zero).
var csrAlias = map[riscv.Opcode]string{
	riscv.CSRRW:  "csrw",
	riscv.CSRRS:  "csrs",
	riscv.CSRRC:  "csrc",
	riscv.CSRRWI: "csrwi",
	riscv.CSRRSI: "csrsi",
	riscv.CSRRCI: "csrci",
}

func renderCSRReg(f formatter, in riscv.Instruction) Mnemonic {
	addr := in.Imm.Uint()
	switch {
	case in.Op == riscv.CSRRS && in.Rs1 == riscv.ZERO:
		return f.xc("csrr", in.Rd, addr)
	case in.Rd == riscv.ZERO:
		return f.cx(csrAlias[in.Op], addr, in.Rs1)
	}
	return f.xcx(in.Op.String(), in.Rd, addr, in.Rs1)
}

func renderCSRImm(f formatter, in riscv.Instruction) Mnemonic {
	addr := in.Imm.Uint()
	if in.Rd == riscv.ZERO {
		return f.cu(csrAlias[in.Op], addr, in.UImm)
	}
	return f.xcu(in.Op.String(), in.Rd, addr, in.UImm)
}

// floatFormat returns the trailing format letter of a float opcode name,
// e.g. "d" for fsgnj.d.
func floatFormat(op riscv.Opcode) string {
	name := op.String()
	return name[strings.LastIndexByte(name, '.')+1:]
}

func renderSignInject(pseudo string) renderFunc {
	return func(f formatter, in riscv.Instruction) Mnemonic {
		if in.Rs1 == in.Rs2 {
			return f.ff(pseudo+"."+floatFormat(in.Op), in.Rd, in.Rs1)
		}
		return f.fff(in.Op.String(), in.Rd, in.Rs1, in.Rs2)
	}
}

var (
	renderFSGNJ  = renderSignInject("fmv")
	renderFSGNJN = renderSignInject("fneg")
	renderFSGNJX = renderSignInject("fabs")
)

// Fence immediates: fm in bits 11:8, predecessor set in 7:4, successor set in 3:0.
const (
	fenceSetMask = 0b1111
	fenceAll     = 0b1111
	fenceRW      = 0b0011
	fenceModeTSO = 0b1000
)

// fenceSet spells an iorw access set. An empty set is spelled "0".
func fenceSet(bits uint64) string {
	var sb strings.Builder
	for i, letter := range "iorw" {
		if bits&(1<<(3-i)) != 0 {
			sb.WriteRune(letter)
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

func renderFENCE(f formatter, in riscv.Instruction) Mnemonic {
	imm := in.Imm.Uint()
	fm := (imm >> 8) & fenceSetMask
	pred := (imm >> 4) & fenceSetMask
	succ := imm & fenceSetMask
	switch {
	case fm == fenceModeTSO && pred == fenceRW && succ == fenceRW:
		return f.nullary("fence.tso")
	case pred == fenceAll && succ == fenceAll:
		return f.nullary("fence")
	}
	return emit("fence", fenceSet(pred), fenceSet(succ))
}

// renderAddressFence drops trailing zero registers: sfence.vma with
// rs1=rs2=zero flushes everything and is written bare.
func renderAddressFence(f formatter, in riscv.Instruction) Mnemonic {
	name := in.Op.String()
	switch {
	case in.Rs2 != riscv.ZERO:
		return f.xx(name, in.Rs1, in.Rs2)
	case in.Rs1 != riscv.ZERO:
		return f.x(name, in.Rs1)
	}
	return f.nullary(name)
}
