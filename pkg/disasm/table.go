package disasm

import (
	"github.com/eigerco/rvdis/pkg/riscv"
)

type renderFunc func(f formatter, in riscv.Instruction) Mnemonic

var (
	// Instructions with args: rd, rs1, rs2
	instrRegRegReg = []riscv.Opcode{riscv.ADD, riscv.SLL, riscv.XOR, riscv.SRL, riscv.SRA, riscv.OR, riscv.AND, riscv.ADDW, riscv.SLLW, riscv.SRLW, riscv.SRAW,
		riscv.MUL, riscv.MULH, riscv.MULHSU, riscv.MULHU, riscv.DIV, riscv.DIVU, riscv.REM, riscv.REMU, riscv.MULW, riscv.DIVW, riscv.DIVUW, riscv.REMW, riscv.REMUW}
	// Instructions with args: rd, rs1, imm
	instrRegRegImm = []riscv.Opcode{riscv.SLTI, riscv.ORI, riscv.ANDI, riscv.SLLI, riscv.SRLI, riscv.SRAI, riscv.SLLIW, riscv.SRLIW, riscv.SRAIW}
	// Instructions with args: rd, upper imm
	instrRegUpper = []riscv.Opcode{riscv.LUI, riscv.AUIPC}
	// Instructions with args: rd, offset(rs1)
	instrLoad = []riscv.Opcode{riscv.LB, riscv.LH, riscv.LW, riscv.LD, riscv.LBU, riscv.LHU, riscv.LWU}
	// Instructions with args: rs2, offset(rs1)
	instrStore = []riscv.Opcode{riscv.SB, riscv.SH, riscv.SW, riscv.SD}
	// Instructions with args: rs1, rs2, target
	instrBranch = []riscv.Opcode{riscv.BLTU, riscv.BGEU}
	// Instructions with args: none
	instrNone = []riscv.Opcode{riscv.FENCE_I, riscv.ECALL, riscv.EBREAK, riscv.URET, riscv.SRET, riscv.MRET, riscv.DRET, riscv.WFI}
	// Instructions with args: [rs1[, rs2]]
	instrAddressFence = []riscv.Opcode{riscv.SFENCE_VMA, riscv.HFENCE_BVMA, riscv.HFENCE_GVMA}
	// Instructions with args: rd, (rs1)
	instrLoadReserved = []riscv.Opcode{riscv.LR_W, riscv.LR_D}
	// Instructions with args: rd, rs2, (rs1)
	instrAtomic = []riscv.Opcode{riscv.SC_W, riscv.AMOSWAP_W, riscv.AMOADD_W, riscv.AMOXOR_W, riscv.AMOAND_W, riscv.AMOOR_W, riscv.AMOMIN_W, riscv.AMOMAX_W, riscv.AMOMINU_W, riscv.AMOMAXU_W,
		riscv.SC_D, riscv.AMOSWAP_D, riscv.AMOADD_D, riscv.AMOXOR_D, riscv.AMOAND_D, riscv.AMOOR_D, riscv.AMOMIN_D, riscv.AMOMAX_D, riscv.AMOMINU_D, riscv.AMOMAXU_D}

	// Instructions with args: frd, offset(rs1)
	instrFloatLoad = []riscv.Opcode{riscv.FLH, riscv.FLW, riscv.FLD, riscv.FLQ}
	// Instructions with args: frs2, offset(rs1)
	instrFloatStore = []riscv.Opcode{riscv.FSH, riscv.FSW, riscv.FSD, riscv.FSQ}
	// Instructions with args: frd, frs1, frs2, frs3, rm
	instrFloatFused = []riscv.Opcode{riscv.FMADD_S, riscv.FMADD_D, riscv.FMADD_H, riscv.FMADD_Q, riscv.FMSUB_S, riscv.FMSUB_D, riscv.FMSUB_H, riscv.FMSUB_Q,
		riscv.FNMSUB_S, riscv.FNMSUB_D, riscv.FNMSUB_H, riscv.FNMSUB_Q, riscv.FNMADD_S, riscv.FNMADD_D, riscv.FNMADD_H, riscv.FNMADD_Q}
	// Instructions with args: frd, frs1, frs2, rm
	instrFloatArith = []riscv.Opcode{riscv.FADD_S, riscv.FADD_D, riscv.FADD_H, riscv.FADD_Q, riscv.FSUB_S, riscv.FSUB_D, riscv.FSUB_H, riscv.FSUB_Q,
		riscv.FMUL_S, riscv.FMUL_D, riscv.FMUL_H, riscv.FMUL_Q, riscv.FDIV_S, riscv.FDIV_D, riscv.FDIV_H, riscv.FDIV_Q}
	// Instructions with args: frd, frs1, frs2
	instrFloatMinMax = []riscv.Opcode{riscv.FMIN_S, riscv.FMIN_D, riscv.FMIN_H, riscv.FMIN_Q, riscv.FMAX_S, riscv.FMAX_D, riscv.FMAX_H, riscv.FMAX_Q}
	// Instructions with args: rd, frs1, frs2
	instrFloatCompare = []riscv.Opcode{riscv.FEQ_S, riscv.FEQ_D, riscv.FEQ_H, riscv.FEQ_Q, riscv.FLT_S, riscv.FLT_D, riscv.FLT_H, riscv.FLT_Q, riscv.FLE_S, riscv.FLE_D, riscv.FLE_H, riscv.FLE_Q}
	// Instructions with args: rd, frs1
	instrFloatToReg = []riscv.Opcode{riscv.FCLASS_S, riscv.FCLASS_D, riscv.FCLASS_H, riscv.FCLASS_Q, riscv.FMV_X_W, riscv.FMV_X_D, riscv.FMV_X_H}
	// Instructions with args: frd, rs1
	instrRegToFloat = []riscv.Opcode{riscv.FMV_W_X, riscv.FMV_D_X, riscv.FMV_H_X}
	// Instructions with args: frd, frs1, rm
	instrFloatUnary = []riscv.Opcode{riscv.FSQRT_S, riscv.FSQRT_D, riscv.FSQRT_H, riscv.FSQRT_Q,
		riscv.FCVT_S_D, riscv.FCVT_S_H, riscv.FCVT_S_Q, riscv.FCVT_D_S, riscv.FCVT_D_H, riscv.FCVT_D_Q,
		riscv.FCVT_H_S, riscv.FCVT_H_D, riscv.FCVT_H_Q, riscv.FCVT_Q_S, riscv.FCVT_Q_D, riscv.FCVT_Q_H}
	// Instructions with args: rd, frs1, rm
	instrFloatToInt = []riscv.Opcode{riscv.FCVT_W_S, riscv.FCVT_WU_S, riscv.FCVT_L_S, riscv.FCVT_LU_S, riscv.FCVT_W_D, riscv.FCVT_WU_D, riscv.FCVT_L_D, riscv.FCVT_LU_D,
		riscv.FCVT_W_H, riscv.FCVT_WU_H, riscv.FCVT_L_H, riscv.FCVT_LU_H, riscv.FCVT_W_Q, riscv.FCVT_WU_Q, riscv.FCVT_L_Q, riscv.FCVT_LU_Q}
	// Instructions with args: frd, rs1, rm
	instrIntToFloat = []riscv.Opcode{riscv.FCVT_S_W, riscv.FCVT_S_WU, riscv.FCVT_S_L, riscv.FCVT_S_LU, riscv.FCVT_D_W, riscv.FCVT_D_WU, riscv.FCVT_D_L, riscv.FCVT_D_LU,
		riscv.FCVT_H_W, riscv.FCVT_H_WU, riscv.FCVT_H_L, riscv.FCVT_H_LU, riscv.FCVT_Q_W, riscv.FCVT_Q_WU, riscv.FCVT_Q_L, riscv.FCVT_Q_LU}
)

// renderers maps every renderable opcode to its rule. Opcodes without an
// entry render as undef.
var renderers = make(map[riscv.Opcode]renderFunc, riscv.NumOpcodes)

func register(fn renderFunc, codes ...riscv.Opcode) {
	for _, code := range codes {
		if _, ok := renderers[code]; ok {
			panic("duplicate renderer for " + code.String())
		}
		renderers[code] = fn
	}
}

func init() {
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xxx(in.Op.String(), in.Rd, in.Rs1, in.Rs2)
	}, instrRegRegReg...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xxi(in.Op.String(), in.Rd, in.Rs1, in.Imm.Int())
	}, instrRegRegImm...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xa(in.Op.String(), in.Rd, in.Imm.Uint())
	}, instrRegUpper...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xm(in.Op.String(), in.Rd, in.Rs1, in.Imm.Int())
	}, instrLoad...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xm(in.Op.String(), in.Rs2, in.Rs1, in.Imm.Int())
	}, instrStore...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xxa(in.Op.String(), in.Rs1, in.Rs2, in.Target())
	}, instrBranch...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.nullary(in.Op.String())
	}, instrNone...)
	register(renderAddressFence, instrAddressFence...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.lr(in.Op.String(), in.Rd, in.Rs1, in.Mod)
	}, instrLoadReserved...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.amo(in.Op.String(), in.Rd, in.Rs2, in.Rs1, in.Mod)
	}, instrAtomic...)

	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fm(in.Op.String(), in.Rd, in.Rs1, in.Imm.Int())
	}, instrFloatLoad...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fm(in.Op.String(), in.Rs2, in.Rs1, in.Imm.Int())
	}, instrFloatStore...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.ffffRM(in.Op.String(), in.Rd, in.Rs1, in.Rs2, in.Rs3, in.Mod)
	}, instrFloatFused...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fffRM(in.Op.String(), in.Rd, in.Rs1, in.Rs2, in.Mod)
	}, instrFloatArith...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fff(in.Op.String(), in.Rd, in.Rs1, in.Rs2)
	}, instrFloatMinMax...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xff(in.Op.String(), in.Rd, in.Rs1, in.Rs2)
	}, instrFloatCompare...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xf(in.Op.String(), in.Rd, in.Rs1)
	}, instrFloatToReg...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fx(in.Op.String(), in.Rd, in.Rs1)
	}, instrRegToFloat...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.ffRM(in.Op.String(), in.Rd, in.Rs1, in.Mod)
	}, instrFloatUnary...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.xfRM(in.Op.String(), in.Rd, in.Rs1, in.Mod)
	}, instrFloatToInt...)
	register(func(f formatter, in riscv.Instruction) Mnemonic {
		return f.fxRM(in.Op.String(), in.Rd, in.Rs1, in.Mod)
	}, instrIntToFloat...)

	registerRules()
	registerCompressed()
}
