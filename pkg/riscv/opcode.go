package riscv

import "fmt"

// Opcode identifies a decoded instruction. The zero value is UNKNOWN.
type Opcode uint16

const (
	UNKNOWN Opcode = iota

	// integer
	LUI
	AUIPC
	ADDI
	SLTI
	SLTIU
	XORI
	ORI
	ANDI
	SLLI
	SRLI
	SRAI
	ADD
	SUB
	SLL
	SLT
	SLTU
	XOR
	SRL
	SRA
	OR
	AND
	ADDIW
	SLLIW
	SRLIW
	SRAIW
	ADDW
	SUBW
	SLLW
	SRLW
	SRAW

	// load/store
	LB
	LH
	LW
	LD
	LBU
	LHU
	LWU
	SB
	SH
	SW
	SD

	// branch/jump
	JAL
	JALR
	BEQ
	BNE
	BLT
	BGE
	BLTU
	BGEU

	// multiply/divide
	MUL
	MULH
	MULHSU
	MULHU
	DIV
	DIVU
	REM
	REMU
	MULW
	DIVW
	DIVUW
	REMW
	REMUW

	// atomic
	LR_W
	SC_W
	AMOSWAP_W
	AMOADD_W
	AMOXOR_W
	AMOAND_W
	AMOOR_W
	AMOMIN_W
	AMOMAX_W
	AMOMINU_W
	AMOMAXU_W
	LR_D
	SC_D
	AMOSWAP_D
	AMOADD_D
	AMOXOR_D
	AMOAND_D
	AMOOR_D
	AMOMIN_D
	AMOMAX_D
	AMOMINU_D
	AMOMAXU_D

	// csr
	CSRRW
	CSRRS
	CSRRC
	CSRRWI
	CSRRSI
	CSRRCI

	// system
	FENCE
	FENCE_I
	ECALL
	EBREAK
	URET
	SRET
	MRET
	DRET
	WFI
	SFENCE_VMA
	HFENCE_BVMA
	HFENCE_GVMA

	// floating point
	FLH
	FLW
	FLD
	FLQ
	FSH
	FSW
	FSD
	FSQ
	FMADD_S
	FMADD_D
	FMADD_H
	FMADD_Q
	FMSUB_S
	FMSUB_D
	FMSUB_H
	FMSUB_Q
	FNMSUB_S
	FNMSUB_D
	FNMSUB_H
	FNMSUB_Q
	FNMADD_S
	FNMADD_D
	FNMADD_H
	FNMADD_Q
	FADD_S
	FADD_D
	FADD_H
	FADD_Q
	FSUB_S
	FSUB_D
	FSUB_H
	FSUB_Q
	FMUL_S
	FMUL_D
	FMUL_H
	FMUL_Q
	FDIV_S
	FDIV_D
	FDIV_H
	FDIV_Q
	FSQRT_S
	FSQRT_D
	FSQRT_H
	FSQRT_Q
	FMIN_S
	FMIN_D
	FMIN_H
	FMIN_Q
	FMAX_S
	FMAX_D
	FMAX_H
	FMAX_Q
	FSGNJ_S
	FSGNJ_D
	FSGNJ_H
	FSGNJ_Q
	FSGNJN_S
	FSGNJN_D
	FSGNJN_H
	FSGNJN_Q
	FSGNJX_S
	FSGNJX_D
	FSGNJX_H
	FSGNJX_Q
	FCLASS_S
	FCLASS_D
	FCLASS_H
	FCLASS_Q
	FEQ_S
	FEQ_D
	FEQ_H
	FEQ_Q
	FLT_S
	FLT_D
	FLT_H
	FLT_Q
	FLE_S
	FLE_D
	FLE_H
	FLE_Q
	FCVT_S_D
	FCVT_S_H
	FCVT_S_Q
	FCVT_D_S
	FCVT_D_H
	FCVT_D_Q
	FCVT_H_S
	FCVT_H_D
	FCVT_H_Q
	FCVT_Q_S
	FCVT_Q_D
	FCVT_Q_H
	FCVT_W_S
	FCVT_WU_S
	FCVT_L_S
	FCVT_LU_S
	FCVT_W_D
	FCVT_WU_D
	FCVT_L_D
	FCVT_LU_D
	FCVT_W_H
	FCVT_WU_H
	FCVT_L_H
	FCVT_LU_H
	FCVT_W_Q
	FCVT_WU_Q
	FCVT_L_Q
	FCVT_LU_Q
	FCVT_S_W
	FCVT_S_WU
	FCVT_S_L
	FCVT_S_LU
	FCVT_D_W
	FCVT_D_WU
	FCVT_D_L
	FCVT_D_LU
	FCVT_H_W
	FCVT_H_WU
	FCVT_H_L
	FCVT_H_LU
	FCVT_Q_W
	FCVT_Q_WU
	FCVT_Q_L
	FCVT_Q_LU
	FMV_X_W
	FMV_X_D
	FMV_X_H
	FMV_W_X
	FMV_D_X
	FMV_H_X

	// compressed
	C_UNIMP
	C_ADDI4SPN
	C_FLD
	C_LQ
	C_LW
	C_FLW
	C_LD
	C_FSD
	C_SQ
	C_SW
	C_FSW
	C_SD
	C_NOP
	C_ADDI
	C_JAL
	C_ADDIW
	C_LI
	C_ADDI16SP
	C_LUI
	C_SRLI
	C_SRLI64
	C_SRAI
	C_SRAI64
	C_ANDI
	C_SUB
	C_XOR
	C_OR
	C_AND
	C_SUBW
	C_ADDW
	C_J
	C_BEQZ
	C_BNEZ
	C_SLLI
	C_SLLI64
	C_FLDSP
	C_LQSP
	C_LWSP
	C_FLWSP
	C_LDSP
	C_JR
	C_MV
	C_EBREAK
	C_JALR
	C_ADD
	C_FSDSP
	C_SQSP
	C_SWSP
	C_FSWSP
	C_SDSP

	// bit manipulation
	BMATFLIP
	CRC32_D
	CRC32C_D
	BMATOR
	BMATXOR
	SLLI_UW
	ADD_UW
	SLOW
	SROW
	ROLW
	RORW
	SBCLRW
	SBSETW
	SBINVW
	SBEXTW
	GORCW
	GREVW
	SLOIW
	SROIW
	RORIW
	SBCLRIW
	SBSETIW
	SBINVIW
	GORCIW
	GREVIW
	FSLW
	FSRW
	FSRIW
	CLZW
	CTZW
	CPOPW
	SH1ADD_UW
	SH2ADD_UW
	SH3ADD_UW
	SHFLW
	UNSHFLW
	BCOMPRESSW
	BDECOMPRESSW
	PACKW
	PACKUW
	BFPW
	XPERM_W

	// NumOpcodes is one past the last declared opcode.
	NumOpcodes
)

var opcodeNames = [NumOpcodes]string{
	UNKNOWN:      "unknown",
	LUI:          "lui",
	AUIPC:        "auipc",
	ADDI:         "addi",
	SLTI:         "slti",
	SLTIU:        "sltiu",
	XORI:         "xori",
	ORI:          "ori",
	ANDI:         "andi",
	SLLI:         "slli",
	SRLI:         "srli",
	SRAI:         "srai",
	ADD:          "add",
	SUB:          "sub",
	SLL:          "sll",
	SLT:          "slt",
	SLTU:         "sltu",
	XOR:          "xor",
	SRL:          "srl",
	SRA:          "sra",
	OR:           "or",
	AND:          "and",
	ADDIW:        "addiw",
	SLLIW:        "slliw",
	SRLIW:        "srliw",
	SRAIW:        "sraiw",
	ADDW:         "addw",
	SUBW:         "subw",
	SLLW:         "sllw",
	SRLW:         "srlw",
	SRAW:         "sraw",
	LB:           "lb",
	LH:           "lh",
	LW:           "lw",
	LD:           "ld",
	LBU:          "lbu",
	LHU:          "lhu",
	LWU:          "lwu",
	SB:           "sb",
	SH:           "sh",
	SW:           "sw",
	SD:           "sd",
	JAL:          "jal",
	JALR:         "jalr",
	BEQ:          "beq",
	BNE:          "bne",
	BLT:          "blt",
	BGE:          "bge",
	BLTU:         "bltu",
	BGEU:         "bgeu",
	MUL:          "mul",
	MULH:         "mulh",
	MULHSU:       "mulhsu",
	MULHU:        "mulhu",
	DIV:          "div",
	DIVU:         "divu",
	REM:          "rem",
	REMU:         "remu",
	MULW:         "mulw",
	DIVW:         "divw",
	DIVUW:        "divuw",
	REMW:         "remw",
	REMUW:        "remuw",
	LR_W:         "lr.w",
	SC_W:         "sc.w",
	AMOSWAP_W:    "amoswap.w",
	AMOADD_W:     "amoadd.w",
	AMOXOR_W:     "amoxor.w",
	AMOAND_W:     "amoand.w",
	AMOOR_W:      "amoor.w",
	AMOMIN_W:     "amomin.w",
	AMOMAX_W:     "amomax.w",
	AMOMINU_W:    "amominu.w",
	AMOMAXU_W:    "amomaxu.w",
	LR_D:         "lr.d",
	SC_D:         "sc.d",
	AMOSWAP_D:    "amoswap.d",
	AMOADD_D:     "amoadd.d",
	AMOXOR_D:     "amoxor.d",
	AMOAND_D:     "amoand.d",
	AMOOR_D:      "amoor.d",
	AMOMIN_D:     "amomin.d",
	AMOMAX_D:     "amomax.d",
	AMOMINU_D:    "amominu.d",
	AMOMAXU_D:    "amomaxu.d",
	CSRRW:        "csrrw",
	CSRRS:        "csrrs",
	CSRRC:        "csrrc",
	CSRRWI:       "csrrwi",
	CSRRSI:       "csrrsi",
	CSRRCI:       "csrrci",
	FENCE:        "fence",
	FENCE_I:      "fence.i",
	ECALL:        "ecall",
	EBREAK:       "ebreak",
	URET:         "uret",
	SRET:         "sret",
	MRET:         "mret",
	DRET:         "dret",
	WFI:          "wfi",
	SFENCE_VMA:   "sfence.vma",
	HFENCE_BVMA:  "hfence.bvma",
	HFENCE_GVMA:  "hfence.gvma",
	FLH:          "flh",
	FLW:          "flw",
	FLD:          "fld",
	FLQ:          "flq",
	FSH:          "fsh",
	FSW:          "fsw",
	FSD:          "fsd",
	FSQ:          "fsq",
	FMADD_S:      "fmadd.s",
	FMADD_D:      "fmadd.d",
	FMADD_H:      "fmadd.h",
	FMADD_Q:      "fmadd.q",
	FMSUB_S:      "fmsub.s",
	FMSUB_D:      "fmsub.d",
	FMSUB_H:      "fmsub.h",
	FMSUB_Q:      "fmsub.q",
	FNMSUB_S:     "fnmsub.s",
	FNMSUB_D:     "fnmsub.d",
	FNMSUB_H:     "fnmsub.h",
	FNMSUB_Q:     "fnmsub.q",
	FNMADD_S:     "fnmadd.s",
	FNMADD_D:     "fnmadd.d",
	FNMADD_H:     "fnmadd.h",
	FNMADD_Q:     "fnmadd.q",
	FADD_S:       "fadd.s",
	FADD_D:       "fadd.d",
	FADD_H:       "fadd.h",
	FADD_Q:       "fadd.q",
	FSUB_S:       "fsub.s",
	FSUB_D:       "fsub.d",
	FSUB_H:       "fsub.h",
	FSUB_Q:       "fsub.q",
	FMUL_S:       "fmul.s",
	FMUL_D:       "fmul.d",
	FMUL_H:       "fmul.h",
	FMUL_Q:       "fmul.q",
	FDIV_S:       "fdiv.s",
	FDIV_D:       "fdiv.d",
	FDIV_H:       "fdiv.h",
	FDIV_Q:       "fdiv.q",
	FSQRT_S:      "fsqrt.s",
	FSQRT_D:      "fsqrt.d",
	FSQRT_H:      "fsqrt.h",
	FSQRT_Q:      "fsqrt.q",
	FMIN_S:       "fmin.s",
	FMIN_D:       "fmin.d",
	FMIN_H:       "fmin.h",
	FMIN_Q:       "fmin.q",
	FMAX_S:       "fmax.s",
	FMAX_D:       "fmax.d",
	FMAX_H:       "fmax.h",
	FMAX_Q:       "fmax.q",
	FSGNJ_S:      "fsgnj.s",
	FSGNJ_D:      "fsgnj.d",
	FSGNJ_H:      "fsgnj.h",
	FSGNJ_Q:      "fsgnj.q",
	FSGNJN_S:     "fsgnjn.s",
	FSGNJN_D:     "fsgnjn.d",
	FSGNJN_H:     "fsgnjn.h",
	FSGNJN_Q:     "fsgnjn.q",
	FSGNJX_S:     "fsgnjx.s",
	FSGNJX_D:     "fsgnjx.d",
	FSGNJX_H:     "fsgnjx.h",
	FSGNJX_Q:     "fsgnjx.q",
	FCLASS_S:     "fclass.s",
	FCLASS_D:     "fclass.d",
	FCLASS_H:     "fclass.h",
	FCLASS_Q:     "fclass.q",
	FEQ_S:        "feq.s",
	FEQ_D:        "feq.d",
	FEQ_H:        "feq.h",
	FEQ_Q:        "feq.q",
	FLT_S:        "flt.s",
	FLT_D:        "flt.d",
	FLT_H:        "flt.h",
	FLT_Q:        "flt.q",
	FLE_S:        "fle.s",
	FLE_D:        "fle.d",
	FLE_H:        "fle.h",
	FLE_Q:        "fle.q",
	FCVT_S_D:     "fcvt.s.d",
	FCVT_S_H:     "fcvt.s.h",
	FCVT_S_Q:     "fcvt.s.q",
	FCVT_D_S:     "fcvt.d.s",
	FCVT_D_H:     "fcvt.d.h",
	FCVT_D_Q:     "fcvt.d.q",
	FCVT_H_S:     "fcvt.h.s",
	FCVT_H_D:     "fcvt.h.d",
	FCVT_H_Q:     "fcvt.h.q",
	FCVT_Q_S:     "fcvt.q.s",
	FCVT_Q_D:     "fcvt.q.d",
	FCVT_Q_H:     "fcvt.q.h",
	FCVT_W_S:     "fcvt.w.s",
	FCVT_WU_S:    "fcvt.wu.s",
	FCVT_L_S:     "fcvt.l.s",
	FCVT_LU_S:    "fcvt.lu.s",
	FCVT_W_D:     "fcvt.w.d",
	FCVT_WU_D:    "fcvt.wu.d",
	FCVT_L_D:     "fcvt.l.d",
	FCVT_LU_D:    "fcvt.lu.d",
	FCVT_W_H:     "fcvt.w.h",
	FCVT_WU_H:    "fcvt.wu.h",
	FCVT_L_H:     "fcvt.l.h",
	FCVT_LU_H:    "fcvt.lu.h",
	FCVT_W_Q:     "fcvt.w.q",
	FCVT_WU_Q:    "fcvt.wu.q",
	FCVT_L_Q:     "fcvt.l.q",
	FCVT_LU_Q:    "fcvt.lu.q",
	FCVT_S_W:     "fcvt.s.w",
	FCVT_S_WU:    "fcvt.s.wu",
	FCVT_S_L:     "fcvt.s.l",
	FCVT_S_LU:    "fcvt.s.lu",
	FCVT_D_W:     "fcvt.d.w",
	FCVT_D_WU:    "fcvt.d.wu",
	FCVT_D_L:     "fcvt.d.l",
	FCVT_D_LU:    "fcvt.d.lu",
	FCVT_H_W:     "fcvt.h.w",
	FCVT_H_WU:    "fcvt.h.wu",
	FCVT_H_L:     "fcvt.h.l",
	FCVT_H_LU:    "fcvt.h.lu",
	FCVT_Q_W:     "fcvt.q.w",
	FCVT_Q_WU:    "fcvt.q.wu",
	FCVT_Q_L:     "fcvt.q.l",
	FCVT_Q_LU:    "fcvt.q.lu",
	FMV_X_W:      "fmv.x.w",
	FMV_X_D:      "fmv.x.d",
	FMV_X_H:      "fmv.x.h",
	FMV_W_X:      "fmv.w.x",
	FMV_D_X:      "fmv.d.x",
	FMV_H_X:      "fmv.h.x",
	C_UNIMP:      "c.unimp",
	C_ADDI4SPN:   "c.addi4spn",
	C_FLD:        "c.fld",
	C_LQ:         "c.lq",
	C_LW:         "c.lw",
	C_FLW:        "c.flw",
	C_LD:         "c.ld",
	C_FSD:        "c.fsd",
	C_SQ:         "c.sq",
	C_SW:         "c.sw",
	C_FSW:        "c.fsw",
	C_SD:         "c.sd",
	C_NOP:        "c.nop",
	C_ADDI:       "c.addi",
	C_JAL:        "c.jal",
	C_ADDIW:      "c.addiw",
	C_LI:         "c.li",
	C_ADDI16SP:   "c.addi16sp",
	C_LUI:        "c.lui",
	C_SRLI:       "c.srli",
	C_SRLI64:     "c.srli64",
	C_SRAI:       "c.srai",
	C_SRAI64:     "c.srai64",
	C_ANDI:       "c.andi",
	C_SUB:        "c.sub",
	C_XOR:        "c.xor",
	C_OR:         "c.or",
	C_AND:        "c.and",
	C_SUBW:       "c.subw",
	C_ADDW:       "c.addw",
	C_J:          "c.j",
	C_BEQZ:       "c.beqz",
	C_BNEZ:       "c.bnez",
	C_SLLI:       "c.slli",
	C_SLLI64:     "c.slli64",
	C_FLDSP:      "c.fldsp",
	C_LQSP:       "c.lqsp",
	C_LWSP:       "c.lwsp",
	C_FLWSP:      "c.flwsp",
	C_LDSP:       "c.ldsp",
	C_JR:         "c.jr",
	C_MV:         "c.mv",
	C_EBREAK:     "c.ebreak",
	C_JALR:       "c.jalr",
	C_ADD:        "c.add",
	C_FSDSP:      "c.fsdsp",
	C_SQSP:       "c.sqsp",
	C_SWSP:       "c.swsp",
	C_FSWSP:      "c.fswsp",
	C_SDSP:       "c.sdsp",
	BMATFLIP:     "bmatflip",
	CRC32_D:      "crc32.d",
	CRC32C_D:     "crc32c.d",
	BMATOR:       "bmator",
	BMATXOR:      "bmatxor",
	SLLI_UW:      "slli.uw",
	ADD_UW:       "add.uw",
	SLOW:         "slow",
	SROW:         "srow",
	ROLW:         "rolw",
	RORW:         "rorw",
	SBCLRW:       "sbclrw",
	SBSETW:       "sbsetw",
	SBINVW:       "sbinvw",
	SBEXTW:       "sbextw",
	GORCW:        "gorcw",
	GREVW:        "grevw",
	SLOIW:        "sloiw",
	SROIW:        "sroiw",
	RORIW:        "roriw",
	SBCLRIW:      "sbclriw",
	SBSETIW:      "sbsetiw",
	SBINVIW:      "sbinviw",
	GORCIW:       "gorciw",
	GREVIW:       "greviw",
	FSLW:         "fslw",
	FSRW:         "fsrw",
	FSRIW:        "fsriw",
	CLZW:         "clzw",
	CTZW:         "ctzw",
	CPOPW:        "cpopw",
	SH1ADD_UW:    "sh1add.uw",
	SH2ADD_UW:    "sh2add.uw",
	SH3ADD_UW:    "sh3add.uw",
	SHFLW:        "shflw",
	UNSHFLW:      "unshflw",
	BCOMPRESSW:   "bcompressw",
	BDECOMPRESSW: "bdecompressw",
	PACKW:        "packw",
	PACKUW:       "packuw",
	BFPW:         "bfpw",
	XPERM_W:      "xperm.w",
}

// String returns the literal assembler name of the opcode.
func (op Opcode) String() string {
	if op >= NumOpcodes || opcodeNames[op] == "" {
		return fmt.Sprintf("Opcode(%d)", uint16(op))
	}
	return opcodeNames[op]
}

// Class groups opcodes the way the ISA manual groups instructions.
type Class uint8

const (
	ClassUnknown Class = iota
	ClassInteger
	ClassLoadStore
	ClassBranch
	ClassMulDiv
	ClassAtomic
	ClassCSR
	ClassSystem
	ClassFloat
	ClassCompressed
	ClassBitManip
)

var classNames = [...]string{
	ClassUnknown:    "unknown",
	ClassInteger:    "integer",
	ClassLoadStore:  "load/store",
	ClassBranch:     "branch/jump",
	ClassMulDiv:     "multiply/divide",
	ClassAtomic:     "atomic",
	ClassCSR:        "csr",
	ClassSystem:     "system",
	ClassFloat:      "floating point",
	ClassCompressed: "compressed",
	ClassBitManip:   "bit manipulation",
}

func (c Class) String() string {
	if int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", uint8(c))
	}
	return classNames[c]
}

// Class reports which instruction class the opcode belongs to.
func (op Opcode) Class() Class {
	switch {
	case op >= LUI && op <= SRAW:
		return ClassInteger
	case op >= LB && op <= SD:
		return ClassLoadStore
	case op >= JAL && op <= BGEU:
		return ClassBranch
	case op >= MUL && op <= REMUW:
		return ClassMulDiv
	case op >= LR_W && op <= AMOMAXU_D:
		return ClassAtomic
	case op >= CSRRW && op <= CSRRCI:
		return ClassCSR
	case op >= FENCE && op <= HFENCE_GVMA:
		return ClassSystem
	case op >= FLH && op <= FMV_H_X:
		return ClassFloat
	case op >= C_UNIMP && op <= C_SDSP:
		return ClassCompressed
	case op >= BMATFLIP && op <= XPERM_W:
		return ClassBitManip
	}
	return ClassUnknown
}
