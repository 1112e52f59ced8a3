package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eigerco/rvdis/pkg/riscv"
)

type renderCase struct {
	name     string
	in       riscv.Instruction
	expected string
}

func runRenderCases(t *testing.T, r *Renderer, cases []renderCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Render(tc.in).String())
		})
	}
}

func TestIntegerPseudoInstructions(t *testing.T) {
	runRenderCases(t, New(), []renderCase{
		{"nop", riscv.Instruction{Op: riscv.ADDI}, "nop"},
		{"li", riscv.Instruction{Op: riscv.ADDI, Rd: riscv.T0, Imm: 7}, "li t0, 7"},
		{"li into zero", riscv.Instruction{Op: riscv.ADDI, Imm: 5}, "li zero, 5"},
		{"li negative", riscv.Instruction{Op: riscv.ADDI, Rd: riscv.A0, Imm: -1}, "li a0, -1"},
		{"mv", riscv.Instruction{Op: riscv.ADDI, Rd: riscv.A0, Rs1: riscv.A1}, "mv a0, a1"},
		{"addi", riscv.Instruction{Op: riscv.ADDI, Rd: riscv.A0, Rs1: riscv.A1, Imm: -3}, "addi a0, a1, -3"},
		{"sext.w", riscv.Instruction{Op: riscv.ADDIW, Rd: riscv.A0, Rs1: riscv.A0}, "sext.w a0, a0"},
		{"addiw", riscv.Instruction{Op: riscv.ADDIW, Rd: riscv.A0, Rs1: riscv.A0, Imm: 1}, "addiw a0, a0, 1"},
		{"neg", riscv.Instruction{Op: riscv.SUB, Rd: riscv.T1, Rs2: riscv.T2}, "neg t1, t2"},
		{"sub", riscv.Instruction{Op: riscv.SUB, Rd: riscv.A0, Rs1: riscv.A1, Rs2: riscv.A2}, "sub a0, a1, a2"},
		{"negw", riscv.Instruction{Op: riscv.SUBW, Rd: riscv.A0, Rs2: riscv.A1}, "negw a0, a1"},
		{"subw", riscv.Instruction{Op: riscv.SUBW, Rd: riscv.A0, Rs1: riscv.A1, Rs2: riscv.A2}, "subw a0, a1, a2"},
		{"sltz", riscv.Instruction{Op: riscv.SLT, Rd: riscv.A0, Rs1: riscv.A1}, "sltz a0, a1"},
		{"sltz wins over sgtz", riscv.Instruction{Op: riscv.SLT, Rd: riscv.A0}, "sltz a0, zero"},
		{"sgtz", riscv.Instruction{Op: riscv.SLT, Rd: riscv.A0, Rs2: riscv.A1}, "sgtz a0, a1"},
		{"slt", riscv.Instruction{Op: riscv.SLT, Rd: riscv.A0, Rs1: riscv.A1, Rs2: riscv.A2}, "slt a0, a1, a2"},
		{"snez", riscv.Instruction{Op: riscv.SLTU, Rd: riscv.A0, Rs2: riscv.A1}, "snez a0, a1"},
		{"sltu", riscv.Instruction{Op: riscv.SLTU, Rd: riscv.A0, Rs1: riscv.A1, Rs2: riscv.A2}, "sltu a0, a1, a2"},
		{"seqz", riscv.Instruction{Op: riscv.SLTIU, Rd: riscv.A0, Rs1: riscv.A1, Imm: 1}, "seqz a0, a1"},
		{"sltiu", riscv.Instruction{Op: riscv.SLTIU, Rd: riscv.A0, Rs1: riscv.A1, Imm: 5}, "sltiu a0, a1, 5"},
		{"not", riscv.Instruction{Op: riscv.XORI, Rd: riscv.A0, Rs1: riscv.A1, Imm: -1}, "not a0, a1"},
		{"xori", riscv.Instruction{Op: riscv.XORI, Rd: riscv.A0, Rs1: riscv.A1, Imm: 255}, "xori a0, a1, 255"},
		{"andi", riscv.Instruction{Op: riscv.ANDI, Rd: riscv.SP, Rs1: riscv.SP, Imm: -16}, "andi sp, sp, -16"},
		{"slli", riscv.Instruction{Op: riscv.SLLI, Rd: riscv.A0, Rs1: riscv.A1, Imm: 3}, "slli a0, a1, 3"},
		{"sraiw", riscv.Instruction{Op: riscv.SRAIW, Rd: riscv.A0, Rs1: riscv.A1, Imm: 31}, "sraiw a0, a1, 31"},
		{"lui", riscv.Instruction{Op: riscv.LUI, Rd: riscv.A0, Imm: 0x12345}, "lui a0, 0x12345"},
		{"auipc", riscv.Instruction{Op: riscv.AUIPC, Rd: riscv.RA, Imm: 0x10}, "auipc ra, 0x10"},
		{"add", riscv.Instruction{Op: riscv.ADD, Rd: riscv.A0, Rs1: riscv.A1, Rs2: riscv.A2}, "add a0, a1, a2"},
		{"add zero operands are literal", riscv.Instruction{Op: riscv.ADD, Rd: riscv.A0, Rs2: riscv.A2}, "add a0, zero, a2"},
		{"mulhsu", riscv.Instruction{Op: riscv.MULHSU, Rd: riscv.T0, Rs1: riscv.T1, Rs2: riscv.T2}, "mulhsu t0, t1, t2"},
		{"remuw", riscv.Instruction{Op: riscv.REMUW, Rd: riscv.S2, Rs1: riscv.S3, Rs2: riscv.S4}, "remuw s2, s3, s4"},
		{"lw", riscv.Instruction{Op: riscv.LW, Rd: riscv.A0, Rs1: riscv.SP, Imm: -8}, "lw a0, -8(sp)"},
		{"lbu", riscv.Instruction{Op: riscv.LBU, Rd: riscv.A0, Rs1: riscv.A1}, "lbu a0, 0(a1)"},
		{"sd", riscv.Instruction{Op: riscv.SD, Rs2: riscv.RA, Rs1: riscv.SP, Imm: 24}, "sd ra, 24(sp)"},
	})
}

func TestJumpsAndBranches(t *testing.T) {
	runRenderCases(t, New(), []renderCase{
		{"j", riscv.Instruction{Op: riscv.JAL, Imm: 16, PC: 0x1000}, "j 0x1010"},
		{"jal ra", riscv.Instruction{Op: riscv.JAL, Rd: riscv.RA, Imm: -16, PC: 0x1000}, "jal 0xff0"},
		{"jal rd", riscv.Instruction{Op: riscv.JAL, Rd: riscv.T0, Imm: 16, PC: 0x1000}, "jal t0, 0x1010"},
		{"ret", riscv.Instruction{Op: riscv.JALR, Rs1: riscv.RA}, "ret"},
		{"jr with offset", riscv.Instruction{Op: riscv.JALR, Rs1: riscv.RA, Imm: 4}, "jr 4(ra)"},
		{"jr", riscv.Instruction{Op: riscv.JALR, Rs1: riscv.A0}, "jr 0(a0)"},
		{"jalr ra", riscv.Instruction{Op: riscv.JALR, Rd: riscv.RA, Rs1: riscv.A0}, "jalr 0(a0)"},
		{"jalr rd", riscv.Instruction{Op: riscv.JALR, Rd: riscv.T0, Rs1: riscv.A0, Imm: 8}, "jalr t0, 8(a0)"},
		{"beqz", riscv.Instruction{Op: riscv.BEQ, Rs1: riscv.A0, Imm: 16, PC: 0x1000}, "beqz a0, 0x1010"},
		{"beq", riscv.Instruction{Op: riscv.BEQ, Rs1: riscv.A0, Rs2: riscv.A1, Imm: -4, PC: 0x2000}, "beq a0, a1, 0x1ffc"},
		{"bnez", riscv.Instruction{Op: riscv.BNE, Rs1: riscv.A0, Imm: 16, PC: 0x1000}, "bnez a0, 0x1010"},
		{"bne", riscv.Instruction{Op: riscv.BNE, Rs1: riscv.A0, Rs2: riscv.A1, Imm: 16, PC: 0x1000}, "bne a0, a1, 0x1010"},
		{"blez", riscv.Instruction{Op: riscv.BGE, Rs2: riscv.A1, Imm: 16, PC: 0x1000}, "blez a1, 0x1010"},
		{"bgez", riscv.Instruction{Op: riscv.BGE, Rs1: riscv.A0, Imm: 16, PC: 0x1000}, "bgez a0, 0x1010"},
		{"bge", riscv.Instruction{Op: riscv.BGE, Rs1: riscv.A0, Rs2: riscv.A1, Imm: 16, PC: 0x1000}, "bge a0, a1, 0x1010"},
		{"bltz", riscv.Instruction{Op: riscv.BLT, Rs1: riscv.A0, Imm: 16, PC: 0x1000}, "bltz a0, 0x1010"},
		{"bgtz", riscv.Instruction{Op: riscv.BLT, Rs2: riscv.A1, Imm: 16, PC: 0x1000}, "bgtz a1, 0x1010"},
		{"blt", riscv.Instruction{Op: riscv.BLT, Rs1: riscv.A0, Rs2: riscv.A1, Imm: 16, PC: 0x1000}, "blt a0, a1, 0x1010"},
		{"bltu", riscv.Instruction{Op: riscv.BLTU, Rs1: riscv.A0, Rs2: riscv.A1, Imm: 16, PC: 0x1000}, "bltu a0, a1, 0x1010"},
		{"bgeu against zero", riscv.Instruction{Op: riscv.BGEU, Rs1: riscv.A0, Imm: 8, PC: 0x1000}, "bgeu a0, zero, 0x1008"},
	})
}

func TestCSRInstructions(t *testing.T) {
	runRenderCases(t, New(), []renderCase{
		{"csrr", riscv.Instruction{Op: riscv.CSRRS, Rd: riscv.A0, Imm: 0x300}, "csrr a0, mstatus"},
		{"csrr into zero", riscv.Instruction{Op: riscv.CSRRS, Imm: 0x001}, "csrr zero, fflags"},
		{"csrs", riscv.Instruction{Op: riscv.CSRRS, Rs1: riscv.A0, Imm: 0x300}, "csrs mstatus, a0"},
		{"csrrs", riscv.Instruction{Op: riscv.CSRRS, Rd: riscv.A0, Rs1: riscv.A1, Imm: 0x999}, "csrrs a0, 0x999, a1"},
		{"csrw", riscv.Instruction{Op: riscv.CSRRW, Rs1: riscv.A0, Imm: 0x305}, "csrw mtvec, a0"},
		{"csrrw", riscv.Instruction{Op: riscv.CSRRW, Rd: riscv.A0, Rs1: riscv.A1, Imm: 0x340}, "csrrw a0, mscratch, a1"},
		{"csrc", riscv.Instruction{Op: riscv.CSRRC, Rs1: riscv.T0, Imm: 0x344}, "csrc mip, t0"},
		{"csrrc", riscv.Instruction{Op: riscv.CSRRC, Rd: riscv.A0, Rs1: riscv.T0, Imm: 0x344}, "csrrc a0, mip, t0"},
		{"csrwi", riscv.Instruction{Op: riscv.CSRRWI, Imm: 0x002, UImm: 1}, "csrwi frm, 0x1"},
		{"csrci", riscv.Instruction{Op: riscv.CSRRCI, Imm: 0x300, UImm: 8}, "csrci mstatus, 0x8"},
		{"csrrsi", riscv.Instruction{Op: riscv.CSRRSI, Rd: riscv.A0, Imm: 0x300, UImm: 8}, "csrrsi a0, mstatus, 0x8"},
		{"address is masked to 12 bits", riscv.Instruction{Op: riscv.CSRRS, Rd: riscv.A0, Imm: 0x1300}, "csrr a0, mstatus"},
	})
}

func TestSystemInstructions(t *testing.T) {
	runRenderCases(t, New(), []renderCase{
		{"fence", riscv.Instruction{Op: riscv.FENCE, Imm: 0x0ff}, "fence"},
		{"fence.tso", riscv.Instruction{Op: riscv.FENCE, Imm: 0x833}, "fence.tso"},
		{"fence rw", riscv.Instruction{Op: riscv.FENCE, Imm: 0x033}, "fence rw, rw"},
		{"fence partial", riscv.Instruction{Op: riscv.FENCE, Imm: 0x0a1}, "fence ir, w"},
		{"fence empty successor", riscv.Instruction{Op: riscv.FENCE, Imm: 0x010}, "fence w, 0"},
		{"fence.i", riscv.Instruction{Op: riscv.FENCE_I}, "fence.i"},
		{"ecall", riscv.Instruction{Op: riscv.ECALL}, "ecall"},
		{"ebreak", riscv.Instruction{Op: riscv.EBREAK}, "ebreak"},
		{"mret", riscv.Instruction{Op: riscv.MRET}, "mret"},
		{"wfi", riscv.Instruction{Op: riscv.WFI}, "wfi"},
		{"sfence.vma all", riscv.Instruction{Op: riscv.SFENCE_VMA}, "sfence.vma"},
		{"sfence.vma address", riscv.Instruction{Op: riscv.SFENCE_VMA, Rs1: riscv.A0}, "sfence.vma a0"},
		{"sfence.vma address and asid", riscv.Instruction{Op: riscv.SFENCE_VMA, Rs1: riscv.A0, Rs2: riscv.A1}, "sfence.vma a0, a1"},
		{"sfence.vma asid only", riscv.Instruction{Op: riscv.SFENCE_VMA, Rs2: riscv.A1}, "sfence.vma zero, a1"},
		{"hfence.gvma", riscv.Instruction{Op: riscv.HFENCE_GVMA, Rs1: riscv.T0}, "hfence.gvma t0"},
	})
}

func TestAtomicInstructions(t *testing.T) {
	runRenderCases(t, New(), []renderCase{
		{"lr.w", riscv.Instruction{Op: riscv.LR_W, Rd: riscv.A0, Rs1: riscv.A1}, "lr.w a0, (a1)"},
		{"lr.w.rl", riscv.Instruction{Op: riscv.LR_W, Rd: riscv.A0, Rs1: riscv.A1, Mod: 1}, "lr.w.rl a0, (a1)"},
		{"lr.w.aq", riscv.Instruction{Op: riscv.LR_W, Rd: riscv.A0, Rs1: riscv.A1, Mod: 2}, "lr.w.aq a0, (a1)"},
		{"lr.d.aq.rl", riscv.Instruction{Op: riscv.LR_D, Rd: riscv.A0, Rs1: riscv.A1, Mod: 3}, "lr.d.aq.rl a0, (a1)"},
		{"sc.d.rl", riscv.Instruction{Op: riscv.SC_D, Rd: riscv.T0, Rs2: riscv.A2, Rs1: riscv.A0, Mod: 1}, "sc.d.rl t0, a2, (a0)"},
		{"amoswap.d", riscv.Instruction{Op: riscv.AMOSWAP_D, Rd: riscv.A0, Rs2: riscv.A1, Rs1: riscv.A2}, "amoswap.d a0, a1, (a2)"},
		{"amoadd.w.aq.rl", riscv.Instruction{Op: riscv.AMOADD_W, Rd: riscv.A0, Rs2: riscv.A1, Rs1: riscv.A2, Mod: 3}, "amoadd.w.aq.rl a0, a1, (a2)"},
		{"amomaxu.w.aq", riscv.Instruction{Op: riscv.AMOMAXU_W, Rd: riscv.A0, Rs2: riscv.A1, Rs1: riscv.A2, Mod: 2}, "amomaxu.w.aq a0, a1, (a2)"},
		{"upper modifier bits ignored", riscv.Instruction{Op: riscv.AMOOR_D, Rd: riscv.A0, Rs2: riscv.A1, Rs1: riscv.A2, Mod: 0b1101}, "amoor.d.rl a0, a1, (a2)"},
	})
}

func TestFloatInstructions(t *testing.T) {
	runRenderCases(t, New(), []renderCase{
		{"flw", riscv.Instruction{Op: riscv.FLW, Rd: 10, Rs1: riscv.SP, Imm: 4}, "flw fa0, 4(sp)"},
		{"fsd", riscv.Instruction{Op: riscv.FSD, Rs2: 8, Rs1: riscv.SP, Imm: 16}, "fsd fs0, 16(sp)"},
		{"fmadd.s rne", riscv.Instruction{Op: riscv.FMADD_S, Rd: 10, Rs1: 11, Rs2: 12, Rs3: 13}, "fmadd.s fa0, fa1, fa2, fa3, rne"},
		{"fnmsub.d dyn", riscv.Instruction{Op: riscv.FNMSUB_D, Rd: 10, Rs1: 11, Rs2: 12, Rs3: 13, Mod: 7}, "fnmsub.d fa0, fa1, fa2, fa3"},
		{"fadd.d rtz", riscv.Instruction{Op: riscv.FADD_D, Rd: 10, Rs1: 11, Rs2: 12, Mod: 1}, "fadd.d fa0, fa1, fa2, rtz"},
		{"fadd.s reserved", riscv.Instruction{Op: riscv.FADD_S, Rd: 10, Rs1: 11, Rs2: 12, Mod: 5}, "fadd.s fa0, fa1, fa2, inv1"},
		{"fmul.h reserved", riscv.Instruction{Op: riscv.FMUL_H, Rd: 10, Rs1: 11, Rs2: 12, Mod: 6}, "fmul.h fa0, fa1, fa2, inv2"},
		{"fdiv.q dyn", riscv.Instruction{Op: riscv.FDIV_Q, Rd: 10, Rs1: 11, Rs2: 12, Mod: 7}, "fdiv.q fa0, fa1, fa2"},
		{"fsqrt.s", riscv.Instruction{Op: riscv.FSQRT_S, Rd: 10, Rs1: 11, Mod: 2}, "fsqrt.s fa0, fa1, rdn"},
		{"fmin.s", riscv.Instruction{Op: riscv.FMIN_S, Rd: 10, Rs1: 11, Rs2: 12, Mod: 3}, "fmin.s fa0, fa1, fa2"},
		{"fmv.d", riscv.Instruction{Op: riscv.FSGNJ_D, Rd: 10, Rs1: 11, Rs2: 11}, "fmv.d fa0, fa1"},
		{"fneg.s", riscv.Instruction{Op: riscv.FSGNJN_S, Rd: 10, Rs1: 11, Rs2: 11}, "fneg.s fa0, fa1"},
		{"fabs.q", riscv.Instruction{Op: riscv.FSGNJX_Q, Rd: 10, Rs1: 11, Rs2: 11}, "fabs.q fa0, fa1"},
		{"fsgnj.s", riscv.Instruction{Op: riscv.FSGNJ_S, Rd: 10, Rs1: 11, Rs2: 12}, "fsgnj.s fa0, fa1, fa2"},
		{"fclass.s", riscv.Instruction{Op: riscv.FCLASS_S, Rd: riscv.A0, Rs1: 11}, "fclass.s a0, fa1"},
		{"feq.d", riscv.Instruction{Op: riscv.FEQ_D, Rd: riscv.A0, Rs1: 11, Rs2: 12}, "feq.d a0, fa1, fa2"},
		{"fcvt.s.d", riscv.Instruction{Op: riscv.FCVT_S_D, Rd: 10, Rs1: 11, Mod: 7}, "fcvt.s.d fa0, fa1"},
		{"fcvt.w.s", riscv.Instruction{Op: riscv.FCVT_W_S, Rd: riscv.A0, Rs1: 11, Mod: 1}, "fcvt.w.s a0, fa1, rtz"},
		{"fcvt.d.lu", riscv.Instruction{Op: riscv.FCVT_D_LU, Rd: 10, Rs1: riscv.A1, Mod: 4}, "fcvt.d.lu fa0, a1, rmm"},
		{"fmv.x.w", riscv.Instruction{Op: riscv.FMV_X_W, Rd: riscv.A0, Rs1: 11}, "fmv.x.w a0, fa1"},
		{"fmv.d.x", riscv.Instruction{Op: riscv.FMV_D_X, Rd: 10, Rs1: riscv.A1}, "fmv.d.x fa0, a1"},
	})
}

func TestCompressedInstructions(t *testing.T) {
	runRenderCases(t, New(), []renderCase{
		{"c.unimp", riscv.Instruction{Op: riscv.C_UNIMP}, "c.unimp"},
		{"c.addi4spn", riscv.Instruction{Op: riscv.C_ADDI4SPN, Rd: riscv.S0, Imm: 16}, "c.addi4spn s0, sp, 16"},
		{"c.lw", riscv.Instruction{Op: riscv.C_LW, Rd: riscv.A0, Rs1: riscv.A1, Imm: 4}, "c.lw a0, 4(a1)"},
		{"c.fld", riscv.Instruction{Op: riscv.C_FLD, Rd: 10, Rs1: riscv.S0, Imm: 8}, "c.fld fa0, 8(s0)"},
		{"c.sd", riscv.Instruction{Op: riscv.C_SD, Rs2: riscv.A0, Rs1: riscv.S1}, "c.sd a0, 0(s1)"},
		{"c.fsw", riscv.Instruction{Op: riscv.C_FSW, Rs2: 11, Rs1: riscv.A0, Imm: 12}, "c.fsw fa1, 12(a0)"},
		{"c.nop", riscv.Instruction{Op: riscv.C_NOP}, "c.nop"},
		{"c.nop hint", riscv.Instruction{Op: riscv.C_NOP, Imm: 3}, "c.nop 3"},
		{"c.addi", riscv.Instruction{Op: riscv.C_ADDI, Rd: riscv.A0, Rs1: riscv.A0, Imm: -1}, "c.addi a0, -1"},
		{"c.li", riscv.Instruction{Op: riscv.C_LI, Rd: riscv.A5, Imm: 3}, "c.li a5, 3"},
		{"c.addi16sp", riscv.Instruction{Op: riscv.C_ADDI16SP, Rd: riscv.SP, Imm: -64}, "c.addi16sp sp, -64"},
		{"c.lui", riscv.Instruction{Op: riscv.C_LUI, Rd: riscv.A0, Imm: 0x1f}, "c.lui a0, 0x1f"},
		{"c.srli", riscv.Instruction{Op: riscv.C_SRLI, Rd: riscv.S0, Imm: 2}, "c.srli s0, 2"},
		{"c.slli64", riscv.Instruction{Op: riscv.C_SLLI64, Rd: riscv.A0}, "c.slli64 a0"},
		{"c.sub", riscv.Instruction{Op: riscv.C_SUB, Rd: riscv.S0, Rs2: riscv.A0}, "c.sub s0, a0"},
		{"c.mv", riscv.Instruction{Op: riscv.C_MV, Rd: riscv.A0, Rs2: riscv.A1}, "c.mv a0, a1"},
		{"c.add", riscv.Instruction{Op: riscv.C_ADD, Rd: riscv.A0, Rs2: riscv.A1}, "c.add a0, a1"},
		{"c.j", riscv.Instruction{Op: riscv.C_J, Imm: -2, PC: 0x100}, "c.j 0xfe"},
		{"c.jal", riscv.Instruction{Op: riscv.C_JAL, Imm: 0x20, PC: 0x100}, "c.jal 0x120"},
		{"c.beqz", riscv.Instruction{Op: riscv.C_BEQZ, Rs1: riscv.S0, Imm: 8, PC: 0x100}, "c.beqz s0, 0x108"},
		{"c.jr", riscv.Instruction{Op: riscv.C_JR, Rs1: riscv.RA}, "c.jr ra"},
		{"c.jalr", riscv.Instruction{Op: riscv.C_JALR, Rs1: riscv.A0}, "c.jalr a0"},
		{"c.ebreak", riscv.Instruction{Op: riscv.C_EBREAK}, "c.ebreak"},
		{"c.lwsp", riscv.Instruction{Op: riscv.C_LWSP, Rd: riscv.A0, Imm: 12}, "c.lwsp a0, 12(sp)"},
		{"c.fldsp", riscv.Instruction{Op: riscv.C_FLDSP, Rd: 8, Imm: 8}, "c.fldsp fs0, 8(sp)"},
		{"c.sdsp", riscv.Instruction{Op: riscv.C_SDSP, Rs2: riscv.RA, Imm: 8}, "c.sdsp ra, 8(sp)"},
		{"c.fswsp", riscv.Instruction{Op: riscv.C_FSWSP, Rs2: 0, Imm: 4}, "c.fswsp ft0, 4(sp)"},
	})
}

func TestNumericDisplayMode(t *testing.T) {
	runRenderCases(t, New(WithDisplayMode(riscv.NumericNames)), []renderCase{
		{"li", riscv.Instruction{Op: riscv.ADDI, Rd: riscv.T0, Imm: 7}, "li x5, 7"},
		{"lw", riscv.Instruction{Op: riscv.LW, Rd: riscv.A0, Rs1: riscv.SP, Imm: -8}, "lw x10, -8(x2)"},
		{"fadd.s", riscv.Instruction{Op: riscv.FADD_S, Rd: 10, Rs1: 11, Rs2: 12, Mod: 1}, "fadd.s f10, f11, f12, rtz"},
		{"csrr keeps csr names", riscv.Instruction{Op: riscv.CSRRS, Rd: riscv.A0, Imm: 0x300}, "csrr x10, mstatus"},
		{"amoadd.w.aq", riscv.Instruction{Op: riscv.AMOADD_W, Rd: riscv.A0, Rs2: riscv.A1, Rs1: riscv.A2, Mod: 2}, "amoadd.w.aq x10, x11, (x12)"},
	})
}

func TestFenceSet(t *testing.T) {
	assert.Equal(t, "iorw", fenceSet(0b1111))
	assert.Equal(t, "or", fenceSet(0b0110))
	assert.Equal(t, "0", fenceSet(0))
}

func TestFloatFormat(t *testing.T) {
	assert.Equal(t, "s", floatFormat(riscv.FSGNJ_S))
	assert.Equal(t, "q", floatFormat(riscv.FSGNJX_Q))
}
