package disasm

import (
	"strconv"

	"github.com/eigerco/rvdis/pkg/riscv"
)

// Shape names spell the operand kinds in order: x integer register,
// f float register, i signed decimal immediate, a hex address or unsigned
// immediate, m memory operand offset(base), c CSR, u hex CSR mask.
// An RM suffix appends the rounding mode.

// formatter builds operands and mnemonics for one register display mode.
type formatter struct {
	mode riscv.DisplayMode
}

func (f formatter) reg(r riscv.Reg) string {
	return riscv.RegisterName(r, f.mode)
}

func (f formatter) freg(r riscv.Reg) string {
	return riscv.FloatRegisterName(r, f.mode)
}

func (f formatter) mem(base riscv.Reg, offset int64) string {
	return simm(offset) + "(" + f.reg(base) + ")"
}

// amem is the offset-less address operand of LR, SC and AMO instructions.
func (f formatter) amem(base riscv.Reg) string {
	return "(" + f.reg(base) + ")"
}

func simm(v int64) string {
	return strconv.FormatInt(v, 10)
}

func uhex(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func csr(addr uint64) string {
	return riscv.CSRName(addr)
}

// rounding returns "" for the dynamic mode, which is left implicit.
func rounding(mod uint8) string {
	rm := riscv.RoundingModeOf(mod)
	if rm == riscv.DYN {
		return ""
	}
	return rm.String()
}

// emit packs operands into a Mnemonic. Empty operands are skipped so that
// used slots stay contiguous.
func emit(name string, args ...string) Mnemonic {
	m := Mnemonic{Op: name}
	n := 0
	for _, arg := range args {
		if arg == "" || n == MaxArgs {
			continue
		}
		m.Args[n] = arg
		n++
	}
	return m
}

func (f formatter) nullary(name string) Mnemonic {
	return emit(name)
}

func (f formatter) i(name string, imm int64) Mnemonic {
	return emit(name, simm(imm))
}

func (f formatter) a(name string, addr uint64) Mnemonic {
	return emit(name, uhex(addr))
}

func (f formatter) x(name string, r riscv.Reg) Mnemonic {
	return emit(name, f.reg(r))
}

func (f formatter) xx(name string, r1, r2 riscv.Reg) Mnemonic {
	return emit(name, f.reg(r1), f.reg(r2))
}

func (f formatter) xxx(name string, r1, r2, r3 riscv.Reg) Mnemonic {
	return emit(name, f.reg(r1), f.reg(r2), f.reg(r3))
}

func (f formatter) xi(name string, r riscv.Reg, imm int64) Mnemonic {
	return emit(name, f.reg(r), simm(imm))
}

func (f formatter) xa(name string, r riscv.Reg, addr uint64) Mnemonic {
	return emit(name, f.reg(r), uhex(addr))
}

func (f formatter) xxi(name string, r1, r2 riscv.Reg, imm int64) Mnemonic {
	return emit(name, f.reg(r1), f.reg(r2), simm(imm))
}

func (f formatter) xxa(name string, r1, r2 riscv.Reg, addr uint64) Mnemonic {
	return emit(name, f.reg(r1), f.reg(r2), uhex(addr))
}

func (f formatter) m(name string, base riscv.Reg, offset int64) Mnemonic {
	return emit(name, f.mem(base, offset))
}

// xm is the shape of integer loads (r is rd) and stores (r is rs2).
func (f formatter) xm(name string, r, base riscv.Reg, offset int64) Mnemonic {
	return emit(name, f.reg(r), f.mem(base, offset))
}

// fm is the floating point counterpart of xm.
func (f formatter) fm(name string, r, base riscv.Reg, offset int64) Mnemonic {
	return emit(name, f.freg(r), f.mem(base, offset))
}

func (f formatter) ff(name string, r1, r2 riscv.Reg) Mnemonic {
	return emit(name, f.freg(r1), f.freg(r2))
}

func (f formatter) fff(name string, r1, r2, r3 riscv.Reg) Mnemonic {
	return emit(name, f.freg(r1), f.freg(r2), f.freg(r3))
}

func (f formatter) xf(name string, rd, rs riscv.Reg) Mnemonic {
	return emit(name, f.reg(rd), f.freg(rs))
}

func (f formatter) fx(name string, rd, rs riscv.Reg) Mnemonic {
	return emit(name, f.freg(rd), f.reg(rs))
}

func (f formatter) xff(name string, rd, rs1, rs2 riscv.Reg) Mnemonic {
	return emit(name, f.reg(rd), f.freg(rs1), f.freg(rs2))
}

func (f formatter) ffRM(name string, rd, rs riscv.Reg, mod uint8) Mnemonic {
	return emit(name, f.freg(rd), f.freg(rs), rounding(mod))
}

func (f formatter) xfRM(name string, rd, rs riscv.Reg, mod uint8) Mnemonic {
	return emit(name, f.reg(rd), f.freg(rs), rounding(mod))
}

func (f formatter) fxRM(name string, rd, rs riscv.Reg, mod uint8) Mnemonic {
	return emit(name, f.freg(rd), f.reg(rs), rounding(mod))
}

func (f formatter) fffRM(name string, rd, rs1, rs2 riscv.Reg, mod uint8) Mnemonic {
	return emit(name, f.freg(rd), f.freg(rs1), f.freg(rs2), rounding(mod))
}

func (f formatter) ffffRM(name string, rd, rs1, rs2, rs3 riscv.Reg, mod uint8) Mnemonic {
	return emit(name, f.freg(rd), f.freg(rs1), f.freg(rs2), f.freg(rs3), rounding(mod))
}

func (f formatter) xcx(name string, rd riscv.Reg, addr uint64, rs riscv.Reg) Mnemonic {
	return emit(name, f.reg(rd), csr(addr), f.reg(rs))
}

func (f formatter) xc(name string, rd riscv.Reg, addr uint64) Mnemonic {
	return emit(name, f.reg(rd), csr(addr))
}

func (f formatter) cx(name string, addr uint64, rs riscv.Reg) Mnemonic {
	return emit(name, csr(addr), f.reg(rs))
}

func (f formatter) xcu(name string, rd riscv.Reg, addr, uimm uint64) Mnemonic {
	return emit(name, f.reg(rd), csr(addr), uhex(uimm))
}

func (f formatter) cu(name string, addr, uimm uint64) Mnemonic {
	return emit(name, csr(addr), uhex(uimm))
}

// lr renders load-reserved: name+ordering rd, (base).
func (f formatter) lr(name string, rd, base riscv.Reg, mod uint8) Mnemonic {
	return emit(name+riscv.OrderingSuffix(mod), f.reg(rd), f.amem(base))
}

// amo renders store-conditional and AMOs: name+ordering rd, rs2, (base).
func (f formatter) amo(name string, rd, rs2, base riscv.Reg, mod uint8) Mnemonic {
	return emit(name+riscv.OrderingSuffix(mod), f.reg(rd), f.reg(rs2), f.amem(base))
}
