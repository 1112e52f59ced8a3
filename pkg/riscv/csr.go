package riscv

import "strconv"

type csrEntry struct {
	addr uint64
	name string
}

// csrTable lists the named control and status registers.
var csrTable = []csrEntry{
	// user trap setup
	{0x000, "ustatus"},
	{0x004, "uie"},
	{0x005, "utvec"},

	// user trap handling
	{0x040, "uscratch"},
	{0x041, "uepc"},
	{0x042, "ucause"},
	{0x043, "utval"},
	{0x044, "uip"},

	// floating point
	{0x001, "fflags"},
	{0x002, "frm"},
	{0x003, "fcsr"},

	// user counters
	{0xc00, "cycle"},
	{0xc01, "time"},
	{0xc02, "instret"},
	{0xc03, "hpmcounter3"},
	{0xc04, "hpmcounter4"},
	{0xc05, "hpmcounter5"},
	{0xc06, "hpmcounter6"},
	{0xc07, "hpmcounter7"},
	{0xc08, "hpmcounter8"},
	{0xc09, "hpmcounter9"},
	{0xc0a, "hpmcounter10"},
	{0xc0b, "hpmcounter11"},
	{0xc0c, "hpmcounter12"},
	{0xc0d, "hpmcounter13"},
	{0xc0e, "hpmcounter14"},
	{0xc0f, "hpmcounter15"},
	{0xc10, "hpmcounter16"},
	{0xc11, "hpmcounter17"},
	{0xc12, "hpmcounter18"},
	{0xc13, "hpmcounter19"},
	{0xc14, "hpmcounter20"},
	{0xc15, "hpmcounter21"},
	{0xc16, "hpmcounter22"},
	{0xc17, "hpmcounter23"},
	{0xc18, "hpmcounter24"},
	{0xc19, "hpmcounter25"},
	{0xc1a, "hpmcounter26"},
	{0xc1b, "hpmcounter27"},
	{0xc1c, "hpmcounter28"},
	{0xc1d, "hpmcounter29"},
	{0xc1e, "hpmcounter30"},
	{0xc1f, "hpmcounter31"},

	// user counters, upper halves (RV32)
	{0xc80, "cycleh"},
	{0xc81, "timeh"},
	{0xc82, "instreth"},
	{0xc83, "hpmcounter3h"},
	{0xc84, "hpmcounter4h"},
	{0xc85, "hpmcounter5h"},
	{0xc86, "hpmcounter6h"},
	{0xc87, "hpmcounter7h"},
	{0xc88, "hpmcounter8h"},
	{0xc89, "hpmcounter9h"},
	{0xc8a, "hpmcounter10h"},
	{0xc8b, "hpmcounter11h"},
	{0xc8c, "hpmcounter12h"},
	{0xc8d, "hpmcounter13h"},
	{0xc8e, "hpmcounter14h"},
	{0xc8f, "hpmcounter15h"},
	{0xc90, "hpmcounter16h"},
	{0xc91, "hpmcounter17h"},
	{0xc92, "hpmcounter18h"},
	{0xc93, "hpmcounter19h"},
	{0xc94, "hpmcounter20h"},
	{0xc95, "hpmcounter21h"},
	{0xc96, "hpmcounter22h"},
	{0xc97, "hpmcounter23h"},
	{0xc98, "hpmcounter24h"},
	{0xc99, "hpmcounter25h"},
	{0xc9a, "hpmcounter26h"},
	{0xc9b, "hpmcounter27h"},
	{0xc9c, "hpmcounter28h"},
	{0xc9d, "hpmcounter29h"},
	{0xc9e, "hpmcounter30h"},
	{0xc9f, "hpmcounter31h"},

	// supervisor trap setup
	{0x100, "sstatus"},
	{0x102, "sedeleg"},
	{0x103, "sideleg"},
	{0x104, "sie"},
	{0x105, "stvec"},
	{0x106, "scounteren"},
	{0x10a, "senvcfg"},

	// supervisor trap handling
	{0x140, "sscratch"},
	{0x141, "sepc"},
	{0x142, "scause"},
	{0x143, "stval"},
	{0x144, "sip"},

	// supervisor protection and translation
	{0x180, "satp"},

	// machine information
	{0xf11, "mvendorid"},
	{0xf12, "marchid"},
	{0xf13, "mimpid"},
	{0xf14, "mhartid"},
	{0xf15, "mconfigptr"},

	// machine trap setup
	{0x300, "mstatus"},
	{0x301, "misa"},
	{0x302, "medeleg"},
	{0x303, "mideleg"},
	{0x304, "mie"},
	{0x305, "mtvec"},
	{0x306, "mcounteren"},
	{0x30a, "menvcfg"},
	{0x320, "mcountinhibit"},

	// machine trap handling
	{0x340, "mscratch"},
	{0x341, "mepc"},
	{0x342, "mcause"},
	{0x343, "mtval"},
	{0x344, "mip"},

	// physical memory protection
	{0x3a0, "pmpcfg0"},
	{0x3a1, "pmpcfg1"},
	{0x3a2, "pmpcfg2"},
	{0x3a3, "pmpcfg3"},
	{0x3b0, "pmpaddr0"},
	{0x3b1, "pmpaddr1"},
	{0x3b2, "pmpaddr2"},
	{0x3b3, "pmpaddr3"},
	{0x3b4, "pmpaddr4"},
	{0x3b5, "pmpaddr5"},
	{0x3b6, "pmpaddr6"},
	{0x3b7, "pmpaddr7"},
	{0x3b8, "pmpaddr8"},
	{0x3b9, "pmpaddr9"},
	{0x3ba, "pmpaddr10"},
	{0x3bb, "pmpaddr11"},
	{0x3bc, "pmpaddr12"},
	{0x3bd, "pmpaddr13"},
	{0x3be, "pmpaddr14"},
	{0x3bf, "pmpaddr15"},

	// machine counters
	{0xb00, "mcycle"},
	{0xb02, "minstret"},
	{0xb80, "mcycleh"},
	{0xb82, "minstreth"},

	// debug and trigger
	{0x7a0, "tselect"},
	{0x7a1, "tdata1"},
	{0x7a2, "tdata2"},
	{0x7a3, "tdata3"},
	{0x7b0, "dcsr"},
	{0x7b1, "dpc"},
	{0x7b2, "dscratch0"},
	{0x7b3, "dscratch1"},
}

var csrNames = make(map[uint64]string, len(csrTable))

func init() {
	for _, c := range csrTable {
		csrNames[c.addr] = c.name
	}
}

// CSRAddressMask selects the 12-bit CSR field.
const CSRAddressMask = 0xfff

// CSRName returns the symbolic name of a CSR address. Only the low 12 bits are
// significant. Unnamed addresses are not an error and render as lowercase hex.
func CSRName(addr uint64) string {
	addr &= CSRAddressMask
	if name, ok := csrNames[addr]; ok {
		return name
	}
	return "0x" + strconv.FormatUint(addr, 16)
}
