package disasm

import "strings"

// MaxArgs is the largest operand count of any rendered instruction,
// including a trailing rounding mode.
const MaxArgs = 5

// Mnemonic is the textual form of one instruction. Args are positional and
// untyped; slots past the last operand are empty.
type Mnemonic struct {
	Op   string
	Args [MaxArgs]string
}

// NumArgs returns the number of used operand slots.
func (m Mnemonic) NumArgs() int {
	n := 0
	for n < MaxArgs && m.Args[n] != "" {
		n++
	}
	return n
}

// Operands returns the used operand slots.
func (m Mnemonic) Operands() []string {
	return m.Args[:m.NumArgs()]
}

func (m Mnemonic) String() string {
	args := m.Operands()
	if len(args) == 0 {
		return m.Op
	}
	return m.Op + " " + strings.Join(args, ", ")
}
