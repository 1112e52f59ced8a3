package disasm

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"

	"github.com/eigerco/rvdis/internal/config"
	"github.com/eigerco/rvdis/pkg/log"
	"github.com/eigerco/rvdis/pkg/riscv"
)

// Undefined is the operation name of instructions without a rendering rule.
const Undefined = "undef"

// Renderer turns decoded instructions into mnemonics. It is immutable once
// built and may be shared between goroutines.
type Renderer struct {
	f formatter
	// nil means log.Disasm, looked up when an event is written
	log   *zerolog.Logger
	level *zerolog.Level
}

type Option func(*Renderer)

// WithDisplayMode selects ABI or numeric register names. Default is ABI.
func WithDisplayMode(mode riscv.DisplayMode) Option {
	return func(r *Renderer) {
		r.f.mode = mode
	}
}

// WithLogger overrides the logger used to report unrenderable instructions.
// By default the renderer logs to log.Disasm as configured by log.Init at the
// time of the event.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Renderer) {
		r.log = &logger
	}
}

// WithLogLevel sets the minimum level of the renderer's events.
func WithLogLevel(level zerolog.Level) Option {
	return func(r *Renderer) {
		r.level = &level
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{
		f: formatter{mode: riscv.ABINames},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromEnv builds a renderer configured by RVDIS_REGISTER_NAMES and
// RVDIS_LOG_LEVEL.
func NewFromEnv() (*Renderer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load renderer config: %w", err)
	}
	return New(
		WithDisplayMode(cfg.DisplayMode),
		WithLogLevel(cfg.LogLevel),
	), nil
}

// Render never fails: instructions without a rule render as Undefined.
func (r *Renderer) Render(in riscv.Instruction) Mnemonic {
	if render, ok := renderers[in.Op]; ok {
		return render(r.f, in)
	}
	return r.undefined(in)
}

func (r *Renderer) logger() zerolog.Logger {
	l := log.Disasm
	if r.log != nil {
		l = *r.log
	}
	if r.level != nil {
		l = l.Level(*r.level)
	}
	return l
}

func (r *Renderer) undefined(in riscv.Instruction) Mnemonic {
	l := r.logger()
	l.Debug().
		Stringer("opcode", in.Op).
		Stringer("class", in.Op.Class()).
		Str("pc", fmt.Sprintf("0x%x", in.PC)).
		Msg("no rendering rule")
	if e := l.Trace(); e.Enabled() {
		e.Str("instruction", spew.Sdump(in)).Msg("unrenderable instruction")
	}
	return Mnemonic{Op: Undefined}
}

func (r *Renderer) DisplayMode() riscv.DisplayMode {
	return r.f.mode
}

func (r *Renderer) RegisterName(reg riscv.Reg) string {
	return r.f.reg(reg)
}

func (r *Renderer) FloatRegisterName(reg riscv.Reg) string {
	return r.f.freg(reg)
}

func (r *Renderer) CSRName(addr uint64) string {
	return csr(addr)
}

// Render renders with ABI register names and the package logger.
func Render(in riscv.Instruction) Mnemonic {
	return New().Render(in)
}
