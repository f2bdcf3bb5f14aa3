package intcode

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Status is the execution state of a Program.
type Status int

const (
	StatusRunning Status = iota
	StatusWaitingForInput
	StatusHalted
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusWaitingForInput:
		return "waiting-for-input"
	case StatusHalted:
		return "halted"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Program is one intcode machine: a tape, an instruction pointer, a relative
// base and a pair of FIFO queues. It is mutated in place by every executed
// instruction and must not be shared between goroutines.
type Program struct {
	id      string
	mem     *Memory
	ip      Word
	relBase Word
	status  Status

	inputs  []Word
	outputs []Word

	// latched fatal error; every run call after a failure returns it again
	err error

	log *slog.Logger
}

// Option configures a Program at construction time.
type Option func(*Program)

// WithLogger injects the logger used for instruction tracing. The logger is
// per-Program state so that independent machines running on separate
// goroutines do not contend on shared logging configuration.
func WithLogger(log *slog.Logger) Option {
	return func(p *Program) {
		if log != nil {
			p.log = log
		}
	}
}

// New builds a Program whose tape is initialized from code. The slice is
// copied; the caller keeps ownership of code.
func New(code []Word, opts ...Option) *Program {
	p := &Program{
		id:     uuid.NewString(),
		mem:    NewMemory(code),
		status: StatusRunning,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("program", p.id[:8])
	return p
}

func (p *Program) ID() string      { return p.id }
func (p *Program) Status() Status  { return p.status }
func (p *Program) Memory() *Memory { return p.mem }

// Push enqueues input values for the next Input instructions.
func (p *Program) Push(values ...Word) {
	p.inputs = append(p.inputs, values...)
}

// Drain removes and returns every pending output value.
func (p *Program) Drain() []Word {
	out := p.outputs
	p.outputs = nil
	return out
}

// Run executes until the program halts or suspends waiting for input, and
// reports the resulting status. Resuming a waiting program without enqueuing
// input first fails with ErrNoInput.
func (p *Program) Run() (Status, error) {
	if err := p.run(false); err != nil {
		return p.status, err
	}
	return p.status, nil
}

// RunToNextOutput executes like Run but stops right after any Output
// instruction, returning the produced value. The second return is false when
// the program stopped without producing output (halted, or suspended on an
// empty input queue).
func (p *Program) RunToNextOutput() (Word, bool, error) {
	before := len(p.outputs)
	if err := p.run(true); err != nil {
		return 0, false, err
	}
	if len(p.outputs) > before {
		// the stop-on-output loop returns immediately, so exactly one
		// value was appended
		v := p.outputs[len(p.outputs)-1]
		p.outputs = p.outputs[:len(p.outputs)-1]
		return v, true, nil
	}
	return 0, false, nil
}

// run is the single decode-execute loop behind both run modes, parameterized
// by whether an Output instruction stops it.
func (p *Program) run(stopOnOutput bool) error {
	if p.err != nil {
		return p.err
	}
	switch p.status {
	case StatusHalted:
		return nil
	case StatusWaitingForInput:
		if len(p.inputs) == 0 {
			return ErrNoInput
		}
		p.status = StatusRunning
	}

	for p.status == StatusRunning {
		in, err := Decode(p.mem, p.ip)
		if err != nil {
			return p.fail(err)
		}

		event, err := p.execute(in)
		if err != nil {
			return p.fail(err)
		}

		switch event {
		case eventWaiting:
			p.status = StatusWaitingForInput
			p.log.Debug("suspended", "ip", p.ip)
		case eventHalted:
			p.status = StatusHalted
			p.log.Debug("halted", "ip", p.ip)
		case eventOutput:
			if stopOnOutput {
				return nil
			}
		}
	}

	return nil
}

// fail latches err as the Program's terminal error.
func (p *Program) fail(err error) error {
	p.status = StatusFailed
	p.err = err
	p.log.Error("program failed", "ip", p.ip, "err", err)
	return err
}
