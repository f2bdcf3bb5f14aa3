package intcode

// stepEvent tells the run loop what a single executed instruction did beyond
// mutating the machine.
type stepEvent int

const (
	eventNone stepEvent = iota
	eventOutput
	eventWaiting
	eventHalted
)

// value resolves a parameter used as an operand.
func (p *Program) value(param Parameter) (Word, error) {
	switch param.Mode {
	case ModeImmediate:
		return param.Value, nil
	case ModeRelative:
		return p.mem.Get(p.relBase + param.Value)
	default:
		return p.mem.Get(param.Value)
	}
}

// target resolves a parameter used as a write address. Immediate mode has no
// meaning here and is rejected.
func (p *Program) target(param Parameter) (Word, error) {
	switch param.Mode {
	case ModePosition:
		return param.Value, nil
	case ModeRelative:
		return p.relBase + param.Value, nil
	default:
		return 0, ErrImmediateWrite
	}
}

// execute applies one decoded instruction. On success the instruction
// pointer has been advanced (or redirected by a jump); an Input instruction
// finding the queue empty leaves the machine untouched and reports
// eventWaiting so the same instruction is re-attempted on resume.
func (p *Program) execute(in Instruction) (stepEvent, error) {
	event, err := p.apply(in)
	if err != nil {
		return eventNone, &ExecutionError{Addr: in.Addr, Raw: in.Raw, Op: in.Op, Err: err}
	}
	return event, nil
}

func (p *Program) apply(in Instruction) (stepEvent, error) {
	switch in.Op {
	case OpAdd:
		a, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}
		b, err := p.value(in.Params[1])
		if err != nil {
			return eventNone, err
		}
		dst, err := p.target(in.Params[2])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("ADD", "ip", in.Addr, "a", a, "b", b, "dst", dst)

		if err := p.mem.Set(dst, a+b); err != nil {
			return eventNone, err
		}
		p.ip += in.width()

	case OpMultiply:
		a, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}
		b, err := p.value(in.Params[1])
		if err != nil {
			return eventNone, err
		}
		dst, err := p.target(in.Params[2])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("MUL", "ip", in.Addr, "a", a, "b", b, "dst", dst)

		if err := p.mem.Set(dst, a*b); err != nil {
			return eventNone, err
		}
		p.ip += in.width()

	case OpInput:
		if len(p.inputs) == 0 {
			// nothing consumed; resume re-decodes this instruction
			return eventWaiting, nil
		}
		dst, err := p.target(in.Params[0])
		if err != nil {
			return eventNone, err
		}

		v := p.inputs[0]
		p.inputs = p.inputs[1:]

		p.log.Debug("INP", "ip", in.Addr, "value", v, "dst", dst)

		if err := p.mem.Set(dst, v); err != nil {
			return eventNone, err
		}
		p.ip += in.width()

	case OpOutput:
		v, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("OUT", "ip", in.Addr, "value", v)

		p.outputs = append(p.outputs, v)
		p.ip += in.width()
		return eventOutput, nil

	case OpJumpIfTrue:
		cond, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}
		dest, err := p.value(in.Params[1])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("JNZ", "ip", in.Addr, "cond", cond, "dest", dest)

		if cond != 0 {
			p.ip = dest
		} else {
			p.ip += in.width()
		}

	case OpJumpIfFalse:
		cond, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}
		dest, err := p.value(in.Params[1])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("JZ", "ip", in.Addr, "cond", cond, "dest", dest)

		if cond == 0 {
			p.ip = dest
		} else {
			p.ip += in.width()
		}

	case OpLessThan:
		a, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}
		b, err := p.value(in.Params[1])
		if err != nil {
			return eventNone, err
		}
		dst, err := p.target(in.Params[2])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("LT", "ip", in.Addr, "a", a, "b", b, "dst", dst)

		var v Word
		if a < b {
			v = 1
		}
		if err := p.mem.Set(dst, v); err != nil {
			return eventNone, err
		}
		p.ip += in.width()

	case OpEquals:
		a, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}
		b, err := p.value(in.Params[1])
		if err != nil {
			return eventNone, err
		}
		dst, err := p.target(in.Params[2])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("EQ", "ip", in.Addr, "a", a, "b", b, "dst", dst)

		var v Word
		if a == b {
			v = 1
		}
		if err := p.mem.Set(dst, v); err != nil {
			return eventNone, err
		}
		p.ip += in.width()

	case OpAdjustRelativeBase:
		delta, err := p.value(in.Params[0])
		if err != nil {
			return eventNone, err
		}

		p.log.Debug("ARB", "ip", in.Addr, "delta", delta, "base", p.relBase+delta)

		p.relBase += delta
		p.ip += in.width()

	case OpTerminate:
		p.log.Debug("HLT", "ip", in.Addr)
		return eventHalted, nil
	}

	return eventNone, nil
}
