package intcode

// Parameter is one operand of an instruction: a raw word tagged with the
// addressing mode that turns it into a value or a write target.
type Parameter struct {
	Mode  Mode
	Value Word
}

// Instruction is one decoded instruction. Addr is the cell it was decoded
// from and Raw the undecoded cell value, both kept for diagnostics.
type Instruction struct {
	Addr   Word
	Raw    Word
	Op     Opcode
	Params []Parameter
}

// width is the number of cells the instruction occupies on the tape.
func (in Instruction) width() Word {
	return Word(1 + in.Op.Arity())
}

// Decode reads the instruction at ip. The last two decimal digits of the
// cell select the opcode; the remaining digits, least significant first,
// carry one mode digit per parameter, defaulting to position mode. Decode is
// a pure function of (mem, ip) and caches nothing: self-modifying programs
// decode fresh every step.
func Decode(mem *Memory, ip Word) (Instruction, error) {
	raw, err := mem.Get(ip)
	if err != nil {
		return Instruction{}, &DecodeError{Addr: ip, Raw: raw, Err: err}
	}

	op := Opcode(raw % 100)
	if raw < 0 || !op.valid() {
		return Instruction{}, &DecodeError{Addr: ip, Raw: raw, Err: ErrUnknownOpcode}
	}

	arity := op.Arity()
	params := make([]Parameter, arity)
	modes := raw / 100
	for i := 0; i < arity; i++ {
		mode := Mode(modes % 10)
		modes /= 10
		if mode != ModePosition && mode != ModeImmediate && mode != ModeRelative {
			return Instruction{}, &DecodeError{Addr: ip, Raw: raw, Err: ErrUnknownMode}
		}

		value, err := mem.Get(ip + Word(i) + 1)
		if err != nil {
			return Instruction{}, &DecodeError{Addr: ip, Raw: raw, Err: err}
		}
		params[i] = Parameter{Mode: mode, Value: value}
	}

	return Instruction{Addr: ip, Raw: raw, Op: op, Params: params}, nil
}
