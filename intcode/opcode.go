package intcode

// Opcode is the operation selected by the last two decimal digits of an
// instruction cell. The set is closed; dispatch is an exhaustive switch.
type Opcode Word

const (
	OpAdd                Opcode = 1
	OpMultiply           Opcode = 2
	OpInput              Opcode = 3
	OpOutput             Opcode = 4
	OpJumpIfTrue         Opcode = 5
	OpJumpIfFalse        Opcode = 6
	OpLessThan           Opcode = 7
	OpEquals             Opcode = 8
	OpAdjustRelativeBase Opcode = 9
	OpTerminate          Opcode = 99
)

// Arity returns the number of parameters the opcode consumes.
func (op Opcode) Arity() int {
	switch op {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		return 3
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2
	case OpInput, OpOutput, OpAdjustRelativeBase:
		return 1
	case OpTerminate:
		return 0
	}
	return 0
}

func (op Opcode) valid() bool {
	switch op {
	case OpAdd, OpMultiply, OpInput, OpOutput, OpJumpIfTrue, OpJumpIfFalse,
		OpLessThan, OpEquals, OpAdjustRelativeBase, OpTerminate:
		return true
	}
	return false
}

func (op Opcode) String() string {
	switch op {
	case OpAdd:
		return "ADD"
	case OpMultiply:
		return "MUL"
	case OpInput:
		return "INP"
	case OpOutput:
		return "OUT"
	case OpJumpIfTrue:
		return "JNZ"
	case OpJumpIfFalse:
		return "JZ"
	case OpLessThan:
		return "LT"
	case OpEquals:
		return "EQ"
	case OpAdjustRelativeBase:
		return "ARB"
	case OpTerminate:
		return "HLT"
	}
	return "???"
}

// Mode is a parameter addressing mode digit.
type Mode Word

const (
	ModePosition  Mode = 0
	ModeImmediate Mode = 1
	ModeRelative  Mode = 2
)

func (m Mode) String() string {
	switch m {
	case ModePosition:
		return "pos"
	case ModeImmediate:
		return "imm"
	case ModeRelative:
		return "rel"
	}
	return "???"
}
