package intcode

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeAddress is returned when a program produces a negative
	// memory address. The tape only extends forward.
	ErrNegativeAddress = errors.New("negative address")

	// ErrUnknownOpcode is returned when the opcode digits of an
	// instruction do not name a known opcode.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrUnknownMode is returned for a mode digit outside 0..2.
	ErrUnknownMode = errors.New("unknown parameter mode")

	// ErrImmediateWrite is returned when an immediate-mode parameter is
	// used as a write target.
	ErrImmediateWrite = errors.New("immediate mode is invalid as a write target")

	// ErrNoInput is returned when a program waiting for input is resumed
	// without any value enqueued. This is a caller error and does not put
	// the program into a failed state.
	ErrNoInput = errors.New("no input available")
)

// LoadError reports a malformed token in program text.
type LoadError struct {
	Token string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load: bad token %q: %v", e.Token, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DecodeError reports an undecodable instruction. Addr is the instruction
// pointer and Raw the cell value found there.
type DecodeError struct {
	Addr Word
	Raw  Word
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode at %d: value %d: %v", e.Addr, e.Raw, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ExecutionError reports an instruction whose execution failed. Addr is the
// instruction pointer and Raw the undecoded cell value, kept for diagnostics.
type ExecutionError struct {
	Addr Word
	Raw  Word
	Op   Opcode
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execute %s at %d (raw %d): %v", e.Op, e.Addr, e.Raw, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }
