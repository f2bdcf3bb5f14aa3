package intcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeModeDigits(t *testing.T) {
	// 1002: opcode 02, mode digits 10 read least-significant first, third
	// digit missing and defaulting to position
	mem := NewMemory([]Word{1002, 4, 3, 4, 33})

	in, err := Decode(mem, 0)
	require.NoError(t, err)

	assert.Equal(t, OpMultiply, in.Op)
	assert.Equal(t, Word(0), in.Addr)
	assert.Equal(t, Word(1002), in.Raw)
	assert.Equal(t, []Parameter{
		{Mode: ModePosition, Value: 4},
		{Mode: ModeImmediate, Value: 3},
		{Mode: ModePosition, Value: 4},
	}, in.Params)
}

func TestDecodeZeroArity(t *testing.T) {
	mem := NewMemory([]Word{99})

	in, err := Decode(mem, 0)
	require.NoError(t, err)

	assert.Equal(t, OpTerminate, in.Op)
	assert.Empty(t, in.Params)
}

func TestDecodeReadsPastEnd(t *testing.T) {
	// parameters beyond the tape read as zero
	mem := NewMemory([]Word{4})

	in, err := Decode(mem, 0)
	require.NoError(t, err)
	assert.Equal(t, []Parameter{{Mode: ModePosition, Value: 0}}, in.Params)
}

func TestDecodeIsPure(t *testing.T) {
	mem := NewMemory([]Word{21101, 5, 6, 0, 99})

	first, err := Decode(mem, 0)
	require.NoError(t, err)
	second, err := Decode(mem, 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeUnknownOpcode(t *testing.T) {
	mem := NewMemory([]Word{5000})

	_, err := Decode(mem, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOpcode)

	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, Word(0), decodeErr.Addr)
	assert.Equal(t, Word(5000), decodeErr.Raw)
}

func TestDecodeNegativeCell(t *testing.T) {
	mem := NewMemory([]Word{-1})

	_, err := Decode(mem, 0)
	assert.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestDecodeUnknownMode(t *testing.T) {
	// opcode 02 with mode digit 3 on the first parameter
	mem := NewMemory([]Word{302, 0, 0, 0, 99})

	_, err := Decode(mem, 0)
	assert.ErrorIs(t, err, ErrUnknownMode)
}
