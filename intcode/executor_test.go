package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueResolution(t *testing.T) {
	p := New([]Word{10, 20, 30, 40})
	p.relBase = 2

	tests := []struct {
		name  string
		param Parameter
		want  Word
	}{
		{"position dereferences", Parameter{ModePosition, 1}, 20},
		{"immediate is literal", Parameter{ModeImmediate, 1}, 1},
		{"relative adds the base", Parameter{ModeRelative, 1}, 40},
		{"relative handles negative offsets", Parameter{ModeRelative, -2}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := p.value(tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestTargetResolution(t *testing.T) {
	p := New([]Word{10, 20, 30, 40})
	p.relBase = 5

	addr, err := p.target(Parameter{ModePosition, 3})
	require.NoError(t, err)
	assert.Equal(t, Word(3), addr)

	addr, err = p.target(Parameter{ModeRelative, 3})
	require.NoError(t, err)
	assert.Equal(t, Word(8), addr)

	_, err = p.target(Parameter{ModeImmediate, 3})
	assert.ErrorIs(t, err, ErrImmediateWrite)
}

func TestRelativeReadFollowsBase(t *testing.T) {
	// ARB 7, then a relative read at offset 0 sees cell 7 while a position
	// read of the same raw value still sees cell 0
	p := New([]Word{109, 7, 204, 0, 4, 0, 99, 42})

	status, err := p.Run()
	require.NoError(t, err)
	require.Equal(t, StatusHalted, status)

	assert.Equal(t, []Word{42, 109}, p.Drain())
}

func TestRelativeWriteTarget(t *testing.T) {
	// 21101: add two immediates, store through the relative base past the
	// end of the loaded program
	p := New([]Word{109, 8, 21101, 5, 6, 0, 99})

	status, err := p.Run()
	require.NoError(t, err)
	require.Equal(t, StatusHalted, status)

	v, err := p.Memory().Get(8)
	require.NoError(t, err)
	assert.Equal(t, Word(11), v)
	assert.Equal(t, 9, p.Memory().Len())
}
