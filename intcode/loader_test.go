package intcode

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	code, err := Parse("1,9,10,3,2,3,11,0,99,30,40,50")
	require.NoError(t, err)
	assert.Equal(t, []Word{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, code)
}

func TestParseSignsAndWhitespace(t *testing.T) {
	code, err := Parse("  -1,+2, 3\n")
	require.NoError(t, err)
	assert.Equal(t, []Word{-1, 2, 3}, code)
}

func TestParseBadToken(t *testing.T) {
	_, err := Parse("1,two,3")
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "two", loadErr.Token)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "program.txt")
	require.NoError(t, os.WriteFile(path, []byte("1101,2,3,0,99\n"), 0o644))

	code, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Word{1101, 2, 3, 0, 99}, code)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
