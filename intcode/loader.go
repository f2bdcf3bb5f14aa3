package intcode

import (
	"os"
	"strconv"
	"strings"
)

// Parse reads a comma-separated list of signed base-10 integers. Surrounding
// whitespace (including a trailing newline) is ignored; any non-integer token
// aborts the load.
func Parse(text string) ([]Word, error) {
	code := []Word{}
	for _, token := range strings.Split(strings.TrimSpace(text), ",") {
		token = strings.TrimSpace(token)
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &LoadError{Token: token, Err: err}
		}
		code = append(code, Word(v))
	}
	return code, nil
}

// LoadFile reads and parses an intcode program from path.
func LoadFile(path string) ([]Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}
