package intcode

// Word is a single tape cell. Addresses, values and queue elements are all
// words; intcode does not distinguish them.
type Word int64

// Memory is the growable tape holding the program and its working data.
// Reads beyond the current length yield 0; writes beyond it extend the tape,
// zero-filling any gap. Negative addresses are always an error.
type Memory struct {
	cells []Word
}

func NewMemory(code []Word) *Memory {
	cells := make([]Word, len(code))
	copy(cells, code)
	return &Memory{cells: cells}
}

func (m *Memory) Get(addr Word) (Word, error) {
	if addr < 0 {
		return 0, ErrNegativeAddress
	}
	if int(addr) >= len(m.cells) {
		return 0, nil
	}
	return m.cells[addr], nil
}

func (m *Memory) Set(addr, value Word) error {
	if addr < 0 {
		return ErrNegativeAddress
	}
	if int(addr) >= len(m.cells) {
		grown := make([]Word, addr+1)
		copy(grown, m.cells)
		m.cells = grown
	}
	m.cells[addr] = value
	return nil
}

func (m *Memory) Len() int { return len(m.cells) }

// Snapshot returns a copy of the current tape contents.
func (m *Memory) Snapshot() []Word {
	out := make([]Word, len(m.cells))
	copy(out, m.cells)
	return out
}
