// This file is part of sat6502.
//
// sat6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sat6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sat6502.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"
	"math/bits"

	"github.com/jetsetilly/sat6502/hardware/cpu/instructions"
	"github.com/jetsetilly/sat6502/smt"
)

// Names of the micro-states that are not specific to an instruction.
const (
	Resetting        = "Resetting"
	InstructionFetch = "InstructionFetch"
)

// States is the enumeration of micro-states. Every micro-state has a unique
// index and all micro-state literals share the same width.
type States struct {
	names []string
	index map[string]int
	width int
}

func newStates() *States {
	return &States{
		index: make(map[string]int),
	}
}

func (s *States) add(name string) {
	if _, ok := s.index[name]; ok {
		panic(fmt.Sprintf("cpu: duplicate micro-state %s", name))
	}
	s.index[name] = len(s.names)
	s.names = append(s.names, name)

	// width is ceil(log2(max_index+1)) with a minimum of one bit
	s.width = bits.Len(uint(len(s.names) - 1))
	if s.width == 0 {
		s.width = 1
	}
}

// Width of the micro-state literals in bits.
func (s *States) Width() int {
	return s.width
}

// Len returns the number of micro-states.
func (s *States) Len() int {
	return len(s.names)
}

// Names returns the micro-state names in index order.
func (s *States) Names() []string {
	n := make([]string, len(s.names))
	copy(n, s.names)
	return n
}

// Index returns the index of the named micro-state.
func (s *States) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Name returns the name of the micro-state at the index.
func (s *States) Name(index int) (string, bool) {
	if index < 0 || index >= len(s.names) {
		return "", false
	}
	return s.names[index], true
}

// Literal returns the bit-vector constant of the named micro-state. Panics if
// the name is not a micro-state.
func (s *States) Literal(name string) smt.Term {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("cpu: unknown micro-state %s", name))
	}
	return smt.BV(uint64(i), s.width)
}

// cycleName returns the name of the micro-state for cycle n of the
// instruction. the fix-up cycles of the indexed modes have the suffix x
func cycleName(defn instructions.Definition, n int, fixup bool) string {
	if fixup {
		return fmt.Sprintf("%s_Cycle%dx", defn.Label(), n)
	}
	return fmt.Sprintf("%s_Cycle%d", defn.Label(), n)
}

// schedule returns the names of the micro-states of the instruction in the
// order they are enumerated
func schedule(defn instructions.Definition) []string {
	c := func(n int) string { return cycleName(defn, n, false) }
	x := func(n int) string { return cycleName(defn, n, true) }

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Immediate:
		return []string{c(1)}
	case instructions.ZeroPage:
		return []string{c(1), c(2)}
	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY, instructions.Absolute:
		return []string{c(1), c(2), c(3)}
	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		return []string{c(1), c(2), x(2), c(3)}
	case instructions.IndexedIndirect:
		return []string{c(1), c(2), c(3), c(4), c(5)}
	case instructions.IndirectIndexed:
		return []string{c(1), c(2), c(3), x(3), c(4)}
	}

	panic(fmt.Sprintf("cpu: unsupported addressing mode %s", defn.AddressingMode))
}
