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

import "github.com/jetsetilly/sat6502/smt"

// transition collects the next value of every output variable for one
// implication. every output starts as an identity constraint
type transition struct {
	states *States
	in     map[string]smt.Symbol
	next   map[string]smt.Term
}

func newTransition(states *States, in map[string]smt.Symbol) *transition {
	t := &transition{
		states: states,
		in:     in,
		next:   make(map[string]smt.Term, len(Outputs)),
	}
	for _, name := range Outputs {
		t.next[name] = in[name]
	}
	return t
}

func (t *transition) set(name string, v smt.Term) {
	t.next[name] = v
}

// read drives the address bus for a read cycle
func (t *transition) read(address smt.Term) {
	t.next[AddressBus] = address
	t.next[WriteEnable] = smt.Bit(false)
}

// write drives the address and data bus for a write cycle
func (t *transition) write(address smt.Term, data smt.Term) {
	t.next[AddressBus] = address
	t.next[WriteEnable] = smt.Bit(true)
	t.next[DataOut] = data
}

// fetchPC reads the byte at the current program counter
func (t *transition) fetchPC() {
	t.read(t.in[PC])
}

// incrementPC advances the program counter by one
func (t *transition) incrementPC() {
	t.next[PC] = smt.BVAdd(t.in[PC], smt.BV(1, 16))
}

// goTo sets the micro-state of the next cycle
func (t *transition) goTo(state string) {
	t.next[State] = t.states.Literal(state)
}

// consequent is the conjunction of constraints on every output variable
func (t *transition) consequent(out map[string]smt.Symbol) smt.Term {
	c := make([]smt.Term, 0, len(Outputs))
	for _, name := range Outputs {
		c = append(c, smt.Eq(out[name], t.next[name]))
	}
	return smt.And(c...)
}

// zeroPage returns the 16 bit address of the zero page location
func zeroPage(lo smt.Term) smt.Term {
	return smt.Concat(smt.BV(0, 8), lo)
}

// lowByte returns the low byte of a 16 bit term
func lowByte(t smt.Term) smt.Term {
	return smt.Extract(7, 0, t)
}
