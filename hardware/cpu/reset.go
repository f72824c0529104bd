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

// the reset sequence is driven by the CPU_ResetSequence counter while the CPU
// is in the Resetting micro-state
func (mc *CPU) resetRules() []rule {
	rules := make([]rule, 0, resetPhases)

	phase := func(p int, effect func(t *transition)) {
		rules = append(rules, rule{
			state: Resetting,
			guard: func(in map[string]smt.Symbol) smt.Term {
				return smt.Eq(in[ResetSequence], smt.BV(uint64(p), 3))
			},
			effect: func(t *transition) {
				t.set(ResetSequence, smt.BV(uint64((p+1)%resetPhases), 3))
				effect(t)
			},
		})
	}

	// two dummy reads of the program counter
	phase(0, func(t *transition) {
		t.fetchPC()
	})
	phase(1, func(t *transition) {
		t.fetchPC()
	})

	// three reads of the stack. the stack pointer is decremented each time
	// as though three bytes were being pushed
	for p := 2; p <= 4; p++ {
		phase(p, func(t *transition) {
			t.read(smt.Concat(smt.BV(uint64(stackPage), 8), t.in[SP]))
			t.set(SP, smt.BVSub(t.in[SP], smt.BV(1, 8)))
		})
	}

	// read low byte of reset vector and disable interrupts
	phase(5, func(t *transition) {
		t.read(smt.BV(uint64(ResetVectorLo), 16))
		t.set(P, withBit(t.in[P], InterruptDisable, smt.Bit(true)))
	})

	// read high byte of reset vector. the low byte is on the data bus
	phase(6, func(t *transition) {
		t.read(smt.BV(uint64(ResetVectorHi), 16))
		t.set(TempAddress, zeroPage(t.in[DataIn]))
	})

	// the high byte is on the data bus. the vector is used to fetch the first
	// opcode and so the program counter is the vector plus one
	phase(7, func(t *transition) {
		vector := smt.Concat(t.in[DataIn], lowByte(t.in[TempAddress]))
		t.read(vector)
		t.set(PC, smt.BVAdd(vector, smt.BV(1, 16)))
		t.goTo(InstructionFetch)
	})

	return rules
}
