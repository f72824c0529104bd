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

	"github.com/jetsetilly/sat6502/hardware/cpu/instructions"
	"github.com/jetsetilly/sat6502/smt"
)

// the register that is the source or destination of a load or store
func register(defn instructions.Definition) string {
	switch defn.Mnemonic {
	case "LDA", "STA":
		return A
	case "LDX", "STX":
		return X
	case "LDY", "STY":
		return Y
	}
	panic(fmt.Sprintf("cpu: %s has no register operand", defn.Mnemonic))
}

// the index register of an indexed addressing mode
func indexRegister(mode instructions.AddressingMode) string {
	switch mode {
	case instructions.ZeroPageIndexedX, instructions.AbsoluteIndexedX, instructions.IndexedIndirect:
		return X
	case instructions.ZeroPageIndexedY, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
		return Y
	}
	panic(fmt.Sprintf("cpu: %s is not an indexed addressing mode", mode))
}

type flagOperation struct {
	bit int
	set bool
}

var flagOperations = map[string]flagOperation{
	"CLC": {bit: Carry, set: false},
	"SEC": {bit: Carry, set: true},
	"CLI": {bit: InterruptDisable, set: false},
	"SEI": {bit: InterruptDisable, set: true},
	"CLV": {bit: Overflow, set: false},
	"CLD": {bit: DecimalMode, set: false},
	"SED": {bit: DecimalMode, set: true},
}

// decodeRule is the transition from InstructionFetch for the opcode
func (mc *CPU) decodeRule(defn instructions.Definition) rule {
	opcode := smt.BV(uint64(defn.OpCode), 8)
	first := cycleName(defn, 1, false)

	return rule{
		state: InstructionFetch,
		guard: func(in map[string]smt.Symbol) smt.Term {
			return smt.Eq(in[DataIn], opcode)
		},
		effect: func(t *transition) {
			t.fetchPC()

			// implied instructions read the next byte but do not consume it
			if defn.AddressingMode != instructions.Implied {
				t.incrementPC()
			}

			t.goTo(first)
		},
	}
}

// instructionRules returns the rules for every cycle of the instruction after
// the opcode fetch
func (mc *CPU) instructionRules(defn instructions.Definition) []rule {
	var rules []rule

	c := func(n int) string { return cycleName(defn, n, false) }
	x := func(n int) string { return cycleName(defn, n, true) }

	on := func(state string, effect func(t *transition)) {
		rules = append(rules, rule{state: state, effect: effect})
	}

	onGuarded := func(state string, guard func(in map[string]smt.Symbol) smt.Term, effect func(t *transition)) {
		rules = append(rules, rule{state: state, guard: guard, effect: effect})
	}

	// access is the bus cycle of the operand. loads read the operand and
	// stores write the register to the effective address
	access := func(t *transition, address smt.Term) {
		switch defn.Effect {
		case instructions.Read:
			t.read(address)
		case instructions.Write:
			t.write(address, t.in[register(defn)])
		}
	}

	// finish is the final cycle of all instructions. the operand of a load is
	// on the data bus. every instruction fetches the next opcode
	finish := func(t *transition) {
		if defn.Effect == instructions.Read {
			reg := register(defn)
			t.set(reg, t.in[DataIn])
			t.set(P, loadFlags(t.in[P], t.in[DataIn]))
		}
		t.fetchPC()
		t.incrementPC()
		t.goTo(InstructionFetch)
	}

	// carry is true if adding the index to the low byte carries into the high
	// byte. the operands are extended to nine bits so that the carry into bit
	// 8 can be detected with an unsigned comparison
	carry := func(lo smt.Term, index smt.Term) smt.Term {
		sum := smt.BVAdd(smt.ZeroExtend(1, lo), smt.ZeroExtend(1, index))
		return smt.BVUge(sum, smt.BV(0x100, 9))
	}

	// indexed performs the cycle in which the index is added to the low byte
	// of the base address. hi is the byte on the data bus and the low byte
	// has been stored in CPU_TempAddress. the fix-up cycle is taken if the
	// addition carries or if the instruction is not page sensitive
	indexed := func(fetch, next, fixup string) {
		index := indexRegister(defn.AddressingMode)

		uncorrected := func(t *transition) smt.Term {
			return smt.Concat(t.in[DataIn], smt.BVAdd(lowByte(t.in[TempAddress]), t.in[index]))
		}
		base := func(t *transition) smt.Term {
			return smt.Concat(t.in[DataIn], lowByte(t.in[TempAddress]))
		}

		if defn.PageSensitive {
			onGuarded(fetch, func(in map[string]smt.Symbol) smt.Term {
				return smt.Not(carry(lowByte(in[TempAddress]), in[index]))
			}, func(t *transition) {
				t.set(TempAddress, base(t))
				access(t, uncorrected(t))
				t.goTo(next)
			})
			onGuarded(fetch, func(in map[string]smt.Symbol) smt.Term {
				return carry(lowByte(in[TempAddress]), in[index])
			}, func(t *transition) {
				t.set(TempAddress, base(t))
				t.read(uncorrected(t))
				t.goTo(fixup)
			})
		} else {
			on(fetch, func(t *transition) {
				t.set(TempAddress, base(t))
				t.read(uncorrected(t))
				t.goTo(fixup)
			})
		}

		on(fixup, func(t *transition) {
			access(t, smt.BVAdd(t.in[TempAddress], smt.ZeroExtend(8, t.in[index])))
			t.goTo(next)
		})
	}

	switch defn.AddressingMode {
	case instructions.Implied:
		on(c(1), func(t *transition) {
			if op, ok := flagOperations[defn.Mnemonic]; ok {
				t.set(P, withBit(t.in[P], op.bit, smt.Bit(op.set)))
			}
			t.fetchPC()
			t.incrementPC()
			t.goTo(InstructionFetch)
		})

	case instructions.Immediate:
		if defn.Effect != instructions.Read {
			panic(fmt.Sprintf("cpu: %s cannot use immediate addressing", defn.Mnemonic))
		}
		on(c(1), finish)

	case instructions.ZeroPage:
		on(c(1), func(t *transition) {
			access(t, zeroPage(t.in[DataIn]))
			t.goTo(c(2))
		})
		on(c(2), finish)

	case instructions.ZeroPageIndexedX, instructions.ZeroPageIndexedY:
		index := indexRegister(defn.AddressingMode)

		// dummy read of the unindexed zero page address
		on(c(1), func(t *transition) {
			t.read(zeroPage(t.in[DataIn]))
			t.set(TempAddress, zeroPage(t.in[DataIn]))
			t.goTo(c(2))
		})

		// the index is added without carry into the high byte. the effective
		// address is always in the zero page
		on(c(2), func(t *transition) {
			access(t, zeroPage(smt.BVAdd(lowByte(t.in[TempAddress]), t.in[index])))
			t.goTo(c(3))
		})
		on(c(3), finish)

	case instructions.Absolute:
		on(c(1), func(t *transition) {
			t.set(TempAddress, zeroPage(t.in[DataIn]))
			t.fetchPC()
			t.incrementPC()
			t.goTo(c(2))
		})
		on(c(2), func(t *transition) {
			access(t, smt.Concat(t.in[DataIn], lowByte(t.in[TempAddress])))
			t.goTo(c(3))
		})
		on(c(3), finish)

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		on(c(1), func(t *transition) {
			t.set(TempAddress, zeroPage(t.in[DataIn]))
			t.fetchPC()
			t.incrementPC()
			t.goTo(c(2))
		})
		indexed(c(2), c(3), x(2))
		on(c(3), finish)

	case instructions.IndexedIndirect:
		// dummy read of the unindexed pointer
		on(c(1), func(t *transition) {
			t.read(zeroPage(t.in[DataIn]))
			t.set(TempPointer, t.in[DataIn])
			t.goTo(c(2))
		})

		// the index is added to the pointer before dereferencing. the pointer
		// wraps within the zero page
		on(c(2), func(t *transition) {
			ptr := smt.BVAdd(t.in[TempPointer], t.in[X])
			t.set(TempPointer, ptr)
			t.read(zeroPage(ptr))
			t.goTo(c(3))
		})
		on(c(3), func(t *transition) {
			t.set(TempAddress, zeroPage(t.in[DataIn]))
			t.read(zeroPage(smt.BVAdd(t.in[TempPointer], smt.BV(1, 8))))
			t.goTo(c(4))
		})
		on(c(4), func(t *transition) {
			access(t, smt.Concat(t.in[DataIn], lowByte(t.in[TempAddress])))
			t.goTo(c(5))
		})
		on(c(5), finish)

	case instructions.IndirectIndexed:
		on(c(1), func(t *transition) {
			t.read(zeroPage(t.in[DataIn]))
			t.set(TempPointer, t.in[DataIn])
			t.goTo(c(2))
		})
		on(c(2), func(t *transition) {
			t.set(TempAddress, zeroPage(t.in[DataIn]))
			t.read(zeroPage(smt.BVAdd(t.in[TempPointer], smt.BV(1, 8))))
			t.goTo(c(3))
		})

		// the index is added after dereferencing the pointer
		indexed(c(3), c(4), x(3))
		on(c(4), finish)

	default:
		panic(fmt.Sprintf("cpu: unsupported addressing mode %s", defn.AddressingMode))
	}

	return rules
}
