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
	"github.com/jetsetilly/sat6502/hardware/cpu/instructions"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/statevar"
)

// rule is one implication of the next-state relation
type rule struct {
	state string

	// optional guard in addition to the micro-state equality
	guard func(in map[string]smt.Symbol) smt.Term

	effect func(t *transition)
}

// CPU is the cycle compiler for the 6502. It is immutable once created and
// can be shared by any number of registries.
type CPU struct {
	definitions []instructions.Definition
	states      *States
	rules       []rule
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// implements the instructions in the instructions.Definitions table.
func NewCPU() *CPU {
	return NewCPUWithDefinitions(instructions.Definitions)
}

// NewCPUWithDefinitions creates a CPU that implements only the opcodes in the
// list of definitions.
func NewCPUWithDefinitions(definitions []instructions.Definition) *CPU {
	mc := &CPU{
		definitions: definitions,
		states:      newStates(),
	}

	mc.states.add(Resetting)
	mc.states.add(InstructionFetch)
	for _, defn := range definitions {
		for _, s := range schedule(defn) {
			mc.states.add(s)
		}
	}

	mc.rules = append(mc.rules, mc.resetRules()...)
	for _, defn := range definitions {
		mc.rules = append(mc.rules, mc.decodeRule(defn))
	}
	for _, defn := range definitions {
		mc.rules = append(mc.rules, mc.instructionRules(defn)...)
	}

	return mc
}

// States returns the enumeration of micro-states.
func (mc *CPU) States() *States {
	return mc.states
}

// Definitions returns the list of implemented instructions.
func (mc *CPU) Definitions() []instructions.Definition {
	return mc.definitions
}

// Rules returns the number of implications emitted by every cycle.
func (mc *CPU) Rules() int {
	return len(mc.rules)
}

func (mc *CPU) width(name string) int {
	if name == State {
		return mc.states.Width()
	}
	return widths[name]
}

// Registers are the initial values of the programmer visible registers.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8
	PC uint16
}

type powerOn struct {
	mc        *CPU
	registers *Registers
}

// PowerOn returns the code generator for the state of the CPU when power is
// applied. The CPU begins in the Resetting micro-state at phase zero of the
// reset sequence.
//
// The contents of the registers are unconstrained unless initial values are
// supplied. If initial values are supplied the internal registers of the CPU
// are zero.
func (mc *CPU) PowerOn(registers *Registers) statevar.CodeGenerator {
	return powerOn{mc: mc, registers: registers}
}

func (p powerOn) Reads() []string {
	return nil
}

func (p powerOn) Writes() []string {
	return Outputs
}

func (p powerOn) Generate(_ map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	frags := make([]smt.Command, 0, len(Outputs)*2+1)
	frags = append(frags, smt.Note("cpu power on"))

	for _, name := range Outputs {
		frags = append(frags, smt.DeclareBV(out[name], p.mc.width(name)))
	}

	eq := func(name string, v uint64) {
		frags = append(frags, smt.Assert(smt.Eq(out[name], smt.BV(v, p.mc.width(name)))))
	}

	frags = append(frags, smt.Assert(smt.Eq(out[State], p.mc.states.Literal(Resetting))))
	eq(ResetSequence, 0)
	eq(AddressBus, 0)
	eq(WriteEnable, 0)
	eq(DataOut, 0)

	if p.registers != nil {
		eq(A, uint64(p.registers.A))
		eq(X, uint64(p.registers.X))
		eq(Y, uint64(p.registers.Y))
		eq(SP, uint64(p.registers.SP))
		eq(P, uint64(p.registers.P))
		eq(PC, uint64(p.registers.PC))

		// the internal registers are also known for a deterministic power on
		eq(TempAddress, 0)
		eq(TempPointer, 0)
	}

	return frags
}

type cycle struct {
	mc *CPU
}

// Cycle returns the code generator for one cycle of the CPU.
func (mc *CPU) Cycle() statevar.CodeGenerator {
	return cycle{mc: mc}
}

var cycleReads = append(append([]string{}, Outputs...), DataIn)

func (c cycle) Reads() []string {
	return cycleReads
}

func (c cycle) Writes() []string {
	return Outputs
}

func (c cycle) Generate(in map[string]smt.Symbol, out map[string]smt.Symbol) []smt.Command {
	frags := make([]smt.Command, 0, len(Outputs)+len(c.mc.rules)+1)
	frags = append(frags, smt.Note("cpu cycle"))

	for _, name := range Outputs {
		frags = append(frags, smt.DeclareBV(out[name], c.mc.width(name)))
	}

	for _, r := range c.mc.rules {
		antecedent := smt.Eq(in[State], c.mc.states.Literal(r.state))
		if r.guard != nil {
			antecedent = smt.And(antecedent, r.guard(in))
		}

		t := newTransition(c.mc.states, in)
		r.effect(t)

		frags = append(frags, smt.Assert(smt.Implies(antecedent, t.consequent(out))))
	}

	return frags
}
