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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/sat6502/hardware"
	"github.com/jetsetilly/sat6502/hardware/cpu"
	"github.com/jetsetilly/sat6502/hardware/memory/cartridge"
	"github.com/jetsetilly/sat6502/hardware/memory/ram"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/smt/propagate"
	"github.com/jetsetilly/sat6502/test"
)

// a system with a fully known initial state. the program is in RAM from
// address zero and the reset vector points to it
func newSystem(t *testing.T, program ...uint8) *hardware.System {
	t.Helper()

	rom, err := cartridge.NewBuilder().Vector(cpu.ResetVectorLo, 0x0000).Build()
	test.DemandSuccess(t, err)

	image := make([]uint8, 2048)
	copy(image, program)

	sys, err := hardware.NewSystem(rom, hardware.Options{
		Registers: &cpu.Registers{},
		RAM:       image,
	})
	test.DemandSuccess(t, err)

	return sys
}

func value(t *testing.T, sys *hardware.System, m *propagate.Model, name string) uint64 {
	t.Helper()
	sym, err := sys.Symbol(name)
	test.DemandSuccess(t, err)
	v, ok := m.Value(sym.Name())
	test.DemandSuccess(t, ok, name)
	return v
}

func solve(t *testing.T, sys *hardware.System) *propagate.Model {
	t.Helper()
	s, err := propagate.Solve(sys.Formula())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, s.Verdict, propagate.Sat)
	return s.Model
}

func TestPowerOn(t *testing.T) {
	sys := newSystem(t)

	test.ExpectFailure(t, sys.Step())
	test.DemandSuccess(t, sys.PowerOn())
	test.ExpectFailure(t, sys.PowerOn())

	f := sys.Formula()
	test.ExpectEquality(t, f[0].String(), "(set-logic QF_ABV)")

	// power on is followed by a bus phase
	sym, err := sys.Symbol(cpu.DataIn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sym.Name(), "CPU_DataIn_0")

	_, err = sys.Symbol("CPU_Nothing")
	test.ExpectFailure(t, err)
}

func TestReset(t *testing.T) {
	sys := newSystem(t)
	test.DemandSuccess(t, sys.PowerOn())
	test.DemandSuccess(t, sys.Reset())
	test.ExpectEquality(t, sys.Cycles(), hardware.ResetCycles)

	m := solve(t, sys)

	// the first opcode is being fetched from the reset vector
	st, _ := sys.CPU.States().Index(cpu.InstructionFetch)
	test.ExpectEquality(t, value(t, sys, m, cpu.State), uint64(st))
	test.ExpectEquality(t, value(t, sys, m, cpu.PC), uint64(0x0001))
	test.ExpectEquality(t, value(t, sys, m, cpu.AddressBus), uint64(0x0000))
	test.ExpectEquality(t, value(t, sys, m, cpu.SP), uint64(0xfd))
	test.ExpectEquality(t, value(t, sys, m, cpu.P), uint64(0x04))
}

func TestLoadImmediate(t *testing.T) {
	sys := newSystem(t, 0xa9, 0x5a)
	test.DemandSuccess(t, sys.PowerOn())
	test.DemandSuccess(t, sys.Reset())
	test.DemandSuccess(t, sys.Run(2))

	m := solve(t, sys)
	test.ExpectEquality(t, value(t, sys, m, cpu.A), uint64(0x5a))
	test.ExpectEquality(t, value(t, sys, m, cpu.PC), uint64(0x0003))
}

func TestStore(t *testing.T) {
	// LDA #$3c; STA $0801 (a mirror of $0001)
	sys := newSystem(t, 0xa9, 0x3c, 0x8d, 0x01, 0x08)
	test.DemandSuccess(t, sys.PowerOn())
	test.DemandSuccess(t, sys.Reset())
	test.DemandSuccess(t, sys.Run(6))

	m := solve(t, sys)

	mem, err := sys.Symbol(ram.Memory)
	test.DemandSuccess(t, err)
	v, ok := m.Select(mem.Name(), 0x0001)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, v, uint64(0x3c))

	test.ExpectEquality(t, value(t, sys, m, cpu.WriteEnable), uint64(0))
}

func TestUnconstrained(t *testing.T) {
	rom, err := cartridge.NewBuilder().Build()
	test.DemandSuccess(t, err)

	// without initial values the timeline can not be decided by propagation
	sys, err := hardware.NewSystem(rom, hardware.Options{})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, sys.PowerOn())
	test.DemandSuccess(t, sys.Reset())

	f := append(sys.Formula(), smt.Assert(smt.True))
	_, err = propagate.Solve(f)
	test.ExpectFailure(t, err)
}
