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

package verification_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/cpu"
	"github.com/jetsetilly/sat6502/hardware/memory/cartridge"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/solver"
	"github.com/jetsetilly/sat6502/test"
	"github.com/jetsetilly/sat6502/verification"
)

// replies with a fixed sequence of results
type scripted struct {
	replies []solver.Result
	calls   int
}

func (s *scripted) Name() string {
	return "scripted"
}

func (s *scripted) Check(_ context.Context, _ smt.Formula) (solver.Result, error) {
	r := s.replies[s.calls%len(s.replies)]
	s.calls++
	return r, nil
}

func TestContingent(t *testing.T) {
	setup := smt.Formula{smt.DeclareBV(smt.Sym("x"), 8)}
	goal := smt.Eq(smt.Sym("x"), smt.BV(1, 8))

	check := func(h, f solver.Result) error {
		b := &scripted{replies: []solver.Result{h, f}}
		err := verification.Contingent(context.Background(), b, setup, goal, "test")
		test.ExpectEquality(t, b.calls, 2)
		return err
	}

	test.ExpectSuccess(t, check(solver.Sat, solver.Unsat))
	test.ExpectSuccess(t, curated.Is(check(solver.Sat, solver.Sat), verification.Vacuous))
	test.ExpectSuccess(t, curated.Is(check(solver.Unsat, solver.Unsat), verification.Contradictory))
	test.ExpectSuccess(t, curated.Is(check(solver.Unsat, solver.Sat), verification.Refuted))
}

func TestContingentPropagate(t *testing.T) {
	setup := smt.Formula{
		smt.DeclareBV(smt.Sym("x"), 8),
		smt.Assert(smt.Eq(smt.Sym("x"), smt.BV(3, 8))),
	}

	err := verification.Contingent(context.Background(), solver.Propagate{}, setup, smt.Eq(smt.Sym("x"), smt.BV(3, 8)), "three")
	test.ExpectSuccess(t, err)

	err = verification.Contingent(context.Background(), solver.Propagate{}, setup, smt.Eq(smt.Sym("x"), smt.BV(4, 8)), "four")
	test.ExpectSuccess(t, curated.Is(err, verification.Refuted))
}

func TestBuiltin(t *testing.T) {
	results := verification.Run(context.Background(), solver.Propagate{}, verification.Builtin, verification.RunOptions{})
	test.DemandEquality(t, len(results), len(verification.Builtin))
	for _, r := range results {
		test.ExpectSuccess(t, r.Err, r.Scenario.Name)
	}
	test.ExpectEquality(t, results.Failed(), 0)
}

func TestBuiltinParallel(t *testing.T) {
	backend := solver.NewCache(solver.Propagate{})
	results := verification.Run(context.Background(), backend, verification.Builtin, verification.RunOptions{Parallel: 4})
	test.DemandEquality(t, len(results), len(verification.Builtin))

	// results are in the same order as the scenarios
	for i, r := range results {
		test.ExpectEquality(t, r.Scenario.Name, verification.Builtin[i].Name)
		test.ExpectSuccess(t, r.Passed(), r.Scenario.Name)
	}
}

func TestExtensionality(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles every builtin scenario twice")
	}

	// a wrong expectation of RAM is refuted by both encodings
	scenarios := append([]verification.Scenario{}, verification.Builtin...)
	for _, s := range verification.Builtin {
		if len(s.Expect.RAM) > 0 {
			wrong := s
			wrong.Name = s.Name + " (wrong)"
			wrong.Expect.RAM = make(map[uint16]uint8, len(s.Expect.RAM))
			for a, v := range s.Expect.RAM {
				wrong.Expect.RAM[a] = v + 1
			}
			scenarios = append(scenarios, wrong)
			break
		}
	}
	test.DemandEquality(t, len(scenarios), len(verification.Builtin)+1)

	stores := verification.Run(context.Background(), solver.Propagate{}, scenarios, verification.RunOptions{})
	cells := verification.Run(context.Background(), solver.Propagate{}, scenarios, verification.RunOptions{
		Options: verification.Options{Extensionality: true},
	})
	test.DemandEquality(t, len(stores), len(cells))

	for i := range stores {
		name := stores[i].Scenario.Name
		test.ExpectEquality(t, cells[i].Passed(), stores[i].Passed(), name)
		if i < len(verification.Builtin) {
			test.ExpectSuccess(t, stores[i].Err, name)
			test.ExpectSuccess(t, cells[i].Err, name)
		} else {
			test.ExpectSuccess(t, curated.Is(stores[i].Err, verification.Refuted), name)
			test.ExpectSuccess(t, curated.Is(cells[i].Err, verification.Refuted), name)
		}
	}
}

func TestRefuted(t *testing.T) {
	s := verification.Builtin[0]
	v := uint8(0x5b)
	s.Expect.A = &v
	s.Expect.PC = nil
	s.Expect.P = ""

	err := s.Check(context.Background(), solver.Propagate{}, verification.Options{})
	test.ExpectSuccess(t, curated.Is(err, verification.Refuted))

	results := verification.Run(context.Background(), solver.Propagate{}, []verification.Scenario{s}, verification.RunOptions{})
	test.ExpectEquality(t, results.Failed(), 1)
	test.ExpectEquality(t, results.String(), "1 scenarios, 0 passed, 1 failed")
}

func TestROM(t *testing.T) {
	rom, err := cartridge.NewBuilder().
		Name("rom").
		Vector(cpu.ResetVectorLo, 0x8000).
		Write(0x8000, 0xa9, 0x42).
		Build()
	test.DemandSuccess(t, err)

	a := uint8(0x42)
	pc := uint16(0x8003)
	s := verification.Scenario{
		Name:   "program in the cartridge file",
		Origin: 0x8000,
		Cycles: 2,
		Expect: verification.Expect{A: &a, PC: &pc},
	}
	test.ExpectSuccess(t, s.Check(context.Background(), solver.Propagate{}, verification.Options{ROM: &rom}))

	// the scenario vector replaces the vector of the cartridge
	v := uint16(0x0000)
	s.Vector = &v
	s.Program = nil
	s.Origin = 0
	s.RAM = map[uint16]uint8{0x0000: 0xa9, 0x0001: 0x42}
	pc = 0x0003
	test.ExpectSuccess(t, s.Check(context.Background(), solver.Propagate{}, verification.Options{ROM: &rom}))
}

func TestQuery(t *testing.T) {
	setup := smt.Formula{smt.DeclareBV(smt.Sym("x"), 8)}
	goal := smt.Eq(smt.Sym("x"), smt.BV(1, 8))

	q := verification.Query(setup, goal, false)
	test.DemandEquality(t, len(q), 2)
	test.ExpectEquality(t, len(setup), 1)
	test.ExpectEquality(t, q[1].String(), "(assert (not (= x #x01)))")
}

func TestValidate(t *testing.T) {
	a := uint8(1)

	s := verification.Scenario{Name: "empty", Cycles: 1}
	test.ExpectFailure(t, s.Validate())

	s.Expect.A = &a
	test.ExpectSuccess(t, s.Validate())

	s.Origin = 0x4000
	test.ExpectFailure(t, s.Validate())

	s.Origin = 0x07ff
	s.Program = []uint8{0xea, 0xea}
	test.ExpectFailure(t, s.Validate())

	s.Origin = 0
	s.RAM = map[uint16]uint8{0x8000: 1}
	test.ExpectFailure(t, s.Validate())

	s.RAM = nil
	s.PRG = map[uint16]uint8{0x0100: 1}
	test.ExpectFailure(t, s.Validate())

	s.PRG = nil
	s.Expect.P = "bad"
	test.ExpectFailure(t, s.Validate())

	s.Expect.P = ""
	s.Expect.RAM = map[uint16]uint8{0x3000: 1}
	test.ExpectFailure(t, s.Validate())

	// compiling reports the address rather than panicking
	_, _, err := s.Compile(verification.Options{})
	test.ExpectFailure(t, err)

	s.Expect.RAM = map[uint16]uint8{0x0810: 1}
	test.ExpectSuccess(t, s.Validate())

	s.Expect.RAM = nil
	s.Name = ""
	test.ExpectFailure(t, s.Validate())
}

const scenarioFile = `
- name: load and store
  origin: 0x0000
  program: [0xa9, 0x42, 0x85, 0x10]
  registers:
    sp: 0xff
  cycles: 5
  expect:
    a: 0x42
    sp: 0xfc
    p: "s.-...z."
    ram:
      0x0010: 0x42
- name: from cartridge
  origin: 0x8000
  program: [0xad, 0x10, 0xc0]
  prg:
    0xc010: 0x11
  cycles: 4
  expect:
    a: 0x11
    pc: 0x8004
`

func TestLoadScenarios(t *testing.T) {
	scenarios, err := verification.LoadScenarios(strings.NewReader(scenarioFile))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(scenarios), 2)

	test.ExpectEquality(t, scenarios[0].Name, "load and store")
	test.ExpectEquality(t, scenarios[0].Registers.SP, uint8(0xff))
	test.ExpectEquality(t, scenarios[0].Expect.RAM[0x0010], uint8(0x42))
	test.ExpectEquality(t, scenarios[1].Origin, uint16(0x8000))
	test.ExpectEquality(t, scenarios[1].PRG[0xc010], uint8(0x11))

	results := verification.Run(context.Background(), solver.Propagate{}, scenarios, verification.RunOptions{})
	for _, r := range results {
		test.ExpectSuccess(t, r.Err, r.Scenario.Name)
	}

	// writing and reading produces the same scenarios
	w := &test.Writer{}
	test.DemandSuccess(t, verification.WriteScenarios(w, scenarios))
	again, err := verification.LoadScenarios(strings.NewReader(w.String()))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(again), 2)
	test.ExpectEquality(t, *again[1].Expect.PC, uint16(0x8004))
}

func TestLoadScenariosErrors(t *testing.T) {
	_, err := verification.LoadScenarios(strings.NewReader(""))
	test.ExpectFailure(t, err)

	// an empty list is no more useful than an empty file
	_, err = verification.LoadScenarios(strings.NewReader("[]"))
	test.ExpectFailure(t, err)

	// unknown field
	_, err = verification.LoadScenarios(strings.NewReader(`
- name: typo
  program: [0xea]
  cycle: 2
  expect:
    a: 0
`))
	test.ExpectFailure(t, err)

	// nothing expected
	_, err = verification.LoadScenarios(strings.NewReader(`
- name: nothing
  program: [0xea]
  cycles: 2
`))
	test.ExpectFailure(t, err)
}
