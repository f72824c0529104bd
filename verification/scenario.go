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

package verification

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware"
	"github.com/jetsetilly/sat6502/hardware/cpu"
	"github.com/jetsetilly/sat6502/hardware/memory/cartridge"
	"github.com/jetsetilly/sat6502/hardware/memory/memorymap"
	"github.com/jetsetilly/sat6502/hardware/memory/ram"
	"github.com/jetsetilly/sat6502/logger"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/solver"
)

// Registers is the initial state of the CPU registers in a scenario.
type Registers struct {
	A  uint8  `yaml:"a"`
	X  uint8  `yaml:"x"`
	Y  uint8  `yaml:"y"`
	SP uint8  `yaml:"sp"`
	P  uint8  `yaml:"p"`
	PC uint16 `yaml:"pc"`
}

// Expect is the list of claims about the final state of a scenario. Only
// fields that are specified are claimed.
type Expect struct {
	A  *uint8  `yaml:"a,omitempty"`
	X  *uint8  `yaml:"x,omitempty"`
	Y  *uint8  `yaml:"y,omitempty"`
	SP *uint8  `yaml:"sp,omitempty"`
	PC *uint16 `yaml:"pc,omitempty"`

	// status register in the form accepted by cpu.ParseStatus()
	P string `yaml:"p,omitempty"`

	// content of RAM. addresses are mirrored
	RAM map[uint16]uint8 `yaml:"ram,omitempty"`
}

func (e Expect) empty() bool {
	return e.A == nil && e.X == nil && e.Y == nil && e.SP == nil && e.PC == nil && e.P == "" && len(e.RAM) == 0
}

// Scenario describes a program and the expected state of the system after
// running it.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// the program is placed at the origin. the origin must be in RAM or in
	// the cartridge area
	Origin  uint16  `yaml:"origin"`
	Program []uint8 `yaml:"program"`

	// the reset vector. the origin is used if the vector is not specified
	Vector *uint16 `yaml:"vector,omitempty"`

	// additional bytes in RAM and in the cartridge, by CPU address. RAM
	// that is not specified is zero
	RAM map[uint16]uint8 `yaml:"ram,omitempty"`
	PRG map[uint16]uint8 `yaml:"prg,omitempty"`

	Registers Registers `yaml:"registers,omitempty"`

	// number of cycles to run after the reset sequence
	Cycles int `yaml:"cycles"`

	Expect Expect `yaml:"expect"`
}

func (s Scenario) String() string {
	return s.Name
}

// Options used to compile a scenario.
type Options struct {
	Extensionality bool
	Log            logger.Permission

	// the cartridge to use instead of an empty NROM cartridge. the program
	// and PRG bytes of the scenario are written over the cartridge data. the
	// reset vector of the cartridge is used unless the scenario has a vector
	ROM *cartridge.ROM
}

// Validate checks the scenario for errors that would prevent compilation.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return curated.Errorf("verification: %v", "scenario has no name")
	}
	if s.Cycles < 0 {
		return curated.Errorf("verification: %s: %v", s.Name, "negative number of cycles")
	}
	if s.Expect.empty() {
		return curated.Errorf("verification: %s: %v", s.Name, "nothing is expected")
	}
	if s.Expect.P != "" {
		if _, err := cpu.ParseStatus(s.Expect.P); err != nil {
			return curated.Errorf("verification: %s: %v", s.Name, err)
		}
	}

	end := int(s.Origin) + len(s.Program)
	switch memorymap.PageArea(memorymap.Page(s.Origin)) {
	case memorymap.RAM:
		if end > memorymap.RAMSize {
			return curated.Errorf("verification: %s: %v", s.Name, "program does not fit in RAM")
		}
	case memorymap.Cartridge:
		if end > int(memorymap.MemtopCart)+1 {
			return curated.Errorf("verification: %s: %v", s.Name, "program does not fit in the cartridge area")
		}
	default:
		return curated.Errorf("verification: %s: %v", s.Name, fmt.Sprintf("origin is not in RAM or the cartridge area (%#04x)", s.Origin))
	}

	for a := range s.RAM {
		if !memorymap.IsArea(a, memorymap.RAM) {
			return curated.Errorf("verification: %s: %v", s.Name, fmt.Sprintf("address is not in RAM (%#04x)", a))
		}
	}
	for a := range s.Expect.RAM {
		if !memorymap.IsArea(a, memorymap.RAM) {
			return curated.Errorf("verification: %s: %v", s.Name, fmt.Sprintf("expected address is not in RAM (%#04x)", a))
		}
	}
	for a := range s.PRG {
		if !memorymap.IsArea(a, memorymap.Cartridge) {
			return curated.Errorf("verification: %s: %v", s.Name, fmt.Sprintf("address is not in the cartridge area (%#04x)", a))
		}
	}

	return nil
}

// sortedAddresses returns the keys of the map in order
func sortedAddresses(m map[uint16]uint8) []uint16 {
	k := make([]uint16, 0, len(m))
	for a := range m {
		k = append(k, a)
	}
	sort.Slice(k, func(i, j int) bool { return k[i] < k[j] })
	return k
}

// Compile the scenario. Returns the compiled system and the goal.
func (s Scenario) Compile(opts Options) (*hardware.System, smt.Term, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	b := cartridge.NewBuilder().Name(s.Name)
	if opts.ROM != nil {
		b.Name(opts.ROM.Name()).Mapper(opts.ROM.Mapper()).PRG(opts.ROM.PRG())
		if s.Vector != nil {
			b.Vector(cpu.ResetVectorLo, *s.Vector)
		}
	} else {
		vector := s.Origin
		if s.Vector != nil {
			vector = *s.Vector
		}
		b.Vector(cpu.ResetVectorLo, vector)
	}

	image := make([]uint8, memorymap.RAMSize)
	if memorymap.IsArea(s.Origin, memorymap.RAM) {
		copy(image[s.Origin:], s.Program)
	} else {
		b.Write(s.Origin, s.Program...)
	}

	for _, a := range sortedAddresses(s.RAM) {
		m, _ := memorymap.MapAddress(a)
		image[m] = s.RAM[a]
	}
	for _, a := range sortedAddresses(s.PRG) {
		b.Write(a, s.PRG[a])
	}

	rom, err := b.Build()
	if err != nil {
		return nil, nil, curated.Errorf("verification: %s: %v", s.Name, err)
	}

	sys, err := hardware.NewSystem(rom, hardware.Options{
		Extensionality: opts.Extensionality,
		Registers: &cpu.Registers{
			A:  s.Registers.A,
			X:  s.Registers.X,
			Y:  s.Registers.Y,
			SP: s.Registers.SP,
			P:  s.Registers.P,
			PC: s.Registers.PC,
		},
		RAM: image,
		Log: opts.Log,
	})
	if err != nil {
		return nil, nil, curated.Errorf("verification: %s: %v", s.Name, err)
	}

	if err := sys.PowerOn(); err != nil {
		return nil, nil, curated.Errorf("verification: %s: %v", s.Name, err)
	}
	if err := sys.Reset(); err != nil {
		return nil, nil, curated.Errorf("verification: %s: %v", s.Name, err)
	}
	if err := sys.Run(s.Cycles); err != nil {
		return nil, nil, curated.Errorf("verification: %s: %v", s.Name, err)
	}

	goal, err := s.goal(sys)
	if err != nil {
		return nil, nil, curated.Errorf("verification: %s: %v", s.Name, err)
	}

	return sys, goal, nil
}

func (s Scenario) goal(sys *hardware.System) (_ smt.Term, err error) {
	defer func() {
		err = smt.Recover(recover(), err)
	}()

	var claims []smt.Term

	register := func(name string, v uint64) error {
		sym, err := sys.Symbol(name)
		if err != nil {
			return err
		}
		claims = append(claims, smt.Eq(sym, smt.BV(v, cpu.Width(name))))
		return nil
	}

	e := s.Expect
	for _, r := range []struct {
		name string
		v    *uint8
	}{
		{name: cpu.A, v: e.A},
		{name: cpu.X, v: e.X},
		{name: cpu.Y, v: e.Y},
		{name: cpu.SP, v: e.SP},
	} {
		if r.v != nil {
			if err := register(r.name, uint64(*r.v)); err != nil {
				return nil, err
			}
		}
	}

	if e.PC != nil {
		if err := register(cpu.PC, uint64(*e.PC)); err != nil {
			return nil, err
		}
	}

	if e.P != "" {
		f, err := cpu.ParseStatus(e.P)
		if err != nil {
			return nil, err
		}
		sym, err := sys.Symbol(cpu.P)
		if err != nil {
			return nil, err
		}
		claims = append(claims, smt.Eq(smt.BVAnd(sym, smt.BV(uint64(f.Mask), 8)), smt.BV(uint64(f.Value), 8)))
	}

	if len(e.RAM) > 0 {
		mem, err := sys.Symbol(ram.Memory)
		if err != nil {
			return nil, err
		}
		for _, a := range sortedAddresses(e.RAM) {
			m, _ := memorymap.MapAddress(a)
			cell := smt.Select(mem, smt.BV(uint64(m), memorymap.RAMBits))
			claims = append(claims, smt.Eq(cell, smt.BV(uint64(e.RAM[a]), 8)))
		}
	}

	return smt.And(claims...), nil
}

// Check compiles the scenario and checks that the expectations are a
// necessary consequence of the program.
func (s Scenario) Check(ctx context.Context, backend solver.Backend, opts Options) error {
	sys, goal, err := s.Compile(opts)
	if err != nil {
		return err
	}
	return Contingent(ctx, backend, sys.Formula(), goal, s.Name)
}

// LoadScenarios reads a list of scenarios in YAML. Unknown fields are an
// error.
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var scenarios []Scenario
	if err := dec.Decode(&scenarios); err != nil {
		if err == io.EOF {
			return nil, curated.Errorf("verification: %v", "no scenarios")
		}
		return nil, curated.Errorf("verification: %v", err)
	}
	if len(scenarios) == 0 {
		return nil, curated.Errorf("verification: %v", "no scenarios")
	}

	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}

	return scenarios, nil
}

// LoadScenarioFile reads the list of scenarios from the file.
func LoadScenarioFile(filename string) ([]Scenario, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("verification: %v", err)
	}
	defer f.Close()

	return LoadScenarios(f)
}

// WriteScenarios writes the list of scenarios in YAML.
func WriteScenarios(w io.Writer, scenarios []Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(scenarios); err != nil {
		return curated.Errorf("verification: %v", err)
	}
	return enc.Close()
}
