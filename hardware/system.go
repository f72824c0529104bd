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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/cpu"
	"github.com/jetsetilly/sat6502/hardware/memory/bus"
	"github.com/jetsetilly/sat6502/hardware/memory/cartridge"
	"github.com/jetsetilly/sat6502/hardware/memory/memorymap"
	"github.com/jetsetilly/sat6502/hardware/memory/null"
	"github.com/jetsetilly/sat6502/hardware/memory/ram"
	"github.com/jetsetilly/sat6502/logger"
	"github.com/jetsetilly/sat6502/smt"
	"github.com/jetsetilly/sat6502/statevar"
)

// Logic is the SMT-LIB2 logic of the formulas produced by the System.
const Logic = "QF_ABV"

// Options for the System.
type Options struct {
	// express array equality as the equality of every cell
	Extensionality bool

	// initial values of the CPU registers. registers are unconstrained if nil
	Registers *cpu.Registers

	// initial content of RAM, starting at address zero. RAM is unconstrained
	// if nil
	RAM []uint8

	// permission for logging of every unit applied to the system
	Log logger.Permission
}

// System is the container for the compiled components of the hardware.
type System struct {
	CPU    *cpu.CPU
	RAM    *ram.RAM
	Mapper cartridge.Mapper

	// the handler for each page of the address space
	Handlers [memorymap.NumPages]statevar.PageHandler

	opts  Options
	reg   *statevar.Registry
	slots []bus.Slot
	frags []smt.Command

	poweredOn bool
	cycles    int
}

// NewSystem creates a new System for the cartridge ROM.
func NewSystem(rom cartridge.ROM, opts Options) (*System, error) {
	if opts.Log == nil {
		opts.Log = logger.Deny
	}

	sys := &System{
		CPU:  cpu.NewCPU(),
		RAM:  ram.NewRAM(opts.Extensionality),
		opts: opts,
		reg:  statevar.NewRegistry(),
	}

	var err error

	sys.Mapper, err = cartridge.NewMapper(rom)
	if err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	for page := range sys.Handlers {
		switch memorymap.PageArea(page) {
		case memorymap.RAM:
			sys.Handlers[page] = sys.RAM.Handler(page)
		case memorymap.Null:
			sys.Handlers[page] = null.NewNull(page)
		case memorymap.Cartridge:
			h, ok := sys.Mapper.PageHandler(page)
			if !ok {
				return nil, curated.Errorf("hardware: %v", fmt.Sprintf("%s has no handler for page %d", sys.Mapper.ID(), page))
			}
			sys.Handlers[page] = h
		}
		sys.slots = append(sys.slots, bus.Slot{Page: page, Prefix: sys.Handlers[page].Prefix()})
	}

	if o := bus.Overlaps(sys.slots); len(o) > 0 {
		logger.Logf(logger.Allow, "system", "pages served by more than one handler: %v", o)
	}

	return sys, nil
}

func (sys *System) apply(label string, units ...statevar.CodeGenerator) error {
	for _, u := range units {
		frags, err := sys.reg.Apply(u)
		if err != nil {
			return curated.Errorf("hardware: %v", err)
		}
		sys.frags = append(sys.frags, frags...)
	}
	logger.Logf(sys.opts.Log, "system", "%s: %d units (%d fragments total)", label, len(units), len(sys.frags))
	return nil
}

func (sys *System) busPhase() []statevar.CodeGenerator {
	units := make([]statevar.CodeGenerator, 0, len(sys.Handlers)+2)
	units = append(units, bus.FrontHalf(sys.slots))
	for _, h := range sys.Handlers {
		units = append(units, h)
	}
	units = append(units, bus.BackHalf(sys.slots))
	return units
}

// PowerOn compiles the state of the system when power is applied. Must be
// called once before any call to Step().
func (sys *System) PowerOn() error {
	if sys.poweredOn {
		return curated.Errorf("hardware: %v", "already powered on")
	}

	units := []statevar.CodeGenerator{
		sys.CPU.PowerOn(sys.opts.Registers),
		sys.RAM.PowerOn(),
	}

	if sys.opts.RAM != nil {
		c, err := sys.RAM.Contents(0, sys.opts.RAM)
		if err != nil {
			return curated.Errorf("hardware: %v", err)
		}
		units = append(units, c)
	}

	units = append(units, sys.Mapper.Initialiser())
	units = append(units, sys.busPhase()...)

	if err := sys.apply("power on", units...); err != nil {
		return err
	}

	sys.poweredOn = true
	return nil
}

// Step compiles one cycle of the CPU and the bus phase that follows it.
func (sys *System) Step() error {
	if !sys.poweredOn {
		return curated.Errorf("hardware: %v", "not powered on")
	}

	units := append([]statevar.CodeGenerator{sys.CPU.Cycle()}, sys.busPhase()...)
	if err := sys.apply(fmt.Sprintf("cycle %d", sys.cycles+1), units...); err != nil {
		return err
	}

	sys.cycles++
	return nil
}

// Run compiles the number of cycles.
func (sys *System) Run(cycles int) error {
	for i := 0; i < cycles; i++ {
		if err := sys.Step(); err != nil {
			return err
		}
	}
	return nil
}

// ResetCycles is the number of cycles in the reset sequence of the CPU.
const ResetCycles = 8

// Reset compiles the cycles of the reset sequence. After the reset, the CPU
// is ready to decode the first opcode.
func (sys *System) Reset() error {
	return sys.Run(ResetCycles)
}

// Apply compiles an additional unit into the timeline. Used for the
// constraints of a test that are not part of the hardware.
func (sys *System) Apply(unit statevar.CodeGenerator) error {
	return sys.apply("unit", unit)
}

// Cycles returns the number of cycles compiled since power on.
func (sys *System) Cycles() int {
	return sys.cycles
}

// Symbol returns the symbol for the current version of a state variable.
func (sys *System) Symbol(name string) (smt.Symbol, error) {
	s, err := sys.reg.Current(name)
	if err != nil {
		return smt.Symbol{}, curated.Errorf("hardware: %v", err)
	}
	return s, nil
}

// Formula returns the formula for the timeline compiled so far. The formula
// does not include the check-sat command.
func (sys *System) Formula() smt.Formula {
	f := make(smt.Formula, 0, len(sys.frags)+1)
	f = append(f, smt.Logic(Logic))
	f = append(f, sys.frags...)
	return f
}

func (sys *System) String() string {
	return fmt.Sprintf("%s, %d cycles", sys.Mapper, sys.cycles)
}
