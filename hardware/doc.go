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

// Package hardware wires the CPU, the memory bus and the page handlers into a
// single System and compiles a timeline of the system into a formula.
//
// A timeline always begins with PowerOn(). Power on declares the initial state
// of every unit and is followed by one bus phase, so that the data bus holds
// the byte at the address driven by the CPU when power was applied. Every
// call to Step() compiles one cycle of the CPU followed by one bus phase. The
// reset sequence of the CPU is eight cycles long and Reset() is a convenient
// way of stepping through it.
//
// A bus phase is the front half of the bus, the page handler of each of the
// 16 pages in order and the back half of the bus.
//
//	sys, err := hardware.NewSystem(rom, hardware.Options{})
//	err = sys.PowerOn()
//	err = sys.Reset()
//	err = sys.Run(2)
//	a, err := sys.Symbol(cpu.A)
//
// The System owns the state variable registry of the timeline. The Formula()
// function returns the fragments of every unit applied so far.
//
// A System is not safe for concurrent use but any number of systems can be
// compiled in parallel.
package hardware
