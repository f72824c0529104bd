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

// Names of the CPU state variables. These names are the interface between the
// CPU and the other hardware units and must not be changed.
const (
	A             = "CPU_A"
	X             = "CPU_X"
	Y             = "CPU_Y"
	SP            = "CPU_SP"
	P             = "CPU_P"
	PC            = "CPU_PC"
	State         = "CPU_State"
	ResetSequence = "CPU_ResetSequence"
	AddressBus    = "CPU_AddressBus"
	WriteEnable   = "CPU_WriteEnable"
	DataOut       = "CPU_DataOut"
	DataIn        = "CPU_DataIn"
	TempAddress   = "CPU_TempAddress"
	TempPointer   = "CPU_TempPointer"
)

// Outputs is the list of variables written by every CPU cycle, in the order
// in which they are constrained. CPU_DataIn is written by the memory bus.
var Outputs = []string{
	A, X, Y, SP, P, PC,
	State, ResetSequence,
	AddressBus, WriteEnable, DataOut,
	TempAddress, TempPointer,
}

// the number of phases in the reset sequence
const resetPhases = 8

// widths of the fixed-width variables. the width of CPU_State depends on the
// number of micro-states
var widths = map[string]int{
	A:             8,
	X:             8,
	Y:             8,
	SP:            8,
	P:             8,
	PC:            16,
	ResetSequence: 3,
	AddressBus:    16,
	WriteEnable:   1,
	DataOut:       8,
	DataIn:        8,
	TempAddress:   16,
	TempPointer:   8,
}

// Width returns the width in bits of the named CPU variable, excluding
// CPU_State. Returns zero if the name is not a CPU variable.
func Width(name string) int {
	return widths[name]
}

// Bits of the status register.
const (
	Carry            = 0
	Zero             = 1
	InterruptDisable = 2
	DecimalMode      = 3
	Break            = 4
	Overflow         = 6
	Sign             = 7
)

// Vectors in the top of the address space.
const (
	ResetVectorLo = uint16(0xfffc)
	ResetVectorHi = uint16(0xfffd)
)

// the stack lives in page one of the address space
const stackPage = uint8(0x01)
