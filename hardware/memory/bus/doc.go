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

// Package bus connects the CPU to the page handlers of the memory map.
//
// A bus phase is compiled in two halves with the page handlers applied in
// between. The front half decodes the address driven by the CPU and selects
// exactly one handler: the handler whose page number is equal to the top four
// bits of the address. The address, write enable and data lines of the CPU are
// forwarded to every handler whether it is selected or not.
//
// The back half returns the output of the selected handler to the CPU by
// writing a new version of CPU_DataIn.
//
// Each handler is known to the bus by the prefix of its variables. For a
// prefix P the bus writes the variables PChipSelect, PAddress,
// PWriteEnable and PDataIn and reads the variable PDataOut. The helper
// functions ChipSelect(), Address(), WriteEnable(), DataIn() and DataOut()
// return the variable names for a prefix.
//
// The bus does not repair a page configuration in which a page is served by
// more than one handler. Overlaps() can be used to detect such a
// configuration before compilation.
package bus
