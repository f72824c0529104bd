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

// Package statevar implements the single-assignment naming discipline for the
// state variables of the hardware model, and the code generation contract
// that every hardware unit implements.
//
// A state variable is a name, for example "CPU_A". Every time a hardware unit
// writes to the variable a new version is allocated and a new symbol is
// created. Version 3 of CPU_A is the symbol CPU_A_3. A version is never
// written to twice and so each symbol denotes the value of the variable at
// one instant in time.
//
// Hardware units implement the CodeGenerator interface. The Reads() and
// Writes() functions list the names of the variables read and written by the
// unit. The Registry resolves the names to symbols and calls Generate() with
// the two maps of symbols. A code generator never allocates versions itself.
//
// Applying the same unit twice models two steps of discrete time. The output
// symbols of the first application are the input symbols of the second for
// any variable that the unit both reads and writes.
//
// The Registry only checks that a variable is written before it is read. The
// order in which units are applied is the responsibility of the caller.
package statevar
