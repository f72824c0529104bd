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

// Package instructions holds the definitions of the 6502 opcodes that the CPU
// cycle compiler implements.
//
// The set of opcodes is deliberately a subset of the instruction set: the
// load and store instructions in every documented addressing mode, NOP and
// the single byte flag instructions. Adding an instruction that uses an
// existing addressing mode is a matter of adding a Definition to the table
// and an operation to the cpu package.
package instructions
