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

// Package ram implements the page handler for the 2048 bytes of internal RAM.
//
// The content of RAM is the array variable RAM_Memory, addressed by 11 bits.
// Every RAM handler reads and writes the same array and so a RAM that is
// mapped to more than one page is mirrored. In the NES memory map RAM is
// mapped to pages 0 and 1 and the 2048 bytes appear four times between 0x0000
// and 0x1fff.
//
// The output of a handler that is not selected is zero and the array is
// unchanged. When selected for reading the output is the addressed cell and
// when selected for writing the cell is replaced and the output is the data
// written.
//
// The equality of two arrays can be expressed natively or as the equality of
// every cell. The second form is selected with the Extensionality option. The
// two forms are equivalent but solvers differ in how well they handle them.
package ram
