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

// Package memorymap describes the 16 bit address space of the CPU as it is
// seen by the memory bus.
//
// The address space is divided into 16 pages of 4096 bytes. The page of an
// address is selected by the top four bits of the address. Each page is
// served by exactly one page handler and the assignment of handlers to pages
// follows the NES:
//
//	0000 -> 1fff	RAM (2048 bytes mirrored every 0x0800)
//	2000 -> 7fff	Null (PPU, APU and IO registers are not modelled)
//	8000 -> ffff	Cartridge
//
// The MapAddress() function normalises an address to the address seen by the
// handler of the area. Summary() lists the contiguous areas of the map.
package memorymap
