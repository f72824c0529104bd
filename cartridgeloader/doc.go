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

// Package cartridgeloader is used to load the cartridge data that is to be
// compiled with the system.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
//	cl := cartridgeloader.NewLoader("roms/test.nes")
//	err := cl.Load()
//
// Once loaded the data is converted to a cartridge.ROM with the ROM()
// function. Cartridge data must be in the iNES format. The 16 byte header of
// the file is:
//
//	0-3	"NES" followed by the MS-DOS end of file byte (0x1a)
//	4	size of PRG-ROM in units of 16 KiB
//	5	size of CHR-ROM in units of 8 KiB
//	6	flags: the low nibble of the mapper number in the upper four bits.
//		bit 2 indicates a trainer
//	7	flags: the high nibble of the mapper number in the upper four bits.
//		bits 2 and 3 equal to 2 indicates the NES 2.0 format
//	8-15	reserved, must be zero
//
// The header is followed by the PRG-ROM and then the CHR-ROM. The CHR-ROM is
// checked for size but is otherwise ignored.
//
// Files with a trainer, files in the NES 2.0 format and files with non-zero
// reserved bytes are rejected. A common source of non-zero reserved bytes is
// the "DiskDude!" signature left by an old ROM tool; these files are rejected
// with a specific error.
package cartridgeloader
