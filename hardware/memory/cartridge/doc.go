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

// Package cartridge models the cartridge connected to the upper half of the
// CPU address space.
//
// The content of a cartridge is a ROM. A ROM is created with the Builder type,
// either from the PRG data of a cartridge file (see the cartridgeloader
// package) or from scratch by writing bytes at CPU addresses:
//
//	rom, err := cartridge.NewBuilder().
//		Write(0x8000, 0xa9, 0x5a).
//		Vector(cpu.ResetVectorLo, 0x8000).
//		Build()
//
// A ROM is given to NewMapper() to create the Mapper for the mapper number of
// the ROM. The Mapper provides the code generator that declares and pins the
// content of the cartridge and the page handlers for the pages of the
// cartridge area.
//
// Currently supported mappers:
//
//	0	NROM	16 KiB or 32 KiB of fixed PRG-ROM
//
// A 16 KiB NROM cartridge is mirrored in the cartridge area. Writes to the
// cartridge are ignored.
package cartridge
