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

package cartridge

import (
	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/hardware/memory/memorymap"
)

// Builder creates a ROM. The zero value is not usable, use NewBuilder().
//
// Errors are remembered and returned by Build(). Once an error has been
// remembered all other calls have no effect.
type Builder struct {
	rom ROM
	err error
}

// NewBuilder is the preferred method of initialisation for the Builder type.
// The initial ROM is 16 KiB of zeroes for mapper 0.
func NewBuilder() *Builder {
	return &Builder{
		rom: ROM{prg: make([]uint8, BankSize)},
	}
}

// Name sets the name of the ROM.
func (b *Builder) Name(name string) *Builder {
	b.rom.name = name
	return b
}

// Mapper sets the mapper number of the ROM.
func (b *Builder) Mapper(mapper int) *Builder {
	if b.err != nil {
		return b
	}
	if mapper < 0 || mapper > 255 {
		b.err = curated.Errorf("cartridge: invalid mapper number (%d)", mapper)
		return b
	}
	b.rom.mapper = mapper
	return b
}

// PRG replaces the PRG-ROM with a copy of the data. The length of the data
// must be a non-zero multiple of BankSize.
func (b *Builder) PRG(data []uint8) *Builder {
	if b.err != nil {
		return b
	}
	if len(data) == 0 || len(data)%BankSize != 0 {
		b.err = curated.Errorf("cartridge: PRG size must be a multiple of %d bytes (%d)", BankSize, len(data))
		return b
	}
	b.rom.prg = make([]uint8, len(data))
	copy(b.rom.prg, data)
	return b
}

// Banks resizes the PRG-ROM to the number of banks. The new content is zero.
func (b *Builder) Banks(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n <= 0 {
		b.err = curated.Errorf("cartridge: invalid number of banks (%d)", n)
		return b
	}
	b.rom.prg = make([]uint8, n*BankSize)
	return b
}

// Write the data into PRG-ROM as it would be seen by the CPU at the address.
// For a 16 KiB ROM the address is mirrored.
func (b *Builder) Write(address uint16, data ...uint8) *Builder {
	if b.err != nil {
		return b
	}
	for i, v := range data {
		a := int(address) + i
		if a < int(memorymap.OriginCart) || a > int(memorymap.MemtopCart) {
			b.err = curated.Errorf("cartridge: address is not in the cartridge area (%#04x)", a)
			return b
		}
		b.rom.prg[(a-int(memorymap.OriginCart))%len(b.rom.prg)] = v
	}
	return b
}

// Vector writes the 16 bit value in little-endian order at the address.
func (b *Builder) Vector(address uint16, v uint16) *Builder {
	return b.Write(address, uint8(v), uint8(v>>8))
}

// Build returns the ROM or the first error encountered.
func (b *Builder) Build() (ROM, error) {
	if b.err != nil {
		return ROM{}, b.err
	}
	r := b.rom
	r.prg = make([]uint8, len(b.rom.prg))
	copy(r.prg, b.rom.prg)
	return r, nil
}
