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
	"github.com/jetsetilly/sat6502/statevar"
)

// UnsupportedMapper is the sentinel pattern for a ROM that has a mapper number
// with no implementation.
const UnsupportedMapper = "cartridge: unsupported mapper (%d)"

// Mapper is implemented by the cartridge mappers.
type Mapper interface {
	// short identifier of the mapper, eg. "NROM"
	ID() string

	// the code generator that declares the initial state of the cartridge.
	// should be applied once when power is applied
	Initialiser() statevar.CodeGenerator

	// the page handler for the page of the address space. pages outside the
	// cartridge area have no handler
	PageHandler(page int) (statevar.PageHandler, bool)
}

// NewMapper creates the mapper for the ROM.
func NewMapper(rom ROM) (Mapper, error) {
	switch rom.Mapper() {
	case 0:
		m, err := newNROM(rom)
		if err != nil {
			return nil, curated.Errorf("cartridge: %v", err)
		}
		return m, nil
	}

	return nil, curated.Errorf(UnsupportedMapper, rom.Mapper())
}
