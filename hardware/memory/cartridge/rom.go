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
	"fmt"
)

// BankSize is the unit of PRG-ROM size.
const BankSize = 16384

// ROM is the immutable content of a cartridge.
type ROM struct {
	name   string
	mapper int
	prg    []uint8
}

// Name of the ROM. Usually the name of the file it was loaded from.
func (r ROM) Name() string {
	return r.name
}

// Mapper returns the mapper number.
func (r ROM) Mapper() int {
	return r.mapper
}

// Size returns the number of bytes of PRG-ROM.
func (r ROM) Size() int {
	return len(r.prg)
}

// Read returns the byte of PRG-ROM at the offset.
func (r ROM) Read(offset int) uint8 {
	return r.prg[offset]
}

// PRG returns a copy of the PRG-ROM.
func (r ROM) PRG() []uint8 {
	p := make([]uint8, len(r.prg))
	copy(p, r.prg)
	return p
}

func (r ROM) String() string {
	if r.name == "" {
		return fmt.Sprintf("mapper %d, %dk PRG", r.mapper, len(r.prg)/1024)
	}
	return fmt.Sprintf("%s (mapper %d, %dk PRG)", r.name, r.mapper, len(r.prg)/1024)
}
