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

package memorymap_test

import (
	"testing"

	"github.com/jetsetilly/sat6502/hardware/memory/memorymap"
	"github.com/jetsetilly/sat6502/test"
)

const validMemMap = `0000 -> 1fff	RAM
2000 -> 7fff	Null
8000 -> ffff	Cartridge
`

func TestMemory(t *testing.T) {
	if memorymap.Summary() != validMemMap {
		t.Fatalf("memory map is invalid")
	}
}

func TestMapAddress(t *testing.T) {
	a, area := memorymap.MapAddress(0x0801)
	test.ExpectEquality(t, area, memorymap.RAM)
	test.ExpectEquality(t, a, uint16(0x0001))

	a, area = memorymap.MapAddress(0x1fff)
	test.ExpectEquality(t, area, memorymap.RAM)
	test.ExpectEquality(t, a, uint16(0x07ff))

	a, area = memorymap.MapAddress(0x4016)
	test.ExpectEquality(t, area, memorymap.Null)
	test.ExpectEquality(t, a, uint16(0x4016))

	test.ExpectSuccess(t, memorymap.IsArea(0xfffc, memorymap.Cartridge))
	test.ExpectFailure(t, memorymap.IsArea(0x7fff, memorymap.Cartridge))
}

func TestPages(t *testing.T) {
	test.ExpectEquality(t, memorymap.Page(0xfffc), 15)
	test.ExpectEquality(t, memorymap.PageArea(16), memorymap.Undefined)
	test.ExpectEquality(t, memorymap.PageArea(-1), memorymap.Undefined)

	o, err := memorymap.PageOrigin(8)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, o, memorymap.OriginCart)

	_, err = memorymap.PageOrigin(16)
	test.ExpectFailure(t, err)
}
