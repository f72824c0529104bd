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

package memorymap

import "github.com/jetsetilly/sat6502/curated"

// Area represents the different handlers in the memory map.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Null:
		return "Null"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas of the address space.
const (
	Undefined Area = iota
	RAM
	Null
	Cartridge
)

// The number of pages in the address space and the size of each page.
const (
	NumPages = 16
	PageSize = 0x1000
	PageBits = 12
)

// The origin and memtop of each area.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginNull = uint16(0x2000)
	MemtopNull = uint16(0x7fff)
	OriginCart = uint16(0x8000)
	MemtopCart = uint16(0xffff)
)

// Memtop is the top most address of the address space.
const Memtop = uint16(0xffff)

// The size of RAM and the mask for the mirrored RAM window.
const (
	RAMSize = 0x0800
	MaskRAM = uint16(RAMSize - 1)
	RAMBits = 11
)

// Page returns the page number of an address.
func Page(address uint16) int {
	return int(address >> PageBits)
}

// PageArea returns the area of the handler for the page. Pages outside the
// address space are Undefined.
func PageArea(page int) Area {
	switch {
	case page < 0 || page >= NumPages:
		return Undefined
	case page < Page(OriginNull):
		return RAM
	case page < Page(OriginCart):
		return Null
	}
	return Cartridge
}

// PageOrigin returns the first address of the page.
func PageOrigin(page int) (uint16, error) {
	if page < 0 || page >= NumPages {
		return 0, curated.Errorf("memorymap: no such page (%d)", page)
	}
	return uint16(page) << PageBits, nil
}

// MapAddress translates the address to the address seen by the handler of
// the area. RAM is mirrored and the address is reduced to the RAM window.
// Addresses in the other areas are unchanged.
func MapAddress(address uint16) (uint16, Area) {
	area := PageArea(Page(address))
	if area == RAM {
		return address & MaskRAM, area
	}
	return address, area
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
