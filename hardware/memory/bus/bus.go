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

package bus

import (
	"fmt"
	"sort"
)

// Names of the variables shared between the bus and a handler.
const (
	chipSelect  = "ChipSelect"
	address     = "Address"
	writeEnable = "WriteEnable"
	dataIn      = "DataIn"
	dataOut     = "DataOut"
)

// ChipSelect returns the name of the chip select variable for a prefix.
func ChipSelect(prefix string) string {
	return prefix + chipSelect
}

// Address returns the name of the address variable for a prefix.
func Address(prefix string) string {
	return prefix + address
}

// WriteEnable returns the name of the write enable variable for a prefix.
func WriteEnable(prefix string) string {
	return prefix + writeEnable
}

// DataIn returns the name of the variable for data written to the handler.
func DataIn(prefix string) string {
	return prefix + dataIn
}

// DataOut returns the name of the variable for data read from the handler.
func DataOut(prefix string) string {
	return prefix + dataOut
}

// Prefix returns the conventional prefix for the handler of a page.
func Prefix(page int) string {
	return fmt.Sprintf("Page%d_", page)
}

// Slot is one entry of the page configuration.
type Slot struct {
	Page   int
	Prefix string
}

func (s Slot) String() string {
	return fmt.Sprintf("page %d (%s)", s.Page, s.Prefix)
}

// Overlaps returns the page numbers that are served by more than one slot.
// The list is sorted and empty if the configuration is sound.
func Overlaps(slots []Slot) []int {
	count := make(map[int]int)
	for _, s := range slots {
		count[s.Page]++
	}

	var overlaps []int
	for p, n := range count {
		if n > 1 {
			overlaps = append(overlaps, p)
		}
	}
	sort.Ints(overlaps)

	return overlaps
}
