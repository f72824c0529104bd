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

import (
	"fmt"
	"strings"
)

// Summary returns a single multiline string detailing all the areas in
// memory.
func Summary() string {
	s := strings.Builder{}

	start := 0
	current := PageArea(0)

	for page := 1; page <= NumPages; page++ {
		// an area ends at the end of the address space or where the next page
		// belongs to a different area
		if page < NumPages && PageArea(page) == current {
			continue
		}

		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start<<PageBits, page<<PageBits-1, current.String()))

		if page < NumPages {
			current = PageArea(page)
			start = page
		}
	}

	return s.String()
}
