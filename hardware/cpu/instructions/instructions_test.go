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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/sat6502/hardware/cpu/instructions"
	"github.com/jetsetilly/sat6502/test"
)

func TestTable(t *testing.T) {
	seen := make(map[uint8]bool)
	labels := make(map[string]bool)

	for _, defn := range instructions.Definitions {
		test.ExpectFailure(t, seen[defn.OpCode], defn)
		seen[defn.OpCode] = true

		test.ExpectFailure(t, labels[defn.Label()], defn)
		labels[defn.Label()] = true

		// bytes are implied by the addressing mode
		switch defn.AddressingMode {
		case instructions.Implied:
			test.ExpectEquality(t, defn.Bytes, 1, defn)
		case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
			test.ExpectEquality(t, defn.Bytes, 3, defn)
		default:
			test.ExpectEquality(t, defn.Bytes, 2, defn)
		}

		// only loads are page sensitive
		if defn.PageSensitive {
			test.ExpectEquality(t, defn.Effect, instructions.Read, defn)
		}
	}
}

func TestLookup(t *testing.T) {
	defn, ok := instructions.Lookup(0xbd)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Label(), "LDA_ABX")
	test.ExpectEquality(t, defn.PageSensitive, true)

	_, ok = instructions.Lookup(0x00)
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, instructions.Definition{}.String(), "undecoded instruction")
}
