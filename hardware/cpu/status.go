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

package cpu

import (
	"github.com/jetsetilly/sat6502/curated"
	"github.com/jetsetilly/sat6502/smt"
)

// withBit rebuilds the status register with one bit replaced. there is no
// "modify one bit" primitive so the register is rebuilt from new and old
// slices
func withBit(p smt.Term, bit int, v smt.Term) smt.Term {
	switch bit {
	case 0:
		return smt.Concat(smt.Extract(7, 1, p), v)
	case 7:
		return smt.Concat(v, smt.Extract(6, 0, p))
	}
	return smt.Concat(smt.Extract(7, bit+1, p), smt.Concat(v, smt.Extract(bit-1, 0, p)))
}

// loadFlags returns the status register after loading the value into a
// register. the Zero flag is set if the value is zero and the Sign flag is a
// copy of bit 7 of the value. all other bits are preserved
func loadFlags(p smt.Term, value smt.Term) smt.Term {
	z := smt.Ite(smt.Eq(value, smt.BV(0, 8)), smt.Bit(true), smt.Bit(false))
	n := smt.Extract(7, 7, value)
	return smt.Concat(n, smt.Concat(smt.Extract(6, 2, p), smt.Concat(z, smt.Extract(0, 0, p))))
}

// StatusFlags is the expected value of some or all bits of the status
// register. Only bits set in Mask are significant.
type StatusFlags struct {
	Value uint8
	Mask  uint8
}

// the order of the flags in the string representation, from bit 7 to bit 0
const statusLetters = "sv-bdizc"

// ParseStatus parses the string representation of the status register. The
// string has one letter for each bit, from bit 7 to bit 0, in the order
// "sv-bdizc". An upper case letter means the flag is set and a lower case
// letter means the flag is clear. A '.' means the bit is not significant. The
// unused bit 5 is always written as '-' and is never significant.
//
// For example, "S.-..I.c" expects the sign and interrupt disable flags to be
// set and the carry flag to be clear.
func ParseStatus(s string) (StatusFlags, error) {
	var f StatusFlags

	if len(s) != len(statusLetters) {
		return f, curated.Errorf("cpu: status string must be %d characters (%s)", len(statusLetters), s)
	}

	for i := 0; i < len(s); i++ {
		bit := uint8(0x80) >> uint(i)
		c := s[i]
		l := statusLetters[i]

		switch {
		case l == '-':
			if c != '-' {
				return StatusFlags{}, curated.Errorf("cpu: unused status bit must be '-' (%s)", s)
			}
		case c == '.':
		case c == l:
			f.Mask |= bit
		case c == l-'a'+'A':
			f.Mask |= bit
			f.Value |= bit
		default:
			return StatusFlags{}, curated.Errorf("cpu: invalid status string (%s)", s)
		}
	}

	return f, nil
}

// StatusString returns the string representation of a status register value.
func StatusString(p uint8) string {
	b := []byte(statusLetters)
	for i := range b {
		if b[i] == '-' {
			continue
		}
		if p&(0x80>>uint(i)) != 0 {
			b[i] = b[i] - 'a' + 'A'
		}
	}
	return string(b)
}
