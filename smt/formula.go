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

package smt

import (
	"bufio"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Formula is an ordered list of commands.
type Formula []Command

// Write the formula to the io.Writer, one command per line.
func (f Formula) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range f {
		if _, err := bw.WriteString(c.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Lines returns the serialised form of each command in the formula.
func (f Formula) Lines() []string {
	l := make([]string, len(f))
	for i, c := range f {
		l[i] = c.String()
	}
	return l
}

// Digest returns the xxhash of the serialised formula. Comments do not
// contribute to the digest.
func (f Formula) Digest() uint64 {
	h := xxhash.New()
	for _, c := range f {
		if _, ok := c.(Comment); ok {
			continue
		}
		h.WriteString(c.String())
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}

// Count returns the number of declarations and assertions in the formula.
func (f Formula) Count() (declarations int, assertions int) {
	for _, c := range f {
		switch c.(type) {
		case DeclareBitVec, DeclareArray:
			declarations++
		case Assertion:
			assertions++
		}
	}
	return declarations, assertions
}
