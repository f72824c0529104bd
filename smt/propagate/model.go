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

package propagate

import "sort"

// Model is the set of values defined while solving a satisfiable formula.
// Symbols with no value in the model can take any value.
type Model struct {
	p *propagator
}

// Value returns the value of a bit-vector symbol.
func (m *Model) Value(name string) (uint64, bool) {
	v, ok := m.p.values[name]
	return v, ok
}

// Select returns the value of a cell of an array symbol.
func (m *Model) Select(name string, index uint64) (uint64, bool) {
	a, ok := m.p.arrays[name]
	if !ok {
		return 0, false
	}
	return a.lookup(index)
}

// Names returns the sorted list of bit-vector symbols with a value.
func (m *Model) Names() []string {
	n := make([]string, 0, len(m.p.values))
	for k := range m.p.values {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
