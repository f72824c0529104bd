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

import (
	"fmt"
	"strconv"
)

type kind int

const (
	unknown kind = iota
	boolean
	bitvec
	array
)

// value is the result of evaluating a term. the zero value is unknown.
type value struct {
	kind  kind
	b     bool
	v     uint64
	width int
	arr   *memory
}

func (v value) known() bool {
	return v.kind != unknown
}

func (v value) String() string {
	switch v.kind {
	case boolean:
		return strconv.FormatBool(v.b)
	case bitvec:
		return fmt.Sprintf("%#x[%d]", v.v, v.width)
	case array:
		return "array"
	}
	return "unknown"
}

func boolValue(b bool) value {
	return value{kind: boolean, b: b}
}

func bvValue(v uint64, width int) value {
	return value{kind: bitvec, v: v & mask(width), width: width}
}

func mask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

// tri is a three-valued truth value.
type tri int

const (
	maybe tri = iota
	yes
	no
)

func truth(b bool) tri {
	if b {
		return yes
	}
	return no
}

func (t tri) value() value {
	switch t {
	case yes:
		return boolValue(true)
	case no:
		return boolValue(false)
	}
	return value{}
}

// equal compares two values.
func equal(a, b value) tri {
	if !a.known() || !b.known() {
		return maybe
	}
	switch a.kind {
	case boolean:
		return truth(a.b == b.b)
	case bitvec:
		return truth(a.v == b.v)
	case array:
		// arrays are only known to be equal if they are built by the same
		// stores on the same root
		if sameMemory(a.arr, b.arr) {
			return yes
		}
	}
	return maybe
}

// memory is the partially known content of an array. a root memory holds the
// cells that have been defined. a derived memory is the result of a store and
// holds the stored cell, other cells are those of the parent.
type memory struct {
	addressWidth int
	dataWidth    int
	parent       *memory
	cells        map[uint64]uint64
}

func newMemory(addressWidth int, dataWidth int) *memory {
	return &memory{
		addressWidth: addressWidth,
		dataWidth:    dataWidth,
		cells:        make(map[uint64]uint64),
	}
}

func (m *memory) lookup(index uint64) (uint64, bool) {
	for c := m; c != nil; c = c.parent {
		if v, ok := c.cells[index]; ok {
			return v, true
		}
	}
	return 0, false
}

func (m *memory) store(index uint64, v uint64) *memory {
	return &memory{
		addressWidth: m.addressWidth,
		dataWidth:    m.dataWidth,
		parent:       m,
		cells:        map[uint64]uint64{index: v},
	}
}

// sameMemory returns true if the two memories are the same root memory or are
// derived from it by the same sequence of stores.
func sameMemory(a, b *memory) bool {
	for a != b {
		if a == nil || b == nil || a.parent == nil || b.parent == nil {
			return false
		}
		if len(a.cells) != len(b.cells) {
			return false
		}
		for k, v := range a.cells {
			if w, ok := b.cells[k]; !ok || w != v {
				return false
			}
		}
		a, b = a.parent, b.parent
	}
	return true
}
